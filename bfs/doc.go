// Package bfs walks a core.Graph breadth-first from a start vertex.
//
// It exists for one job: reading the source side of a minimum cut off a
// residual graph. The flow package calls
//
//	res, err := bfs.BFS(residual, source, bfs.WithPositiveWeight())
//
// and every vertex in res.Order is on the source side.
//
// Determinism
//
//	core.Neighbors returns edges sorted by Edge.ID and BFS enqueues in that
//	order, so the visit sequence is reproducible for a given graph.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E·log d) (neighbor lists are sorted per vertex)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrNeighbors            if core.Neighbors fails for any vertex.
//   - ctx.Err()               if the context is cancelled mid-walk.
package bfs
