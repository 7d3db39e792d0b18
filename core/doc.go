// Package core provides the thread-safe in-memory graph that the flow
// algorithms and the elimination network are built on.
//
// A Graph G = (V,E) is configured once, at construction:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//
// Storage is a nested map, adjacencyList[from][to][edgeID] = struct{}{},
// which gives constant-time insertion and membership checks. Vertices are
// guarded by muVert and edges+adjacency by muEdgeAdj, always locked in that
// order.
//
// Edge weights are int64. In flow networks the weight is the capacity, and
// callers may use math.MaxInt64 as an "unbounded" capacity; the graph itself
// attaches no meaning to any particular value.
//
// Core methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1), idempotent
//	HasVertex(id string) bool          // O(1)
//	Vertices() []string                // O(V·log V), sorted
//	VertexCount() int                  // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight int64) (edgeID string, err error) // O(1)†
//	HasEdge(from, to string) bool      // O(1)
//	Edges() []*Edge                    // O(E·log E), sorted by ID
//	EdgeCount() int                    // O(1)
//	Weight(from, to string) int64      // O(k), sum over parallel edges
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)    // outgoing (or incident) edges, sorted by ID
//
//	// Cloning
//	CloneEmpty() *Graph                // O(V): vertices+flags only
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrBadWeight           – non-zero weight on unweighted graph
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//
// † amortized constant time: atomic ID generation + nested-map insertion.
package core
