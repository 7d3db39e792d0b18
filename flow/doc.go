// Package flow implements maximum-flow algorithms on graphs represented by
// *core.Graph, and reads minimum cuts off the resulting residual graphs.
//
// The algorithms offered are:
//
//   - Ford–Fulkerson
//
//   - Method: depth-first search to find any augmenting path.
//
//   - Time:   O(E · F), where F is the total flow pushed.
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search for shortest (fewest-arc) augmenting paths.
//
//   - Time:   O(V · E²) in the worst case.
//
//   - Dinic
//
//   - Method: level graph construction + blocking-flow via DFS.
//
//   - Time:   O(V² · E); O(E · √V) on unit-capacity networks.
//
// # Capacities
//
// Capacities are the int64 edge weights. Parallel edges are summed, loops are
// ignored, negative weights are rejected with EdgeError. Unbounded
// (math.MaxInt64) marks arcs that may never be cut; all sums saturate at it.
// Undirected edges contribute their weight in both directions.
//
// # API
//
//	func FordFulkerson(ctx, g, source, sink, opts) (maxFlow int64, residual *core.Graph, err error)
//	func EdmondsKarp(ctx, g, source, sink, opts) (maxFlow int64, residual *core.Graph, err error)
//	func Dinic(ctx, g, source, sink, opts) (maxFlow int64, residual *core.Graph, err error)
//
// The residual graph is directed and weighted. It holds one arc per ordered
// pair with positive remaining capacity, reverse arcs included.
//
// MinCut walks the residual graph from the source with the bfs package and
// returns the source side of a minimum cut. Solver wraps an Algorithm and
// MinCut into a single call returning a *Cut:
//
//	s := flow.NewSolver(flow.DinicAlgorithm, flow.WithLogger(log))
//	cut, err := s.Solve(ctx, g, "s", "t")
//	cut.Value()            // max-flow value
//	cut.OnSourceSide("v")  // cut membership
//
// # Errors
//
//	ErrSourceNotFound   - the source vertex is missing in the input graph.
//	ErrSinkNotFound     - the sink vertex is missing.
//	EdgeError           - a negative capacity is encountered.
//	ErrUnknownAlgorithm - ParseAlgorithm or Solve got an unsupported name.
//	context.Canceled / context.DeadlineExceeded - ctx ended mid-run.
package flow
