package flow

import (
	"context"

	"github.com/katalvlaran/eliminator/core"
)

// FordFulkerson computes the maximum flow from `source` to `sink` in g using
// the Ford–Fulkerson method (DFS-based augmenting paths).
//
// It returns:
//   - maxFlow       : the total flow value (saturating at Unbounded)
//   - residualGraph : a directed weighted *core.Graph of remaining capacities
//   - err           : ErrSourceNotFound, ErrSinkNotFound, EdgeError, or
//     context cancellation error
//
// Steps:
//  1. Validate source and sink exist (O(1)).
//  2. Build initial capacity map via buildCapMap (O(V + E*log d_max)).
//  3. Repeat until no augmenting path:
//     a. Iteratively DFS to find any path s→t with positive capacity (O(E)).
//     b. If none found, break.
//     c. Augment along path, updating capMap (O(path length)).
//     d. Accumulate flow and log the step at debug level.
//     e. Check ctx for cancellation.
//  4. Reconstruct residual *core.Graph from capMap (O(V + E_res)).
//
// Complexity:
//
//	Time:   O(E * F) where F = maxFlow (sum of all augmentations).
//	Memory: O(V + E) for capMap and DFS stack.
//
// Suitable for small integral networks such as elimination networks; for
// stronger guarantees, consider Edmonds–Karp or Dinic.
func FordFulkerson(
	ctx context.Context,
	g *core.Graph,
	source, sink string,
	opts FlowOptions,
) (maxFlow int64, residualGraph *core.Graph, err error) {
	ctx = contextOrBackground(ctx)
	log := opts.logger()

	// 1) Validate that source and sink exist
	if err = validateEndpoints(g, source, sink); err != nil {
		return 0, nil, err
	}

	// 2) Build the initial capacity map
	cm, err := buildCapMap(ctx, g)
	if err != nil {
		return 0, nil, err
	}
	nbrs := cm.sortedNeighbors()

	// stackEntry holds a node ID and the current bottleneck to that node
	type stackEntry struct {
		node string
		flow int64
	}

	// 3) Main Ford–Fulkerson loop
	for {
		// 3e) Check for cancellation before each search
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}

		// 3a) Iterative DFS from source with unbounded capacity
		parent := make(map[string]string, len(cm))
		minCap := map[string]int64{source: Unbounded}
		visited := map[string]bool{source: true}
		stack := []stackEntry{{node: source, flow: Unbounded}}
		found := false

		for len(stack) > 0 && !found {
			entry := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			u := entry.node

			for _, v := range nbrs[u] {
				capUV := cm[u][v]
				if capUV <= 0 || visited[v] {
					continue
				}
				visited[v] = true
				parent[v] = u
				minCap[v] = min(entry.flow, capUV)
				if v == sink {
					found = true
					break
				}
				stack = append(stack, stackEntry{node: v, flow: minCap[v]})
			}
		}

		// 3b) No augmenting path left
		if !found {
			break
		}

		// 3c/3d) Augment by the bottleneck at sink
		delta := minCap[sink]
		maxFlow = core.SaturatingAdd(maxFlow, delta)
		for v := sink; v != source; v = parent[v] {
			cm.push(parent[v], v, delta)
		}
		log.Debug().Int64("delta", delta).Int64("total", maxFlow).Msg("ford-fulkerson: augment")
	}

	// 4) Build the final residual graph
	residualGraph, err = buildCoreResidualFromCapMap(cm, g)
	if err != nil {
		return maxFlow, nil, err
	}

	return maxFlow, residualGraph, nil
}
