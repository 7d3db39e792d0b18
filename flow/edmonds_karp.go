package flow

import (
	"context"

	"github.com/katalvlaran/eliminator/core"
)

// EdmondsKarp computes the maximum flow from source→sink
// using the Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns:
//   - maxFlow: total flow value (saturating at Unbounded)
//   - residual: residual-capacity graph after flow
//   - err: ErrSourceNotFound, ErrSinkNotFound, EdgeError, or ctx.Err().
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(
	ctx context.Context,
	g *core.Graph,
	source, sink string,
	opts FlowOptions,
) (maxFlow int64, residual *core.Graph, err error) {
	ctx = contextOrBackground(ctx)
	log := opts.logger()

	// 1) Validate presence of source/sink
	if err = validateEndpoints(g, source, sink); err != nil {
		return 0, nil, err
	}

	// 2) Residual capacities (parallel edges summed, reverse arcs seeded)
	cm, err := buildCapMap(ctx, g)
	if err != nil {
		return 0, nil, err
	}
	nbrs := cm.sortedNeighbors()

	// 3) Main loop: shortest augmenting paths until none remain
	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}
		path, bottle := bfsAugmentingPath(cm, nbrs, source, sink)
		if len(path) == 0 {
			break
		}
		maxFlow = core.SaturatingAdd(maxFlow, bottle)
		log.Debug().Strs("path", path).Int64("delta", bottle).Int64("total", maxFlow).
			Msg("edmonds-karp: augment")

		for i := 0; i < len(path)-1; i++ {
			cm.push(path[i], path[i+1], bottle)
		}
	}

	residual, err = buildCoreResidualFromCapMap(cm, g)
	if err != nil {
		return maxFlow, nil, err
	}

	return maxFlow, residual, nil
}

// bfsAugmentingPath finds the shortest (fewest-arcs) path source→sink over
// arcs with positive residual capacity and returns it with its bottleneck.
// Returns nil if the sink is unreachable.
func bfsAugmentingPath(cm capMap, nbrs map[string][]string, source, sink string) ([]string, int64) {
	parent := make(map[string]string, len(cm))
	bottleneck := map[string]int64{source: Unbounded}
	visited := map[string]bool{source: true}

	queue := []string{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range nbrs[u] {
			c := cm[u][v]
			if visited[v] || c <= 0 {
				continue
			}
			visited[v] = true
			parent[v] = u
			bottleneck[v] = min(bottleneck[u], c)
			if v == sink {
				path := []string{sink}
				for cur := sink; cur != source; {
					cur = parent[cur]
					path = append(path, cur)
				}
				reverse(path)

				return path, bottleneck[sink]
			}
			queue = append(queue, v)
		}
	}

	return nil, 0
}

// reverse flips s in place.
func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
