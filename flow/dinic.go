package flow

import (
	"context"

	"github.com/katalvlaran/eliminator/core"
)

// Dinic computes the maximum flow from `source` to `sink` in g using
// Dinic's algorithm (level graph + blocking flows).
//
// It returns:
//   - maxFlow       : the total flow value (saturating at Unbounded)
//   - residualGraph : a directed weighted *core.Graph of remaining capacities
//   - err           : ErrSourceNotFound, ErrSinkNotFound, EdgeError,
//     or context cancellation error
//
// Steps:
//  1. Validate that `source` and `sink` exist in `g` (O(1)).
//  2. Build initial capacity map via buildCapMap.
//  3. Repeat until the sink is unreachable:
//     a. Check for cancellation (O(1)).
//     b. BFS to build the level graph: distance from source for each vertex (O(V + E)).
//     c. If sink unreachable, break.
//     d. Build adjacency list `next` for arcs in the level graph (O(E)).
//     e. DFS-based blocking flow pushes until none remains,
//     optionally rebuilding level graph every LevelRebuildInterval augmentations.
//  4. Construct final residual graph via buildCoreResidualFromCapMap.
//
// Complexity:
//
//	Time:   O(V² · E) in general; O(E·√V) on unit-capacity networks.
//	Memory: O(V + E) for capMap and auxiliary maps (level, next, iter).
func Dinic(
	ctx context.Context,
	g *core.Graph,
	source, sink string,
	opts FlowOptions,
) (maxFlow int64, residualGraph *core.Graph, err error) {
	ctx = contextOrBackground(ctx)
	log := opts.logger()

	// 1) Validate presence of source and sink
	if err = validateEndpoints(g, source, sink); err != nil {
		return 0, nil, err
	}

	// 2) Initial capacity map
	cm, err := buildCapMap(ctx, g)
	if err != nil {
		return 0, nil, err
	}
	nbrs := cm.sortedNeighbors()

	augmentCount := 0
	for phase := 1; ; phase++ {
		// 3a) Cancellation check before BFS
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}

		// 3b) BFS levels
		level := make(map[string]int, len(cm))
		for u := range cm {
			level[u] = -1
		}
		level[source] = 0
		queue := []string{source}
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for _, v := range nbrs[u] {
				if cm[u][v] > 0 && level[v] < 0 {
					level[v] = level[u] + 1
					queue = append(queue, v)
				}
			}
		}
		// 3c) Sink unreachable: done
		if level[sink] < 0 {
			break
		}

		// 3d) Level-graph adjacency
		next := make(map[string][]string, len(cm))
		for _, u := range queue {
			for _, v := range nbrs[u] {
				if cm[u][v] > 0 && level[v] == level[u]+1 {
					next[u] = append(next[u], v)
				}
			}
		}

		// 3e) Blocking flow
		iter := make(map[string]int, len(next))
		for {
			if err = ctx.Err(); err != nil {
				return maxFlow, nil, err
			}
			pushed := dfsDinicPush(ctx, cm, next, iter, source, sink, Unbounded)
			if pushed == 0 {
				break
			}
			maxFlow = core.SaturatingAdd(maxFlow, pushed)
			augmentCount++
			log.Debug().Int("phase", phase).Int64("delta", pushed).Int64("total", maxFlow).
				Msg("dinic: augment")
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	// 4) Final residual graph
	residualGraph, err = buildCoreResidualFromCapMap(cm, g)
	if err != nil {
		return maxFlow, nil, err
	}

	return maxFlow, residualGraph, nil
}

// dfsDinicPush recursively pushes flow along the level graph.
// It respects cancellation via ctx, updates cm in place,
// and returns the amount actually sent.
func dfsDinicPush(
	ctx context.Context,
	cm capMap,
	next map[string][]string,
	iter map[string]int,
	u, sink string,
	available int64,
) int64 {
	if ctx.Err() != nil {
		return 0
	}
	if u == sink {
		return available
	}
	for ; iter[u] < len(next[u]); iter[u]++ {
		v := next[u][iter[u]]
		capUV := cm[u][v]
		if capUV <= 0 {
			continue
		}
		if pushed := dfsDinicPush(ctx, cm, next, iter, v, sink, min(available, capUV)); pushed > 0 {
			cm.push(u, v, pushed)

			return pushed
		}
	}

	return 0
}
