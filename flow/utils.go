package flow

import (
	"context"
	"sort"

	"github.com/katalvlaran/eliminator/core"
)

// capMap[u][v] is the residual capacity of the arc u→v. Every arc of the
// input has its reverse present (possibly at 0), so the keys of capMap[u]
// are exactly the residual neighbors of u.
type capMap map[string]map[string]int64

// buildCapMap constructs the residual capacities of g, aggregating parallel
// edges and ignoring loops.
//
// Steps:
//  1. Initialize one inner map per vertex (O(V)).
//  2. For each vertex u in sorted order:
//     a. Check ctx for early cancellation.
//     b. For each edge leaving u (both directions for undirected edges):
//     negative weight → EdgeError; otherwise capMap[u][v] += weight,
//     saturating at Unbounded, and make sure capMap[v][u] exists.
//
// Complexity:
//
//	Time:   O(V + E·log d_max) (core sorts each neighbor list).
//	Memory: O(V + E).
func buildCapMap(ctx context.Context, g *core.Graph) (capMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vertices := g.Vertices()
	cm := make(capMap, len(vertices))
	for _, u := range vertices {
		cm[u] = make(map[string]int64)
	}

	for _, u := range vertices {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		edges, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			if e.From == e.To {
				continue
			}
			v := e.To
			if e.From != u {
				// undirected edge stored from the other endpoint
				v = e.From
			}
			if e.Weight < 0 {
				return nil, EdgeError{From: u, To: v, Cap: e.Weight}
			}
			cm[u][v] = core.SaturatingAdd(cm[u][v], e.Weight)
			if _, ok := cm[v][u]; !ok {
				cm[v][u] = 0
			}
		}
	}

	return cm, nil
}

// push moves delta units along u→v in the residual capacities.
func (cm capMap) push(u, v string, delta int64) {
	cm[u][v] -= delta
	cm[v][u] = core.SaturatingAdd(cm[v][u], delta)
}

// sortedNeighbors returns the keys of capMap[u] per vertex, sorted, so that
// every search visits arcs in a reproducible order.
func (cm capMap) sortedNeighbors() map[string][]string {
	out := make(map[string][]string, len(cm))
	for u, inner := range cm {
		nbrs := make([]string, 0, len(inner))
		for v := range inner {
			nbrs = append(nbrs, v)
		}
		sort.Strings(nbrs)
		out[u] = nbrs
	}

	return out
}

// newResidual returns an edgeless graph holding every vertex of g that can
// carry directed, weighted arcs. Directed weighted inputs are cloned so that
// edge IDs keep counting from the input's.
func newResidual(g *core.Graph) *core.Graph {
	if g.Directed() && g.Weighted() {
		return g.CloneEmpty()
	}
	residual := core.NewFlowNetwork()
	for _, id := range g.Vertices() {
		_ = residual.AddVertex(id)
	}

	return residual
}

// buildCoreResidualFromCapMap turns capMap into a *core.Graph holding one
// arc per pair with strictly positive residual capacity.
//
// Complexity: O(V + E_res·log E_res) (pairs are inserted in sorted order so
// edge IDs are reproducible).
func buildCoreResidualFromCapMap(cm capMap, g *core.Graph) (*core.Graph, error) {
	residual := newResidual(g)
	nbrs := cm.sortedNeighbors()
	for _, u := range residual.Vertices() {
		for _, v := range nbrs[u] {
			if c := cm[u][v]; c > 0 {
				if _, err := residual.AddEdge(u, v, c); err != nil {
					return nil, err
				}
			}
		}
	}

	return residual, nil
}

// validateEndpoints checks that source and sink exist in g.
func validateEndpoints(g *core.Graph, source, sink string) error {
	if !g.HasVertex(source) {
		return ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return ErrSinkNotFound
	}

	return nil
}

// contextOrBackground substitutes context.Background for a nil ctx.
func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}

	return ctx
}
