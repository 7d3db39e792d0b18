package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/eliminator/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	ctx   context.Context
	keep  func(e *core.Edge) bool
	queue []string
	res   *Result
}

// BFS runs breadth-first search on g starting from startID and returns every
// vertex reachable over edges accepted by the filter.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrNeighbors for graph failures, or ctx.Err() on cancellation.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		ctx:   o.Ctx,
		keep:  o.FilterEdge,
		queue: make([]string, 0, n),
		res: &Result{
			Order: make([]string, 0, n),
			Depth: make(map[string]int, n),
		},
	}
	w.enqueue(startID, 0)

	return w.res, w.loop()
}

// enqueue records id at depth d and adds it to the queue.
func (w *walker) enqueue(id string, d int) {
	w.res.Depth[id] = d
	w.queue = append(w.queue, id)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		id := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, id)

		edges, err := w.graph.Neighbors(id)
		if err != nil {
			return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, id, err)
		}
		next := w.res.Depth[id] + 1
		for _, e := range edges {
			nbr := otherEnd(e, id)
			if nbr == "" || !w.keep(e) {
				continue
			}
			// parallel edges collapse here
			if _, seen := w.res.Depth[nbr]; seen {
				continue
			}
			w.enqueue(nbr, next)
		}
	}

	return nil
}

// otherEnd returns the endpoint of e reached by leaving from. Directed
// edges are only followed forward; "" means e cannot be taken from there.
func otherEnd(e *core.Edge, from string) string {
	switch {
	case e.From == from:
		return e.To
	case !e.Directed && e.To == from:
		return e.From
	default:
		return ""
	}
}
