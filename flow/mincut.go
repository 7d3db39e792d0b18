package flow

import (
	"context"
	"sort"

	"github.com/katalvlaran/eliminator/bfs"
	"github.com/katalvlaran/eliminator/core"
)

// MinCut returns the source side of a minimum cut: every vertex reachable
// from source in a residual graph over arcs with positive capacity, sorted.
//
// For any maximum flow the reachable set is the same (the source-minimal
// minimum cut), so every algorithm in this package yields the same side.
func MinCut(ctx context.Context, residual *core.Graph, source string) ([]string, error) {
	res, err := bfs.BFS(residual, source,
		bfs.WithContext(contextOrBackground(ctx)),
		bfs.WithPositiveWeight(),
	)
	if err != nil {
		return nil, err
	}
	side := append([]string(nil), res.Order...)
	sort.Strings(side)

	return side, nil
}

// Cut is the outcome of a max-flow/min-cut computation: the flow value and
// the vertices on the source side of a minimum cut.
type Cut struct {
	value int64
	side  map[string]struct{}
}

// NewCut builds a Cut from a flow value and a source-side vertex list.
func NewCut(value int64, sourceSide []string) *Cut {
	side := make(map[string]struct{}, len(sourceSide))
	for _, id := range sourceSide {
		side[id] = struct{}{}
	}

	return &Cut{value: value, side: side}
}

// Value returns the maximum flow value.
func (c *Cut) Value() int64 { return c.value }

// OnSourceSide reports whether id lies on the source side of the cut.
func (c *Cut) OnSourceSide(id string) bool {
	_, ok := c.side[id]

	return ok
}

// SourceSide returns the source-side vertex IDs, sorted.
func (c *Cut) SourceSide() []string {
	out := make([]string, 0, len(c.side))
	for id := range c.side {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
