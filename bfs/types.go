package bfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/eliminator/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds the parameters of a traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// FilterEdge decides whether an edge may be taken. On a residual graph
	// it is how zero-capacity arcs get skipped.
	FilterEdge func(e *core.Edge) bool
}

// DefaultOptions returns Options with a background context that follows
// every edge.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		FilterEdge: func(*core.Edge) bool { return true },
	}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithEdgeFilter skips edges when fn returns false.
func WithEdgeFilter(fn func(e *core.Edge) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// WithPositiveWeight only follows edges whose weight is > 0, i.e. arcs of a
// residual graph that still have capacity left.
func WithPositiveWeight() Option {
	return WithEdgeFilter(func(e *core.Edge) bool { return e.Weight > 0 })
}

// Result holds the outcome of a traversal.
type Result struct {
	// Order lists reached vertices in visit sequence, start first.
	Order []string

	// Depth maps each reached vertex to its distance in edges from the start.
	Depth map[string]int
}
