package flow

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/eliminator/core"
)

// Algorithm names a max-flow routine.
type Algorithm string

// Supported algorithms.
const (
	FordFulkersonAlgorithm Algorithm = "ford-fulkerson"
	EdmondsKarpAlgorithm   Algorithm = "edmonds-karp"
	DinicAlgorithm         Algorithm = "dinic"
)

// Algorithms lists every supported algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{FordFulkersonAlgorithm, EdmondsKarpAlgorithm, DinicAlgorithm}
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Algorithms() {
		if a == known {
			return a, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

type flowFunc func(context.Context, *core.Graph, string, string, FlowOptions) (int64, *core.Graph, error)

func (a Algorithm) fn() (flowFunc, error) {
	switch a {
	case FordFulkersonAlgorithm:
		return FordFulkerson, nil
	case EdmondsKarpAlgorithm:
		return EdmondsKarp, nil
	case DinicAlgorithm:
		return Dinic, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
	}
}

// SolverOption configures a Solver.
type SolverOption func(*Solver)

// WithLogger routes per-augmentation debug events to l.
func WithLogger(l zerolog.Logger) SolverOption {
	return func(s *Solver) { s.opts.Logger = &l }
}

// WithLevelRebuildInterval forwards FlowOptions.LevelRebuildInterval to Dinic.
func WithLevelRebuildInterval(n int) SolverOption {
	return func(s *Solver) { s.opts.LevelRebuildInterval = n }
}

// Solver runs one algorithm and reads the minimum cut off its residual graph.
// A Solver holds no per-call state and may be shared between goroutines.
type Solver struct {
	alg  Algorithm
	opts FlowOptions
}

// NewSolver returns a Solver for alg. An unknown alg surfaces as
// ErrUnknownAlgorithm from Solve.
func NewSolver(alg Algorithm, opts ...SolverOption) *Solver {
	s := &Solver{alg: alg, opts: DefaultOptions()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Algorithm reports the configured algorithm.
func (s *Solver) Algorithm() Algorithm { return s.alg }

// Solve computes a maximum flow source→sink on g and returns the
// corresponding minimum cut.
func (s *Solver) Solve(ctx context.Context, g *core.Graph, source, sink string) (*Cut, error) {
	run, err := s.alg.fn()
	if err != nil {
		return nil, err
	}
	value, residual, err := run(ctx, g, source, sink, s.opts)
	if err != nil {
		return nil, err
	}
	side, err := MinCut(ctx, residual, source)
	if err != nil {
		return nil, fmt.Errorf("flow: min cut: %w", err)
	}

	return NewCut(value, side), nil
}
