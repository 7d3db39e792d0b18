package elimination

import (
	"context"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/eliminator/core"
	"github.com/katalvlaran/eliminator/flow"
)

// MaxFlowSolver computes a maximum flow and the source side of a minimum cut.
// *flow.Solver satisfies it.
type MaxFlowSolver interface {
	Solve(ctx context.Context, g *core.Graph, source, sink string) (*flow.Cut, error)
}

// Recorder observes queries. internal/metrics provides a Prometheus one.
type Recorder interface {
	ObserveQuery(path Reason, eliminated bool, d time.Duration)
	ObserveError(kind string)
}

// NopRecorder discards every observation.
type NopRecorder struct{}

// ObserveQuery implements Recorder.
func (NopRecorder) ObserveQuery(Reason, bool, time.Duration) {}

// ObserveError implements Recorder.
func (NopRecorder) ObserveError(string) {}

// Error kinds passed to Recorder.ObserveError.
const (
	ErrorKindUnknownCompetitor = "unknown_competitor"
	ErrorKindBuild             = "build"
	ErrorKindSolve             = "solve"
	ErrorKindInconsistentCut   = "inconsistent_cut"
)

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithSolver replaces the default Edmonds–Karp solver. nil is ignored.
func WithSolver(s MaxFlowSolver) Option {
	return func(a *Analyzer) {
		if s != nil {
			a.solver = s
		}
	}
}

// WithStrictLead makes a tie for first count as elimination.
func WithStrictLead(strict bool) Option {
	return func(a *Analyzer) { a.strictLead = strict }
}

// WithLogger sets the query logger.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Analyzer) { a.log = l }
}

// WithRecorder sets the metrics recorder. nil is ignored.
func WithRecorder(r Recorder) Option {
	return func(a *Analyzer) {
		if r != nil {
			a.rec = r
		}
	}
}

// WithWorkers bounds EvaluateAll's parallelism. Values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		if n < 1 {
			n = 1
		}
		a.workers = n
	}
}

func defaultWorkers() int { return runtime.GOMAXPROCS(0) }
