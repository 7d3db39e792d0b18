package elimination

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/eliminator/flow"
	"github.com/katalvlaran/eliminator/network"
	"github.com/katalvlaran/eliminator/standings"
)

// ErrInconsistentCut means the cut handed back by the solver does not fit the
// network it was built for. The query is aborted.
var ErrInconsistentCut = errors.New("elimination: inconsistent minimum cut")

// Analyzer answers elimination queries against one standings snapshot. It
// keeps no state between queries and is safe for concurrent use.
type Analyzer struct {
	st         *standings.Standings
	solver     MaxFlowSolver
	strictLead bool
	log        zerolog.Logger
	rec        Recorder
	workers    int
}

// NewAnalyzer returns an Analyzer over st.
func NewAnalyzer(st *standings.Standings, opts ...Option) *Analyzer {
	a := &Analyzer{
		st:      st,
		solver:  flow.NewSolver(flow.EdmondsKarpAlgorithm),
		log:     zerolog.Nop(),
		rec:     NopRecorder{},
		workers: defaultWorkers(),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Standings returns the snapshot the analyzer reads.
func (a *Analyzer) Standings() *standings.Standings { return a.st }

// IsEliminated reports whether name can no longer finish first.
func (a *Analyzer) IsEliminated(ctx context.Context, name string) (bool, error) {
	v, err := a.Evaluate(ctx, name)
	if err != nil {
		return false, err
	}

	return v.Eliminated, nil
}

// CertificateOfElimination returns the competitors proving name's
// elimination, or nil when name is not eliminated.
func (a *Analyzer) CertificateOfElimination(ctx context.Context, name string) ([]string, error) {
	v, err := a.Evaluate(ctx, name)
	if err != nil {
		return nil, err
	}

	return v.Certificate, nil
}

// Evaluate runs the trivial check and, if needed, the network check for name.
func (a *Analyzer) Evaluate(ctx context.Context, name string) (*Verdict, error) {
	start := time.Now()
	t, err := a.st.IndexOf(name)
	if err != nil {
		a.rec.ObserveError(ErrorKindUnknownCompetitor)
		return nil, fmt.Errorf("elimination: %w", err)
	}

	ceiling := a.ceiling(t)
	v := &Verdict{Team: name, Reason: ReasonNone, Ceiling: ceiling}

	if c, ok := a.trivialWitness(t, ceiling); ok {
		v.Eliminated, v.Reason = true, ReasonTrivial
		v.Certificate = []string{a.st.Name(c)}
	} else if err = a.networkCheck(ctx, t, v); err != nil {
		return nil, err
	}

	path := ReasonTrivial
	if v.Reason != ReasonTrivial {
		path = ReasonNetwork
	}
	a.rec.ObserveQuery(path, v.Eliminated, time.Since(start))
	a.log.Debug().
		Str("team", name).
		Str("path", string(path)).
		Int("ceiling", ceiling).
		Int64("flow", v.Flow).
		Int64("demand", v.Demand).
		Bool("eliminated", v.Eliminated).
		Strs("certificate", v.Certificate).
		Msg("elimination query")

	return v, nil
}

// EvaluateAll evaluates every competitor, at most WithWorkers at a time, and
// returns the verdicts in standings order. The first error cancels the rest.
func (a *Analyzer) EvaluateAll(ctx context.Context) ([]*Verdict, error) {
	names := a.st.Names()
	out := make([]*Verdict, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, name := range names {
		g.Go(func() error {
			v, err := a.Evaluate(gctx, name)
			if err != nil {
				return err
			}
			out[i] = v

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Network builds the flow network Evaluate would solve for name, using the
// analyzer's ceiling.
func (a *Analyzer) Network(name string) (*network.Network, error) {
	t, err := a.st.IndexOf(name)
	if err != nil {
		return nil, fmt.Errorf("elimination: %w", err)
	}
	nw, err := network.BuildWithCeiling(a.st, t, a.ceiling(t))
	if err != nil {
		return nil, fmt.Errorf("elimination: build network for %q: %w", name, err)
	}

	return nw, nil
}

// Wins returns the wins of name.
func (a *Analyzer) Wins(name string) (int, error) {
	return a.lookup(name, a.st.Wins)
}

// Losses returns the losses of name.
func (a *Analyzer) Losses(name string) (int, error) {
	return a.lookup(name, a.st.Losses)
}

// Remaining returns the games left for name.
func (a *Analyzer) Remaining(name string) (int, error) {
	return a.lookup(name, a.st.Remaining)
}

// GamesRemaining returns the games left between a and b; 0 when a == b.
func (a *Analyzer) GamesRemaining(nameA, nameB string) (int, error) {
	i, err := a.st.IndexOf(nameA)
	if err != nil {
		return 0, fmt.Errorf("elimination: %w", err)
	}
	j, err := a.st.IndexOf(nameB)
	if err != nil {
		return 0, fmt.Errorf("elimination: %w", err)
	}

	return a.st.GamesBetween(i, j), nil
}

func (a *Analyzer) lookup(name string, get func(int) int) (int, error) {
	i, err := a.st.IndexOf(name)
	if err != nil {
		return 0, fmt.Errorf("elimination: %w", err)
	}

	return get(i), nil
}

func (a *Analyzer) ceiling(t int) int {
	if a.strictLead {
		return a.st.MaxWins(t) - 1
	}

	return a.st.MaxWins(t)
}

// trivialWitness returns the first competitor, in index order, that already
// has more wins than ceiling.
func (a *Analyzer) trivialWitness(t, ceiling int) (int, bool) {
	for c := 0; c < a.st.Len(); c++ {
		if c != t && a.st.Wins(c) > ceiling {
			return c, true
		}
	}

	return 0, false
}

// networkCheck builds and solves t's network and fills v from the cut.
//
// Steps:
//  1. Build the network with v.Ceiling and solve source→sink.
//  2. Collect the teams of every game vertex on the source side.
//  3. Cross-check against the flow value: a game vertex is on the source side
//     exactly when some source arc is unsaturated (flow < demand).
//  4. Check the averaging bound for the certificate.
func (a *Analyzer) networkCheck(ctx context.Context, t int, v *Verdict) error {
	// 1) Build + solve
	nw, err := network.BuildWithCeiling(a.st, t, v.Ceiling)
	if err != nil {
		a.rec.ObserveError(ErrorKindBuild)
		return fmt.Errorf("elimination: build network for %q: %w", v.Team, err)
	}
	cut, err := a.solver.Solve(ctx, nw.Graph, nw.SourceID(), nw.SinkID())
	if err != nil {
		a.rec.ObserveError(ErrorKindSolve)
		return fmt.Errorf("elimination: solve network for %q: %w", v.Team, err)
	}

	// 2) Source-side games
	nb := nw.Numbering
	members := make(map[int]bool)
	for g := 1; g <= nb.GameCount(); g++ {
		if !cut.OnSourceSide(nb.ID(g)) {
			continue
		}
		i, j, ok := nb.GamePair(g)
		if !ok {
			return a.inconsistent("game vertex %d does not invert", g)
		}
		members[i], members[j] = true, true
	}

	// 3) Cross-check
	bySide := len(members) > 0
	byFlow := cut.Value() < nw.Demand
	if bySide != byFlow {
		return a.inconsistent("%q: flow %d of %d but %d teams on the source side",
			v.Team, cut.Value(), nw.Demand, len(members))
	}
	v.Flow, v.Demand = cut.Value(), nw.Demand
	if !bySide {
		return nil
	}

	// 4) Certificate
	certificate := lo.FilterMap(a.st.Names(), func(name string, i int) (string, bool) {
		return name, members[i]
	})
	if !a.certifies(members, v.Ceiling) {
		return a.inconsistent("%q: certificate %v does not exceed ceiling %d", v.Team, certificate, v.Ceiling)
	}
	v.Eliminated, v.Reason, v.Certificate = true, ReasonNetwork, certificate

	return nil
}

// certifies reports whether (Σ wins(R) + Σ games within R) > |R|·ceiling.
func (a *Analyzer) certifies(members map[int]bool, ceiling int) bool {
	idx := lo.Keys(members)
	total := lo.SumBy(idx, a.st.Wins)
	for x, i := range idx {
		for _, j := range idx[x+1:] {
			total += a.st.GamesBetween(i, j)
		}
	}

	return total > len(idx)*ceiling
}

func (a *Analyzer) inconsistent(format string, args ...any) error {
	a.rec.ObserveError(ErrorKindInconsistentCut)
	return fmt.Errorf("%w: %s", ErrInconsistentCut, fmt.Sprintf(format, args...))
}
