package flow_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/eliminator/core"
	"github.com/katalvlaran/eliminator/flow"
)

type algorithmFunc func(context.Context, *core.Graph, string, string, flow.FlowOptions) (int64, *core.Graph, error)

var algorithms = map[string]algorithmFunc{
	"FordFulkerson": flow.FordFulkerson,
	"EdmondsKarp":   flow.EdmondsKarp,
	"Dinic":         flow.Dinic,
}

// FlowSuite runs every algorithm through the same scenarios.
type FlowSuite struct {
	suite.Suite
}

func (s *FlowSuite) each(fn func(name string, run algorithmFunc)) {
	for _, name := range []string{"FordFulkerson", "EdmondsKarp", "Dinic"} {
		s.Run(name, func() { fn(name, algorithms[name]) })
	}
}

// TestSingleEdge verifies that a single edge yields max flow equal to its capacity.
func (s *FlowSuite) TestSingleEdge() {
	s.each(func(_ string, run algorithmFunc) {
		g := core.NewFlowNetwork()
		_, _ = g.AddEdge("A", "B", 7)

		mf, res, err := run(context.Background(), g, "A", "B", flow.DefaultOptions())
		require.NoError(s.T(), err)
		require.Equal(s.T(), int64(7), mf)
		require.False(s.T(), res.HasEdge("A", "B"), "forward edge should be saturated")
		require.True(s.T(), res.HasEdge("B", "A"), "reverse edge should carry the flow")
	})
}

// TestMultiPath verifies max flow on two paths.
func (s *FlowSuite) TestMultiPath() {
	s.each(func(_ string, run algorithmFunc) {
		g := core.NewFlowNetwork()
		_, _ = g.AddEdge("A", "B", 5)
		_, _ = g.AddEdge("A", "C", 4)
		_, _ = g.AddEdge("C", "B", 3)

		mf, _, err := run(context.Background(), g, "A", "B", flow.DefaultOptions())
		require.NoError(s.T(), err)
		require.Equal(s.T(), int64(8), mf)
	})
}

// TestMultiEdgeAggregation checks that parallel edges are summed.
func (s *FlowSuite) TestMultiEdgeAggregation() {
	s.each(func(_ string, run algorithmFunc) {
		g := core.NewFlowNetwork()
		_, _ = g.AddEdge("A", "B", 2)
		_, _ = g.AddEdge("A", "B", 5)

		mf, _, err := run(context.Background(), g, "A", "B", flow.DefaultOptions())
		require.NoError(s.T(), err)
		require.Equal(s.T(), int64(7), mf)
	})
}

// TestZeroCapacity ensures that zero-capacity edges yield zero flow.
func (s *FlowSuite) TestZeroCapacity() {
	s.each(func(_ string, run algorithmFunc) {
		g := core.NewFlowNetwork()
		_, _ = g.AddEdge("X", "Y", 0)

		mf, res, err := run(context.Background(), g, "X", "Y", flow.DefaultOptions())
		require.NoError(s.T(), err)
		require.Zero(s.T(), mf)
		require.Zero(s.T(), res.EdgeCount())
	})
}

// TestLoopIgnored makes sure self-loops never carry flow.
func (s *FlowSuite) TestLoopIgnored() {
	s.each(func(_ string, run algorithmFunc) {
		g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())
		_, _ = g.AddEdge("A", "A", 10)
		_, _ = g.AddEdge("A", "B", 3)
		_, _ = g.AddEdge("A", "B", 2)

		mf, res, err := run(context.Background(), g, "A", "B", flow.DefaultOptions())
		require.NoError(s.T(), err)
		require.Equal(s.T(), int64(5), mf)
		assertResidualIntegrity(s.T(), g, res)
	})
}

// TestNegativeCapacity rejects negative weights with EdgeError.
func (s *FlowSuite) TestNegativeCapacity() {
	s.each(func(_ string, run algorithmFunc) {
		g := core.NewFlowNetwork()
		_, _ = g.AddEdge("A", "B", -1)

		_, _, err := run(context.Background(), g, "A", "B", flow.DefaultOptions())
		var ee flow.EdgeError
		require.True(s.T(), errors.As(err, &ee))
		require.Equal(s.T(), int64(-1), ee.Cap)
		require.Equal(s.T(), "A", ee.From)
	})
}

// TestSourceSinkNotFound covers missing source or sink error cases.
func (s *FlowSuite) TestSourceSinkNotFound() {
	s.each(func(_ string, run algorithmFunc) {
		g := core.NewFlowNetwork()
		_ = g.AddVertex("A")

		_, _, err := run(context.Background(), g, "X", "A", flow.DefaultOptions())
		require.ErrorIs(s.T(), err, flow.ErrSourceNotFound)

		_, _, err = run(context.Background(), g, "A", "Z", flow.DefaultOptions())
		require.ErrorIs(s.T(), err, flow.ErrSinkNotFound)
	})
}

// TestUnboundedArcs checks that Unbounded arcs saturate instead of overflowing.
func (s *FlowSuite) TestUnboundedArcs() {
	s.each(func(_ string, run algorithmFunc) {
		g := core.NewFlowNetwork()
		_, _ = g.AddEdge("s", "g", 4)
		_, _ = g.AddEdge("g", "a", flow.Unbounded)
		_, _ = g.AddEdge("g", "b", flow.Unbounded)
		_, _ = g.AddEdge("a", "t", 1)
		_, _ = g.AddEdge("b", "t", 2)

		mf, res, err := run(context.Background(), g, "s", "t", flow.DefaultOptions())
		require.NoError(s.T(), err)
		require.Equal(s.T(), int64(3), mf)
		assertResidualIntegrity(s.T(), g, res)
	})

	s.each(func(_ string, run algorithmFunc) {
		g := core.NewFlowNetwork()
		_, _ = g.AddEdge("s", "t", flow.Unbounded)
		_, _ = g.AddEdge("s", "t", 1)

		mf, _, err := run(context.Background(), g, "s", "t", flow.DefaultOptions())
		require.NoError(s.T(), err)
		require.Equal(s.T(), flow.Unbounded, mf)
	})
}

// TestUndirectedEdges treats an undirected edge as capacity in both directions.
func (s *FlowSuite) TestUndirectedEdges() {
	s.each(func(_ string, run algorithmFunc) {
		g := core.NewGraph(core.WithWeighted())
		_, _ = g.AddEdge("a", "b", 3)
		_, _ = g.AddEdge("c", "b", 2)
		_, _ = g.AddEdge("a", "c", 1)

		mf, res, err := run(context.Background(), g, "b", "a", flow.DefaultOptions())
		require.NoError(s.T(), err)
		require.Equal(s.T(), int64(4), mf)
		require.True(s.T(), res.Directed())
	})
}

// TestResidualIntegrity validates the residual invariant on a small graph.
func (s *FlowSuite) TestResidualIntegrity() {
	s.each(func(_ string, run algorithmFunc) {
		g := core.NewFlowNetwork()
		_, _ = g.AddEdge("A", "B", 5)
		_, _ = g.AddEdge("A", "B", 3)
		_, _ = g.AddEdge("B", "C", 4)
		_, _ = g.AddEdge("C", "D", 2)
		_, _ = g.AddEdge("A", "D", 1)

		mf, res, err := run(context.Background(), g, "A", "D", flow.DefaultOptions())
		require.NoError(s.T(), err)
		require.Equal(s.T(), int64(3), mf)
		assertResidualIntegrity(s.T(), g, res)
	})
}

// TestContextCancellation ensures an already-cancelled context aborts the run.
func (s *FlowSuite) TestContextCancellation() {
	s.each(func(_ string, run algorithmFunc) {
		g := core.NewFlowNetwork()
		for i := 0; i < 100; i++ {
			_, _ = g.AddEdge(fmt.Sprintf("V%d", i), fmt.Sprintf("V%d", i+1), 1)
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := run(ctx, g, "V0", "V100", flow.DefaultOptions())
		require.ErrorIs(s.T(), err, context.Canceled)
	})
}

// TestAlgorithmsAgree compares values and cuts across algorithms on random networks.
func (s *FlowSuite) TestAlgorithmsAgree() {
	for seed := int64(1); seed <= 20; seed++ {
		g := buildRandomGraph(30, 0.15, 20, seed)
		var (
			wantValue int64
			wantSide  []string
		)
		for i, alg := range flow.Algorithms() {
			cut, err := flow.NewSolver(alg).Solve(context.Background(), g, "0", "29")
			require.NoError(s.T(), err)
			if i == 0 {
				wantValue, wantSide = cut.Value(), cut.SourceSide()
				continue
			}
			require.Equal(s.T(), wantValue, cut.Value(), "seed %d, %s", seed, alg)
			require.Equal(s.T(), wantSide, cut.SourceSide(), "seed %d, %s", seed, alg)
		}
	}
}

// Entry point for running the suite.
func TestFlowSuite(t *testing.T) {
	suite.Run(t, new(FlowSuite))
}

//
// Helpers methods
// // // // // // // // // //

// assertResidualIntegrity verifies that for every pair u→v in the original graph,
// the following invariant holds on the residual graph:
//
//	initial(u,v) + initial(v,u) == residual(u,v) + residual(v,u)
//
// Flow only moves capacity between the two directions of a pair.
func assertResidualIntegrity(t *testing.T, original, result *core.Graph) {
	t.Helper()

	initial := make(map[[2]string]int64)
	for _, e := range original.Edges() {
		if e.From == e.To {
			continue
		}
		initial[[2]string{e.From, e.To}] += e.Weight
	}

	for uv := range initial {
		u, v := uv[0], uv[1]
		before := initial[[2]string{u, v}] + initial[[2]string{v, u}]
		after := result.Weight(u, v) + result.Weight(v, u)
		require.Equal(t, before, after, "residual invariant failed for pair %s↔%s", u, v)
	}
}
