package flow_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/eliminator/core"
	"github.com/katalvlaran/eliminator/flow"
)

// DinicSuite exercises Dinic-specific behavior.
type DinicSuite struct {
	suite.Suite
}

// TestLevelRebuildIntervalMoreThanOne ensures that setting LevelRebuildInterval>1
// does not change the result compared to default (never rebuild).
func (s *DinicSuite) TestLevelRebuildIntervalMoreThanOne() {
	// S→A(2), S→B(1), A→C(1), B→C(1), C→T(2)
	g := core.NewFlowNetwork()
	_, _ = g.AddEdge("S", "A", 2)
	_, _ = g.AddEdge("S", "B", 1)
	_, _ = g.AddEdge("A", "C", 1)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("C", "T", 2)

	opts1 := flow.DefaultOptions()
	opts1.LevelRebuildInterval = 2
	mf1, _, err1 := flow.Dinic(context.Background(), g, "S", "T", opts1)
	require.NoError(s.T(), err1)

	mf2, _, err2 := flow.Dinic(context.Background(), g, "S", "T", flow.DefaultOptions())
	require.NoError(s.T(), err2)

	require.Equal(s.T(), mf1, mf2)
	require.Equal(s.T(), int64(2), mf1)
}

// TestWideBipartite pushes many unit paths in a single phase.
func (s *DinicSuite) TestWideBipartite() {
	g := core.NewFlowNetwork()
	for i := 1; i <= 200; i++ {
		ai := fmt.Sprintf("A%d", i)
		bi := fmt.Sprintf("B%d", i)
		_, _ = g.AddEdge("S", ai, 1)
		_, _ = g.AddEdge(ai, bi, 1)
		_, _ = g.AddEdge(bi, "T", 1)
	}

	mf, res, err := flow.Dinic(context.Background(), g, "S", "T", flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(200), mf)
	assertResidualIntegrity(s.T(), g, res)
}

// TestNilContext treats a nil context as Background.
func (s *DinicSuite) TestNilContext() {
	g := core.NewFlowNetwork()
	_, _ = g.AddEdge("s", "t", 3)

	//nolint:staticcheck // nil context is accepted on purpose
	mf, _, err := flow.Dinic(nil, g, "s", "t", flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(3), mf)
}

// Entry point for running the suite.
func TestDinicSuite(t *testing.T) {
	suite.Run(t, new(DinicSuite))
}
