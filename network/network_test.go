package network_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/eliminator/flow"
	"github.com/katalvlaran/eliminator/network"
	"github.com/katalvlaran/eliminator/standings"
)

const teams4 = `4
Atlanta       83 71  8  0 1 6 1
Philadelphia  80 79  3  1 0 0 2
New_York      78 78  6  6 0 0 0
Montreal      77 82  3  1 2 0 0
`

// NumberingSuite checks the index arithmetic independently of any flow.
type NumberingSuite struct {
	suite.Suite
}

func (s *NumberingSuite) TestTrueAndCompactIndex() {
	for n := 1; n <= 8; n++ {
		for target := 0; target < n; target++ {
			seen := make(map[int]bool)
			for ci := 0; ci < n-1; ci++ {
				idx := network.TrueIndex(ci, target)
				require.NotEqual(s.T(), target, idx)
				require.True(s.T(), idx >= 0 && idx < n)
				require.False(s.T(), seen[idx], "TrueIndex must be injective")
				seen[idx] = true

				back, ok := network.CompactIndex(idx, target)
				require.True(s.T(), ok)
				require.Equal(s.T(), ci, back)
			}
			_, ok := network.CompactIndex(target, target)
			require.False(s.T(), ok)
		}
	}
}

func (s *NumberingSuite) TestTrueIndexBoundary() {
	require.Equal(s.T(), 0, network.TrueIndex(0, 1))
	require.Equal(s.T(), 2, network.TrueIndex(1, 1))
	require.Equal(s.T(), 1, network.TrueIndex(0, 0))
	require.Equal(s.T(), 3, network.TrueIndex(3, 5))
}

func (s *NumberingSuite) TestCounts() {
	nb := network.NewNumbering(5, 2)
	require.Equal(s.T(), 4, nb.Others())
	require.Equal(s.T(), 6, nb.GameCount())
	require.Equal(s.T(), 12, nb.VertexCount())
	require.Equal(s.T(), 0, nb.Source())
	require.Equal(s.T(), 11, nb.Sink())
	require.Equal(s.T(), 7, nb.TeamVertex(0))
	require.Equal(s.T(), 10, nb.TeamVertex(3))

	two := network.NewNumbering(2, 0)
	require.Zero(s.T(), two.GameCount())
	require.Equal(s.T(), 3, two.VertexCount())
}

func (s *NumberingSuite) TestGameVertexFollowsEnumeration() {
	for n := 2; n <= 9; n++ {
		for target := 0; target < n; target++ {
			nb := network.NewNumbering(n, target)
			want := 1
			for ci := 0; ci < nb.Others(); ci++ {
				for cj := ci + 1; cj < nb.Others(); cj++ {
					v, ok := nb.GameVertex(ci, cj)
					require.True(s.T(), ok)
					require.Equal(s.T(), want, v, "n=%d t=%d (%d,%d)", n, target, ci, cj)
					rv, _ := nb.GameVertex(cj, ci)
					require.Equal(s.T(), v, rv)

					a, b, ok := nb.GamePair(v)
					require.True(s.T(), ok)
					require.Equal(s.T(), network.TrueIndex(ci, target), a)
					require.Equal(s.T(), network.TrueIndex(cj, target), b)
					want++
				}
			}
			require.Equal(s.T(), nb.GameCount()+1, want)
		}
	}
}

func (s *NumberingSuite) TestOutOfRange() {
	nb := network.NewNumbering(4, 1)
	_, ok := nb.GameVertex(1, 1)
	require.False(s.T(), ok)
	_, ok = nb.GameVertex(0, 3)
	require.False(s.T(), ok)
	_, _, ok = nb.GamePair(0)
	require.False(s.T(), ok)
	_, _, ok = nb.GamePair(nb.GameCount() + 1)
	require.False(s.T(), ok)
	_, ok = nb.TeamOf(nb.Sink())
	require.False(s.T(), ok)

	c, ok := nb.TeamOf(nb.TeamVertex(1))
	require.True(s.T(), ok)
	require.Equal(s.T(), 2, c)
}

func (s *NumberingSuite) TestVertexIDs() {
	nb := network.NewNumbering(4, 0)
	for v := 0; v < nb.VertexCount(); v++ {
		back, ok := nb.Vertex(nb.ID(v))
		require.True(s.T(), ok)
		require.Equal(s.T(), v, back)
	}
	for _, bad := range []string{"", "-1", "08", "+3", "x", "8"} {
		_, ok := nb.Vertex(bad)
		require.False(s.T(), ok, bad)
	}
}

func TestNumberingSuite(t *testing.T) {
	suite.Run(t, new(NumberingSuite))
}

// BuilderSuite checks arcs and capacities of built networks.
type BuilderSuite struct {
	suite.Suite
	st *standings.Standings
}

func (s *BuilderSuite) SetupTest() {
	st, err := standings.Read(strings.NewReader(teams4))
	require.NoError(s.T(), err)
	s.st = st
}

func (s *BuilderSuite) TestPhiladelphiaNetwork() {
	nw, err := network.Build(s.st, 1)
	require.NoError(s.T(), err)
	nb := nw.Numbering
	g := nw.Graph

	require.Equal(s.T(), 83, nw.Ceiling)
	require.Equal(s.T(), nb.VertexCount(), g.VertexCount())

	// others: Atlanta(ci 0), New_York(ci 1), Montreal(ci 2)
	gAN, _ := nb.GameVertex(0, 1)
	gAM, _ := nb.GameVertex(0, 2)
	gNM, _ := nb.GameVertex(1, 2)
	src, sink := nw.SourceID(), nw.SinkID()

	require.Equal(s.T(), int64(6), g.Weight(src, nb.ID(gAN)))
	require.Equal(s.T(), int64(1), g.Weight(src, nb.ID(gAM)))
	require.False(s.T(), g.HasEdge(src, nb.ID(gNM)), "zero-game pair has no source arc")
	require.Equal(s.T(), int64(7), nw.Demand)

	require.Equal(s.T(), flow.Unbounded, g.Weight(nb.ID(gAN), nb.ID(nb.TeamVertex(0))))
	require.Equal(s.T(), flow.Unbounded, g.Weight(nb.ID(gAN), nb.ID(nb.TeamVertex(1))))

	require.True(s.T(), g.HasEdge(nb.ID(nb.TeamVertex(0)), sink), "zero-capacity sink arc is kept")
	require.Zero(s.T(), g.Weight(nb.ID(nb.TeamVertex(0)), sink))
	require.Equal(s.T(), int64(5), g.Weight(nb.ID(nb.TeamVertex(1)), sink))
	require.Equal(s.T(), int64(6), g.Weight(nb.ID(nb.TeamVertex(2)), sink))

	require.Equal(s.T(), "game Atlanta-New_York", nw.Label(gAN))
	require.Equal(s.T(), "team Montreal", nw.Label(nb.TeamVertex(2)))
	require.Equal(s.T(), "source", nw.Label(0))
	require.Equal(s.T(), "sink", nw.Label(nb.Sink()))
}

func (s *BuilderSuite) TestClampedCeiling() {
	nw, err := network.BuildWithCeiling(s.st, 3, 79)
	require.NoError(s.T(), err)
	nb := nw.Numbering
	// Atlanta has 83 wins, above the ceiling: clamped to 0
	require.Zero(s.T(), nw.Graph.Weight(nb.ID(nb.TeamVertex(0)), nw.SinkID()))
	require.Equal(s.T(), int64(1), nw.Graph.Weight(nb.ID(nb.TeamVertex(2)), nw.SinkID()))
}

func (s *BuilderSuite) TestTargetOutOfRange() {
	_, err := network.Build(s.st, 4)
	require.ErrorIs(s.T(), err, network.ErrTargetOutOfRange)
	_, err = network.BuildWithCeiling(s.st, -1, 10)
	require.ErrorIs(s.T(), err, network.ErrTargetOutOfRange)
}

func (s *BuilderSuite) TestWriteDIMACS() {
	st, err := standings.Read(strings.NewReader(`3
A 10 2 3  0 1 2
B  9 3 2  1 0 1
C  8 4 3  2 1 0
`))
	require.NoError(s.T(), err)
	nw, err := network.Build(st, 0)
	require.NoError(s.T(), err)

	var buf bytes.Buffer
	require.NoError(s.T(), nw.WriteDIMACS(&buf))
	require.Equal(s.T(), `c elimination network for A (ceiling 13, demand 1)
p max 5 5
n 1 s
n 5 t
c 2 game B-C
c 3 team B
c 4 team C
a 1 2 1
a 2 3 1
a 2 4 1
a 3 5 4
a 4 5 5
`, buf.String())
}

func TestBuilderSuite(t *testing.T) {
	suite.Run(t, new(BuilderSuite))
}
