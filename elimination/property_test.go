package elimination_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eliminator/elimination"
	"github.com/katalvlaran/eliminator/flow"
	"github.com/katalvlaran/eliminator/standings"
)

// randomTable builds a small table with up to 3 games per pair and a few
// games against clubs outside the table.
func randomTable(t *testing.T, r *rand.Rand) *standings.Standings {
	t.Helper()
	n := 2 + r.Intn(4)
	games := make(map[standings.Pair]int)
	listed := make([]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g := r.Intn(4)
			if g == 0 {
				continue
			}
			games[standings.MakePair(i, j)] = g
			listed[i] += g
			listed[j] += g
		}
	}
	teams := make([]standings.Team, n)
	for i := range teams {
		teams[i] = standings.Team{
			Name:      fmt.Sprintf("T%d", i),
			Wins:      r.Intn(12),
			Losses:    r.Intn(12),
			Remaining: listed[i] + r.Intn(3),
		}
	}
	st, err := standings.New(teams, games, standings.WithConsistentTotals())
	require.NoError(t, err)

	return st
}

// canFinishFirst enumerates every split of the games among the others and
// reports whether one keeps them all at or below ceiling. The target wins
// everything it plays; games against clubs outside the table are losses.
func canFinishFirst(st *standings.Standings, target, ceiling int) bool {
	var pairs []standings.Pair
	for _, p := range st.Pairs() {
		if p.A != target && p.B != target {
			pairs = append(pairs, p)
		}
	}
	wins := make([]int, st.Len())
	for i := range wins {
		wins[i] = st.Wins(i)
	}

	var walk func(k int) bool
	walk = func(k int) bool {
		for i, w := range wins {
			if i != target && w > ceiling {
				return false
			}
		}
		if k == len(pairs) {
			return true
		}
		p := pairs[k]
		g := st.GamesBetween(p.A, p.B)
		for a := 0; a <= g; a++ {
			wins[p.A] += a
			wins[p.B] += g - a
			ok := walk(k + 1)
			wins[p.A] -= a
			wins[p.B] -= g - a
			if ok {
				return true
			}
		}

		return false
	}

	return walk(0)
}

func TestMatchesExhaustiveSearch(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	ctx := context.Background()
	for round := 0; round < 200; round++ {
		st := randomTable(t, r)
		for _, strict := range []bool{false, true} {
			a := elimination.NewAnalyzer(st, elimination.WithStrictLead(strict))
			verdicts, err := a.EvaluateAll(ctx)
			require.NoError(t, err)
			for i, v := range verdicts {
				want := !canFinishFirst(st, i, v.Ceiling)
				require.Equal(t, want, v.Eliminated, "round %d strict=%v team %s", round, strict, v.Team)
			}
		}
	}
}

// TestCertificatesHoldUp checks the counting argument behind every
// certificate: the certified group cannot keep its average at or below the
// ceiling.
func TestCertificatesHoldUp(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	ctx := context.Background()
	for round := 0; round < 200; round++ {
		st := randomTable(t, r)
		alg := flow.Algorithms()[round%len(flow.Algorithms())]
		a := elimination.NewAnalyzer(st, elimination.WithSolver(flow.NewSolver(alg)))
		verdicts, err := a.EvaluateAll(ctx)
		require.NoError(t, err)
		for _, v := range verdicts {
			if !v.Eliminated {
				require.Nil(t, v.Certificate)
				require.Equal(t, elimination.ReasonNone, v.Reason)
				continue
			}
			require.NotEmpty(t, v.Certificate)
			require.NotContains(t, v.Certificate, v.Team)

			idx := make([]int, len(v.Certificate))
			total := 0
			for k, name := range v.Certificate {
				i, err := st.IndexOf(name)
				require.NoError(t, err)
				idx[k] = i
				total += st.Wins(i)
			}
			for x := range idx {
				require.True(t, x == 0 || idx[x-1] < idx[x], "certificate not in standings order")
				for _, j := range idx[x+1:] {
					total += st.GamesBetween(idx[x], j)
				}
			}
			require.Greater(t, total, len(idx)*v.Ceiling, "round %d team %s", round, v.Team)
		}
	}
}
