package standings

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
)

var (
	// ErrUnknownCompetitor is returned when a name does not resolve to an index.
	ErrUnknownCompetitor = errors.New("standings: unknown competitor")

	// ErrMalformedSchedule is returned for negative counts, duplicate or
	// empty names, bad pairs, and inconsistent or unparsable input.
	ErrMalformedSchedule = errors.New("standings: malformed schedule")
)

// Team is one row of the standings table.
type Team struct {
	Name      string
	Wins      int
	Losses    int
	Remaining int
}

// MaxWins is the most games the team can finish with.
func (t Team) MaxWins() int { return t.Wins + t.Remaining }

// Pair is an unordered pair of competitor indices, smaller index first.
type Pair struct {
	A, B int
}

// MakePair canonicalizes {i, j}.
func MakePair(i, j int) Pair {
	if j < i {
		i, j = j, i
	}

	return Pair{A: i, B: j}
}

// Option configures validation in New and the parsers.
type Option func(*settings)

type settings struct {
	consistentTotals bool
}

// WithConsistentTotals rejects tables where a team's games against the
// listed competitors exceed its Remaining count.
func WithConsistentTotals() Option {
	return func(s *settings) { s.consistentTotals = true }
}

// Standings is an immutable snapshot. All methods are safe for concurrent use.
type Standings struct {
	teams []Team
	index map[string]int
	games map[Pair]int
}

// New validates teams and games and returns a snapshot holding copies of both.
// Zero-count pairs are dropped.
func New(teams []Team, games map[Pair]int, opts ...Option) (*Standings, error) {
	var cfg settings
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Standings{
		teams: append([]Team(nil), teams...),
		index: make(map[string]int, len(teams)),
		games: make(map[Pair]int, len(games)),
	}
	for i, t := range s.teams {
		switch {
		case t.Name == "":
			return nil, fmt.Errorf("%w: team %d has an empty name", ErrMalformedSchedule, i)
		case t.Wins < 0 || t.Losses < 0 || t.Remaining < 0:
			return nil, fmt.Errorf("%w: team %q has a negative count", ErrMalformedSchedule, t.Name)
		}
		if prev, dup := s.index[t.Name]; dup {
			return nil, fmt.Errorf("%w: team %q listed at %d and %d", ErrMalformedSchedule, t.Name, prev, i)
		}
		s.index[t.Name] = i
	}

	n := len(s.teams)
	for p, count := range games {
		switch {
		case p.A < 0 || p.B < 0 || p.A >= n || p.B >= n:
			return nil, fmt.Errorf("%w: pair {%d,%d} out of range [0,%d)", ErrMalformedSchedule, p.A, p.B, n)
		case p.A == p.B:
			return nil, fmt.Errorf("%w: team %q scheduled against itself", ErrMalformedSchedule, s.teams[p.A].Name)
		case count < 0:
			return nil, fmt.Errorf("%w: negative games between %q and %q",
				ErrMalformedSchedule, s.teams[p.A].Name, s.teams[p.B].Name)
		case count == 0:
			continue
		}
		s.games[MakePair(p.A, p.B)] += count
	}

	if cfg.consistentTotals {
		listed := make([]int, n)
		for p, count := range s.games {
			listed[p.A] += count
			listed[p.B] += count
		}
		for i, t := range s.teams {
			if listed[i] > t.Remaining {
				return nil, fmt.Errorf("%w: team %q has %d games listed but only %d remaining",
					ErrMalformedSchedule, t.Name, listed[i], t.Remaining)
			}
		}
	}

	return s, nil
}

// Len returns the number of competitors.
func (s *Standings) Len() int { return len(s.teams) }

// IndexOf resolves an exact, case-sensitive name.
func (s *Standings) IndexOf(name string) (int, error) {
	i, ok := s.index[name]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownCompetitor, name)
	}

	return i, nil
}

// Team returns row i. The caller validates i.
func (s *Standings) Team(i int) Team { return s.teams[i] }

// Wins returns the wins of competitor i.
func (s *Standings) Wins(i int) int { return s.teams[i].Wins }

// Losses returns the losses of competitor i.
func (s *Standings) Losses(i int) int { return s.teams[i].Losses }

// Remaining returns the games left for competitor i.
func (s *Standings) Remaining(i int) int { return s.teams[i].Remaining }

// MaxWins returns Wins(i) + Remaining(i).
func (s *Standings) MaxWins(i int) int { return s.teams[i].MaxWins() }

// Name returns the name of competitor i.
func (s *Standings) Name(i int) string { return s.teams[i].Name }

// Names returns all names in index order.
func (s *Standings) Names() []string {
	out := make([]string, len(s.teams))
	for i, t := range s.teams {
		out[i] = t.Name
	}

	return out
}

// Teams returns a copy of every row in index order.
func (s *Standings) Teams() []Team {
	return append([]Team(nil), s.teams...)
}

// GamesBetween returns the games left between i and j; 0 for i == j or an
// absent pair.
func (s *Standings) GamesBetween(i, j int) int {
	if i == j {
		return 0
	}

	return s.games[MakePair(i, j)]
}

// Pairs returns every pair with games left, ordered by (A, B).
func (s *Standings) Pairs() []Pair {
	out := make([]Pair, 0, len(s.games))
	for p := range s.games {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}

		return out[i].B < out[j].B
	})

	return out
}

// Fingerprint is a content digest of the snapshot. Two snapshots with the
// same rows in the same order and the same schedule share a fingerprint.
func (s *Standings) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte
	putInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = d.Write(buf[:])
	}

	putInt(len(s.teams))
	for _, t := range s.teams {
		putInt(len(t.Name))
		_, _ = d.WriteString(t.Name)
		putInt(t.Wins)
		putInt(t.Losses)
		putInt(t.Remaining)
	}
	for _, p := range s.Pairs() {
		putInt(p.A)
		putInt(p.B)
		putInt(s.games[p])
	}

	return d.Sum64()
}
