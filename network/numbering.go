package network

import "strconv"

// TrueIndex maps a compacted index (target removed) back to a competitor index.
func TrueIndex(compacted, target int) int {
	if compacted >= target {
		return compacted + 1
	}

	return compacted
}

// CompactIndex maps a competitor index to its compacted index. It reports
// false for the target itself.
func CompactIndex(index, target int) (int, bool) {
	switch {
	case index == target:
		return 0, false
	case index > target:
		return index - 1, true
	default:
		return index, true
	}
}

// Numbering is the vertex layout of one elimination network. The zero value
// is not useful; use NewNumbering.
type Numbering struct {
	target int
	others int
	games  int
}

// NewNumbering returns the layout for n competitors with target excluded.
// The caller guarantees 0 <= target < n.
func NewNumbering(n, target int) Numbering {
	m := n - 1
	if m < 0 {
		m = 0
	}

	return Numbering{target: target, others: m, games: m * (m - 1) / 2}
}

// Target returns the excluded competitor index.
func (nb Numbering) Target() int { return nb.target }

// Others returns the number of non-target competitors.
func (nb Numbering) Others() int { return nb.others }

// GameCount returns C(Others(), 2).
func (nb Numbering) GameCount() int { return nb.games }

// VertexCount returns 1 + GameCount() + Others() + 1.
func (nb Numbering) VertexCount() int { return nb.games + nb.others + 2 }

// Source is always vertex 0.
func (nb Numbering) Source() int { return 0 }

// Sink is the last vertex.
func (nb Numbering) Sink() int { return nb.VertexCount() - 1 }

// GameVertex returns the vertex of the game between compacted indices ci and
// cj, in either order. It reports false for ci == cj or an index out of range.
func (nb Numbering) GameVertex(ci, cj int) (int, bool) {
	if ci > cj {
		ci, cj = cj, ci
	}
	if ci < 0 || cj >= nb.others || ci == cj {
		return 0, false
	}
	// rows before ci hold (m-1) + (m-2) + ... + (m-ci) games
	offset := ci*nb.others - ci*(ci+1)/2

	return 1 + offset + (cj - ci - 1), true
}

// GamePair inverts GameVertex and returns the TRUE competitor indices (a < b)
// of the two teams in game vertex v.
func (nb Numbering) GamePair(v int) (a, b int, ok bool) {
	if v < 1 || v > nb.games {
		return 0, 0, false
	}
	idx := v - 1
	for ci := 0; ci < nb.others; ci++ {
		row := nb.others - 1 - ci
		if idx < row {
			cj := ci + 1 + idx

			return TrueIndex(ci, nb.target), TrueIndex(cj, nb.target), true
		}
		idx -= row
	}

	return 0, 0, false
}

// IsGame reports whether v is a game vertex.
func (nb Numbering) IsGame(v int) bool { return v >= 1 && v <= nb.games }

// TeamVertex returns the vertex of compacted index ci.
func (nb Numbering) TeamVertex(ci int) int { return nb.games + 1 + ci }

// TeamOf returns the TRUE competitor index of team vertex v.
func (nb Numbering) TeamOf(v int) (int, bool) {
	ci := v - nb.games - 1
	if ci < 0 || ci >= nb.others {
		return 0, false
	}

	return TrueIndex(ci, nb.target), true
}

// ID is the core.Graph vertex ID of v.
func (nb Numbering) ID(v int) string { return strconv.Itoa(v) }

// Vertex parses a core.Graph vertex ID back into a vertex number.
func (nb Numbering) Vertex(id string) (int, bool) {
	v, err := strconv.Atoi(id)
	if err != nil || v < 0 || v >= nb.VertexCount() || nb.ID(v) != id {
		return 0, false
	}

	return v, true
}
