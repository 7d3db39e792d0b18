package network

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/eliminator/core"
	"github.com/katalvlaran/eliminator/flow"
	"github.com/katalvlaran/eliminator/standings"
)

// ErrTargetOutOfRange is returned when the target index is not in [0, n).
var ErrTargetOutOfRange = errors.New("network: target index out of range")

// Network is the flow instance built for one target competitor.
type Network struct {
	// Graph is a directed weighted core.Graph whose vertex IDs are
	// Numbering.ID(v) for every v in [0, VertexCount()).
	Graph *core.Graph

	Numbering Numbering

	// Target is the competitor index the network was built for.
	Target int

	// Ceiling is the win total no other competitor may exceed.
	Ceiling int

	// Demand is the sum of source capacities: the games left among the others.
	Demand int64

	st *standings.Standings
}

// Build constructs the network for target with ceiling wins(t)+remaining(t).
func Build(st *standings.Standings, target int) (*Network, error) {
	if target < 0 || target >= st.Len() {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrTargetOutOfRange, target, st.Len())
	}

	return BuildWithCeiling(st, target, st.MaxWins(target))
}

// BuildWithCeiling constructs the network for target with an explicit ceiling.
//
// Steps:
//  1. Add every vertex so that isolated ones still exist in the graph.
//  2. source → game arcs (skipped for zero games) and game → team arcs.
//  3. team → sink arcs with capacity max(0, ceiling - wins(c)).
func BuildWithCeiling(st *standings.Standings, target, ceiling int) (*Network, error) {
	n := st.Len()
	if target < 0 || target >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrTargetOutOfRange, target, n)
	}
	nb := NewNumbering(n, target)
	g := core.NewFlowNetwork()
	nw := &Network{Graph: g, Numbering: nb, Target: target, Ceiling: ceiling, st: st}

	// 1) Vertices
	for v := 0; v < nb.VertexCount(); v++ {
		if err := g.AddVertex(nb.ID(v)); err != nil {
			return nil, err
		}
	}

	// 2) Games
	src := nb.ID(nb.Source())
	for ci := 0; ci < nb.Others(); ci++ {
		for cj := ci + 1; cj < nb.Others(); cj++ {
			gv, _ := nb.GameVertex(ci, cj)
			games := st.GamesBetween(TrueIndex(ci, target), TrueIndex(cj, target))
			if games == 0 {
				continue
			}
			id := nb.ID(gv)
			if err := nw.addArc(src, id, int64(games)); err != nil {
				return nil, err
			}
			if err := nw.addArc(id, nb.ID(nb.TeamVertex(ci)), flow.Unbounded); err != nil {
				return nil, err
			}
			if err := nw.addArc(id, nb.ID(nb.TeamVertex(cj)), flow.Unbounded); err != nil {
				return nil, err
			}
			nw.Demand += int64(games)
		}
	}

	// 3) Teams
	sink := nb.ID(nb.Sink())
	for ci := 0; ci < nb.Others(); ci++ {
		room := ceiling - st.Wins(TrueIndex(ci, target))
		if room < 0 {
			room = 0
		}
		if err := nw.addArc(nb.ID(nb.TeamVertex(ci)), sink, int64(room)); err != nil {
			return nil, err
		}
	}

	return nw, nil
}

func (nw *Network) addArc(from, to string, capacity int64) error {
	if _, err := nw.Graph.AddEdge(from, to, capacity); err != nil {
		return fmt.Errorf("network: arc %s→%s: %w", from, to, err)
	}

	return nil
}

// SourceID and SinkID are the graph vertex IDs handed to a max-flow solver.
func (nw *Network) SourceID() string { return nw.Numbering.ID(nw.Numbering.Source()) }

// SinkID returns the graph vertex ID of the sink.
func (nw *Network) SinkID() string { return nw.Numbering.ID(nw.Numbering.Sink()) }

// Label names vertex v in terms of the standings: "source", "sink",
// "game A-B", or "team A".
func (nw *Network) Label(v int) string {
	nb := nw.Numbering
	switch {
	case v == nb.Source():
		return "source"
	case v == nb.Sink():
		return "sink"
	}
	if a, b, ok := nb.GamePair(v); ok {
		return "game " + nw.st.Name(a) + "-" + nw.st.Name(b)
	}
	if c, ok := nb.TeamOf(v); ok {
		return "team " + nw.st.Name(c)
	}

	return "?"
}
