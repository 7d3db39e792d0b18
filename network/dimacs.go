package network

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/eliminator/flow"
)

// WriteDIMACS writes the network as a DIMACS max-flow problem:
//
//	c <comments>
//	p max NODES ARCS
//	n 1 s
//	n NODES t
//	a SRC DST CAP
//
// DIMACS vertices are 1-based, so vertex v is written as v+1. Unbounded arcs
// are written with capacity Demand, which no feasible flow can exceed.
func (nw *Network) WriteDIMACS(w io.Writer) error {
	bw := bufio.NewWriter(w)
	nb := nw.Numbering
	edges := nw.Graph.Edges()

	fmt.Fprintf(bw, "c elimination network for %s (ceiling %d, demand %d)\n",
		nw.st.Name(nw.Target), nw.Ceiling, nw.Demand)
	fmt.Fprintf(bw, "p max %d %d\n", nb.VertexCount(), len(edges))
	fmt.Fprintf(bw, "n %d s\n", nb.Source()+1)
	fmt.Fprintf(bw, "n %d t\n", nb.Sink()+1)
	for v := 1; v < nb.Sink(); v++ {
		fmt.Fprintf(bw, "c %d %s\n", v+1, nw.Label(v))
	}
	for _, e := range edges {
		from, okF := nb.Vertex(e.From)
		to, okT := nb.Vertex(e.To)
		if !okF || !okT {
			return fmt.Errorf("network: arc %s→%s outside the numbering", e.From, e.To)
		}
		capacity := e.Weight
		if capacity == flow.Unbounded {
			capacity = nw.Demand
		}
		fmt.Fprintf(bw, "a %d %d %d\n", from+1, to+1, capacity)
	}

	return bw.Flush()
}
