// Package eliminator decides, for a standings table with games still to play,
// which competitors can no longer finish first.
//
// A competitor is eliminated when no outcome of the remaining games lets it
// end with at least as many wins as everyone else. Some cases are trivial
// (another team already has more wins than the competitor can reach); the rest
// are decided by a maximum flow through a small network built per competitor:
//
//	          games among the others      the others
//	source ──► (A,B) ──┬──────────────►  A ──┐
//	        ├► (A,C) ──┼──────────────►  B ──┼──► sink
//	        └► (B,C) ──┴──────────────►  C ──┘
//	   cap: games left    cap: ∞      cap: room under the ceiling
//
// If the flow cannot use every remaining game, the competitor is eliminated,
// and the teams of the game vertices left on the source side of the minimum
// cut prove it.
//
// Layout:
//
//	core/         thread-safe directed/undirected graph with int64 weights
//	bfs/          breadth-first traversal with edge and depth filters
//	flow/         Ford–Fulkerson, Edmonds–Karp, Dinic and minimum cuts
//	standings/    immutable standings snapshot, text and YAML readers
//	network/      vertex numbering and the per-competitor flow network
//	elimination/  the Analyzer: verdicts, certificates, parallel reports
//	internal/     config, metrics, report rendering and the CLI commands
//	cmd/eliminator/
//	              the command-line tool
//
//	go install github.com/katalvlaran/eliminator/cmd/eliminator@latest
package eliminator
