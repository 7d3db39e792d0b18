// Package standings holds the immutable standings snapshot the elimination
// engine reads: one row per competitor (wins, losses, games remaining) and a
// sparse table of games left between each unordered pair.
//
// Indices are positions in the team slice passed to New and never change for
// the lifetime of a *Standings. Pairs are canonical (smaller index first) and
// an absent pair means zero games.
//
// Two input formats are supported:
//
//	# text: n, then n rows of "name wins losses remaining g_0 … g_{n-1}"
//	4
//	Atlanta       83 71  8  0 1 6 1
//	Philadelphia  80 79  3  1 0 0 2
//	New_York      78 78  6  6 0 0 0
//	Montreal      77 82  3  1 2 0 0
//
//	# YAML
//	teams:
//	  - {name: Atlanta, wins: 83, losses: 71, remaining: 8}
//	  ...
//	games:
//	  - {home: Atlanta, away: Philadelphia, count: 1}
//
// Load picks the parser from the file extension.
package standings
