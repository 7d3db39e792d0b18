// Package elimination decides whether a competitor can still finish first
// and, when it cannot, names a subset of competitors that proves it.
//
// A query for target t first tries the trivial check (another competitor
// already has more wins than t's ceiling). Otherwise it builds the
// network.Network for t, solves it with a MaxFlowSolver, and reads the
// minimum cut back through the network's Numbering: t is eliminated exactly
// when some game vertex stays on the source side, and the teams of those
// games form the certificate R, which satisfies
//
//	(Σ wins(R) + Σ games within R) / |R| > ceiling(t)
//
// By default the ceiling is wins(t)+remaining(t) and a tie for first still
// counts as finishing first. WithStrictLead(true) lowers the ceiling by one.
package elimination
