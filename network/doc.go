// Package network reduces a standings snapshot to the max-flow instance that
// decides whether one target competitor can still finish first.
//
// Vertex numbering for n competitors and target t (m = n-1 others):
//
//	0                          source
//	1 .. C(m,2)                one game vertex per pair of others
//	C(m,2)+1 .. C(m,2)+m       one team vertex per other
//	C(m,2)+m+1                 sink
//
// The others are addressed by compacted index ci in [0, m): competitors after
// t shift down by one (TrueIndex/CompactIndex convert). Game vertices follow
// ci ascending, then cj > ci ascending. The elimination analyzer inverts this
// numbering, so it is exposed as a value type (Numbering) rather than hidden
// in the builder.
//
// Arcs, for a ceiling W (by default wins(t)+remaining(t)):
//
//	source → game(a,b)   capacity gamesBetween(a,b), omitted when 0
//	game(a,b) → team(a)  flow.Unbounded
//	game(a,b) → team(b)  flow.Unbounded
//	team(c) → sink       capacity max(0, W - wins(c)), always present
package network
