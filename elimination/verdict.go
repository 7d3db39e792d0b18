package elimination

// Reason says which check decided a verdict.
type Reason string

// Reasons.
const (
	ReasonNone    Reason = "none"
	ReasonTrivial Reason = "trivial"
	ReasonNetwork Reason = "network"
)

// Verdict is the full answer to one query.
type Verdict struct {
	Team       string `json:"team"`
	Eliminated bool   `json:"eliminated"`

	// Reason is ReasonTrivial or ReasonNetwork when Eliminated, else ReasonNone.
	Reason Reason `json:"reason"`

	// Certificate lists the proving competitors in standings order; nil when
	// not eliminated.
	Certificate []string `json:"certificate,omitempty"`

	// Ceiling is the win total the team was measured against.
	Ceiling int `json:"ceiling"`

	// Flow and Demand are set when a network was solved.
	Flow   int64 `json:"flow,omitempty"`
	Demand int64 `json:"demand,omitempty"`
}
