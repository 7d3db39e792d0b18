// Package report renders elimination verdicts as text, a table, or JSON.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/katalvlaran/eliminator/elimination"
	"github.com/katalvlaran/eliminator/standings"
)

// ErrUnknownFormat is returned by Render for a format it cannot produce.
var ErrUnknownFormat = errors.New("report: unknown format")

// Row is one team's line: its standing plus its verdict.
type Row struct {
	Wins      int `json:"wins"`
	Losses    int `json:"losses"`
	Remaining int `json:"remaining"`
	*elimination.Verdict
}

// Report is one run over one standings snapshot.
type Report struct {
	RunID       string `json:"run_id"`
	Fingerprint string `json:"fingerprint"`
	Solver      string `json:"solver,omitempty"`
	StrictLead  bool   `json:"strict_lead"`
	Eliminated  int    `json:"eliminated"`
	Rows        []Row  `json:"teams"`
}

// Option configures New.
type Option func(*Report)

// WithRunID overrides the generated run id.
func WithRunID(id string) Option {
	return func(r *Report) {
		if id != "" {
			r.RunID = id
		}
	}
}

// WithSolver records the algorithm name.
func WithSolver(name string) Option {
	return func(r *Report) { r.Solver = name }
}

// WithStrictLead records the ceiling mode.
func WithStrictLead(strict bool) Option {
	return func(r *Report) { r.StrictLead = strict }
}

// New joins verdicts with their rows in st. Verdicts for unknown teams are
// skipped.
func New(st *standings.Standings, verdicts []*elimination.Verdict, opts ...Option) *Report {
	r := &Report{
		RunID:       uuid.NewString(),
		Fingerprint: fmt.Sprintf("%016x", st.Fingerprint()),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.Rows = lo.FilterMap(verdicts, func(v *elimination.Verdict, _ int) (Row, bool) {
		i, err := st.IndexOf(v.Team)
		if err != nil {
			return Row{}, false
		}
		t := st.Team(i)

		return Row{Wins: t.Wins, Losses: t.Losses, Remaining: t.Remaining, Verdict: v}, true
	})
	r.Eliminated = lo.CountBy(r.Rows, func(row Row) bool { return row.Eliminated })

	return r
}

// Render writes r to w in format ("text", "table", or "json").
func Render(w io.Writer, format string, r *Report) error {
	switch format {
	case "text":
		return renderText(w, r)
	case "table":
		return renderTable(w, r)
	case "json":
		return renderJSON(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Line formats one verdict the way the text report prints it.
func Line(v *elimination.Verdict) string {
	if !v.Eliminated {
		return v.Team + " is not eliminated"
	}

	return v.Team + " is eliminated by the subset R = { " + strings.Join(v.Certificate, " ") + " }"
}

func renderText(w io.Writer, r *Report) error {
	for _, row := range r.Rows {
		if _, err := fmt.Fprintln(w, Line(row.Verdict)); err != nil {
			return err
		}
	}

	return nil
}

func renderTable(w io.Writer, r *Report) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Team", "W", "L", "R", "Ceiling", "Status", "Reason", "Certificate"})
	for _, row := range r.Rows {
		status, reason := "alive", "-"
		if row.Eliminated {
			status, reason = "eliminated", string(row.Reason)
		}
		t.AppendRow(table.Row{
			row.Team, row.Wins, row.Losses, row.Remaining, row.Ceiling,
			status, reason, strings.Join(row.Certificate, ", "),
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "", "eliminated", strconv.Itoa(r.Eliminated) + "/" + strconv.Itoa(len(r.Rows)), ""})

	t.Render()

	return nil
}

func renderJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}
