package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/eliminator/internal/report"
)

// debounceDelay collapses the burst of events an editor save produces.
const debounceDelay = 100 * time.Millisecond

func newReportCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "report <file>",
		Short: "Report every competitor's verdict",
		Long: `Evaluate every competitor in the standings file and print the verdicts in
table order. Files ending in .yaml or .yml are read as YAML, anything else
as the plain text format.

With --watch the file is re-read and re-evaluated whenever it changes.

` + tieNote,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := getEnv(cmd.Context())
			if err := runReport(cmd, e, args[0]); err != nil {
				return err
			}
			if !watch {
				return nil
			}

			return watchFile(cmd.Context(), e, args[0], func() {
				if err := runReport(cmd, e, args[0]); err != nil {
					e.log.Error().Err(err).Str("file", args[0]).Msg("report failed")
				}
			})
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-run whenever the file changes")

	return cmd
}

func runReport(cmd *cobra.Command, e *env, path string) error {
	st, err := e.loadStandings(path)
	if err != nil {
		return err
	}
	verdicts, err := e.analyzer(st).EvaluateAll(cmd.Context())
	if err != nil {
		return err
	}
	r := report.New(st, verdicts,
		report.WithSolver(e.cfg.Solver),
		report.WithStrictLead(e.cfg.StrictLead),
	)

	return report.Render(cmd.OutOrStdout(), e.cfg.Output, r)
}

// watchFile calls onChange after every debounced write to path until ctx is
// done. The parent directory is watched so that editors replacing the file
// by rename are noticed.
func watchFile(ctx context.Context, e *env, path string, onChange func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	e.log.Info().Str("file", abs).Msg("watching for changes")

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != abs || event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			debounce = time.After(debounceDelay)

		case <-debounce:
			debounce = nil
			e.log.Debug().Str("file", abs).Msg("file changed, re-evaluating")
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			e.log.Error().Err(err).Msg("watcher error")
		}
	}
}
