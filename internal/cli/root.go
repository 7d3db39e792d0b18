// Package cli provides the command-line interface for eliminator.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/eliminator/elimination"
	"github.com/katalvlaran/eliminator/flow"
	"github.com/katalvlaran/eliminator/internal/config"
	"github.com/katalvlaran/eliminator/internal/metrics"
	"github.com/katalvlaran/eliminator/standings"
)

// Version information (set at build time).
var Version = "0.1.0"

// tieNote explains the default ceiling in command help.
const tieNote = `A competitor that can at best tie for first is reported as not eliminated.
Pass --strict-lead to require an outright lead instead, which also eliminates
competitors that can only draw level with the leader.`

// envKey stores the per-invocation env in the command context.
type envKey struct{}

// env is what PersistentPreRunE prepares for every command.
type env struct {
	cfg     *config.Config
	log     zerolog.Logger
	metrics *metrics.Manager
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "eliminator",
		Short: "Decide which competitors can no longer finish first",
		Long: `eliminator reads a standings table with the games left between every pair
of competitors and reports, for each competitor, whether it can still finish
with the most wins. Eliminated competitors come with the subset of rivals
that proves it.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			e := &env{
				cfg:     cfg,
				log:     newLogger(cmd.ErrOrStderr(), cfg.Level()),
				metrics: metrics.NewManager(),
			}
			e.log.Debug().Str("solver", cfg.Solver).Bool("strict_lead", cfg.StrictLead).
				Int("workers", cfg.Workers).Msg("config loaded")
			cmd.SetContext(context.WithValue(cmd.Context(), envKey{}, e))

			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			e, ok := cmd.Context().Value(envKey{}).(*env)
			if !ok || e.cfg.MetricsFile == "" {
				return nil
			}

			return e.metrics.WriteTextfile(e.cfg.MetricsFile)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (YAML); default $"+config.EnvConfigFile)
	pf.String("log-level", "", "log level (trace|debug|info|warn|error)")
	pf.String("solver", "", fmt.Sprintf("max-flow algorithm %v", flow.Algorithms()))
	pf.Bool("strict-lead", false, "count a tie for first as elimination; without it a tie is not eliminated")
	pf.Int("workers", 0, "teams evaluated in parallel")
	pf.StringP("output", "o", "", "output format (text|table|json)")
	pf.Bool("consistent-totals", false, "reject tables whose listed games exceed a team's remaining count")
	pf.String("metrics-file", "", "write Prometheus metrics to this file after the run")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return config.Outputs(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("solver", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(flow.Algorithms()))
		for _, a := range flow.Algorithms() {
			names = append(names, string(a))
		}

		return names, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newAgainstCommand())
	rootCmd.AddCommand(newNetworkCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return nil
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()
}

// getEnv returns the env prepared by PersistentPreRunE, or defaults when a
// command runs without the root.
func getEnv(ctx context.Context) *env {
	if e, ok := ctx.Value(envKey{}).(*env); ok {
		return e
	}

	return &env{cfg: config.New(), log: zerolog.Nop(), metrics: metrics.NewManager()}
}

func (e *env) loadStandings(path string) (*standings.Standings, error) {
	var opts []standings.Option
	if e.cfg.ConsistentTotals {
		opts = append(opts, standings.WithConsistentTotals())
	}
	st, err := standings.Load(path, opts...)
	if err != nil {
		return nil, err
	}
	e.log.Debug().Str("file", path).Int("teams", st.Len()).
		Str("fingerprint", fmt.Sprintf("%016x", st.Fingerprint())).Msg("standings loaded")

	return st, nil
}

func (e *env) analyzer(st *standings.Standings) *elimination.Analyzer {
	return elimination.NewAnalyzer(st,
		elimination.WithSolver(flow.NewSolver(e.cfg.Algorithm(), flow.WithLogger(e.log))),
		elimination.WithStrictLead(e.cfg.StrictLead),
		elimination.WithWorkers(e.cfg.Workers),
		elimination.WithLogger(e.log),
		elimination.WithRecorder(e.metrics),
	)
}
