package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/eliminator/elimination"
	"github.com/katalvlaran/eliminator/internal/report"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file> <team>",
		Short: "Report one competitor's verdict",
		Long: `Evaluate a single competitor from the standings file and print its verdict.

` + tieNote,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := getEnv(cmd.Context())
			st, err := e.loadStandings(args[0])
			if err != nil {
				return err
			}
			v, err := e.analyzer(st).Evaluate(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			r := report.New(st, []*elimination.Verdict{v},
				report.WithSolver(e.cfg.Solver),
				report.WithStrictLead(e.cfg.StrictLead),
			)

			return report.Render(cmd.OutOrStdout(), e.cfg.Output, r)
		},
	}
}

func newAgainstCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "against <file> <teamA> <teamB>",
		Short: "Print the games left between two competitors",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := getEnv(cmd.Context())
			st, err := e.loadStandings(args[0])
			if err != nil {
				return err
			}
			n, err := e.analyzer(st).GamesRemaining(args[1], args[2])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s vs %s: %d games left\n", args[1], args[2], n)

			return err
		},
	}
}

func newNetworkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "network <file> <team>",
		Short: "Print a competitor's flow network in DIMACS format",
		Long: `Print the max-flow instance built for the competitor in DIMACS "max"
format, with comment lines naming every vertex. Unbounded game→team arcs are
written with the total number of games as their capacity.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := getEnv(cmd.Context())
			st, err := e.loadStandings(args[0])
			if err != nil {
				return err
			}
			nw, err := e.analyzer(st).Network(args[1])
			if err != nil {
				return err
			}

			return nw.WriteDIMACS(cmd.OutOrStdout())
		},
	}
}
