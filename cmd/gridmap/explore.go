package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridmap/simulate"
)

var flagMaxSteps int

var exploreCmd = &cobra.Command{
	Use:   "explore <scenario>",
	Short: "Explore a scenario world from its start pose",
	Long: `Run a full exploration: scan, pick the next exit, travel, repeat,
until everything reachable is discovered or the target is reached.
Prints every move and a coverage summary.`,
	Args: cobra.ExactArgs(1),
	RunE: runExplore,
}

func init() {
	exploreCmd.Flags().IntVar(&flagMaxSteps, "max-steps", 0, "Override the scenario's max_steps (0 = keep)")
}

func runExplore(cmd *cobra.Command, args []string) error {
	sc, err := openScenario(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	opts := []simulate.Option{
		simulate.WithLogger(newLogger(sc.Settings.LogLevel)),
		simulate.WithOnMove(func(m simulate.Move) {
			mark := ""
			if m.Corrected {
				mark = " (corrected)"
			}
			fmt.Fprintf(out, "%4d  %-7s %v%s\n", m.Step, m.Mode, m.Report, mark)
		}),
	}
	if flagMaxSteps > 0 {
		opts = append(opts, simulate.WithMaxSteps(flagMaxSteps))
	}

	r, err := simulate.FromScenario(sc, opts...)
	if err != nil {
		return err
	}
	res, err := r.Run(cmd.Context())
	if res != nil {
		fmt.Fprintf(out, "steps: %d, scanned: %d/%d reachable nodes, edges known: %d, final pose: %v\n",
			res.Steps, len(res.Scanned), len(res.Reachable), res.Map.EdgeCount(), res.Final)
		if sc.Target != nil {
			fmt.Fprintf(out, "target %v reached: %t\n", *sc.Target, res.TargetReached)
		}
	}

	return err
}
