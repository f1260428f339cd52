package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridmap/core"
	"github.com/katalvlaran/gridmap/simulate"
)

var flagSteps int

var frontierCmd = &cobra.Command{
	Use:   "frontier <scenario>",
	Short: "Show the exploration frontier after a number of moves",
	Long: `Explore for at most --steps moves, then list every node that still
needs a visit with its undiscovered exits ("unscanned" for nodes known
only from the far side of an edge).`,
	Args: cobra.ExactArgs(1),
	RunE: runFrontier,
}

func init() {
	frontierCmd.Flags().IntVar(&flagSteps, "steps", 3, "Moves before the snapshot (> 0)")
}

func runFrontier(cmd *cobra.Command, args []string) error {
	if flagSteps <= 0 {
		return fmt.Errorf("--steps must be > 0, got %d", flagSteps)
	}
	sc, err := openScenario(args[0])
	if err != nil {
		return err
	}
	r, err := simulate.FromScenario(sc,
		simulate.WithLogger(newLogger(sc.Settings.LogLevel)),
		simulate.WithMaxSteps(flagSteps),
	)
	if err != nil {
		return err
	}
	res, err := r.Run(cmd.Context())
	if err != nil && !errors.Is(err, simulate.ErrStepLimit) {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "after %d moves at %v:\n", res.Steps, res.Final)
	if len(res.Frontier) == 0 {
		fmt.Fprintln(out, "  nothing left to explore")
		return nil
	}
	for _, n := range res.Frontier {
		fmt.Fprintf(out, "  %-8v %s\n", n, describe(res.Pending[n]))
	}

	return nil
}

func describe(pending []core.Direction) string {
	if len(pending) == 0 {
		return "unscanned"
	}
	names := make([]string, len(pending))
	for i, d := range pending {
		names[i] = d.Short()
	}

	return strings.Join(names, " ")
}
