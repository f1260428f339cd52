package main

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridmap/dijkstra"
)

var (
	flagFrom string
	flagTo   string
)

var routeCmd = &cobra.Command{
	Use:   "route <scenario>",
	Short: "Shortest route between two nodes of a scenario world",
	Long: `Compute the shortest route over the scenario world, skipping blocked
edges. Prints one (node, exit) step per line and the total length, or
"unreachable".

Examples:
  gridmap route reference --from 0,0 --to 0,2`,
	Args: cobra.ExactArgs(1),
	RunE: runRoute,
}

func init() {
	routeCmd.Flags().StringVar(&flagFrom, "from", "", "Start node, x,y")
	routeCmd.Flags().StringVar(&flagTo, "to", "", "Target node, x,y")
	_ = routeCmd.MarkFlagRequired("from")
	_ = routeCmd.MarkFlagRequired("to")
}

func runRoute(cmd *cobra.Command, args []string) error {
	sc, err := openScenario(args[0])
	if err != nil {
		return err
	}
	world, err := sc.World()
	if err != nil {
		return err
	}
	from, err := parseNode(flagFrom)
	if err != nil {
		return pkgerrors.Wrap(err, "--from")
	}
	to, err := parseNode(flagTo)
	if err != nil {
		return pkgerrors.Wrap(err, "--to")
	}

	out := cmd.OutOrStdout()
	route, err := dijkstra.ShortestRoute(world, from, to)
	if errors.Is(err, dijkstra.ErrUnreachable) {
		fmt.Fprintf(out, "%v -> %v: unreachable\n", from, to)
		return nil
	}
	if err != nil {
		return err
	}
	for _, step := range route {
		fmt.Fprintln(out, step)
	}
	fmt.Fprintf(out, "length: %d\n", world.RouteLength(route))

	return nil
}
