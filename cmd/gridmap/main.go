// gridmap explores and routes over grid maps described by scenario files.
//
// Usage:
//
//	gridmap scenarios                          - List builtin scenarios
//	gridmap explore <scenario>                 - Explore the scenario world
//	gridmap route <scenario> --from x,y --to x,y
//	gridmap frontier <scenario> --steps N      - Show what is left after N moves
//
// A scenario is a builtin name or a path to a YAML file.
//
// Global flags:
//
//	--verbose    - Debug logging (overrides the scenario's log_level)
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridmap/core"
	"github.com/katalvlaran/gridmap/scenario"
)

var flagVerbose bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridmap",
	Short: "Explore and route over grid maps",
	Long: `gridmap drives a simulated explorer over a fully known grid world,
rebuilding the map from scans and traveled paths, and answers shortest-route
queries over scenario worlds.

Examples:
  gridmap scenarios
  gridmap explore reference
  gridmap explore ./maps/maze.yaml --max-steps 500 --verbose
  gridmap route reference --from 0,0 --to 0,2
  gridmap frontier reference --steps 4`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(frontierCmd)
}

// newLogger writes to stderr at the scenario's log_level, or Debug with --verbose.
func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gridmap",
	})
	if lvl, err := log.ParseLevel(level); err == nil && level != "" {
		logger.SetLevel(lvl)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	return logger
}

func openScenario(arg string) (*scenario.Scenario, error) {
	sc, err := scenario.Open(arg)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", arg)
	}

	return sc, nil
}

// parseNode accepts "x,y" or "(x,y)".
func parseNode(s string) (core.Node, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "(") {
		s = "(" + s + ")"
	}

	return scenario.ParseNode(s)
}

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List builtin scenarios",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, name := range scenario.BuiltinNames() {
			sc, err := scenario.Builtin(name)
			if err != nil {
				return err
			}
			world, err := sc.World()
			if err != nil {
				return errors.Wrapf(err, "scenario %s", name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s start %v, %d edges\n", name, sc.Start, world.EdgeCount())
		}
		return nil
	},
}
