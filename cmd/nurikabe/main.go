// nurikabe is a terminal solver and library manager for Nurikabe puzzles.
//
// Usage:
//
//	nurikabe solve [file]       - Solve a puzzle and print the result
//	nurikabe check <file>       - Check a board against the rules
//	nurikabe import <file...>   - Add puzzle files to the library
//	nurikabe list               - List built-in and stored puzzles
//
// Global flags:
//
//	--config <path> - Path to a config YAML
//	--db <path>     - Puzzle library path (overrides config)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avolkov/nurikabe/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string

	cfg config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nurikabe",
	Short: "Nurikabe - solve and manage Nurikabe puzzles",
	Long: `Nurikabe is a logic-puzzle solver for the terminal. It deduces as much
as the rules force, probes the rest one cell at a time, and reports
whether a board is solvable, contradictory, or ambiguous.

Available commands:
  solve    - Solve a puzzle from the library, a file, or the built-ins
  check    - Evaluate a board file and report rule violations
  import   - Add puzzle files to the library
  list     - Show built-in and stored puzzles

Examples:
  nurikabe solve --builtin crosshatch-5
  nurikabe solve my-puzzle.yaml --live
  nurikabe check my-board.yaml
  nurikabe import puzzles/*.yaml
  nurikabe list`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return err
		}
		if flagDBPath != "" {
			cfg.DB = flagDBPath
		}
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to puzzle library database")

	// Add subcommands
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(listCmd)
}
