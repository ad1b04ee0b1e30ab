package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/avolkov/nurikabe/internal/board"
	"github.com/avolkov/nurikabe/internal/checker"
	"github.com/avolkov/nurikabe/internal/grid"
	"github.com/avolkov/nurikabe/internal/puzzle"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Check a board against the rules",
	Long: `Evaluate a board file and report every rule violation. The board may
be partial; only rules that are already beyond repair are reported.

Exits nonzero when the board breaks a rule.

Examples:
  nurikabe check finished-board.yaml
  nurikabe check work-in-progress.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "nurikabe"})

	def, err := puzzle.Load(args[0])
	if err != nil {
		logger.Error("could not load board", "error", err)
		os.Exit(1)
	}
	b, err := board.New(def)
	if err != nil {
		logger.Error("could not build board", "error", err)
		os.Exit(1)
	}

	verdict := checker.Evaluate(b)

	highlight := make(map[grid.Coord]bool)
	for _, v := range verdict.Violations {
		for _, c := range v.Cells {
			highlight[c] = true
		}
	}
	fmt.Println(renderBoard(b, highlight))
	fmt.Println()

	if verdict.OK() {
		if b.UnknownCount() > 0 {
			logger.Info("no violations", "open", b.UnknownCount())
		} else {
			logger.Info("board is a valid solution")
		}
		return
	}

	for _, v := range verdict.Violations {
		logger.Warn("rule broken", "violation", v)
	}
	os.Exit(1)
}
