package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/avolkov/nurikabe/internal/board"
	"github.com/avolkov/nurikabe/internal/puzzle"
	"github.com/avolkov/nurikabe/internal/solver"
	"github.com/avolkov/nurikabe/internal/storage"
)

var (
	flagBuiltin string
	flagID      int64
	flagRandom  bool
	flagRows    int
	flagCols    int
	flagTimeout time.Duration
	flagLive    bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Solve a puzzle",
	Long: `Solve a puzzle and print the finished board.

The puzzle comes from the first source that is set: a file argument,
--builtin, --id, or --random. Ctrl+C stops the solve cleanly; the board
printed afterwards contains only proven cells.

Examples:
  nurikabe solve my-puzzle.yaml
  nurikabe solve --builtin lattice-7 --live
  nurikabe solve --id 3
  nurikabe solve --random --rows 5 --cols 5 --timeout 30s`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&flagBuiltin, "builtin", "", "Name of a built-in puzzle")
	solveCmd.Flags().Int64Var(&flagID, "id", 0, "Library ID of a stored puzzle")
	solveCmd.Flags().BoolVar(&flagRandom, "random", false, "Pick a random stored puzzle")
	solveCmd.Flags().IntVar(&flagRows, "rows", 0, "Row count filter for --random")
	solveCmd.Flags().IntVar(&flagCols, "cols", 0, "Column count filter for --random")
	solveCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "Abort the solve after this long (overrides config)")
	solveCmd.Flags().BoolVar(&flagLive, "live", false, "Show each deduction as it is made")
}

func runSolve(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "nurikabe"})

	def, err := pickPuzzle(args)
	if err != nil {
		logger.Error("could not load puzzle", "error", err)
		os.Exit(1)
	}

	b, err := board.New(def)
	if err != nil {
		logger.Error("could not build board", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	timeout := cfg.Solve.Timeout()
	if flagTimeout > 0 {
		timeout = flagTimeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	name := def.Name
	if name == "" {
		name = fmt.Sprintf("%dx%d", def.Rows, def.Cols)
	}
	logger.Info("solving", "puzzle", name, "open", b.UnknownCount())

	start := time.Now()
	var res solver.Result
	if flagLive && useColor() {
		res = solveLive(ctx, b)
	} else {
		res = solver.New(b, nil).Solve(ctx)
	}
	elapsed := time.Since(start)

	fmt.Println(renderBoard(b, nil))
	fmt.Println()
	logger.Info("finished",
		"status", res.Status,
		"passes", res.Stats.Passes,
		"guesses", res.Stats.Guesses,
		"forced", res.Stats.Forced,
		"elapsed", elapsed.Round(time.Millisecond),
	)

	if res.Status != solver.Solved {
		for _, v := range res.Verdict.Violations {
			logger.Warn("rule broken", "violation", v)
		}
		os.Exit(1)
	}
}

// solveLive runs the solver on its own goroutine and replays the frame
// stream to the terminal as it arrives.
func solveLive(ctx context.Context, b *board.Board) solver.Result {
	obs := solver.NewChannelObserver(cfg.Solve.FrameBuffer)
	defer obs.Close()

	done := solver.New(b, obs).Start(ctx)
	for {
		select {
		case f := <-obs.Frames():
			fmt.Print("\033[H\033[2J")
			fmt.Println(renderStates(f.Grid))
			if delay := cfg.Solve.FrameDelay(); delay > 0 {
				time.Sleep(delay)
			}
		case res := <-done:
			fmt.Print("\033[H\033[2J")
			return res
		}
	}
}

// pickPuzzle resolves the puzzle the user asked for.
func pickPuzzle(args []string) (puzzle.Def, error) {
	switch {
	case len(args) == 1:
		return puzzle.Load(args[0])
	case flagBuiltin != "":
		return puzzle.Sample(flagBuiltin)
	case flagID > 0:
		store, err := storage.Open(cfg.DB)
		if err != nil {
			return puzzle.Def{}, err
		}
		defer store.Close()
		return store.Get(flagID)
	case flagRandom:
		store, err := storage.Open(cfg.DB)
		if err != nil {
			return puzzle.Def{}, err
		}
		defer store.Close()
		return store.Random(flagRows, flagCols)
	default:
		return puzzle.Def{}, fmt.Errorf("no puzzle selected; pass a file or one of --builtin, --id, --random")
	}
}
