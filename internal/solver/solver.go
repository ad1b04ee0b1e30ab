// Package solver drives a board to a verdict. It alternates propagation with
// shallow contradiction probes: each probe assigns one open cell, propagates,
// and checks for a contradiction. A probe that fails proves the opposite
// state, which is committed for real. The solver never speculates deeper
// than one cell, so every commit it makes is forced.
package solver

import (
	"context"
	"fmt"
	"sort"

	"github.com/avolkov/nurikabe/internal/board"
	"github.com/avolkov/nurikabe/internal/checker"
	"github.com/avolkov/nurikabe/internal/grid"
	"github.com/avolkov/nurikabe/internal/propagate"
)

// Status is the terminal state of one solve.
type Status int

const (
	// Solved means the board is complete and breaks no rule.
	Solved Status = iota
	// Contradicted means the board admits no legal completion.
	Contradicted
	// Exhausted means one-cell probing cannot decide any remaining cell.
	Exhausted
	// Cancelled means the caller's context ended the solve early. The board
	// holds only sound commits made before the stop.
	Cancelled
)

func (s Status) String() string {
	switch s {
	case Solved:
		return "solved"
	case Contradicted:
		return "contradicted"
	case Exhausted:
		return "exhausted"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("solver.Status(%d)", int(s))
	}
}

// Stats counts the work one solve performed.
type Stats struct {
	// Passes is the number of propagation fixed points reached.
	Passes int
	// Guesses is the number of speculative one-cell hypotheses tried.
	Guesses int
	// Forced is the number of cells committed by failed hypotheses.
	Forced int
}

// Controller owns a board for the duration of one solve.
type Controller struct {
	b   *board.Board
	obs Observer
}

// New builds a controller for the board. obs may be nil.
func New(b *board.Board, obs Observer) *Controller {
	return &Controller{b: b, obs: obs}
}

// Result is the outcome of a finished or stopped solve.
type Result struct {
	Status Status
	Stats  Stats
	// Verdict carries the rule violations behind a Contradicted status when
	// the full board was evaluated; empty otherwise.
	Verdict checker.Verdict
}

// Solve runs until the board is decided, probing stalls, or ctx is done.
// The context is checked between probes only: cancellation never leaves a
// half-applied speculation on the board.
func (c *Controller) Solve(ctx context.Context) Result {
	var stats Stats
	for {
		res := propagate.Run(c.b, c.emit)
		stats.Passes++
		if res.Conflict {
			return Result{Status: Contradicted, Stats: stats}
		}
		if c.b.UnknownCount() == 0 {
			v := checker.Evaluate(c.b)
			if v.OK() {
				return Result{Status: Solved, Stats: stats}
			}
			return Result{Status: Contradicted, Stats: stats, Verdict: v}
		}

		committed, status := c.probePass(ctx, &stats)
		if status != nil {
			return Result{Status: *status, Stats: stats}
		}
		if !committed {
			return Result{Status: Exhausted, Stats: stats}
		}
	}
}

// Start runs Solve on its own goroutine, delivering the result on the
// returned channel. The board must not be touched until the result arrives.
func (c *Controller) Start(ctx context.Context) <-chan Result {
	done := make(chan Result, 1)
	go func() {
		done <- c.Solve(ctx)
	}()
	return done
}

// probePass tries every open cell once, in a fixed order, committing the
// first forced state it proves. It reports whether anything was committed;
// a non-nil status ends the solve.
func (c *Controller) probePass(ctx context.Context, stats *Stats) (bool, *Status) {
	for _, cell := range c.probeOrder() {
		if err := ctx.Err(); err != nil {
			st := Cancelled
			return false, &st
		}
		if c.b.StateAt(cell) != grid.Unknown {
			continue
		}

		stats.Guesses++
		if c.contradicts(cell, grid.Sea) {
			return c.commit(cell, grid.Land, stats)
		}
		stats.Guesses++
		if c.contradicts(cell, grid.Land) {
			return c.commit(cell, grid.Sea, stats)
		}
	}
	return false, nil
}

// contradicts assigns the hypothesis, propagates, and reports whether the
// board became impossible. The board is restored before returning.
func (c *Controller) contradicts(cell grid.Coord, s grid.State) bool {
	snap := c.b.Snapshot()
	defer c.b.Restore(snap)

	if err := c.b.Assign(cell, s, board.None); err != nil {
		return true
	}
	res := propagate.Run(c.b, nil)
	if res.Conflict {
		return true
	}
	if c.b.UnknownCount() == 0 {
		return !checker.Evaluate(c.b).OK()
	}
	return checker.QuickContradiction(c.b)
}

// commit applies a proven state on the main line.
func (c *Controller) commit(cell grid.Coord, s grid.State, stats *Stats) (bool, *Status) {
	if err := c.b.Assign(cell, s, board.None); err != nil {
		st := Contradicted
		return false, &st
	}
	stats.Forced++
	c.emit(cell, s)
	return true, nil
}

// emit publishes one main-line commit to the observer.
func (c *Controller) emit(cell grid.Coord, s grid.State) {
	if c.obs == nil {
		return
	}
	c.obs.Publish(Frame{Cell: cell, State: s, Grid: c.b.StateGrid()})
}

// probeOrder lists the open cells, nearest incomplete clue first. Cells that
// tie sort row-major, so identical boards probe identically.
func (c *Controller) probeOrder() []grid.Coord {
	var goals []grid.Coord
	for id, clue := range c.b.Clues() {
		if !c.b.IslandComplete(board.IslandID(id)) {
			goals = append(goals, clue.At)
		}
	}

	type ranked struct {
		at   grid.Coord
		dist int
	}
	cells := make([]ranked, 0, c.b.UnknownCount())
	for row := 0; row < c.b.Rows(); row++ {
		for col := 0; col < c.b.Cols(); col++ {
			at := grid.Coord{Row: row, Col: col}
			if c.b.StateAt(at) != grid.Unknown {
				continue
			}
			best := c.b.Rows() + c.b.Cols()
			for _, g := range goals {
				if d := at.Manhattan(g); d < best {
					best = d
				}
			}
			cells = append(cells, ranked{at: at, dist: best})
		}
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].dist != cells[j].dist {
			return cells[i].dist < cells[j].dist
		}
		return cells[i].at.Less(cells[j].at)
	})
	out := make([]grid.Coord, len(cells))
	for i, r := range cells {
		out[i] = r.at
	}
	return out
}
