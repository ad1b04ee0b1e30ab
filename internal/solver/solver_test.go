package solver

import (
	"context"
	"testing"

	"github.com/avolkov/nurikabe/internal/board"
	"github.com/avolkov/nurikabe/internal/checker"
	"github.com/avolkov/nurikabe/internal/grid"
	"github.com/avolkov/nurikabe/internal/puzzle"
)

func boardFrom(t *testing.T, def puzzle.Def) *board.Board {
	t.Helper()
	b, err := board.New(def)
	if err != nil {
		t.Fatalf("board.New() failed: %v", err)
	}
	return b
}

// ambiguousDef has two legal completions: the island can grow right or down.
func ambiguousDef() puzzle.Def {
	return puzzle.Def{
		Rows:  2,
		Cols:  2,
		Clues: []puzzle.Clue{{Row: 0, Col: 0, Size: 2}},
	}
}

func TestSolvesSamples(t *testing.T) {
	for _, name := range puzzle.SampleNames() {
		t.Run(name, func(t *testing.T) {
			def, err := puzzle.Sample(name)
			if err != nil {
				t.Fatalf("Sample(%q) failed: %v", name, err)
			}
			b := boardFrom(t, def)
			res := New(b, nil).Solve(context.Background())
			if res.Status != Solved {
				t.Fatalf("status = %v, stats = %+v:\n%v", res.Status, res.Stats, b)
			}
			if v := checker.Evaluate(b); !v.OK() {
				t.Fatalf("solved board breaks rules: %v", v.Violations)
			}
			if res.Stats.Passes == 0 {
				t.Error("stats recorded no propagation passes")
			}
		})
	}
}

func TestContradictedOnImpossibleBoard(t *testing.T) {
	b := boardFrom(t, puzzle.Def{
		Rows:  1,
		Cols:  5,
		Clues: []puzzle.Clue{{Row: 0, Col: 0, Size: 2}, {Row: 0, Col: 2, Size: 2}},
	})
	res := New(b, nil).Solve(context.Background())
	if res.Status != Contradicted {
		t.Errorf("status = %v, expected contradicted", res.Status)
	}
}

func TestSolvableBoardWithLooseLandNotContradicted(t *testing.T) {
	// Two completions exist (the island can run down column 1 or 2), so
	// the solve must stall, never contradict, and commit only cells the
	// completions agree on.
	b := boardFrom(t, puzzle.Def{
		Rows:  4,
		Cols:  4,
		Clues: []puzzle.Clue{{Row: 0, Col: 0, Size: 6}},
		Grid:  []string{"6.o.", "#.#.", "....", "...."},
	})
	res := New(b, nil).Solve(context.Background())
	if res.Status == Contradicted {
		t.Fatalf("solvable board reported contradicted, stats %+v:\n%v", res.Stats, b)
	}
	if v := checker.Evaluate(b); !v.OK() {
		t.Errorf("board left in violation: %v\n%v", v.Violations, b)
	}
}

func TestExhaustedOnAmbiguousBoard(t *testing.T) {
	b := boardFrom(t, ambiguousDef())
	res := New(b, nil).Solve(context.Background())
	if res.Status != Exhausted {
		t.Fatalf("status = %v, expected exhausted:\n%v", res.Status, b)
	}
	if b.UnknownCount() != 2 {
		t.Errorf("%d open cells, expected the 2 undecidable ones:\n%v", b.UnknownCount(), b)
	}
	if res.Stats.Guesses == 0 {
		t.Error("no guesses recorded on a stalled board")
	}
}

func TestCancelledBetweenProbes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := boardFrom(t, ambiguousDef())
	res := New(b, nil).Solve(ctx)
	if res.Status != Cancelled {
		t.Fatalf("status = %v, expected cancelled", res.Status)
	}
	// Propagation before the stop is kept; no speculative cell survives.
	if b.StateAt(grid.Coord{Row: 1, Col: 1}) != grid.Sea {
		t.Errorf("forced cell lost on cancel:\n%v", b)
	}
	if b.UnknownCount() != 2 {
		t.Errorf("%d open cells after cancel, expected 2:\n%v", b.UnknownCount(), b)
	}

	// A fresh context picks up where the cancelled solve stopped.
	res = New(b, nil).Solve(context.Background())
	if res.Status != Exhausted {
		t.Errorf("resumed solve = %v, expected exhausted", res.Status)
	}
}

func TestProbeRestoresBoard(t *testing.T) {
	def, err := puzzle.Sample("mini-2x3")
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	b := boardFrom(t, def)
	ref := boardFrom(t, def)
	c := New(b, nil)
	cell := grid.Coord{Row: 0, Col: 1}

	// Sea at the pool corner forces an illegal 2x2; land completes legally.
	if !c.contradicts(cell, grid.Sea) {
		t.Error("sea hypothesis should contradict")
	}
	if c.contradicts(cell, grid.Land) {
		t.Error("land hypothesis should stand")
	}
	if !b.Equal(ref) {
		t.Errorf("probing mutated the board:\n%v\nvs\n%v", b, ref)
	}
}

func TestStartDeliversResult(t *testing.T) {
	def, err := puzzle.Sample("crosshatch-5")
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	b := boardFrom(t, def)
	res := <-New(b, nil).Start(context.Background())
	if res.Status != Solved {
		t.Errorf("status = %v, expected solved", res.Status)
	}
}

func TestObserverSeesEveryCommit(t *testing.T) {
	def, err := puzzle.Sample("crosshatch-5")
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	b := boardFrom(t, def)
	open := b.UnknownCount()

	obs := NewChannelObserver(open + 8)
	res := New(b, obs).Solve(context.Background())
	obs.Close()
	if res.Status != Solved {
		t.Fatalf("status = %v", res.Status)
	}

	var frames []Frame
	for {
		select {
		case f := <-obs.Frames():
			frames = append(frames, f)
			continue
		default:
		}
		break
	}
	if len(frames) != open {
		t.Fatalf("observed %d frames for %d commits", len(frames), open)
	}
	last := frames[len(frames)-1].Grid
	for r := range last {
		for col := range last[r] {
			if last[r][col] != b.StateAt(grid.Coord{Row: r, Col: col}) {
				t.Fatalf("final frame disagrees with board at (%d,%d)", r, col)
			}
		}
	}
}

func TestChannelObserverDropsOldest(t *testing.T) {
	obs := NewChannelObserver(2)
	for i := 0; i < 3; i++ {
		obs.Publish(Frame{Cell: grid.Coord{Row: 0, Col: i}})
	}
	first := <-obs.Frames()
	second := <-obs.Frames()
	if first.Cell.Col != 1 || second.Cell.Col != 2 {
		t.Errorf("kept frames %d and %d, expected the newest two", first.Cell.Col, second.Cell.Col)
	}

	obs.Close()
	obs.Publish(Frame{Cell: grid.Coord{Row: 9, Col: 9}})
	select {
	case f := <-obs.Frames():
		t.Errorf("frame %v delivered after close", f.Cell)
	default:
	}
}
