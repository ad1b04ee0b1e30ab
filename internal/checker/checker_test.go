package checker

import (
	"testing"

	"github.com/avolkov/nurikabe/internal/board"
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

func kinds(v Verdict) []Kind {
	out := make([]Kind, 0, len(v.Violations))
	for _, viol := range v.Violations {
		out = append(out, viol.Kind)
	}
	return out
}

func hasKind(v Verdict, k Kind) bool {
	for _, viol := range v.Violations {
		if viol.Kind == k {
			return true
		}
	}
	return false
}

func TestCleanPartialBoard(t *testing.T) {
	b := boardFrom(t, puzzle.Def{
		Rows:  3,
		Cols:  3,
		Clues: []puzzle.Clue{{Row: 0, Col: 0, Size: 3}},
	})
	if v := Evaluate(b); !v.OK() {
		t.Errorf("fresh board reported violations: %v", v.Violations)
	}
	if QuickContradiction(b) {
		t.Error("fresh board reported a quick contradiction")
	}
}

func TestSolvedBoardIsClean(t *testing.T) {
	b := boardFrom(t, puzzle.Def{
		Rows:  2,
		Cols:  3,
		Clues: []puzzle.Clue{{Row: 0, Col: 0, Size: 2}},
		Grid:  []string{"2o#", "###"},
	})
	if v := Evaluate(b); !v.OK() {
		t.Errorf("legal solution reported violations: %v", v.Violations)
	}
}

func TestOversizedIsland(t *testing.T) {
	b := boardFrom(t, puzzle.Def{
		Rows:  1,
		Cols:  4,
		Clues: []puzzle.Clue{{Row: 0, Col: 0, Size: 2}},
		Grid:  []string{"2oo."},
	})
	v := Evaluate(b)
	if !hasKind(v, OversizedIsland) {
		t.Errorf("kinds = %v, expected an oversized island", kinds(v))
	}
	if !QuickContradiction(b) {
		t.Error("oversized island missed by the quick path")
	}
}

func TestSealedUndersized(t *testing.T) {
	b := boardFrom(t, puzzle.Def{
		Rows:  2,
		Cols:  3,
		Clues: []puzzle.Clue{{Row: 0, Col: 0, Size: 3}},
		Grid:  []string{"3#.", "#.."},
	})
	v := Evaluate(b)
	if !hasKind(v, SealedUndersized) {
		t.Errorf("kinds = %v, expected a sealed undersized island", kinds(v))
	}
	// The sealed rule needs the full walk; the cheap probe skips it.
	if QuickContradiction(b) {
		t.Error("quick path should not flag sealed islands")
	}
}

func TestTouchingIslands(t *testing.T) {
	b := boardFrom(t, puzzle.Def{
		Rows:  1,
		Cols:  5,
		Clues: []puzzle.Clue{{Row: 0, Col: 0, Size: 2}, {Row: 0, Col: 2, Size: 2}},
		Grid:  []string{"2o2.."},
	})
	v := Evaluate(b)
	if !hasKind(v, TouchingIslands) {
		t.Errorf("kinds = %v, expected touching islands", kinds(v))
	}
	if !QuickContradiction(b) {
		t.Error("touching islands missed by the quick path")
	}
}

func TestPooledSea(t *testing.T) {
	b := boardFrom(t, puzzle.Def{
		Rows:  2,
		Cols:  3,
		Clues: []puzzle.Clue{{Row: 0, Col: 2, Size: 2}},
		Grid:  []string{"##2", "##."},
	})
	v := Evaluate(b)
	if !hasKind(v, PooledSea) {
		t.Errorf("kinds = %v, expected a sea pool", kinds(v))
	}
	want := []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}
	for _, viol := range v.Violations {
		if viol.Kind != PooledSea {
			continue
		}
		if len(viol.Cells) != 4 {
			t.Fatalf("pool cells = %v", viol.Cells)
		}
		for i, c := range want {
			if viol.Cells[i] != c {
				t.Errorf("pool cell %d = %v, expected %v", i, viol.Cells[i], c)
			}
		}
	}
	if !QuickContradiction(b) {
		t.Error("sea pool missed by the quick path")
	}
}

func TestDisconnectedSeaOnlyWhenComplete(t *testing.T) {
	partial := boardFrom(t, puzzle.Def{
		Rows:  1,
		Cols:  5,
		Clues: []puzzle.Clue{{Row: 0, Col: 2, Size: 1}},
		Grid:  []string{"#.1.#"},
	})
	if v := Evaluate(partial); hasKind(v, DisconnectedSea) {
		t.Error("split sea flagged while unknown cells remain")
	}

	complete := boardFrom(t, puzzle.Def{
		Rows:  1,
		Cols:  5,
		Clues: []puzzle.Clue{{Row: 0, Col: 2, Size: 1}},
		Grid:  []string{"##1##"},
	})
	v := Evaluate(complete)
	if !hasKind(v, DisconnectedSea) {
		t.Fatalf("kinds = %v, expected a disconnected sea", kinds(v))
	}
	// All but one region are flagged; with equal sizes exactly one is kept.
	n := 0
	for _, viol := range v.Violations {
		if viol.Kind == DisconnectedSea {
			n++
		}
	}
	if n != 1 {
		t.Errorf("flagged %d sea regions, expected 1", n)
	}
}

func TestOrphanLand(t *testing.T) {
	b := boardFrom(t, puzzle.Def{
		Rows:  2,
		Cols:  3,
		Clues: []puzzle.Clue{{Row: 0, Col: 0, Size: 1}},
		Grid:  []string{"1##", "##o"},
	})
	v := Evaluate(b)
	if !hasKind(v, OrphanLand) {
		t.Errorf("kinds = %v, expected orphan land", kinds(v))
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	b := boardFrom(t, puzzle.Def{
		Rows:  3,
		Cols:  4,
		Clues: []puzzle.Clue{{Row: 0, Col: 3, Size: 1}},
		Grid:  []string{"##.1", "##..", "o..."},
	})
	first := Evaluate(b)
	for i := 0; i < 5; i++ {
		again := Evaluate(b)
		if len(again.Violations) != len(first.Violations) {
			t.Fatalf("violation count drifted: %d vs %d", len(again.Violations), len(first.Violations))
		}
		for j := range first.Violations {
			if again.Violations[j].Kind != first.Violations[j].Kind {
				t.Fatalf("violation order drifted at %d", j)
			}
		}
	}
}
