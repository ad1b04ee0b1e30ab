package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/avolkov/nurikabe/internal/puzzle"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "puzzles.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testDef(name string) puzzle.Def {
	return puzzle.Def{
		Name:  name,
		Rows:  2,
		Cols:  3,
		Clues: []puzzle.Clue{{Row: 0, Col: 0, Size: 2}},
	}
}

func TestSaveAndGet(t *testing.T) {
	s := testStore(t)

	id, err := s.Save(testDef("mini"), "test")
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	def, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if def.Name != "mini" || def.Rows != 2 || def.Cols != 3 || len(def.Clues) != 1 {
		t.Errorf("round trip changed the puzzle: %+v", def)
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	s := testStore(t)

	bad := testDef("bad")
	bad.Clues = nil
	if _, err := s.Save(bad, "test"); err == nil {
		t.Error("Save() accepted a puzzle with no clues")
	}
}

func TestGetMissing(t *testing.T) {
	s := testStore(t)

	if _, err := s.Get(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRandomFiltersByDimensions(t *testing.T) {
	s := testStore(t)

	if _, err := s.Save(testDef("small"), "test"); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	big := puzzle.Def{
		Name:  "big",
		Rows:  5,
		Cols:  5,
		Clues: []puzzle.Clue{{Row: 0, Col: 0, Size: 3}},
	}
	if _, err := s.Save(big, "test"); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	def, err := s.Random(5, 5)
	if err != nil {
		t.Fatalf("Random() failed: %v", err)
	}
	if def.Name != "big" {
		t.Errorf("Random(5,5) returned %q", def.Name)
	}

	if _, err := s.Random(9, 9); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unmatched size, got %v", err)
	}

	// Unconstrained pick works with any stored puzzle.
	if _, err := s.Random(0, 0); err != nil {
		t.Errorf("Random(0,0) failed: %v", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	s := testStore(t)

	for _, name := range []string{"first", "second", "third"} {
		if _, err := s.Save(testDef(name), "test"); err != nil {
			t.Fatalf("Save(%q) failed: %v", name, err)
		}
	}

	entries, err := s.List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("List() returned %d entries", len(entries))
	}
	if entries[0].Name != "third" || entries[2].Name != "first" {
		t.Errorf("unexpected order: %q, %q, %q", entries[0].Name, entries[1].Name, entries[2].Name)
	}
	if entries[0].Rows != 2 || entries[0].Cols != 3 || entries[0].Clues != 1 {
		t.Errorf("entry metadata wrong: %+v", entries[0])
	}
}

func TestDelete(t *testing.T) {
	s := testStore(t)

	id, err := s.Save(testDef("gone"), "test")
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := s.Delete(id); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := s.Get(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.Delete(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for double delete, got %v", err)
	}
}
