// Package checker evaluates a board against the Nurikabe rules. It is
// stateless: every call walks the board's current regions and returns the
// full set of violations, so callers can run it on partial boards during a
// search or on finished boards loaded from storage.
package checker

import (
	"fmt"

	"github.com/avolkov/nurikabe/internal/board"
	"github.com/avolkov/nurikabe/internal/grid"
)

// Kind classifies one rule violation.
type Kind int

const (
	// OversizedIsland marks an island that already exceeds its clue size.
	OversizedIsland Kind = iota
	// SealedUndersized marks a clue's island that has no room left to grow
	// but has not reached its size.
	SealedUndersized
	// TouchingIslands marks a land region connecting two or more clues.
	TouchingIslands
	// PooledSea marks a 2x2 block of sea cells.
	PooledSea
	// DisconnectedSea marks sea regions cut off from the largest sea on a
	// completed board.
	DisconnectedSea
	// OrphanLand marks an enclosed land region with no clue to belong to.
	OrphanLand
)

func (k Kind) String() string {
	switch k {
	case OversizedIsland:
		return "oversized island"
	case SealedUndersized:
		return "island sealed below its size"
	case TouchingIslands:
		return "islands touch"
	case PooledSea:
		return "2x2 sea pool"
	case DisconnectedSea:
		return "sea is disconnected"
	case OrphanLand:
		return "land belongs to no clue"
	default:
		return fmt.Sprintf("checker.Kind(%d)", int(k))
	}
}

// Violation is one broken rule and the cells witnessing it.
type Violation struct {
	Kind  Kind
	Cells []grid.Coord
}

func (v Violation) String() string {
	return fmt.Sprintf("%s at %v", v.Kind, v.Cells)
}

// Verdict is the result of one evaluation. Violations come out in a fixed
// order (land rules by region position, then pools row-major, then sea
// splits) so repeated evaluations of the same board agree.
type Verdict struct {
	Violations []Violation
}

// OK reports whether the board broke no rule.
func (v Verdict) OK() bool { return len(v.Violations) == 0 }

// Evaluate checks every rule against the board's current state. Partial
// boards are judged only on rules that are already beyond repair: an
// undersized island with open liberties is not a violation, one that is
// sealed is.
func Evaluate(b *board.Board) Verdict {
	var v Verdict
	v.Violations = append(v.Violations, landViolations(b)...)
	v.Violations = append(v.Violations, poolViolations(b)...)
	v.Violations = append(v.Violations, seaSplitViolations(b)...)
	return v
}

// QuickContradiction is the cheap subset of Evaluate used inside search
// probes. It short-circuits on the first of: an oversized island, touching
// islands, or a sea pool. Sealed and connectivity rules need the full walk.
func QuickContradiction(b *board.Board) bool {
	for _, reg := range b.LandRegions() {
		owners := reg.Owners()
		if len(owners) > 1 {
			return true
		}
		if len(owners) == 1 && reg.Size() > b.Clue(owners[0]).Size {
			return true
		}
	}
	for r := 0; r < b.Rows()-1; r++ {
		for c := 0; c < b.Cols()-1; c++ {
			if isPool(b, grid.Coord{Row: r, Col: c}) {
				return true
			}
		}
	}
	return false
}

func landViolations(b *board.Board) []Violation {
	var out []Violation
	for _, reg := range b.LandRegions() {
		owners := reg.Owners()
		switch {
		case len(owners) > 1:
			out = append(out, Violation{Kind: TouchingIslands, Cells: reg.Cells()})
		case len(owners) == 1:
			size := b.Clue(owners[0]).Size
			if reg.Size() > size {
				out = append(out, Violation{Kind: OversizedIsland, Cells: reg.Cells()})
			} else if reg.Size() < size && len(b.Liberties(reg)) == 0 {
				out = append(out, Violation{Kind: SealedUndersized, Cells: reg.Cells()})
			}
		default:
			if len(b.Liberties(reg)) == 0 {
				out = append(out, Violation{Kind: OrphanLand, Cells: reg.Cells()})
			}
		}
	}
	return out
}

func poolViolations(b *board.Board) []Violation {
	var out []Violation
	for r := 0; r < b.Rows()-1; r++ {
		for c := 0; c < b.Cols()-1; c++ {
			at := grid.Coord{Row: r, Col: c}
			if isPool(b, at) {
				out = append(out, Violation{Kind: PooledSea, Cells: []grid.Coord{
					at,
					{Row: r, Col: c + 1},
					{Row: r + 1, Col: c},
					{Row: r + 1, Col: c + 1},
				}})
			}
		}
	}
	return out
}

// isPool reports whether the 2x2 block with top-left corner at c is all sea.
func isPool(b *board.Board, c grid.Coord) bool {
	return b.StateAt(c) == grid.Sea &&
		b.StateAt(grid.Coord{Row: c.Row, Col: c.Col + 1}) == grid.Sea &&
		b.StateAt(grid.Coord{Row: c.Row + 1, Col: c.Col}) == grid.Sea &&
		b.StateAt(grid.Coord{Row: c.Row + 1, Col: c.Col + 1}) == grid.Sea
}

// seaSplitViolations flags split seas only once the board is complete; while
// Unknown cells remain, separate sea regions may still join through them.
func seaSplitViolations(b *board.Board) []Violation {
	if b.UnknownCount() > 0 {
		return nil
	}
	seas := b.SeaRegions()
	if len(seas) < 2 {
		return nil
	}
	largest := 0
	for i, reg := range seas {
		if reg.Size() > seas[largest].Size() {
			largest = i
		}
	}
	var out []Violation
	for i, reg := range seas {
		if i != largest {
			out = append(out, Violation{Kind: DisconnectedSea, Cells: reg.Cells()})
		}
	}
	return out
}
