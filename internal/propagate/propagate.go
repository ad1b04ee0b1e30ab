// Package propagate applies forced Nurikabe deductions to a board until no
// rule can commit another cell. Every deduction is sound: a cell is assigned
// only when every legal completion of the board agrees on it, so running the
// propagator never loses solutions.
package propagate

import (
	"github.com/avolkov/nurikabe/internal/board"
	"github.com/avolkov/nurikabe/internal/checker"
	"github.com/avolkov/nurikabe/internal/grid"
)

// Hook observes each cell the propagator commits, in commit order.
type Hook func(grid.Coord, grid.State)

// Result reports one propagation run.
type Result struct {
	// Assigned counts the cells committed across all passes.
	Assigned int
	// Conflict is set when a deduction could not be applied or the board
	// reached a state the rules reject; the board is left as it stood when
	// the conflict surfaced.
	Conflict bool
	// FailedAt is the cell whose assignment surfaced the conflict, when one
	// specific cell is to blame.
	FailedAt grid.Coord
}

// runner carries one propagation over a board.
type runner struct {
	b    *board.Board
	hook Hook
	res  Result
}

// Run drives all deduction rules over the board to a fixed point. The hook,
// if non-nil, fires for every committed cell.
func Run(b *board.Board, hook Hook) Result {
	r := &runner{b: b, hook: hook}
	for {
		before := r.res.Assigned
		r.pinchSeal()
		r.completeIslands()
		r.extendSingleLiberty()
		r.extendSea()
		r.breakPools()
		r.sealUnreachable()
		r.fillRemainder()
		if r.res.Conflict || r.res.Assigned == before {
			break
		}
	}
	if !r.res.Conflict && checker.QuickContradiction(b) {
		r.res.Conflict = true
	}
	return r.res
}

// set commits one cell, reporting whether propagation may continue.
func (r *runner) set(c grid.Coord, s grid.State, owner board.IslandID) bool {
	if r.res.Conflict {
		return false
	}
	if err := r.b.Assign(c, s, owner); err != nil {
		r.res.Conflict = true
		r.res.FailedAt = c
		return false
	}
	r.res.Assigned++
	if r.hook != nil {
		r.hook(c, s)
	}
	return true
}

// pinchSeal turns every Unknown cell bordering two different islands into
// sea. Land there would merge the islands.
func (r *runner) pinchSeal() {
	for row := 0; row < r.b.Rows(); row++ {
		for col := 0; col < r.b.Cols(); col++ {
			c := grid.Coord{Row: row, Col: col}
			if r.b.StateAt(c) != grid.Unknown {
				continue
			}
			first := board.None
			pinched := false
			for _, n := range c.Neighbors4() {
				if r.b.StateAt(n) != grid.Land {
					continue
				}
				for _, o := range r.b.RegionAt(n).Owners() {
					if first == board.None {
						first = o
					} else if first != o {
						pinched = true
					}
				}
			}
			if pinched && !r.set(c, grid.Sea, board.None) {
				return
			}
		}
	}
}

// completeIslands seals finished islands with sea on every liberty.
func (r *runner) completeIslands() {
	for id := range r.b.Clues() {
		reg := r.b.IslandRegion(board.IslandID(id))
		if reg.Size() != r.b.Clue(board.IslandID(id)).Size {
			continue
		}
		for _, c := range r.b.Liberties(reg) {
			if !r.set(c, grid.Sea, board.None) {
				return
			}
		}
	}
}

// extendSingleLiberty grows any land region that has exactly one way out.
// An unfinished island must grow, and anonymous land must eventually reach
// a clue, so a lone liberty is forced.
func (r *runner) extendSingleLiberty() {
	if r.b.LandCount() >= r.b.TargetLand() {
		return
	}
	for _, reg := range r.b.LandRegions() {
		// A commit below can merge a listed region away; the retired
		// fragment's liberties say nothing about the merged region.
		if r.b.RegionAt(reg.Cells()[0]) != reg {
			continue
		}
		owner := reg.Owner()
		if owner != board.None && reg.Size() >= r.b.Clue(owner).Size {
			continue
		}
		libs := r.b.Liberties(reg)
		if len(libs) != 1 {
			continue
		}
		if !r.set(libs[0], grid.Land, owner) {
			return
		}
	}
}

// extendSea grows a sea region through its only liberty. Valid while more
// sea is still owed: all sea is connected in a solution, so a cornered sea
// region must expand.
func (r *runner) extendSea() {
	if r.b.SeaCount() >= r.b.TargetSea() {
		return
	}
	for _, reg := range r.b.SeaRegions() {
		if r.b.RegionAt(reg.Cells()[0]) != reg {
			continue
		}
		libs := r.b.Liberties(reg)
		if len(libs) != 1 {
			continue
		}
		if !r.set(libs[0], grid.Sea, board.None) {
			return
		}
	}
}

// breakPools forces land into the last open cell of any 2x2 block whose
// other three cells are sea.
func (r *runner) breakPools() {
	for row := 0; row < r.b.Rows()-1; row++ {
		for col := 0; col < r.b.Cols()-1; col++ {
			var open grid.Coord
			seas, unknowns := 0, 0
			for dr := 0; dr < 2; dr++ {
				for dc := 0; dc < 2; dc++ {
					c := grid.Coord{Row: row + dr, Col: col + dc}
					switch r.b.StateAt(c) {
					case grid.Sea:
						seas++
					case grid.Unknown:
						unknowns++
						open = c
					}
				}
			}
			if seas == 3 && unknowns == 1 {
				if !r.set(open, grid.Land, board.None) {
					return
				}
			}
		}
	}
}

// fillRemainder closes the board once one side has reached its total: the
// remaining Unknown cells all belong to the other side.
func (r *runner) fillRemainder() {
	if r.b.UnknownCount() == 0 {
		return
	}
	var fill grid.State
	switch {
	case r.b.LandCount() == r.b.TargetLand():
		fill = grid.Sea
	case r.b.SeaCount() == r.b.TargetSea():
		fill = grid.Land
	default:
		return
	}
	for row := 0; row < r.b.Rows(); row++ {
		for col := 0; col < r.b.Cols(); col++ {
			c := grid.Coord{Row: row, Col: col}
			if r.b.StateAt(c) != grid.Unknown {
				continue
			}
			if !r.set(c, fill, board.None) {
				return
			}
		}
	}
}
