// Package board holds the Nurikabe cell grid, its clues, and the region
// tracker that keeps land and sea connectivity current across assignments.
// All mutation flows through Assign/Unassign (or Place for replaying saved
// grids) so the tracker never goes stale.
package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/avolkov/nurikabe/internal/grid"
	"github.com/avolkov/nurikabe/internal/puzzle"
)

// IslandID names one clue's island. IDs index Board.Clues().
type IslandID int

// None marks land that has not yet been tied to a clue.
const None IslandID = -1

// Clue is an island seed placed on the board.
type Clue struct {
	At   grid.Coord
	Size int
}

var (
	ErrAlreadyAssigned     = errors.New("board: cell already assigned")
	ErrNotAssigned         = errors.New("board: cell not assigned")
	ErrIslandMergeConflict = errors.New("board: assignment would merge different islands")
	ErrClueFixed           = errors.New("board: clue cells are fixed")
	ErrOutOfRange          = errors.New("board: coordinate out of range")
)

// Board is the shared data structure the checker, propagator, and search
// controller operate on. It is single-owner: one search at a time.
type Board struct {
	rows, cols int
	states     []grid.State
	// owners records the island id each land cell was explicitly given at
	// assignment time (None for inferred/anonymous land). Effective
	// ownership is a region property; see OwnerAt.
	owners     []IslandID
	clues      []Clue
	clueAt     map[grid.Coord]IslandID
	unknown    int
	land       int
	sea        int
	targetLand int
	regions    *regionSet
}

// New constructs a board from a validated definition, placing clue cells as
// fixed land and replaying any prefilled grid. Prefilled cells are applied
// with Place, so a saved user board that already violates the island rules
// still loads and can be evaluated by the checker.
func New(def puzzle.Def) (*Board, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	n := def.Rows * def.Cols
	b := &Board{
		rows:       def.Rows,
		cols:       def.Cols,
		states:     make([]grid.State, n),
		owners:     make([]IslandID, n),
		clues:      make([]Clue, 0, len(def.Clues)),
		clueAt:     make(map[grid.Coord]IslandID, len(def.Clues)),
		unknown:    n,
		targetLand: def.TargetLand(),
		regions:    newRegionSet(def.Rows, def.Cols),
	}
	for i := range b.owners {
		b.owners[i] = None
	}
	for i, c := range def.Clues {
		id := IslandID(i)
		b.clues = append(b.clues, Clue{At: c.At(), Size: c.Size})
		b.clueAt[c.At()] = id
		b.apply(c.At(), grid.Land, id)
	}
	for r, row := range def.Grid {
		for col := 0; col < len(row); col++ {
			c := grid.Coord{Row: r, Col: col}
			if _, isClue := b.clueAt[c]; isClue {
				continue
			}
			switch ch := row[col]; {
			case ch == puzzle.CharSea:
				if err := b.Place(c, grid.Sea, None); err != nil {
					return nil, err
				}
			case ch == puzzle.CharLand || (ch >= '1' && ch <= '9'):
				if err := b.Place(c, grid.Land, None); err != nil {
					return nil, err
				}
			}
		}
	}
	return b, nil
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

// InBounds reports whether c lies on the board.
func (b *Board) InBounds(c grid.Coord) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < b.rows && c.Col < b.cols
}

func (b *Board) idx(c grid.Coord) int { return c.Row*b.cols + c.Col }

// StateAt returns the cell's commitment, Unknown for out-of-range cells.
func (b *Board) StateAt(c grid.Coord) grid.State {
	if !b.InBounds(c) {
		return grid.Unknown
	}
	return b.states[b.idx(c)]
}

// OwnerAt returns the island owning the land cell at c, or None if the cell
// is not land or its region has not been tied to exactly one clue.
func (b *Board) OwnerAt(c grid.Coord) IslandID {
	r := b.RegionAt(c)
	if r == nil || r.Kind != grid.Land {
		return None
	}
	return r.Owner()
}

// Clues returns the board's clues; the slice index is the IslandID.
func (b *Board) Clues() []Clue { return b.clues }

// Clue returns the seed for one island.
func (b *Board) Clue(id IslandID) Clue { return b.clues[id] }

// ClueAt reports whether c is a clue cell and which island it seeds.
func (b *Board) ClueAt(c grid.Coord) (IslandID, bool) {
	id, ok := b.clueAt[c]
	return id, ok
}

func (b *Board) UnknownCount() int { return b.unknown }
func (b *Board) LandCount() int    { return b.land }
func (b *Board) SeaCount() int     { return b.sea }

// TargetLand is the land cell total demanded by the clues.
func (b *Board) TargetLand() int { return b.targetLand }

// TargetSea is the sea cell total on a completed board.
func (b *Board) TargetSea() int { return b.rows*b.cols - b.targetLand }

// Assign commits an Unknown cell to Sea or Land. Re-assigning the same state
// is a no-op; changing a committed cell fails with ErrAlreadyAssigned (or
// ErrClueFixed for clue cells). Assigning Land that would bridge regions
// owned by different clues fails with ErrIslandMergeConflict before any
// mutation: the conflict is a contradiction signal, not something to resolve.
func (b *Board) Assign(c grid.Coord, s grid.State, owner IslandID) error {
	if !b.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfRange, c)
	}
	if s == grid.Unknown {
		return fmt.Errorf("board: cannot assign %v to unknown; use Unassign", c)
	}
	idx := b.idx(c)
	cur := b.states[idx]
	if cur == s {
		return b.reassign(c, s, owner)
	}
	if cur != grid.Unknown {
		if _, isClue := b.clueAt[c]; isClue {
			return fmt.Errorf("%w: %v", ErrClueFixed, c)
		}
		return fmt.Errorf("%w: %v is %v, not %v", ErrAlreadyAssigned, c, cur, s)
	}
	if s == grid.Land {
		if err := b.checkMerge(c, owner); err != nil {
			return err
		}
	}
	b.apply(c, s, owner)
	return nil
}

// reassign handles Assign on a cell that already holds the requested state.
func (b *Board) reassign(c grid.Coord, s grid.State, owner IslandID) error {
	if s != grid.Land || owner == None {
		return nil
	}
	reg := b.RegionAt(c)
	for _, o := range reg.Owners() {
		if o == owner {
			return nil
		}
	}
	if len(reg.Owners()) > 0 {
		return fmt.Errorf("%w: %v is owned by island %d", ErrIslandMergeConflict, c, reg.Owner())
	}
	// Adopt: the anonymous region is now tied to the clue.
	b.owners[b.idx(c)] = owner
	reg.addOwner(owner)
	return nil
}

// checkMerge rejects a land assignment whose region union would carry two
// different island ids.
func (b *Board) checkMerge(c grid.Coord, owner IslandID) error {
	var found IslandID = None
	if owner != None {
		found = owner
	}
	for _, n := range c.Neighbors4() {
		if !b.InBounds(n) || b.states[b.idx(n)] != grid.Land {
			continue
		}
		for _, o := range b.regions.at(b.idx(n)).Owners() {
			if found == None {
				found = o
			} else if found != o {
				return fmt.Errorf("%w: %v joins islands %d and %d", ErrIslandMergeConflict, c, found, o)
			}
		}
	}
	return nil
}

// Place commits a cell like Assign but without the merge-conflict guard:
// regions bridging several clues are recorded as shared-owner regions for
// the checker to flag. Used when replaying externally produced grids.
func (b *Board) Place(c grid.Coord, s grid.State, owner IslandID) error {
	if !b.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfRange, c)
	}
	if s == grid.Unknown {
		return fmt.Errorf("board: cannot place %v as unknown", c)
	}
	idx := b.idx(c)
	if b.states[idx] == s {
		return nil
	}
	if b.states[idx] != grid.Unknown {
		if _, isClue := b.clueAt[c]; isClue {
			return fmt.Errorf("%w: %v", ErrClueFixed, c)
		}
		return fmt.Errorf("%w: %v", ErrAlreadyAssigned, c)
	}
	b.apply(c, s, owner)
	return nil
}

// Unassign reverts a committed cell to Unknown, exactly undoing the region
// delta of the corresponding assignment.
func (b *Board) Unassign(c grid.Coord) error {
	if !b.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfRange, c)
	}
	if _, isClue := b.clueAt[c]; isClue {
		return fmt.Errorf("%w: %v", ErrClueFixed, c)
	}
	idx := b.idx(c)
	switch b.states[idx] {
	case grid.Unknown:
		return fmt.Errorf("%w: %v", ErrNotAssigned, c)
	case grid.Land:
		b.land--
	case grid.Sea:
		b.sea--
	}
	b.states[idx] = grid.Unknown
	b.owners[idx] = None
	b.unknown++
	// Removing a cell can split a region; recovering the exact pre-assign
	// tracker is a recomputation of the touched components. At interactive
	// board sizes a full rebuild is the same order of work.
	b.regions.rebuild(b)
	return nil
}

// apply writes the cell and updates the tracker incrementally.
func (b *Board) apply(c grid.Coord, s grid.State, owner IslandID) {
	idx := b.idx(c)
	b.states[idx] = s
	if s == grid.Land {
		b.owners[idx] = owner
		b.land++
	} else {
		b.owners[idx] = None
		b.sea++
	}
	b.unknown--
	b.regions.add(b, c)
}

// RegionAt returns the region containing c, or nil for Unknown cells.
func (b *Board) RegionAt(c grid.Coord) *Region {
	if !b.InBounds(c) {
		return nil
	}
	return b.regions.at(b.idx(c))
}

// LandRegions returns all land regions ordered by their smallest coordinate.
func (b *Board) LandRegions() []*Region { return b.regions.ofKind(grid.Land) }

// SeaRegions returns all sea regions ordered by their smallest coordinate.
func (b *Board) SeaRegions() []*Region { return b.regions.ofKind(grid.Sea) }

// IslandRegion returns the land region rooted at the given clue.
func (b *Board) IslandRegion(id IslandID) *Region {
	return b.RegionAt(b.clues[id].At)
}

// IslandComplete reports whether the island has reached its clue size.
func (b *Board) IslandComplete(id IslandID) bool {
	return b.IslandRegion(id).Size() == b.clues[id].Size
}

// Liberties returns the Unknown neighbors of a region, deduplicated and
// sorted row-major for deterministic iteration.
func (b *Board) Liberties(r *Region) []grid.Coord {
	return b.regions.liberties(b, r)
}

// StateGrid returns a fresh copy of the cell states, row by row.
func (b *Board) StateGrid() [][]grid.State {
	out := make([][]grid.State, b.rows)
	for r := 0; r < b.rows; r++ {
		out[r] = make([]grid.State, b.cols)
		copy(out[r], b.states[r*b.cols:(r+1)*b.cols])
	}
	return out
}

// Equal compares two boards cell by cell, including explicit owners.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.rows != other.rows || b.cols != other.cols || len(b.clues) != len(other.clues) {
		return false
	}
	for i := range b.clues {
		if b.clues[i] != other.clues[i] {
			return false
		}
	}
	for i := range b.states {
		if b.states[i] != other.states[i] || b.owners[i] != other.owners[i] {
			return false
		}
	}
	return true
}

// String renders the board: '.' unknown, '#' sea, 'o' land, clue cells as
// their target size.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.cols + 1) * b.rows)
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			sb.WriteByte(b.CharAt(grid.Coord{Row: r, Col: c}))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// CharAt returns the single-character rendering of one cell.
func (b *Board) CharAt(c grid.Coord) byte {
	if id, ok := b.clueAt[c]; ok {
		return clueChar(b.clues[id].Size)
	}
	switch b.StateAt(c) {
	case grid.Sea:
		return puzzle.CharSea
	case grid.Land:
		return puzzle.CharLand
	default:
		return puzzle.CharUnknown
	}
}

func clueChar(size int) byte {
	if size < 10 {
		return byte('0' + size)
	}
	if size < 36 {
		return byte('a' + size - 10)
	}
	return '+'
}
