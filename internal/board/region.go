package board

import (
	"sort"

	"github.com/avolkov/nurikabe/internal/grid"
)

// Region is a maximal 4-connected component of same-state cells, maintained
// incrementally by the board. Land regions carry the island ids of the clue
// cells they contain plus any id given explicitly at assignment time; a
// legal region has at most one. Callers must treat regions as read-only.
type Region struct {
	Kind   grid.State
	cells  []grid.Coord
	owners []IslandID
}

// Size returns the number of cells in the region.
func (r *Region) Size() int { return len(r.cells) }

// Cells returns the region's member cells in no particular order.
func (r *Region) Cells() []grid.Coord { return r.cells }

// Owners returns every island id tied to the region, sorted.
func (r *Region) Owners() []IslandID { return r.owners }

// Owner returns the region's island id when it has exactly one, else None.
func (r *Region) Owner() IslandID {
	if len(r.owners) == 1 {
		return r.owners[0]
	}
	return None
}

// anchor returns the region's smallest coordinate, the deterministic sort
// key for region listings.
func (r *Region) anchor() grid.Coord {
	a := r.cells[0]
	for _, c := range r.cells[1:] {
		if c.Less(a) {
			a = c
		}
	}
	return a
}

func (r *Region) addOwner(id IslandID) {
	for _, o := range r.owners {
		if o == id {
			return
		}
	}
	r.owners = append(r.owners, id)
	sort.Slice(r.owners, func(i, j int) bool { return r.owners[i] < r.owners[j] })
}

// regionSet maps every committed cell to its region.
type regionSet struct {
	byCell  []*Region
	regions map[*Region]bool
}

func newRegionSet(rows, cols int) *regionSet {
	return &regionSet{
		byCell:  make([]*Region, rows*cols),
		regions: make(map[*Region]bool),
	}
}

func (rs *regionSet) at(idx int) *Region { return rs.byCell[idx] }

// add registers a freshly committed cell and merges it with every adjacent
// region of the same kind.
func (rs *regionSet) add(b *Board, c grid.Coord) *Region {
	idx := b.idx(c)
	reg := &Region{Kind: b.states[idx], cells: []grid.Coord{c}}
	if o := b.owners[idx]; o != None {
		reg.owners = []IslandID{o}
	}
	rs.regions[reg] = true
	rs.byCell[idx] = reg
	for _, n := range c.Neighbors4() {
		if !b.InBounds(n) {
			continue
		}
		other := rs.byCell[b.idx(n)]
		if other == nil || other == reg || other.Kind != reg.Kind {
			continue
		}
		reg = rs.merge(b, reg, other)
	}
	return reg
}

// merge absorbs the smaller region into the larger one.
func (rs *regionSet) merge(b *Board, x, y *Region) *Region {
	big, small := x, y
	if small.Size() > big.Size() {
		big, small = small, big
	}
	for _, c := range small.cells {
		rs.byCell[b.idx(c)] = big
	}
	big.cells = append(big.cells, small.cells...)
	for _, o := range small.owners {
		big.addOwner(o)
	}
	delete(rs.regions, small)
	return big
}

// rebuild recomputes every region from the cell states. Regions are fully
// derived from states plus explicit owners, so a rebuild is exact.
func (rs *regionSet) rebuild(b *Board) {
	for i := range rs.byCell {
		rs.byCell[i] = nil
	}
	rs.regions = make(map[*Region]bool)
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			coord := grid.Coord{Row: r, Col: c}
			idx := b.idx(coord)
			if b.states[idx] == grid.Unknown || rs.byCell[idx] != nil {
				continue
			}
			rs.flood(b, coord)
		}
	}
}

// flood grows one region from its seed cell, breadth-first.
func (rs *regionSet) flood(b *Board, seed grid.Coord) {
	kind := b.states[b.idx(seed)]
	reg := &Region{Kind: kind}
	rs.regions[reg] = true
	queue := []grid.Coord{seed}
	rs.byCell[b.idx(seed)] = reg
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		idx := b.idx(c)
		reg.cells = append(reg.cells, c)
		if o := b.owners[idx]; o != None {
			reg.addOwner(o)
		}
		for _, n := range c.Neighbors4() {
			if !b.InBounds(n) {
				continue
			}
			nIdx := b.idx(n)
			if b.states[nIdx] != kind || rs.byCell[nIdx] != nil {
				continue
			}
			rs.byCell[nIdx] = reg
			queue = append(queue, n)
		}
	}
}

// ofKind lists regions of one kind, sorted by anchor coordinate.
func (rs *regionSet) ofKind(kind grid.State) []*Region {
	out := make([]*Region, 0, len(rs.regions))
	for reg := range rs.regions {
		if reg.Kind == kind {
			out = append(out, reg)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].anchor().Less(out[j].anchor()) })
	return out
}

// liberties lists the Unknown neighbors of a region, sorted row-major.
func (rs *regionSet) liberties(b *Board, r *Region) []grid.Coord {
	seen := make(map[grid.Coord]bool)
	out := make([]grid.Coord, 0, 4)
	for _, c := range r.cells {
		for _, n := range c.Neighbors4() {
			if !b.InBounds(n) || b.states[b.idx(n)] != grid.Unknown || seen[n] {
				continue
			}
			seen[n] = true
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
