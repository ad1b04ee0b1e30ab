package propagate

import (
	"container/heap"

	"github.com/avolkov/nurikabe/internal/board"
	"github.com/avolkov/nurikabe/internal/grid"
)

// sealUnreachable marks every Unknown cell no island can still claim as sea.
// Each clue searches outward from its island with a land budget of the cells
// it is still owed. Stepping onto an Unknown cell spends one; stepping onto
// anonymous land absorbs the whole region and spends its size. Cells next to
// another island's land are off limits, since claiming them would merge.
func (r *runner) sealUnreachable() {
	if r.res.Conflict {
		return
	}
	n := r.b.Rows() * r.b.Cols()
	reachable := make([]bool, n)
	for id := range r.b.Clues() {
		r.markReachable(board.IslandID(id), reachable)
	}
	for row := 0; row < r.b.Rows(); row++ {
		for col := 0; col < r.b.Cols(); col++ {
			c := grid.Coord{Row: row, Col: col}
			if r.b.StateAt(c) != grid.Unknown || reachable[row*r.b.Cols()+col] {
				continue
			}
			if !r.set(c, grid.Sea, board.None) {
				return
			}
		}
	}
}

// markReachable runs a cheapest-first search from one island and records
// every cell it can still claim within its remaining budget.
func (r *runner) markReachable(id board.IslandID, reachable []bool) {
	root := r.b.IslandRegion(id)
	budget := r.b.Clue(id).Size - root.Size()
	if budget < 0 {
		return
	}
	cols := r.b.Cols()
	dist := make([]int, len(reachable))
	for i := range dist {
		dist[i] = -1
	}
	var pq cellQueue
	push := func(c grid.Coord, cost int) {
		i := c.Row*cols + c.Col
		if dist[i] != -1 && dist[i] <= cost {
			return
		}
		dist[i] = cost
		reachable[i] = true
		heap.Push(&pq, cellCost{at: c, cost: cost})
	}
	for _, c := range root.Cells() {
		push(c, 0)
	}
	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(cellCost)
		if dist[cur.at.Row*cols+cur.at.Col] < cur.cost {
			continue
		}
		for _, next := range cur.at.Neighbors4() {
			if !r.b.InBounds(next) {
				continue
			}
			switch r.b.StateAt(next) {
			case grid.Sea:
			case grid.Land:
				reg := r.b.RegionAt(next)
				if reg == root || r.ownedByOther(reg, id) {
					continue
				}
				cost := cur.cost + reg.Size()
				if cost > budget {
					continue
				}
				for _, c := range reg.Cells() {
					push(c, cost)
				}
			default:
				if cur.cost+1 > budget || r.bordersOtherIsland(next, id) {
					continue
				}
				push(next, cur.cost+1)
			}
		}
	}
}

// ownedByOther reports whether a land region is already tied to a clue
// other than id.
func (r *runner) ownedByOther(reg *board.Region, id board.IslandID) bool {
	for _, o := range reg.Owners() {
		if o != id {
			return true
		}
	}
	return false
}

// bordersOtherIsland reports whether an Unknown cell touches land owned by
// a different island.
func (r *runner) bordersOtherIsland(c grid.Coord, id board.IslandID) bool {
	for _, n := range c.Neighbors4() {
		if r.b.StateAt(n) != grid.Land {
			continue
		}
		if r.ownedByOther(r.b.RegionAt(n), id) {
			return true
		}
	}
	return false
}

// cellCost is one frontier entry in the reachability search.
type cellCost struct {
	at   grid.Coord
	cost int
}

type cellQueue []cellCost

func (q cellQueue) Len() int           { return len(q) }
func (q cellQueue) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q cellQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *cellQueue) Push(x any)        { *q = append(*q, x.(cellCost)) }
func (q *cellQueue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}
