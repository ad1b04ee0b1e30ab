package board

import "github.com/avolkov/nurikabe/internal/grid"

// Snapshot is an immutable checkpoint of a board's cell states and explicit
// owners. The region tracker is fully derived from those, so a snapshot does
// not carry it; Restore rebuilds the tracker instead. Snapshots stay valid
// across any number of later mutations or restores.
type Snapshot struct {
	states  []grid.State
	owners  []IslandID
	unknown int
	land    int
	sea     int
}

// Snapshot captures the current board state for later Restore.
func (b *Board) Snapshot() *Snapshot {
	s := &Snapshot{
		states:  make([]grid.State, len(b.states)),
		owners:  make([]IslandID, len(b.owners)),
		unknown: b.unknown,
		land:    b.land,
		sea:     b.sea,
	}
	copy(s.states, b.states)
	copy(s.owners, b.owners)
	return s
}

// Restore rewinds the board to a snapshot taken from it. The snapshot is
// copied, never aliased, so it can be restored again later.
func (b *Board) Restore(s *Snapshot) {
	copy(b.states, s.states)
	copy(b.owners, s.owners)
	b.unknown = s.unknown
	b.land = s.land
	b.sea = s.sea
	b.regions.rebuild(b)
}
