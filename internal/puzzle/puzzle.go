// Package puzzle defines the board input format: grid dimensions plus clue
// placements, optionally with a prefilled grid for boards in progress.
// Definitions are YAML documents so they can be stored, imported, and
// embedded as defaults.
package puzzle

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/avolkov/nurikabe/internal/grid"
)

// MaxDim bounds board dimensions; the engine targets boards small enough to
// be played interactively.
const MaxDim = 32

// Prefill characters accepted in Def.Grid rows.
const (
	CharUnknown = '.'
	CharSea     = '#'
	CharLand    = 'o'
)

// Clue is an island seed: its position and the exact size the island must
// reach.
type Clue struct {
	Row  int `yaml:"row"`
	Col  int `yaml:"col"`
	Size int `yaml:"size"`
}

// At returns the clue's coordinate.
func (c Clue) At() grid.Coord {
	return grid.Coord{Row: c.Row, Col: c.Col}
}

// Def is a complete board specification. Grid is optional; when present it
// records an in-progress assignment ('.' unknown, '#' sea, 'o' land) and a
// clue's own cell may be written as any non-sea character.
type Def struct {
	Name  string   `yaml:"name,omitempty"`
	Rows  int      `yaml:"rows"`
	Cols  int      `yaml:"cols"`
	Clues []Clue   `yaml:"clues"`
	Grid  []string `yaml:"grid,omitempty"`
}

// Parse decodes and validates a YAML board definition.
func Parse(data []byte) (Def, error) {
	var d Def
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Def{}, fmt.Errorf("puzzle: cannot parse definition: %w", err)
	}
	if err := d.Validate(); err != nil {
		return Def{}, err
	}
	return d, nil
}

// Load reads and parses a board definition file.
func Load(path string) (Def, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Def{}, fmt.Errorf("puzzle: cannot read %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return Def{}, fmt.Errorf("%w (file %s)", err, path)
	}
	return d, nil
}

// Encode renders the definition back to YAML, e.g. for the puzzle library.
func (d Def) Encode() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("puzzle: cannot encode definition: %w", err)
	}
	return data, nil
}

// TargetLand returns the total number of land cells the clues demand.
func (d Def) TargetLand() int {
	total := 0
	for _, c := range d.Clues {
		total += c.Size
	}
	return total
}

// Validate rejects malformed definitions: bad dimensions, missing clues,
// out-of-range or overlapping clue placements, impossible size demands, and
// prefilled grids that do not match the dimensions.
func (d Def) Validate() error {
	if d.Rows < 1 || d.Cols < 1 {
		return fmt.Errorf("puzzle: dimensions %dx%d are invalid", d.Rows, d.Cols)
	}
	if d.Rows > MaxDim || d.Cols > MaxDim {
		return fmt.Errorf("puzzle: dimensions %dx%d exceed the %dx%d maximum", d.Rows, d.Cols, MaxDim, MaxDim)
	}
	if len(d.Clues) == 0 {
		return fmt.Errorf("puzzle: no clues")
	}
	seen := make(map[grid.Coord]bool, len(d.Clues))
	for _, c := range d.Clues {
		if c.Row < 0 || c.Row >= d.Rows || c.Col < 0 || c.Col >= d.Cols {
			return fmt.Errorf("puzzle: clue at %v is out of range", c.At())
		}
		if c.Size < 1 {
			return fmt.Errorf("puzzle: clue at %v has size %d, want >= 1", c.At(), c.Size)
		}
		if seen[c.At()] {
			return fmt.Errorf("puzzle: overlapping clues at %v", c.At())
		}
		seen[c.At()] = true
	}
	if d.TargetLand() > d.Rows*d.Cols {
		return fmt.Errorf("puzzle: clues demand %d land cells on a %d-cell board", d.TargetLand(), d.Rows*d.Cols)
	}
	if d.Grid != nil {
		if len(d.Grid) != d.Rows {
			return fmt.Errorf("puzzle: grid has %d rows, want %d", len(d.Grid), d.Rows)
		}
		for r, row := range d.Grid {
			if len(row) != d.Cols {
				return fmt.Errorf("puzzle: grid row %d has %d cells, want %d", r, len(row), d.Cols)
			}
			for col := 0; col < len(row); col++ {
				switch ch := row[col]; ch {
				case CharUnknown, CharSea, CharLand:
				default:
					if ch < '1' || ch > '9' {
						return fmt.Errorf("puzzle: grid cell %v has invalid character %q", grid.Coord{Row: r, Col: col}, ch)
					}
				}
			}
		}
		for _, c := range d.Clues {
			if d.Grid[c.Row][c.Col] == CharSea {
				return fmt.Errorf("puzzle: grid marks clue cell %v as sea", c.At())
			}
		}
	}
	return nil
}
