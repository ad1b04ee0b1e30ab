package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/avolkov/nurikabe/internal/board"
	"github.com/avolkov/nurikabe/internal/grid"
)

var (
	seaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	landStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	clueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	unknownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true).Reverse(true)
)

// useColor reports whether styled output makes sense for stdout.
func useColor() bool {
	return cfg.Render.Color && term.IsTerminal(int(os.Stdout.Fd()))
}

// renderBoard draws the board with clue numbers, optionally highlighting a
// set of cells (used for rule violations).
func renderBoard(b *board.Board, highlight map[grid.Coord]bool) string {
	color := useColor()
	var sb strings.Builder
	for r := 0; r < b.Rows(); r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.Cols(); c++ {
			at := grid.Coord{Row: r, Col: c}
			glyph, style := cellGlyph(b, at)
			if highlight[at] {
				style = badStyle
			}
			if color {
				sb.WriteString(style.Render(glyph))
			} else {
				sb.WriteString(glyph)
			}
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func cellGlyph(b *board.Board, at grid.Coord) (string, lipgloss.Style) {
	if id, ok := b.ClueAt(at); ok {
		return strconv.Itoa(b.Clue(id).Size), clueStyle
	}
	switch b.StateAt(at) {
	case grid.Sea:
		return cfg.Render.Sea, seaStyle
	case grid.Land:
		return cfg.Render.Land, landStyle
	default:
		return cfg.Render.Unknown, unknownStyle
	}
}

// renderStates draws a bare state grid, used for live solve frames.
func renderStates(cells [][]grid.State) string {
	color := useColor()
	var sb strings.Builder
	for r, row := range cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, s := range row {
			var glyph string
			var style lipgloss.Style
			switch s {
			case grid.Sea:
				glyph, style = cfg.Render.Sea, seaStyle
			case grid.Land:
				glyph, style = cfg.Render.Land, landStyle
			default:
				glyph, style = cfg.Render.Unknown, unknownStyle
			}
			if color {
				sb.WriteString(style.Render(glyph))
			} else {
				sb.WriteString(glyph)
			}
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
