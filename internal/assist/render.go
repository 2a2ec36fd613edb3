package assist

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/threesus/internal/core"
	"github.com/vovakirdan/threesus/internal/threes"
	"github.com/vovakirdan/threesus/internal/token"
)

// Ruler frames the rendered board.
const Ruler = "--------------------"

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Renderer turns boards into console text, with or without ANSI colors.
type Renderer struct {
	color bool
}

// NewRenderer creates a renderer. Colors should only be enabled when the
// output is a terminal.
func NewRenderer(color bool) *Renderer {
	return &Renderer{color: color}
}

// tileColor follows the game's palette: blue ones, red twos, white threes
// and up.
func tileColor(r threes.Rank) core.Color {
	switch {
	case r == 1:
		return core.ColorBlue
	case r == 2:
		return core.ColorRed
	case r >= 3:
		return core.ColorWhite
	default:
		return core.ColorDefault
	}
}

func (r *Renderer) paint(c core.Color, s string) string {
	if !r.color {
		return s
	}
	style, ok := colorStyles[c]
	if !ok {
		style = colorStyles[core.ColorDefault]
	}
	return style.Render(s)
}

// RenderBoard draws the board between rulers, one row per line, each tile
// followed by a comma and empty cells as blanks.
func (r *Renderer) RenderBoard(b threes.Board) string {
	var sb strings.Builder
	sb.WriteString(Ruler)
	sb.WriteByte('\n')
	for y := range threes.BoardSize {
		for x := range threes.BoardSize {
			rank := b[y][x]
			if rank == threes.Empty {
				sb.WriteString(" ,")
				continue
			}
			sb.WriteString(r.paint(tileColor(rank), strconv.Itoa(int(rank))))
			sb.WriteByte(',')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(Ruler)
	return sb.String()
}

// RenderCandidates draws the board grid with each candidate cell showing its
// label and every other cell showing '.'.
func (r *Renderer) RenderCandidates(cells []threes.Cell) string {
	s := core.NewScreen(threes.BoardSize, threes.BoardSize)
	s.Fill('.', core.ColorGray)
	for i, c := range cells {
		s.SetCell(c.X, c.Y, core.Cell{Rune: token.Label(i), Color: core.ColorYellow})
	}
	if !r.color {
		return s.String()
	}
	return renderScreen(s)
}

// renderScreen converts a Screen buffer to a styled string.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func renderScreen(s *core.Screen) string {
	var sb strings.Builder

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
