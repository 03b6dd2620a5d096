package components

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingo/internal/ui/theme"
)

// WordBank builds a sentence from word tiles. Placed holds indices into
// Words in answer order; a tile can be placed once.
type WordBank struct {
	Words  []string
	Placed []int
	Cursor int
	Locked bool
}

func NewWordBank(words []string) WordBank {
	return WordBank{Words: words}
}

// Update handles ←/→ to move, space to place the focused tile and
// backspace to take back the last placed one. It reports whether the
// answer changed.
func (w WordBank) Update(msg tea.Msg) (WordBank, bool) {
	if w.Locked {
		return w, false
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return w, false
	}

	switch kmsg.String() {
	case "left", "h":
		w.Cursor = w.step(-1)
	case "right", "l":
		w.Cursor = w.step(1)
	case "space":
		if w.Cursor >= 0 && w.Cursor < len(w.Words) && !w.IsPlaced(w.Cursor) {
			w.Placed = append(slices.Clone(w.Placed), w.Cursor)
			w.Cursor = w.step(1)
			return w, true
		}
	case "backspace":
		if n := len(w.Placed); n > 0 {
			w.Cursor = w.Placed[n-1]
			w.Placed = slices.Clone(w.Placed[:n-1])
			return w, true
		}
	}
	return w, false
}

// step returns the next unplaced tile in direction dir, wrapping around,
// or the current cursor when every tile is placed.
func (w WordBank) step(dir int) int {
	n := len(w.Words)
	if n == 0 {
		return 0
	}
	for i := 1; i <= n; i++ {
		c := ((w.Cursor+dir*i)%n + n) % n
		if !w.IsPlaced(c) {
			return c
		}
	}
	return w.Cursor
}

func (w WordBank) IsPlaced(i int) bool {
	return slices.Contains(w.Placed, i)
}

// SetPlaced replaces the answer, e.g. with a matched transcript.
func (w WordBank) SetPlaced(indices []int) WordBank {
	w.Placed = slices.Clone(indices)
	if w.IsPlaced(w.Cursor) {
		w.Cursor = w.step(1)
	}
	return w
}

// Answer returns the placed words in order.
func (w WordBank) Answer() []string {
	out := make([]string, 0, len(w.Placed))
	for _, i := range w.Placed {
		out = append(out, w.Words[i])
	}
	return out
}

// Focused returns the word under the cursor.
func (w WordBank) Focused() string {
	if w.Cursor < 0 || w.Cursor >= len(w.Words) {
		return ""
	}
	return w.Words[w.Cursor]
}

// View renders the answer line above the bank of tiles, wrapped to width.
func (w WordBank) View(width int) string {
	answer := make([]string, 0, len(w.Placed))
	for _, i := range w.Placed {
		answer = append(answer, theme.Tile.Render(w.Words[i]))
	}
	line := theme.Hint.Render("(pick words below)")
	if len(answer) > 0 {
		line = wrapTiles(answer, width)
	}

	tiles := make([]string, 0, len(w.Words))
	for i, word := range w.Words {
		switch {
		case w.IsPlaced(i):
			tiles = append(tiles, theme.TileUsed.Render(word))
		case i == w.Cursor && !w.Locked:
			tiles = append(tiles, theme.TileFocused.Render(word))
		default:
			tiles = append(tiles, theme.Tile.Render(word))
		}
	}

	rule := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width, 1)))
	return line + "\n" + rule + "\n" + wrapTiles(tiles, width)
}

// wrapTiles joins rendered tiles horizontally, breaking rows at width.
func wrapTiles(tiles []string, width int) string {
	var rows []string
	var row []string
	rowWidth := 0
	for _, t := range tiles {
		tw := lipgloss.Width(t) + 1
		if len(row) > 0 && rowWidth+tw > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, t, " ")
		rowWidth += tw
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
