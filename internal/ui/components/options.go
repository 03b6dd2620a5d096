package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingo/internal/ui/theme"
)

// OptionList is the answer picker for image-choice questions. Cursor
// moves freely; Picked is the option the learner committed to.
type OptionList struct {
	Options []string
	Cursor  int
	Picked  int
	Locked  bool
	Correct string
}

// NewOptionList creates a picker with nothing picked.
func NewOptionList(options []string) OptionList {
	return OptionList{Options: options, Picked: -1}
}

// Update handles arrows, space and the number keys 1-4.
func (o OptionList) Update(msg tea.Msg) (OptionList, bool) {
	if o.Locked {
		return o, false
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return o, false
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	case "space":
		o.Picked = o.Cursor
		return o, true
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if i := int(key[0] - '1'); i < len(o.Options) {
			o.Cursor, o.Picked = i, i
			return o, true
		}
	}
	return o, false
}

// Focused returns the option under the cursor.
func (o OptionList) Focused() string {
	if o.Cursor < 0 || o.Cursor >= len(o.Options) {
		return ""
	}
	return o.Options[o.Cursor]
}

// Value returns the picked option, or "" when nothing is picked.
func (o OptionList) Value() string {
	if o.Picked < 0 || o.Picked >= len(o.Options) {
		return ""
	}
	return o.Options[o.Picked]
}

// View renders the options. Once locked, the correct option is shown in
// green and a wrong pick in red.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Cursor && !o.Locked {
			prefix = "▸ "
		}
		mark := "○"
		if i == o.Picked {
			mark = "●"
		}
		line := fmt.Sprintf("%s%d) %s %s", prefix, i+1, mark, opt)

		var style lipgloss.Style
		switch {
		case o.Locked && opt == o.Correct:
			style = theme.Correct
		case o.Locked && i == o.Picked:
			style = theme.Incorrect
		case o.Locked:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == o.Cursor:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		s += style.Render(line) + "\n"
	}
	return s
}
