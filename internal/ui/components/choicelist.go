package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/resiliq/internal/ui/theme"
)

// ChoiceList is a mutually exclusive option picker: one answer from a
// closed set, no free entry.
type ChoiceList struct {
	Options []string
	Cursor  int
	Chosen  int // index of the committed choice, -1 when unanswered

	// OnChoose fires when a choice is committed.
	OnChoose func(value string) tea.Cmd
}

// NewChoiceList creates a choice list with nothing chosen.
func NewChoiceList(options []string, onChoose func(string) tea.Cmd) ChoiceList {
	return ChoiceList{
		Options:  options,
		Chosen:   -1,
		OnChoose: onChoose,
	}
}

// SetChosen pre-selects the option matching value, if any. Used when a
// previously answered question is shown again.
func (c *ChoiceList) SetChosen(value string) {
	c.Chosen = -1
	for i, opt := range c.Options {
		if opt == value {
			c.Chosen = i
			c.Cursor = i
			return
		}
	}
}

// Update handles keyboard navigation and selection.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "enter", " ":
		c.Chosen = c.Cursor
		if c.OnChoose != nil {
			return c, c.OnChoose(c.Options[c.Chosen])
		}
	}

	return c, nil
}

// View renders the option list.
func (c ChoiceList) View() string {
	var s string
	for i, opt := range c.Options {
		marker := "( )"
		if i == c.Chosen {
			marker = "(•)"
		}
		cursor := "  "
		if i == c.Cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%s%s %s", cursor, marker, opt)

		switch {
		case i == c.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case i == c.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}

// Value returns the committed choice, or "" when unanswered.
func (c ChoiceList) Value() string {
	if c.Chosen < 0 || c.Chosen >= len(c.Options) {
		return ""
	}
	return c.Options[c.Chosen]
}
