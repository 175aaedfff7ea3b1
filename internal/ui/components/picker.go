package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/resiliq/internal/ui/theme"
)

// Picker is a compact horizontal selector for form fields with enumerated
// values (industry, company size, region). Left/right cycles through the
// options; nothing is selected until the user moves off the placeholder.
type Picker struct {
	Label    string
	Options  []string
	Selected int // -1 means unset
	Required bool
	focused  bool
	errMsg   string
}

// NewPicker creates a picker with no selection.
func NewPicker(label string, options []string, required bool) Picker {
	return Picker{
		Label:    label,
		Options:  options,
		Selected: -1,
		Required: required,
	}
}

// Update handles left/right cycling while focused.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	if !p.focused {
		return p, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if p.Selected > 0 {
			p.Selected--
		} else if p.Selected < 0 && len(p.Options) > 0 {
			p.Selected = 0
		}
	case "right", "l", " ", "enter":
		if p.Selected < len(p.Options)-1 {
			p.Selected++
		}
	}

	return p, nil
}

// SetChosen pre-selects the option matching value, if any.
func (p *Picker) SetChosen(value string) {
	p.Selected = -1
	for i, opt := range p.Options {
		if opt == value {
			p.Selected = i
			return
		}
	}
}

// Focus marks the picker as the active form field.
func (p *Picker) Focus() { p.focused = true }

// Blur removes focus.
func (p *Picker) Blur() { p.focused = false }

// View renders the label and the current value between arrows.
func (p Picker) View() string {
	label := p.Label
	if p.Required {
		label += " *"
	}

	value := "select..."
	valueStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	if p.Selected >= 0 && p.Selected < len(p.Options) {
		value = p.Options[p.Selected]
		valueStyle = lipgloss.NewStyle().Foreground(theme.Text)
	}

	arrows := lipgloss.NewStyle().Foreground(theme.TextDim)
	if p.focused {
		arrows = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		valueStyle = valueStyle.Bold(true)
	}

	out := theme.Body.Render(label) + "\n" +
		arrows.Render("◂ ") + valueStyle.Render(value) + arrows.Render(" ▸")
	if p.errMsg != "" {
		out += "\n" + theme.FieldError.Render(p.errMsg)
	}
	return out
}

// Value returns the selected option, or "" when unset.
func (p Picker) Value() string {
	if p.Selected < 0 || p.Selected >= len(p.Options) {
		return ""
	}
	return p.Options[p.Selected]
}

// SetError attaches a validation message; empty clears it.
func (p *Picker) SetError(msg string) {
	p.errMsg = msg
}
