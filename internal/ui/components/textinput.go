package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/resiliq/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with form styling and an attached
// validation message.
type TextInput struct {
	Model    textinput.Model
	Label    string
	Required bool
	errMsg   string
}

// NewTextInput creates a new styled text input.
func NewTextInput(label, placeholder string, required bool, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return TextInput{
		Model:    ti,
		Label:    label,
		Required: required,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// Focus gives the input keyboard focus.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// View renders the label, input and any validation message.
func (t TextInput) View() string {
	label := t.Label
	if t.Required {
		label += " *"
	}
	out := theme.Body.Render(label) + "\n" + t.Model.View()
	if t.errMsg != "" {
		out += "\n" + theme.FieldError.Render(t.errMsg)
	}
	return out
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}

// SetError attaches a validation message; empty clears it.
func (t *TextInput) SetError(msg string) {
	t.errMsg = msg
}

// Err returns the current validation message.
func (t TextInput) Err() string {
	return t.errMsg
}
