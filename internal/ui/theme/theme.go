package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — dark report styling. Defaults match the scorecard
// branding; Apply overrides them with the service-supplied tokens.
var (
	Primary   = lipgloss.Color("#E7000B") // Signal Red
	Secondary = lipgloss.Color("#448AFF") // Blue
	Accent    = lipgloss.Color("#FFEB3B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#FF5252") // Light Red
	Text      = lipgloss.Color("#FFFFFF") // White
	TextDim   = lipgloss.Color("#9E9E9E") // Gray
	BgDark    = lipgloss.Color("#000000") // Black
	BgCard    = lipgloss.Color("#1A1A1A") // Near Black
	Border    = lipgloss.Color("#444444") // Dark Gray
)

// Tokens carries the branding colors delivered by the configuration
// endpoint. Empty fields keep their defaults.
type Tokens struct {
	Primary    string
	Secondary  string
	Text       string
	Background string
	CardBG     string
}

// Apply overrides the palette with service-supplied tokens. Called once,
// after the configuration loads and before any screen renders.
func Apply(t Tokens) {
	// The service's "primary" is its page background; the accent color
	// arrives as "secondary".
	if t.Secondary != "" {
		Primary = lipgloss.Color(t.Secondary)
	}
	if t.Text != "" {
		Text = lipgloss.Color(t.Text)
	}
	if t.Background != "" {
		BgDark = lipgloss.Color(t.Background)
	} else if t.Primary != "" {
		BgDark = lipgloss.Color(t.Primary)
	}
	if t.CardBG != "" {
		BgCard = lipgloss.Color(t.CardBG)
	}
	rebuildStyles()
}

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// Layout
var (
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Answered   lipgloss.Style
	Unanswered lipgloss.Style
	FieldError lipgloss.Style
)

// Components
var (
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
	ButtonDisabled lipgloss.Style
)

func rebuildStyles() {
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Answered = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Unanswered = lipgloss.NewStyle().
		Foreground(Primary)

	FieldError = lipgloss.NewStyle().
		Foreground(Error)

	ProgressFilled = lipgloss.NewStyle().
		Background(Primary)

	ProgressEmpty = lipgloss.NewStyle().
		Background(Border)

	ButtonActive = lipgloss.NewStyle().
		Background(Primary).
		Foreground(Text).
		Bold(true).
		Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)

	ButtonDisabled = lipgloss.NewStyle().
		Background(BgCard).
		Foreground(TextDim).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
}

func init() {
	rebuildStyles()
}
