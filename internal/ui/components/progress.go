package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/resiliq/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar with an optional
// "answered / total" annotation.
type ProgressBar struct {
	Label       string
	Percent     float64
	Annotation  string
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, annotation string, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		Annotation:  annotation,
		ShowPercent: true,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // " 100%"
	}
	annotationWidth := 0
	if p.Annotation != "" {
		annotationWidth = lipgloss.Width(p.Annotation) + 2
	}

	barWidth := p.Width - labelWidth - percentWidth - annotationWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	fillStyle := theme.ProgressFilled
	if p.Percent >= 1.0 {
		fillStyle = lipgloss.NewStyle().Background(theme.Success)
	}

	result += fillStyle.Render(strings.Repeat(" ", filled))
	result += theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}
	if p.Annotation != "" {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("  " + p.Annotation)
	}

	return result
}
