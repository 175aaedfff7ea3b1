package results

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/resiliq/internal/api"
	"github.com/abhisek/resiliq/internal/assessment"
	"github.com/abhisek/resiliq/internal/logging"
	"github.com/abhisek/resiliq/internal/router"
	"github.com/abhisek/resiliq/internal/screen"
	"github.com/abhisek/resiliq/internal/ui/components"
	"github.com/abhisek/resiliq/internal/ui/layout"
	"github.com/abhisek/resiliq/internal/ui/theme"
)

// reportSentMsg carries the outcome of an email-report request. seq
// identifies the attempt it belongs to.
type reportSentMsg struct {
	seq int
	err error
}

// ResultsScreen presents the scorecard returned by the scoring service
// and offers emailing the report or starting over.
type ResultsScreen struct {
	store  *assessment.Store
	flow   *assessment.Flow
	client api.Client
	result *api.ScoreResult

	emailPrompt components.TextInput
	prompting   bool
	sending     bool
	seq         int
	emailStatus string
	emailFailed bool
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen. result may be nil when the service
// acknowledged the submission without a scorecard.
func New(store *assessment.Store, flow *assessment.Flow, client api.Client, result *api.ScoreResult) *ResultsScreen {
	return &ResultsScreen{
		store:  store,
		flow:   flow,
		client: client,
		result: result,
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	if s.prompting {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Send"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "n", Description: "New assessment"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if s.result != nil {
		hints = append([]layout.KeyHint{{Key: "e", Description: "Email report"}}, hints...)
	}
	return hints
}

// sendReport dispatches the report email. A failure here leaves the
// displayed results untouched.
func (s *ResultsScreen) sendReport(email string) tea.Cmd {
	org, _ := s.store.OrganizationInfo()
	req := api.EmailRequest{
		Email:       email,
		CompanyName: org.CompanyName,
		Results:     s.result,
	}

	s.sending = true
	s.seq++
	seq := s.seq
	client := s.client
	return func() tea.Msg {
		return reportSentMsg{seq: seq, err: client.SendReport(context.Background(), req)}
	}
}

// restart discards the session and returns to the landing step.
func (s *ResultsScreen) restart() tea.Cmd {
	s.store.Reset()
	s.flow.Restart()
	return func() tea.Msg {
		return router.PopToRootMsg{}
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportSentMsg:
		if msg.seq != s.seq {
			return s, nil
		}
		s.sending = false
		s.prompting = false
		if msg.err != nil {
			logging.L().Warn("report email failed", zap.Error(msg.err))
			s.emailStatus = api.UserMessage(msg.err)
			s.emailFailed = true
			return s, nil
		}
		s.emailStatus = "Report sent."
		s.emailFailed = false
		return s, nil

	case tea.KeyMsg:
		if s.sending {
			return s, nil
		}
		if s.prompting {
			switch msg.String() {
			case "esc":
				s.prompting = false
				return s, nil
			case "enter":
				email := strings.TrimSpace(s.emailPrompt.Value())
				if !assessment.ValidEmail(email) {
					s.emailPrompt.SetError("Invalid email format")
					return s, nil
				}
				return s, s.sendReport(email)
			}
			var cmd tea.Cmd
			s.emailPrompt, cmd = s.emailPrompt.Update(msg)
			s.emailPrompt.SetError("")
			return s, cmd
		}

		switch msg.String() {
		case "e":
			if s.result == nil {
				return s, nil
			}
			s.prompting = true
			s.emailStatus = ""
			s.emailPrompt = components.NewTextInput("Send report to", "you@example.com", true, 120)
			if org, ok := s.store.OrganizationInfo(); ok {
				s.emailPrompt.SetValue(org.ContactEmail)
			}
			return s, s.emailPrompt.Focus()
		case "n":
			return s, s.restart()
		}
	}

	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	innerWidth := min(width-8, 84)

	var b strings.Builder

	if s.result == nil {
		b.WriteString(theme.Title.Render("Assessment submitted"))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render("The service accepted your assessment but returned no scorecard."))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Press n to start a new assessment."))
		card := theme.Card.Width(innerWidth).Render(b.String())
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
	}

	r := s.result

	b.WriteString(theme.Title.Render("Resilience Scorecard"))
	if org, ok := s.store.OrganizationInfo(); ok {
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render(org.CompanyName))
	}
	b.WriteString("\n\n")

	// Aggregate summary.
	maturity := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("Level %d — %s", r.MaturityLevel, r.MaturityLabel))
	b.WriteString("  " + maturity + "\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("  Score: %d / %d   Average: %.1f",
		r.TotalScore, r.MaxScore, r.AverageScore)))
	b.WriteString("\n\n")

	if r.Characteristics != "" {
		b.WriteString(theme.Body.Width(innerWidth - 4).Render("  " + r.Characteristics))
		b.WriteString("\n\n")
	}

	// Per-question breakdown.
	if len(r.QuestionScores) > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).
			Render(fmt.Sprintf("  %-28s %10s %10s", "Domain", "Score", "Max")))
		b.WriteString("\n")
		for _, qs := range r.QuestionScores {
			domain := qs.Domain
			if len(domain) > 28 {
				domain = domain[:25] + "..."
			}
			line := fmt.Sprintf("  %-28s %10d %10d", domain, qs.Score, qs.MaxPoints)
			style := theme.Body
			if qs.Score < qs.MaxPoints/2 {
				style = theme.FieldError
			}
			b.WriteString(style.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if r.GapAnalysis != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("  Gap to next level"))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("  %d points   Estimated effort: %s",
			r.GapAnalysis.GapPoints, r.GapAnalysis.EstimatedEffort)))
		b.WriteString("\n\n")
	}

	if r.RecommendedNextStep != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("  Recommended next step"))
		b.WriteString("\n")
		b.WriteString(theme.Body.Width(innerWidth - 4).Render("  " + r.RecommendedNextStep))
		b.WriteString("\n")
	}

	if s.prompting {
		b.WriteString("\n")
		b.WriteString(s.emailPrompt.View())
		if s.sending {
			b.WriteString("\n")
			b.WriteString(theme.Hint.Render("Sending..."))
		}
	}
	if s.emailStatus != "" && !s.prompting {
		b.WriteString("\n")
		if s.emailFailed {
			b.WriteString(theme.FieldError.Render(s.emailStatus))
		} else {
			b.WriteString(theme.Answered.Render(s.emailStatus))
		}
		b.WriteString("\n")
	}

	card := theme.Card.Width(innerWidth).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
