package review

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
	"github.com/abhisek/resiliq/internal/questionnaire"
	"github.com/abhisek/resiliq/internal/router"
	"github.com/abhisek/resiliq/internal/screen"
	"github.com/abhisek/resiliq/internal/screens/results"
	"github.com/abhisek/resiliq/internal/ui/components"
	"github.com/abhisek/resiliq/internal/ui/layout"
	"github.com/abhisek/resiliq/internal/ui/theme"
)

// submittedMsg carries the outcome of an assessment submission. seq
// identifies the attempt it belongs to.
type submittedMsg struct {
	seq    int
	result *api.ScoreResult
	err    error
}

// ReviewScreen shows the assessment summary and performs the one-shot
// submission to the scoring service.
type ReviewScreen struct {
	store  *assessment.Store
	flow   *assessment.Flow
	client api.Client
	schema *questionnaire.Schema

	submitBtn  components.Button
	submitting bool
	seq        int
	requestErr string
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates the review screen.
func New(store *assessment.Store, flow *assessment.Flow, client api.Client, schema *questionnaire.Schema) *ReviewScreen {
	s := &ReviewScreen{
		store:  store,
		flow:   flow,
		client: client,
		schema: schema,
	}
	s.submitBtn = components.NewButton("Submit Assessment", s.submit)
	s.submitBtn.Active = true
	return s
}

func (s *ReviewScreen) Init() tea.Cmd {
	return nil
}

func (s *ReviewScreen) Title() string {
	return "Review"
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

// submit sends the assessment. While a request is in flight the button is
// disabled, so a repeated press cannot produce a second submission.
func (s *ReviewScreen) submit() tea.Cmd {
	s.submitting = true
	s.submitBtn.Disabled = true
	s.requestErr = ""
	s.seq++

	seq := s.seq
	client := s.client
	sub := api.NewSubmission(s.store.Snapshot(), s.schema)
	return func() tea.Msg {
		result, err := client.SubmitAssessment(context.Background(), sub)
		return submittedMsg{seq: seq, result: result, err: err}
	}
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submittedMsg:
		if msg.seq != s.seq {
			return s, nil
		}
		s.submitting = false
		s.submitBtn.Disabled = false
		if msg.err != nil {
			logging.L().Warn("assessment submission failed", zap.Error(msg.err))
			s.requestErr = api.UserMessage(msg.err)
			return s, nil
		}
		s.flow.MarkSubmitted()
		if err := s.flow.Advance(); err != nil {
			logging.L().Warn("review advance rejected", zap.Error(err))
			return s, nil
		}
		// Replace rather than push: once submitted there is no path back
		// to the review step.
		next := results.New(s.store, s.flow, s.client, msg.result)
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}

	case tea.KeyMsg:
		if s.submitting {
			return s, nil
		}
		if msg.String() == "esc" {
			if s.flow.Retreat() {
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.submitBtn, cmd = s.submitBtn.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *ReviewScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Review your assessment"))
	b.WriteString("\n\n")

	if org, ok := s.store.OrganizationInfo(); ok {
		label := lipgloss.NewStyle().Foreground(theme.TextDim)
		value := lipgloss.NewStyle().Foreground(theme.Text)
		rows := [][2]string{
			{"Company", org.CompanyName},
			{"Industry", org.Industry},
			{"Size", org.CompanySize},
			{"Region", org.Region},
			{"Contact", org.ContactEmail},
		}
		for _, row := range rows {
			if row[1] == "" {
				continue
			}
			b.WriteString(label.Render(fmt.Sprintf("  %-10s", row[0])))
			b.WriteString(value.Render(row[1]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	total := s.schema.QuestionCount()
	answered := s.store.AnsweredCount(s.schema.QuestionIDs())
	countStyle := theme.Answered
	if answered < total {
		countStyle = theme.Unanswered
	}
	b.WriteString(theme.Body.Render("  Questions answered: "))
	b.WriteString(countStyle.Render(fmt.Sprintf("%d of %d", answered, total)))
	b.WriteString("\n\n")

	if s.submitting {
		b.WriteString(theme.Hint.Render("Submitting assessment..."))
	} else {
		b.WriteString(s.submitBtn.View())
	}
	if s.requestErr != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.FieldError.Render(s.requestErr))
	}

	card := theme.Card.Width(min(width-4, 72)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
