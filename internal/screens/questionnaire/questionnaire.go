package questionnaire

import (
	"context"
	"errors"
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
	"github.com/abhisek/resiliq/internal/screens/review"
	"github.com/abhisek/resiliq/internal/ui/components"
	"github.com/abhisek/resiliq/internal/ui/layout"
	"github.com/abhisek/resiliq/internal/ui/theme"
)

// phase tracks where the screen is in its schema lifecycle.
type phase int

const (
	phaseLoading phase = iota
	phaseFailed
	phaseEmpty
	phaseReady
)

// schemaLoadedMsg carries the outcome of a schema fetch. seq identifies
// the attempt it belongs to; results from superseded attempts are dropped.
type schemaLoadedMsg struct {
	seq    int
	schema *questionnaire.Schema
	err    error
}

// QuestionnaireScreen walks the respondent through the schema-defined
// question set, one question at a time.
type QuestionnaireScreen struct {
	store  *assessment.Store
	flow   *assessment.Flow
	client api.Client

	phase    phase
	loadErr  string
	seq      int
	schema   *questionnaire.Schema
	ordered  []questionnaire.Numbered
	position int

	choices components.ChoiceList
	free    components.TextInput
	notice  string
}

var _ screen.Screen = (*QuestionnaireScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionnaireScreen)(nil)

// New creates the questionnaire screen. The schema is fetched in Init.
func New(store *assessment.Store, flow *assessment.Flow, client api.Client) *QuestionnaireScreen {
	return &QuestionnaireScreen{
		store:  store,
		flow:   flow,
		client: client,
	}
}

func (q *QuestionnaireScreen) Init() tea.Cmd {
	return q.fetchSchema()
}

func (q *QuestionnaireScreen) fetchSchema() tea.Cmd {
	q.phase = phaseLoading
	q.loadErr = ""
	q.seq++

	seq := q.seq
	client := q.client
	return func() tea.Msg {
		schema, err := client.FetchQuestionnaire(context.Background())
		return schemaLoadedMsg{seq: seq, schema: schema, err: err}
	}
}

func (q *QuestionnaireScreen) Title() string {
	return "Questionnaire"
}

func (q *QuestionnaireScreen) KeyHints() []layout.KeyHint {
	if q.phase != phaseReady {
		return []layout.KeyHint{
			{Key: "r", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Tab/→", Description: "Next question"},
		{Key: "Esc", Description: "Back"},
	}
}

// current returns the question at the cursor.
func (q *QuestionnaireScreen) current() questionnaire.Numbered {
	return q.ordered[q.position]
}

// loadWidget rebuilds the answer widget for the current question,
// restoring any previously recorded answer.
func (q *QuestionnaireScreen) loadWidget() tea.Cmd {
	q.notice = ""
	cur := q.current()
	prev, _ := q.store.Answer(cur.ID)

	switch cur.Type.Kind() {
	case questionnaire.KindFreeText:
		q.free = components.NewTextInput(cur.Domain, "Type your answer", cur.Required, 500)
		q.free.SetValue(prev)
		return q.free.Focus()
	default:
		id := cur.ID
		q.choices = components.NewChoiceList(cur.Options, func(value string) tea.Cmd {
			q.store.RecordAnswer(id, value)
			return q.next()
		})
		q.choices.SetChosen(prev)
	}
	return nil
}

// next moves to the following question, or past the end tries to advance
// the flow into review.
func (q *QuestionnaireScreen) next() tea.Cmd {
	if q.position < len(q.ordered)-1 {
		q.position++
		return q.loadWidget()
	}

	if err := q.flow.Advance(); err != nil {
		var inc *assessment.IncompleteError
		if errors.As(err, &inc) {
			q.notice = fmt.Sprintf("%d of %d questions still unanswered", inc.Remaining, inc.Total)
		} else {
			logging.L().Warn("questionnaire advance rejected", zap.Error(err))
		}
		return nil
	}
	next := review.New(q.store, q.flow, q.client, q.schema)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (q *QuestionnaireScreen) prev() tea.Cmd {
	if q.position > 0 {
		q.position--
		return q.loadWidget()
	}
	return nil
}

func (q *QuestionnaireScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case schemaLoadedMsg:
		if msg.seq != q.seq {
			return q, nil
		}
		if msg.err != nil {
			logging.L().Warn("schema fetch failed", zap.Error(msg.err))
			// A reachable service with no questions configured is not a
			// failure, it gets its own state.
			if errors.Is(msg.err, api.ErrEmptySchema) {
				q.phase = phaseEmpty
				return q, nil
			}
			q.phase = phaseFailed
			q.loadErr = api.UserMessage(msg.err)
			return q, nil
		}
		q.schema = msg.schema
		q.ordered = questionnaire.Flatten(msg.schema)
		q.flow.SetQuestionnaire(msg.schema.QuestionIDs())
		q.phase = phaseReady
		q.position = 0
		return q, q.loadWidget()

	case tea.KeyMsg:
		switch q.phase {
		case phaseLoading:
			if msg.String() == "esc" {
				return q, q.goBack()
			}
			return q, nil
		case phaseFailed, phaseEmpty:
			switch msg.String() {
			case "r":
				return q, q.fetchSchema()
			case "esc":
				return q, q.goBack()
			}
			return q, nil
		}

		switch msg.String() {
		case "esc":
			if q.position > 0 {
				return q, q.prev()
			}
			return q, q.goBack()
		case "tab":
			return q, q.next()
		case "shift+tab":
			return q, q.prev()
		}

		cur := q.current()
		// Free-text questions need left/right for the cursor; choice
		// questions use them to move between questions.
		if cur.Type.Kind() != questionnaire.KindFreeText {
			switch msg.String() {
			case "left":
				return q, q.prev()
			case "right":
				return q, q.next()
			}
		}
		if cur.Type.Kind() == questionnaire.KindFreeText {
			if msg.String() == "enter" {
				q.store.RecordAnswer(cur.ID, q.free.Value())
				return q, q.next()
			}
			var cmd tea.Cmd
			q.free, cmd = q.free.Update(msg)
			q.store.RecordAnswer(cur.ID, q.free.Value())
			return q, cmd
		}

		var cmd tea.Cmd
		q.choices, cmd = q.choices.Update(msg)
		return q, cmd
	}

	return q, nil
}

func (q *QuestionnaireScreen) goBack() tea.Cmd {
	if q.flow.Retreat() {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	return nil
}

func (q *QuestionnaireScreen) View(width, height int) string {
	switch q.phase {
	case phaseLoading:
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading questionnaire..."))
	case phaseFailed:
		msg := theme.FieldError.Render("Could not load the questionnaire") +
			"\n\n" + theme.Body.Render(q.loadErr) +
			"\n\n" + theme.Hint.Render("Press r to retry")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	case phaseEmpty:
		msg := theme.Body.Render("No questionnaire is available yet.") +
			"\n\n" + theme.Hint.Render("The service has no questions configured. Press r to check again.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	cur := q.current()
	total := len(q.ordered)
	answered := q.store.AnsweredCount(q.schema.QuestionIDs())

	var b strings.Builder

	bar := components.NewProgressBar(
		"Progress",
		float64(assessment.Progress(answered, total))/100,
		fmt.Sprintf("%d / %d answered", answered, total),
		min(width-8, 72),
	)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	b.WriteString(theme.Hint.Render(fmt.Sprintf("Question %d of %d  ·  %s", cur.Index, total, cur.Section)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(cur.Domain))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Width(min(width-8, 72)).Render(cur.Text))
	b.WriteString("\n\n")

	if cur.Type.Kind() == questionnaire.KindFreeText {
		b.WriteString(q.free.View())
	} else {
		b.WriteString(q.choices.View())
	}

	if cur.HelpText != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(min(width-8, 72)).Render("ℹ " + cur.HelpText))
	}
	if q.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.FieldError.Render(q.notice))
	}

	card := theme.Card.Width(min(width-4, 78)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
