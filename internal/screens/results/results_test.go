package results

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/resiliq/internal/api"
	"github.com/abhisek/resiliq/internal/assessment"
	"github.com/abhisek/resiliq/internal/router"
)

func resultsAt(t *testing.T, mock *api.MockClient, result *api.ScoreResult) (*ResultsScreen, *assessment.Store, *assessment.Flow) {
	t.Helper()
	store := assessment.NewStore()
	flow := assessment.NewFlow(store)
	store.RecordOrganizationInfo(assessment.OrganizationInfo{
		CompanyName: "Acme Corp", Industry: "Finance",
		CompanySize: "51-200", Region: "Europe",
		ContactEmail: "user@example.com",
	}, "assess-123")
	return New(store, flow, mock, result), store, flow
}

func scorecard() *api.ScoreResult {
	return &api.ScoreResult{
		TotalScore:    18,
		MaxScore:      36,
		AverageScore:  1.5,
		MaturityLevel: 2,
		MaturityLabel: "Developing",
		QuestionScores: []api.QuestionScore{
			{QuestionID: "q1", Domain: "Backups", Score: 2, MaxPoints: 3},
		},
		GapAnalysis: &api.GapAnalysis{GapPoints: 6, EstimatedEffort: "3-6 months"},
	}
}

func TestMissingResultShowsEmptyState(t *testing.T) {
	s, _, _ := resultsAt(t, &api.MockClient{}, nil)

	view := s.View(100, 40)
	if !strings.Contains(view, "no scorecard") {
		t.Error("empty state not rendered for a missing result")
	}

	// The email prompt is unavailable without a scorecard.
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'e', Text: "e"})
	if cmd != nil || s.prompting {
		t.Error("email prompt opened without a result")
	}
}

func TestScorecardRendering(t *testing.T) {
	s, _, _ := resultsAt(t, &api.MockClient{}, scorecard())

	view := s.View(100, 40)
	for _, want := range []string{"Acme Corp", "Developing", "18 / 36", "Backups", "3-6 months"} {
		if !strings.Contains(view, want) {
			t.Errorf("scorecard view missing %q", want)
		}
	}
}

func TestEmailOutcomeLeavesScorecardIntact(t *testing.T) {
	mock := &api.MockClient{SendErr: &api.StatusError{Code: 502, Detail: "mail relay down"}}
	s, _, _ := resultsAt(t, mock, scorecard())

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'e', Text: "e"})
	_ = cmd
	if !s.prompting {
		t.Fatal("email prompt did not open")
	}
	// Prompt is pre-filled with the contact email; send it.
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("send produced no command")
	}
	s.Update(cmd())

	if len(mock.SendCalls) != 1 {
		t.Fatalf("SendCalls = %d, want 1", len(mock.SendCalls))
	}
	if mock.SendCalls[0].Email != "user@example.com" {
		t.Errorf("sent to %q", mock.SendCalls[0].Email)
	}
	if s.emailStatus != "mail relay down" || !s.emailFailed {
		t.Errorf("emailStatus = %q failed=%v", s.emailStatus, s.emailFailed)
	}

	// The scorecard render is untouched by the failure.
	view := s.View(100, 40)
	if !strings.Contains(view, "Developing") {
		t.Error("email failure disturbed the scorecard")
	}
}

func TestEmailPromptRejectsMalformedAddress(t *testing.T) {
	mock := &api.MockClient{}
	s, store, _ := resultsAt(t, mock, scorecard())
	store.RecordOrganizationInfo(assessment.OrganizationInfo{CompanyName: "Acme"}, "assess-123")

	s.Update(tea.KeyPressMsg{Code: 'e', Text: "e"})
	s.emailPrompt.SetValue("not-an-email")
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if len(mock.SendCalls) != 0 {
		t.Error("malformed address was sent")
	}
	if s.emailPrompt.Err() == "" {
		t.Error("no validation message on the prompt")
	}
}

func TestRestartResetsSessionAndUnwinds(t *testing.T) {
	s, store, flow := resultsAt(t, &api.MockClient{}, scorecard())
	flow.SetQuestionnaire([]string{"q1"})
	store.RecordAnswer("q1", "Yes")
	oldSession := store.SessionID()

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	if cmd == nil {
		t.Fatal("restart produced no command")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected an unwind to the landing screen")
	}

	if store.SessionID() == oldSession {
		t.Error("restart kept the old session id")
	}
	if store.IsAnswered("q1") {
		t.Error("restart kept answers")
	}
	if flow.Current() != assessment.StepLanding {
		t.Errorf("flow = %v, want landing", flow.Current())
	}
	if flow.QuestionTotal() != 0 {
		t.Errorf("QuestionTotal = %d, want 0", flow.QuestionTotal())
	}
}
