package review

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/resiliq/internal/api"
	"github.com/abhisek/resiliq/internal/assessment"
	"github.com/abhisek/resiliq/internal/questionnaire"
	"github.com/abhisek/resiliq/internal/router"
)

func testSchema() *questionnaire.Schema {
	return &questionnaire.Schema{Sections: []questionnaire.Section{{
		Name: "Backups",
		Questions: []questionnaire.Question{
			{ID: "q1", Text: "Immutable backups?", Type: questionnaire.TypeSingleSelect, Options: []string{"No", "Yes"}},
		},
	}}}
}

func reviewAt(t *testing.T, mock *api.MockClient) *ReviewScreen {
	t.Helper()
	store := assessment.NewStore()
	flow := assessment.NewFlow(store)

	if err := flow.Advance(); err != nil {
		t.Fatalf("landing advance: %v", err)
	}
	store.RecordOrganizationInfo(assessment.OrganizationInfo{
		CompanyName: "Acme Corp", Industry: "Finance",
		CompanySize: "51-200", Region: "Europe",
		ContactEmail: "user@example.com",
	}, "assess-123")
	if err := flow.Advance(); err != nil {
		t.Fatalf("org info advance: %v", err)
	}
	schema := testSchema()
	flow.SetQuestionnaire(schema.QuestionIDs())
	store.RecordAnswer("q1", "Yes")
	if err := flow.Advance(); err != nil {
		t.Fatalf("questionnaire advance: %v", err)
	}

	return New(store, flow, mock, schema)
}

func pressEnter(s *ReviewScreen) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestSubmitOnce(t *testing.T) {
	mock := &api.MockClient{Result: &api.ScoreResult{TotalScore: 3, MaxScore: 3}}
	s := reviewAt(t, mock)

	cmd := pressEnter(s)
	if cmd == nil {
		t.Fatal("enter on the submit button returned no command")
	}
	msg := cmd()

	if mock.SubmitCount() != 1 {
		t.Fatalf("SubmitCount = %d, want 1", mock.SubmitCount())
	}
	sub := mock.SubmitCalls[0]
	if sub.AssessmentID != "assess-123" {
		t.Errorf("submitted assessment id = %q", sub.AssessmentID)
	}
	if len(sub.Responses["Backups"]) != 1 {
		t.Errorf("submitted responses = %+v", sub.Responses)
	}

	_, cmd = s.Update(msg)
	if cmd == nil {
		t.Fatal("successful submission produced no navigation command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected a replace with the results screen")
	}
	if s.flow.Current() != assessment.StepResults {
		t.Errorf("flow = %v, want results", s.flow.Current())
	}
}

func TestRepeatedEnterSubmitsOnce(t *testing.T) {
	mock := &api.MockClient{Result: &api.ScoreResult{}}
	s := reviewAt(t, mock)

	cmd := pressEnter(s)
	if cmd == nil {
		t.Fatal("first enter returned no command")
	}

	// Mash enter while the request is in flight.
	for i := 0; i < 5; i++ {
		if extra := pressEnter(s); extra != nil {
			extra()
		}
	}

	cmd() // the one in-flight request completes

	if mock.SubmitCount() != 1 {
		t.Errorf("SubmitCount = %d, want exactly 1", mock.SubmitCount())
	}
}

func TestSubmitFailureStaysOnReview(t *testing.T) {
	mock := &api.MockClient{SubmitErr: &api.StatusError{Code: 422, Detail: "assessment not found"}}
	s := reviewAt(t, mock)

	cmd := pressEnter(s)
	if cmd == nil {
		t.Fatal("enter returned no command")
	}
	_, next := s.Update(cmd())

	if next != nil {
		t.Error("failed submission must not navigate")
	}
	if s.flow.Current() != assessment.StepReview {
		t.Errorf("flow = %v, want review", s.flow.Current())
	}
	if s.requestErr != "assessment not found" {
		t.Errorf("requestErr = %q", s.requestErr)
	}

	// The button is re-armed: a retry goes through.
	mock.SubmitErr = nil
	cmd = pressEnter(s)
	if cmd == nil {
		t.Fatal("retry enter returned no command")
	}
	cmd()
	if mock.SubmitCount() != 2 {
		t.Errorf("SubmitCount = %d, want 2 after retry", mock.SubmitCount())
	}
}

func TestStaleSubmissionResultDropped(t *testing.T) {
	mock := &api.MockClient{Result: &api.ScoreResult{}}
	s := reviewAt(t, mock)

	stale := submittedMsg{seq: 99, err: errors.New("from another attempt")}
	_, cmd := s.Update(stale)

	if cmd != nil {
		t.Error("stale result produced a command")
	}
	if s.requestErr != "" {
		t.Errorf("stale result surfaced an error: %q", s.requestErr)
	}
}
