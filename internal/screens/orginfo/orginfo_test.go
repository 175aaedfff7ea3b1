package orginfo

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/resiliq/internal/api"
	"github.com/abhisek/resiliq/internal/assessment"
	"github.com/abhisek/resiliq/internal/router"
)

func testConfig() *api.AppConfig {
	return &api.AppConfig{
		AppTitle:     "Resilience Assessment",
		Industries:   []string{"Finance", "Healthcare"},
		CompanySizes: []string{"1-50", "51-200"},
		Regions:      []string{"Europe", "North America"},
	}
}

func orgInfoAt(t *testing.T, mock *api.MockClient) (*OrgInfoScreen, *assessment.Store, *assessment.Flow) {
	t.Helper()
	store := assessment.NewStore()
	flow := assessment.NewFlow(store)
	if err := flow.Advance(); err != nil {
		t.Fatalf("landing advance: %v", err)
	}
	return New(testConfig(), store, flow, mock), store, flow
}

func fillValid(s *OrgInfoScreen) {
	s.companyName.SetValue("Acme Corp")
	s.contactEmail.SetValue("user@example.com")
	s.industry.SetChosen("Finance")
	s.companySize.SetChosen("51-200")
	s.region.SetChosen("Europe")
}

func TestSubmitWithInvalidFormShowsFieldErrors(t *testing.T) {
	mock := &api.MockClient{AssessmentID: "assess-123"}
	s, _, _ := orgInfoAt(t, mock)

	s.companyName.SetValue("Acme Corp")
	s.contactEmail.SetValue("not-an-email")

	if cmd := s.submit(); cmd != nil {
		t.Fatal("invalid form produced a request command")
	}
	if len(mock.CreateCalls) != 0 {
		t.Error("invalid form reached the service")
	}
	if s.contactEmail.Err() == "" {
		t.Error("no error attached to the email field")
	}
	if s.companyName.Err() != "" {
		t.Error("valid company name carries an error")
	}
}

func TestSubmitRegistersCompanyAndAdvances(t *testing.T) {
	mock := &api.MockClient{AssessmentID: "assess-123"}
	s, store, flow := orgInfoAt(t, mock)
	fillValid(s)

	cmd := s.submit()
	if cmd == nil {
		t.Fatal("valid form produced no request command")
	}
	if !s.submitting {
		t.Error("submit did not mark the request in flight")
	}

	_, next := s.Update(cmd())

	if len(mock.CreateCalls) != 1 {
		t.Fatalf("CreateCalls = %d, want 1", len(mock.CreateCalls))
	}
	if mock.CreateCalls[0].CompanyName != "Acme Corp" {
		t.Errorf("registered %+v", mock.CreateCalls[0])
	}
	if store.AssessmentID() != "assess-123" {
		t.Errorf("AssessmentID = %q", store.AssessmentID())
	}
	if flow.Current() != assessment.StepQuestionnaire {
		t.Errorf("flow = %v, want questionnaire", flow.Current())
	}
	if next == nil {
		t.Fatal("success produced no navigation command")
	}
	if _, ok := next().(router.PushScreenMsg); !ok {
		t.Error("expected a push to the questionnaire screen")
	}
}

func TestCreateFailureStaysWithInlineError(t *testing.T) {
	mock := &api.MockClient{CreateErr: &api.StatusError{Code: 500, Detail: "db down"}}
	s, store, flow := orgInfoAt(t, mock)
	fillValid(s)

	cmd := s.submit()
	_, next := s.Update(cmd())

	if next != nil {
		t.Error("failure navigated away")
	}
	if flow.Current() != assessment.StepOrgInfo {
		t.Errorf("flow = %v, want org-info", flow.Current())
	}
	if store.AssessmentID() != "" {
		t.Error("failed registration recorded an assessment id")
	}
	if s.requestErr != "db down" {
		t.Errorf("requestErr = %q", s.requestErr)
	}
	if s.submitting {
		t.Error("failure left the form locked")
	}
}

func TestKeysIgnoredWhileInFlight(t *testing.T) {
	mock := &api.MockClient{AssessmentID: "assess-123"}
	s, _, _ := orgInfoAt(t, mock)
	fillValid(s)

	s.submit()
	before := s.focus
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.focus != before {
		t.Error("focus moved while the request was in flight")
	}
}

func TestReturningUnchangedFormKeepsAnswers(t *testing.T) {
	mock := &api.MockClient{AssessmentID: "assess-123"}
	store := assessment.NewStore()
	flow := assessment.NewFlow(store)
	flow.Advance()
	store.RecordOrganizationInfo(assessment.OrganizationInfo{
		CompanyName: "Acme Corp", Industry: "Finance",
		CompanySize: "51-200", Region: "Europe",
		ContactEmail: "user@example.com",
	}, "assess-123")
	flow.Advance()
	store.RecordAnswer("q1", "Yes")
	if !flow.Retreat() {
		t.Fatal("retreat to org-info refused")
	}

	s := New(testConfig(), store, flow, mock)
	cmd := s.submit()
	if cmd == nil {
		t.Fatal("continue on an unchanged form produced no command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Fatal("expected a direct push to the questionnaire screen")
	}
	if len(mock.CreateCalls) != 0 {
		t.Errorf("unchanged form re-registered the company %d times", len(mock.CreateCalls))
	}
	if got, _ := store.Answer("q1"); got != "Yes" {
		t.Errorf("answer q1 = %q, want %q", got, "Yes")
	}
	if store.AssessmentID() != "assess-123" {
		t.Errorf("AssessmentID = %q", store.AssessmentID())
	}
	if flow.Current() != assessment.StepQuestionnaire {
		t.Errorf("flow = %v, want questionnaire", flow.Current())
	}
}

func TestEditedFormReRegistersAndResetsAnswers(t *testing.T) {
	mock := &api.MockClient{AssessmentID: "assess-456"}
	store := assessment.NewStore()
	flow := assessment.NewFlow(store)
	flow.Advance()
	store.RecordOrganizationInfo(assessment.OrganizationInfo{
		CompanyName: "Acme Corp", Industry: "Finance",
		CompanySize: "51-200", Region: "Europe",
		ContactEmail: "user@example.com",
	}, "assess-123")
	flow.Advance()
	store.RecordAnswer("q1", "Yes")
	flow.Retreat()

	s := New(testConfig(), store, flow, mock)
	s.companyName.SetValue("Other Corp")

	cmd := s.submit()
	if cmd == nil {
		t.Fatal("edited form produced no request command")
	}
	s.Update(cmd())

	if len(mock.CreateCalls) != 1 {
		t.Fatalf("CreateCalls = %d, want 1", len(mock.CreateCalls))
	}
	if store.AssessmentID() != "assess-456" {
		t.Errorf("AssessmentID = %q, want the fresh registration", store.AssessmentID())
	}
	if got, _ := store.Answer("q1"); got != "" {
		t.Error("answers for the previous organization survived re-registration")
	}
}

func TestReturningKeepsEnteredValues(t *testing.T) {
	mock := &api.MockClient{AssessmentID: "assess-123"}
	store := assessment.NewStore()
	flow := assessment.NewFlow(store)
	flow.Advance()
	store.RecordOrganizationInfo(assessment.OrganizationInfo{
		CompanyName: "Acme Corp", Industry: "Healthcare",
		CompanySize: "1-50", Region: "Europe",
		ContactEmail: "user@example.com",
	}, "assess-123")

	s := New(testConfig(), store, flow, mock)

	if s.companyName.Value() != "Acme Corp" {
		t.Errorf("company name = %q", s.companyName.Value())
	}
	if s.industry.Value() != "Healthcare" {
		t.Errorf("industry = %q", s.industry.Value())
	}
	if s.companySize.Value() != "1-50" {
		t.Errorf("size = %q", s.companySize.Value())
	}
}
