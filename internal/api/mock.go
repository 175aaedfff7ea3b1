package api

import (
	"context"
	"sync"

	"github.com/abhisek/resiliq/internal/assessment"
	"github.com/abhisek/resiliq/internal/questionnaire"
)

// MockClient is a deterministic Client for testing. Each method returns
// its canned value and records the call.
type MockClient struct {
	mu sync.Mutex

	Config    *AppConfig
	ConfigErr error

	Schema    *questionnaire.Schema
	SchemaErr error

	AssessmentID string
	CreateErr    error

	Result    *ScoreResult
	SubmitErr error

	SendErr error

	ConfigCalls int
	SchemaCalls int
	CreateCalls []assessment.OrganizationInfo
	SubmitCalls []Submission
	SendCalls   []EmailRequest
}

var _ Client = (*MockClient)(nil)

func (m *MockClient) FetchConfig(_ context.Context) (*AppConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ConfigCalls++
	if m.ConfigErr != nil {
		return nil, m.ConfigErr
	}
	return m.Config, nil
}

func (m *MockClient) FetchQuestionnaire(_ context.Context) (*questionnaire.Schema, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SchemaCalls++
	if m.SchemaErr != nil {
		return nil, m.SchemaErr
	}
	return m.Schema, nil
}

func (m *MockClient) CreateCompany(_ context.Context, info assessment.OrganizationInfo) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls = append(m.CreateCalls, info)
	if m.CreateErr != nil {
		return "", m.CreateErr
	}
	return m.AssessmentID, nil
}

func (m *MockClient) SubmitAssessment(_ context.Context, sub Submission) (*ScoreResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SubmitCalls = append(m.SubmitCalls, sub)
	if m.SubmitErr != nil {
		return nil, m.SubmitErr
	}
	return m.Result, nil
}

func (m *MockClient) SendReport(_ context.Context, req EmailRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendCalls = append(m.SendCalls, req)
	return m.SendErr
}

// SubmitCount returns the number of SubmitAssessment calls made.
func (m *MockClient) SubmitCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.SubmitCalls)
}
