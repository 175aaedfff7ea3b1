package api

import (
	"context"

	"github.com/abhisek/resiliq/internal/assessment"
	"github.com/abhisek/resiliq/internal/questionnaire"
)

// Client is the core abstraction for the scoring service. The service owns
// all score computation; this side only exchanges JSON payloads with it.
type Client interface {
	// FetchConfig retrieves the application configuration. A response
	// without an app title is rejected as invalid.
	FetchConfig(ctx context.Context) (*AppConfig, error)

	// FetchQuestionnaire retrieves the questionnaire definition. Returns
	// ErrEmptySchema when the service answers 2xx but defines no questions.
	FetchQuestionnaire(ctx context.Context) (*questionnaire.Schema, error)

	// CreateCompany registers the organization and opens an assessment,
	// returning the service-issued assessment identifier.
	CreateCompany(ctx context.Context, info assessment.OrganizationInfo) (string, error)

	// SubmitAssessment sends the completed submission for scoring. A 2xx
	// response without results yields (nil, nil); the caller decides how
	// to present the missing result.
	SubmitAssessment(ctx context.Context, sub Submission) (*ScoreResult, error)

	// SendReport asks the service to email the scorecard. The rendered
	// results are unaffected by the outcome.
	SendReport(ctx context.Context, req EmailRequest) error
}
