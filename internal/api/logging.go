package api

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/resiliq/internal/assessment"
	"github.com/abhisek/resiliq/internal/questionnaire"
)

// LoggingClient is a decorator that records every service call.
type LoggingClient struct {
	inner Client
	log   *zap.Logger
}

var _ Client = (*LoggingClient)(nil)

// WithLogging wraps a Client with call logging.
func WithLogging(c Client, log *zap.Logger) Client {
	return &LoggingClient{inner: c, log: log}
}

func (l *LoggingClient) FetchConfig(ctx context.Context) (*AppConfig, error) {
	start := time.Now()
	cfg, err := l.inner.FetchConfig(ctx)
	l.record("/api/config", start, err)
	return cfg, err
}

func (l *LoggingClient) FetchQuestionnaire(ctx context.Context) (*questionnaire.Schema, error) {
	start := time.Now()
	schema, err := l.inner.FetchQuestionnaire(ctx)
	l.record("/api/questionnaire/schema", start, err)
	return schema, err
}

func (l *LoggingClient) CreateCompany(ctx context.Context, info assessment.OrganizationInfo) (string, error) {
	start := time.Now()
	id, err := l.inner.CreateCompany(ctx, info)
	l.record("/api/company/create", start, err)
	return id, err
}

func (l *LoggingClient) SubmitAssessment(ctx context.Context, sub Submission) (*ScoreResult, error) {
	start := time.Now()
	result, err := l.inner.SubmitAssessment(ctx, sub)
	l.record("/api/assessment/submit", start, err,
		zap.String("assessment_id", sub.AssessmentID))
	return result, err
}

func (l *LoggingClient) SendReport(ctx context.Context, req EmailRequest) error {
	start := time.Now()
	err := l.inner.SendReport(ctx, req)
	l.record("/api/assessment/send-email", start, err)
	return err
}

func (l *LoggingClient) record(endpoint string, start time.Time, err error, extra ...zap.Field) {
	fields := append([]zap.Field{
		zap.String("endpoint", endpoint),
		zap.Duration("latency", time.Since(start)),
	}, extra...)

	if err != nil {
		fields = append(fields, zap.Error(err))
		l.log.Warn("service call failed", fields...)
		return
	}
	l.log.Info("service call", fields...)
}
