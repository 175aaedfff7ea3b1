package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/abhisek/resiliq/internal/assessment"
	"github.com/abhisek/resiliq/internal/questionnaire"
)

// HTTPClient talks JSON to the scoring service. It performs no automatic
// retries: every call is a single attempt, and retrying is a user action.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a client for the given service config.
func NewHTTPClient(cfg Config) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		hc:      &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *HTTPClient) FetchConfig(ctx context.Context) (*AppConfig, error) {
	raw, err := c.get(ctx, "/api/config")
	if err != nil {
		return nil, err
	}

	if err := validatePayload(configPayloadSchema, raw); err != nil {
		return nil, &InvalidPayloadError{Endpoint: "/api/config", Err: err}
	}

	var cfg AppConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, &InvalidPayloadError{Endpoint: "/api/config", Err: err}
	}
	return &cfg, nil
}

func (c *HTTPClient) FetchQuestionnaire(ctx context.Context) (*questionnaire.Schema, error) {
	raw, err := c.get(ctx, "/api/questionnaire/schema")
	if err != nil {
		return nil, err
	}

	if err := validatePayload(questionnairePayloadSchema, raw); err != nil {
		return nil, &InvalidPayloadError{Endpoint: "/api/questionnaire/schema", Err: err}
	}

	schema, err := questionnaire.Decode(raw)
	if err != nil {
		return nil, &InvalidPayloadError{Endpoint: "/api/questionnaire/schema", Err: err}
	}
	if schema.QuestionCount() == 0 {
		return nil, ErrEmptySchema
	}
	if err := schema.Validate(); err != nil {
		return nil, &InvalidPayloadError{Endpoint: "/api/questionnaire/schema", Err: err}
	}
	return schema, nil
}

func (c *HTTPClient) CreateCompany(ctx context.Context, info assessment.OrganizationInfo) (string, error) {
	raw, err := c.post(ctx, "/api/company/create", info)
	if err != nil {
		return "", err
	}

	var resp struct {
		Success      bool   `json:"success"`
		AssessmentID string `json:"assessment_id"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", &InvalidPayloadError{Endpoint: "/api/company/create", Err: err}
	}
	if !resp.Success || resp.AssessmentID == "" {
		return "", &InvalidPayloadError{
			Endpoint: "/api/company/create",
			Err:      fmt.Errorf("no assessment id issued"),
		}
	}
	return resp.AssessmentID, nil
}

func (c *HTTPClient) SubmitAssessment(ctx context.Context, sub Submission) (*ScoreResult, error) {
	raw, err := c.post(ctx, "/api/assessment/submit", sub)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Results *ScoreResult `json:"results"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &InvalidPayloadError{Endpoint: "/api/assessment/submit", Err: err}
	}
	// A missing results field is not an error here: the results screen
	// shows its empty state rather than fabricating a scorecard.
	return resp.Results, nil
}

func (c *HTTPClient) SendReport(ctx context.Context, req EmailRequest) error {
	_, err := c.post(ctx, "/api/assessment/send-email", req)
	return err
}

func (c *HTTPClient) get(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req)
}

func (c *HTTPClient) post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return c.do(req)
}

func (c *HTTPClient) do(req *http.Request) (json.RawMessage, error) {
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Detail: extractDetail(body)}
	}
	return body, nil
}

// extractDetail pulls the human-readable reason out of an error body when
// the service provides one.
func extractDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Detail)
}
