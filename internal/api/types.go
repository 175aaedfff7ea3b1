package api

import (
	"strings"

	"github.com/abhisek/resiliq/internal/assessment"
	"github.com/abhisek/resiliq/internal/questionnaire"
)

// AppConfig is the process-wide descriptive configuration served by
// GET /api/config. Loaded once at startup; read-only afterward.
type AppConfig struct {
	AppTitle       string      `json:"app_title"`
	AppSubtitle    string      `json:"app_subtitle"`
	CompanyName    string      `json:"company_name"`
	CompanyTagline string      `json:"company_tagline"`
	Colors         ColorTokens `json:"colors"`
	CompanySizes   []string    `json:"company_sizes"`
	Industries     []string    `json:"industries"`
	Regions        []string    `json:"regions"`
}

// ColorTokens carries the service-defined branding colors as hex strings.
type ColorTokens struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Text       string `json:"text"`
	Background string `json:"background"`
	CardBG     string `json:"card_bg"`
}

// Submission is the payload for POST /api/assessment/submit. Constructed
// once per attempt and never mutated afterward.
type Submission struct {
	AssessmentID string                        `json:"assessment_id"`
	CompanyInfo  assessment.OrganizationInfo   `json:"company_info"`
	Responses    map[string][]QuestionResponse `json:"responses"`
}

// QuestionResponse is one answered question on the wire, grouped by
// section inside Submission.Responses.
type QuestionResponse struct {
	QuestionID   string `json:"question_id"`
	Section      string `json:"section"`
	QuestionText string `json:"question_text"`
	QuestionType string `json:"question_type"`
	Answer       string `json:"answer"`
	Comment      string `json:"comment"`
}

// NewSubmission builds the wire payload from a state snapshot, walking the
// schema in section order so the service sees responses grouped the way it
// defined them. Questions without a non-blank answer are omitted.
func NewSubmission(snap assessment.Snapshot, schema *questionnaire.Schema) Submission {
	sub := Submission{
		AssessmentID: snap.AssessmentID,
		Responses:    make(map[string][]QuestionResponse),
	}
	if snap.OrganizationInfo != nil {
		sub.CompanyInfo = *snap.OrganizationInfo
	}

	for _, sec := range schema.Sections {
		for _, q := range sec.Questions {
			answer, ok := snap.Responses[q.ID]
			if !ok || strings.TrimSpace(answer) == "" {
				continue
			}
			sub.Responses[sec.Name] = append(sub.Responses[sec.Name], QuestionResponse{
				QuestionID:   q.ID,
				Section:      sec.Name,
				QuestionText: q.Text,
				QuestionType: string(q.Type),
				Answer:       answer,
			})
		}
	}
	return sub
}

// ScoreResult is the scorecard computed by the scoring service. The client
// stores and displays it; every field is taken as-is.
type ScoreResult struct {
	TotalScore          int             `json:"total_score"`
	MaxScore            int             `json:"max_score"`
	AverageScore        float64         `json:"average_score"`
	MaturityLevel       int             `json:"maturity_level"`
	MaturityLabel       string          `json:"maturity_label"`
	Characteristics     string          `json:"characteristics"`
	RecommendedNextStep string          `json:"recommended_next_step"`
	QuestionScores      []QuestionScore `json:"question_scores"`
	GapAnalysis         *GapAnalysis    `json:"gap_analysis,omitempty"`
}

// QuestionScore is the per-question line of the scorecard.
type QuestionScore struct {
	QuestionID        string `json:"question_id"`
	Domain            string `json:"domain"`
	Score             int    `json:"score"`
	MaxPoints         int    `json:"max_points"`
	MaturityIndicated int    `json:"maturity_indicated"`
	UserAnswer        string `json:"user_answer,omitempty"`
}

// GapAnalysis describes the distance to the target maturity level.
type GapAnalysis struct {
	GapPoints       int    `json:"gap_points"`
	EstimatedEffort string `json:"estimated_effort"`
}

// EmailRequest is the payload for POST /api/assessment/send-email.
type EmailRequest struct {
	Email       string       `json:"email"`
	CompanyName string       `json:"company_name"`
	Results     *ScoreResult `json:"results"`
}
