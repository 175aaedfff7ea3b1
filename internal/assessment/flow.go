package assessment

import (
	"errors"
	"fmt"
)

// Step identifies one stage of the assessment workflow, in fixed order.
type Step int

const (
	StepLanding Step = iota
	StepOrgInfo
	StepQuestionnaire
	StepReview
	StepResults
)

func (s Step) String() string {
	switch s {
	case StepLanding:
		return "landing"
	case StepOrgInfo:
		return "org-info"
	case StepQuestionnaire:
		return "questionnaire"
	case StepReview:
		return "review"
	case StepResults:
		return "results"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Sentinel guard failures.
var (
	// ErrOrganizationRequired blocks the questionnaire until organization
	// info has been validated and recorded with an assessment id.
	ErrOrganizationRequired = errors.New("organization info has not been recorded")

	// ErrNotSubmitted blocks the results step until a submission succeeded.
	ErrNotSubmitted = errors.New("assessment has not been submitted")

	// ErrLastStep means there is no step after results.
	ErrLastStep = errors.New("already at the final step")
)

// IncompleteError rejects the questionnaire→review transition while
// questions remain unanswered.
type IncompleteError struct {
	Remaining int
	Total     int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%d of %d questions remain unanswered", e.Remaining, e.Total)
}

// Flow is the linear step machine over the session store. Transitions are
// strictly between neighboring steps; each forward transition is guarded,
// backward transitions always succeed and never clear the store.
type Flow struct {
	store       *Store
	current     Step
	questionIDs []string
	submitted   bool
}

// NewFlow starts a flow on the landing step.
func NewFlow(store *Store) *Flow {
	return &Flow{store: store, current: StepLanding}
}

// Current returns the active step.
func (f *Flow) Current() Step {
	return f.current
}

// SetQuestionnaire registers the flattened question ids once the schema is
// loaded. The completion gate counts against exactly this set; no
// hardcoded total exists anywhere.
func (f *Flow) SetQuestionnaire(ids []string) {
	f.questionIDs = ids
}

// QuestionTotal returns the registered question count, 0 before the
// schema has loaded.
func (f *Flow) QuestionTotal() int {
	return len(f.questionIDs)
}

// Remaining returns the number of registered questions without a
// non-blank answer.
func (f *Flow) Remaining() int {
	return len(f.questionIDs) - f.store.AnsweredCount(f.questionIDs)
}

// Progress returns the completion percentage for the registered questions.
func (f *Flow) Progress() int {
	return Progress(f.store.AnsweredCount(f.questionIDs), len(f.questionIDs))
}

// MarkSubmitted records that the scoring service accepted the submission,
// unlocking the results step.
func (f *Flow) MarkSubmitted() {
	f.submitted = true
}

// Advance moves one step forward if the current step's guard passes.
// On a guard failure the flow stays put and the error says why.
func (f *Flow) Advance() error {
	switch f.current {
	case StepLanding:
		// User-initiated, unconditional.

	case StepOrgInfo:
		if _, ok := f.store.OrganizationInfo(); !ok || f.store.AssessmentID() == "" {
			return ErrOrganizationRequired
		}

	case StepQuestionnaire:
		total := len(f.questionIDs)
		answered := f.store.AnsweredCount(f.questionIDs)
		if total == 0 || answered < total {
			return &IncompleteError{Remaining: total - answered, Total: total}
		}

	case StepReview:
		if !f.submitted {
			return ErrNotSubmitted
		}

	case StepResults:
		return ErrLastStep
	}

	f.current++
	return nil
}

// Retreat moves one step backward. Always permitted except on landing;
// nothing in the store is cleared.
func (f *Flow) Retreat() bool {
	if f.current == StepLanding {
		return false
	}
	f.current--
	return true
}

// Restart resets the flow for a new session. The caller resets the store.
func (f *Flow) Restart() {
	f.current = StepLanding
	f.questionIDs = nil
	f.submitted = false
}
