// Package assessment holds the in-memory state of one assessment session
// and the step machine that sequences it.
package assessment

import (
	"strings"

	"github.com/google/uuid"
)

// Store exclusively owns the accumulated input of one session. All steps
// share the same *Store and mutate it only through these operations, so
// every read reflects the latest state. Steps run one at a time on the
// program's event loop; no locking is needed.
type Store struct {
	sessionID    string
	org          *OrganizationInfo
	assessmentID string
	responses    map[string]string
}

// NewStore creates an empty session.
func NewStore() *Store {
	return &Store{
		sessionID: uuid.New().String(),
		responses: make(map[string]string),
	}
}

// SessionID returns the client-side session identifier, used for log
// correlation. Distinct from the service-issued assessment id.
func (s *Store) SessionID() string {
	return s.sessionID
}

// RecordOrganizationInfo sets the organization record and the
// service-issued assessment id, and resets responses. Callers must have
// validated info first; the store does not re-check.
func (s *Store) RecordOrganizationInfo(info OrganizationInfo, assessmentID string) {
	cp := info
	s.org = &cp
	s.assessmentID = assessmentID
	s.responses = make(map[string]string)
}

// OrganizationInfo returns a copy of the recorded organization record.
func (s *Store) OrganizationInfo() (OrganizationInfo, bool) {
	if s.org == nil {
		return OrganizationInfo{}, false
	}
	return *s.org, true
}

// AssessmentID returns the service-issued assessment identifier, empty
// until organization info has been recorded.
func (s *Store) AssessmentID() string {
	return s.assessmentID
}

// RecordAnswer upserts one answer. The last write for a question id wins;
// other answers are never touched.
func (s *Store) RecordAnswer(questionID, value string) {
	s.responses[questionID] = value
}

// Answer returns the stored answer for a question id.
func (s *Store) Answer(questionID string) (string, bool) {
	v, ok := s.responses[questionID]
	return v, ok
}

// IsAnswered reports whether a question has a non-blank answer.
func (s *Store) IsAnswered(questionID string) bool {
	return strings.TrimSpace(s.responses[questionID]) != ""
}

// AnsweredCount counts the given question ids with non-blank answers.
func (s *Store) AnsweredCount(questionIDs []string) int {
	n := 0
	for _, id := range questionIDs {
		if s.IsAnswered(id) {
			n++
		}
	}
	return n
}

// Reset starts a new session: everything cleared, fresh session id.
func (s *Store) Reset() {
	s.sessionID = uuid.New().String()
	s.org = nil
	s.assessmentID = ""
	s.responses = make(map[string]string)
}

// Snapshot is an immutable copy of the store taken for submission.
type Snapshot struct {
	SessionID        string
	OrganizationInfo *OrganizationInfo
	AssessmentID     string
	Responses        map[string]string
}

// Snapshot returns a deep copy of the current state. The store is not
// mutated and later writes do not affect the copy.
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID:    s.sessionID,
		AssessmentID: s.assessmentID,
		Responses:    make(map[string]string, len(s.responses)),
	}
	if s.org != nil {
		cp := *s.org
		snap.OrganizationInfo = &cp
	}
	for id, v := range s.responses {
		snap.Responses[id] = v
	}
	return snap
}
