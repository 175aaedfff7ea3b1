package api

import (
	"errors"
	"fmt"
)

// ErrEmptySchema indicates the service answered successfully but its
// questionnaire defines no questions. Distinct from a load failure.
var ErrEmptySchema = errors.New("questionnaire schema is empty")

// StatusError indicates a non-2xx response. Detail carries the
// human-readable reason from the response body when one was present.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("service returned %d: %s", e.Code, e.Detail)
	}
	return fmt.Sprintf("service returned %d", e.Code)
}

// Reason returns the message to surface to the user.
func (e *StatusError) Reason() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("the service rejected the request (HTTP %d)", e.Code)
}

// InvalidPayloadError indicates a 2xx response whose body does not match
// the expected shape. Callers treat it like a fetch failure: no partial
// data ever escapes.
type InvalidPayloadError struct {
	Endpoint string
	Err      error
}

func (e *InvalidPayloadError) Error() string {
	return fmt.Sprintf("invalid %s response: %v", e.Endpoint, e.Err)
}

func (e *InvalidPayloadError) Unwrap() error { return e.Err }

// UserMessage converts any client error into a short message fit for
// inline display. Transport errors get a generic connectivity hint.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Reason()
	}
	var payloadErr *InvalidPayloadError
	if errors.As(err, &payloadErr) {
		return "the service sent an unexpected response"
	}
	if errors.Is(err, ErrEmptySchema) {
		return "no questions are defined"
	}
	return "could not reach the assessment service"
}
