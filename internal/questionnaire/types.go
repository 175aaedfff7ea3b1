// Package questionnaire models the assessment definition served by the
// scoring service: ordered sections of typed questions.
package questionnaire

// Type is the question type as it appears on the wire.
type Type string

const (
	TypeSingleSelect Type = "single_select"
	TypeMultiSelect  Type = "multi_select"
	TypeText         Type = "text"
)

// Kind is the renderer-facing variant of a question: either the answer is
// one of a closed option set, or it is free text.
type Kind int

const (
	KindSingleChoice Kind = iota
	KindFreeText
)

// Kind collapses the wire type to its rendering variant. Anything that is
// not free text is answered by picking exactly one option.
func (t Type) Kind() Kind {
	if t == TypeText {
		return KindFreeText
	}
	return KindSingleChoice
}

// Question is a single item of the questionnaire. ID is the stable key
// answers are recorded under; it is unique across all sections.
type Question struct {
	ID       string   `json:"question_id"`
	Domain   string   `json:"domain,omitempty"`
	Text     string   `json:"question_text"`
	Type     Type     `json:"question_type"`
	Options  []string `json:"options,omitempty"`
	HelpText string   `json:"help_text,omitempty"`
	Required bool     `json:"required,omitempty"`
}

// Section is a named, ordered group of questions.
type Section struct {
	Name      string
	Questions []Question
}

// Schema is the full questionnaire definition in service-declared order.
type Schema struct {
	Sections []Section
}

// QuestionCount returns the total number of questions across all sections.
func (s *Schema) QuestionCount() int {
	n := 0
	for _, sec := range s.Sections {
		n += len(sec.Questions)
	}
	return n
}

// QuestionIDs returns all question ids in flattened order.
func (s *Schema) QuestionIDs() []string {
	ids := make([]string, 0, s.QuestionCount())
	for _, sec := range s.Sections {
		for _, q := range sec.Questions {
			ids = append(ids, q.ID)
		}
	}
	return ids
}
