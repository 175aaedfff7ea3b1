package questionnaire

import "fmt"

// Validate checks the structural invariants of a decoded schema:
// question ids are non-empty and globally unique, and every
// single-choice question carries at least one option.
func (s *Schema) Validate() error {
	seen := make(map[string]string, s.QuestionCount())

	for _, sec := range s.Sections {
		for _, q := range sec.Questions {
			if q.ID == "" {
				return fmt.Errorf("section %q: question with empty id", sec.Name)
			}
			if prev, dup := seen[q.ID]; dup {
				return fmt.Errorf("duplicate question id %q (sections %q and %q)", q.ID, prev, sec.Name)
			}
			seen[q.ID] = sec.Name

			if q.Type.Kind() == KindSingleChoice && len(q.Options) == 0 {
				return fmt.Errorf("question %q: type %q requires options", q.ID, q.Type)
			}
		}
	}
	return nil
}
