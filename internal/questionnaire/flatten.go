package questionnaire

// Numbered is a question paired with its section and 1-based display
// index. Indices are assigned by encounter order across sections and are
// authoritative for numbering everywhere the question is shown.
type Numbered struct {
	Index   int
	Section string
	Question
}

// Flatten walks the schema in section order and assigns display indices
// 1..N with no gaps.
func Flatten(s *Schema) []Numbered {
	flat := make([]Numbered, 0, s.QuestionCount())
	for _, sec := range s.Sections {
		for _, q := range sec.Questions {
			flat = append(flat, Numbered{
				Index:    len(flat) + 1,
				Section:  sec.Name,
				Question: q,
			})
		}
	}
	return flat
}
