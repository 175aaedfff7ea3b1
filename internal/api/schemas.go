package api

// payloadSchema pairs an identifying name with a JSON Schema definition
// used to vet service responses before they are decoded.
type payloadSchema struct {
	Name       string
	Definition map[string]any
}

// configPayloadSchema describes GET /api/config. The app title is the
// field that marks a config response as recognizable; everything else may
// be absent and falls back to defaults.
var configPayloadSchema = &payloadSchema{
	Name: "app-config",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"app_title": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"app_subtitle":    map[string]any{"type": "string"},
			"company_name":    map[string]any{"type": "string"},
			"company_tagline": map[string]any{"type": "string"},
			"colors": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type": "string",
				},
			},
			"company_sizes": stringListSchema,
			"industries":    stringListSchema,
			"regions":       stringListSchema,
		},
		"required": []any{"app_title"},
	},
}

// questionnairePayloadSchema describes GET /api/questionnaire/schema.
// The schema object maps section names to question lists. Extra fields
// such as total_questions are tolerated and ignored: the flattened
// question count is authoritative.
var questionnairePayloadSchema = &payloadSchema{
	Name: "questionnaire",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"schema": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"question_id":   map[string]any{"type": "string", "minLength": 1},
							"question_text": map[string]any{"type": "string"},
							"question_type": map[string]any{"type": "string"},
							"domain":        map[string]any{"type": "string"},
							"help_text":     map[string]any{"type": "string"},
							"options":       stringListSchema,
						},
						"required": []any{"question_id", "question_text", "question_type"},
					},
				},
			},
		},
		"required": []any{"schema"},
	},
}

var stringListSchema = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string"},
}
