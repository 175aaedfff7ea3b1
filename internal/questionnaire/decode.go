package questionnaire

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Decode parses the /api/questionnaire/schema payload. encoding/json maps
// would lose the section order the service declared, so the "schema"
// object is walked token by token; section order on the wire is
// authoritative for display order.
//
// Any total_questions field in the payload is deliberately not decoded:
// the flattened question count derived from the schema is the only count
// this client trusts.
func Decode(raw []byte) (*Schema, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("decode questionnaire: %w", err)
	}

	var schema *Schema
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode questionnaire: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("decode questionnaire: unexpected token %v", keyTok)
		}

		if key != "schema" {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, fmt.Errorf("decode questionnaire: field %q: %w", key, err)
			}
			continue
		}

		schema, err = decodeSections(dec)
		if err != nil {
			return nil, err
		}
	}

	if schema == nil {
		return nil, fmt.Errorf(`decode questionnaire: missing "schema" object`)
	}
	return schema, nil
}

// decodeSections reads the section-name → question-list object in
// declaration order.
func decodeSections(dec *json.Decoder) (*Schema, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode schema object: %w", err)
	}
	if tok == nil {
		// "schema": null reads as an empty questionnaire.
		return &Schema{}, nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("decode schema object: expected object, got %v", tok)
	}

	schema := &Schema{}
	for dec.More() {
		nameTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode schema object: %w", err)
		}
		name, ok := nameTok.(string)
		if !ok {
			return nil, fmt.Errorf("decode schema object: unexpected token %v", nameTok)
		}

		var questions []Question
		if err := dec.Decode(&questions); err != nil {
			return nil, fmt.Errorf("decode section %q: %w", name, err)
		}
		schema.Sections = append(schema.Sections, Section{Name: name, Questions: questions})
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode schema object: %w", err)
	}
	return schema, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
