// internal/legal/templates/schema.go
package templates

// InputSchema returns a draft-07 JSON Schema describing the field set of a
// document type. Every property is a string, number fields also accept a
// JSON number; select fields are limited to their option values or the
// empty string. Required fields are not enforced
// because missing values render as placeholders.
func InputSchema(id DocumentType) (map[string]interface{}, error) {
	tmpl, err := Lookup(id)
	if err != nil {
		return nil, err
	}

	properties := make(map[string]interface{}, len(tmpl.Fields))
	for _, f := range tmpl.Fields {
		prop := map[string]interface{}{
			"type":        "string",
			"description": f.Label.EN,
		}
		if f.Kind == KindNumber {
			prop["type"] = []interface{}{"string", "number"}
		}
		if f.Kind == KindSelect {
			enum := []interface{}{""}
			for _, o := range f.Options {
				enum = append(enum, o.Value)
			}
			prop["enum"] = enum
		}
		properties[f.Name] = prop
	}

	return map[string]interface{}{
		"$schema":              "http://json-schema.org/draft-07/schema#",
		"title":                tmpl.Label.EN,
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": true,
	}, nil
}
