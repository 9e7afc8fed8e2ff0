package catalogue

import (
	"fmt"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
)

// Schema returns the JSON Schema that a decoded catalogue block must satisfy.
// Each call returns a fresh copy that the caller may modify.
func Schema() *jsonschema.Schema {
	text := func(desc string) *jsonschema.Schema {
		return &jsonschema.Schema{
			Types:       []string{"string", "null"},
			Description: desc,
		}
	}

	return &jsonschema.Schema{
		Schema:      "https://json-schema.org/draft/2020-12/schema",
		Title:       "Options catalogue",
		Description: "Mapping from option name to its documentation.",
		Type:        "object",
		AdditionalProperties: &jsonschema.Schema{
			Type:     "object",
			Required: []string{"labels"},
			Properties: map[string]*jsonschema.Schema{
				"description": text("HTML description of the option."),
				"type":        text("Type of the option's value."),
				"default":     text("Default value, as source text."),
				"labels": {
					Type:        "array",
					Description: "Labels grouping the option into page sections.",
					Items:       &jsonschema.Schema{Type: "string"},
				},
				"parameters": {
					Type:        "array",
					Description: "Callback parameters as [name, description] pairs.",
					Items: &jsonschema.Schema{
						Type:     "array",
						MinItems: jsonschema.Ptr(2),
						Items:    &jsonschema.Schema{Type: "string"},
					},
				},
			},
			PropertyOrder: []string{"description", "type", "default", "labels", "parameters"},
		},
	}
}

var resolvedSchema = sync.OnceValues(func() (*jsonschema.Resolved, error) {
	return Schema().Resolve(nil)
})

// Validate checks a decoded catalogue document against [Schema].
func Validate(doc any) error {
	rs, err := resolvedSchema()
	if err != nil {
		return fmt.Errorf("resolve catalogue schema: %w", err)
	}

	err = rs.Validate(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCatalogue, err)
	}

	return nil
}
