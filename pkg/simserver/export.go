package simserver

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// GenerateFixtureSchema produces a JSON Schema Draft 2020-12 document from
// the Go Fixture struct using invopop/jsonschema.
func GenerateFixtureSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	r.DoNotReference = false

	s := r.Reflect(&Fixture{})
	s.ID = "https://github.com/ormasoftchile/nodescope/schemas/space-v1.json"
	s.Title = "Simulated Address Space v1"
	s.Description = "Schema for nodescope simulated address-space YAML documents (Draft 2020-12)"

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}
