package policyfile

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/promptfit/promptfit/optimize"
)

// Schema returns the JSON schema of the policy document, suitable for
// editor completion or CI validation of policy files.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}
	schema := reflector.Reflect(&optimize.Policy{})
	schema.Title = "promptfit optimization policy"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}
