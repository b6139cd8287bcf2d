package tools

import (
	"encoding/json"
	"fmt"
)

// decodeArgs maps the model's loosely typed arguments onto a typed input.
func decodeArgs(params map[string]interface{}, dst interface{}) error {
	if params == nil {
		params = map[string]interface{}{}
	}
	raw, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to marshal input: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to parse input: %w", err)
	}
	return nil
}

func stringProp(description string) map[string]interface{} {
	p := map[string]interface{}{"type": "string"}
	if description != "" {
		p["description"] = description
	}
	return p
}
