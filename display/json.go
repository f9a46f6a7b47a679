// Package display renders command results as pretty JSON or leaves them to
// the table renderers in cmd. The prediction core never prints; everything
// user-facing flows through here or pterm.
package display

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON marshals a result with human-readable indentation.
func MarshalJSON(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// OutputJSON marshals and prints JSON to stdout.
func OutputJSON(v interface{}) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
