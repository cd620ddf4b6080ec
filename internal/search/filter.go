// Package search implements the execution search pipeline: list recent
// executions, describe each one, filter on the execution input, print the
// matches.
package search

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Input is an execution's parsed input payload. Name and Key are the two
// fields the filters inspect; Payload keeps the full document for printing.
type Input struct {
	Name    string
	Key     string
	Payload map[string]any
}

// ParseInput parses a raw execution input string. The payload must be a JSON
// object; name and key fields that are absent or non-string come back empty.
func ParseInput(raw string) (Input, error) {
	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return Input{}, fmt.Errorf("search: parse input: %w", err)
	}

	in := Input{Payload: payload}
	if s, ok := payload["name"].(string); ok {
		in.Name = s
	}
	if s, ok := payload["key"].(string); ok {
		in.Key = s
	}
	return in, nil
}

// Matches reports whether the input satisfies the name and key filters. An
// empty filter always matches.
func (in Input) Matches(exactName, keySubstring string) bool {
	if exactName != "" && in.Name != exactName {
		return false
	}
	if keySubstring != "" && !strings.Contains(in.Key, keySubstring) {
		return false
	}
	return true
}

// Format re-serializes the payload with 4-space indentation for terminal
// output. Keys come out sorted, so identical runs print identical bytes.
func (in Input) Format() (string, error) {
	b, err := json.MarshalIndent(in.Payload, "", "    ")
	if err != nil {
		return "", fmt.Errorf("search: format input: %w", err)
	}
	return string(b), nil
}
