package types

import "fmt"

// Suggestion represents a reviewer's per-item recommendation
type Suggestion string

const (
	// SuggestionRemove asks for the item to be taken off the list
	SuggestionRemove Suggestion = "remove"
	// SuggestionChangeAndRemove asks for the case's archive data to be
	// updated before the item is taken off the list
	SuggestionChangeAndRemove Suggestion = "change_and_remove"
)

// IsValid checks if the suggestion is valid
func (s Suggestion) IsValid() bool {
	switch s {
	case SuggestionRemove, SuggestionChangeAndRemove:
		return true
	default:
		return false
	}
}

// String returns the string representation of the suggestion
func (s Suggestion) String() string {
	return string(s)
}

// ParseSuggestion parses a string into a Suggestion
func ParseSuggestion(s string) (Suggestion, error) {
	suggestion := Suggestion(s)
	if !suggestion.IsValid() {
		return "", fmt.Errorf("invalid suggestion: %s", s)
	}
	return suggestion, nil
}
