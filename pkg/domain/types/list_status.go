package types

import "fmt"

// ListStatus represents the lifecycle status of a destruction list
type ListStatus string

const (
	ListStatusInProgress ListStatus = "in_progress"
	ListStatusProcessing ListStatus = "processing"
	ListStatusCompleted  ListStatus = "completed"
)

// listTransitions is the allowed transition graph for destruction lists.
// Completed is terminal.
var listTransitions = map[ListStatus][]ListStatus{
	ListStatusInProgress: {ListStatusProcessing},
	ListStatusProcessing: {ListStatusCompleted},
	ListStatusCompleted:  {},
}

// AllListStatuses returns all valid list statuses
func AllListStatuses() []ListStatus {
	return []ListStatus{
		ListStatusInProgress,
		ListStatusProcessing,
		ListStatusCompleted,
	}
}

// IsValid checks if the list status is valid
func (s ListStatus) IsValid() bool {
	switch s {
	case ListStatusInProgress,
		ListStatusProcessing,
		ListStatusCompleted:
		return true
	default:
		return false
	}
}

// CanTransition reports whether moving to target is part of the declared
// transition graph
func (s ListStatus) CanTransition(target ListStatus) bool {
	for _, next := range listTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// String returns the string representation of the list status
func (s ListStatus) String() string {
	return string(s)
}

// ParseListStatus parses a string into a ListStatus
func ParseListStatus(s string) (ListStatus, error) {
	status := ListStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid list status: %s", s)
	}
	return status, nil
}
