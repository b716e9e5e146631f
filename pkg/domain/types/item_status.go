package types

import "fmt"

// ItemStatus represents the lifecycle status of a destruction list item
type ItemStatus string

const (
	ItemStatusSuggested  ItemStatus = "suggested"
	ItemStatusRemoved    ItemStatus = "removed"
	ItemStatusProcessing ItemStatus = "processing"
	ItemStatusDestroyed  ItemStatus = "destroyed"
	ItemStatusFailed     ItemStatus = "failed"
)

// itemTransitions is the allowed transition graph for list items.
// Removed, Destroyed and Failed are terminal.
var itemTransitions = map[ItemStatus][]ItemStatus{
	ItemStatusSuggested:  {ItemStatusRemoved, ItemStatusProcessing},
	ItemStatusProcessing: {ItemStatusDestroyed, ItemStatusFailed},
	ItemStatusRemoved:    {},
	ItemStatusDestroyed:  {},
	ItemStatusFailed:     {},
}

// AllItemStatuses returns all valid item statuses
func AllItemStatuses() []ItemStatus {
	return []ItemStatus{
		ItemStatusSuggested,
		ItemStatusRemoved,
		ItemStatusProcessing,
		ItemStatusDestroyed,
		ItemStatusFailed,
	}
}

// IsValid checks if the item status is valid
func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusSuggested,
		ItemStatusRemoved,
		ItemStatusProcessing,
		ItemStatusDestroyed,
		ItemStatusFailed:
		return true
	default:
		return false
	}
}

// CanTransition reports whether moving to target is part of the declared
// transition graph
func (s ItemStatus) CanTransition(target ItemStatus) bool {
	for _, next := range itemTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// String returns the string representation of the item status
func (s ItemStatus) String() string {
	return string(s)
}

// ParseItemStatus parses a string into an ItemStatus
func ParseItemStatus(s string) (ItemStatus, error) {
	status := ItemStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid item status: %s", s)
	}
	return status, nil
}
