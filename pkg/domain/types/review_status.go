package types

import "fmt"

// ReviewStatus represents the outcome of a review
type ReviewStatus string

const (
	ReviewStatusApproved         ReviewStatus = "approved"
	ReviewStatusChangesRequested ReviewStatus = "changes_requested"
	ReviewStatusRejected         ReviewStatus = "rejected"
)

// AllReviewStatuses returns all valid review statuses
func AllReviewStatuses() []ReviewStatus {
	return []ReviewStatus{
		ReviewStatusApproved,
		ReviewStatusChangesRequested,
		ReviewStatusRejected,
	}
}

// IsValid checks if the review status is valid
func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewStatusApproved,
		ReviewStatusChangesRequested,
		ReviewStatusRejected:
		return true
	default:
		return false
	}
}

// String returns the string representation of the review status
func (s ReviewStatus) String() string {
	return string(s)
}

// ParseReviewStatus parses a string into a ReviewStatus
func ParseReviewStatus(s string) (ReviewStatus, error) {
	status := ReviewStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid review status: %s", s)
	}
	return status, nil
}
