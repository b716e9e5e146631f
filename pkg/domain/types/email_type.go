package types

import "fmt"

// EmailType identifies one of the configured automatic emails
type EmailType string

const (
	// EmailTypeReviewRequired is sent to a reviewer when a list is assigned
	// to them for review
	EmailTypeReviewRequired EmailType = "review_required"
	// EmailTypeChangesRequired is sent to the author when a review routes
	// the list back for remediation
	EmailTypeChangesRequired EmailType = "changes_required"
	// EmailTypeReportAvailable is sent to the archivist once the
	// destruction report is ready
	EmailTypeReportAvailable EmailType = "report_available"
	// EmailTypeReviewReminder is sent to a reviewer whose review is overdue
	EmailTypeReviewReminder EmailType = "review_reminder"
)

// AllEmailTypes returns all valid email types
func AllEmailTypes() []EmailType {
	return []EmailType{
		EmailTypeReviewRequired,
		EmailTypeChangesRequired,
		EmailTypeReportAvailable,
		EmailTypeReviewReminder,
	}
}

// IsValid checks if the email type is valid
func (t EmailType) IsValid() bool {
	switch t {
	case EmailTypeReviewRequired,
		EmailTypeChangesRequired,
		EmailTypeReportAvailable,
		EmailTypeReviewReminder:
		return true
	default:
		return false
	}
}

// String returns the string representation of the email type
func (t EmailType) String() string {
	return string(t)
}

// ParseEmailType parses a string into an EmailType
func ParseEmailType(s string) (EmailType, error) {
	t := EmailType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid email type: %s", s)
	}
	return t, nil
}
