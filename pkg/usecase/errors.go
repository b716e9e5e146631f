package usecase

import "errors"

// Sentinel errors for the use case layer
var (
	// Not found errors
	ErrListNotFound   = errors.New("destruction list not found")
	ErrItemNotFound   = errors.New("destruction list item not found")
	ErrReviewNotFound = errors.New("review not found")

	// Status errors
	ErrAlreadyCompleted = errors.New("destruction list is already completed")

	// Access control errors
	ErrUnauthorized = errors.New("user is not allowed to perform this action")

	// Configuration errors
	ErrNotConfigured = errors.New("required service is not configured")
)

// Context keys for error values
const (
	ListIDKey = "list_id"
	ItemIDKey = "item_id"
	UserIDKey = "user_id"
)
