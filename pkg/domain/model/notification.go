package model

import (
	"time"

	"github.com/openarchief/vernietiging/pkg/domain/types"
)

// Notification informs one user about one list. Notifications are append
// only and never mutated after creation.
type Notification struct {
	ID      string
	ListID  types.ListID
	UserID  types.UserID
	Message string
	Created time.Time
}
