package interfaces

import (
	"context"

	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
)

// NotificationRepository defines the interface for Notification data access.
// Notifications are append only.
type NotificationRepository interface {
	// Create persists a new notification
	Create(ctx context.Context, notification *model.Notification) (*model.Notification, error)

	// ListByUser retrieves the notifications addressed to a user, newest
	// first
	ListByUser(ctx context.Context, userID types.UserID) ([]*model.Notification, error)
}

// AuditRepository defines the interface for the append-only audit log
type AuditRepository interface {
	// Append persists a new audit entry
	Append(ctx context.Context, entry *model.AuditEntry) (*model.AuditEntry, error)

	// ListByList retrieves the audit entries of a list in insertion order
	ListByList(ctx context.Context, listID types.ListID) ([]*model.AuditEntry, error)
}
