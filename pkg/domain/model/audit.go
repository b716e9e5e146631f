package model

import (
	"time"

	"github.com/openarchief/vernietiging/pkg/domain/types"
)

// AuditEvent names a recorded workflow event
type AuditEvent string

const (
	AuditListCreated      AuditEvent = "list_created"
	AuditListUpdated      AuditEvent = "list_updated"
	AuditListAborted      AuditEvent = "list_aborted"
	AuditReviewCreated    AuditEvent = "review_created"
	AuditItemDestroyed    AuditEvent = "item_destruction_succeeded"
	AuditItemFailed       AuditEvent = "item_destruction_failed"
	AuditItemUpdated      AuditEvent = "item_update_succeeded"
	AuditItemUpdateFailed AuditEvent = "item_update_failed"
	AuditCaseCreated      AuditEvent = "summary_case_created"
)

// AuditEntry is one append-only audit log record for a list
type AuditEntry struct {
	ID      types.AuditID
	ListID  types.ListID
	ActorID types.UserID
	Event   AuditEvent
	// Details carries event-specific structured data such as affected item
	// identifiers or full error text
	Details map[string]any
	Created time.Time
}
