package memory

import (
	"context"
	"sync"
	"time"

	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
)

type auditRepository struct {
	mu      sync.RWMutex
	entries []*model.AuditEntry
	nextID  types.AuditID
}

func newAuditRepository() *auditRepository {
	return &auditRepository{nextID: 1}
}

func copyAuditEntry(e *model.AuditEntry) *model.AuditEntry {
	copied := *e
	if e.Details != nil {
		details := make(map[string]any, len(e.Details))
		for k, v := range e.Details {
			details[k] = v
		}
		copied.Details = details
	}
	return &copied
}

func (r *auditRepository) Append(ctx context.Context, entry *model.AuditEntry) (*model.AuditEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyAuditEntry(entry)
	created.ID = r.nextID
	created.Created = time.Now().UTC()
	r.nextID++
	r.entries = append(r.entries, created)

	return copyAuditEntry(created), nil
}

func (r *auditRepository) ListByList(ctx context.Context, listID types.ListID) ([]*model.AuditEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []*model.AuditEntry
	for _, entry := range r.entries {
		if entry.ListID == listID {
			entries = append(entries, copyAuditEntry(entry))
		}
	}

	return entries, nil
}
