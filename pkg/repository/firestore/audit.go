package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"

	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
)

type auditRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newAuditRepository(client *firestore.Client) *auditRepository {
	return &auditRepository{client: client}
}

func (r *auditRepository) collection() string {
	return prefixed(r.collectionPrefix, "audit_log")
}

func (r *auditRepository) counterCollection() string {
	return prefixed(r.collectionPrefix, "counters")
}

func (r *auditRepository) Append(ctx context.Context, entry *model.AuditEntry) (*model.AuditEntry, error) {
	id, err := nextID(ctx, r.client, r.counterCollection(), "audit_counter")
	if err != nil {
		return nil, err
	}

	created := *entry
	created.ID = types.AuditID(id)
	created.Created = time.Now().UTC()

	docID := fmt.Sprintf("%d", created.ID)
	if _, err := r.client.Collection(r.collection()).Doc(docID).Set(ctx, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to append audit entry", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *auditRepository) ListByList(ctx context.Context, listID types.ListID) ([]*model.AuditEntry, error) {
	iter := r.client.Collection(r.collection()).
		Where("ListID", "==", int64(listID)).
		OrderBy("ID", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var entries []*model.AuditEntry
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate audit entries", goerr.V("list_id", listID))
		}

		var entry model.AuditEntry
		if err := docSnap.DataTo(&entry); err != nil {
			return nil, goerr.Wrap(err, "failed to decode audit entry", goerr.V("doc_id", docSnap.Ref.ID))
		}

		entries = append(entries, &entry)
	}

	return entries, nil
}
