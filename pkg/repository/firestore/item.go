package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
)

type itemRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newItemRepository(client *firestore.Client) *itemRepository {
	return &itemRepository{client: client}
}

func (r *itemRepository) collection() string {
	return prefixed(r.collectionPrefix, "destruction_list_items")
}

func (r *itemRepository) counterCollection() string {
	return prefixed(r.collectionPrefix, "counters")
}

func (r *itemRepository) CreateMany(ctx context.Context, items []*model.DestructionListItem) ([]*model.DestructionListItem, error) {
	created := make([]*model.DestructionListItem, 0, len(items))
	seen := make(map[types.ListID]map[string]bool)

	for _, item := range items {
		if seen[item.ListID] == nil {
			seen[item.ListID] = make(map[string]bool)
		}
		if seen[item.ListID][item.CaseURL] {
			return nil, goerr.Wrap(ErrDuplicate, "case already on destruction list",
				goerr.V("list_id", item.ListID),
				goerr.V("case_url", item.CaseURL))
		}
		seen[item.ListID][item.CaseURL] = true

		// (list, case URL) must stay unique
		iter := r.client.Collection(r.collection()).
			Where("ListID", "==", int64(item.ListID)).
			Where("CaseURL", "==", item.CaseURL).
			Limit(1).Documents(ctx)
		if _, err := iter.Next(); err != iterator.Done {
			iter.Stop()
			if err != nil {
				return nil, goerr.Wrap(err, "failed to check item uniqueness", goerr.V("case_url", item.CaseURL))
			}
			return nil, goerr.Wrap(ErrDuplicate, "case already on destruction list",
				goerr.V("list_id", item.ListID),
				goerr.V("case_url", item.CaseURL))
		}
		iter.Stop()

		id, err := nextID(ctx, r.client, r.counterCollection(), "destruction_list_item_counter")
		if err != nil {
			return nil, err
		}

		c := *item
		c.ID = types.ItemID(id)

		docID := fmt.Sprintf("%d", c.ID)
		if _, err := r.client.Collection(r.collection()).Doc(docID).Set(ctx, &c); err != nil {
			return nil, goerr.Wrap(err, "failed to create destruction list item", goerr.V("id", c.ID))
		}

		created = append(created, &c)
	}

	return created, nil
}

func (r *itemRepository) Get(ctx context.Context, id types.ItemID) (*model.DestructionListItem, error) {
	docID := fmt.Sprintf("%d", id)
	docSnap, err := r.client.Collection(r.collection()).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "destruction list item not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get destruction list item", goerr.V("id", id))
	}

	var item model.DestructionListItem
	if err := docSnap.DataTo(&item); err != nil {
		return nil, goerr.Wrap(err, "failed to decode destruction list item", goerr.V("id", id))
	}

	return &item, nil
}

func (r *itemRepository) listQuery(ctx context.Context, query firestore.Query) ([]*model.DestructionListItem, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	var items []*model.DestructionListItem
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate destruction list items")
		}

		var item model.DestructionListItem
		if err := docSnap.DataTo(&item); err != nil {
			return nil, goerr.Wrap(err, "failed to decode destruction list item", goerr.V("doc_id", docSnap.Ref.ID))
		}

		items = append(items, &item)
	}

	return items, nil
}

func (r *itemRepository) ListByList(ctx context.Context, listID types.ListID) ([]*model.DestructionListItem, error) {
	return r.listQuery(ctx, r.client.Collection(r.collection()).
		Where("ListID", "==", int64(listID)).
		OrderBy("ID", firestore.Asc))
}

func (r *itemRepository) ListByStatus(ctx context.Context, listID types.ListID, status types.ItemStatus) ([]*model.DestructionListItem, error) {
	return r.listQuery(ctx, r.client.Collection(r.collection()).
		Where("ListID", "==", int64(listID)).
		Where("Status", "==", string(status)).
		OrderBy("ID", firestore.Asc))
}

func (r *itemRepository) Update(ctx context.Context, item *model.DestructionListItem) (*model.DestructionListItem, error) {
	docID := fmt.Sprintf("%d", item.ID)
	docRef := r.client.Collection(r.collection()).Doc(docID)

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "destruction list item not found", goerr.V("id", item.ID))
		}
		return nil, goerr.Wrap(err, "failed to check destruction list item existence", goerr.V("id", item.ID))
	}

	updated := *item
	if _, err := docRef.Set(ctx, &updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update destruction list item", goerr.V("id", item.ID))
	}

	return &updated, nil
}
