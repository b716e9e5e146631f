package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
)

type listRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newListRepository(client *firestore.Client) *listRepository {
	return &listRepository{client: client}
}

func (r *listRepository) collection() string {
	return prefixed(r.collectionPrefix, "destruction_lists")
}

func (r *listRepository) counterCollection() string {
	return prefixed(r.collectionPrefix, "counters")
}

func (r *listRepository) Create(ctx context.Context, list *model.DestructionList) (*model.DestructionList, error) {
	// List names must be unique
	iter := r.client.Collection(r.collection()).
		Where("Name", "==", list.Name).Limit(1).Documents(ctx)
	defer iter.Stop()
	if _, err := iter.Next(); err != iterator.Done {
		if err != nil {
			return nil, goerr.Wrap(err, "failed to check list name uniqueness", goerr.V("name", list.Name))
		}
		return nil, goerr.Wrap(ErrDuplicate, "list name already in use", goerr.V("name", list.Name))
	}

	id, err := nextID(ctx, r.client, r.counterCollection(), "destruction_list_counter")
	if err != nil {
		return nil, err
	}

	created := *list
	created.ID = types.ListID(id)
	created.Created = time.Now().UTC()

	docID := fmt.Sprintf("%d", created.ID)
	if _, err := r.client.Collection(r.collection()).Doc(docID).Set(ctx, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to create destruction list", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *listRepository) Get(ctx context.Context, id types.ListID) (*model.DestructionList, error) {
	docID := fmt.Sprintf("%d", id)
	docSnap, err := r.client.Collection(r.collection()).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "destruction list not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get destruction list", goerr.V("id", id))
	}

	var list model.DestructionList
	if err := docSnap.DataTo(&list); err != nil {
		return nil, goerr.Wrap(err, "failed to decode destruction list", goerr.V("id", id))
	}

	return &list, nil
}

func (r *listRepository) List(ctx context.Context) ([]*model.DestructionList, error) {
	iter := r.client.Collection(r.collection()).
		OrderBy("ID", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var lists []*model.DestructionList
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate destruction lists")
		}

		var list model.DestructionList
		if err := docSnap.DataTo(&list); err != nil {
			return nil, goerr.Wrap(err, "failed to decode destruction list", goerr.V("doc_id", docSnap.Ref.ID))
		}

		lists = append(lists, &list)
	}

	return lists, nil
}

func (r *listRepository) ListByAssignee(ctx context.Context, userID types.UserID) ([]*model.DestructionList, error) {
	iter := r.client.Collection(r.collection()).
		Where("Assignee", "==", string(userID)).
		OrderBy("ID", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var lists []*model.DestructionList
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate destruction lists", goerr.V("assignee", userID))
		}

		var list model.DestructionList
		if err := docSnap.DataTo(&list); err != nil {
			return nil, goerr.Wrap(err, "failed to decode destruction list", goerr.V("doc_id", docSnap.Ref.ID))
		}

		lists = append(lists, &list)
	}

	return lists, nil
}

func (r *listRepository) Update(ctx context.Context, list *model.DestructionList) (*model.DestructionList, error) {
	docID := fmt.Sprintf("%d", list.ID)
	docRef := r.client.Collection(r.collection()).Doc(docID)

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "destruction list not found", goerr.V("id", list.ID))
		}
		return nil, goerr.Wrap(err, "failed to check destruction list existence", goerr.V("id", list.ID))
	}

	updated := *list
	if _, err := docRef.Set(ctx, &updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update destruction list", goerr.V("id", list.ID))
	}

	return &updated, nil
}
