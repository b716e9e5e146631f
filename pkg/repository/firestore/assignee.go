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

type assigneeRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newAssigneeRepository(client *firestore.Client) *assigneeRepository {
	return &assigneeRepository{client: client}
}

func (r *assigneeRepository) collection() string {
	return prefixed(r.collectionPrefix, "destruction_list_assignees")
}

func (r *assigneeRepository) counterCollection() string {
	return prefixed(r.collectionPrefix, "counters")
}

func (r *assigneeRepository) CreateMany(ctx context.Context, assignees []*model.Assignee) ([]*model.Assignee, error) {
	created := make([]*model.Assignee, 0, len(assignees))

	for _, assignee := range assignees {
		iter := r.client.Collection(r.collection()).
			Where("ListID", "==", int64(assignee.ListID)).
			Where("UserID", "==", string(assignee.UserID)).
			Limit(1).Documents(ctx)
		if _, err := iter.Next(); err != iterator.Done {
			iter.Stop()
			if err != nil {
				return nil, goerr.Wrap(err, "failed to check assignee uniqueness", goerr.V("user_id", assignee.UserID))
			}
			return nil, goerr.Wrap(ErrDuplicate, "reviewer already assigned to list",
				goerr.V("list_id", assignee.ListID),
				goerr.V("user_id", assignee.UserID))
		}
		iter.Stop()

		id, err := nextID(ctx, r.client, r.counterCollection(), "destruction_list_assignee_counter")
		if err != nil {
			return nil, err
		}

		c := *assignee
		c.ID = types.AssigneeID(id)

		docID := fmt.Sprintf("%d", c.ID)
		if _, err := r.client.Collection(r.collection()).Doc(docID).Set(ctx, &c); err != nil {
			return nil, goerr.Wrap(err, "failed to create assignee", goerr.V("id", c.ID))
		}

		created = append(created, &c)
	}

	return created, nil
}

func (r *assigneeRepository) ListByList(ctx context.Context, listID types.ListID) ([]*model.Assignee, error) {
	iter := r.client.Collection(r.collection()).
		Where("ListID", "==", int64(listID)).
		OrderBy("Order", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var assignees []*model.Assignee
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate assignees", goerr.V("list_id", listID))
		}

		var assignee model.Assignee
		if err := docSnap.DataTo(&assignee); err != nil {
			return nil, goerr.Wrap(err, "failed to decode assignee", goerr.V("doc_id", docSnap.Ref.ID))
		}

		assignees = append(assignees, &assignee)
	}

	return assignees, nil
}

func (r *assigneeRepository) GetByUser(ctx context.Context, listID types.ListID, userID types.UserID) (*model.Assignee, error) {
	iter := r.client.Collection(r.collection()).
		Where("ListID", "==", int64(listID)).
		Where("UserID", "==", string(userID)).
		Limit(1).Documents(ctx)
	defer iter.Stop()

	docSnap, err := iter.Next()
	if err == iterator.Done {
		return nil, goerr.Wrap(ErrNotFound, "assignee not found",
			goerr.V("list_id", listID),
			goerr.V("user_id", userID))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get assignee",
			goerr.V("list_id", listID),
			goerr.V("user_id", userID))
	}

	var assignee model.Assignee
	if err := docSnap.DataTo(&assignee); err != nil {
		return nil, goerr.Wrap(err, "failed to decode assignee", goerr.V("doc_id", docSnap.Ref.ID))
	}

	return &assignee, nil
}

func (r *assigneeRepository) Update(ctx context.Context, assignee *model.Assignee) (*model.Assignee, error) {
	docID := fmt.Sprintf("%d", assignee.ID)
	docRef := r.client.Collection(r.collection()).Doc(docID)

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "assignee not found", goerr.V("id", assignee.ID))
		}
		return nil, goerr.Wrap(err, "failed to check assignee existence", goerr.V("id", assignee.ID))
	}

	updated := *assignee
	if _, err := docRef.Set(ctx, &updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update assignee", goerr.V("id", assignee.ID))
	}

	return &updated, nil
}
