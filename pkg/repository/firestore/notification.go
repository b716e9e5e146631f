package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"

	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
)

type notificationRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newNotificationRepository(client *firestore.Client) *notificationRepository {
	return &notificationRepository{client: client}
}

func (r *notificationRepository) collection() string {
	return prefixed(r.collectionPrefix, "notifications")
}

func (r *notificationRepository) Create(ctx context.Context, notification *model.Notification) (*model.Notification, error) {
	created := *notification
	created.ID = uuid.NewString()
	created.Created = time.Now().UTC()

	if _, err := r.client.Collection(r.collection()).Doc(created.ID).Set(ctx, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to create notification", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID types.UserID) ([]*model.Notification, error) {
	iter := r.client.Collection(r.collection()).
		Where("UserID", "==", string(userID)).
		OrderBy("Created", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var notifications []*model.Notification
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate notifications", goerr.V("user_id", userID))
		}

		var notification model.Notification
		if err := docSnap.DataTo(&notification); err != nil {
			return nil, goerr.Wrap(err, "failed to decode notification", goerr.V("doc_id", docSnap.Ref.ID))
		}

		notifications = append(notifications, &notification)
	}

	return notifications, nil
}
