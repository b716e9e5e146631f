package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"

	"github.com/openarchief/vernietiging/pkg/domain/interfaces"
)

// Firestore is the Firestore-backed repository
type Firestore struct {
	client       *firestore.Client
	list         *listRepository
	item         *itemRepository
	assignee     *assigneeRepository
	review       *reviewRepository
	notification *notificationRepository
	audit        *auditRepository
	user         *userRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix namespaces all collections, mainly for tests sharing
// a database
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.list.collectionPrefix = prefix
		f.item.collectionPrefix = prefix
		f.assignee.collectionPrefix = prefix
		f.review.collectionPrefix = prefix
		f.notification.collectionPrefix = prefix
		f.audit.collectionPrefix = prefix
		f.user.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID))
	}

	f := &Firestore{
		client:       client,
		list:         newListRepository(client),
		item:         newItemRepository(client),
		assignee:     newAssigneeRepository(client),
		review:       newReviewRepository(client),
		notification: newNotificationRepository(client),
		audit:        newAuditRepository(client),
		user:         newUserRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) List() interfaces.ListRepository {
	return f.list
}

func (f *Firestore) Item() interfaces.ItemRepository {
	return f.item
}

func (f *Firestore) Assignee() interfaces.AssigneeRepository {
	return f.assignee
}

func (f *Firestore) Review() interfaces.ReviewRepository {
	return f.review
}

func (f *Firestore) Notification() interfaces.NotificationRepository {
	return f.notification
}

func (f *Firestore) Audit() interfaces.AuditRepository {
	return f.audit
}

func (f *Firestore) User() interfaces.UserRepository {
	return f.user
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
