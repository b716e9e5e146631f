package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
)

type notificationRepository struct {
	mu            sync.RWMutex
	notifications []*model.Notification
}

func newNotificationRepository() *notificationRepository {
	return &notificationRepository{}
}

func (r *notificationRepository) Create(ctx context.Context, notification *model.Notification) (*model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := *notification
	created.ID = uuid.NewString()
	created.Created = time.Now().UTC()
	r.notifications = append(r.notifications, &created)

	copied := created
	return &copied, nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID types.UserID) ([]*model.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var notifications []*model.Notification
	for _, notification := range r.notifications {
		if notification.UserID == userID {
			copied := *notification
			notifications = append(notifications, &copied)
		}
	}

	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].Created.After(notifications[j].Created)
	})
	return notifications, nil
}
