package memory

import (
	"github.com/openarchief/vernietiging/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

// Memory is the in-memory repository backend, used for development and tests
type Memory struct {
	list         *listRepository
	item         *itemRepository
	assignee     *assigneeRepository
	review       *reviewRepository
	notification *notificationRepository
	audit        *auditRepository
	user         *userRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		list:         newListRepository(),
		item:         newItemRepository(),
		assignee:     newAssigneeRepository(),
		review:       newReviewRepository(),
		notification: newNotificationRepository(),
		audit:        newAuditRepository(),
		user:         newUserRepository(),
	}
}

func (m *Memory) List() interfaces.ListRepository {
	return m.list
}

func (m *Memory) Item() interfaces.ItemRepository {
	return m.item
}

func (m *Memory) Assignee() interfaces.AssigneeRepository {
	return m.assignee
}

func (m *Memory) Review() interfaces.ReviewRepository {
	return m.review
}

func (m *Memory) Notification() interfaces.NotificationRepository {
	return m.notification
}

func (m *Memory) Audit() interfaces.AuditRepository {
	return m.audit
}

func (m *Memory) User() interfaces.UserRepository {
	return m.user
}

func (m *Memory) Close() error {
	return nil
}
