package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	List() ListRepository
	Item() ItemRepository
	Assignee() AssigneeRepository
	Review() ReviewRepository
	Notification() NotificationRepository
	Audit() AuditRepository
	User() UserRepository

	Close() error
}
