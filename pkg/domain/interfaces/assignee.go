package interfaces

import (
	"context"

	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
)

// AssigneeRepository defines the interface for Assignee data access
type AssigneeRepository interface {
	// CreateMany creates the ordered reviewer entries of a list
	CreateMany(ctx context.Context, assignees []*model.Assignee) ([]*model.Assignee, error)

	// ListByList retrieves the assignees of a list ordered by review order
	ListByList(ctx context.Context, listID types.ListID) ([]*model.Assignee, error)

	// GetByUser retrieves the entry of one reviewer on one list
	GetByUser(ctx context.Context, listID types.ListID, userID types.UserID) (*model.Assignee, error)

	// Update updates an existing assignee entry
	Update(ctx context.Context, assignee *model.Assignee) (*model.Assignee, error)
}
