package interfaces

import (
	"context"

	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
)

// ListRepository defines the interface for DestructionList data access
type ListRepository interface {
	// Create creates a new list with auto-generated ID. The list name must
	// be unique.
	Create(ctx context.Context, list *model.DestructionList) (*model.DestructionList, error)

	// Get retrieves a list by ID
	Get(ctx context.Context, id types.ListID) (*model.DestructionList, error)

	// List retrieves all lists, newest first
	List(ctx context.Context) ([]*model.DestructionList, error)

	// ListByAssignee retrieves the lists currently assigned to the user
	ListByAssignee(ctx context.Context, userID types.UserID) ([]*model.DestructionList, error)

	// Update updates an existing list
	Update(ctx context.Context, list *model.DestructionList) (*model.DestructionList, error)
}
