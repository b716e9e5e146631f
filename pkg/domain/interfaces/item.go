package interfaces

import (
	"context"

	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
)

// ItemRepository defines the interface for DestructionListItem data access
type ItemRepository interface {
	// CreateMany creates the items of a list in one go. The case URL of
	// each item must be unique within the list.
	CreateMany(ctx context.Context, items []*model.DestructionListItem) ([]*model.DestructionListItem, error)

	// Get retrieves an item by ID
	Get(ctx context.Context, id types.ItemID) (*model.DestructionListItem, error)

	// ListByList retrieves all items of a list ordered by ID
	ListByList(ctx context.Context, listID types.ListID) ([]*model.DestructionListItem, error)

	// ListByStatus retrieves the items of a list in the given status,
	// ordered by ID
	ListByStatus(ctx context.Context, listID types.ListID, status types.ItemStatus) ([]*model.DestructionListItem, error)

	// Update updates an existing item
	Update(ctx context.Context, item *model.DestructionListItem) (*model.DestructionListItem, error)
}
