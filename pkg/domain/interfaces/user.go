package interfaces

import (
	"context"

	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
)

// UserRepository defines read access to user references. Accounts are
// managed outside this component; this repository only mirrors what the
// workflow needs (name, email, role flags).
type UserRepository interface {
	// Get retrieves a user by ID
	Get(ctx context.Context, id types.UserID) (*model.User, error)

	// Save stores or replaces a user reference
	Save(ctx context.Context, user *model.User) error

	// ListReviewers retrieves all users allowed to review destruction
	// lists
	ListReviewers(ctx context.Context) ([]*model.User, error)
}
