package interfaces

import (
	"context"

	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
)

// ReviewRepository defines the interface for Review data access
type ReviewRepository interface {
	// Create creates a new review
	Create(ctx context.Context, review *model.Review) (*model.Review, error)

	// Get retrieves a review by ID
	Get(ctx context.Context, id types.ReviewID) (*model.Review, error)

	// Latest returns the most recent review of a list, or nil when the
	// list has not been reviewed yet
	Latest(ctx context.Context, listID types.ListID) (*model.Review, error)

	// LatestByAuthor returns the most recent review of a list written by
	// the given reviewer, or nil
	LatestByAuthor(ctx context.Context, listID types.ListID, authorID types.UserID) (*model.Review, error)

	// ListByList retrieves all reviews of a list ordered by creation
	ListByList(ctx context.Context, listID types.ListID) ([]*model.Review, error)

	// CreateItemReviews creates the per-item sub-reviews of a review
	CreateItemReviews(ctx context.Context, itemReviews []*model.ItemReview) ([]*model.ItemReview, error)

	// ListItemReviews retrieves the sub-reviews of one review ordered by ID
	ListItemReviews(ctx context.Context, reviewID types.ReviewID) ([]*model.ItemReview, error)

	// FirstItemReviewByItem returns the oldest sub-review recorded against
	// an item, or nil
	FirstItemReviewByItem(ctx context.Context, itemID types.ItemID) (*model.ItemReview, error)

	// CreateComment appends a follow-up comment to a review
	CreateComment(ctx context.Context, comment *model.ReviewComment) (*model.ReviewComment, error)

	// LastComment returns the most recent follow-up comment on a review,
	// or nil
	LastComment(ctx context.Context, reviewID types.ReviewID) (*model.ReviewComment, error)
}
