package model

import (
	"time"

	"github.com/openarchief/vernietiging/pkg/domain/types"
)

// Review is one reviewer decision on a destruction list
type Review struct {
	ID       types.ReviewID
	ListID   types.ListID
	AuthorID types.UserID
	Decision types.ReviewStatus
	Comment  string
	Created  time.Time
}

// ItemReview is a per-item sub-review. Only items that actually carry a
// suggestion are recorded; items the reviewer left untouched have no row.
type ItemReview struct {
	ID         types.ReviewID
	ReviewID   types.ReviewID
	ItemID     types.ItemID
	Comment    string
	Suggestion types.Suggestion
}

// ReviewComment is a follow-up remark from the list author addressed to one
// specific review
type ReviewComment struct {
	ID       types.ReviewID
	ReviewID types.ReviewID
	Text     string
	Created  time.Time
}
