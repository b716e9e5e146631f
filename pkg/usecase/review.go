package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"

	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
)

// ItemSuggestion is one per-item remark of a reviewer. Items without a
// suggestion are simply not submitted.
type ItemSuggestion struct {
	ItemID     types.ItemID
	Suggestion types.Suggestion
	Comment    string
}

// SubmitReviewInput carries one reviewer decision
type SubmitReviewInput struct {
	ListID     types.ListID
	ReviewerID types.UserID
	Decision   types.ReviewStatus
	Comment    string
	Items      []ItemSuggestion
}

// SubmitReview records a reviewer decision on a list and advances the
// workflow: back to the author on changes-requested or reject, on to the
// next reviewer on approval, and into the destruction pipeline once the
// chain is exhausted. The pipeline is dispatched asynchronously, after all
// review writes have been persisted.
func (u *UseCases) SubmitReview(ctx context.Context, input SubmitReviewInput) (*model.Review, error) {
	if !input.Decision.IsValid() {
		return nil, goerr.New("invalid review decision", goerr.V("decision", input.Decision))
	}

	list, err := u.repo.List().Get(ctx, input.ListID)
	if err != nil {
		return nil, goerr.Wrap(ErrListNotFound, "list not found", goerr.V(ListIDKey, input.ListID))
	}
	if list.Status != types.ListStatusInProgress {
		return nil, goerr.Wrap(ErrAlreadyCompleted, "list is no longer under review",
			goerr.V(ListIDKey, input.ListID), goerr.V("status", list.Status))
	}

	if _, err := u.repo.Assignee().GetByUser(ctx, input.ListID, input.ReviewerID); err != nil {
		return nil, goerr.Wrap(ErrUnauthorized, "user is not a reviewer of this list",
			goerr.V(ListIDKey, input.ListID), goerr.V(UserIDKey, input.ReviewerID))
	}
	if list.Assignee != input.ReviewerID {
		return nil, goerr.Wrap(ErrUnauthorized, "it is not this reviewer's turn",
			goerr.V(ListIDKey, input.ListID), goerr.V(UserIDKey, input.ReviewerID))
	}

	// All suggestions are checked up front so a bad one cannot leave a
	// review behind without its item reviews
	for _, suggestion := range input.Items {
		if !suggestion.Suggestion.IsValid() {
			return nil, goerr.New("invalid suggestion",
				goerr.V(ItemIDKey, suggestion.ItemID),
				goerr.V("suggestion", suggestion.Suggestion))
		}
	}

	review, err := u.repo.Review().Create(ctx, &model.Review{
		ListID:   input.ListID,
		AuthorID: input.ReviewerID,
		Decision: input.Decision,
		Comment:  input.Comment,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create review", goerr.V(ListIDKey, input.ListID))
	}

	itemIDs := make([]types.ItemID, 0, len(input.Items))
	if len(input.Items) > 0 {
		itemReviews := make([]*model.ItemReview, 0, len(input.Items))
		for _, suggestion := range input.Items {
			itemReviews = append(itemReviews, &model.ItemReview{
				ReviewID:   review.ID,
				ItemID:     suggestion.ItemID,
				Comment:    suggestion.Comment,
				Suggestion: suggestion.Suggestion,
			})
			itemIDs = append(itemIDs, suggestion.ItemID)
		}
		if _, err := u.repo.Review().CreateItemReviews(ctx, itemReviews); err != nil {
			return nil, goerr.Wrap(err, "failed to create item reviews",
				goerr.V("review_id", review.ID))
		}
	}

	u.notifyUser(ctx, list.ID, list.AuthorID,
		fmt.Sprintf("Destruction list %q has been reviewed: %s", list.Name, input.Decision))

	assignees, err := u.repo.Assignee().ListByList(ctx, input.ListID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load assignees", goerr.V(ListIDKey, input.ListID))
	}

	next := model.NextAssignee(list, assignees, review)
	if next != "" {
		emailType := types.EmailTypeReviewRequired
		if next == list.AuthorID {
			emailType = types.EmailTypeChangesRequired
		}
		if err := u.assign(ctx, list, next, emailType); err != nil {
			return nil, err
		}
	} else {
		// Every reviewer approved, the list is ready for execution
		list.Assignee = ""
		if _, err := u.repo.List().Update(ctx, list); err != nil {
			return nil, goerr.Wrap(err, "failed to clear assignee", goerr.V(ListIDKey, list.ID))
		}
	}

	u.audit(ctx, list.ID, input.ReviewerID, model.AuditReviewCreated, map[string]any{
		"review_id":  review.ID,
		"decision":   input.Decision,
		"item_count": len(itemIDs),
		"item_ids":   itemIDs,
	})

	if next == "" {
		listID := list.ID
		u.dispatch(ctx, func(ctx context.Context) error {
			return u.ProcessList(ctx, listID)
		})
	}

	return review, nil
}

// RespondToReview records a follow-up remark of the list author on one
// specific review, typically explaining how the requested changes were
// handled.
func (u *UseCases) RespondToReview(ctx context.Context, reviewID types.ReviewID, actorID types.UserID, text string) (*model.ReviewComment, error) {
	if text == "" {
		return nil, goerr.New("comment text is required")
	}

	review, err := u.repo.Review().Get(ctx, reviewID)
	if err != nil {
		return nil, goerr.Wrap(ErrReviewNotFound, "review not found", goerr.V("review_id", reviewID))
	}

	list, err := u.repo.List().Get(ctx, review.ListID)
	if err != nil {
		return nil, goerr.Wrap(ErrListNotFound, "list not found", goerr.V(ListIDKey, review.ListID))
	}
	if list.AuthorID != actorID {
		return nil, goerr.Wrap(ErrUnauthorized, "only the list author may respond",
			goerr.V(ListIDKey, list.ID), goerr.V(UserIDKey, actorID))
	}

	comment, err := u.repo.Review().CreateComment(ctx, &model.ReviewComment{
		ReviewID: reviewID,
		Text:     text,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create comment", goerr.V("review_id", reviewID))
	}

	u.notifyUser(ctx, list.ID, review.AuthorID,
		fmt.Sprintf("The author of %q responded to your review", list.Name))

	return comment, nil
}
