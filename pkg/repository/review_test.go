package repository_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/openarchief/vernietiging/pkg/domain/interfaces"
	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
)

func TestReviewRepository(t *testing.T) {
	runWithBackends(t, runReviewRepositoryTest)
}

func runReviewRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Latest returns nil without reviews", func(t *testing.T) {
		repo := newRepo(t)

		latest, err := repo.Review().Latest(context.Background(), 1)
		gt.NoError(t, err).Required()
		gt.Value(t, latest).Nil()
	})

	t.Run("Latest returns the most recent review", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Review().Create(ctx, &model.Review{
			ListID: 1, AuthorID: "reviewer-1", Decision: types.ReviewStatusChangesRequested,
		})
		gt.NoError(t, err).Required()

		second, err := repo.Review().Create(ctx, &model.Review{
			ListID: 1, AuthorID: "reviewer-1", Decision: types.ReviewStatusApproved,
		})
		gt.NoError(t, err).Required()

		latest, err := repo.Review().Latest(ctx, 1)
		gt.NoError(t, err).Required()
		gt.Value(t, latest.ID).Equal(second.ID)
		gt.Value(t, latest.Decision).Equal(types.ReviewStatusApproved)
	})

	t.Run("LatestByAuthor filters on reviewer", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		first, err := repo.Review().Create(ctx, &model.Review{
			ListID: 1, AuthorID: "reviewer-1", Decision: types.ReviewStatusChangesRequested,
		})
		gt.NoError(t, err).Required()

		_, err = repo.Review().Create(ctx, &model.Review{
			ListID: 1, AuthorID: "reviewer-2", Decision: types.ReviewStatusApproved,
		})
		gt.NoError(t, err).Required()

		latest, err := repo.Review().LatestByAuthor(ctx, 1, "reviewer-1")
		gt.NoError(t, err).Required()
		gt.Value(t, latest.ID).Equal(first.ID)
	})

	t.Run("item reviews are unique per review and item", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		review, err := repo.Review().Create(ctx, &model.Review{
			ListID: 1, AuthorID: "reviewer-1", Decision: types.ReviewStatusChangesRequested,
		})
		gt.NoError(t, err).Required()

		_, err = repo.Review().CreateItemReviews(ctx, []*model.ItemReview{
			{ReviewID: review.ID, ItemID: 10, Suggestion: types.SuggestionRemove},
			{ReviewID: review.ID, ItemID: 11, Suggestion: types.SuggestionChangeAndRemove},
		})
		gt.NoError(t, err).Required()

		_, err = repo.Review().CreateItemReviews(ctx, []*model.ItemReview{
			{ReviewID: review.ID, ItemID: 10, Suggestion: types.SuggestionRemove},
		})
		gt.Error(t, err)

		itemReviews, err := repo.Review().ListItemReviews(ctx, review.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, itemReviews).Length(2)
	})

	t.Run("FirstItemReviewByItem returns oldest suggestion", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		first, err := repo.Review().Create(ctx, &model.Review{
			ListID: 1, AuthorID: "reviewer-1", Decision: types.ReviewStatusChangesRequested,
		})
		gt.NoError(t, err).Required()
		second, err := repo.Review().Create(ctx, &model.Review{
			ListID: 1, AuthorID: "reviewer-2", Decision: types.ReviewStatusChangesRequested,
		})
		gt.NoError(t, err).Required()

		_, err = repo.Review().CreateItemReviews(ctx, []*model.ItemReview{
			{ReviewID: first.ID, ItemID: 10, Comment: "wrong retention date", Suggestion: types.SuggestionChangeAndRemove},
		})
		gt.NoError(t, err).Required()
		_, err = repo.Review().CreateItemReviews(ctx, []*model.ItemReview{
			{ReviewID: second.ID, ItemID: 10, Suggestion: types.SuggestionRemove},
		})
		gt.NoError(t, err).Required()

		oldest, err := repo.Review().FirstItemReviewByItem(ctx, 10)
		gt.NoError(t, err).Required()
		gt.Value(t, oldest.ReviewID).Equal(first.ID)
		gt.Value(t, oldest.Comment).Equal("wrong retention date")
	})

	t.Run("comments are appended to a review", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		review, err := repo.Review().Create(ctx, &model.Review{
			ListID: 1, AuthorID: "reviewer-1", Decision: types.ReviewStatusChangesRequested,
		})
		gt.NoError(t, err).Required()

		_, err = repo.Review().CreateComment(ctx, &model.ReviewComment{
			ReviewID: review.ID, Text: "removed the cases you flagged",
		})
		gt.NoError(t, err).Required()

		last, err := repo.Review().LastComment(ctx, review.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, last.Text).Equal("removed the cases you flagged")

		// comment on unknown review fails
		_, err = repo.Review().CreateComment(ctx, &model.ReviewComment{ReviewID: 9999, Text: "x"})
		gt.Error(t, err)
	})
}
