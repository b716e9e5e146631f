package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
)

type reviewRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newReviewRepository(client *firestore.Client) *reviewRepository {
	return &reviewRepository{client: client}
}

func (r *reviewRepository) collection() string {
	return prefixed(r.collectionPrefix, "reviews")
}

func (r *reviewRepository) itemReviewCollection() string {
	return prefixed(r.collectionPrefix, "item_reviews")
}

func (r *reviewRepository) commentCollection() string {
	return prefixed(r.collectionPrefix, "review_comments")
}

func (r *reviewRepository) counterCollection() string {
	return prefixed(r.collectionPrefix, "counters")
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	id, err := nextID(ctx, r.client, r.counterCollection(), "review_counter")
	if err != nil {
		return nil, err
	}

	created := *review
	created.ID = types.ReviewID(id)
	created.Created = time.Now().UTC()

	docID := fmt.Sprintf("%d", created.ID)
	if _, err := r.client.Collection(r.collection()).Doc(docID).Set(ctx, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to create review", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *reviewRepository) Get(ctx context.Context, id types.ReviewID) (*model.Review, error) {
	docID := fmt.Sprintf("%d", id)
	docSnap, err := r.client.Collection(r.collection()).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "review not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get review", goerr.V("id", id))
	}

	var review model.Review
	if err := docSnap.DataTo(&review); err != nil {
		return nil, goerr.Wrap(err, "failed to decode review", goerr.V("id", id))
	}

	return &review, nil
}

func (r *reviewRepository) latestQuery(ctx context.Context, query firestore.Query) (*model.Review, error) {
	iter := query.Limit(1).Documents(ctx)
	defer iter.Stop()

	docSnap, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query latest review")
	}

	var review model.Review
	if err := docSnap.DataTo(&review); err != nil {
		return nil, goerr.Wrap(err, "failed to decode review", goerr.V("doc_id", docSnap.Ref.ID))
	}

	return &review, nil
}

func (r *reviewRepository) Latest(ctx context.Context, listID types.ListID) (*model.Review, error) {
	return r.latestQuery(ctx, r.client.Collection(r.collection()).
		Where("ListID", "==", int64(listID)).
		OrderBy("ID", firestore.Desc))
}

func (r *reviewRepository) LatestByAuthor(ctx context.Context, listID types.ListID, authorID types.UserID) (*model.Review, error) {
	return r.latestQuery(ctx, r.client.Collection(r.collection()).
		Where("ListID", "==", int64(listID)).
		Where("AuthorID", "==", string(authorID)).
		OrderBy("ID", firestore.Desc))
}

func (r *reviewRepository) ListByList(ctx context.Context, listID types.ListID) ([]*model.Review, error) {
	iter := r.client.Collection(r.collection()).
		Where("ListID", "==", int64(listID)).
		OrderBy("ID", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var reviews []*model.Review
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate reviews", goerr.V("list_id", listID))
		}

		var review model.Review
		if err := docSnap.DataTo(&review); err != nil {
			return nil, goerr.Wrap(err, "failed to decode review", goerr.V("doc_id", docSnap.Ref.ID))
		}

		reviews = append(reviews, &review)
	}

	return reviews, nil
}

func (r *reviewRepository) CreateItemReviews(ctx context.Context, itemReviews []*model.ItemReview) ([]*model.ItemReview, error) {
	created := make([]*model.ItemReview, 0, len(itemReviews))

	for _, itemReview := range itemReviews {
		iter := r.client.Collection(r.itemReviewCollection()).
			Where("ReviewID", "==", int64(itemReview.ReviewID)).
			Where("ItemID", "==", int64(itemReview.ItemID)).
			Limit(1).Documents(ctx)
		if _, err := iter.Next(); err != iterator.Done {
			iter.Stop()
			if err != nil {
				return nil, goerr.Wrap(err, "failed to check item review uniqueness", goerr.V("item_id", itemReview.ItemID))
			}
			return nil, goerr.Wrap(ErrDuplicate, "item already reviewed in this review",
				goerr.V("review_id", itemReview.ReviewID),
				goerr.V("item_id", itemReview.ItemID))
		}
		iter.Stop()

		id, err := nextID(ctx, r.client, r.counterCollection(), "item_review_counter")
		if err != nil {
			return nil, err
		}

		c := *itemReview
		c.ID = types.ReviewID(id)

		docID := fmt.Sprintf("%d", c.ID)
		if _, err := r.client.Collection(r.itemReviewCollection()).Doc(docID).Set(ctx, &c); err != nil {
			return nil, goerr.Wrap(err, "failed to create item review", goerr.V("id", c.ID))
		}

		created = append(created, &c)
	}

	return created, nil
}

func (r *reviewRepository) ListItemReviews(ctx context.Context, reviewID types.ReviewID) ([]*model.ItemReview, error) {
	iter := r.client.Collection(r.itemReviewCollection()).
		Where("ReviewID", "==", int64(reviewID)).
		OrderBy("ID", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var itemReviews []*model.ItemReview
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate item reviews", goerr.V("review_id", reviewID))
		}

		var itemReview model.ItemReview
		if err := docSnap.DataTo(&itemReview); err != nil {
			return nil, goerr.Wrap(err, "failed to decode item review", goerr.V("doc_id", docSnap.Ref.ID))
		}

		itemReviews = append(itemReviews, &itemReview)
	}

	return itemReviews, nil
}

func (r *reviewRepository) FirstItemReviewByItem(ctx context.Context, itemID types.ItemID) (*model.ItemReview, error) {
	iter := r.client.Collection(r.itemReviewCollection()).
		Where("ItemID", "==", int64(itemID)).
		OrderBy("ID", firestore.Asc).
		Limit(1).Documents(ctx)
	defer iter.Stop()

	docSnap, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query item review", goerr.V("item_id", itemID))
	}

	var itemReview model.ItemReview
	if err := docSnap.DataTo(&itemReview); err != nil {
		return nil, goerr.Wrap(err, "failed to decode item review", goerr.V("doc_id", docSnap.Ref.ID))
	}

	return &itemReview, nil
}

func (r *reviewRepository) CreateComment(ctx context.Context, comment *model.ReviewComment) (*model.ReviewComment, error) {
	if _, err := r.Get(ctx, comment.ReviewID); err != nil {
		return nil, err
	}

	id, err := nextID(ctx, r.client, r.counterCollection(), "review_comment_counter")
	if err != nil {
		return nil, err
	}

	created := *comment
	created.ID = types.ReviewID(id)
	created.Created = time.Now().UTC()

	docID := fmt.Sprintf("%d", created.ID)
	if _, err := r.client.Collection(r.commentCollection()).Doc(docID).Set(ctx, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to create review comment", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *reviewRepository) LastComment(ctx context.Context, reviewID types.ReviewID) (*model.ReviewComment, error) {
	iter := r.client.Collection(r.commentCollection()).
		Where("ReviewID", "==", int64(reviewID)).
		OrderBy("ID", firestore.Desc).
		Limit(1).Documents(ctx)
	defer iter.Stop()

	docSnap, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query review comment", goerr.V("review_id", reviewID))
	}

	var comment model.ReviewComment
	if err := docSnap.DataTo(&comment); err != nil {
		return nil, goerr.Wrap(err, "failed to decode review comment", goerr.V("doc_id", docSnap.Ref.ID))
	}

	return &comment, nil
}
