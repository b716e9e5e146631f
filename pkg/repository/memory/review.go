package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
)

type reviewRepository struct {
	mu          sync.RWMutex
	reviews     map[types.ReviewID]*model.Review
	itemReviews map[types.ReviewID]*model.ItemReview
	comments    map[types.ReviewID]*model.ReviewComment
	nextID      types.ReviewID
}

func newReviewRepository() *reviewRepository {
	return &reviewRepository{
		reviews:     make(map[types.ReviewID]*model.Review),
		itemReviews: make(map[types.ReviewID]*model.ItemReview),
		comments:    make(map[types.ReviewID]*model.ReviewComment),
		nextID:      1,
	}
}

func copyReview(r *model.Review) *model.Review {
	copied := *r
	return &copied
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyReview(review)
	created.ID = r.nextID
	created.Created = time.Now().UTC()
	r.nextID++

	r.reviews[created.ID] = created
	return copyReview(created), nil
}

func (r *reviewRepository) Get(ctx context.Context, id types.ReviewID) (*model.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	review, exists := r.reviews[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "review not found", goerr.V("id", id))
	}

	return copyReview(review), nil
}

func (r *reviewRepository) Latest(ctx context.Context, listID types.ListID) (*model.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *model.Review
	for _, review := range r.reviews {
		if review.ListID != listID {
			continue
		}
		if latest == nil || review.ID > latest.ID {
			latest = review
		}
	}

	if latest == nil {
		return nil, nil
	}
	return copyReview(latest), nil
}

func (r *reviewRepository) LatestByAuthor(ctx context.Context, listID types.ListID, authorID types.UserID) (*model.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *model.Review
	for _, review := range r.reviews {
		if review.ListID != listID || review.AuthorID != authorID {
			continue
		}
		if latest == nil || review.ID > latest.ID {
			latest = review
		}
	}

	if latest == nil {
		return nil, nil
	}
	return copyReview(latest), nil
}

func (r *reviewRepository) ListByList(ctx context.Context, listID types.ListID) ([]*model.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var reviews []*model.Review
	for _, review := range r.reviews {
		if review.ListID == listID {
			reviews = append(reviews, copyReview(review))
		}
	}

	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].ID < reviews[j].ID
	})
	return reviews, nil
}

func (r *reviewRepository) CreateItemReviews(ctx context.Context, itemReviews []*model.ItemReview) ([]*model.ItemReview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := make([]*model.ItemReview, 0, len(itemReviews))
	for _, itemReview := range itemReviews {
		for _, existing := range r.itemReviews {
			if existing.ReviewID == itemReview.ReviewID && existing.ItemID == itemReview.ItemID {
				return nil, goerr.Wrap(ErrDuplicate, "item already reviewed in this review",
					goerr.V("review_id", itemReview.ReviewID),
					goerr.V("item_id", itemReview.ItemID))
			}
		}

		c := *itemReview
		c.ID = r.nextID
		r.nextID++
		r.itemReviews[c.ID] = &c

		copied := c
		created = append(created, &copied)
	}

	return created, nil
}

func (r *reviewRepository) ListItemReviews(ctx context.Context, reviewID types.ReviewID) ([]*model.ItemReview, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var itemReviews []*model.ItemReview
	for _, itemReview := range r.itemReviews {
		if itemReview.ReviewID == reviewID {
			copied := *itemReview
			itemReviews = append(itemReviews, &copied)
		}
	}

	sort.Slice(itemReviews, func(i, j int) bool {
		return itemReviews[i].ID < itemReviews[j].ID
	})
	return itemReviews, nil
}

func (r *reviewRepository) FirstItemReviewByItem(ctx context.Context, itemID types.ItemID) (*model.ItemReview, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var first *model.ItemReview
	for _, itemReview := range r.itemReviews {
		if itemReview.ItemID != itemID {
			continue
		}
		if first == nil || itemReview.ID < first.ID {
			first = itemReview
		}
	}

	if first == nil {
		return nil, nil
	}
	copied := *first
	return &copied, nil
}

func (r *reviewRepository) CreateComment(ctx context.Context, comment *model.ReviewComment) (*model.ReviewComment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.reviews[comment.ReviewID]; !exists {
		return nil, goerr.Wrap(ErrNotFound, "review not found", goerr.V("review_id", comment.ReviewID))
	}

	created := *comment
	created.ID = r.nextID
	created.Created = time.Now().UTC()
	r.nextID++
	r.comments[created.ID] = &created

	copied := created
	return &copied, nil
}

func (r *reviewRepository) LastComment(ctx context.Context, reviewID types.ReviewID) (*model.ReviewComment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var last *model.ReviewComment
	for _, comment := range r.comments {
		if comment.ReviewID != reviewID {
			continue
		}
		if last == nil || comment.ID > last.ID {
			last = comment
		}
	}

	if last == nil {
		return nil, nil
	}
	copied := *last
	return &copied, nil
}
