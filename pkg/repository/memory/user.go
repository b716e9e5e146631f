package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
)

type userRepository struct {
	mu    sync.RWMutex
	users map[types.UserID]*model.User
}

func newUserRepository() *userRepository {
	return &userRepository{
		users: make(map[types.UserID]*model.User),
	}
}

func (r *userRepository) Get(ctx context.Context, id types.UserID) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "user not found", goerr.V("id", id))
	}

	copied := *user
	return &copied, nil
}

func (r *userRepository) Save(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *userRepository) ListReviewers(ctx context.Context) ([]*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var reviewers []*model.User
	for _, user := range r.users {
		if user.Role.CanReviewDestruction {
			copied := *user
			reviewers = append(reviewers, &copied)
		}
	}

	sort.Slice(reviewers, func(i, j int) bool {
		return reviewers[i].ID < reviewers[j].ID
	})
	return reviewers, nil
}
