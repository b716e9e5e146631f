package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
)

type assigneeRepository struct {
	mu        sync.RWMutex
	assignees map[types.AssigneeID]*model.Assignee
	nextID    types.AssigneeID
}

func newAssigneeRepository() *assigneeRepository {
	return &assigneeRepository{
		assignees: make(map[types.AssigneeID]*model.Assignee),
		nextID:    1,
	}
}

func copyAssignee(a *model.Assignee) *model.Assignee {
	copied := *a
	return &copied
}

func (r *assigneeRepository) CreateMany(ctx context.Context, assignees []*model.Assignee) ([]*model.Assignee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := make([]*model.Assignee, 0, len(assignees))
	for _, assignee := range assignees {
		for _, existing := range r.assignees {
			if existing.ListID == assignee.ListID && existing.UserID == assignee.UserID {
				return nil, goerr.Wrap(ErrDuplicate, "reviewer already assigned to list",
					goerr.V("list_id", assignee.ListID),
					goerr.V("user_id", assignee.UserID))
			}
		}

		c := copyAssignee(assignee)
		c.ID = r.nextID
		r.nextID++
		r.assignees[c.ID] = c
		created = append(created, copyAssignee(c))
	}

	return created, nil
}

func (r *assigneeRepository) ListByList(ctx context.Context, listID types.ListID) ([]*model.Assignee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var assignees []*model.Assignee
	for _, assignee := range r.assignees {
		if assignee.ListID == listID {
			assignees = append(assignees, copyAssignee(assignee))
		}
	}

	sort.Slice(assignees, func(i, j int) bool {
		return assignees[i].Order < assignees[j].Order
	})
	return assignees, nil
}

func (r *assigneeRepository) GetByUser(ctx context.Context, listID types.ListID, userID types.UserID) (*model.Assignee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, assignee := range r.assignees {
		if assignee.ListID == listID && assignee.UserID == userID {
			return copyAssignee(assignee), nil
		}
	}

	return nil, goerr.Wrap(ErrNotFound, "assignee not found",
		goerr.V("list_id", listID),
		goerr.V("user_id", userID))
}

func (r *assigneeRepository) Update(ctx context.Context, assignee *model.Assignee) (*model.Assignee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.assignees[assignee.ID]; !exists {
		return nil, goerr.Wrap(ErrNotFound, "assignee not found", goerr.V("id", assignee.ID))
	}

	updated := copyAssignee(assignee)
	r.assignees[assignee.ID] = updated
	return copyAssignee(updated), nil
}
