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

type listRepository struct {
	mu     sync.RWMutex
	lists  map[types.ListID]*model.DestructionList
	nextID types.ListID
}

func newListRepository() *listRepository {
	return &listRepository{
		lists:  make(map[types.ListID]*model.DestructionList),
		nextID: 1,
	}
}

func copyList(l *model.DestructionList) *model.DestructionList {
	copied := *l
	return &copied
}

func (r *listRepository) Create(ctx context.Context, list *model.DestructionList) (*model.DestructionList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.lists {
		if existing.Name == list.Name {
			return nil, goerr.Wrap(ErrDuplicate, "list name already in use", goerr.V("name", list.Name))
		}
	}

	created := copyList(list)
	created.ID = r.nextID
	created.Created = time.Now().UTC()
	r.nextID++

	r.lists[created.ID] = created
	return copyList(created), nil
}

func (r *listRepository) Get(ctx context.Context, id types.ListID) (*model.DestructionList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list, exists := r.lists[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "destruction list not found", goerr.V("id", id))
	}

	return copyList(list), nil
}

func (r *listRepository) List(ctx context.Context) ([]*model.DestructionList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lists := make([]*model.DestructionList, 0, len(r.lists))
	for _, list := range r.lists {
		lists = append(lists, copyList(list))
	}

	sort.Slice(lists, func(i, j int) bool {
		return lists[i].ID > lists[j].ID
	})
	return lists, nil
}

func (r *listRepository) ListByAssignee(ctx context.Context, userID types.UserID) ([]*model.DestructionList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var lists []*model.DestructionList
	for _, list := range r.lists {
		if list.Assignee == userID {
			lists = append(lists, copyList(list))
		}
	}

	sort.Slice(lists, func(i, j int) bool {
		return lists[i].ID > lists[j].ID
	})
	return lists, nil
}

func (r *listRepository) Update(ctx context.Context, list *model.DestructionList) (*model.DestructionList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.lists[list.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "destruction list not found", goerr.V("id", list.ID))
	}

	updated := copyList(list)
	updated.Created = existing.Created
	r.lists[list.ID] = updated
	return copyList(updated), nil
}
