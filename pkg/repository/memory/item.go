package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
)

type itemRepository struct {
	mu     sync.RWMutex
	items  map[types.ItemID]*model.DestructionListItem
	nextID types.ItemID
}

func newItemRepository() *itemRepository {
	return &itemRepository{
		items:  make(map[types.ItemID]*model.DestructionListItem),
		nextID: 1,
	}
}

func copyItem(i *model.DestructionListItem) *model.DestructionListItem {
	copied := *i
	if i.Snapshot != nil {
		snapshot := *i.Snapshot
		snapshot.RelatedCases = append([]string(nil), i.Snapshot.RelatedCases...)
		copied.Snapshot = &snapshot
	}
	return &copied
}

func (r *itemRepository) CreateMany(ctx context.Context, items []*model.DestructionListItem) ([]*model.DestructionListItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// (list, case URL) must stay unique
	seen := make(map[types.ListID]map[string]bool)
	for _, existing := range r.items {
		if seen[existing.ListID] == nil {
			seen[existing.ListID] = make(map[string]bool)
		}
		seen[existing.ListID][existing.CaseURL] = true
	}

	created := make([]*model.DestructionListItem, 0, len(items))
	for _, item := range items {
		if seen[item.ListID] == nil {
			seen[item.ListID] = make(map[string]bool)
		}
		if seen[item.ListID][item.CaseURL] {
			return nil, goerr.Wrap(ErrDuplicate, "case already on destruction list",
				goerr.V("list_id", item.ListID),
				goerr.V("case_url", item.CaseURL))
		}
		seen[item.ListID][item.CaseURL] = true

		c := copyItem(item)
		c.ID = r.nextID
		r.nextID++
		r.items[c.ID] = c
		created = append(created, copyItem(c))
	}

	return created, nil
}

func (r *itemRepository) Get(ctx context.Context, id types.ItemID) (*model.DestructionListItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "destruction list item not found", goerr.V("id", id))
	}

	return copyItem(item), nil
}

func (r *itemRepository) ListByList(ctx context.Context, listID types.ListID) ([]*model.DestructionListItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []*model.DestructionListItem
	for _, item := range r.items {
		if item.ListID == listID {
			items = append(items, copyItem(item))
		}
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (r *itemRepository) ListByStatus(ctx context.Context, listID types.ListID, status types.ItemStatus) ([]*model.DestructionListItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []*model.DestructionListItem
	for _, item := range r.items {
		if item.ListID == listID && item.Status == status {
			items = append(items, copyItem(item))
		}
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (r *itemRepository) Update(ctx context.Context, item *model.DestructionListItem) (*model.DestructionListItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		return nil, goerr.Wrap(ErrNotFound, "destruction list item not found", goerr.V("id", item.ID))
	}

	updated := copyItem(item)
	r.items[item.ID] = updated
	return copyItem(updated), nil
}
