package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
)

// ListDetail is the full read model of one destruction list
type ListDetail struct {
	List      *model.DestructionList
	State     types.ListState
	Items     []*model.DestructionListItem
	Assignees []*model.Assignee
	Reviews   []*model.Review
}

// GetList loads a list with its items, reviewers, reviews and derived
// display state
func (u *UseCases) GetList(ctx context.Context, listID types.ListID) (*ListDetail, error) {
	list, err := u.repo.List().Get(ctx, listID)
	if err != nil {
		return nil, goerr.Wrap(ErrListNotFound, "list not found", goerr.V(ListIDKey, listID))
	}

	items, err := u.repo.Item().ListByList(ctx, listID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load items", goerr.V(ListIDKey, listID))
	}

	assignees, err := u.repo.Assignee().ListByList(ctx, listID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load assignees", goerr.V(ListIDKey, listID))
	}

	reviews, err := u.repo.Review().ListByList(ctx, listID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load reviews", goerr.V(ListIDKey, listID))
	}

	var latest *model.Review
	if len(reviews) > 0 {
		latest = reviews[len(reviews)-1]
	}

	return &ListDetail{
		List:      list,
		State:     list.State(latest),
		Items:     items,
		Assignees: assignees,
		Reviews:   reviews,
	}, nil
}

// ListLists returns all destruction lists, newest first
func (u *UseCases) ListLists(ctx context.Context) ([]*model.DestructionList, error) {
	lists, err := u.repo.List().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load lists")
	}
	return lists, nil
}

// ListNotifications returns the notifications addressed to a user, newest
// first
func (u *UseCases) ListNotifications(ctx context.Context, userID types.UserID) ([]*model.Notification, error) {
	notifications, err := u.repo.Notification().ListByUser(ctx, userID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load notifications", goerr.V(UserIDKey, userID))
	}
	return notifications, nil
}

// ListAuditLog returns the audit trail of a list in insertion order
func (u *UseCases) ListAuditLog(ctx context.Context, listID types.ListID) ([]*model.AuditEntry, error) {
	entries, err := u.repo.Audit().ListByList(ctx, listID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load audit log", goerr.V(ListIDKey, listID))
	}
	return entries, nil
}

// GetReport fetches a stored destruction report artifact by its path
func (u *UseCases) GetReport(ctx context.Context, path string) ([]byte, error) {
	if u.reports == nil {
		return nil, goerr.Wrap(ErrNotConfigured, "no report store configured")
	}
	data, err := u.reports.Fetch(ctx, path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch report", goerr.V("path", path))
	}
	return data, nil
}
