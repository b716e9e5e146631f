package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"

	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
	"github.com/openarchief/vernietiging/pkg/service/zaken"
	"github.com/openarchief/vernietiging/pkg/utils/errutil"
)

// CreateList creates a destruction list together with its items and its
// ordered reviewer chain, and hands the list to the first reviewer.
func (u *UseCases) CreateList(ctx context.Context, authorID types.UserID, name string, sensitive bool, caseURLs []string, reviewerIDs []types.UserID) (*model.DestructionList, error) {
	if name == "" {
		return nil, goerr.New("list name is required")
	}
	if len(caseURLs) == 0 {
		return nil, goerr.New("at least one case is required")
	}

	author, err := u.repo.User().Get(ctx, authorID)
	if err != nil {
		return nil, goerr.Wrap(ErrUnauthorized, "unknown author", goerr.V(UserIDKey, authorID))
	}
	if !author.Role.CanStartDestruction {
		return nil, goerr.Wrap(ErrUnauthorized, "user may not start destruction", goerr.V(UserIDKey, authorID))
	}

	assignees := model.NewAssignees(0, reviewerIDs)
	if len(assignees) == 0 {
		return nil, goerr.New("at least one reviewer is required")
	}
	for _, assignee := range assignees {
		reviewer, err := u.repo.User().Get(ctx, assignee.UserID)
		if err != nil {
			return nil, goerr.Wrap(err, "unknown reviewer", goerr.V(UserIDKey, assignee.UserID))
		}
		if !reviewer.Role.CanReviewDestruction {
			return nil, goerr.Wrap(ErrUnauthorized, "user may not review destruction",
				goerr.V(UserIDKey, assignee.UserID))
		}
	}

	list, err := u.repo.List().Create(ctx, model.NewDestructionList(name, authorID, sensitive))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create list", goerr.V("name", name))
	}

	items := make([]*model.DestructionListItem, 0, len(caseURLs))
	for _, caseURL := range caseURLs {
		items = append(items, model.NewDestructionListItem(list.ID, caseURL))
	}
	if _, err := u.repo.Item().CreateMany(ctx, items); err != nil {
		return nil, goerr.Wrap(err, "failed to create list items", goerr.V(ListIDKey, list.ID))
	}

	for _, assignee := range assignees {
		assignee.ListID = list.ID
	}
	if _, err := u.repo.Assignee().CreateMany(ctx, assignees); err != nil {
		return nil, goerr.Wrap(err, "failed to create assignees", goerr.V(ListIDKey, list.ID))
	}

	if err := u.assign(ctx, list, assignees[0].UserID, types.EmailTypeReviewRequired); err != nil {
		return nil, err
	}

	u.audit(ctx, list.ID, authorID, model.AuditListCreated, map[string]any{
		"name":       name,
		"item_count": len(items),
		"reviewers":  len(assignees),
	})

	return list, nil
}

// AbortList cancels an unprocessed list. Only the author may abort, and
// only while the list is still in progress. All suggested items are removed
// and the list is closed without destroying anything.
func (u *UseCases) AbortList(ctx context.Context, listID types.ListID, actorID types.UserID) error {
	list, err := u.repo.List().Get(ctx, listID)
	if err != nil {
		return goerr.Wrap(ErrListNotFound, "list not found", goerr.V(ListIDKey, listID))
	}
	if list.AuthorID != actorID {
		return goerr.Wrap(ErrUnauthorized, "only the author may abort",
			goerr.V(ListIDKey, listID), goerr.V(UserIDKey, actorID))
	}
	if list.Status != types.ListStatusInProgress {
		return goerr.Wrap(ErrAlreadyCompleted, "list can no longer be aborted",
			goerr.V(ListIDKey, listID), goerr.V("status", list.Status))
	}

	suggested, err := u.repo.Item().ListByStatus(ctx, listID, types.ItemStatusSuggested)
	if err != nil {
		return goerr.Wrap(err, "failed to load items", goerr.V(ListIDKey, listID))
	}
	for _, item := range suggested {
		if err := item.Remove(); err != nil {
			return err
		}
		if _, err := u.repo.Item().Update(ctx, item); err != nil {
			return goerr.Wrap(err, "failed to remove item", goerr.V(ItemIDKey, item.ID))
		}
	}

	if err := list.Process(); err != nil {
		return err
	}
	if err := list.Complete(); err != nil {
		return err
	}
	if _, err := u.repo.List().Update(ctx, list); err != nil {
		return goerr.Wrap(err, "failed to close aborted list", goerr.V(ListIDKey, listID))
	}

	u.audit(ctx, listID, actorID, model.AuditListAborted, map[string]any{
		"removed_items": len(suggested),
	})

	return nil
}

// ItemUpdate is one remediation action of the author on a flagged item
type ItemUpdate struct {
	ItemID types.ItemID
	// Remove takes the item off the list
	Remove bool
	// ArchiveActionDate and ArchiveState, when set, are pushed to the case
	// management system asynchronously
	ArchiveActionDate string
	ArchiveState      string
}

// UpdateList applies the author's remediation after a reviewer requested
// changes: removes flagged items, schedules archive-data updates against the
// case management system, and restarts the review chain from the first
// reviewer.
func (u *UseCases) UpdateList(ctx context.Context, listID types.ListID, actorID types.UserID, updates []ItemUpdate) error {
	list, err := u.repo.List().Get(ctx, listID)
	if err != nil {
		return goerr.Wrap(ErrListNotFound, "list not found", goerr.V(ListIDKey, listID))
	}
	if list.AuthorID != actorID {
		return goerr.Wrap(ErrUnauthorized, "only the author may update the list",
			goerr.V(ListIDKey, listID), goerr.V(UserIDKey, actorID))
	}
	if list.Status != types.ListStatusInProgress {
		return goerr.Wrap(ErrAlreadyCompleted, "list can no longer be updated",
			goerr.V(ListIDKey, listID), goerr.V("status", list.Status))
	}
	if list.Assignee != list.AuthorID {
		return goerr.Wrap(ErrUnauthorized, "list is not under remediation",
			goerr.V(ListIDKey, listID), goerr.V("assignee", list.Assignee))
	}

	var removed int
	for _, update := range updates {
		item, err := u.repo.Item().Get(ctx, update.ItemID)
		if err != nil {
			return goerr.Wrap(ErrItemNotFound, "item not found", goerr.V(ItemIDKey, update.ItemID))
		}
		if item.ListID != listID {
			return goerr.Wrap(ErrItemNotFound, "item belongs to another list",
				goerr.V(ItemIDKey, update.ItemID), goerr.V(ListIDKey, listID))
		}

		if update.Remove {
			if err := item.Remove(); err != nil {
				return err
			}
			if _, err := u.repo.Item().Update(ctx, item); err != nil {
				return goerr.Wrap(err, "failed to remove item", goerr.V(ItemIDKey, item.ID))
			}
			removed++
		}

		if update.ArchiveActionDate != "" || update.ArchiveState != "" {
			u.dispatchArchiveUpdate(ctx, list, item, update)
		}
	}

	u.audit(ctx, listID, actorID, model.AuditListUpdated, map[string]any{
		"updated_items": len(updates),
		"removed_items": removed,
	})

	// Remediation done, the chain restarts from the first reviewer
	assignees, err := u.repo.Assignee().ListByList(ctx, listID)
	if err != nil {
		return goerr.Wrap(err, "failed to load assignees", goerr.V(ListIDKey, listID))
	}
	latest, err := u.repo.Review().Latest(ctx, listID)
	if err != nil {
		return goerr.Wrap(err, "failed to load latest review", goerr.V(ListIDKey, listID))
	}

	next := model.NextAssignee(list, assignees, latest)
	if next == "" {
		return goerr.New("no reviewer available after remediation", goerr.V(ListIDKey, listID))
	}

	return u.assign(ctx, list, next, types.EmailTypeReviewRequired)
}

// dispatchArchiveUpdate pushes changed archiving parameters to the case
// management system in the background. The outcome lands in the audit log
// either way.
func (u *UseCases) dispatchArchiveUpdate(ctx context.Context, list *model.DestructionList, item *model.DestructionListItem, update ItemUpdate) {
	if u.cases == nil {
		_ = errutil.Handle(ctx, goerr.Wrap(ErrNotConfigured, "case service not configured",
			goerr.V(ItemIDKey, item.ID)), "skipping archive update")
		return
	}

	itemID := item.ID
	caseURL := item.CaseURL
	listID := list.ID
	actorID := list.AuthorID

	u.dispatch(ctx, func(ctx context.Context) error {
		archiveUpdate := zaken.ArchiveUpdate{}
		if update.ArchiveActionDate != "" {
			archiveUpdate.ArchiveActionDate = &update.ArchiveActionDate
		}
		if update.ArchiveState != "" {
			archiveUpdate.ArchiveState = &update.ArchiveState
		}

		if _, err := u.cases.UpdateArchiveData(ctx, caseURL, archiveUpdate); err != nil {
			u.audit(ctx, listID, actorID, model.AuditItemUpdateFailed, map[string]any{
				"item_id": itemID,
				"error":   err.Error(),
			})
			return goerr.Wrap(err, "archive update failed", goerr.V(ItemIDKey, itemID))
		}

		u.audit(ctx, listID, actorID, model.AuditItemUpdated, map[string]any{
			"item_id": itemID,
		})
		return nil
	})
}

func completionMessage(list *model.DestructionList, destroyed, failed int) string {
	msg := fmt.Sprintf("Processing of destruction list %q is complete: %d cases destroyed", list.Name, destroyed)
	if failed > 0 {
		msg += fmt.Sprintf(", %d failed", failed)
	}
	return msg
}
