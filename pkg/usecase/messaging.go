package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
	"github.com/openarchief/vernietiging/pkg/service/email"
	"github.com/openarchief/vernietiging/pkg/utils/errutil"
)

func (u *UseCases) listURL(listID types.ListID) string {
	if u.settings.BaseURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/lists/%d", u.settings.BaseURL, listID)
}

// notifyUser stores an in-app notification. Failures are logged but never
// fail the calling workflow step.
func (u *UseCases) notifyUser(ctx context.Context, listID types.ListID, userID types.UserID, message string) {
	if userID == "" {
		return
	}
	if err := u.notifier.Notify(ctx, listID, userID, message); err != nil {
		_ = errutil.Handle(ctx, err, "failed to store notification")
	}
}

// sendEmail delivers one of the automatic emails to a user. Failures,
// including unknown recipients and a missing email service, are logged and
// swallowed: email is a courtesy channel, never a workflow dependency.
func (u *UseCases) sendEmail(ctx context.Context, emailType types.EmailType, userID types.UserID, list *model.DestructionList, daysOverdue int) {
	if u.emails == nil || userID == "" {
		return
	}

	user, err := u.repo.User().Get(ctx, userID)
	if err != nil {
		_ = errutil.Handle(ctx, goerr.Wrap(err, "unknown email recipient",
			goerr.V(UserIDKey, userID)), "skipping email")
		return
	}
	if user.Email == "" {
		return
	}

	author := string(list.AuthorID)
	if authorUser, err := u.repo.User().Get(ctx, list.AuthorID); err == nil {
		author = authorUser.Name
	}

	data := email.ListContext{
		ListName:      list.Name,
		ListURL:       u.listURL(list.ID),
		RecipientName: user.Name,
		AuthorName:    author,
		DaysOverdue:   daysOverdue,
	}
	if err := u.emails.Send(ctx, emailType, user.Email, data); err != nil {
		_ = errutil.Handle(ctx, err, "failed to send email")
	}
}

// assign hands the list to the given user: persists the assignee on the
// list, stamps the reviewer row when the user is one of the reviewers, and
// emits the notification and email for the hand-over.
func (u *UseCases) assign(ctx context.Context, list *model.DestructionList, userID types.UserID, emailType types.EmailType) error {
	list.Assignee = userID
	updated, err := u.repo.List().Update(ctx, list)
	if err != nil {
		return goerr.Wrap(err, "failed to assign list",
			goerr.V(ListIDKey, list.ID),
			goerr.V(UserIDKey, userID))
	}
	*list = *updated

	// The author has no reviewer row; only reviewers carry the reminder
	// bookkeeping.
	if row, err := u.repo.Assignee().GetByUser(ctx, list.ID, userID); err == nil {
		row.AssignedOn = time.Now().UTC()
		row.ReminderSent = false
		if _, err := u.repo.Assignee().Update(ctx, row); err != nil {
			return goerr.Wrap(err, "failed to stamp assignee",
				goerr.V(ListIDKey, list.ID),
				goerr.V(UserIDKey, userID))
		}
	}

	u.notifyUser(ctx, list.ID, userID, fmt.Sprintf("Destruction list %q has been assigned to you", list.Name))
	u.sendEmail(ctx, emailType, userID, list, 0)

	return nil
}

func (u *UseCases) audit(ctx context.Context, listID types.ListID, actorID types.UserID, event model.AuditEvent, details map[string]any) {
	entry := &model.AuditEntry{
		ListID:  listID,
		ActorID: actorID,
		Event:   event,
		Details: details,
	}
	if _, err := u.repo.Audit().Append(ctx, entry); err != nil {
		_ = errutil.Handle(ctx, err, "failed to append audit entry")
	}
}
