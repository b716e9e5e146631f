package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/openarchief/vernietiging/pkg/domain/types"
	"github.com/openarchief/vernietiging/pkg/utils/logging"
)

// CheckReviewReminders sweeps all lists waiting on a reviewer and emails the
// reviewers whose assignment is older than the configured number of days.
// The ReminderSent flag makes the sweep idempotent per list and assignee: a
// reviewer is reminded at most once per assignment. It returns the number of
// reminders sent.
func (u *UseCases) CheckReviewReminders(ctx context.Context) (int, error) {
	lists, err := u.repo.List().List(ctx)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to load lists")
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -u.settings.DaysUntilReminder)
	var sent int

	for _, list := range lists {
		if list.Status != types.ListStatusInProgress {
			continue
		}
		// Remediation by the author is not a review and gets no reminder
		if list.Assignee == "" || list.Assignee == list.AuthorID {
			continue
		}

		assignee, err := u.repo.Assignee().GetByUser(ctx, list.ID, list.Assignee)
		if err != nil {
			logging.From(ctx).Warn("current assignee has no reviewer entry, skipping",
				slog.Int64("list_id", int64(list.ID)),
				slog.String("user_id", string(list.Assignee)))
			continue
		}

		if assignee.ReminderSent || assignee.AssignedOn.IsZero() || assignee.AssignedOn.After(cutoff) {
			continue
		}

		daysOverdue := int(time.Since(assignee.AssignedOn).Hours() / 24)
		u.sendEmail(ctx, types.EmailTypeReviewReminder, assignee.UserID, list, daysOverdue)

		assignee.ReminderSent = true
		if _, err := u.repo.Assignee().Update(ctx, assignee); err != nil {
			return sent, goerr.Wrap(err, "failed to mark reminder as sent",
				goerr.V(ListIDKey, list.ID),
				goerr.V(UserIDKey, assignee.UserID))
		}
		sent++
	}

	return sent, nil
}
