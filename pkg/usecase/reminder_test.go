package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/openarchief/vernietiging/pkg/domain/types"
	"github.com/openarchief/vernietiging/pkg/usecase"
)

func TestCheckReviewRemindersSendsOnce(t *testing.T) {
	repo := newMemoryRepo(t)
	emails := &mockEmail{}
	uc := usecase.New(repo, usecase.WithEmailService(emails))
	ctx := context.Background()

	list, err := uc.CreateList(ctx, authorID, "Archive 2015", false, testCaseURLs,
		[]types.UserID{reviewer1ID})
	gt.NoError(t, err).Required()

	// backdate the assignment past the reminder threshold
	assignee, err := repo.Assignee().GetByUser(ctx, list.ID, reviewer1ID)
	gt.NoError(t, err).Required()
	assignee.AssignedOn = time.Now().UTC().AddDate(0, 0, -10)
	_, err = repo.Assignee().Update(ctx, assignee)
	gt.NoError(t, err).Required()

	sent, err := uc.CheckReviewReminders(ctx)
	gt.NoError(t, err).Required()
	gt.Value(t, sent).Equal(1)

	reminders := emails.byType(types.EmailTypeReviewReminder)
	gt.Array(t, reminders).Length(1)
	gt.Value(t, reminders[0].To).Equal("owner1@example.nl")
	gt.B(t, reminders[0].Data.DaysOverdue >= 10).True()

	// the flag makes the sweep idempotent
	sent, err = uc.CheckReviewReminders(ctx)
	gt.NoError(t, err).Required()
	gt.Value(t, sent).Equal(0)
	gt.Array(t, emails.byType(types.EmailTypeReviewReminder)).Length(1)
}

func TestCheckReviewRemindersSkipsFreshAndRemediation(t *testing.T) {
	repo := newMemoryRepo(t)
	emails := &mockEmail{}
	uc := usecase.New(repo, usecase.WithEmailService(emails))
	ctx := context.Background()

	// freshly assigned list, no reminder yet
	fresh, err := uc.CreateList(ctx, authorID, "Archive 2015", false, testCaseURLs,
		[]types.UserID{reviewer1ID})
	gt.NoError(t, err).Required()

	// list under remediation by its author, never reminded
	remediation, err := uc.CreateList(ctx, authorID, "Archive 2016", false, testCaseURLs,
		[]types.UserID{reviewer2ID})
	gt.NoError(t, err).Required()
	_, err = uc.SubmitReview(ctx, usecase.SubmitReviewInput{
		ListID: remediation.ID, ReviewerID: reviewer2ID, Decision: types.ReviewStatusChangesRequested,
	})
	gt.NoError(t, err).Required()

	sent, err := uc.CheckReviewReminders(ctx)
	gt.NoError(t, err).Required()
	gt.Value(t, sent).Equal(0)
	gt.Array(t, emails.byType(types.EmailTypeReviewReminder)).Length(0)

	// a re-assignment resets the reminder bookkeeping
	assignee, err := repo.Assignee().GetByUser(ctx, fresh.ID, reviewer1ID)
	gt.NoError(t, err).Required()
	gt.B(t, assignee.ReminderSent).False()
}
