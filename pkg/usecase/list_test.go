package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
	"github.com/openarchief/vernietiging/pkg/usecase"
)

var testCaseURLs = []string{
	"https://zaken.example.nl/zaken/a",
	"https://zaken.example.nl/zaken/b",
	"https://zaken.example.nl/zaken/c",
}

func TestCreateListAssignsFirstReviewer(t *testing.T) {
	repo := newMemoryRepo(t)
	emails := &mockEmail{}
	uc := usecase.New(repo, usecase.WithEmailService(emails))
	ctx := context.Background()

	list, err := uc.CreateList(ctx, authorID, "Archive 2015", false, testCaseURLs,
		[]types.UserID{reviewer1ID, reviewer2ID, archivistID})
	gt.NoError(t, err).Required()

	gt.Value(t, list.Status).Equal(types.ListStatusInProgress)
	gt.Value(t, list.Assignee).Equal(reviewer1ID)

	items, err := repo.Item().ListByList(ctx, list.ID)
	gt.NoError(t, err).Required()
	gt.Array(t, items).Length(3)

	assignees, err := repo.Assignee().ListByList(ctx, list.ID)
	gt.NoError(t, err).Required()
	gt.Array(t, assignees).Length(3)
	gt.Value(t, assignees[0].UserID).Equal(reviewer1ID)
	gt.Value(t, assignees[0].Order).Equal(1)
	gt.B(t, assignees[0].AssignedOn.IsZero()).False()
	gt.Value(t, assignees[2].Order).Equal(3)

	// the first reviewer is notified and emailed
	notifications, err := repo.Notification().ListByUser(ctx, reviewer1ID)
	gt.NoError(t, err).Required()
	gt.Array(t, notifications).Length(1)

	reviewEmails := emails.byType(types.EmailTypeReviewRequired)
	gt.Array(t, reviewEmails).Length(1)
	gt.Value(t, reviewEmails[0].To).Equal("owner1@example.nl")

	audit, err := uc.ListAuditLog(ctx, list.ID)
	gt.NoError(t, err).Required()
	gt.Array(t, audit).Length(1)
	gt.Value(t, audit[0].Event).Equal(model.AuditListCreated)
}

func TestCreateListDeduplicatesReviewers(t *testing.T) {
	repo := newMemoryRepo(t)
	uc := usecase.New(repo)
	ctx := context.Background()

	list, err := uc.CreateList(ctx, authorID, "Archive 2015", false, testCaseURLs,
		[]types.UserID{reviewer1ID, reviewer1ID, reviewer2ID})
	gt.NoError(t, err).Required()

	assignees, err := repo.Assignee().ListByList(ctx, list.ID)
	gt.NoError(t, err).Required()
	gt.Array(t, assignees).Length(2)
	gt.Value(t, assignees[1].Order).Equal(2)
}

func TestCreateListValidation(t *testing.T) {
	repo := newMemoryRepo(t)
	uc := usecase.New(repo)
	ctx := context.Background()

	// unknown author
	_, err := uc.CreateList(ctx, "ghost", "x", false, testCaseURLs, []types.UserID{reviewer1ID})
	gt.B(t, errors.Is(err, usecase.ErrUnauthorized)).True()

	// a reviewer may not start destruction
	_, err = uc.CreateList(ctx, reviewer1ID, "x", false, testCaseURLs, []types.UserID{reviewer2ID})
	gt.B(t, errors.Is(err, usecase.ErrUnauthorized)).True()

	// the author is not a valid reviewer
	_, err = uc.CreateList(ctx, authorID, "x", false, testCaseURLs, []types.UserID{authorID})
	gt.B(t, errors.Is(err, usecase.ErrUnauthorized)).True()

	// no cases
	_, err = uc.CreateList(ctx, authorID, "x", false, nil, []types.UserID{reviewer1ID})
	gt.Error(t, err)

	// no reviewers
	_, err = uc.CreateList(ctx, authorID, "x", false, testCaseURLs, nil)
	gt.Error(t, err)

	// duplicate name
	_, err = uc.CreateList(ctx, authorID, "Archive 2015", false, testCaseURLs, []types.UserID{reviewer1ID})
	gt.NoError(t, err).Required()
	_, err = uc.CreateList(ctx, authorID, "Archive 2015", false, testCaseURLs, []types.UserID{reviewer1ID})
	gt.Error(t, err)
}

func TestAbortList(t *testing.T) {
	repo := newMemoryRepo(t)
	uc := usecase.New(repo)
	ctx := context.Background()

	list, err := uc.CreateList(ctx, authorID, "Archive 2015", false, testCaseURLs,
		[]types.UserID{reviewer1ID})
	gt.NoError(t, err).Required()

	// only the author may abort
	err = uc.AbortList(ctx, list.ID, reviewer1ID)
	gt.B(t, errors.Is(err, usecase.ErrUnauthorized)).True()

	gt.NoError(t, uc.AbortList(ctx, list.ID, authorID)).Required()

	detail, err := uc.GetList(ctx, list.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, detail.List.Status).Equal(types.ListStatusCompleted)
	gt.Value(t, detail.State).Equal(types.ListStateFinished)
	gt.B(t, detail.List.End.IsZero()).False()
	for _, item := range detail.Items {
		gt.Value(t, item.Status).Equal(types.ItemStatusRemoved)
	}

	// aborting twice is a user-facing error
	err = uc.AbortList(ctx, list.ID, authorID)
	gt.B(t, errors.Is(err, usecase.ErrAlreadyCompleted)).True()

	err = uc.AbortList(ctx, 9999, authorID)
	gt.B(t, errors.Is(err, usecase.ErrListNotFound)).True()
}

func TestUpdateListRestartsReviewChain(t *testing.T) {
	repo := newMemoryRepo(t)
	emails := &mockEmail{}
	cases := newMockCases()
	uc := usecase.New(repo, usecase.WithEmailService(emails), usecase.WithCaseService(cases))
	usecase.SetSyncDispatch(uc)
	ctx := context.Background()

	list, err := uc.CreateList(ctx, authorID, "Archive 2015", false, testCaseURLs,
		[]types.UserID{reviewer1ID, reviewer2ID})
	gt.NoError(t, err).Required()

	items, err := repo.Item().ListByList(ctx, list.ID)
	gt.NoError(t, err).Required()

	// not under remediation yet
	err = uc.UpdateList(ctx, list.ID, authorID, nil)
	gt.B(t, errors.Is(err, usecase.ErrUnauthorized)).True()

	_, err = uc.SubmitReview(ctx, usecase.SubmitReviewInput{
		ListID:     list.ID,
		ReviewerID: reviewer1ID,
		Decision:   types.ReviewStatusChangesRequested,
		Items: []usecase.ItemSuggestion{
			{ItemID: items[0].ID, Suggestion: types.SuggestionRemove, Comment: "wrong case"},
			{ItemID: items[1].ID, Suggestion: types.SuggestionChangeAndRemove},
		},
	})
	gt.NoError(t, err).Required()

	err = uc.UpdateList(ctx, list.ID, authorID, []usecase.ItemUpdate{
		{ItemID: items[0].ID, Remove: true},
		{ItemID: items[1].ID, Remove: true, ArchiveActionDate: "2030-01-01"},
	})
	gt.NoError(t, err).Required()

	detail, err := uc.GetList(ctx, list.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, detail.List.Assignee).Equal(reviewer1ID)
	gt.Value(t, detail.State).Equal(types.ListStateInProgress)
	gt.Value(t, detail.Items[0].Status).Equal(types.ItemStatusRemoved)
	gt.Value(t, detail.Items[1].Status).Equal(types.ItemStatusRemoved)
	gt.Value(t, detail.Items[2].Status).Equal(types.ItemStatusSuggested)

	// the archive-data change was pushed to the case management system
	gt.Array(t, cases.archiveCalls).Length(1)
	gt.Value(t, cases.archiveCalls[0]).Equal(items[1].CaseURL)

	// the restarted chain emails the first reviewer again
	reviewEmails := emails.byType(types.EmailTypeReviewRequired)
	gt.Array(t, reviewEmails).Length(2)
}
