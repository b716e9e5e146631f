package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
)

func TestDestructionList_Transitions(t *testing.T) {
	t.Run("full lifecycle", func(t *testing.T) {
		list := model.NewDestructionList("Archive 2016", "record-manager", false)
		gt.Value(t, list.Status).Equal(types.ListStatusInProgress)

		gt.NoError(t, list.Process())
		gt.Value(t, list.Status).Equal(types.ListStatusProcessing)

		list.Assignee = "reviewer-1"
		gt.NoError(t, list.Complete())
		gt.Value(t, list.Status).Equal(types.ListStatusCompleted)
		gt.B(t, list.End.IsZero()).False()
		gt.Value(t, list.Assignee).Equal(types.UserID(""))
	})

	t.Run("complete from in progress is rejected", func(t *testing.T) {
		list := model.NewDestructionList("Archive 2016", "record-manager", false)
		err := list.Complete()
		gt.Error(t, err)
		gt.B(t, errors.Is(err, types.ErrInvalidTransition)).True()
		// state unchanged
		gt.Value(t, list.Status).Equal(types.ListStatusInProgress)
		gt.B(t, list.End.IsZero()).True()
	})

	t.Run("process twice is rejected", func(t *testing.T) {
		list := model.NewDestructionList("Archive 2016", "record-manager", false)
		gt.NoError(t, list.Process())
		err := list.Process()
		gt.Error(t, err)
		gt.B(t, errors.Is(err, types.ErrInvalidTransition)).True()
		gt.Value(t, list.Status).Equal(types.ListStatusProcessing)
	})
}

func TestDestructionList_State(t *testing.T) {
	author := types.UserID("record-manager")

	t.Run("completed list is finished", func(t *testing.T) {
		list := &model.DestructionList{AuthorID: author, Status: types.ListStatusCompleted}
		gt.Value(t, list.State(nil)).Equal(types.ListStateFinished)
	})

	t.Run("no assignee means approved", func(t *testing.T) {
		list := &model.DestructionList{AuthorID: author, Status: types.ListStatusInProgress}
		gt.Value(t, list.State(nil)).Equal(types.ListStateApproved)
	})

	t.Run("author assigned after changes requested", func(t *testing.T) {
		list := &model.DestructionList{AuthorID: author, Assignee: author, Status: types.ListStatusInProgress}
		latest := &model.Review{Decision: types.ReviewStatusChangesRequested}
		gt.Value(t, list.State(latest)).Equal(types.ListStateChangesRequested)
	})

	t.Run("author assigned after rejection", func(t *testing.T) {
		list := &model.DestructionList{AuthorID: author, Assignee: author, Status: types.ListStatusInProgress}
		latest := &model.Review{Decision: types.ReviewStatusRejected}
		gt.Value(t, list.State(latest)).Equal(types.ListStateRejected)
	})

	t.Run("reviewer assigned means in progress", func(t *testing.T) {
		list := &model.DestructionList{AuthorID: author, Assignee: "reviewer-1", Status: types.ListStatusInProgress}
		latest := &model.Review{Decision: types.ReviewStatusApproved}
		gt.Value(t, list.State(latest)).Equal(types.ListStateInProgress)
	})
}
