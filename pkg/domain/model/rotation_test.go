package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
)

func rotationFixture() (*model.DestructionList, []*model.Assignee) {
	list := &model.DestructionList{
		ID:       1,
		Name:     "Archive 2016",
		AuthorID: "record-manager",
		Status:   types.ListStatusInProgress,
	}
	assignees := []*model.Assignee{
		{ListID: 1, UserID: "reviewer-1", Order: 1},
		{ListID: 1, UserID: "reviewer-2", Order: 2},
	}
	return list, assignees
}

func TestNextAssignee(t *testing.T) {
	t.Run("no review yet returns first reviewer", func(t *testing.T) {
		list, assignees := rotationFixture()
		gt.Value(t, model.NextAssignee(list, assignees, nil)).Equal(types.UserID("reviewer-1"))
	})

	t.Run("after first approval returns second reviewer", func(t *testing.T) {
		list, assignees := rotationFixture()
		list.Assignee = "reviewer-1"
		review := &model.Review{ListID: 1, AuthorID: "reviewer-1", Decision: types.ReviewStatusApproved}
		gt.Value(t, model.NextAssignee(list, assignees, review)).Equal(types.UserID("reviewer-2"))
	})

	t.Run("after last approval chain is exhausted", func(t *testing.T) {
		list, assignees := rotationFixture()
		list.Assignee = "reviewer-2"
		review := &model.Review{ListID: 1, AuthorID: "reviewer-2", Decision: types.ReviewStatusApproved}
		gt.Value(t, model.NextAssignee(list, assignees, review)).Equal(types.UserID(""))
	})

	t.Run("changes requested routes back to author", func(t *testing.T) {
		list, assignees := rotationFixture()
		list.Assignee = "reviewer-1"
		review := &model.Review{ListID: 1, AuthorID: "reviewer-1", Decision: types.ReviewStatusChangesRequested}
		gt.Value(t, model.NextAssignee(list, assignees, review)).Equal(types.UserID("record-manager"))
	})

	t.Run("rejection routes back to author", func(t *testing.T) {
		list, assignees := rotationFixture()
		list.Assignee = "reviewer-2"
		review := &model.Review{ListID: 1, AuthorID: "reviewer-2", Decision: types.ReviewStatusRejected}
		gt.Value(t, model.NextAssignee(list, assignees, review)).Equal(types.UserID("record-manager"))
	})

	t.Run("author as current assignee restarts the chain", func(t *testing.T) {
		list, assignees := rotationFixture()
		list.Assignee = "record-manager"
		review := &model.Review{ListID: 1, AuthorID: "reviewer-2", Decision: types.ReviewStatusRejected}
		gt.Value(t, model.NextAssignee(list, assignees, review)).Equal(types.UserID("reviewer-1"))
	})

	t.Run("deterministic for same input", func(t *testing.T) {
		list, assignees := rotationFixture()
		list.Assignee = "reviewer-1"
		review := &model.Review{ListID: 1, AuthorID: "reviewer-1", Decision: types.ReviewStatusApproved}

		first := model.NextAssignee(list, assignees, review)
		for range 10 {
			gt.Value(t, model.NextAssignee(list, assignees, review)).Equal(first)
		}
	})

	t.Run("unsorted assignee input", func(t *testing.T) {
		list, _ := rotationFixture()
		assignees := []*model.Assignee{
			{ListID: 1, UserID: "reviewer-2", Order: 2},
			{ListID: 1, UserID: "reviewer-1", Order: 1},
		}
		gt.Value(t, model.NextAssignee(list, assignees, nil)).Equal(types.UserID("reviewer-1"))
	})

	t.Run("no assignees", func(t *testing.T) {
		list, _ := rotationFixture()
		gt.Value(t, model.NextAssignee(list, nil, nil)).Equal(types.UserID(""))
	})
}
