package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
)

func TestNewAssignees(t *testing.T) {
	t.Run("selection order becomes review order", func(t *testing.T) {
		assignees := model.NewAssignees(7, []types.UserID{"r2", "r1", "r3"})
		gt.Array(t, assignees).Length(3)
		gt.Value(t, assignees[0].UserID).Equal(types.UserID("r2"))
		gt.Value(t, assignees[0].Order).Equal(1)
		gt.Value(t, assignees[1].UserID).Equal(types.UserID("r1"))
		gt.Value(t, assignees[1].Order).Equal(2)
		gt.Value(t, assignees[2].UserID).Equal(types.UserID("r3"))
		gt.Value(t, assignees[2].Order).Equal(3)
	})

	t.Run("duplicates are dropped keeping contiguous orders", func(t *testing.T) {
		assignees := model.NewAssignees(7, []types.UserID{"r1", "r2", "r1", "r2"})
		gt.Array(t, assignees).Length(2)
		gt.Value(t, assignees[0].Order).Equal(1)
		gt.Value(t, assignees[1].Order).Equal(2)
	})

	t.Run("empty user ids are skipped", func(t *testing.T) {
		assignees := model.NewAssignees(7, []types.UserID{"", "r1"})
		gt.Array(t, assignees).Length(1)
		gt.Value(t, assignees[0].UserID).Equal(types.UserID("r1"))
	})
}

func TestSortAssignees(t *testing.T) {
	assignees := []*model.Assignee{
		{UserID: "r3", Order: 3},
		{UserID: "r1", Order: 1},
		{UserID: "r2", Order: 2},
	}
	model.SortAssignees(assignees)
	gt.Value(t, assignees[0].UserID).Equal(types.UserID("r1"))
	gt.Value(t, assignees[2].UserID).Equal(types.UserID("r3"))
}
