package model

import (
	"sort"
	"time"

	"github.com/openarchief/vernietiging/pkg/domain/types"
)

// Assignee is an ordered membership record tying a reviewer to a list.
// Orders form a contiguous ascending sequence starting at 1, with exactly
// one entry per distinct reviewer.
type Assignee struct {
	ID     types.AssigneeID
	ListID types.ListID
	UserID types.UserID
	Order  int
	// AssignedOn is stamped whenever this user becomes the current assignee
	AssignedOn time.Time
	// ReminderSent makes the overdue-review reminder idempotent per
	// (list, assignee)
	ReminderSent bool
}

// NewAssignees builds the assignee rows for a list from the chosen reviewer
// set. Duplicates are dropped, order follows selection order and is
// renumbered from 1.
func NewAssignees(listID types.ListID, reviewerIDs []types.UserID) []*Assignee {
	seen := make(map[types.UserID]bool, len(reviewerIDs))
	var assignees []*Assignee

	for _, userID := range reviewerIDs {
		if userID == "" || seen[userID] {
			continue
		}
		seen[userID] = true
		assignees = append(assignees, &Assignee{
			ListID: listID,
			UserID: userID,
			Order:  len(assignees) + 1,
		})
	}

	return assignees
}

// SortAssignees orders the entries by their review order
func SortAssignees(assignees []*Assignee) {
	sort.Slice(assignees, func(i, j int) bool {
		return assignees[i].Order < assignees[j].Order
	})
}
