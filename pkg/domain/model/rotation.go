package model

import "github.com/openarchief/vernietiging/pkg/domain/types"

// NextAssignee computes who must act on the list next. It is a pure
// function: no side effects, deterministic for the same inputs. The caller
// persists the result, stamps AssignedOn and emits notifications.
//
// An empty return value means the approval chain is exhausted and the list
// is ready for execution.
func NextAssignee(list *DestructionList, assignees []*Assignee, latest *Review) types.UserID {
	if len(assignees) == 0 {
		return ""
	}

	ordered := make([]*Assignee, len(assignees))
	copy(ordered, assignees)
	SortAssignees(ordered)

	// After any review cycle returns to the author, the chain restarts from
	// the first reviewer.
	if list.Assignee == list.AuthorID {
		return ordered[0].UserID
	}

	// First assignment ever
	if latest == nil {
		return ordered[0].UserID
	}

	// Any non-approval routes control back to the author for remediation
	if latest.Decision != types.ReviewStatusApproved {
		return list.AuthorID
	}

	for idx, assignee := range ordered {
		if assignee.UserID == latest.AuthorID {
			if idx+1 < len(ordered) {
				return ordered[idx+1].UserID
			}
			break
		}
	}

	// All reviewers approved
	return ""
}
