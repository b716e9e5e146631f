package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/openarchief/vernietiging/pkg/domain/types"
)

// DestructionList groups candidate cases for one destruction run. The list
// and its items are created together by the record manager; the status field
// only ever moves along the declared transition graph.
type DestructionList struct {
	ID       types.ListID
	Name     string
	AuthorID types.UserID
	// Assignee is the user currently empowered to act: empty, the author
	// (during remediation) or one of the ordered reviewers.
	Assignee types.UserID
	Status   types.ListStatus
	Created  time.Time
	// End is set when processing finishes
	End time.Time
	// ContainsSensitiveInfo controls redaction of case descriptions and
	// archivist remarks in the destruction report
	ContainsSensitiveInfo bool
	// CaseURL points at the summary case created after processing, when
	// that stage is enabled
	CaseURL string
}

// NewDestructionList returns a list in its initial status
func NewDestructionList(name string, authorID types.UserID, sensitive bool) *DestructionList {
	return &DestructionList{
		Name:                  name,
		AuthorID:              authorID,
		Status:                types.ListStatusInProgress,
		ContainsSensitiveInfo: sensitive,
	}
}

func (l *DestructionList) setStatus(target types.ListStatus) error {
	if !l.Status.CanTransition(target) {
		return goerr.Wrap(types.ErrInvalidTransition, "destruction list",
			goerr.V("list_id", l.ID),
			goerr.V("from", l.Status),
			goerr.V("to", target))
	}
	l.Status = target
	return nil
}

// Process moves the list into the processing status. Legal exactly once,
// from InProgress.
func (l *DestructionList) Process() error {
	return l.setStatus(types.ListStatusProcessing)
}

// Complete finishes the list: stamps the end time and clears the assignee.
// Legal only from Processing.
func (l *DestructionList) Complete() error {
	if err := l.setStatus(types.ListStatusCompleted); err != nil {
		return err
	}
	l.End = time.Now().UTC()
	l.Assignee = ""
	return nil
}

// State derives the display state from the lifecycle status, the current
// assignee and the latest review. It is computed on demand, never stored.
func (l *DestructionList) State(latest *Review) types.ListState {
	if l.Status == types.ListStatusCompleted {
		return types.ListStateFinished
	}

	if l.Assignee == "" {
		return types.ListStateApproved
	}

	if l.Assignee == l.AuthorID && latest != nil {
		switch latest.Decision {
		case types.ReviewStatusChangesRequested:
			return types.ListStateChangesRequested
		case types.ReviewStatusRejected:
			return types.ListStateRejected
		}
	}

	return types.ListStateInProgress
}
