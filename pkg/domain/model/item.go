package model

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/openarchief/vernietiging/pkg/domain/types"
)

// CaseSnapshot captures the fields of a case at the moment of destruction.
// It is the only record of the case that survives, and is the sole input of
// the destruction report.
type CaseSnapshot struct {
	Identification          string
	Description             string
	Explanation             string
	StartDate               string
	EndDate                 string
	CaseType                string
	ResponsibleOrganisation string
	Outcome                 string
	RelatedCases            []string
	BytesRemovedDocuments   int64
}

// DestructionListItem is one destruction candidate: a reference to an
// external case by its opaque URL. The (list, case URL) pair is unique.
type DestructionListItem struct {
	ID      types.ItemID
	ListID  types.ListID
	CaseURL string
	Status  types.ItemStatus
	// Snapshot is populated only on successful destruction
	Snapshot *CaseSnapshot
	// FailureDetail holds the structured client error for failed items
	FailureDetail string
}

// NewDestructionListItem returns an item in its initial status
func NewDestructionListItem(listID types.ListID, caseURL string) *DestructionListItem {
	return &DestructionListItem{
		ListID:  listID,
		CaseURL: caseURL,
		Status:  types.ItemStatusSuggested,
	}
}

func (i *DestructionListItem) setStatus(target types.ItemStatus) error {
	if !i.Status.CanTransition(target) {
		return goerr.Wrap(types.ErrInvalidTransition, "destruction list item",
			goerr.V("item_id", i.ID),
			goerr.V("from", i.Status),
			goerr.V("to", target))
	}
	i.Status = target
	return nil
}

// Remove takes the item off the list during review
func (i *DestructionListItem) Remove() error {
	return i.setStatus(types.ItemStatusRemoved)
}

// Process marks the item as being destroyed
func (i *DestructionListItem) Process() error {
	return i.setStatus(types.ItemStatusProcessing)
}

// Complete marks the destruction as succeeded and captures the case snapshot
func (i *DestructionListItem) Complete(snapshot *CaseSnapshot) error {
	if err := i.setStatus(types.ItemStatusDestroyed); err != nil {
		return err
	}
	i.Snapshot = snapshot
	return nil
}

// Fail marks the destruction as failed and records the error detail
func (i *DestructionListItem) Fail(detail string) error {
	if err := i.setStatus(types.ItemStatusFailed); err != nil {
		return err
	}
	i.FailureDetail = detail
	return nil
}
