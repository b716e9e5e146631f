package zaken

import (
	"context"
	"fmt"
)

// Service is the client surface of the external case management APIs (ZGW
// Zaken and Documenten). Case URLs are opaque absolute URLs handed to us by
// the caller; only create and search operations need a configured base URL.
type Service interface {
	// FetchCase retrieves the current state of a case
	FetchCase(ctx context.Context, caseURL string) (*Case, error)

	// FetchCaseOutcome resolves the description of the case result, empty
	// when the case has none
	FetchCaseOutcome(ctx context.Context, caseURL string) (string, error)

	// DeleteCase destroys the case and its documents. It returns the total
	// size in bytes of the removed documents.
	DeleteCase(ctx context.Context, caseURL string) (int64, error)

	// UpdateArchiveData modifies the archiving parameters of a case
	UpdateArchiveData(ctx context.Context, caseURL string, update ArchiveUpdate) (*Case, error)

	// CreateCase registers a new case, used for the summary case that
	// documents a finished destruction run
	CreateCase(ctx context.Context, req *CreateCaseRequest) (*Case, error)

	// AddReportDocument uploads the destruction report and relates it to
	// the given case
	AddReportDocument(ctx context.Context, caseURL string, doc *ReportDocument) error

	// SetOutcome attaches a result of the given type to the case
	SetOutcome(ctx context.Context, caseURL, resultTypeURL string) error
}

// Case mirrors the ZGW zaak resource, limited to the fields the workflow
// reads
type Case struct {
	URL                     string        `json:"url"`
	Identification          string        `json:"identificatie"`
	Description             string        `json:"omschrijving"`
	Explanation             string        `json:"toelichting"`
	StartDate               string        `json:"startdatum"`
	EndDate                 string        `json:"einddatum"`
	CaseType                string        `json:"zaaktype"`
	ResponsibleOrganisation string        `json:"verantwoordelijkeOrganisatie"`
	Result                  string        `json:"resultaat"`
	ArchiveActionDate       string        `json:"archiefactiedatum"`
	ArchiveState            string        `json:"archiefnominatie"`
	RelatedCases            []RelatedCase `json:"relevanteAndereZaken"`
}

type RelatedCase struct {
	URL string `json:"url"`
}

// ArchiveUpdate carries the mutable archiving parameters. Nil fields are
// left untouched.
type ArchiveUpdate struct {
	ArchiveActionDate *string `json:"archiefactiedatum,omitempty"`
	ArchiveState      *string `json:"archiefnominatie,omitempty"`
}

type CreateCaseRequest struct {
	CaseType                string `json:"zaaktype"`
	Identification          string `json:"identificatie,omitempty"`
	Description             string `json:"omschrijving"`
	Explanation             string `json:"toelichting,omitempty"`
	Source                  string `json:"bronorganisatie"`
	ResponsibleOrganisation string `json:"verantwoordelijkeOrganisatie"`
	StartDate               string `json:"startdatum"`
}

// ReportDocument is the destruction report to attach to a summary case
type ReportDocument struct {
	Title        string
	FileName     string
	Content      []byte
	ContentType  string
	DocumentType string
	Source       string
}

// ClientError is a structured API error parsed from a ZGW error body. It is
// preserved verbatim on failed destruction items so operators can see what
// the remote service objected to.
type ClientError struct {
	Status        int            `json:"status"`
	Code          string         `json:"code"`
	Title         string         `json:"title"`
	Detail        string         `json:"detail"`
	InvalidParams []InvalidParam `json:"invalidParams,omitempty"`
}

type InvalidParam struct {
	Name   string `json:"name"`
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("zaken API error (%d %s): %s", e.Status, e.Code, e.Detail)
}
