package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/openarchief/vernietiging/pkg/domain/interfaces"
	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
	"github.com/openarchief/vernietiging/pkg/repository/memory"
	"github.com/openarchief/vernietiging/pkg/service/email"
	"github.com/openarchief/vernietiging/pkg/service/zaken"
)

const (
	authorID    = types.UserID("record-manager")
	reviewer1ID = types.UserID("process-owner-1")
	reviewer2ID = types.UserID("process-owner-2")
	archivistID = types.UserID("archivist-1")
)

func seedUsers(t *testing.T, repo interfaces.Repository) {
	t.Helper()
	ctx := context.Background()

	users := []*model.User{
		{
			ID: authorID, Name: "R. Manager", Email: "manager@example.nl",
			Role: model.Role{Type: types.RoleTypeRecordManager, CanStartDestruction: true},
		},
		{
			ID: reviewer1ID, Name: "P. Owner", Email: "owner1@example.nl",
			Role: model.Role{Type: types.RoleTypeProcessOwner, CanReviewDestruction: true},
		},
		{
			ID: reviewer2ID, Name: "Q. Owner", Email: "owner2@example.nl",
			Role: model.Role{Type: types.RoleTypeProcessOwner, CanReviewDestruction: true},
		},
		{
			ID: archivistID, Name: "A. Archivist", Email: "archivist@example.nl",
			Role: model.Role{Type: types.RoleTypeArchivist, CanReviewDestruction: true},
		},
	}
	for _, user := range users {
		gt.NoError(t, repo.User().Save(ctx, user)).Required()
	}
}

// sentEmail is one captured outgoing email
type sentEmail struct {
	Type types.EmailType
	To   string
	Data email.ListContext
}

// mockEmail captures emails instead of sending them
type mockEmail struct {
	mu   sync.Mutex
	sent []sentEmail
}

var _ email.Service = &mockEmail{}

func (m *mockEmail) Send(_ context.Context, emailType types.EmailType, to string, data email.ListContext) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentEmail{Type: emailType, To: to, Data: data})
	return nil
}

func (m *mockEmail) byType(emailType types.EmailType) []sentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []sentEmail
	for _, s := range m.sent {
		if s.Type == emailType {
			out = append(out, s)
		}
	}
	return out
}

// mockCases is a scriptable stand-in for the external case management API
type mockCases struct {
	mu        sync.Mutex
	cases     map[string]*zaken.Case
	outcomes  map[string]string
	sizes     map[string]int64
	deleteErr map[string]error
	deleted   []string

	created      []*zaken.CreateCaseRequest
	createdURL   string
	addedDocs    []*zaken.ReportDocument
	outcomesSet  []string
	archiveCalls []string
}

var _ zaken.Service = &mockCases{}

func newMockCases() *mockCases {
	return &mockCases{
		cases:      map[string]*zaken.Case{},
		outcomes:   map[string]string{},
		sizes:      map[string]int64{},
		deleteErr:  map[string]error{},
		createdURL: "https://zaken.example.nl/zaken/summary",
	}
}

func (m *mockCases) addCase(caseURL, identification string, size int64) {
	m.cases[caseURL] = &zaken.Case{
		URL:            caseURL,
		Identification: identification,
		Description:    "case " + identification,
		StartDate:      "2010-01-01",
		EndDate:        "2015-06-30",
		CaseType:       "https://catalogi.example.nl/zaaktypen/1",
	}
	m.sizes[caseURL] = size
	m.outcomes[caseURL] = "granted"
}

func (m *mockCases) FetchCase(_ context.Context, caseURL string) (*zaken.Case, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	zaak, ok := m.cases[caseURL]
	if !ok {
		return nil, &zaken.ClientError{Status: 404, Code: "not_found", Detail: "case does not exist"}
	}
	return zaak, nil
}

func (m *mockCases) FetchCaseOutcome(_ context.Context, caseURL string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.outcomes[caseURL], nil
}

func (m *mockCases) DeleteCase(_ context.Context, caseURL string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.deleteErr[caseURL]; err != nil {
		return 0, err
	}
	m.deleted = append(m.deleted, caseURL)
	return m.sizes[caseURL], nil
}

func (m *mockCases) UpdateArchiveData(_ context.Context, caseURL string, _ zaken.ArchiveUpdate) (*zaken.Case, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.archiveCalls = append(m.archiveCalls, caseURL)
	if zaak, ok := m.cases[caseURL]; ok {
		return zaak, nil
	}
	return &zaken.Case{URL: caseURL}, nil
}

func (m *mockCases) CreateCase(_ context.Context, req *zaken.CreateCaseRequest) (*zaken.Case, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, req)
	return &zaken.Case{URL: m.createdURL, CaseType: req.CaseType}, nil
}

func (m *mockCases) AddReportDocument(_ context.Context, _ string, doc *zaken.ReportDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addedDocs = append(m.addedDocs, doc)
	return nil
}

func (m *mockCases) SetOutcome(_ context.Context, caseURL, resultTypeURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomesSet = append(m.outcomesSet, resultTypeURL)
	return nil
}

func (m *mockCases) deletedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.deleted)
}

func newMemoryRepo(t *testing.T) interfaces.Repository {
	t.Helper()
	repo := memory.New()
	seedUsers(t, repo)
	return repo
}
