package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	controller "github.com/openarchief/vernietiging/pkg/controller/http"
	"github.com/openarchief/vernietiging/pkg/domain/interfaces"
	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
	"github.com/openarchief/vernietiging/pkg/repository/memory"
	"github.com/openarchief/vernietiging/pkg/usecase"
)

func newTestServer(t *testing.T) (*controller.Server, interfaces.Repository) {
	t.Helper()

	repo := memory.New()
	ctx := context.Background()
	users := []*model.User{
		{
			ID: "record-manager", Name: "R. Manager", Email: "manager@example.nl",
			Role: model.Role{Type: types.RoleTypeRecordManager, CanStartDestruction: true},
		},
		{
			ID: "reviewer-1", Name: "P. Owner", Email: "owner@example.nl",
			Role: model.Role{Type: types.RoleTypeProcessOwner, CanReviewDestruction: true},
		},
	}
	for _, user := range users {
		gt.NoError(t, repo.User().Save(ctx, user)).Required()
	}

	return controller.New(usecase.New(repo)), repo
}

func doJSON(t *testing.T, srv http.Handler, method, path, actor string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		gt.NoError(t, err).Required()
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if actor != "" {
		req.Header.Set("X-User-ID", actor)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func createListViaAPI(t *testing.T, srv http.Handler) int64 {
	t.Helper()

	rec := doJSON(t, srv, http.MethodPost, "/api/lists", "record-manager", map[string]any{
		"name":         "Archive 2015",
		"case_urls":    []string{"https://zaken.example.nl/zaken/a", "https://zaken.example.nl/zaken/b"},
		"reviewer_ids": []string{"reviewer-1"},
	})
	gt.Value(t, rec.Code).Equal(http.StatusCreated)

	var list struct {
		ID int64 `json:"ID"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list)).Required()
	gt.B(t, list.ID > 0).True()
	return list.ID
}

func TestRequiresActorHeader(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/lists", "", nil)
	gt.Value(t, rec.Code).Equal(http.StatusUnauthorized)
}

func TestHealthEndpointIsPublic(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/health", "", nil)
	gt.Value(t, rec.Code).Equal(http.StatusOK)
}

func TestCreateAndGetList(t *testing.T) {
	srv, _ := newTestServer(t)

	listID := createListViaAPI(t, srv)

	rec := doJSON(t, srv, http.MethodGet, "/api/lists/1", "record-manager", nil)
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var detail struct {
		State string `json:"State"`
		Items []any  `json:"Items"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail)).Required()
	gt.Value(t, detail.State).Equal("in_progress")
	gt.Array(t, detail.Items).Length(2)

	rec = doJSON(t, srv, http.MethodGet, "/api/lists/9999", "record-manager", nil)
	gt.Value(t, rec.Code).Equal(http.StatusNotFound)

	_ = listID
}

func TestCreateListForbiddenForReviewer(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/lists", "reviewer-1", map[string]any{
		"name":         "x",
		"case_urls":    []string{"https://zaken.example.nl/zaken/a"},
		"reviewer_ids": []string{"reviewer-1"},
	})
	gt.Value(t, rec.Code).Equal(http.StatusForbidden)
}

func TestSubmitReviewEndpoint(t *testing.T) {
	srv, repo := newTestServer(t)

	createListViaAPI(t, srv)

	rec := doJSON(t, srv, http.MethodPost, "/api/lists/1/reviews", "reviewer-1", map[string]any{
		"decision": "changes_requested",
		"comment":  "case b is still open",
		"items": []map[string]any{
			{"item_id": 2, "suggestion": "remove", "comment": "still open"},
		},
	})
	gt.Value(t, rec.Code).Equal(http.StatusCreated)

	list, err := repo.List().Get(context.Background(), 1)
	gt.NoError(t, err).Required()
	gt.Value(t, list.Assignee).Equal(types.UserID("record-manager"))

	// out of turn now
	rec = doJSON(t, srv, http.MethodPost, "/api/lists/1/reviews", "reviewer-1", map[string]any{
		"decision": "approved",
	})
	gt.Value(t, rec.Code).Equal(http.StatusForbidden)

	// bad decision value
	rec = doJSON(t, srv, http.MethodPost, "/api/lists/1/reviews", "reviewer-1", map[string]any{
		"decision": "maybe",
	})
	gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
}

func TestAbortListEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	createListViaAPI(t, srv)

	rec := doJSON(t, srv, http.MethodPost, "/api/lists/1/abort", "reviewer-1", nil)
	gt.Value(t, rec.Code).Equal(http.StatusForbidden)

	rec = doJSON(t, srv, http.MethodPost, "/api/lists/1/abort", "record-manager", nil)
	gt.Value(t, rec.Code).Equal(http.StatusNoContent)

	// aborting twice conflicts
	rec = doJSON(t, srv, http.MethodPost, "/api/lists/1/abort", "record-manager", nil)
	gt.Value(t, rec.Code).Equal(http.StatusConflict)
}

func TestProcessEndpointAccepts(t *testing.T) {
	srv, _ := newTestServer(t)

	createListViaAPI(t, srv)

	rec := doJSON(t, srv, http.MethodPost, "/api/lists/1/process", "record-manager", nil)
	gt.Value(t, rec.Code).Equal(http.StatusAccepted)
}

func TestNotificationsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	createListViaAPI(t, srv)

	// creating the list notified the first reviewer
	rec := doJSON(t, srv, http.MethodGet, "/api/notifications", "reviewer-1", nil)
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var notifications []struct {
		Message string `json:"Message"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notifications)).Required()
	gt.Array(t, notifications).Length(1)
}

func TestReportEndpointWithoutStore(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/reports?path=reports/list-1/x.pdf", "record-manager", nil)
	gt.Value(t, rec.Code).Equal(http.StatusServiceUnavailable)

	rec = doJSON(t, srv, http.MethodGet, "/api/reports", "record-manager", nil)
	gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
}
