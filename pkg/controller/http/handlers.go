package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/openarchief/vernietiging/pkg/domain/types"
	"github.com/openarchief/vernietiging/pkg/usecase"
	"github.com/openarchief/vernietiging/pkg/utils/async"
	"github.com/openarchief/vernietiging/pkg/utils/errutil"
)

// statusOf maps use case errors to HTTP status codes
func statusOf(err error) int {
	switch {
	case errors.Is(err, usecase.ErrListNotFound),
		errors.Is(err, usecase.ErrItemNotFound),
		errors.Is(err, usecase.ErrReviewNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, usecase.ErrAlreadyCompleted):
		return http.StatusConflict
	case errors.Is(err, usecase.ErrNotConfigured):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadRequest
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		_ = errutil.Handle(ctx, err, "failed to encode response")
	}
}

func listIDFrom(r *http.Request) (types.ListID, error) {
	raw := chi.URLParam(r, "listID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid list ID", goerr.V("raw", raw))
	}
	return types.ListID(id), nil
}

type createListRequest struct {
	Name                  string   `json:"name"`
	ContainsSensitiveInfo bool     `json:"contains_sensitive_info"`
	CaseURLs              []string `json:"case_urls"`
	ReviewerIDs           []string `json:"reviewer_ids"`
}

func (s *Server) handleCreateList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	reviewerIDs := make([]types.UserID, 0, len(req.ReviewerIDs))
	for _, id := range req.ReviewerIDs {
		reviewerIDs = append(reviewerIDs, types.UserID(id))
	}

	list, err := s.uc.CreateList(ctx, actorFrom(ctx), req.Name, req.ContainsSensitiveInfo,
		req.CaseURLs, reviewerIDs)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusOf(err))
		return
	}

	writeJSON(ctx, w, http.StatusCreated, list)
}

func (s *Server) handleListLists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	lists, err := s.uc.ListLists(ctx)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, lists)
}

func (s *Server) handleGetList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	listID, err := listIDFrom(r)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	detail, err := s.uc.GetList(ctx, listID)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusOf(err))
		return
	}

	writeJSON(ctx, w, http.StatusOK, detail)
}

type submitReviewRequest struct {
	Decision string `json:"decision"`
	Comment  string `json:"comment"`
	Items    []struct {
		ItemID     int64  `json:"item_id"`
		Suggestion string `json:"suggestion"`
		Comment    string `json:"comment"`
	} `json:"items"`
}

func (s *Server) handleSubmitReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	listID, err := listIDFrom(r)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	var req submitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	decision, err := types.ParseReviewStatus(req.Decision)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	input := usecase.SubmitReviewInput{
		ListID:     listID,
		ReviewerID: actorFrom(ctx),
		Decision:   decision,
		Comment:    req.Comment,
	}
	for _, item := range req.Items {
		suggestion, err := types.ParseSuggestion(item.Suggestion)
		if err != nil {
			errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
			return
		}
		input.Items = append(input.Items, usecase.ItemSuggestion{
			ItemID:     types.ItemID(item.ItemID),
			Suggestion: suggestion,
			Comment:    item.Comment,
		})
	}

	review, err := s.uc.SubmitReview(ctx, input)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusOf(err))
		return
	}

	writeJSON(ctx, w, http.StatusCreated, review)
}

type updateListRequest struct {
	Items []struct {
		ItemID            int64  `json:"item_id"`
		Remove            bool   `json:"remove"`
		ArchiveActionDate string `json:"archive_action_date"`
		ArchiveState      string `json:"archive_state"`
	} `json:"items"`
}

func (s *Server) handleUpdateList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	listID, err := listIDFrom(r)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	var req updateListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	updates := make([]usecase.ItemUpdate, 0, len(req.Items))
	for _, item := range req.Items {
		updates = append(updates, usecase.ItemUpdate{
			ItemID:            types.ItemID(item.ItemID),
			Remove:            item.Remove,
			ArchiveActionDate: item.ArchiveActionDate,
			ArchiveState:      item.ArchiveState,
		})
	}

	if err := s.uc.UpdateList(ctx, listID, actorFrom(ctx), updates); err != nil {
		errutil.HandleHTTP(ctx, w, err, statusOf(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAbortList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	listID, err := listIDFrom(r)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	if err := s.uc.AbortList(ctx, listID, actorFrom(ctx)); err != nil {
		errutil.HandleHTTP(ctx, w, err, statusOf(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleProcessList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	listID, err := listIDFrom(r)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	// The pipeline is idempotent, scheduling is fire and forget
	async.Dispatch(ctx, func(ctx context.Context) error {
		return s.uc.ProcessList(ctx, listID)
	})

	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) handleListAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	listID, err := listIDFrom(r)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	entries, err := s.uc.ListAuditLog(ctx, listID)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusOf(err))
		return
	}

	writeJSON(ctx, w, http.StatusOK, entries)
}

type respondToReviewRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleRespondToReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw := chi.URLParam(r, "reviewID")
	reviewID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid review ID"), http.StatusBadRequest)
		return
	}

	var req respondToReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	comment, err := s.uc.RespondToReview(ctx, types.ReviewID(reviewID), actorFrom(ctx), req.Text)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusOf(err))
		return
	}

	writeJSON(ctx, w, http.StatusCreated, comment)
}

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	notifications, err := s.uc.ListNotifications(ctx, actorFrom(ctx))
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, notifications)
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	path := r.URL.Query().Get("path")
	if path == "" {
		errutil.HandleHTTP(ctx, w, goerr.New("path query parameter is required"), http.StatusBadRequest)
		return
	}

	data, err := s.uc.GetReport(ctx, path)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusOf(err))
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
