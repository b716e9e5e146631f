package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
	"github.com/openarchief/vernietiging/pkg/service/report"
	"github.com/openarchief/vernietiging/pkg/service/zaken"
	"github.com/openarchief/vernietiging/pkg/utils/errutil"
	"github.com/openarchief/vernietiging/pkg/utils/logging"
)

// ProcessList executes the destruction of a fully approved list. The
// operation is idempotent: a missing list or a list that is not in progress
// is logged and skipped without error, so duplicate scheduling is harmless.
//
// Items are destroyed in chunks. Within a chunk items run concurrently under
// a bounded worker pool; a failing item is recorded and isolated, it never
// stops its siblings or the run. The list always reaches Completed, even
// when every single item failed.
func (u *UseCases) ProcessList(ctx context.Context, listID types.ListID) error {
	logger := logging.From(ctx)

	list, err := u.repo.List().Get(ctx, listID)
	if err != nil {
		logger.Warn("destruction requested for unknown list, skipping",
			slog.Int64("list_id", int64(listID)))
		return nil
	}
	if list.Status != types.ListStatusInProgress {
		logger.Warn("destruction requested for already processed list, skipping",
			slog.Int64("list_id", int64(listID)),
			slog.String("status", list.Status.String()))
		return nil
	}

	if err := list.Process(); err != nil {
		return err
	}
	if _, err := u.repo.List().Update(ctx, list); err != nil {
		return goerr.Wrap(err, "failed to mark list as processing", goerr.V(ListIDKey, listID))
	}

	suggested, err := u.repo.Item().ListByStatus(ctx, listID, types.ItemStatusSuggested)
	if err != nil {
		return goerr.Wrap(err, "failed to load items", goerr.V(ListIDKey, listID))
	}

	for _, chunk := range chunkItems(suggested, u.settings.ChunkSize) {
		eg, chunkCtx := errgroup.WithContext(ctx)
		eg.SetLimit(u.settings.Concurrency)

		for _, item := range chunk {
			eg.Go(func() error {
				return u.processItem(chunkCtx, list, item)
			})
		}

		if err := eg.Wait(); err != nil {
			return goerr.Wrap(err, "destruction chunk failed", goerr.V(ListIDKey, listID))
		}
	}

	return u.finalize(ctx, list)
}

// chunkItems splits the items into consecutive chunks of at most size
// entries. Every item lands in exactly one chunk.
func chunkItems(items []*model.DestructionListItem, size int) [][]*model.DestructionListItem {
	var chunks [][]*model.DestructionListItem
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}

// processItem destroys one case. External calls run under the per-item soft
// timeout; persistence of the outcome uses the parent context so a timed-out
// item can still be recorded as failed. Only repository failures propagate.
func (u *UseCases) processItem(ctx context.Context, list *model.DestructionList, item *model.DestructionListItem) error {
	if err := item.Process(); err != nil {
		// Item already picked up by an earlier run
		logging.From(ctx).Warn("skipping item in unexpected status",
			slog.Int64("item_id", int64(item.ID)),
			slog.String("status", item.Status.String()))
		return nil
	}
	if _, err := u.repo.Item().Update(ctx, item); err != nil {
		return goerr.Wrap(err, "failed to mark item as processing", goerr.V(ItemIDKey, item.ID))
	}

	snapshot, destroyErr := u.destroyCase(ctx, item.CaseURL)
	if destroyErr != nil {
		if err := item.Fail(destroyErr.Error()); err != nil {
			return err
		}
		if _, err := u.repo.Item().Update(ctx, item); err != nil {
			return goerr.Wrap(err, "failed to record item failure", goerr.V(ItemIDKey, item.ID))
		}
		u.audit(ctx, list.ID, list.AuthorID, model.AuditItemFailed, map[string]any{
			"item_id":  item.ID,
			"case_url": item.CaseURL,
			"error":    destroyErr.Error(),
		})
		return nil
	}

	if err := item.Complete(snapshot); err != nil {
		return err
	}
	if _, err := u.repo.Item().Update(ctx, item); err != nil {
		return goerr.Wrap(err, "failed to record item destruction", goerr.V(ItemIDKey, item.ID))
	}
	u.audit(ctx, list.ID, list.AuthorID, model.AuditItemDestroyed, map[string]any{
		"item_id":        item.ID,
		"identification": snapshot.Identification,
		"bytes_removed":  snapshot.BytesRemovedDocuments,
	})

	return nil
}

// destroyCase fetches the case, captures its snapshot and deletes it
func (u *UseCases) destroyCase(ctx context.Context, caseURL string) (*model.CaseSnapshot, error) {
	if u.cases == nil {
		return nil, goerr.Wrap(ErrNotConfigured, "case service not configured")
	}

	callCtx, cancel := context.WithTimeout(ctx, u.settings.ItemTimeout)
	defer cancel()

	zaak, err := u.cases.FetchCase(callCtx, caseURL)
	if err != nil {
		return nil, err
	}

	// The outcome is nice to have on the report; a failing lookup does not
	// block the destruction
	outcome, err := u.cases.FetchCaseOutcome(callCtx, caseURL)
	if err != nil {
		_ = errutil.Handle(ctx, err, "failed to resolve case outcome")
		outcome = ""
	}

	bytesRemoved, err := u.cases.DeleteCase(callCtx, caseURL)
	if err != nil {
		return nil, err
	}

	related := make([]string, 0, len(zaak.RelatedCases))
	for _, rel := range zaak.RelatedCases {
		related = append(related, rel.URL)
	}

	return &model.CaseSnapshot{
		Identification:          zaak.Identification,
		Description:             zaak.Description,
		Explanation:             zaak.Explanation,
		StartDate:               zaak.StartDate,
		EndDate:                 zaak.EndDate,
		CaseType:                zaak.CaseType,
		ResponsibleOrganisation: zaak.ResponsibleOrganisation,
		Outcome:                 outcome,
		RelatedCases:            related,
		BytesRemovedDocuments:   bytesRemoved,
	}, nil
}

// finalize closes the list and emits the report and the completion
// notifications. Completion is guarded: a concurrent run that already closed
// the list turns this into a no-op.
func (u *UseCases) finalize(ctx context.Context, list *model.DestructionList) error {
	if err := list.Complete(); err != nil {
		logging.From(ctx).Warn("list already completed, skipping finalization",
			slog.Int64("list_id", int64(list.ID)))
		return nil
	}
	if _, err := u.repo.List().Update(ctx, list); err != nil {
		return goerr.Wrap(err, "failed to complete list", goerr.V(ListIDKey, list.ID))
	}

	items, err := u.repo.Item().ListByList(ctx, list.ID)
	if err != nil {
		return goerr.Wrap(err, "failed to load items", goerr.V(ListIDKey, list.ID))
	}

	var destroyed, failed int
	for _, item := range items {
		switch item.Status {
		case types.ItemStatusDestroyed:
			destroyed++
		case types.ItemStatusFailed:
			failed++
		}
	}

	u.notifyUser(ctx, list.ID, list.AuthorID, completionMessage(list, destroyed, failed))

	rep, err := report.Generate(list, items)
	if err != nil {
		return goerr.Wrap(err, "failed to generate report", goerr.V(ListIDKey, list.ID))
	}
	if u.reports != nil {
		if err := u.reports.Save(ctx, rep); err != nil {
			return goerr.Wrap(err, "failed to store report", goerr.V(ListIDKey, list.ID))
		}
	}

	// Reviewers get the report reference, the approving archivist gets the
	// report email
	assignees, err := u.repo.Assignee().ListByList(ctx, list.ID)
	if err != nil {
		return goerr.Wrap(err, "failed to load assignees", goerr.V(ListIDKey, list.ID))
	}
	reportMessage := completionMessage(list, destroyed, failed)
	if rep.PDFPath != "" {
		reportMessage += fmt.Sprintf(". Report available at %s (PDF) and %s (CSV)", rep.PDFPath, rep.CSVPath)
	}
	for _, assignee := range assignees {
		u.notifyUser(ctx, list.ID, assignee.UserID, reportMessage)
	}

	if destroyed > 0 {
		if archivist := u.lastApprovingArchivist(ctx, list.ID); archivist != "" {
			u.sendEmail(ctx, types.EmailTypeReportAvailable, archivist, list, 0)
		}
	}

	if u.notifier != nil {
		u.notifier.AnnounceCompletion(ctx, list, destroyed, failed)
	}

	if u.settings.CreateSummaryCase {
		if err := u.createSummaryCase(ctx, list, rep, destroyed); err != nil {
			return err
		}
	}

	return nil
}

// lastApprovingArchivist finds the archivist who gave the final approval.
// Missing users or reviews only disable the email.
func (u *UseCases) lastApprovingArchivist(ctx context.Context, listID types.ListID) types.UserID {
	reviews, err := u.repo.Review().ListByList(ctx, listID)
	if err != nil {
		_ = errutil.Handle(ctx, err, "failed to load reviews")
		return ""
	}

	for idx := len(reviews) - 1; idx >= 0; idx-- {
		review := reviews[idx]
		if review.Decision != types.ReviewStatusApproved {
			continue
		}
		user, err := u.repo.User().Get(ctx, review.AuthorID)
		if err != nil {
			continue
		}
		if user.Role.Type == types.RoleTypeArchivist {
			return user.ID
		}
	}

	return ""
}

// createSummaryCase registers a case in the case management system that
// documents the destruction run, attaches the PDF report and records the
// case URL on the list. This stage is explicitly configured; running it
// without a case service is an error, never a silent skip.
func (u *UseCases) createSummaryCase(ctx context.Context, list *model.DestructionList, rep *model.Report, destroyed int) error {
	if u.cases == nil {
		return goerr.Wrap(ErrNotConfigured, "summary case requested without case service",
			goerr.V(ListIDKey, list.ID))
	}

	zaak, err := u.cases.CreateCase(ctx, &zaken.CreateCaseRequest{
		CaseType:                u.settings.SummaryCaseType,
		Description:             fmt.Sprintf("Destruction of list %q", list.Name),
		Explanation:             fmt.Sprintf("%d cases destroyed", destroyed),
		Source:                  u.settings.SummaryCaseSource,
		ResponsibleOrganisation: u.settings.SummaryOrganisation,
		StartDate:               time.Now().UTC().Format("2006-01-02"),
	})
	if err != nil {
		return goerr.Wrap(err, "failed to create summary case", goerr.V(ListIDKey, list.ID))
	}

	if len(rep.PDF) > 0 {
		doc := &zaken.ReportDocument{
			Title:        fmt.Sprintf("Destruction report: %s", list.Name),
			FileName:     fmt.Sprintf("destruction-report-%d.pdf", list.ID),
			Content:      rep.PDF,
			ContentType:  "application/pdf",
			DocumentType: u.settings.ReportDocumentType,
			Source:       u.settings.SummaryCaseSource,
		}
		if err := u.cases.AddReportDocument(ctx, zaak.URL, doc); err != nil {
			return goerr.Wrap(err, "failed to attach report to summary case",
				goerr.V(ListIDKey, list.ID))
		}
	}

	if u.settings.SummaryResultType != "" {
		if err := u.cases.SetOutcome(ctx, zaak.URL, u.settings.SummaryResultType); err != nil {
			return goerr.Wrap(err, "failed to set summary case result",
				goerr.V(ListIDKey, list.ID))
		}
	}

	list.CaseURL = zaak.URL
	if _, err := u.repo.List().Update(ctx, list); err != nil {
		return goerr.Wrap(err, "failed to record summary case", goerr.V(ListIDKey, list.ID))
	}

	u.audit(ctx, list.ID, list.AuthorID, model.AuditCaseCreated, map[string]any{
		"case_url": zaak.URL,
	})
	u.notifyUser(ctx, list.ID, list.AuthorID,
		fmt.Sprintf("A summary case has been created for destruction list %q", list.Name))

	return nil
}
