package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/m-mizutani/goerr/v2"

	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
)

// Generate builds the destruction report for a processed list. Only items
// that were actually destroyed contribute, through their case snapshots. For
// lists marked as containing sensitive information the case description and
// explanation columns are omitted.
func Generate(list *model.DestructionList, items []*model.DestructionListItem) (*model.Report, error) {
	var snapshots []*model.CaseSnapshot
	for _, item := range items {
		if item.Status != types.ItemStatusDestroyed || item.Snapshot == nil {
			continue
		}
		snapshots = append(snapshots, item.Snapshot)
	}

	csvData, err := renderCSV(list, snapshots)
	if err != nil {
		return nil, err
	}

	pdfData, err := renderPDF(list, snapshots)
	if err != nil {
		return nil, err
	}

	return &model.Report{
		ListID:  list.ID,
		PDF:     pdfData,
		CSV:     csvData,
		Created: time.Now().UTC(),
	}, nil
}

func columns(sensitive bool) []string {
	cols := []string{
		"identification",
		"case_type",
		"start_date",
		"end_date",
		"outcome",
		"responsible_organisation",
		"related_cases",
		"bytes_removed_documents",
	}
	if !sensitive {
		cols = append(cols, "description", "explanation")
	}
	return cols
}

func row(snapshot *model.CaseSnapshot, sensitive bool) []string {
	fields := []string{
		snapshot.Identification,
		snapshot.CaseType,
		snapshot.StartDate,
		snapshot.EndDate,
		snapshot.Outcome,
		snapshot.ResponsibleOrganisation,
		strings.Join(snapshot.RelatedCases, " "),
		strconv.FormatInt(snapshot.BytesRemovedDocuments, 10),
	}
	if !sensitive {
		fields = append(fields, snapshot.Description, snapshot.Explanation)
	}
	return fields
}

func renderCSV(list *model.DestructionList, snapshots []*model.CaseSnapshot) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(columns(list.ContainsSensitiveInfo)); err != nil {
		return nil, goerr.Wrap(err, "failed to write CSV header")
	}
	for _, snapshot := range snapshots {
		if err := w.Write(row(snapshot, list.ContainsSensitiveInfo)); err != nil {
			return nil, goerr.Wrap(err, "failed to write CSV row",
				goerr.V("identification", snapshot.Identification))
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, goerr.Wrap(err, "failed to flush CSV")
	}

	return buf.Bytes(), nil
}

func renderPDF(list *model.DestructionList, snapshots []*model.CaseSnapshot) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Destruction report: %s", list.Name), true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Destruction report: %s", list.Name), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Cases destroyed: %d", len(snapshots)), "", 1, "L", false, 0, "")
	if !list.End.IsZero() {
		pdf.CellFormat(0, 6, fmt.Sprintf("Completed: %s", list.End.Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	cols := columns(list.ContainsSensitiveInfo)
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(cols))

	pdf.SetFont("Helvetica", "B", 8)
	for _, col := range cols {
		pdf.CellFormat(colWidth, 7, col, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, snapshot := range snapshots {
		for _, field := range row(snapshot, list.ContainsSensitiveInfo) {
			pdf.CellFormat(colWidth, 6, field, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, goerr.Wrap(err, "failed to render PDF", goerr.V("list_id", list.ID))
	}

	return buf.Bytes(), nil
}
