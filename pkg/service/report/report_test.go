package report_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
	"github.com/openarchief/vernietiging/pkg/service/report"
)

func destroyedItem(id string, bytesRemoved int64) *model.DestructionListItem {
	return &model.DestructionListItem{
		ListID:  1,
		CaseURL: "https://zaken.example.nl/zaken/" + id,
		Status:  types.ItemStatusDestroyed,
		Snapshot: &model.CaseSnapshot{
			Identification:          id,
			Description:             "building permit " + id,
			Explanation:             "expired retention",
			StartDate:               "2010-01-01",
			EndDate:                 "2015-06-30",
			CaseType:                "https://catalogi.example.nl/zaaktypen/1",
			ResponsibleOrganisation: "123456789",
			Outcome:                 "granted",
			BytesRemovedDocuments:   bytesRemoved,
		},
	}
}

func TestGenerateOnlyDestroyedItemsContribute(t *testing.T) {
	list := &model.DestructionList{ID: 1, Name: "Archive 2015"}
	items := []*model.DestructionListItem{
		destroyedItem("ZAAK-001", 100),
		{ListID: 1, Status: types.ItemStatusFailed, FailureDetail: "case still open"},
		{ListID: 1, Status: types.ItemStatusRemoved},
		destroyedItem("ZAAK-004", 200),
	}

	r, err := report.Generate(list, items)
	gt.NoError(t, err).Required()
	gt.Value(t, r.ListID).Equal(types.ListID(1))
	gt.B(t, r.Created.IsZero()).False()

	records, err := csv.NewReader(bytes.NewReader(r.CSV)).ReadAll()
	gt.NoError(t, err).Required()
	gt.Array(t, records).Length(3) // header + two destroyed cases
	gt.Value(t, records[1][0]).Equal("ZAAK-001")
	gt.Value(t, records[2][0]).Equal("ZAAK-004")

	gt.B(t, bytes.HasPrefix(r.PDF, []byte("%PDF"))).True()
}

func TestGenerateSensitiveListOmitsDescriptions(t *testing.T) {
	list := &model.DestructionList{ID: 1, Name: "Archive 2015", ContainsSensitiveInfo: true}
	items := []*model.DestructionListItem{destroyedItem("ZAAK-001", 100)}

	r, err := report.Generate(list, items)
	gt.NoError(t, err).Required()

	records, err := csv.NewReader(bytes.NewReader(r.CSV)).ReadAll()
	gt.NoError(t, err).Required()

	for _, col := range records[0] {
		gt.Value(t, col).NotEqual("description")
		gt.Value(t, col).NotEqual("explanation")
	}
	gt.B(t, bytes.Contains(r.CSV, []byte("building permit"))).False()

	open, err := report.Generate(&model.DestructionList{ID: 2, Name: "Open"}, items)
	gt.NoError(t, err).Required()
	gt.B(t, bytes.Contains(open.CSV, []byte("building permit"))).True()
}

func TestLocalStoreRoundTrip(t *testing.T) {
	store, err := report.NewLocalStore(t.TempDir())
	gt.NoError(t, err).Required()

	list := &model.DestructionList{ID: 7, Name: "Archive 2015"}
	r, err := report.Generate(list, []*model.DestructionListItem{destroyedItem("ZAAK-001", 100)})
	gt.NoError(t, err).Required()

	ctx := context.Background()
	gt.NoError(t, store.Save(ctx, r)).Required()
	gt.B(t, r.PDFPath != "").True()
	gt.B(t, r.CSVPath != "").True()

	pdf, err := store.Fetch(ctx, r.PDFPath)
	gt.NoError(t, err).Required()
	gt.Array(t, pdf).Equal(r.PDF)

	csvData, err := store.Fetch(ctx, r.CSVPath)
	gt.NoError(t, err).Required()
	gt.Array(t, csvData).Equal(r.CSV)
}
