package model

import (
	"time"

	"github.com/openarchief/vernietiging/pkg/domain/types"
)

// Report is the destruction report produced after a list has been processed.
// It is built exclusively from the snapshots of destroyed items.
type Report struct {
	ListID  types.ListID
	PDF     []byte
	CSV     []byte
	Created time.Time
	// PDFPath and CSVPath are set once the report has been persisted by a
	// report store
	PDFPath string
	CSVPath string
}
