package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"

	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/utils/safe"
)

// Store persists generated destruction reports. Save fills in the PDFPath
// and CSVPath of the report with the stored locations.
type Store interface {
	Save(ctx context.Context, report *model.Report) error
	Fetch(ctx context.Context, path string) ([]byte, error)
}

func objectName(report *model.Report, ext string) string {
	return fmt.Sprintf("reports/list-%d/%s.%s", report.ListID, report.Created.Format("20060102-150405"), ext)
}

// gcsStore keeps reports in a Cloud Storage bucket
type gcsStore struct {
	client *storage.Client
	bucket string
}

// NewGCSStore builds a report store on the given Cloud Storage bucket
func NewGCSStore(ctx context.Context, bucket string) (Store, error) {
	if bucket == "" {
		return nil, goerr.New("bucket name is required")
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client")
	}

	return &gcsStore{client: client, bucket: bucket}, nil
}

func (s *gcsStore) put(ctx context.Context, name, contentType string, data []byte) error {
	w := s.client.Bucket(s.bucket).Object(name).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return goerr.Wrap(err, "failed to write object",
			goerr.V("bucket", s.bucket),
			goerr.V("object", name))
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize object",
			goerr.V("bucket", s.bucket),
			goerr.V("object", name))
	}

	return nil
}

func (s *gcsStore) Save(ctx context.Context, report *model.Report) error {
	pdfName := objectName(report, "pdf")
	if err := s.put(ctx, pdfName, "application/pdf", report.PDF); err != nil {
		return err
	}

	csvName := objectName(report, "csv")
	if err := s.put(ctx, csvName, "text/csv", report.CSV); err != nil {
		return err
	}

	report.PDFPath = pdfName
	report.CSVPath = csvName
	return nil
}

func (s *gcsStore) Fetch(ctx context.Context, path string) ([]byte, error) {
	r, err := s.client.Bucket(s.bucket).Object(path).NewReader(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open object",
			goerr.V("bucket", s.bucket),
			goerr.V("object", path))
	}
	defer safe.Close(ctx, r)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read object", goerr.V("object", path))
	}

	return data, nil
}

// localStore keeps reports under a directory on disk, for development and
// single-node deployments
type localStore struct {
	dir string
}

// NewLocalStore builds a report store writing under the given directory
func NewLocalStore(dir string) (Store, error) {
	if dir == "" {
		return nil, goerr.New("report directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create report directory", goerr.V("dir", dir))
	}
	return &localStore{dir: dir}, nil
}

func (s *localStore) put(name string, data []byte) error {
	path := filepath.Join(s.dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return goerr.Wrap(err, "failed to create directory", goerr.V("path", path))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return goerr.Wrap(err, "failed to write report file", goerr.V("path", path))
	}
	return nil
}

func (s *localStore) Save(_ context.Context, report *model.Report) error {
	pdfName := objectName(report, "pdf")
	if err := s.put(pdfName, report.PDF); err != nil {
		return err
	}

	csvName := objectName(report, "csv")
	if err := s.put(csvName, report.CSV); err != nil {
		return err
	}

	report.PDFPath = pdfName
	report.CSVPath = csvName
	return nil
}

func (s *localStore) Fetch(_ context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, filepath.FromSlash(path)))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read report file", goerr.V("path", path))
	}
	return data, nil
}
