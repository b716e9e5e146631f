package config

import (
	"context"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/openarchief/vernietiging/pkg/service/report"
	"github.com/openarchief/vernietiging/pkg/usecase"
	"github.com/openarchief/vernietiging/pkg/utils/logging"
)

// Archive holds the workflow tunables loaded from a TOML file, plus the
// report store selection
type Archive struct {
	configPath string
	baseURL    string
}

type archiveFile struct {
	Workflow struct {
		ChunkSize         int    `toml:"chunk_size"`
		Concurrency       int    `toml:"concurrency"`
		ItemTimeout       string `toml:"item_timeout"`
		DaysUntilReminder int    `toml:"days_until_reminder"`
		CreateSummaryCase bool   `toml:"create_summary_case"`
	} `toml:"workflow"`

	SummaryCase struct {
		CaseType           string `toml:"case_type"`
		Source             string `toml:"source"`
		ResultType         string `toml:"result_type"`
		ReportDocumentType string `toml:"report_document_type"`
		Organisation       string `toml:"organisation"`
	} `toml:"summary_case"`

	Report struct {
		Backend string `toml:"backend"`
		Bucket  string `toml:"bucket"`
		Dir     string `toml:"dir"`
	} `toml:"report"`
}

// Flags returns CLI flags for the archive configuration
func (a *Archive) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "archive-config",
			Usage:       "Path to the TOML file with workflow settings",
			Category:    "Workflow",
			Sources:     cli.EnvVars("VERNIETIGING_ARCHIVE_CONFIG"),
			Destination: &a.configPath,
		},
		&cli.StringFlag{
			Name:        "base-url",
			Usage:       "Public base URL of this service, used in notification links",
			Category:    "Workflow",
			Sources:     cli.EnvVars("VERNIETIGING_BASE_URL"),
			Destination: &a.baseURL,
		},
	}
}

// Configure loads the workflow settings and builds the report store. Without
// a config file the defaults apply and reports are kept in memory only.
func (a *Archive) Configure(ctx context.Context) (usecase.Settings, report.Store, error) {
	settings := usecase.DefaultSettings()
	settings.BaseURL = a.baseURL

	if a.configPath == "" {
		return settings, nil, nil
	}

	raw, err := os.ReadFile(a.configPath)
	if err != nil {
		return settings, nil, goerr.Wrap(err, "failed to read archive config",
			goerr.V("path", a.configPath))
	}

	var file archiveFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return settings, nil, goerr.Wrap(err, "failed to parse archive config",
			goerr.V("path", a.configPath))
	}

	if file.Workflow.ChunkSize > 0 {
		settings.ChunkSize = file.Workflow.ChunkSize
	}
	if file.Workflow.Concurrency > 0 {
		settings.Concurrency = file.Workflow.Concurrency
	}
	if file.Workflow.ItemTimeout != "" {
		timeout, err := time.ParseDuration(file.Workflow.ItemTimeout)
		if err != nil {
			return settings, nil, goerr.Wrap(err, "invalid item_timeout",
				goerr.V("value", file.Workflow.ItemTimeout))
		}
		settings.ItemTimeout = timeout
	}
	if file.Workflow.DaysUntilReminder > 0 {
		settings.DaysUntilReminder = file.Workflow.DaysUntilReminder
	}
	settings.CreateSummaryCase = file.Workflow.CreateSummaryCase
	settings.SummaryCaseType = file.SummaryCase.CaseType
	settings.SummaryCaseSource = file.SummaryCase.Source
	settings.SummaryResultType = file.SummaryCase.ResultType
	settings.ReportDocumentType = file.SummaryCase.ReportDocumentType
	settings.SummaryOrganisation = file.SummaryCase.Organisation

	var store report.Store
	switch file.Report.Backend {
	case "gcs":
		store, err = report.NewGCSStore(ctx, file.Report.Bucket)
		if err != nil {
			return settings, nil, err
		}
		logging.Default().Info("Using GCS report store", "bucket", file.Report.Bucket)
	case "local":
		store, err = report.NewLocalStore(file.Report.Dir)
		if err != nil {
			return settings, nil, err
		}
		logging.Default().Info("Using local report store", "dir", file.Report.Dir)
	case "":
		logging.Default().Warn("No report store configured, reports are not persisted")
	default:
		return settings, nil, goerr.New("invalid report backend",
			goerr.V("backend", file.Report.Backend))
	}

	return settings, store, nil
}
