package usecase

import (
	"context"
	"time"

	"github.com/openarchief/vernietiging/pkg/domain/interfaces"
	"github.com/openarchief/vernietiging/pkg/service/email"
	"github.com/openarchief/vernietiging/pkg/service/notify"
	"github.com/openarchief/vernietiging/pkg/service/report"
	"github.com/openarchief/vernietiging/pkg/service/zaken"
	"github.com/openarchief/vernietiging/pkg/utils/async"
)

// Settings are the tunables of the destruction workflow
type Settings struct {
	// ChunkSize is the number of items destroyed per pipeline chunk
	ChunkSize int
	// Concurrency bounds the number of items destroyed in parallel within a
	// chunk
	Concurrency int
	// ItemTimeout is the soft per-item deadline on external case operations
	ItemTimeout time.Duration
	// DaysUntilReminder is how long a review may sit with one reviewer
	// before the reminder sweep emails them
	DaysUntilReminder int
	// CreateSummaryCase enables the post-processing stage that registers a
	// summary case documenting the destruction run
	CreateSummaryCase bool

	// BaseURL is the public address of this service, used for links in
	// notifications and emails
	BaseURL string

	// Summary case parameters, used only when CreateSummaryCase is set
	SummaryCaseType     string
	SummaryCaseSource   string
	SummaryResultType   string
	ReportDocumentType  string
	SummaryOrganisation string
}

// DefaultSettings returns the settings used when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		ChunkSize:         10,
		Concurrency:       4,
		ItemTimeout:       60 * time.Second,
		DaysUntilReminder: 7,
	}
}

func (s *Settings) normalize() {
	def := DefaultSettings()
	if s.ChunkSize <= 0 {
		s.ChunkSize = def.ChunkSize
	}
	if s.Concurrency <= 0 {
		s.Concurrency = def.Concurrency
	}
	if s.ItemTimeout <= 0 {
		s.ItemTimeout = def.ItemTimeout
	}
	if s.DaysUntilReminder <= 0 {
		s.DaysUntilReminder = def.DaysUntilReminder
	}
}

type UseCases struct {
	repo     interfaces.Repository
	cases    zaken.Service
	emails   email.Service
	notifier notify.Service
	reports  report.Store
	settings Settings

	// dispatch schedules background work, async.Dispatch in production
	dispatch func(ctx context.Context, handler func(ctx context.Context) error)
}

type Option func(*UseCases)

// WithCaseService wires the Zaken API client. Without it the pipeline can
// only fail items and the summary case stage reports ErrNotConfigured.
func WithCaseService(svc zaken.Service) Option {
	return func(uc *UseCases) {
		uc.cases = svc
	}
}

// WithEmailService wires the outgoing email transport
func WithEmailService(svc email.Service) Option {
	return func(uc *UseCases) {
		uc.emails = svc
	}
}

// WithNotifier overrides the default notifier
func WithNotifier(svc notify.Service) Option {
	return func(uc *UseCases) {
		uc.notifier = svc
	}
}

// WithReportStore wires the destruction report store
func WithReportStore(store report.Store) Option {
	return func(uc *UseCases) {
		uc.reports = store
	}
}

// WithSettings overrides the workflow settings
func WithSettings(settings Settings) Option {
	return func(uc *UseCases) {
		uc.settings = settings
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:     repo,
		settings: DefaultSettings(),
		dispatch: async.Dispatch,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.settings.normalize()

	if uc.notifier == nil {
		uc.notifier = notify.New(repo.Notification(), "")
	}

	return uc
}
