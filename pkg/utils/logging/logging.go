package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"

	"github.com/openarchief/vernietiging/pkg/domain/model"
)

var (
	mu            sync.RWMutex
	defaultLogger = newConsoleLogger(os.Stdout, slog.LevelInfo)
)

// Default returns the process-wide logger
func Default() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide logger
func SetDefault(logger *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = logger
}

func newConsoleLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := clog.New(
		clog.WithWriter(w),
		clog.WithLevel(level),
		clog.WithSource(true),
		clog.WithAttrHook(clog.GoerrHook),
		clog.WithReplaceAttr(redactor()),
	)
	return slog.New(handler)
}

func newJSONLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: redactor(),
	}))
}

// redactor hides captured case data in log output. Destruction lists can be
// flagged as containing privacy sensitive information and their snapshots
// must never leak into logs.
func redactor() func([]string, slog.Attr) slog.Attr {
	return masq.New(
		masq.WithType[model.CaseSnapshot](),
		masq.WithType[*model.CaseSnapshot](),
		masq.WithTag("secret"),
	)
}

// Format identifies the output encoding of a logger
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

// New builds a logger with the given output, level name and format
func New(w io.Writer, levelName string, format Format) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		return nil, goerr.Wrap(err, "invalid log level", goerr.V("level", levelName))
	}

	switch format {
	case FormatConsole:
		return newConsoleLogger(w, level), nil
	case FormatJSON:
		return newJSONLogger(w, level), nil
	default:
		return nil, goerr.New("unknown log format", goerr.V("format", format))
	}
}
