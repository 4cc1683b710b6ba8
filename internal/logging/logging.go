package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// New builds a logrus logger writing to out at the given level ("debug",
// "info", ...) in "text" or "json" format.
func New(out io.Writer, level, format string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := log.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	switch format {
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	case "", "text":
		logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	default:
		return nil, fmt.Errorf("unsupported log format %q", format)
	}
	return logger, nil
}

// RunEntry tags every line of a single comparison run with a fresh run_id.
func RunEntry(logger *log.Logger) *log.Entry {
	return logger.WithField("run_id", uuid.NewString())
}

// EngineLogger adapts a logrus entry to calculation.Logger.
type EngineLogger struct {
	Entry *log.Entry
}

// NewEngineLogger scopes entry to the calculation component.
func NewEngineLogger(entry *log.Entry) EngineLogger {
	return EngineLogger{Entry: entry.WithField("component", "engine")}
}

func (l EngineLogger) Debugf(format string, args ...any) { l.Entry.Debugf(format, args...) }
func (l EngineLogger) Infof(format string, args ...any)  { l.Entry.Infof(format, args...) }
func (l EngineLogger) Warnf(format string, args ...any)  { l.Entry.Warnf(format, args...) }
func (l EngineLogger) Errorf(format string, args ...any) { l.Entry.Errorf(format, args...) }
