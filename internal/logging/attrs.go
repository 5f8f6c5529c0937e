package logging

import (
	"context"
	"log/slog"
)

// File tags a record with the file being sorted, relative to the scan root.
func File(path string) slog.Attr { return slog.String(FieldFile, path) }

// Label tags a record with the ratio folder a file belongs in.
func Label(label string) slog.Attr { return slog.String(FieldLabel, label) }

// Measured expands to the probed width and height and the probe that read
// them, ready to pass to Logger.With.
func Measured(width, height int, probe string) []any {
	return []any{
		slog.Int(FieldWidth, width),
		slog.Int(FieldHeight, height),
		slog.String(FieldProbe, probe),
	}
}

func Alert(value string) slog.Attr { return slog.String(FieldAlert, value) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

func NewNop() *slog.Logger {
	return slog.New(NoopHandler{})
}

// NewComponentLogger creates a logger with a standardized component attribute.
// If logger is nil, a no-op logger is used as the base.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(slog.String(FieldComponent, component))
}

// NoopHandler discards every record.
type NoopHandler struct{}

func (NoopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (NoopHandler) Handle(context.Context, slog.Record) error { return nil }

func (NoopHandler) WithAttrs([]slog.Attr) slog.Handler { return NoopHandler{} }

func (NoopHandler) WithGroup(string) slog.Handler { return NoopHandler{} }
