package fnplot

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by fnplot. By default nothing is
// logged, so also the warning about a plot garbage collected without ever
// being written only surfaces once a logger is set. Pass nil to restore
// the silent default.
//
// Levels used:
//
//   - Debug: sampling and scene construction
//   - Info: written plots
//   - Warn: plots never written, unavailable fonts
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// Warnf logs a formatted warning.
func Warnf(f string, args ...interface{}) {
	Logger().Warn(fmt.Sprintf(f, args...))
}
