package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger builds the CLI logger: timestamped with millisecond precision,
// filtered at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           level,
	})
}

// progress logs how long an operation took. Create one when the operation
// starts and call done when it finishes. Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs the formatted message with the elapsed time appended, rounded
// to the nearest millisecond.
func (p *progress) done(format string, args ...any) {
	p.logger.Infof("%s (%s)", fmt.Sprintf(format, args...), time.Since(p.start).Round(time.Millisecond))
}

// loggerKey carries the request logger through a context.
type loggerKey struct{}

// withLogger attaches l to ctx for retrieval with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default()
// when none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
