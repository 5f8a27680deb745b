package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphwalk/pkg/errors"
	"github.com/matzehuels/graphwalk/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
// The returned progress should call done when the operation completes.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// The duration is rounded to the nearest millisecond.
// Example output: "Rendered svg (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
// The logger can be retrieved later with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
// This ensures commands always have a valid logger even if context setup fails.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Session Event Logging
// =============================================================================

// logHooks forwards session events to a charmbracelet logger. Successful
// edits and animation steps log at info level, rejected edits at warn,
// everything else at debug.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnEdit(session string, op observability.EditOp, u, v, w int, err error) {
	l := h.logger.With("session", shortID(session), "op", op)
	switch {
	case op == observability.OpReset:
		l.Info("graph reset")
	case err == nil && op == observability.OpAddEdge:
		l.Info("edge added", "u", u, "v", v, "weight", w)
	case err == nil:
		l.Info("edge removed", "u", u, "v", v)
	case errors.IsNoOp(err):
		l.Warn("edit had no effect", "u", u, "v", v, "reason", errors.UserMessage(err))
	default:
		l.Warn("edit rejected", "code", errors.GetCode(err), "reason", errors.UserMessage(err))
	}
}

func (h *logHooks) OnMove(session string, node int, x, y float64) {
	h.logger.Debug("node moved", "session", shortID(session), "node", node, "x", x, "y", y)
}

func (h *logHooks) OnStart(session, kind string, run uint64, order []int) {
	h.logger.Debug("traversal started", "session", shortID(session), "kind", kind, "run", run, "nodes", len(order))
}

func (h *logHooks) OnStep(session, kind string, node, index, total int) {
	h.logger.Info("visit", "session", shortID(session), "kind", kind, "node", node, "step", fmt.Sprintf("%d/%d", index, total))
}

func (h *logHooks) OnComplete(session, kind string, order []int) {
	h.logger.Info("traversal complete", "session", shortID(session), "kind", kind, "order", order)
}

func (h *logHooks) OnCancel(session, kind string, cursor, total int) {
	h.logger.Debug("traversal canceled", "session", shortID(session), "kind", kind, "step", fmt.Sprintf("%d/%d", cursor, total))
}

var (
	_ observability.GraphHooks     = (*logHooks)(nil)
	_ observability.AnimationHooks = (*logHooks)(nil)
)
