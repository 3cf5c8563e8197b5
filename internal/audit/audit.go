package audit

import (
	"context"
	"log/slog"
)

// Event types.
const (
	EventRequest   = "purchase_request"
	EventContinued = "purchase_continued"
	EventStopped   = "purchase_stopped"
)

// Event represents an audit entry for a dispatched purchase request.
type Event struct {
	// Type describes the event kind.
	Type string
	// CorrelationID links related events.
	CorrelationID string
	// Number is the purchase order number.
	Number int64
	// Amount is the requested amount.
	Amount float64
	// Decision is the dispatch status.
	Decision string
	// Approver identifies the approver that ended the dispatch.
	Approver string
	// Depth is the number of visited approvers.
	Depth int
}

// Logger records audit events.
type Logger interface {
	// Record stores an audit event.
	Record(ctx context.Context, event Event)
}

// StdLogger writes audit events to slog.
type StdLogger struct {
	logger *slog.Logger
}

// New returns a StdLogger.
func New(logger *slog.Logger) *StdLogger {
	return &StdLogger{logger: logger}
}

// Record logs an audit event.
func (l *StdLogger) Record(ctx context.Context, event Event) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.InfoContext(ctx, "audit",
		"type", event.Type,
		"correlation_id", event.CorrelationID,
		"number", event.Number,
		"amount", event.Amount,
		"decision", event.Decision,
		"approver", event.Approver,
		"depth", event.Depth,
	)
}
