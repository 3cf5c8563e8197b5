package runtime

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/codex-k8s/purchase-chain/internal/audit"
	"github.com/codex-k8s/purchase-chain/internal/protocol"
	"github.com/codex-k8s/purchase-chain/internal/purchase"
	"github.com/codex-k8s/purchase-chain/internal/runtime/chain"
)

// Service dispatches purchase requests through a read-only chain.
// It is safe for concurrent use.
type Service struct {
	// Head is the first link of the chain.
	Head *chain.Link
	// Logger is used for structured logging.
	Logger *slog.Logger
	// Audit records dispatch events.
	Audit audit.Logger
	// Reporter receives one report per visited link.
	Reporter chain.Observer
}

// Process dispatches req with a fresh correlation ID.
func (s Service) Process(ctx context.Context, req purchase.Request, extra ...chain.Observer) protocol.Response {
	return s.ProcessWithID(ctx, uuid.NewString(), req, extra...)
}

// ProcessWithID dispatches req using the supplied correlation ID.
// An empty ID is replaced with a generated one.
func (s Service) ProcessWithID(ctx context.Context, correlationID string, req purchase.Request, extra ...chain.Observer) protocol.Response {
	if correlationID == "" {
		correlationID = uuid.NewString()
	}
	ctx = audit.WithCorrelationID(ctx, correlationID)

	if s.Logger != nil {
		s.Logger.Debug("purchase request", "correlation_id", correlationID, "number", req.Number(), "amount", req.Amount())
	}
	if s.Audit != nil {
		s.Audit.Record(ctx, audit.Event{Type: audit.EventRequest, CorrelationID: correlationID, Number: req.Number(), Amount: req.Amount()})
	}

	observers := make(chain.Observers, 0, len(extra)+1)
	observers = append(observers, s.Reporter)
	observers = append(observers, extra...)

	outcome := s.Head.Dispatch(ctx, req, observers)

	resp := protocol.Response{
		CorrelationID: correlationID,
		Number:        req.Number(),
		Amount:        req.Amount(),
		Purpose:       req.Purpose(),
		Status:        protocol.StatusContinued,
		Visited:       outcome.Visited,
	}
	if resp.Visited == nil {
		resp.Visited = []string{}
	}

	event := audit.Event{
		Type:          audit.EventContinued,
		CorrelationID: correlationID,
		Number:        req.Number(),
		Amount:        req.Amount(),
		Decision:      protocol.StatusContinued,
		Depth:         outcome.Depth(),
	}
	if outcome.Stopped() {
		resp.Status = protocol.StatusStopped
		resp.StoppedBy = outcome.StoppedBy
		resp.StoppedRole = outcome.StoppedRole
		event.Type = audit.EventStopped
		event.Decision = protocol.StatusStopped
		event.Approver = outcome.StoppedBy
	}
	if s.Audit != nil {
		s.Audit.Record(ctx, event)
	}
	return resp
}
