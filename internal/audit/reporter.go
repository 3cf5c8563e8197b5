package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/codex-k8s/purchase-chain/internal/purchase"
	"github.com/codex-k8s/purchase-chain/internal/runtime/chain"
	"github.com/codex-k8s/purchase-chain/internal/templates"
)

type correlationKey struct{}

// WithCorrelationID stores the dispatch correlation ID in ctx.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

// CorrelationID returns the correlation ID stored in ctx.
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}

// ReportData is passed to report templates.
type ReportData struct {
	Role    string
	Name    string
	Number  int64
	Amount  string
	Purpose string
}

// Reporter writes one report line per visited approver.
type Reporter struct {
	logger   *slog.Logger
	renderer templates.Renderer
}

// NewReporter returns a chain observer backed by slog.
func NewReporter(logger *slog.Logger, renderer templates.Renderer) *Reporter {
	return &Reporter{logger: logger, renderer: renderer}
}

// Line renders the report line for a visit.
func (r *Reporter) Line(visit chain.Visit) string {
	data := ReportData{
		Role:    visit.Role,
		Name:    visit.Name,
		Number:  visit.Request.Number(),
		Amount:  purchase.FormatAmount(visit.Request.Amount()),
		Purpose: visit.Request.Purpose(),
	}
	fallback := fmt.Sprintf("%s %s reviewed purchase #%d, amount %s, purpose: %s",
		data.Role, data.Name, data.Number, data.Amount, data.Purpose)
	var renderer templates.Renderer
	if r != nil {
		renderer = r.renderer
	}
	return templates.RenderOr(renderer, data, fallback, "report."+visit.Role, "report.default")
}

// Visited implements chain.Observer.
func (r *Reporter) Visited(ctx context.Context, visit chain.Visit) {
	if r == nil || r.logger == nil {
		return
	}
	decision := chain.StatusStopped
	if visit.Continue {
		decision = chain.StatusContinued
	}
	r.logger.InfoContext(ctx, r.Line(visit),
		"correlation_id", CorrelationID(ctx),
		"position", visit.Position,
		"approver", visit.Name,
		"role", visit.Role,
		"number", visit.Request.Number(),
		"amount", visit.Request.Amount(),
		"purpose", visit.Request.Purpose(),
		"decision", decision,
	)
}
