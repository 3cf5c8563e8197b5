package chain

import (
	"context"
	"sync"

	"github.com/codex-k8s/purchase-chain/internal/purchase"
)

// Visit describes one evaluated link.
type Visit struct {
	// Position is the zero-based index from the head.
	Position int
	// Name is the approver name.
	Name string
	// Role is the approver role.
	Role string
	// Request is the evaluated request.
	Request purchase.Request
	// Continue is the approver decision.
	Continue bool
}

// Observer receives a report for every visited link.
type Observer interface {
	// Visited is called after a link has been evaluated.
	Visited(ctx context.Context, visit Visit)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, visit Visit)

// Visited calls f.
func (f ObserverFunc) Visited(ctx context.Context, visit Visit) {
	f(ctx, visit)
}

// Observers fans a visit out to every non-nil observer in order.
type Observers []Observer

// Visited forwards the visit.
func (o Observers) Visited(ctx context.Context, visit Visit) {
	for _, item := range o {
		if item != nil {
			item.Visited(ctx, visit)
		}
	}
}

// Recorder keeps visits in memory.
type Recorder struct {
	mu     sync.Mutex
	visits []Visit
}

// Visited stores the visit.
func (r *Recorder) Visited(_ context.Context, visit Visit) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.visits = append(r.visits, visit)
}

// Visits returns a copy of recorded visits.
func (r *Recorder) Visits() []Visit {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Visit, len(r.visits))
	copy(out, r.visits)
	return out
}

// Names returns recorded approver names.
func (r *Recorder) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.visits))
	for _, visit := range r.visits {
		out = append(out, visit.Name)
	}
	return out
}

// Reset drops recorded visits.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.visits = nil
}
