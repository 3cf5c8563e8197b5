package chain

import (
	"context"

	"github.com/codex-k8s/purchase-chain/internal/purchase"
)

// Dispatch statuses.
const (
	StatusContinued = "continued"
	StatusStopped   = "stopped"
)

// Approver decides whether a request moves on to the next link.
type Approver interface {
	// Name returns the approver identifier.
	Name() string
	// Role returns the approver role.
	Role() string
	// Evaluate returns true to continue to the successor and false to stop.
	Evaluate(req purchase.Request) bool
}

// Link is a chain node that exclusively owns its successor.
type Link struct {
	approver Approver
	next     *Link
}

// NewLink wraps an approver and an already built successor chain.
func NewLink(approver Approver, next *Link) *Link {
	return &Link{approver: approver, next: next}
}

// Build assembles a chain in the given order and returns its head.
// Nil approvers are skipped; an empty list yields a nil head.
func Build(approvers ...Approver) *Link {
	var head *Link
	for i := len(approvers) - 1; i >= 0; i-- {
		if approvers[i] == nil {
			continue
		}
		head = NewLink(approvers[i], head)
	}
	return head
}

// Approver returns the approver held by the link.
func (l *Link) Approver() Approver {
	if l == nil {
		return nil
	}
	return l.approver
}

// Successor returns the next link or nil at the end of the chain.
func (l *Link) Successor() *Link {
	if l == nil {
		return nil
	}
	return l.next
}

// Len returns the number of links from l to the end of the chain.
func (l *Link) Len() int {
	n := 0
	for cur := l; cur != nil; cur = cur.next {
		n++
	}
	return n
}

// Outcome is the explicit result of a dispatch.
type Outcome struct {
	// Status is StatusContinued or StatusStopped.
	Status string
	// StoppedBy names the approver that stopped propagation.
	StoppedBy string
	// StoppedRole is the role of that approver.
	StoppedRole string
	// Visited lists approver names in visitation order.
	Visited []string
}

// Stopped reports whether a link stopped propagation.
func (o Outcome) Stopped() bool {
	return o.Status == StatusStopped
}

// Continued reports whether the end of the chain was reached.
func (o Outcome) Continued() bool {
	return o.Status == StatusContinued
}

// Depth returns the number of visited links.
func (o Outcome) Depth() int {
	return len(o.Visited)
}

// Dispatch walks the chain starting at l. Each link is evaluated once and
// reported to the observer; traversal ends at the first stop or at the tail.
func (l *Link) Dispatch(ctx context.Context, req purchase.Request, observer Observer) Outcome {
	out := Outcome{Status: StatusContinued}
	position := 0
	for cur := l; cur != nil; cur = cur.next {
		if cur.approver == nil {
			continue
		}
		proceed := cur.approver.Evaluate(req)
		out.Visited = append(out.Visited, cur.approver.Name())
		if observer != nil {
			observer.Visited(ctx, Visit{
				Position: position,
				Name:     cur.approver.Name(),
				Role:     cur.approver.Role(),
				Request:  req,
				Continue: proceed,
			})
		}
		position++
		if !proceed {
			out.Status = StatusStopped
			out.StoppedBy = cur.approver.Name()
			out.StoppedRole = cur.approver.Role()
			return out
		}
	}
	return out
}
