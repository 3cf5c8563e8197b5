package board

import (
	"github.com/codex-k8s/purchase-chain/internal/constants"
	"github.com/codex-k8s/purchase-chain/internal/purchase"
)

// Approver is a terminal authority that never escalates.
type Approver struct {
	// Label is a human-friendly name.
	Label string
	// RoleName identifies the approver role.
	RoleName string
}

// Congress returns the board of directors approver.
func Congress(name string) Approver {
	return Approver{Label: name, RoleName: constants.RoleCongress}
}

// Name returns approver name for audit and logging.
func (a Approver) Name() string {
	if a.Label != "" {
		return a.Label
	}
	return a.Role()
}

// Role returns the approver role.
func (a Approver) Role() string {
	if a.RoleName != "" {
		return a.RoleName
	}
	return constants.RoleCongress
}

// Evaluate always stops propagation.
func (a Approver) Evaluate(purchase.Request) bool {
	return false
}
