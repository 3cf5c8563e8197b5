package threshold

import (
	"github.com/codex-k8s/purchase-chain/internal/constants"
	"github.com/codex-k8s/purchase-chain/internal/purchase"
)

// Approver escalates requests whose amount exceeds its threshold.
type Approver struct {
	// Label is a human-friendly name.
	Label string
	// RoleName identifies the approver role.
	RoleName string
	// Threshold is the exclusive amount limit handled by this approver.
	Threshold float64
}

// New returns an approver with a custom role and threshold.
func New(role, name string, threshold float64) Approver {
	return Approver{Label: name, RoleName: role, Threshold: threshold}
}

// Director returns the first-level approver.
func Director(name string) Approver {
	return New(constants.RoleDirector, name, constants.DirectorThreshold)
}

// VicePresident returns the second-level approver.
func VicePresident(name string) Approver {
	return New(constants.RoleVicePresident, name, constants.VicePresidentThreshold)
}

// President returns the third-level approver.
func President(name string) Approver {
	return New(constants.RolePresident, name, constants.PresidentThreshold)
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
	return "threshold"
}

// Evaluate continues when the amount is strictly greater than the threshold.
func (a Approver) Evaluate(req purchase.Request) bool {
	return req.Amount() > a.Threshold
}
