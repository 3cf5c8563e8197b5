package constants

// Approver type aliases.
const (
	ApproverThreshold = "threshold"
	ApproverBoard     = "board"
)

// Approver roles.
const (
	RoleDirector      = "director"
	RoleVicePresident = "vice_president"
	RolePresident     = "president"
	RoleCongress      = "congress"
)

// Reference approval thresholds; an amount strictly above the threshold is escalated.
const (
	DirectorThreshold      = 50000.0
	VicePresidentThreshold = 100000.0
	PresidentThreshold     = 500000.0
)
