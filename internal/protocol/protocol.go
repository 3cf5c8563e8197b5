package protocol

// Dispatch statuses.
const (
	StatusContinued = "continued"
	StatusStopped   = "stopped"
)

// Response is the fixed JSON result printed for every dispatched request.
type Response struct {
	// CorrelationID links the response to its log records.
	CorrelationID string `json:"correlation_id"`
	// Number is the purchase order number.
	Number int64 `json:"number"`
	// Amount is the requested amount.
	Amount float64 `json:"amount"`
	// Purpose is the purchase purpose.
	Purpose string `json:"purpose"`
	// Status is continued or stopped.
	Status string `json:"status"`
	// StoppedBy names the approver that stopped the request.
	StoppedBy string `json:"stopped_by,omitempty"`
	// StoppedRole is the role of that approver.
	StoppedRole string `json:"stopped_role,omitempty"`
	// Visited lists approvers in visitation order.
	Visited []string `json:"visited"`
}
