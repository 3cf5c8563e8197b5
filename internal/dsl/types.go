package dsl

// Config is the top-level YAML configuration.
type Config struct {
	// Chain describes the approval chain.
	Chain ChainConfig `yaml:"chain"`
	// Requests lists purchase requests dispatched when none is given on the command line.
	Requests []RequestConfig `yaml:"requests"`
}

// ChainConfig declares an ordered approval chain, head first.
type ChainConfig struct {
	// Name identifies the chain in logs.
	Name string `yaml:"name"`
	// Approvers lists the chain links in dispatch order.
	Approvers []ApproverConfig `yaml:"approvers"`
}

// ApproverConfig defines a single approver.
type ApproverConfig struct {
	// Type selects approver implementation (threshold or board).
	Type string `yaml:"type"`
	// Role identifies the approver role and report template.
	Role string `yaml:"role"`
	// Name is a human-friendly approver name.
	Name string `yaml:"name"`
	// Threshold is the exclusive escalation limit for threshold approvers.
	Threshold *float64 `yaml:"threshold"`
}

// RequestConfig declares a sample purchase request.
type RequestConfig struct {
	// Number is the purchase order number.
	Number int64 `yaml:"number"`
	// Amount is the requested amount.
	Amount float64 `yaml:"amount"`
	// Purpose is the free-form purchase purpose.
	Purpose string `yaml:"purpose"`
}
