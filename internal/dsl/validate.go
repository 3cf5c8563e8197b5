package dsl

import (
	"fmt"
	"strings"

	"github.com/codex-k8s/purchase-chain/internal/constants"
)

// DefaultChainName is applied when chain.name is empty.
const DefaultChainName = "purchase"

// Validate applies defaults and verifies required fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if strings.TrimSpace(cfg.Chain.Name) == "" {
		cfg.Chain.Name = DefaultChainName
	}
	if len(cfg.Chain.Approvers) == 0 {
		return fmt.Errorf("chain.approvers must not be empty")
	}

	names := map[string]struct{}{}
	for i := range cfg.Chain.Approvers {
		item := &cfg.Chain.Approvers[i]
		item.Type = strings.ToLower(strings.TrimSpace(item.Type))
		item.Role = strings.TrimSpace(item.Role)
		if item.Type == "" {
			return fmt.Errorf("chain.approvers[%d].type is required", i)
		}
		switch item.Type {
		case constants.ApproverThreshold:
			if item.Role == "" {
				return fmt.Errorf("chain.approvers[%d].role is required", i)
			}
			if item.Threshold == nil {
				return fmt.Errorf("chain.approvers[%d].threshold is required", i)
			}
		case constants.ApproverBoard:
			if item.Role == "" {
				item.Role = constants.RoleCongress
			}
		default:
			return fmt.Errorf("chain.approvers[%d].type must be threshold or board", i)
		}
		if strings.TrimSpace(item.Name) == "" {
			item.Name = item.Role
		}
		if _, exists := names[item.Name]; exists {
			return fmt.Errorf("duplicate approver name: %s", item.Name)
		}
		names[item.Name] = struct{}{}
	}

	return nil
}
