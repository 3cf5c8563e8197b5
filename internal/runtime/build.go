package runtime

import (
	"fmt"
	"log/slog"

	"github.com/codex-k8s/purchase-chain/internal/approver/board"
	"github.com/codex-k8s/purchase-chain/internal/approver/threshold"
	"github.com/codex-k8s/purchase-chain/internal/constants"
	"github.com/codex-k8s/purchase-chain/internal/dsl"
	"github.com/codex-k8s/purchase-chain/internal/runtime/chain"
)

// Builder constructs an approval chain from the DSL config.
type Builder struct {
	// Logger is used for structured logging.
	Logger *slog.Logger
}

// Build assembles the configured chain tail-first and returns its head.
func (b Builder) Build(cfg *dsl.Config) (*chain.Link, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	approvers, err := buildApprovers(cfg.Chain.Approvers)
	if err != nil {
		return nil, fmt.Errorf("chain %s: %w", cfg.Chain.Name, err)
	}

	var head *chain.Link
	for i := len(approvers) - 1; i >= 0; i-- {
		head = chain.NewLink(approvers[i], head)
	}

	if b.Logger != nil {
		b.Logger.Info("approval chain built", "chain", cfg.Chain.Name, "depth", head.Len())
	}
	return head, nil
}

func buildApprovers(configs []dsl.ApproverConfig) ([]chain.Approver, error) {
	items := make([]chain.Approver, 0, len(configs))
	for i, cfg := range configs {
		switch cfg.Type {
		case constants.ApproverThreshold:
			if cfg.Threshold == nil {
				return nil, fmt.Errorf("approver %d (%s): threshold is required", i, cfg.Name)
			}
			items = append(items, threshold.New(cfg.Role, cfg.Name, *cfg.Threshold))
		case constants.ApproverBoard:
			items = append(items, board.Approver{Label: cfg.Name, RoleName: cfg.Role})
		default:
			return nil, fmt.Errorf("unknown approver type: %s", cfg.Type)
		}
	}
	return items, nil
}

// Reference returns the reference chain Director -> VicePresident -> President -> Congress.
func Reference() *chain.Link {
	congress := chain.NewLink(board.Congress("cc"), nil)
	president := chain.NewLink(threshold.President("pp"), congress)
	vicePresident := chain.NewLink(threshold.VicePresident("vv"), president)
	return chain.NewLink(threshold.Director("dd"), vicePresident)
}
