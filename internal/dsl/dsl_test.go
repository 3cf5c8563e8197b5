package dsl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
chain:
  approvers:
    - type: Threshold
      role: director
      name: dd
      threshold: 50000
    - type: board
requests:
  - number: 10001
    amount: 55000
    purpose: project
`

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, DefaultChainName, cfg.Chain.Name)
	require.Len(t, cfg.Chain.Approvers, 2)
	assert.Equal(t, "threshold", cfg.Chain.Approvers[0].Type)
	require.NotNil(t, cfg.Chain.Approvers[0].Threshold)
	assert.Equal(t, 50000.0, *cfg.Chain.Approvers[0].Threshold)
	assert.Equal(t, "congress", cfg.Chain.Approvers[1].Role)
	assert.Equal(t, "congress", cfg.Chain.Approvers[1].Name)
	assert.Equal(t, []RequestConfig{{Number: 10001, Amount: 55000, Purpose: "project"}}, cfg.Requests)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load([]byte("chain:\n  approvers:\n    - type: board\n      limit: 5\n"))
	assert.ErrorContains(t, err, "parse yaml")
}

func TestLoadEmpty(t *testing.T) {
	_, err := Load(nil)
	assert.ErrorContains(t, err, "chain.approvers must not be empty")
}

func TestValidateErrors(t *testing.T) {
	zero := 0.0
	tests := []struct {
		name      string
		approvers []ApproverConfig
		want      string
	}{
		{"missing type", []ApproverConfig{{Name: "a"}}, "chain.approvers[0].type is required"},
		{"unknown type", []ApproverConfig{{Type: "http"}}, "must be threshold or board"},
		{"missing role", []ApproverConfig{{Type: "threshold", Threshold: &zero}}, "chain.approvers[0].role is required"},
		{"missing threshold", []ApproverConfig{{Type: "threshold", Role: "director"}}, "chain.approvers[0].threshold is required"},
		{"duplicate name", []ApproverConfig{{Type: "board", Name: "x"}, {Type: "board", Name: "x"}}, "duplicate approver name: x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&Config{Chain: ChainConfig{Approvers: tt.approvers}})
			assert.ErrorContains(t, err, tt.want)
		})
	}
	assert.Error(t, Validate(nil))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chain.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Chain.Approvers, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")
}
