package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codex-k8s/purchase-chain/internal/constants"
	"github.com/codex-k8s/purchase-chain/internal/purchase"
)

func TestCongressAlwaysStops(t *testing.T) {
	a := Congress("cc")

	assert.Equal(t, "cc", a.Name())
	assert.Equal(t, constants.RoleCongress, a.Role())
	for _, amount := range []float64{-1, 0, 50000, 2e6, 1e12} {
		assert.False(t, a.Evaluate(purchase.NewRequest(amount, 1, "")))
	}
}

func TestDefaults(t *testing.T) {
	a := Approver{}
	assert.Equal(t, constants.RoleCongress, a.Role())
	assert.Equal(t, constants.RoleCongress, a.Name())
}
