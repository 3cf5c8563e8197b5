package purchase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestAccessors(t *testing.T) {
	req := NewRequest(55000, 10001, "project")

	assert.Equal(t, 55000.0, req.Amount())
	assert.Equal(t, int64(10001), req.Number())
	assert.Equal(t, "project", req.Purpose())
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "55000", FormatAmount(55000))
	assert.Equal(t, "2000000", FormatAmount(2e6))
	assert.Equal(t, "12.5", FormatAmount(12.5))
	assert.Equal(t, "-3", FormatAmount(-3))
}
