package tracing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type disabled struct{}

func (disabled) Enabled() bool       { return false }
func (disabled) ServiceName() string { return "test" }

func Test_OnDisabledTracing_ShouldReturnNopCloser(t *testing.T) {
	closer, err := Init(disabled{})

	require.NoError(t, err)
	assert.NoError(t, closer.Close())
}
