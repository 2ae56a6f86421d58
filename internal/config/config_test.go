package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnParse_ShouldReadAllSections(t *testing.T) {
	raw := []byte(`
app:
  base-currency: usd
  budget: 250.5
rates:
  eur: 1.2
  GBP: 1.3
metrics:
  port: 9100
tracing:
  enabled: true
  service-name: ledger-test
`)
	cfg, err := Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "USD", cfg.App().BaseCurrency())
	assert.Equal(t, 250.5, cfg.App().Budget())
	assert.Equal(t, map[string]float64{"EUR": 1.2, "GBP": 1.3}, cfg.Rates().Table())
	assert.True(t, cfg.Metrics().Enabled())
	assert.Equal(t, ":9100", cfg.Metrics().Addr())
	assert.True(t, cfg.Tracing().Enabled())
	assert.Equal(t, "ledger-test", cfg.Tracing().ServiceName())
}

func Test_OnEmptyConfig_ShouldUseDefaults(t *testing.T) {
	cfg, err := Parse([]byte(""))
	require.NoError(t, err)

	assert.Equal(t, "USD", cfg.App().BaseCurrency())
	assert.Equal(t, 0.0, cfg.App().Budget())
	assert.Equal(t, map[string]float64{"USD": 1.0, "EUR": 1.1, "GBP": 1.25}, cfg.Rates().Table())
	assert.False(t, cfg.Metrics().Enabled())
	assert.False(t, cfg.Tracing().Enabled())
	assert.Equal(t, "budget-ledger", cfg.Tracing().ServiceName())
}

func Test_OnBlankBaseCurrency_ShouldFail(t *testing.T) {
	_, err := Parse([]byte("app:\n  base-currency: \"  \"\n"))
	assert.Error(t, err)
}

func Test_OnMalformedYAML_ShouldFail(t *testing.T) {
	_, err := Parse([]byte("app: [unclosed"))
	assert.Error(t, err)
}

func Test_OnNewFromFile_ShouldReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app:\n  budget: 42\n"), 0o600))

	cfg, err := NewFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 42.0, cfg.App().Budget())
}

func Test_OnMissingFile_ShouldFail(t *testing.T) {
	_, err := NewFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
