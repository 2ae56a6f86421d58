package config

const defaultServiceName = "budget-ledger"

type TracingConfig struct {
	On      bool   `yaml:"enabled"`
	Service string `yaml:"service-name"`
}

func (t *TracingConfig) Enabled() bool {
	return t.On
}

func (t *TracingConfig) ServiceName() string {
	if t.Service == "" {
		return defaultServiceName
	}
	return t.Service
}
