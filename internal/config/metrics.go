package config

import "fmt"

type MetricsConfig struct {
	ListenPort int `yaml:"port"`
}

func (m *MetricsConfig) Enabled() bool {
	return m.ListenPort > 0
}

func (m *MetricsConfig) Addr() string {
	return fmt.Sprintf(":%d", m.ListenPort)
}
