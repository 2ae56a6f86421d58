package config

import (
	"strings"

	"github.com/pkg/errors"
)

const defaultBaseCurrency = "USD"

type AppConfig struct {
	BaseCurrencyName string  `yaml:"base-currency"`
	StartBudget      float64 `yaml:"budget"`
}

// BaseCurrency is the currency every entry is converted into.
func (s *AppConfig) BaseCurrency() string {
	if s.BaseCurrencyName == "" {
		return defaultBaseCurrency
	}
	return strings.ToUpper(s.BaseCurrencyName)
}

func (s *AppConfig) Budget() float64 {
	return s.StartBudget
}

func (s *AppConfig) validate() error {
	if strings.TrimSpace(s.BaseCurrencyName) == "" && s.BaseCurrencyName != "" {
		return errors.New("base-currency is blank")
	}
	return nil
}
