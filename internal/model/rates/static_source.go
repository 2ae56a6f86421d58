package rates

import (
	"sort"

	"go.uber.org/zap"
	"max.ks1230/budget-ledger/internal/entity/currency"
	"max.ks1230/budget-ledger/internal/logger"
)

//go:generate minimock -i ratesConfig -o ./mock/rates_config_mock.go -n RatesConfigMock

type ratesConfig interface {
	Table() map[string]float64
}

// StaticSource is an in-memory rate table.
type StaticSource struct {
	rates map[string]float64
}

func NewStaticSource(table map[string]float64) *StaticSource {
	s := &StaticSource{rates: make(map[string]float64, len(table))}
	for code, rate := range table {
		s.rates[currency.Normalize(code)] = rate
	}
	return s
}

func NewStaticSourceFromConfig(cfg ratesConfig) *StaticSource {
	s := NewStaticSource(cfg.Table())
	logger.Info("rates loaded", zap.Int("count", len(s.rates)))
	return s
}

func (s *StaticSource) Rate(code string) (float64, bool) {
	rate, ok := s.rates[code]
	return rate, ok
}

// Rates lists the table with the built-in currencies first, followed by any
// other configured codes in alphabetical order.
func (s *StaticSource) Rates() []currency.Rate {
	res := make([]currency.Rate, 0, len(s.rates))
	for _, name := range currency.Currencies {
		if rate, ok := s.rates[name]; ok {
			res = append(res, currency.Rate{Name: name, BaseRate: rate})
		}
	}

	extra := make([]string, 0, len(s.rates)-len(res))
	for name := range s.rates {
		if !currency.IsKnown(name) {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		res = append(res, currency.Rate{Name: name, BaseRate: s.rates[name]})
	}
	return res
}
