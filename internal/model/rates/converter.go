package rates

import (
	"max.ks1230/budget-ledger/internal/entity/currency"
)

const identityRate = 1.0

//go:generate minimock -i RateSource -o ./mock/rate_source_mock.go -n RateSourceMock

// RateSource returns how many base-currency units one unit of code is worth.
type RateSource interface {
	Rate(code string) (float64, bool)
}

type Converter struct {
	source RateSource
}

func NewConverter(source RateSource) *Converter {
	return &Converter{source: source}
}

// Convert returns amount in the base currency. Codes the source does not
// know are converted at rate 1.
func (c *Converter) Convert(amount float64, code string) float64 {
	return amount * c.rate(currency.Normalize(code))
}

func (c *Converter) rate(code string) float64 {
	rate, ok := c.source.Rate(code)
	if !ok {
		return identityRate
	}
	return rate
}
