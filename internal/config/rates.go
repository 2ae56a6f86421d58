package config

import "strings"

// RatesConfig maps a currency code to its value in the base currency.
type RatesConfig map[string]float64

var defaultRates = RatesConfig{
	"USD": 1.0,
	"EUR": 1.1,
	"GBP": 1.25,
}

// Table returns the configured rates with upper-cased codes, or the
// built-in table when the section is empty.
func (r RatesConfig) Table() map[string]float64 {
	src := r
	if len(src) == 0 {
		src = defaultRates
	}
	res := make(map[string]float64, len(src))
	for code, rate := range src {
		res[strings.ToUpper(code)] = rate
	}
	return res
}
