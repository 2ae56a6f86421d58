package currency

import "strings"

const codeLength = 3

const (
	USD = "USD"
	EUR = "EUR"
	GBP = "GBP"
)

// Currencies is what the input layer offers; other codes are still accepted
// and converted at rate 1.
var Currencies = []string{USD, EUR, GBP}

type Rate struct {
	Name     string
	BaseRate float64
}

func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func IsKnown(code string) bool {
	code = Normalize(code)
	for _, c := range Currencies {
		if c == code {
			return true
		}
	}
	return false
}

// IsCode reports whether s is written as an ISO 4217 style code: exactly
// three upper-case latin letters, e.g. "JPY".
func IsCode(s string) bool {
	if len(s) != codeLength {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
