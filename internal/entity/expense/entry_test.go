package expense

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"max.ks1230/budget-ledger/internal/entity/category"
)

func Test_OnNewEntry_ShouldKeepAllFields(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	e := NewEntryAt("lunch", 10, "eur", 11, category.Food, created)

	assert.Equal(t, "lunch", e.Description())
	assert.Equal(t, 10.0, e.OriginalAmount())
	assert.Equal(t, "EUR", e.Currency())
	assert.Equal(t, 11.0, e.ConvertedAmount())
	assert.Equal(t, category.Food, e.Category())
	assert.Equal(t, created, e.Created())
}

func Test_OnMatches_ShouldCompareDescriptionAndConvertedAmount(t *testing.T) {
	e := NewEntry("taxi", 20, "GBP", 25, category.Transport)

	assert.True(t, e.Matches("taxi", 25))
	assert.False(t, e.Matches("taxi", 20))
	assert.False(t, e.Matches("Taxi", 25))
	// original amount and currency are not part of the comparison
	assert.True(t, NewEntry("taxi", 25, "USD", 25, category.Shopping).Matches("taxi", 25))
}

func Test_OnString_ShouldRenderOriginalAndConverted(t *testing.T) {
	e := NewEntry("coffee", 100, "EUR", 110, category.Food)

	assert.Equal(t, "coffee (EUR 100.00 -> USD $110.00, Category: Food)", e.String())
	assert.Equal(t, "coffee (EUR 100.00 -> GBP $110.00, Category: Food)", e.Format("GBP"))
}
