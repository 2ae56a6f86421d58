package expense

import (
	"fmt"
	"time"

	"max.ks1230/budget-ledger/internal/entity/category"
	"max.ks1230/budget-ledger/internal/entity/currency"
)

// Entry is a recorded expense. It is never changed after construction;
// the ledger removes entries by value, see Matches.
type Entry struct {
	description     string
	originalAmount  float64
	currency        string
	convertedAmount float64
	category        category.Category
	created         time.Time
}

func NewEntry(description string, original float64, curr string, converted float64, cat category.Category) Entry {
	return NewEntryAt(description, original, curr, converted, cat, time.Now())
}

func NewEntryAt(description string, original float64, curr string, converted float64, cat category.Category, created time.Time) Entry {
	return Entry{
		description:     description,
		originalAmount:  original,
		currency:        currency.Normalize(curr),
		convertedAmount: converted,
		category:        cat,
		created:         created,
	}
}

func (e Entry) Description() string {
	return e.description
}

func (e Entry) OriginalAmount() float64 {
	return e.originalAmount
}

func (e Entry) Currency() string {
	return e.currency
}

func (e Entry) ConvertedAmount() float64 {
	return e.convertedAmount
}

func (e Entry) Category() category.Category {
	return e.category
}

func (e Entry) Created() time.Time {
	return e.created
}

// Matches compares exactly on description and converted amount.
func (e Entry) Matches(description string, converted float64) bool {
	return e.description == description && e.convertedAmount == converted
}

// Format renders the entry with the given base currency label.
func (e Entry) Format(base string) string {
	return fmt.Sprintf("%s (%s %.2f -> %s $%.2f, Category: %s)",
		e.description, e.currency, e.originalAmount, base, e.convertedAmount, e.category)
}

func (e Entry) String() string {
	return e.Format(currency.USD)
}
