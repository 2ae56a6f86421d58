package tracker

import (
	"fmt"
	"sort"
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
	"max.ks1230/budget-ledger/internal/entity/category"
	"max.ks1230/budget-ledger/internal/entity/expense"
)

var ErrUnsupportedPeriod = errors.New("report period is not supported")

type Record struct {
	Category category.Category
	Amount   float64
}

type Report struct {
	Records []Record
	Total   float64
}

func periodStart(period string) (time.Time, error) {
	switch period {
	case "":
		return time.Time{}, nil
	case "week":
		return now.BeginningOfWeek(), nil
	case "month":
		return now.BeginningOfMonth(), nil
	case "year":
		return now.BeginningOfYear(), nil
	default:
		return time.Time{}, errors.Wrap(ErrUnsupportedPeriod, period)
	}
}

func ReportPeriods() []string {
	return []string{"", "week", "month", "year"}
}

// Report sums the current entries per category in the base currency,
// largest first. An empty period covers every entry.
func (t *Tracker) Report(period string) (Report, error) {
	after, err := periodStart(period)
	if err != nil {
		return Report{}, errors.Wrap(err, "generate report")
	}
	return groupExpenses(filterExpensesAfter(t.snapshot(), after)), nil
}

func filterExpensesAfter(exps []expense.Entry, after time.Time) []expense.Entry {
	res := make([]expense.Entry, 0, len(exps))
	for _, exp := range exps {
		if !exp.Created().Before(after) {
			res = append(res, exp)
		}
	}
	return res
}

func groupExpenses(exps []expense.Entry) Report {
	m := make(map[category.Category]float64)
	for _, exp := range exps {
		m[exp.Category()] += exp.ConvertedAmount()
	}
	records := make([]Record, 0, len(m))
	total := 0.0
	for cat, am := range m {
		records = append(records, Record{Category: cat, Amount: am})
		total += am
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Amount == records[j].Amount {
			return records[i].Category < records[j].Category
		}
		return records[i].Amount > records[j].Amount
	})
	return Report{Records: records, Total: total}
}

func (r Report) Lines() []string {
	res := make([]string, 0, len(r.Records)+2)
	for _, rec := range r.Records {
		res = append(res, fmt.Sprintf("%s: %.2f", rec.Category, rec.Amount))
	}
	return append(res, "", fmt.Sprintf("Total: %.2f", r.Total))
}
