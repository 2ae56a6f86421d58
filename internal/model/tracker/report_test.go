package tracker

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/budget-ledger/internal/entity/category"
	"max.ks1230/budget-ledger/internal/entity/expense"
)

func Test_OnReport_ShouldGroupByCategoryLargestFirst(t *testing.T) {
	tr, _ := newTracker()
	_, _ = tr.AddExpense(ExpenseRequest{Description: "lunch", Amount: 10, Currency: "USD", Category: "food"})
	_, _ = tr.AddExpense(ExpenseRequest{Description: "shoes", Amount: 40, Currency: "GBP", Category: "shopping"})
	_, _ = tr.AddExpense(ExpenseRequest{Description: "dinner", Amount: 15, Currency: "USD", Category: "food"})

	report, err := tr.Report("")
	require.NoError(t, err)

	require.Len(t, report.Records, 2)
	assert.Equal(t, category.Shopping, report.Records[0].Category)
	assert.Equal(t, 50.0, report.Records[0].Amount)
	assert.Equal(t, category.Food, report.Records[1].Category)
	assert.Equal(t, 25.0, report.Records[1].Amount)
	assert.Equal(t, 75.0, report.Total)
	assert.Equal(t, []string{"Shopping: 50.00", "Food: 25.00", "", "Total: 75.00"}, report.Lines())
}

func Test_OnReportForMonth_ShouldIncludeFreshEntries(t *testing.T) {
	tr, _ := newTracker()
	_, _ = tr.AddExpense(ExpenseRequest{Description: "bus", Amount: 3, Currency: "USD", Category: "transport"})

	for _, period := range ReportPeriods() {
		report, err := tr.Report(period)
		require.NoError(t, err, period)
		assert.Equal(t, 3.0, report.Total, period)
	}
}

func Test_OnUnsupportedPeriod_ShouldFail(t *testing.T) {
	tr, _ := newTracker()

	_, err := tr.Report("decade")

	assert.True(t, errors.Is(err, ErrUnsupportedPeriod))
}

func Test_OnFilterExpensesAfter_ShouldDropOlderEntries(t *testing.T) {
	cut := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	exps := []expense.Entry{
		expense.NewEntryAt("old", 1, "USD", 1, category.Food, cut.Add(-time.Hour)),
		expense.NewEntryAt("edge", 2, "USD", 2, category.Food, cut),
		expense.NewEntryAt("new", 3, "USD", 3, category.Food, cut.Add(time.Hour)),
	}

	got := filterExpensesAfter(exps, cut)

	require.Len(t, got, 2)
	assert.Equal(t, "edge", got[0].Description())
	assert.Equal(t, "new", got[1].Description())
}

func Test_OnEmptyLedger_ShouldReportZero(t *testing.T) {
	tr, _ := newTracker()

	report, err := tr.Report("week")

	require.NoError(t, err)
	assert.Empty(t, report.Records)
	assert.Equal(t, []string{"", "Total: 0.00"}, report.Lines())
}
