package tracker

import (
	"sync"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/budget-ledger/internal/entity/category"
	"max.ks1230/budget-ledger/internal/model/alert"
	alertmock "max.ks1230/budget-ledger/internal/model/alert/mock"
	"max.ks1230/budget-ledger/internal/model/command"
	"max.ks1230/budget-ledger/internal/model/ledger"
	ledgermock "max.ks1230/budget-ledger/internal/model/ledger/mock"
	"max.ks1230/budget-ledger/internal/model/rates"
)

func newTracker() (*Tracker, *ledger.Ledger) {
	l := ledger.New()
	conv := rates.NewConverter(rates.NewStaticSource(map[string]float64{"USD": 1, "EUR": 1.1, "GBP": 1.25}))
	return New(conv, l, command.NewHistory(l), "usd"), l
}

func Test_OnApproachingBudget_ShouldLeaveZeroAndSignalApproaching(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	tr, l := newTracker()
	sink := alertmock.NewSinkMock(m)
	sink.NotifyMock.Expect(alert.Approaching, 100, 100).Return()
	l.RegisterObserver(alert.New(sink))
	tr.SetBudget(100)

	_, err := tr.AddExpense(ExpenseRequest{Description: "coffee", Amount: 5, Currency: "USD", Category: "food"})
	require.NoError(t, err)
	_, err = tr.AddExpense(ExpenseRequest{Description: "rent", Amount: 95, Currency: "USD", Category: "shopping"})
	require.NoError(t, err)

	assert.Equal(t, 0.0, tr.Remaining())
	assert.Equal(t, uint64(1), sink.NotifyAfterCounter())
}

func Test_OnExpenseOverBudget_ShouldSignalExceeded(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	tr, l := newTracker()
	sink := alertmock.NewSinkMock(m)
	sink.NotifyMock.Expect(alert.Exceeded, 120, 100).Return()
	l.RegisterObserver(alert.New(sink))
	tr.SetBudget(100)

	_, err := tr.AddExpense(ExpenseRequest{Description: "rent", Amount: 120, Currency: "usd", Category: "Shopping"})
	require.NoError(t, err)

	assert.Equal(t, -20.0, tr.Remaining())
}

func Test_OnForeignCurrency_ShouldStoreConvertedAmount(t *testing.T) {
	tr, l := newTracker()

	view, err := tr.AddExpense(ExpenseRequest{Description: " hotel ", Amount: 100, Currency: "eur", Category: "transport"})
	require.NoError(t, err)

	assert.Equal(t, "hotel", view.Details())
	assert.Equal(t, 100.0, view.Amount)
	entries := l.SnapshotExpenses()
	require.Len(t, entries, 1)
	assert.Equal(t, "EUR", entries[0].Currency())
	assert.InDelta(t, 110.0, entries[0].ConvertedAmount(), 1e-9)
	assert.Equal(t, category.Transport, entries[0].Category())
}

func Test_OnUnknownCurrency_ShouldConvertAtIdentity(t *testing.T) {
	tr, l := newTracker()

	_, err := tr.AddExpense(ExpenseRequest{Description: "souvenir", Amount: 100, Currency: "XYZ", Category: "shopping"})
	require.NoError(t, err)

	assert.Equal(t, 100.0, l.Total())
}

func Test_OnEmptyCurrency_ShouldUseBaseCurrency(t *testing.T) {
	tr, l := newTracker()

	_, err := tr.AddExpense(ExpenseRequest{Description: "bread", Amount: 2, Category: "food"})
	require.NoError(t, err)

	assert.Equal(t, "USD", l.SnapshotExpenses()[0].Currency())
}

func Test_OnInvalidCategory_ShouldNotTouchLedger(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	tr, l := newTracker()
	observer := ledgermock.NewObserverMock(m)
	l.RegisterObserver(observer)

	for _, name := range []string{"Entertainment", "rent", ""} {
		_, err := tr.AddExpense(ExpenseRequest{Description: "x", Amount: 10, Currency: "USD", Category: name})
		assert.True(t, errors.Is(err, category.ErrInvalidCategory), name)
	}

	assert.Equal(t, 0, l.Len())
	assert.Equal(t, uint64(0), observer.OnUpdateBeforeCounter())
	ok, err := tr.Undo()
	assert.False(t, ok)
	assert.NoError(t, err)
}

func Test_OnRecurringRequest_ShouldMarkView(t *testing.T) {
	tr, l := newTracker()

	view, err := tr.AddExpense(ExpenseRequest{Description: "gym", Amount: 30, Currency: "USD", Category: "shopping", Recurring: true})
	require.NoError(t, err)

	assert.Equal(t, "gym (Recurring)", view.Details())
	assert.Equal(t, "gym", l.SnapshotExpenses()[0].Description())
}

func Test_OnUndoRedo_ShouldReplayThroughLedger(t *testing.T) {
	tr, l := newTracker()
	_, _ = tr.AddExpense(ExpenseRequest{Description: "A", Amount: 5, Currency: "USD", Category: "food"})
	_, _ = tr.AddExpense(ExpenseRequest{Description: "B", Amount: 10, Currency: "USD", Category: "food"})

	for i := 0; i < 2; i++ {
		ok, err := tr.Undo()
		require.True(t, ok)
		require.NoError(t, err)
	}
	ok, err := tr.Redo()
	require.True(t, ok)
	require.NoError(t, err)

	assert.Equal(t, []string{"A (USD 5.00 -> USD $5.00, Category: Food)"}, tr.Expenses())
	assert.Equal(t, 5.0, l.Total())
}

func Test_OnConcurrentCalls_ShouldKeepTotalConsistent(t *testing.T) {
	tr, l := newTracker()
	tr.SetBudget(1000)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = tr.AddExpense(ExpenseRequest{Description: "tick", Amount: 1, Currency: "USD", Category: "food"})
			_ = tr.Remaining()
			_ = tr.Expenses()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50.0, l.Total())
	assert.Equal(t, 950.0, tr.Remaining())
}

func Test_OnBudgetAndBaseCurrency_ShouldReportConfiguredValues(t *testing.T) {
	tr, _ := newTracker()

	assert.Equal(t, 0.0, tr.Budget())
	tr.SetBudget(250)

	assert.Equal(t, 250.0, tr.Budget())
	assert.Equal(t, "USD", tr.BaseCurrency())
}
