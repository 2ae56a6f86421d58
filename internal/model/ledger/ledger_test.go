package ledger

import (
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/budget-ledger/internal/entity/category"
	"max.ks1230/budget-ledger/internal/entity/expense"
	"max.ks1230/budget-ledger/internal/model/ledger/mock"
)

type update struct {
	total  float64
	budget float64
}

// recordingObserver returns an observer mock that appends every update to updates.
func recordingObserver(m minimock.Tester, updates *[]update) *mock.ObserverMock {
	observer := mock.NewObserverMock(m)
	observer.OnUpdateMock.Inspect(func(total, budget float64) {
		*updates = append(*updates, update{total, budget})
	}).Return()
	return observer
}

func entry(description string, converted float64) expense.Entry {
	return expense.NewEntry(description, converted, "USD", converted, category.Food)
}

func Test_OnAddExpenses_ShouldSumConvertedAmounts(t *testing.T) {
	l := New()
	amounts := []float64{5, 95, 0.5, 12.25, -3}
	want := 0.0
	for i, a := range amounts {
		l.AddExpense(entry(string(rune('a'+i)), a))
		want += a
	}

	assert.Equal(t, want, l.Total())
	assert.Equal(t, len(amounts), l.Len())
}

func Test_OnRemoveExpense_ShouldDropFirstMatchOnly(t *testing.T) {
	l := New()
	l.AddExpense(expense.NewEntry("lunch", 10, "EUR", 11, category.Food))
	l.AddExpense(entry("taxi", 20))
	l.AddExpense(expense.NewEntry("lunch", 11, "USD", 11, category.Shopping))

	ok := l.RemoveExpense("lunch", 11)
	require.True(t, ok)

	entries := l.SnapshotExpenses()
	require.Len(t, entries, 2)
	assert.Equal(t, "taxi", entries[0].Description())
	assert.Equal(t, "lunch", entries[1].Description())
	assert.Equal(t, category.Shopping, entries[1].Category())
	assert.Equal(t, 31.0, l.Total())
}

func Test_OnRemoveMissingExpense_ShouldReturnFalseAndNotNotify(t *testing.T) {
	l := New()
	m := minimock.NewController(t)
	defer m.Finish()
	l.AddExpense(entry("taxi", 20))
	observer := mock.NewObserverMock(m)
	l.RegisterObserver(observer)

	assert.False(t, l.RemoveExpense("taxi", 21))
	assert.False(t, l.RemoveExpense("bus", 20))
	assert.Equal(t, 20.0, l.Total())
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, uint64(0), observer.OnUpdateBeforeCounter())
}

func Test_OnSetBudget_ShouldReplaceCeilingAndNotify(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	var updates []update
	l := New()
	l.RegisterObserver(recordingObserver(m, &updates))

	l.SetBudget(100)
	l.SetBudget(-5)

	assert.Equal(t, -5.0, l.Budget())
	assert.Equal(t, []update{{0, 100}, {0, -5}}, updates)
}

func Test_OnRemainingBudget_ShouldSubtractTotal(t *testing.T) {
	l := New()
	l.SetBudget(100)
	l.AddExpense(entry("coffee", 5))
	l.AddExpense(entry("rent", 95))

	assert.Equal(t, 0.0, l.RemainingBudget())

	l.RemoveExpense("coffee", 5)
	assert.Equal(t, 5.0, l.RemainingBudget())
}

func Test_OnSnapshotMutation_ShouldNotAffectLedger(t *testing.T) {
	l := New()
	l.AddExpense(entry("a", 1))
	l.AddExpense(entry("b", 2))

	snap := l.SnapshotExpenses()
	snap[0] = entry("changed", 100)
	_ = append(snap[:1], entry("x", 7))

	again := l.SnapshotExpenses()
	assert.Equal(t, "a", again[0].Description())
	assert.Equal(t, "b", again[1].Description())
	assert.Equal(t, 3.0, l.Total())
}

func Test_OnMutations_ShouldNotifyEveryObserverInOrder(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	l := New()
	var calls []string
	var seen []update
	first := mock.NewObserverMock(m)
	first.OnUpdateMock.Inspect(func(total, budget float64) {
		calls = append(calls, "first")
		seen = append(seen, update{total, budget})
	}).Return()
	l.RegisterObserver(first)
	l.RegisterObserver(ObserverFunc(func(total, budget float64) {
		calls = append(calls, "second")
	}))

	l.SetBudget(50)
	l.AddExpense(entry("a", 10))
	l.AddExpense(entry("b", 15))
	l.RemoveExpense("a", 10)
	l.RemoveExpense("missing", 1)

	assert.Len(t, calls, 4*2)
	for i := 0; i < len(calls); i += 2 {
		assert.Equal(t, []string{"first", "second"}, calls[i:i+2])
	}
	assert.Equal(t, []update{{0, 50}, {10, 50}, {25, 50}, {15, 50}}, seen)
}

func Test_OnSameObserverRegisteredTwice_ShouldNotifyTwice(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	l := New()
	observer := mock.NewObserverMock(m)
	observer.OnUpdateMock.Expect(1, 0).Return()
	l.RegisterObserver(observer)
	l.RegisterObserver(observer)

	l.AddExpense(entry("a", 1))

	assert.Equal(t, uint64(2), observer.OnUpdateAfterCounter())
}
