package ledger

import (
	"math"

	"go.uber.org/zap"
	"max.ks1230/budget-ledger/internal/entity/expense"
	"max.ks1230/budget-ledger/internal/logger"
)

const invariantTolerance = 1e-9

//go:generate minimock -i Observer -o ./mock/observer_mock.go -n ObserverMock

// Observer is called after every successful ledger mutation with the
// state as it is after that mutation. Observers must not mutate the ledger.
type Observer interface {
	OnUpdate(total, budget float64)
}

type ObserverFunc func(total, budget float64)

func (f ObserverFunc) OnUpdate(total, budget float64) {
	f(total, budget)
}

// Ledger holds the budget ceiling and the recorded expenses. It has no
// internal locking; callers sharing it between goroutines must serialise access.
type Ledger struct {
	budget    float64
	total     float64
	entries   []expense.Entry
	observers []Observer
}

func New() *Ledger {
	return &Ledger{}
}

func (l *Ledger) SetBudget(amount float64) {
	l.budget = amount
	observeMutation(opSetBudget, l)
	l.notify()
}

func (l *Ledger) AddExpense(e expense.Entry) {
	l.entries = append(l.entries, e)
	l.total += e.ConvertedAmount()
	l.checkTotal()
	observeMutation(opAdd, l)
	l.notify()
}

// RemoveExpense drops the first entry matching description and converted
// amount. It reports false and leaves the ledger untouched when none matches.
func (l *Ledger) RemoveExpense(description string, converted float64) bool {
	for i, e := range l.entries {
		if !e.Matches(description, converted) {
			continue
		}
		l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
		l.total -= converted
		l.checkTotal()
		observeMutation(opRemove, l)
		l.notify()
		return true
	}
	logger.Debug("expense not found", zap.String("description", description), zap.Float64("amount", converted))
	return false
}

func (l *Ledger) Budget() float64 {
	return l.budget
}

func (l *Ledger) Total() float64 {
	return l.total
}

func (l *Ledger) RemainingBudget() float64 {
	return l.budget - l.total
}

func (l *Ledger) Len() int {
	return len(l.entries)
}

// SnapshotExpenses returns a copy of the entries in insertion order.
func (l *Ledger) SnapshotExpenses() []expense.Entry {
	res := make([]expense.Entry, len(l.entries))
	copy(res, l.entries)
	return res
}

func (l *Ledger) RegisterObserver(o Observer) {
	l.observers = append(l.observers, o)
}

func (l *Ledger) notify() {
	for _, o := range l.observers {
		o.OnUpdate(l.total, l.budget)
	}
}

func (l *Ledger) checkTotal() {
	sum := 0.0
	for _, e := range l.entries {
		sum += e.ConvertedAmount()
	}
	if math.Abs(sum-l.total) > invariantTolerance*math.Max(1, math.Abs(sum)) {
		logger.Error("ledger total drifted from entries",
			zap.Float64("total", l.total),
			zap.Float64("sum", sum),
			zap.Int("entries", len(l.entries)))
	}
}
