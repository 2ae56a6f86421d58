package tracker

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/budget-ledger/internal/entity/category"
	"max.ks1230/budget-ledger/internal/entity/currency"
	"max.ks1230/budget-ledger/internal/entity/expense"
	"max.ks1230/budget-ledger/internal/logger"
	"max.ks1230/budget-ledger/internal/model/command"
	"max.ks1230/budget-ledger/internal/model/ledger"
)

type converter interface {
	Convert(amount float64, code string) float64
}

type ExpenseRequest struct {
	Description string
	Amount      float64
	Currency    string
	Category    string
	Recurring   bool
}

// Tracker is the entry point for callers: it resolves and converts input,
// then runs every ledger mutation through the command history. All methods
// are safe for concurrent use.
type Tracker struct {
	mu           sync.Mutex
	conv         converter
	ledger       *ledger.Ledger
	history      *command.History
	baseCurrency string
}

func New(conv converter, l *ledger.Ledger, h *command.History, baseCurrency string) *Tracker {
	return &Tracker{
		conv:         conv,
		ledger:       l,
		history:      h,
		baseCurrency: currency.Normalize(baseCurrency),
	}
}

func (t *Tracker) SetBudget(amount float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	logger.Info("set budget", zap.Float64("amount", amount))
	t.ledger.SetBudget(amount)
}

// AddExpense records the expense and returns how it should be shown. An
// unknown category aborts before the ledger is touched.
func (t *Tracker) AddExpense(req ExpenseRequest) (expense.View, error) {
	cat, err := category.Resolve(req.Category)
	if err != nil {
		return expense.View{}, errors.Wrap(err, "add expense")
	}

	curr := currency.Normalize(req.Currency)
	if curr == "" {
		curr = t.baseCurrency
	}
	description := strings.TrimSpace(req.Description)
	converted := t.conv.Convert(req.Amount, curr)
	entry := expense.NewEntry(description, req.Amount, curr, converted, cat)

	t.mu.Lock()
	defer t.mu.Unlock()

	if err = t.history.Execute(command.NewAddExpense(entry)); err != nil {
		return expense.View{}, errors.Wrap(err, "add expense")
	}
	logger.Info("expense added",
		zap.String("description", description),
		zap.String("currency", curr),
		zap.Float64("amount", req.Amount),
		zap.Float64("converted", converted),
		zap.Stringer("category", cat))

	view := expense.NewView(description, req.Amount)
	if req.Recurring {
		view = view.With(expense.Recurring)
	}
	return view, nil
}

func (t *Tracker) Undo() (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.history.Undo()
}

func (t *Tracker) Redo() (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.history.Redo()
}

func (t *Tracker) Remaining() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ledger.RemainingBudget()
}

func (t *Tracker) Budget() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ledger.Budget()
}

func (t *Tracker) BaseCurrency() string {
	return t.baseCurrency
}

// Expenses renders the current entries in insertion order.
func (t *Tracker) Expenses() []string {
	entries := t.snapshot()
	res := make([]string, 0, len(entries))
	for _, e := range entries {
		res = append(res, e.Format(t.baseCurrency))
	}
	return res
}

func (t *Tracker) snapshot() []expense.Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ledger.SnapshotExpenses()
}
