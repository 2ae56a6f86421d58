package messages

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/budget-ledger/internal/entity/category"
	"max.ks1230/budget-ledger/internal/entity/currency"
	"max.ks1230/budget-ledger/internal/entity/expense"
	"max.ks1230/budget-ledger/internal/logger"
	"max.ks1230/budget-ledger/internal/model/command"
	"max.ks1230/budget-ledger/internal/model/tracker"
)

const (
	dontUnderstandMessage = "I don't understand you :("
	helloMessage          = "Hello! I am your expense tracker"
	loveToTalkMessage     = "I would love to talk about it more!"
	noExpensesMessage     = "You have no expenses yet"
	nothingToUndoMessage  = "Nothing to undo"
	nothingToRedoMessage  = "Nothing to redo"
	undoneMessage         = "Last expense undone"
	redoneMessage         = "Last expense redone"
	undoFailedMessage     = "Undo failed: entry not found"

	incorrectUsageMessage   = "That is an incorrect command usage"
	incorrectBudgetMessage  = "Invalid budget amount!"
	incorrectExpenseMessage = "Invalid expense amount!"
	incorrectPeriodMessage  = "Report period should be one of: week, month, year"
	noRatesMessage          = "No exchange rates configured"
)

const (
	startCommand      = "/start"
	budgetCommand     = "/budget"
	expenseCommand    = "/expense"
	undoCommand       = "/undo"
	redoCommand       = "/redo"
	remainingCommand  = "/remaining"
	listCommand       = "/list"
	reportCommand     = "/report"
	categoriesCommand = "/categories"
	ratesCommand      = "/rates"
)

const (
	commandParts  = 2
	recurringFlag = "--recurring"
)

const usage = `Commands:
/budget [amount]
/expense <category> <amount> [currency] <description> [--recurring]
/undo, /redo
/remaining, /list, /report [week|month|year], /categories, /rates`

//go:generate minimock -i ledgerTracker -o ./mock/ledger_tracker_mock.go -n LedgerTrackerMock

type ledgerTracker interface {
	SetBudget(amount float64)
	Budget() float64
	BaseCurrency() string
	AddExpense(req tracker.ExpenseRequest) (expense.View, error)
	Undo() (bool, error)
	Redo() (bool, error)
	Remaining() float64
	Expenses() []string
	Report(period string) (tracker.Report, error)
}

//go:generate minimock -i rateLister -o ./mock/rate_lister_mock.go -n RateListerMock

type rateLister interface {
	Rates() []currency.Rate
}

type handler func(ctx context.Context, arg string) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	tracker     ledgerTracker
	rates       rateLister
}

func newHandler(lt ledgerTracker, rl rateLister) *HandlerService {
	res := &HandlerService{
		handlersMap: nil,
		tracker:     lt,
		rates:       rl,
	}
	res.handlersMap = newMap(res)
	return res
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[budgetCommand] = s.handleBudget
	m[expenseCommand] = s.handleExpense
	m[undoCommand] = s.handleUndo
	m[redoCommand] = s.handleRedo
	m[remainingCommand] = s.handleRemaining
	m[listCommand] = s.handleList
	m[reportCommand] = s.handleReport
	m[categoriesCommand] = s.handleCategories
	m[ratesCommand] = s.handleRates

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) HandleMessage(ctx context.Context, text string) (string, error) {
	cmd, arg := parseCommand(text)

	span, ctx := opentracing.StartSpanFromContext(ctx, "handleCommand")
	defer span.Finish()
	span.SetTag("command", cmd)

	handler, ok := s.handlersMap[cmd]
	if ok {
		return handler(ctx, arg)
	}
	return dontUnderstandMessage, nil
}

func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	split := strings.SplitN(text, " ", commandParts)

	if len(split) == commandParts && strings.HasPrefix(text, "/") {
		return split[0], strings.TrimSpace(split[1])
	}
	if strings.HasPrefix(text, "/") {
		return text, ""
	}
	return "", text
}

func parseAmount(s string) (float64, bool) {
	amount, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}

func (s *HandlerService) handleStart(_ context.Context, _ string) (string, error) {
	return helloMessage + "\n" + usage, nil
}

func (s *HandlerService) handleBudget(_ context.Context, arg string) (string, error) {
	if arg == "" {
		return fmt.Sprintf("Budget: $%.2f", s.tracker.Budget()), nil
	}

	amount, ok := parseAmount(arg)
	if !ok {
		return incorrectBudgetMessage, nil
	}
	s.tracker.SetBudget(amount)
	return fmt.Sprintf("Budget set to: $%.2f", amount), nil
}

func (s *HandlerService) handleExpense(_ context.Context, arg string) (string, error) {
	req, msg, ok := parseExpense(arg)
	if !ok {
		return msg, nil
	}

	view, err := s.tracker.AddExpense(req)
	if errors.Is(err, category.ErrInvalidCategory) {
		return fmt.Sprintf("Invalid category type: %s", req.Category), nil
	}
	if err != nil {
		return "Can't save your expense", errors.Wrap(err, "handle expense")
	}
	return fmt.Sprintf("Expense added: %s, $%.2f", view.Details(), view.Amount), nil
}

// parseExpense reads "<category> <amount> [currency] <description...> [--recurring]".
// The currency token is taken when it names a built-in currency in any case,
// or when it is written as an upper-case code ("JPY") and a description follows.
func parseExpense(arg string) (tracker.ExpenseRequest, string, bool) {
	args := strings.Fields(arg)
	req := tracker.ExpenseRequest{}

	rest := make([]string, 0, len(args))
	for _, a := range args {
		if a == recurringFlag {
			req.Recurring = true
			continue
		}
		rest = append(rest, a)
	}
	if len(rest) < 3 {
		return req, incorrectUsageMessage, false
	}

	amount, ok := parseAmount(rest[1])
	if !ok {
		return req, incorrectExpenseMessage, false
	}
	req.Category, req.Amount = rest[0], amount

	rest = rest[2:]
	if currency.IsKnown(rest[0]) || (currency.IsCode(rest[0]) && len(rest) > 1) {
		req.Currency = currency.Normalize(rest[0])
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return req, incorrectUsageMessage, false
	}
	req.Description = strings.Join(rest, " ")
	return req, "", true
}

func (s *HandlerService) handleUndo(_ context.Context, _ string) (string, error) {
	ok, err := s.tracker.Undo()
	if !ok {
		return nothingToUndoMessage, nil
	}
	if errors.Is(err, command.ErrEntryNotFound) {
		logger.Warn("undo did not change the ledger", zap.Error(err))
		return undoFailedMessage, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "handle undo")
	}
	return undoneMessage, nil
}

func (s *HandlerService) handleRedo(_ context.Context, _ string) (string, error) {
	ok, err := s.tracker.Redo()
	if !ok {
		return nothingToRedoMessage, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "handle redo")
	}
	return redoneMessage, nil
}

func (s *HandlerService) handleRemaining(_ context.Context, _ string) (string, error) {
	return fmt.Sprintf("Remaining Budget: $%.2f", s.tracker.Remaining()), nil
}

func (s *HandlerService) handleList(_ context.Context, _ string) (string, error) {
	expenses := s.tracker.Expenses()
	if len(expenses) == 0 {
		return noExpensesMessage, nil
	}
	return strings.Join(expenses, "\n"), nil
}

func (s *HandlerService) handleReport(_ context.Context, arg string) (string, error) {
	report, err := s.tracker.Report(arg)
	if errors.Is(err, tracker.ErrUnsupportedPeriod) {
		return incorrectPeriodMessage, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "handle report")
	}
	if len(report.Records) == 0 {
		return noExpensesMessage, nil
	}
	return strings.Join(report.Lines(), "\n"), nil
}

func (s *HandlerService) handleCategories(_ context.Context, _ string) (string, error) {
	names := make([]string, 0, len(category.Selectable()))
	for _, c := range category.Selectable() {
		names = append(names, c.String())
	}
	return strings.Join(names, ", "), nil
}

func (s *HandlerService) handleRates(_ context.Context, _ string) (string, error) {
	rates := s.rates.Rates()
	if len(rates) == 0 {
		return noRatesMessage, nil
	}

	base := s.tracker.BaseCurrency()
	lines := make([]string, 0, len(rates))
	for _, r := range rates {
		lines = append(lines, fmt.Sprintf("1 %s = %.4f %s", r.Name, r.BaseRate, base))
	}
	return strings.Join(lines, "\n"), nil
}

func (s *HandlerService) handleNoCommand(_ context.Context, _ string) (string, error) {
	return loveToTalkMessage, nil
}
