package messages

import (
	"context"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/budget-ledger/internal/entity/category"
	"max.ks1230/budget-ledger/internal/entity/currency"
	"max.ks1230/budget-ledger/internal/entity/expense"
	"max.ks1230/budget-ledger/internal/model/command"
	"max.ks1230/budget-ledger/internal/model/ledger"
	"max.ks1230/budget-ledger/internal/model/messages/mock"
	"max.ks1230/budget-ledger/internal/model/rates"
	"max.ks1230/budget-ledger/internal/model/tracker"
)

func newMockedService(m minimock.Tester) (*Service, *mock.MessageSenderMock, *mock.LedgerTrackerMock, *mock.RateListerMock) {
	sender := mock.NewMessageSenderMock(m)
	lt := mock.NewLedgerTrackerMock(m)
	rl := mock.NewRateListerMock(m)
	return NewService(sender, lt, rl), sender, lt, rl
}

func handle(t *testing.T, s *Service, text string) {
	t.Helper()
	require.NoError(t, s.HandleIncomingMessage(context.Background(), Message{Text: text}))
}

func Test_OnStartCommand_ShouldAnswerWithIntroMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	s, sender, _, _ := newMockedService(m)
	sender.SendMessageMock.Expect(helloMessage + "\n" + usage).Return(nil)

	handle(t, s, "/start")
}

func Test_OnUnknownCommand_ShouldAnswerWithHelpMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	s, sender, _, _ := newMockedService(m)
	sender.SendMessageMock.Expect("I don't understand you :(").Return(nil)

	handle(t, s, "/none")
}

func Test_OnPlainText_ShouldAnswerWithSmallTalk(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	s, sender, _, _ := newMockedService(m)
	sender.SendMessageMock.Expect("I would love to talk about it more!").Return(nil)

	handle(t, s, "hello there")
}

func Test_OnBudgetCommand_ShouldSetBudget(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	s, sender, lt, _ := newMockedService(m)
	lt.SetBudgetMock.Expect(100.5).Return()
	sender.SendMessageMock.Expect("Budget set to: $100.50").Return(nil)

	handle(t, s, "/budget 100,5")
}

func Test_OnInvalidBudgetAmount_ShouldNotSetBudget(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	s, sender, _, _ := newMockedService(m)
	sender.SendMessageMock.Expect("Invalid budget amount!").Return(nil)

	handle(t, s, "/budget lots")
}

func Test_OnBudgetCommandWithoutAmount_ShouldReportCurrentBudget(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	s, sender, lt, _ := newMockedService(m)
	lt.BudgetMock.Return(250)
	sender.SendMessageMock.Expect("Budget: $250.00").Return(nil)

	handle(t, s, "/budget")
}

func Test_OnExpenseCommand_ShouldPassParsedRequest(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	s, sender, lt, _ := newMockedService(m)
	lt.AddExpenseMock.Expect(tracker.ExpenseRequest{
		Description: "team lunch",
		Amount:      100,
		Currency:    "EUR",
		Category:    "food",
	}).Return(expense.NewView("team lunch", 100), nil)
	sender.SendMessageMock.Expect("Expense added: team lunch, $100.00").Return(nil)

	handle(t, s, "/expense food 100 eur team lunch")
}

func Test_OnUnlistedCurrencyCode_ShouldPassItAsCurrency(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	s, sender, lt, _ := newMockedService(m)
	lt.AddExpenseMock.Expect(tracker.ExpenseRequest{
		Description: "souvenir",
		Amount:      100,
		Currency:    "JPY",
		Category:    "shopping",
	}).Return(expense.NewView("souvenir", 100), nil)
	sender.SendMessageMock.Expect("Expense added: souvenir, $100.00").Return(nil)

	handle(t, s, "/expense shopping 100 JPY souvenir")
}

func Test_OnInvalidCategory_ShouldNameRejectedCategory(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	s, sender, lt, _ := newMockedService(m)
	lt.AddExpenseMock.Return(expense.View{}, errors.Wrap(category.ErrInvalidCategory, "add expense"))
	sender.SendMessageMock.Expect("Invalid category type: rent").Return(nil)

	handle(t, s, "/expense rent 10 GBP monthly thing")
}

func Test_OnTrackerFailure_ShouldApologizeAndReturnError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	s, sender, lt, _ := newMockedService(m)
	lt.AddExpenseMock.Return(expense.View{}, errors.New("history broken"))
	sender.SendMessageMock.Expect("Sorry, something wrong happened...\nCan't save your expense").Return(nil)

	err := s.HandleIncomingMessage(context.Background(), Message{Text: "/expense food 5 tea"})

	assert.Error(t, err)
}

func Test_OnUndoCommand_ShouldReplyWithOutcome(t *testing.T) {
	cases := []struct {
		name string
		ok   bool
		err  error
		want string
	}{
		{"empty history", false, nil, "Nothing to undo"},
		{"undone", true, nil, "Last expense undone"},
		{"entry gone", true, errors.Wrap(command.ErrEntryNotFound, "undo"), "Undo failed: entry not found"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := minimock.NewController(t)
			defer m.Finish()
			s, sender, lt, _ := newMockedService(m)
			lt.UndoMock.Return(c.ok, c.err)
			sender.SendMessageMock.Expect(c.want).Return(nil)

			handle(t, s, "/undo")
		})
	}
}

func Test_OnRedoCommand_ShouldReplyWithOutcome(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	s, sender, lt, _ := newMockedService(m)
	lt.RedoMock.Return(false, nil)
	sender.SendMessageMock.Expect("Nothing to redo").Return(nil)

	handle(t, s, "/redo")
}

func Test_OnRemainingCommand_ShouldFormatDollars(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	s, sender, lt, _ := newMockedService(m)
	lt.RemainingMock.Return(-20)
	sender.SendMessageMock.Expect("Remaining Budget: $-20.00").Return(nil)

	handle(t, s, "/remaining")
}

func Test_OnReportWithUnsupportedPeriod_ShouldListPeriods(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	s, sender, lt, _ := newMockedService(m)
	lt.ReportMock.Expect("decade").Return(tracker.Report{}, errors.Wrap(tracker.ErrUnsupportedPeriod, "report"))
	sender.SendMessageMock.Expect("Report period should be one of: week, month, year").Return(nil)

	handle(t, s, "/report decade")
}

func Test_OnRatesCommand_ShouldListRatesAgainstBaseCurrency(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	s, sender, lt, rl := newMockedService(m)
	rl.RatesMock.Return([]currency.Rate{
		{Name: "USD", BaseRate: 1},
		{Name: "EUR", BaseRate: 1.1},
		{Name: "JPY", BaseRate: 0.007},
	})
	lt.BaseCurrencyMock.Return("USD")
	sender.SendMessageMock.Expect("1 USD = 1.0000 USD\n1 EUR = 1.1000 USD\n1 JPY = 0.0070 USD").Return(nil)

	handle(t, s, "/rates")
}

func Test_OnRatesCommandWithEmptyTable_ShouldSayNoRates(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	s, sender, _, rl := newMockedService(m)
	rl.RatesMock.Return(nil)
	sender.SendMessageMock.Expect("No exchange rates configured").Return(nil)

	handle(t, s, "/rates")
}

func Test_OnSenderFailure_ShouldReturnError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	s, sender, _, _ := newMockedService(m)
	sender.SendMessageMock.Expect("I don't understand you :(").Return(errors.New("closed"))

	err := s.HandleIncomingMessage(context.Background(), Message{Text: "/none"})

	assert.Error(t, err)
}

func Test_OnParseCommand_ShouldSplitCommandAndArgument(t *testing.T) {
	cmd, arg := parseCommand("  /expense food 5 tea  ")
	assert.Equal(t, "/expense", cmd)
	assert.Equal(t, "food 5 tea", arg)

	cmd, arg = parseCommand("/undo")
	assert.Equal(t, "/undo", cmd)
	assert.Equal(t, "", arg)

	cmd, arg = parseCommand("just words")
	assert.Equal(t, "", cmd)
	assert.Equal(t, "just words", arg)
}

func Test_OnParseExpense_ShouldRecognizeCurrencyToken(t *testing.T) {
	cases := []struct {
		arg         string
		currency    string
		description string
	}{
		{"food 5 eur lunch", "EUR", "lunch"},
		{"food 5 GBP lunch", "GBP", "lunch"},
		{"food 5 JPY ramen bowl", "JPY", "ramen bowl"},
		{"food 5 tea leaves", "", "tea leaves"},
		{"food 5 jpy ramen", "", "jpy ramen"},
		{"food 5 TEA", "", "TEA"},
		{"food 5 CHFX fondue", "", "CHFX fondue"},
	}
	for _, c := range cases {
		req, _, ok := parseExpense(c.arg)
		require.True(t, ok, c.arg)
		assert.Equal(t, c.currency, req.Currency, c.arg)
		assert.Equal(t, c.description, req.Description, c.arg)
	}
}

// Flows below run against a real tracker and record every reply.

func newTrackerService(m minimock.Tester) (*Service, *[]string, *ledger.Ledger) {
	l := ledger.New()
	source := rates.NewStaticSource(map[string]float64{"USD": 1, "EUR": 1.1, "GBP": 1.25})
	tr := tracker.New(rates.NewConverter(source), l, command.NewHistory(l), "USD")

	sent := &[]string{}
	sender := mock.NewMessageSenderMock(m)
	sender.SendMessageMock.Inspect(func(text string) {
		*sent = append(*sent, text)
	}).Return(nil)
	return NewService(sender, tr, source), sent, l
}

func last(sent *[]string) string {
	if len(*sent) == 0 {
		return ""
	}
	return (*sent)[len(*sent)-1]
}

func Test_OnBadExpenseInput_ShouldNotTouchLedger(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	s, sent, l := newTrackerService(m)

	for text, want := range map[string]string{
		"/expense food":                      "That is an incorrect command usage",
		"/expense food 10":                   "That is an incorrect command usage",
		"/expense food 10 EUR":               "That is an incorrect command usage",
		"/expense food ten coffee":           "Invalid expense amount!",
		"/expense entertainment 10 cinema":   "Invalid category type: entertainment",
		"/expense rent 10 GBP monthly thing": "Invalid category type: rent",
	} {
		handle(t, s, text)
		assert.Equal(t, want, last(sent), text)
	}
	assert.Equal(t, 0, l.Len())
}

func Test_OnUnlistedCurrency_ShouldStoreCodeAndConvertAtIdentity(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	s, sent, l := newTrackerService(m)

	handle(t, s, "/expense shopping 100 JPY souvenir")

	assert.Equal(t, "Expense added: souvenir, $100.00", last(sent))
	require.Equal(t, 1, l.Len())
	assert.Equal(t, "JPY", l.SnapshotExpenses()[0].Currency())
	assert.Equal(t, 100.0, l.Total())
}

func Test_OnUndoRedo_ShouldReplayThroughLedger(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	s, sent, l := newTrackerService(m)

	handle(t, s, "/undo")
	assert.Equal(t, "Nothing to undo", last(sent))
	handle(t, s, "/redo")
	assert.Equal(t, "Nothing to redo", last(sent))

	handle(t, s, "/expense food 5 A")
	handle(t, s, "/expense food 10 B")
	handle(t, s, "/undo")
	assert.Equal(t, "Last expense undone", last(sent))
	handle(t, s, "/undo")
	handle(t, s, "/redo")
	assert.Equal(t, "Last expense redone", last(sent))

	handle(t, s, "/list")
	assert.Equal(t, "A (USD 5.00 -> USD $5.00, Category: Food)", last(sent))
	assert.Equal(t, 5.0, l.Total())
}

func Test_OnUndoOfRemovedEntry_ShouldReportFailure(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	s, sent, l := newTrackerService(m)

	handle(t, s, "/expense food 5 A")
	require.True(t, l.RemoveExpense("A", 5))
	handle(t, s, "/undo")

	assert.Equal(t, "Undo failed: entry not found", last(sent))
}

func Test_OnRemainingListAndReport_ShouldRenderState(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	s, sent, _ := newTrackerService(m)

	handle(t, s, "/list")
	assert.Equal(t, "You have no expenses yet", last(sent))
	handle(t, s, "/report")
	assert.Equal(t, "You have no expenses yet", last(sent))

	handle(t, s, "/budget 100")
	handle(t, s, "/budget")
	assert.Equal(t, "Budget: $100.00", last(sent))
	handle(t, s, "/expense food 5 coffee")
	handle(t, s, "/expense shopping 20 gbp shirt")
	handle(t, s, "/remaining")
	assert.Equal(t, "Remaining Budget: $70.00", last(sent))

	handle(t, s, "/report month")
	assert.Equal(t, "Shopping: 25.00\nFood: 5.00\n\nTotal: 30.00", last(sent))

	handle(t, s, "/rates")
	assert.Equal(t, "1 USD = 1.0000 USD\n1 EUR = 1.1000 USD\n1 GBP = 1.2500 USD", last(sent))
}

func Test_OnCategoriesCommand_ShouldListSelectable(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	s, sent, _ := newTrackerService(m)

	handle(t, s, "/categories")

	assert.Equal(t, "Food, Transport, Shopping, Entertainment", last(sent))
}
