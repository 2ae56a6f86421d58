package command

import (
	"fmt"

	"github.com/pkg/errors"
	"max.ks1230/budget-ledger/internal/entity/expense"
	"max.ks1230/budget-ledger/internal/model/ledger"
)

var (
	ErrEntryNotFound = errors.New("entry not found")
	ErrUnknownKind   = errors.New("unknown command kind")
)

type Kind int

const (
	AddExpense Kind = iota + 1
)

func (k Kind) String() string {
	switch k {
	case AddExpense:
		return "add-expense"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

type Direction int

const (
	Forward Direction = iota
	Inverse
)

func (d Direction) String() string {
	if d == Inverse {
		return "inverse"
	}
	return "forward"
}

// Command describes one reversible ledger mutation. Everything it needs is
// captured when it is built.
type Command struct {
	Kind  Kind
	Entry expense.Entry
}

func NewAddExpense(e expense.Entry) Command {
	return Command{Kind: AddExpense, Entry: e}
}

// Apply runs c against l in the given direction. An inverse that finds
// nothing to remove returns ErrEntryNotFound and leaves l unchanged.
func Apply(l *ledger.Ledger, c Command, d Direction) error {
	switch c.Kind {
	case AddExpense:
		return applyAddExpense(l, c.Entry, d)
	default:
		return errors.Wrap(ErrUnknownKind, c.Kind.String())
	}
}

func applyAddExpense(l *ledger.Ledger, e expense.Entry, d Direction) error {
	if d == Forward {
		l.AddExpense(e)
		return nil
	}
	if !l.RemoveExpense(e.Description(), e.ConvertedAmount()) {
		return errors.Wrap(ErrEntryNotFound, fmt.Sprintf("remove %q %.2f", e.Description(), e.ConvertedAmount()))
	}
	return nil
}
