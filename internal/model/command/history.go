package command

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/budget-ledger/internal/logger"
	"max.ks1230/budget-ledger/internal/model/ledger"
)

// History sequences commands against one ledger with undo and redo stacks.
type History struct {
	ledger *ledger.Ledger
	undo   []Command
	redo   []Command
}

func NewHistory(l *ledger.Ledger) *History {
	return &History{ledger: l}
}

// Execute applies c, records it for undo and drops everything redoable.
func (h *History) Execute(c Command) error {
	if err := Apply(h.ledger, c, Forward); err != nil {
		return errors.Wrap(err, "execute command")
	}
	h.undo = append(h.undo, c)
	h.redo = h.redo[:0]
	return nil
}

// Undo reverts the latest command. It reports false when there is nothing
// to undo. When the inverse finds nothing to remove the command is still
// moved to the redo stack and the error wraps ErrEntryNotFound.
func (h *History) Undo() (bool, error) {
	c, ok := pop(&h.undo)
	if !ok {
		return false, nil
	}
	err := Apply(h.ledger, c, Inverse)
	h.redo = append(h.redo, c)
	if err != nil {
		logger.Warn("undo failed", zap.Stringer("kind", c.Kind), zap.Error(err))
		return true, errors.Wrap(err, "undo")
	}
	return true, nil
}

// Redo re-applies the most recently undone command.
func (h *History) Redo() (bool, error) {
	c, ok := pop(&h.redo)
	if !ok {
		return false, nil
	}
	err := Apply(h.ledger, c, Forward)
	h.undo = append(h.undo, c)
	if err != nil {
		return true, errors.Wrap(err, "redo")
	}
	return true, nil
}

func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

func (h *History) UndoLen() int {
	return len(h.undo)
}

func (h *History) RedoLen() int {
	return len(h.redo)
}

// UndoCommands returns the undo stack bottom to top. Replaying it forward on
// a fresh ledger reproduces the current entries.
func (h *History) UndoCommands() []Command {
	res := make([]Command, len(h.undo))
	copy(res, h.undo)
	return res
}

func pop(stack *[]Command) (Command, bool) {
	s := *stack
	if len(s) == 0 {
		return Command{}, false
	}
	c := s[len(s)-1]
	*stack = s[:len(s)-1]
	return c, true
}
