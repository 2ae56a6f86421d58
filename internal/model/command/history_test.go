package command

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/budget-ledger/internal/model/ledger"
)

func descriptions(l *ledger.Ledger) []string {
	res := make([]string, 0, l.Len())
	for _, e := range l.SnapshotExpenses() {
		res = append(res, e.Description())
	}
	return res
}

func Test_OnUndoUndoRedo_ShouldKeepFirstEntry(t *testing.T) {
	l := ledger.New()
	h := NewHistory(l)

	require.NoError(t, h.Execute(NewAddExpense(entry("A", 5))))
	require.NoError(t, h.Execute(NewAddExpense(entry("B", 10))))

	ok, err := h.Undo()
	assert.True(t, ok)
	assert.NoError(t, err)
	ok, err = h.Undo()
	assert.True(t, ok)
	assert.NoError(t, err)
	ok, err = h.Redo()
	assert.True(t, ok)
	assert.NoError(t, err)

	assert.Equal(t, []string{"A"}, descriptions(l))
	assert.Equal(t, 5.0, l.Total())
	assert.Equal(t, 1, h.UndoLen())
	assert.Equal(t, 1, h.RedoLen())
}

func Test_OnEmptyUndo_ShouldReturnFalseAndNotMutate(t *testing.T) {
	l := ledger.New()
	calls := 0
	l.RegisterObserver(ledger.ObserverFunc(func(_, _ float64) { calls++ }))
	h := NewHistory(l)

	ok, err := h.Undo()

	assert.False(t, ok)
	assert.NoError(t, err)
	assert.Equal(t, 0, calls)
	assert.False(t, h.CanRedo())
}

func Test_OnEmptyRedo_ShouldReturnFalseAndNotMutate(t *testing.T) {
	l := ledger.New()
	h := NewHistory(l)
	require.NoError(t, h.Execute(NewAddExpense(entry("A", 5))))

	ok, err := h.Redo()

	assert.False(t, ok)
	assert.NoError(t, err)
	assert.Equal(t, 5.0, l.Total())
	assert.Equal(t, 1, h.UndoLen())
}

func Test_OnExecute_ShouldClearRedo(t *testing.T) {
	l := ledger.New()
	h := NewHistory(l)
	require.NoError(t, h.Execute(NewAddExpense(entry("A", 5))))
	require.NoError(t, h.Execute(NewAddExpense(entry("B", 10))))
	_, _ = h.Undo()
	_, _ = h.Undo()
	require.Equal(t, 2, h.RedoLen())

	require.NoError(t, h.Execute(NewAddExpense(entry("C", 1))))

	assert.False(t, h.CanRedo())
	ok, _ := h.Redo()
	assert.False(t, ok)
	assert.Equal(t, []string{"C"}, descriptions(l))
}

func Test_OnExecuteWithEmptyRedo_ShouldKeepRedoEmpty(t *testing.T) {
	h := NewHistory(ledger.New())

	require.NoError(t, h.Execute(NewAddExpense(entry("A", 5))))

	assert.True(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

// The command is moved to the redo stack even when its inverse removed
// nothing; redo then adds the entry again.
func Test_OnUndoOfVanishedEntry_ShouldReportNotFoundAndStillMoveToRedo(t *testing.T) {
	l := ledger.New()
	h := NewHistory(l)
	require.NoError(t, h.Execute(NewAddExpense(entry("A", 5))))
	require.True(t, l.RemoveExpense("A", 5))

	ok, err := h.Undo()

	assert.True(t, ok)
	assert.True(t, errors.Is(err, ErrEntryNotFound))
	assert.Equal(t, 0.0, l.Total())
	assert.Equal(t, 0, h.UndoLen())
	assert.Equal(t, 1, h.RedoLen())

	ok, err = h.Redo()
	assert.True(t, ok)
	assert.NoError(t, err)
	assert.Equal(t, []string{"A"}, descriptions(l))
}

func Test_OnAnySequence_ShouldMatchReplayOfUndoStack(t *testing.T) {
	l := ledger.New()
	h := NewHistory(l)
	steps := []func(){
		func() { _ = h.Execute(NewAddExpense(entry("A", 5))) },
		func() { _ = h.Execute(NewAddExpense(entry("B", 10))) },
		func() { _, _ = h.Undo() },
		func() { _ = h.Execute(NewAddExpense(entry("C", 2.5))) },
		func() { _ = h.Execute(NewAddExpense(entry("E", 4))) },
		func() { _, _ = h.Undo() },
		func() { _, _ = h.Undo() },
		func() { _, _ = h.Redo() },
		func() { _, _ = h.Undo() },
		func() { _, _ = h.Undo() },
		func() { _, _ = h.Undo() },
		func() { _, _ = h.Redo() },
		func() { _ = h.Execute(NewAddExpense(entry("D", 7))) },
	}

	for i, step := range steps {
		step()

		fresh := ledger.New()
		for _, c := range h.UndoCommands() {
			require.NoError(t, Apply(fresh, c, Forward))
		}
		assert.Equal(t, l.SnapshotExpenses(), fresh.SnapshotExpenses(), "step %d", i)
		assert.Equal(t, l.Total(), fresh.Total(), "step %d", i)
	}
}

func Test_OnUndoCommands_ShouldReturnCopy(t *testing.T) {
	h := NewHistory(ledger.New())
	require.NoError(t, h.Execute(NewAddExpense(entry("A", 5))))

	cmds := h.UndoCommands()
	cmds[0] = NewAddExpense(entry("Z", 1))

	assert.Equal(t, "A", h.UndoCommands()[0].Entry.Description())
}
