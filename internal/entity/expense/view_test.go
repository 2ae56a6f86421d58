package expense

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OnBasicView_ShouldShowDescriptionOnly(t *testing.T) {
	v := NewView("gym", 30)

	assert.Equal(t, "gym", v.Details())
	assert.Equal(t, 30.0, v.Amount)
	assert.False(t, v.Has(Recurring))
}

func Test_OnRecurringView_ShouldAppendMarkerAndKeepAmount(t *testing.T) {
	v := NewView("gym", 30, Recurring)

	assert.Equal(t, "gym (Recurring)", v.Details())
	assert.Equal(t, 30.0, v.Amount)
	assert.True(t, v.Has(Recurring))
}

func Test_OnWithSameFlagTwice_ShouldMarkOnce(t *testing.T) {
	v := NewView("rent", 900).With(Recurring).With(Recurring)

	assert.Equal(t, "rent (Recurring)", v.Details())
}
