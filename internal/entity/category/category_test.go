package category

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnResolve_ShouldIgnoreCase(t *testing.T) {
	for name, want := range map[string]Category{
		"food":      Food,
		"FOOD":      Food,
		"Transport": Transport,
		"sHoPpInG":  Shopping,
	} {
		got, err := Resolve(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func Test_OnUnknownName_ShouldReturnInvalidCategory(t *testing.T) {
	for _, name := range []string{"", "rent", "foo", "food ", "shop"} {
		_, err := Resolve(name)
		assert.True(t, errors.Is(err, ErrInvalidCategory), name)
	}
}

// Entertainment is offered to the user but cannot be resolved.
func Test_OnEntertainment_ShouldBeSelectableButNotResolvable(t *testing.T) {
	assert.Contains(t, Selectable(), Entertainment)
	assert.NotContains(t, Resolvable(), Entertainment)

	_, err := Resolve("Entertainment")
	assert.True(t, errors.Is(err, ErrInvalidCategory))
}

func Test_OnEveryResolvable_ShouldRoundTripByName(t *testing.T) {
	for _, c := range Resolvable() {
		got, err := Resolve(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}
