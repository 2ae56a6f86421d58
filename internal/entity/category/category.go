package category

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type Category string

const (
	Food          Category = "Food"
	Transport     Category = "Transport"
	Shopping      Category = "Shopping"
	Entertainment Category = "Entertainment"
)

var ErrInvalidCategory = errors.New("invalid category")

// resolvable is keyed by the lower-cased name. Entertainment is offered by
// Selectable but deliberately has no entry here.
var resolvable = map[string]Category{
	"food":      Food,
	"transport": Transport,
	"shopping":  Shopping,
}

// Resolve maps a name to its category, ignoring case. Unknown names are an
// error wrapping ErrInvalidCategory.
func Resolve(name string) (Category, error) {
	c, ok := resolvable[strings.ToLower(name)]
	if !ok {
		return "", errors.Wrap(ErrInvalidCategory, fmt.Sprintf("category type %q", name))
	}
	return c, nil
}

func Resolvable() []Category {
	return []Category{Food, Transport, Shopping}
}

func Selectable() []Category {
	return []Category{Food, Transport, Shopping, Entertainment}
}

func (c Category) String() string {
	return string(c)
}
