package expense

// Flag is a presentation trait of an expense. Flags never change the amount.
type Flag uint8

const (
	Recurring Flag = 1 << iota
)

var flagMarkers = []struct {
	flag   Flag
	marker string
}{
	{Recurring, " (Recurring)"},
}

// View is what gets shown for an expense right after it is entered.
type View struct {
	Description string
	Amount      float64
	Flags       Flag
}

func NewView(description string, amount float64, flags ...Flag) View {
	v := View{Description: description, Amount: amount}
	for _, f := range flags {
		v = v.With(f)
	}
	return v
}

func (v View) With(f Flag) View {
	v.Flags |= f
	return v
}

func (v View) Has(f Flag) bool {
	return v.Flags&f != 0
}

func (v View) Details() string {
	res := v.Description
	for _, m := range flagMarkers {
		if v.Has(m.flag) {
			res += m.marker
		}
	}
	return res
}
