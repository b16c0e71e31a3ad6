package pricing

import "github.com/shopspring/decimal"

// Amount a charge in the store's single currency.
// Amounts produced only by whole-number arithmetic render without a decimal
// point, anything touched by a fractional rate renders with at least one
// decimal place.
type Amount struct {
	value      decimal.Decimal
	fractional bool
}

// Zero the whole amount 0
func Zero() Amount {
	return Amount{}
}

// Whole a whole-number amount
func Whole(n int64) Amount {
	return Amount{value: decimal.NewFromInt(n)}
}

// Fractional an amount that carries fractional precision
func Fractional(d decimal.Decimal) Amount {
	return Amount{value: d, fractional: true}
}

// FromFloat a fractional amount from a float value, f must be finite
func FromFloat(f float64) Amount {
	return Fractional(decimal.NewFromFloat(f))
}

// Add sums two amounts, the result is fractional if either side is
func (a Amount) Add(b Amount) Amount {
	return Amount{
		value:      a.value.Add(b.value),
		fractional: a.fractional || b.fractional,
	}
}

// Mul multiplies by a whole number of units
func (a Amount) Mul(n int) Amount {
	return Amount{
		value:      a.value.Mul(decimal.NewFromInt(int64(n))),
		fractional: a.fractional,
	}
}

// Decimal the numeric value
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// IsFractional reports whether the amount came from fractional arithmetic
func (a Amount) IsFractional() bool {
	return a.fractional
}

// Equal compares numeric values only
func (a Amount) Equal(b Amount) bool {
	return a.value.Equal(b.value)
}

func (a Amount) String() string {
	s := a.value.String()
	if a.fractional && a.value.IsInteger() {
		s += ".0"
	}
	return s
}
