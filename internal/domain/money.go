package domain

// Money is a monetary amount counted in minor currency units (cents).
// The ledger stores amounts; it does no arithmetic on them.
type Money struct {
	cents int64
}

// MoneyFromCents builds an amount from minor units.
func MoneyFromCents(cents int64) Money {
	return Money{cents: cents}
}

// MoneyFromUnits builds an amount from whole currency units.
func MoneyFromUnits(units int64) Money {
	return MoneyFromCents(units * 100)
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) IsNegative() bool { return m.cents < 0 }
