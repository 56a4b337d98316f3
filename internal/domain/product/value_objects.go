package product

import "errors"

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyFromDollars(dollars float64) (Money, error) {
	if dollars < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: int64(dollars*100 + 0.5)}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

// DiscountedBy returns the unit price after a percentage markdown,
// truncated to whole cents.
func (m Money) DiscountedBy(discountPct int) Money {
	if discountPct <= 0 {
		return m
	}
	if discountPct >= 100 {
		return Money{}
	}
	return Money{cents: m.cents * int64(100-discountPct) / 100}
}
