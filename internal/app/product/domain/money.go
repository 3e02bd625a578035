package domain

import (
	"math"
	"math/big"
)

// Money represents a monetary value with precise decimal arithmetic.
// It uses big.Rat internally so a markup is applied without intermediate
// floating-point rounding. Money is immutable - all operations return new instances.
type Money struct {
	amount *big.Rat
}

// NewMoneyFromFloat creates Money holding the exact value of v.
// NaN and infinities have no rational value and yield ErrNonFiniteAmount.
func NewMoneyFromFloat(v float64) (*Money, error) {
	rat, err := ratFromFloat(v)
	if err != nil {
		return nil, err
	}
	return &Money{amount: rat}, nil
}

// Add returns a new Money that is the sum of m and other.
func (m *Money) Add(other *Money) *Money {
	result := new(big.Rat).Add(m.amount, other.amount)
	return &Money{amount: result}
}

// MultiplyByDecimal multiplies Money by a decimal factor.
// For example: money.MultiplyByDecimal(1.2) applies a 20% markup.
func (m *Money) MultiplyByDecimal(decimal float64) (*Money, error) {
	multiplier, err := ratFromFloat(decimal)
	if err != nil {
		return nil, err
	}
	result := new(big.Rat).Mul(m.amount, multiplier)
	return &Money{amount: result}, nil
}

// Equals returns true if m equals other.
func (m *Money) Equals(other *Money) bool {
	if other == nil {
		return false
	}
	return m.amount.Cmp(other.amount) == 0
}

// Float64 returns the float64 nearest to the money amount.
func (m *Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String returns the amount with two decimal places, e.g. "7.50".
func (m *Money) String() string {
	return m.amount.FloatString(2)
}

func ratFromFloat(v float64) (*big.Rat, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, ErrNonFiniteAmount
	}
	return new(big.Rat).SetFloat64(v), nil
}
