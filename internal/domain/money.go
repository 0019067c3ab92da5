package domain

import "fmt"

// Money is an immutable amount in minor units (cents) paired with a currency.
// Amounts are never negative; every operation returns a new value.
type Money struct {
	Amount   int64
	Currency Currency
}

// NewMoney creates a Money value, rejecting negative amounts.
func NewMoney(amount int64, currency Currency) (Money, error) {
	if amount < 0 {
		return Money{}, fmt.Errorf("%w: %d", ErrNegativeAmount, amount)
	}
	return Money{Amount: amount, Currency: currency}, nil
}

// Zero is the canonical empty balance in the given currency.
func Zero(currency Currency) Money {
	return Money{Amount: 0, Currency: currency}
}

// Add returns the sum of two amounts of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{Amount: m.Amount + other.Amount, Currency: m.Currency}, nil
}

// Subtract returns the difference of two amounts of the same currency.
// Subtracting more than is available fails rather than going negative.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return Money{}, err
	}
	if m.Amount < other.Amount {
		return Money{}, fmt.Errorf("cannot subtract %s from %s: %w", other, m, ErrInsufficientFunds)
	}
	return Money{Amount: m.Amount - other.Amount, Currency: m.Currency}, nil
}

// IsGreaterThan reports whether m > other. Both must share a currency.
func (m Money) IsGreaterThan(other Money) (bool, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return false, err
	}
	return m.Amount > other.Amount, nil
}

// IsGreaterThanOrEqual reports whether m >= other. Both must share a currency.
func (m Money) IsGreaterThanOrEqual(other Money) (bool, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return false, err
	}
	return m.Amount >= other.Amount, nil
}

// IsLessThan reports whether m < other. Both must share a currency.
func (m Money) IsLessThan(other Money) (bool, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return false, err
	}
	return m.Amount < other.Amount, nil
}

func (m Money) IsZero() bool {
	return m.Amount == 0
}

func (m Money) IsPositive() bool {
	return m.Amount > 0
}

func (m Money) Equals(other Money) bool {
	return m.Amount == other.Amount && m.Currency == other.Currency
}

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.Amount, m.Currency)
}

func (m Money) assertSameCurrency(other Money) error {
	if m.Currency != other.Currency {
		return fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}
	return nil
}
