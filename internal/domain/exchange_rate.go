package domain

import (
	"fmt"
	"math"
)

// rateEpsilon is the tolerance used when comparing exchange rates for equality.
const rateEpsilon = 0.000001

// ExchangeRate converts money from one currency to another at a fixed rate.
type ExchangeRate struct {
	From Currency
	To   Currency
	Rate float64
}

// NewExchangeRate creates an exchange rate, rejecting non-positive rates.
func NewExchangeRate(from, to Currency, rate float64) (ExchangeRate, error) {
	if rate <= 0 {
		return ExchangeRate{}, fmt.Errorf("exchange rate must be positive, got %f", rate)
	}
	return ExchangeRate{From: from, To: to, Rate: rate}, nil
}

// IdentityRate is the rate 1.0 from a currency to itself, used for
// same-currency operations.
func IdentityRate(currency Currency) ExchangeRate {
	return ExchangeRate{From: currency, To: currency, Rate: 1.0}
}

// Convert applies the rate to the given money, rounding to the nearest minor
// unit (half away from zero). The money must be denominated in the rate's
// source currency.
func (r ExchangeRate) Convert(money Money) (Money, error) {
	if money.Currency != r.From {
		return Money{}, fmt.Errorf("cannot convert %s with rate %s->%s: %w",
			money.Currency, r.From, r.To, ErrCurrencyMismatch)
	}
	converted := int64(math.Round(float64(money.Amount) * r.Rate))
	return NewMoney(converted, r.To)
}

// IsIdentity reports whether the rate maps a currency onto itself at 1.0.
func (r ExchangeRate) IsIdentity() bool {
	return r.From == r.To && math.Abs(r.Rate-1.0) < rateEpsilon
}

// Equals compares two rates, treating rates within 1e-6 as equal.
func (r ExchangeRate) Equals(other ExchangeRate) bool {
	return r.From == other.From &&
		r.To == other.To &&
		math.Abs(r.Rate-other.Rate) < rateEpsilon
}
