package domain

import "fmt"

// Currency is a closed enumeration of the currencies the bank operates in.
type Currency string

const (
	PLN Currency = "PLN"
	EUR Currency = "EUR"
)

// ParseCurrency parses an ISO 4217 code into a supported Currency.
func ParseCurrency(code string) (Currency, error) {
	switch Currency(code) {
	case PLN:
		return PLN, nil
	case EUR:
		return EUR, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
}

func (c Currency) String() string {
	return string(c)
}
