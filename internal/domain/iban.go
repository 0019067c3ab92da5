package domain

import (
	"fmt"
	"regexp"
	"strings"
)

const polandCountryCode = "PL"

var (
	ibanPattern          = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]+$`)
	accountNumberPattern = regexp.MustCompile(`^[0-9]{26}$`)
)

// IBAN is a validated International Bank Account Number. The value is
// normalized to uppercase with spaces stripped at construction.
type IBAN struct {
	value string
}

// NewIBAN validates and normalizes an IBAN string.
func NewIBAN(value string) (IBAN, error) {
	value = strings.ToUpper(strings.ReplaceAll(value, " ", ""))

	if !ibanPattern.MatchString(value) {
		return IBAN{}, fmt.Errorf("%w: %q does not match IBAN format", ErrInvalidIBAN, value)
	}
	if len(value) < 15 {
		return IBAN{}, fmt.Errorf("%w: %q is too short", ErrInvalidIBAN, value)
	}
	if len(value) > 34 {
		return IBAN{}, fmt.Errorf("%w: %q is too long", ErrInvalidIBAN, value)
	}

	return IBAN{value: value}, nil
}

// GeneratePolishIBAN derives a Polish IBAN from a 26-digit account number,
// computing the check digits with the ISO 7064 MOD-97-10 algorithm.
func GeneratePolishIBAN(accountNumber string) (IBAN, error) {
	if !accountNumberPattern.MatchString(accountNumber) {
		return IBAN{}, fmt.Errorf("%w: %q", ErrInvalidAccountNumber, accountNumber)
	}

	checkDigits := calculateCheckDigits(accountNumber)

	return NewIBAN(polandCountryCode + checkDigits + accountNumber)
}

func (i IBAN) String() string {
	return i.value
}

// CountryCode is the two-letter prefix of the IBAN.
func (i IBAN) CountryCode() string {
	return i.value[:2]
}

// CheckDigits are the two digits following the country code.
func (i IBAN) CheckDigits() string {
	return i.value[2:4]
}

// AccountNumber is the national account number following the check digits.
func (i IBAN) AccountNumber() string {
	return i.value[4:]
}

func (i IBAN) MarshalText() ([]byte, error) {
	return []byte(i.value), nil
}

func (i *IBAN) UnmarshalText(text []byte) error {
	iban, err := NewIBAN(string(text))
	if err != nil {
		return err
	}
	*i = iban
	return nil
}

// calculateCheckDigits runs MOD-97-10 over the rearranged account number:
// accountNumber + "PL" + "00", with letters mapped to numbers (A=10 .. Z=35).
func calculateCheckDigits(accountNumber string) string {
	numeric := convertToNumeric(accountNumber + polandCountryCode + "00")

	remainder := 0
	for _, digit := range numeric {
		remainder = (remainder*10 + int(digit-'0')) % 97
	}

	return fmt.Sprintf("%02d", 98-remainder)
}

func convertToNumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			fmt.Fprintf(&b, "%d", int(r-'A')+10)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
