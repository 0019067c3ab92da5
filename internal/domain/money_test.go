package domain_test

import (
	"errors"
	"testing"

	"github.com/easybanking/backoffice/internal/domain"
)

func mustMoney(t *testing.T, amount int64, currency domain.Currency) domain.Money {
	t.Helper()
	m, err := domain.NewMoney(amount, currency)
	if err != nil {
		t.Fatalf("NewMoney(%d, %s): %v", amount, currency, err)
	}
	return m
}

func TestNewMoney_RejectsNegativeAmount(t *testing.T) {
	_, err := domain.NewMoney(-1, domain.PLN)
	if !errors.Is(err, domain.ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}
}

func TestMoney_AddZeroIsIdentity(t *testing.T) {
	amounts := []int64{0, 1, 99, 250000}
	for _, amount := range amounts {
		m := mustMoney(t, amount, domain.EUR)

		sum, err := m.Add(domain.Zero(domain.EUR))
		if err != nil {
			t.Fatalf("Add(zero): %v", err)
		}
		if !sum.Equals(m) {
			t.Errorf("expected %s, got %s", m, sum)
		}
	}
}

func TestMoney_SubtractAddRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
	}{
		{name: "equal amounts", a: 100, b: 100},
		{name: "larger minuend", a: 250000, b: 99},
		{name: "zero subtrahend", a: 42, b: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustMoney(t, tt.a, domain.PLN)
			b := mustMoney(t, tt.b, domain.PLN)

			diff, err := a.Subtract(b)
			if err != nil {
				t.Fatalf("Subtract: %v", err)
			}
			sum, err := diff.Add(b)
			if err != nil {
				t.Fatalf("Add: %v", err)
			}
			if !sum.Equals(a) {
				t.Errorf("expected %s, got %s", a, sum)
			}
		})
	}
}

func TestMoney_SubtractBelowZeroFails(t *testing.T) {
	a := mustMoney(t, 100, domain.PLN)
	b := mustMoney(t, 101, domain.PLN)

	_, err := a.Subtract(b)
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
}

func TestMoney_CurrencyMismatch(t *testing.T) {
	pln := mustMoney(t, 100, domain.PLN)
	eur := mustMoney(t, 100, domain.EUR)

	if _, err := pln.Add(eur); !errors.Is(err, domain.ErrCurrencyMismatch) {
		t.Errorf("Add: expected ErrCurrencyMismatch, got %v", err)
	}
	if _, err := pln.Subtract(eur); !errors.Is(err, domain.ErrCurrencyMismatch) {
		t.Errorf("Subtract: expected ErrCurrencyMismatch, got %v", err)
	}
	if _, err := pln.IsGreaterThan(eur); !errors.Is(err, domain.ErrCurrencyMismatch) {
		t.Errorf("IsGreaterThan: expected ErrCurrencyMismatch, got %v", err)
	}
	if _, err := pln.IsLessThan(eur); !errors.Is(err, domain.ErrCurrencyMismatch) {
		t.Errorf("IsLessThan: expected ErrCurrencyMismatch, got %v", err)
	}
}

func TestMoney_Comparisons(t *testing.T) {
	small := mustMoney(t, 100, domain.PLN)
	large := mustMoney(t, 200, domain.PLN)

	if got, _ := large.IsGreaterThan(small); !got {
		t.Error("expected 200 > 100")
	}
	if got, _ := small.IsGreaterThanOrEqual(small); !got {
		t.Error("expected 100 >= 100")
	}
	if got, _ := small.IsLessThan(large); !got {
		t.Error("expected 100 < 200")
	}
	if !domain.Zero(domain.PLN).IsZero() {
		t.Error("expected zero to be zero")
	}
	if domain.Zero(domain.PLN).IsPositive() {
		t.Error("expected zero not to be positive")
	}
	if !small.IsPositive() {
		t.Error("expected 100 to be positive")
	}
}

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		code    string
		want    domain.Currency
		wantErr bool
	}{
		{code: "PLN", want: domain.PLN},
		{code: "EUR", want: domain.EUR},
		{code: "USD", wantErr: true},
		{code: "pln", wantErr: true},
		{code: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := domain.ParseCurrency(tt.code)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrUnknownCurrency) {
					t.Fatalf("expected ErrUnknownCurrency, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCurrency(%q): %v", tt.code, err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
