package domain_test

import (
	"errors"
	"testing"

	"github.com/easybanking/backoffice/internal/domain"
)

func TestNewExchangeRate_RejectsNonPositiveRate(t *testing.T) {
	for _, rate := range []float64{0, -0.5} {
		if _, err := domain.NewExchangeRate(domain.PLN, domain.EUR, rate); err == nil {
			t.Errorf("NewExchangeRate(%f): expected error", rate)
		}
	}
}

func TestExchangeRate_Convert(t *testing.T) {
	tests := []struct {
		name   string
		rate   float64
		amount int64
		want   int64
	}{
		{name: "pln to eur", rate: 0.23, amount: 10000, want: 2300},
		{name: "eur to pln", rate: 4.35, amount: 2300, want: 10005},
		{name: "rounds half up", rate: 0.23, amount: 137, want: 32},   // 31.51
		{name: "rounds down", rate: 0.23, amount: 135, want: 31},      // 31.05
		{name: "zero amount", rate: 0.23, amount: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := domain.NewExchangeRate(domain.PLN, domain.EUR, tt.rate)
			if err != nil {
				t.Fatalf("NewExchangeRate: %v", err)
			}

			converted, err := rate.Convert(mustMoney(t, tt.amount, domain.PLN))
			if err != nil {
				t.Fatalf("Convert: %v", err)
			}
			if converted.Amount != tt.want {
				t.Errorf("expected %d, got %d", tt.want, converted.Amount)
			}
			if converted.Currency != domain.EUR {
				t.Errorf("expected EUR, got %s", converted.Currency)
			}
		})
	}
}

func TestExchangeRate_ConvertRejectsWrongCurrency(t *testing.T) {
	rate, err := domain.NewExchangeRate(domain.PLN, domain.EUR, 0.23)
	if err != nil {
		t.Fatalf("NewExchangeRate: %v", err)
	}

	if _, err := rate.Convert(mustMoney(t, 100, domain.EUR)); !errors.Is(err, domain.ErrCurrencyMismatch) {
		t.Fatalf("expected ErrCurrencyMismatch, got %v", err)
	}
}

func TestIdentityRate(t *testing.T) {
	rate := domain.IdentityRate(domain.PLN)

	if !rate.IsIdentity() {
		t.Error("expected identity rate")
	}

	m := mustMoney(t, 12345, domain.PLN)
	converted, err := rate.Convert(m)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !converted.Equals(m) {
		t.Errorf("expected %s, got %s", m, converted)
	}
}

func TestExchangeRate_EqualsWithinEpsilon(t *testing.T) {
	a, _ := domain.NewExchangeRate(domain.PLN, domain.EUR, 0.23)
	b, _ := domain.NewExchangeRate(domain.PLN, domain.EUR, 0.2300000001)
	c, _ := domain.NewExchangeRate(domain.PLN, domain.EUR, 0.24)
	d, _ := domain.NewExchangeRate(domain.EUR, domain.PLN, 0.23)

	if !a.Equals(b) {
		t.Error("expected rates within epsilon to be equal")
	}
	if a.Equals(c) {
		t.Error("expected rates differing by 0.01 to differ")
	}
	if a.Equals(d) {
		t.Error("expected rates with swapped currencies to differ")
	}
}
