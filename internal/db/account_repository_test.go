package db

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/easybanking/backoffice/internal/domain"
)

func TestNextAccountNumber(t *testing.T) {
	repo := &BankAccountRepository{}

	number, err := repo.NextAccountNumber(context.Background())
	if err != nil {
		t.Fatalf("NextAccountNumber: %v", err)
	}

	if len(number) != 26 {
		t.Errorf("expected 26 digits, got %d (%s)", len(number), number)
	}
	if !strings.HasPrefix(number, bankCode) {
		t.Errorf("expected bank code prefix %s, got %s", bankCode, number)
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			t.Fatalf("expected digits only, got %q in %s", r, number)
		}
	}

	// A generated number must always yield a valid IBAN.
	if _, err := domain.GeneratePolishIBAN(number); err != nil {
		t.Errorf("GeneratePolishIBAN(%s): %v", number, err)
	}
}

func TestNextAccountNumber_Varies(t *testing.T) {
	repo := &BankAccountRepository{}

	first, err := repo.NextAccountNumber(context.Background())
	if err != nil {
		t.Fatalf("NextAccountNumber: %v", err)
	}
	second, err := repo.NextAccountNumber(context.Background())
	if err != nil {
		t.Fatalf("NextAccountNumber: %v", err)
	}
	if first == second {
		t.Errorf("expected distinct account numbers, got %s twice", first)
	}
}

func TestHydrateAccount(t *testing.T) {
	id := uuid.New()
	customerID := uuid.New()

	account, err := hydrateAccount(id, "PL7810901014000007121981287400", customerID, 50000, "PLN", true, 3)
	if err != nil {
		t.Fatalf("hydrateAccount: %v", err)
	}

	if account.ID.UUID != id {
		t.Errorf("expected id %s, got %s", id, account.ID)
	}
	if account.Balance.Amount != 50000 || account.Balance.Currency != domain.PLN {
		t.Errorf("unexpected balance %s", account.Balance)
	}
	if account.Version != 3 {
		t.Errorf("expected version 3, got %d", account.Version)
	}
}

func TestHydrateAccount_BadRow(t *testing.T) {
	id := uuid.New()
	customerID := uuid.New()

	if _, err := hydrateAccount(id, "PL7810901014000007121981287400", customerID, 100, "XXX", true, 1); !errors.Is(err, domain.ErrUnknownCurrency) {
		t.Errorf("expected ErrUnknownCurrency, got %v", err)
	}
	if _, err := hydrateAccount(id, "garbage", customerID, 100, "PLN", true, 1); !errors.Is(err, domain.ErrInvalidIBAN) {
		t.Errorf("expected ErrInvalidIBAN, got %v", err)
	}
}
