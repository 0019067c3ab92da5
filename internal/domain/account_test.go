package domain_test

import (
	"errors"
	"testing"

	"github.com/easybanking/backoffice/internal/domain"
)

func testIBAN(t *testing.T) domain.IBAN {
	t.Helper()
	iban, err := domain.NewIBAN("PL7810901014000007121981287400")
	if err != nil {
		t.Fatalf("NewIBAN: %v", err)
	}
	return iban
}

func TestOpenAccount(t *testing.T) {
	account := domain.OpenAccount(
		domain.NewBankAccountID(),
		testIBAN(t),
		domain.NewCustomerID(),
		domain.Zero(domain.PLN),
	)

	if !account.IsActive {
		t.Error("expected new account to be active")
	}
	if !account.Balance.IsZero() {
		t.Errorf("expected zero balance, got %s", account.Balance)
	}
	if account.Version != 0 {
		t.Errorf("expected version 0, got %d", account.Version)
	}
}

func TestBankAccount_DepositAndWithdraw(t *testing.T) {
	account := domain.OpenAccount(
		domain.NewBankAccountID(), testIBAN(t), domain.NewCustomerID(), domain.Zero(domain.PLN))

	if err := account.Deposit(mustMoney(t, 100000, domain.PLN)); err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	if err := account.Withdraw(mustMoney(t, 30000, domain.PLN)); err != nil {
		t.Fatalf("Withdraw: %v", err)
	}

	if account.Balance.Amount != 70000 {
		t.Errorf("expected balance 70000, got %d", account.Balance.Amount)
	}
}

func TestBankAccount_WithdrawInsufficientFundsLeavesBalance(t *testing.T) {
	account := domain.OpenAccount(
		domain.NewBankAccountID(), testIBAN(t), domain.NewCustomerID(), mustMoney(t, 100, domain.PLN))

	err := account.Withdraw(mustMoney(t, 101, domain.PLN))
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if account.Balance.Amount != 100 {
		t.Errorf("expected balance unchanged at 100, got %d", account.Balance.Amount)
	}
}

func TestBankAccount_DepositCurrencyMismatch(t *testing.T) {
	account := domain.OpenAccount(
		domain.NewBankAccountID(), testIBAN(t), domain.NewCustomerID(), domain.Zero(domain.PLN))

	err := account.Deposit(mustMoney(t, 100, domain.EUR))
	if !errors.Is(err, domain.ErrCurrencyMismatch) {
		t.Fatalf("expected ErrCurrencyMismatch, got %v", err)
	}
}

func TestBankAccount_Close(t *testing.T) {
	t.Run("zero balance succeeds", func(t *testing.T) {
		account := domain.OpenAccount(
			domain.NewBankAccountID(), testIBAN(t), domain.NewCustomerID(), domain.Zero(domain.PLN))

		if err := account.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
		if account.IsActive {
			t.Error("expected account to be inactive after close")
		}
	})

	t.Run("non-zero balance fails", func(t *testing.T) {
		account := domain.OpenAccount(
			domain.NewBankAccountID(), testIBAN(t), domain.NewCustomerID(), mustMoney(t, 1, domain.PLN))

		if err := account.Close(); !errors.Is(err, domain.ErrNonZeroBalance) {
			t.Fatalf("expected ErrNonZeroBalance, got %v", err)
		}
		if !account.IsActive {
			t.Error("expected account to remain active")
		}
	})
}

func TestBankAccount_HasOwner(t *testing.T) {
	owner := domain.NewCustomerID()
	account := domain.OpenAccount(
		domain.NewBankAccountID(), testIBAN(t), owner, domain.Zero(domain.PLN))

	if !account.HasOwner(owner) {
		t.Error("expected account to belong to its owner")
	}
	if account.HasOwner(domain.NewCustomerID()) {
		t.Error("expected account not to belong to a stranger")
	}
}
