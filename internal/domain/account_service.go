package domain

import (
	"context"
	"fmt"
	"time"
)

// AccountService handles the account lifecycle commands: opening and closing
// accounts, plus the account queries the back office needs. It is state-free;
// one invocation is one unit of work.
type AccountService struct {
	accounts BankAccountRepository
	tx       TransactionManager
	bus      EventBus
}

// NewAccountService creates a new AccountService.
func NewAccountService(accounts BankAccountRepository, tx TransactionManager, bus EventBus) *AccountService {
	return &AccountService{
		accounts: accounts,
		tx:       tx,
		bus:      bus,
	}
}

// Open opens a new account for the customer in the given currency. The
// account starts active with a zero balance and a freshly generated Polish
// IBAN. Publishes BankAccountOpened after the account has been persisted.
func (s *AccountService) Open(ctx context.Context, customerID CustomerID, currencyCode string) (*BankAccount, error) {
	currency, err := ParseCurrency(currencyCode)
	if err != nil {
		return nil, err
	}

	accountNumber, err := s.accounts.NextAccountNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain account number: %w", err)
	}

	iban, err := GeneratePolishIBAN(accountNumber)
	if err != nil {
		return nil, err
	}

	// Guards against account-number collisions.
	exists, err := s.accounts.ExistsByIBAN(ctx, iban)
	if err != nil {
		return nil, fmt.Errorf("failed to check IBAN: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%s: %w", iban, ErrIBANExists)
	}

	account := OpenAccount(NewBankAccountID(), iban, customerID, Zero(currency))

	if err := s.accounts.Save(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.bus.Publish(ctx, BankAccountOpened{
		AccountID:  account.ID,
		IBAN:       account.IBAN,
		CustomerID: account.CustomerID,
		Currency:   currency,
		OccurredAt: time.Now().UTC(),
	})

	return account, nil
}

// Close withdraws any remaining balance and closes the account. Publishes
// BankAccountClosed carrying the withdrawn balance, which may be zero; a
// subscriber records the matching cash-withdrawal transaction.
func (s *AccountService) Close(ctx context.Context, accountID BankAccountID) error {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return err
	}

	balanceToWithdraw := account.Balance

	// The full balance is always withdrawable, so this cannot fail for funds.
	if balanceToWithdraw.IsPositive() {
		if err := account.Withdraw(balanceToWithdraw); err != nil {
			return err
		}
	}

	if err := account.Close(); err != nil {
		return err
	}

	// The deactivated account and the closing-withdrawal record appended by
	// the BankAccountClosed subscriber must commit together.
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.accounts.Save(ctx, account); err != nil {
			return fmt.Errorf("failed to save account: %w", err)
		}

		s.bus.Publish(ctx, BankAccountClosed{
			AccountID:        account.ID,
			WithdrawnBalance: balanceToWithdraw,
			OccurredAt:       time.Now().UTC(),
		})

		return nil
	})
}

// Get retrieves a single account.
func (s *AccountService) Get(ctx context.Context, accountID BankAccountID) (*BankAccount, error) {
	return s.accounts.FindByID(ctx, accountID)
}

// AccountsByCustomer lists the accounts owned by a customer.
func (s *AccountService) AccountsByCustomer(ctx context.Context, customerID CustomerID) ([]*BankAccount, error) {
	return s.accounts.FindByCustomerID(ctx, customerID)
}

// AllActive lists every account that has not been closed.
func (s *AccountService) AllActive(ctx context.Context) ([]*BankAccount, error) {
	return s.accounts.FindAllActive(ctx)
}
