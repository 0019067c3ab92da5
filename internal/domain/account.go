package domain

import "fmt"

// BankAccount is the aggregate owning an account balance. Invariants: the
// balance never goes negative and the account can only be closed at zero
// balance. Closed is terminal.
//
// Version is a compare-and-set token checked by the repository at save time;
// a losing writer gets ErrConcurrentModification and nothing is persisted.
type BankAccount struct {
	ID         BankAccountID
	IBAN       IBAN
	CustomerID CustomerID
	Balance    Money
	IsActive   bool
	Version    int64
}

// OpenAccount creates a new active account with the given initial balance.
func OpenAccount(id BankAccountID, iban IBAN, customerID CustomerID, initialBalance Money) *BankAccount {
	return &BankAccount{
		ID:         id,
		IBAN:       iban,
		CustomerID: customerID,
		Balance:    initialBalance,
		IsActive:   true,
	}
}

// Deposit adds the amount to the balance. There is no upper bound; the only
// failure mode is a currency mismatch with the balance.
func (a *BankAccount) Deposit(amount Money) error {
	balance, err := a.Balance.Add(amount)
	if err != nil {
		return err
	}
	a.Balance = balance
	return nil
}

// Withdraw removes the amount from the balance, failing with
// ErrInsufficientFunds when the balance cannot cover it.
func (a *BankAccount) Withdraw(amount Money) error {
	covered, err := a.Balance.IsGreaterThanOrEqual(amount)
	if err != nil {
		return err
	}
	if !covered {
		return fmt.Errorf("account %s: requested %s: %w", a.ID, amount, ErrInsufficientFunds)
	}

	balance, err := a.Balance.Subtract(amount)
	if err != nil {
		return err
	}
	a.Balance = balance
	return nil
}

// Close deactivates the account. Callers must withdraw the full balance first;
// Close never auto-withdraws.
func (a *BankAccount) Close() error {
	if !a.Balance.IsZero() {
		return fmt.Errorf("account %s holds %s: %w", a.ID, a.Balance, ErrNonZeroBalance)
	}
	a.IsActive = false
	return nil
}

// HasOwner reports whether the account belongs to the given customer.
func (a *BankAccount) HasOwner(customerID CustomerID) bool {
	return a.CustomerID == customerID
}
