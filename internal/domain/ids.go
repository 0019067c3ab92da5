package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// UUID-backed value identifiers. Each type wraps uuid.UUID so identifiers of
// different entities cannot be mixed up; equality is by value.

// BankAccountID identifies a bank account.
type BankAccountID struct {
	uuid.UUID
}

// NewBankAccountID generates a fresh random identifier.
func NewBankAccountID() BankAccountID {
	return BankAccountID{uuid.New()}
}

// ParseBankAccountID parses an identifier from its string form.
func ParseBankAccountID(s string) (BankAccountID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return BankAccountID{}, fmt.Errorf("invalid bank account id %q: %w", s, err)
	}
	return BankAccountID{u}, nil
}

// CustomerID identifies the customer owning an account.
type CustomerID struct {
	uuid.UUID
}

func NewCustomerID() CustomerID {
	return CustomerID{uuid.New()}
}

func ParseCustomerID(s string) (CustomerID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return CustomerID{}, fmt.Errorf("invalid customer id %q: %w", s, err)
	}
	return CustomerID{u}, nil
}

// TransactionID identifies a transaction record.
type TransactionID struct {
	uuid.UUID
}

func NewTransactionID() TransactionID {
	return TransactionID{uuid.New()}
}

func ParseTransactionID(s string) (TransactionID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return TransactionID{}, fmt.Errorf("invalid transaction id %q: %w", s, err)
	}
	return TransactionID{u}, nil
}

// UserID identifies a user (employee or customer).
type UserID struct {
	uuid.UUID
}

func NewUserID() UserID {
	return UserID{uuid.New()}
}

func ParseUserID(s string) (UserID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, fmt.Errorf("invalid user id %q: %w", s, err)
	}
	return UserID{u}, nil
}
