// Package httpapi exposes the back-office operations over a JSON HTTP API.
package httpapi

import (
	"context"

	"github.com/easybanking/backoffice/internal/domain"
)

// AccountOperations is the slice of the account service the API uses.
type AccountOperations interface {
	Open(ctx context.Context, customerID domain.CustomerID, currencyCode string) (*domain.BankAccount, error)
	Close(ctx context.Context, accountID domain.BankAccountID) error
	Get(ctx context.Context, accountID domain.BankAccountID) (*domain.BankAccount, error)
	AccountsByCustomer(ctx context.Context, customerID domain.CustomerID) ([]*domain.BankAccount, error)
	AllActive(ctx context.Context) ([]*domain.BankAccount, error)
}

// TransactionOperations is the slice of the transaction service the API uses.
type TransactionOperations interface {
	Deposit(ctx context.Context, accountID domain.BankAccountID, amount int64, currencyCode string) (*domain.Transaction, error)
	Transfer(ctx context.Context, fromAccountID, toAccountID domain.BankAccountID, amount int64, currencyCode string) (*domain.Transaction, error)
	History(ctx context.Context, accountID domain.BankAccountID) ([]domain.Transaction, error)
}

// UserOperations is the slice of the user service the API uses.
type UserOperations interface {
	CreateCustomer(ctx context.Context, username, password, firstName, lastName string) (*domain.User, error)
	Customers(ctx context.Context) ([]*domain.User, error)
}

// Handler serves the HTTP API.
type Handler struct {
	accounts     AccountOperations
	transactions TransactionOperations
	users        UserOperations
}

// NewHandler creates a new Handler.
func NewHandler(accounts AccountOperations, transactions TransactionOperations, users UserOperations) *Handler {
	return &Handler{
		accounts:     accounts,
		transactions: transactions,
		users:        users,
	}
}
