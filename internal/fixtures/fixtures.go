// Package fixtures seeds the database with demo users, accounts and
// transactions for local development.
package fixtures

import (
	"context"
	"fmt"
	"log"

	"github.com/easybanking/backoffice/internal/domain"
)

// Loader creates the demo data by driving the same services the API uses, so
// seeded data goes through every domain invariant.
type Loader struct {
	users        *domain.UserService
	accounts     *domain.AccountService
	transactions *domain.TransactionService
}

// NewLoader creates a new Loader.
func NewLoader(users *domain.UserService, accounts *domain.AccountService, transactions *domain.TransactionService) *Loader {
	return &Loader{
		users:        users,
		accounts:     accounts,
		transactions: transactions,
	}
}

// Load seeds one employee, two customers with one account each, opening
// deposits and a PLN->EUR transfer between them. Fails if the demo users
// already exist.
func (l *Loader) Load(ctx context.Context) error {
	if _, err := l.users.CreateEmployee(ctx, "admin", "admin123", "Adam", "Adminowski"); err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}

	jan, err := l.users.CreateCustomer(ctx, "jan.kowalski", "customer123", "Jan", "Kowalski")
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	anna, err := l.users.CreateCustomer(ctx, "anna.nowak", "customer123", "Anna", "Nowak")
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	janAccount, err := l.accounts.Open(ctx, domain.CustomerID{UUID: jan.ID.UUID}, "PLN")
	if err != nil {
		return fmt.Errorf("failed to open PLN account: %w", err)
	}
	annaAccount, err := l.accounts.Open(ctx, domain.CustomerID{UUID: anna.ID.UUID}, "EUR")
	if err != nil {
		return fmt.Errorf("failed to open EUR account: %w", err)
	}

	// 2500.00 PLN and 500.00 EUR opening deposits.
	if _, err := l.transactions.Deposit(ctx, janAccount.ID, 250000, "PLN"); err != nil {
		return fmt.Errorf("failed to deposit: %w", err)
	}
	if _, err := l.transactions.Deposit(ctx, annaAccount.ID, 50000, "EUR"); err != nil {
		return fmt.Errorf("failed to deposit: %w", err)
	}

	// 100.00 PLN from Jan to Anna to seed a cross-currency transfer.
	if _, err := l.transactions.Transfer(ctx, janAccount.ID, annaAccount.ID, 10000, "PLN"); err != nil {
		return fmt.Errorf("failed to transfer: %w", err)
	}

	log.Printf("fixtures loaded: accounts %s and %s", janAccount.IBAN, annaAccount.IBAN)
	return nil
}
