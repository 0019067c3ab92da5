package domain

import "context"

// BankAccountRepository defines the persistence contract for bank accounts.
// Accounts are exclusively owned by their repository: commands obtain a
// reference, mutate it in memory, then explicitly Save.
type BankAccountRepository interface {
	// Save persists the account. Writes are compare-and-set on the account's
	// Version; a mismatch returns ErrConcurrentModification and on success the
	// in-memory Version is advanced.
	Save(ctx context.Context, account *BankAccount) error

	// FindByID retrieves an account, returning ErrAccountNotFound if absent.
	FindByID(ctx context.Context, id BankAccountID) (*BankAccount, error)

	// FindByIBAN retrieves an account by IBAN, returning ErrAccountNotFound if absent.
	FindByIBAN(ctx context.Context, iban IBAN) (*BankAccount, error)

	// FindByCustomerID lists the accounts owned by a customer, ordered by IBAN.
	FindByCustomerID(ctx context.Context, customerID CustomerID) ([]*BankAccount, error)

	// FindAllActive lists all accounts that have not been closed.
	FindAllActive(ctx context.Context) ([]*BankAccount, error)

	// ExistsByIBAN reports whether an account with the given IBAN exists.
	ExistsByIBAN(ctx context.Context, iban IBAN) (bool, error)

	// NextAccountNumber produces a fresh 26-digit Polish account number.
	NextAccountNumber(ctx context.Context) (string, error)
}

// TransactionRepository defines the persistence contract for the append-only
// transaction log.
type TransactionRepository interface {
	// Save appends a transaction record. Records are never updated.
	Save(ctx context.Context, transaction Transaction) error

	// FindByID retrieves a transaction, returning ErrTransactionNotFound if absent.
	FindByID(ctx context.Context, id TransactionID) (Transaction, error)

	// FindByBankAccountID lists an account's transactions, newest first.
	FindByBankAccountID(ctx context.Context, accountID BankAccountID) ([]Transaction, error)
}

// UserRepository defines the persistence contract for users.
type UserRepository interface {
	Save(ctx context.Context, user *User) error

	// FindByID retrieves a user, returning ErrUserNotFound if absent.
	FindByID(ctx context.Context, id UserID) (*User, error)

	// FindByUsername retrieves a user by username, returning ErrUserNotFound if absent.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindAllCustomers lists users with the CUSTOMER role, ordered by username.
	FindAllCustomers(ctx context.Context) ([]*User, error)

	// ExistsByUsername reports whether a username is already registered.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// TransactionManager runs a function within a single storage transaction.
// Repository calls made with the context passed to fn join that transaction;
// an error from fn rolls everything back.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ExchangeRateProvider looks up the rate for an ordered currency pair. The
// provider, not its callers, owns the from==to identity short-circuit; an
// unconfigured pair returns ErrRateNotFound.
type ExchangeRateProvider interface {
	GetRate(from, to Currency) (ExchangeRate, error)
}

// EventBus dispatches a domain event to zero or more subscribers before
// returning. Publish never reports subscriber failures back to the caller.
type EventBus interface {
	Publish(ctx context.Context, event DomainEvent)
}
