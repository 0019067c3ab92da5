package domain

import "errors"

var (
	// ErrUnknownCurrency is returned when a currency code is not one of the supported currencies
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrCurrencyMismatch is returned when an operation is attempted between two different currencies
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrNegativeAmount is returned when constructing money with a negative amount
	ErrNegativeAmount = errors.New("money amount must be non-negative")

	// ErrInsufficientFunds is returned when an account balance cannot cover a withdrawal
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNonZeroBalance is returned when closing an account that still holds money
	ErrNonZeroBalance = errors.New("cannot close account with non-zero balance")

	// ErrInvalidIBAN is returned when an IBAN fails format validation
	ErrInvalidIBAN = errors.New("invalid IBAN")

	// ErrInvalidAccountNumber is returned when a Polish account number is not 26 digits
	ErrInvalidAccountNumber = errors.New("polish account number must be 26 digits")

	// ErrRateNotFound is returned when no exchange rate is configured for a currency pair
	ErrRateNotFound = errors.New("exchange rate not found")

	// ErrAccountNotFound is returned when a bank account doesn't exist
	ErrAccountNotFound = errors.New("bank account not found")

	// ErrIBANExists is returned when opening an account whose generated IBAN is already taken
	ErrIBANExists = errors.New("IBAN already exists")

	// ErrTransactionNotFound is returned when a transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrUserNotFound is returned when a user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when creating a user with an already registered username
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidUser is returned when user fields fail validation
	ErrInvalidUser = errors.New("invalid user data")

	// ErrConcurrentModification is returned when a compare-and-set save loses to a
	// concurrent writer. The whole command fails; callers decide whether to retry.
	ErrConcurrentModification = errors.New("account was modified concurrently")
)
