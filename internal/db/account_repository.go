package db

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/easybanking/backoffice/internal/domain"
)

// bankCode prefixes every generated Polish account number.
const bankCode = "10201026"

// BankAccountRepository implements domain.BankAccountRepository on PostgreSQL.
type BankAccountRepository struct {
	pool *pgxpool.Pool
}

// NewBankAccountRepository creates a new BankAccountRepository.
func NewBankAccountRepository(pool *pgxpool.Pool) *BankAccountRepository {
	return &BankAccountRepository{pool: pool}
}

// querier is satisfied by both pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *BankAccountRepository) db(ctx context.Context) querier {
	if tx := getTx(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const accountColumns = `id, iban, customer_id, balance, currency, is_active, version`

// Save persists the account with a compare-and-set on its version. A fresh
// aggregate (version 0) is inserted; anything else is an update guarded by
// the version the aggregate was loaded with.
func (r *BankAccountRepository) Save(ctx context.Context, account *domain.BankAccount) error {
	if account.Version == 0 {
		query := `
			INSERT INTO bank_account (id, iban, customer_id, balance, currency, is_active, version)
			VALUES ($1, $2, $3, $4, $5, $6, 1)
		`
		_, err := r.db(ctx).Exec(ctx, query,
			account.ID.UUID,
			account.IBAN.String(),
			account.CustomerID.UUID,
			account.Balance.Amount,
			account.Balance.Currency.String(),
			account.IsActive,
		)
		if err != nil {
			return fmt.Errorf("failed to insert account: %w", err)
		}
		account.Version = 1
		return nil
	}

	query := `
		UPDATE bank_account
		SET balance = $3,
		    currency = $4,
		    is_active = $5,
		    version = version + 1
		WHERE id = $1 AND version = $2
	`
	result, err := r.db(ctx).Exec(ctx, query,
		account.ID.UUID,
		account.Version,
		account.Balance.Amount,
		account.Balance.Currency.String(),
		account.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	if result.RowsAffected() == 0 {
		// Accounts are never physically deleted, so a missed update means a
		// concurrent writer advanced the version first.
		return fmt.Errorf("account %s at version %d: %w",
			account.ID, account.Version, domain.ErrConcurrentModification)
	}

	account.Version++
	return nil
}

// FindByID retrieves an account by its identifier.
func (r *BankAccountRepository) FindByID(ctx context.Context, id domain.BankAccountID) (*domain.BankAccount, error) {
	row := r.db(ctx).QueryRow(ctx,
		`SELECT `+accountColumns+` FROM bank_account WHERE id = $1`, id.UUID)
	return scanAccount(row)
}

// FindByIBAN retrieves an account by its IBAN.
func (r *BankAccountRepository) FindByIBAN(ctx context.Context, iban domain.IBAN) (*domain.BankAccount, error) {
	row := r.db(ctx).QueryRow(ctx,
		`SELECT `+accountColumns+` FROM bank_account WHERE iban = $1`, iban.String())
	return scanAccount(row)
}

// FindByCustomerID lists a customer's accounts ordered by IBAN.
func (r *BankAccountRepository) FindByCustomerID(ctx context.Context, customerID domain.CustomerID) ([]*domain.BankAccount, error) {
	rows, err := r.db(ctx).Query(ctx,
		`SELECT `+accountColumns+` FROM bank_account WHERE customer_id = $1 ORDER BY iban`,
		customerID.UUID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	return scanAccounts(rows)
}

// FindAllActive lists all open accounts ordered by IBAN.
func (r *BankAccountRepository) FindAllActive(ctx context.Context) ([]*domain.BankAccount, error) {
	rows, err := r.db(ctx).Query(ctx,
		`SELECT `+accountColumns+` FROM bank_account WHERE is_active ORDER BY iban`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	return scanAccounts(rows)
}

// ExistsByIBAN reports whether an account with the IBAN exists.
func (r *BankAccountRepository) ExistsByIBAN(ctx context.Context, iban domain.IBAN) (bool, error) {
	var exists bool
	err := r.db(ctx).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM bank_account WHERE iban = $1)`, iban.String()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check IBAN: %w", err)
	}
	return exists, nil
}

// NextAccountNumber generates a 26-digit Polish account number: the bank code
// followed by 18 random digits.
func (r *BankAccountRepository) NextAccountNumber(ctx context.Context) (string, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("failed to generate account number: %w", err)
	}
	random := binary.BigEndian.Uint64(buf[:]) % 1_000_000_000_000_000_000

	return fmt.Sprintf("%s%018d", bankCode, random), nil
}

func scanAccount(row pgx.Row) (*domain.BankAccount, error) {
	var (
		id         uuid.UUID
		iban       string
		customerID uuid.UUID
		balance    int64
		currency   string
		isActive   bool
		version    int64
	)

	err := row.Scan(&id, &iban, &customerID, &balance, &currency, &isActive, &version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}

	return hydrateAccount(id, iban, customerID, balance, currency, isActive, version)
}

func scanAccounts(rows pgx.Rows) ([]*domain.BankAccount, error) {
	defer rows.Close()

	var accounts []*domain.BankAccount
	for rows.Next() {
		var (
			id         uuid.UUID
			iban       string
			customerID uuid.UUID
			balance    int64
			currency   string
			isActive   bool
			version    int64
		)
		if err := rows.Scan(&id, &iban, &customerID, &balance, &currency, &isActive, &version); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}

		account, err := hydrateAccount(id, iban, customerID, balance, currency, isActive, version)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

func hydrateAccount(id uuid.UUID, rawIBAN string, customerID uuid.UUID, balance int64, rawCurrency string, isActive bool, version int64) (*domain.BankAccount, error) {
	iban, err := domain.NewIBAN(rawIBAN)
	if err != nil {
		return nil, fmt.Errorf("stored IBAN is invalid: %w", err)
	}
	currency, err := domain.ParseCurrency(rawCurrency)
	if err != nil {
		return nil, fmt.Errorf("stored currency is invalid: %w", err)
	}
	money, err := domain.NewMoney(balance, currency)
	if err != nil {
		return nil, fmt.Errorf("stored balance is invalid: %w", err)
	}

	return &domain.BankAccount{
		ID:         domain.BankAccountID{UUID: id},
		IBAN:       iban,
		CustomerID: domain.CustomerID{UUID: customerID},
		Balance:    money,
		IsActive:   isActive,
		Version:    version,
	}, nil
}
