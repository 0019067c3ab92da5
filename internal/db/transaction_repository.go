package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/easybanking/backoffice/internal/domain"
)

// TransactionRepository implements domain.TransactionRepository on
// PostgreSQL. The transaction table is an append-only log.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

func (r *TransactionRepository) db(ctx context.Context) querier {
	if tx := getTx(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const transactionColumns = `id, type, bank_account_id, amount, currency, original_amount, original_currency, exchange_rate, occurred_at`

// Save appends a transaction record.
func (r *TransactionRepository) Save(ctx context.Context, transaction domain.Transaction) error {
	query := `
		INSERT INTO transaction (
			id, type, bank_account_id,
			amount, currency,
			original_amount, original_currency,
			exchange_rate, occurred_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db(ctx).Exec(ctx, query,
		transaction.ID.UUID,
		string(transaction.Type),
		transaction.BankAccountID.UUID,
		transaction.Amount.Amount,
		transaction.Amount.Currency.String(),
		transaction.OriginalAmount.Amount,
		transaction.OriginalAmount.Currency.String(),
		transaction.Rate.Rate,
		transaction.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// FindByID retrieves a transaction by its identifier.
func (r *TransactionRepository) FindByID(ctx context.Context, id domain.TransactionID) (domain.Transaction, error) {
	row := r.db(ctx).QueryRow(ctx,
		`SELECT `+transactionColumns+` FROM transaction WHERE id = $1`, id.UUID)

	transaction, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Transaction{}, domain.ErrTransactionNotFound
		}
		return domain.Transaction{}, err
	}
	return transaction, nil
}

// FindByBankAccountID lists an account's transactions, newest first.
func (r *TransactionRepository) FindByBankAccountID(ctx context.Context, accountID domain.BankAccountID) ([]domain.Transaction, error) {
	rows, err := r.db(ctx).Query(ctx,
		`SELECT `+transactionColumns+` FROM transaction WHERE bank_account_id = $1 ORDER BY occurred_at DESC`,
		accountID.UUID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}

	return transactions, rows.Err()
}

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var (
		id               uuid.UUID
		txType           string
		accountID        uuid.UUID
		amount           int64
		currency         string
		originalAmount   int64
		originalCurrency string
		rate             float64
		occurredAt       time.Time
	)

	err := row.Scan(&id, &txType, &accountID, &amount, &currency,
		&originalAmount, &originalCurrency, &rate, &occurredAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Transaction{}, pgx.ErrNoRows
		}
		return domain.Transaction{}, fmt.Errorf("failed to scan transaction: %w", err)
	}

	settledCurrency, err := domain.ParseCurrency(currency)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("stored currency is invalid: %w", err)
	}
	requestedCurrency, err := domain.ParseCurrency(originalCurrency)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("stored original currency is invalid: %w", err)
	}

	settled, err := domain.NewMoney(amount, settledCurrency)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("stored amount is invalid: %w", err)
	}
	original, err := domain.NewMoney(originalAmount, requestedCurrency)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("stored original amount is invalid: %w", err)
	}

	exchangeRate, err := domain.NewExchangeRate(requestedCurrency, settledCurrency, rate)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("stored exchange rate is invalid: %w", err)
	}

	return domain.Transaction{
		ID:             domain.TransactionID{UUID: id},
		Type:           domain.TransactionType(txType),
		BankAccountID:  domain.BankAccountID{UUID: accountID},
		Amount:         settled,
		OriginalAmount: original,
		Rate:           exchangeRate,
		OccurredAt:     occurredAt,
	}, nil
}
