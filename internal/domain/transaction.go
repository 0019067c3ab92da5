package domain

import "time"

// TransactionType enumerates the four kinds of money movement.
type TransactionType string

const (
	TransferWithdrawal TransactionType = "TRANSFER_WITHDRAWAL"
	TransferDeposit    TransactionType = "TRANSFER_DEPOSIT"
	CashWithdrawal     TransactionType = "CASH_WITHDRAWAL"
	CashDeposit        TransactionType = "CASH_DEPOSIT"
)

// Transaction is the immutable record of a single money movement: one row per
// leg of a transfer, appended once and never mutated. Amount is the settled
// amount in the account's currency; OriginalAmount is the amount as requested,
// before conversion.
type Transaction struct {
	ID             TransactionID
	Type           TransactionType
	BankAccountID  BankAccountID
	Amount         Money
	OriginalAmount Money
	Rate           ExchangeRate
	OccurredAt     time.Time
}

// NewTransferWithdrawal records the withdrawal leg of a transfer.
func NewTransferWithdrawal(id TransactionID, accountID BankAccountID, amount, originalAmount Money, rate ExchangeRate, occurredAt time.Time) Transaction {
	return Transaction{
		ID:             id,
		Type:           TransferWithdrawal,
		BankAccountID:  accountID,
		Amount:         amount,
		OriginalAmount: originalAmount,
		Rate:           rate,
		OccurredAt:     occurredAt,
	}
}

// NewTransferDeposit records the deposit leg of a transfer.
func NewTransferDeposit(id TransactionID, accountID BankAccountID, amount, originalAmount Money, rate ExchangeRate, occurredAt time.Time) Transaction {
	return Transaction{
		ID:             id,
		Type:           TransferDeposit,
		BankAccountID:  accountID,
		Amount:         amount,
		OriginalAmount: originalAmount,
		Rate:           rate,
		OccurredAt:     occurredAt,
	}
}

// NewCashWithdrawal records a cash withdrawal. Cash movements never convert
// currency, so the original amount equals the settled amount and the rate is
// identity.
func NewCashWithdrawal(id TransactionID, accountID BankAccountID, amount Money, occurredAt time.Time) Transaction {
	return Transaction{
		ID:             id,
		Type:           CashWithdrawal,
		BankAccountID:  accountID,
		Amount:         amount,
		OriginalAmount: amount,
		Rate:           IdentityRate(amount.Currency),
		OccurredAt:     occurredAt,
	}
}

// NewCashDeposit records a cash deposit, identity rate as with withdrawals.
func NewCashDeposit(id TransactionID, accountID BankAccountID, amount Money, occurredAt time.Time) Transaction {
	return Transaction{
		ID:             id,
		Type:           CashDeposit,
		BankAccountID:  accountID,
		Amount:         amount,
		OriginalAmount: amount,
		Rate:           IdentityRate(amount.Currency),
		OccurredAt:     occurredAt,
	}
}
