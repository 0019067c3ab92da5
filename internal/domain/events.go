package domain

import "time"

// DomainEvent is a fact published after a command has persisted its state.
// Publication is fire-and-forget: the publisher does not inspect subscriber
// results, and a failed publish does not roll back already-persisted state.
type DomainEvent interface {
	EventName() string
	OccurredOn() time.Time
}

// BankAccountOpened is published when a new account has been opened.
type BankAccountOpened struct {
	AccountID  BankAccountID `json:"accountId"`
	IBAN       IBAN          `json:"iban"`
	CustomerID CustomerID    `json:"customerId"`
	Currency   Currency      `json:"currency"`
	OccurredAt time.Time     `json:"occurredAt"`
}

func (e BankAccountOpened) EventName() string     { return "account.opened" }
func (e BankAccountOpened) OccurredOn() time.Time { return e.OccurredAt }

// BankAccountClosed is published when an account has been closed. The
// withdrawn balance may be zero.
type BankAccountClosed struct {
	AccountID        BankAccountID `json:"accountId"`
	WithdrawnBalance Money         `json:"withdrawnBalance"`
	OccurredAt       time.Time     `json:"occurredAt"`
}

func (e BankAccountClosed) EventName() string     { return "account.closed" }
func (e BankAccountClosed) OccurredOn() time.Time { return e.OccurredAt }

// MoneyDeposited is published when cash has been deposited into an account.
type MoneyDeposited struct {
	TransactionID TransactionID `json:"transactionId"`
	IBAN          IBAN          `json:"iban"`
	Amount        Money         `json:"amount"`
	OccurredAt    time.Time     `json:"occurredAt"`
}

func (e MoneyDeposited) EventName() string     { return "money.deposited" }
func (e MoneyDeposited) OccurredOn() time.Time { return e.OccurredAt }

// MoneyTransferred is published once per transfer, not once per leg. The
// transaction id is that of the withdrawal leg and the amount is the original
// transfer amount in the requested currency.
type MoneyTransferred struct {
	TransactionID TransactionID `json:"transactionId"`
	FromIBAN      IBAN          `json:"fromIban"`
	ToIBAN        IBAN          `json:"toIban"`
	Amount        Money         `json:"amount"`
	OccurredAt    time.Time     `json:"occurredAt"`
}

func (e MoneyTransferred) EventName() string     { return "money.transferred" }
func (e MoneyTransferred) OccurredOn() time.Time { return e.OccurredAt }
