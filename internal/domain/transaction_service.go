package domain

import (
	"context"
	"fmt"
	"time"
)

// TransactionService handles the money-movement commands (cash deposits and
// transfers) and the transaction history query. Handlers are the only
// orchestration layer: they load aggregates, apply domain operations, persist
// the new state, append transaction records and publish one event.
type TransactionService struct {
	accounts     BankAccountRepository
	transactions TransactionRepository
	rates        ExchangeRateProvider
	tx           TransactionManager
	bus          EventBus
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	accounts BankAccountRepository,
	transactions TransactionRepository,
	rates ExchangeRateProvider,
	tx TransactionManager,
	bus EventBus,
) *TransactionService {
	return &TransactionService{
		accounts:     accounts,
		transactions: transactions,
		rates:        rates,
		tx:           tx,
		bus:          bus,
	}
}

// Deposit deposits cash into an account. Cash deposits never convert
// currency: the deposit currency must equal the account currency. Returns the
// recorded CASH_DEPOSIT transaction.
func (s *TransactionService) Deposit(ctx context.Context, accountID BankAccountID, amount int64, currencyCode string) (*Transaction, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	currency, err := ParseCurrency(currencyCode)
	if err != nil {
		return nil, err
	}
	if currency != account.Balance.Currency {
		return nil, fmt.Errorf("deposit in %s into %s account: %w",
			currency, account.Balance.Currency, ErrCurrencyMismatch)
	}

	money, err := NewMoney(amount, currency)
	if err != nil {
		return nil, err
	}

	if err := account.Deposit(money); err != nil {
		return nil, err
	}

	occurredAt := time.Now().UTC()
	transaction := NewCashDeposit(NewTransactionID(), account.ID, money, occurredAt)

	// The new balance and its ledger record commit together.
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.accounts.Save(ctx, account); err != nil {
			return fmt.Errorf("failed to save account: %w", err)
		}
		if err := s.transactions.Save(ctx, transaction); err != nil {
			return fmt.Errorf("failed to save transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, MoneyDeposited{
		TransactionID: transaction.ID,
		IBAN:          account.IBAN,
		Amount:        money,
		OccurredAt:    occurredAt,
	})

	return &transaction, nil
}

// Transfer moves money between two accounts. The transfer amount is
// denominated in the requested currency, which need not match either account.
// Each leg is converted independently from the original amount with its own
// rate lookup; the two legs are never chained through one conversion. Two
// transaction records are appended, one per leg, and a single
// MoneyTransferred event is published for the whole transfer. Returns the
// withdrawal-leg transaction.
func (s *TransactionService) Transfer(ctx context.Context, fromAccountID, toAccountID BankAccountID, amount int64, currencyCode string) (*Transaction, error) {
	fromAccount, err := s.accounts.FindByID(ctx, fromAccountID)
	if err != nil {
		return nil, fmt.Errorf("source bank account %s: %w", fromAccountID, err)
	}
	toAccount, err := s.accounts.FindByID(ctx, toAccountID)
	if err != nil {
		return nil, fmt.Errorf("target bank account %s: %w", toAccountID, err)
	}

	transferCurrency, err := ParseCurrency(currencyCode)
	if err != nil {
		return nil, err
	}
	transferAmount, err := NewMoney(amount, transferCurrency)
	if err != nil {
		return nil, err
	}

	withdrawalRate, err := s.rates.GetRate(transferCurrency, fromAccount.Balance.Currency)
	if err != nil {
		return nil, err
	}
	depositRate, err := s.rates.GetRate(transferCurrency, toAccount.Balance.Currency)
	if err != nil {
		return nil, err
	}

	amountToWithdraw, err := withdrawalRate.Convert(transferAmount)
	if err != nil {
		return nil, err
	}
	amountToDeposit, err := depositRate.Convert(transferAmount)
	if err != nil {
		return nil, err
	}

	// Nothing has been persisted up to this point, so a failed withdrawal
	// leaves no partial state.
	if err := fromAccount.Withdraw(amountToWithdraw); err != nil {
		return nil, err
	}
	if err := toAccount.Deposit(amountToDeposit); err != nil {
		return nil, err
	}

	occurredAt := time.Now().UTC()

	withdrawalLeg := NewTransferWithdrawal(
		NewTransactionID(), fromAccount.ID, amountToWithdraw, transferAmount, withdrawalRate, occurredAt)
	depositLeg := NewTransferDeposit(
		NewTransactionID(), toAccount.ID, amountToDeposit, transferAmount, depositRate, occurredAt)

	// Both balances and both legs commit together; a failure on any of the
	// four writes leaves no partial transfer.
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.accounts.Save(ctx, fromAccount); err != nil {
			return fmt.Errorf("failed to save source account: %w", err)
		}
		if err := s.accounts.Save(ctx, toAccount); err != nil {
			return fmt.Errorf("failed to save target account: %w", err)
		}
		if err := s.transactions.Save(ctx, withdrawalLeg); err != nil {
			return fmt.Errorf("failed to save withdrawal leg: %w", err)
		}
		if err := s.transactions.Save(ctx, depositLeg); err != nil {
			return fmt.Errorf("failed to save deposit leg: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, MoneyTransferred{
		TransactionID: withdrawalLeg.ID,
		FromIBAN:      fromAccount.IBAN,
		ToIBAN:        toAccount.IBAN,
		Amount:        transferAmount,
		OccurredAt:    occurredAt,
	})

	return &withdrawalLeg, nil
}

// History lists an account's transactions, newest first.
func (s *TransactionService) History(ctx context.Context, accountID BankAccountID) ([]Transaction, error) {
	return s.transactions.FindByBankAccountID(ctx, accountID)
}

// OnBankAccountClosed reacts to BankAccountClosed events by recording the
// cash withdrawal of the closed account's balance. Nothing is recorded when
// the withdrawn balance was zero. Registered as an event-bus subscriber; it
// runs synchronously within the closing request.
func (s *TransactionService) OnBankAccountClosed(ctx context.Context, event DomainEvent) error {
	closed, ok := event.(BankAccountClosed)
	if !ok {
		return nil
	}
	if closed.WithdrawnBalance.IsZero() {
		return nil
	}

	transaction := NewCashWithdrawal(
		NewTransactionID(), closed.AccountID, closed.WithdrawnBalance, closed.OccurredAt)

	if err := s.transactions.Save(ctx, transaction); err != nil {
		return fmt.Errorf("failed to record closing withdrawal: %w", err)
	}
	return nil
}
