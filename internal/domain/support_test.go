package domain_test

import (
	"context"
	"sort"

	"github.com/easybanking/backoffice/internal/domain"
)

// In-memory repositories backing the service tests.

type memAccountRepo struct {
	accounts   map[domain.BankAccountID]*domain.BankAccount
	nextNumber string
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{
		accounts:   make(map[domain.BankAccountID]*domain.BankAccount),
		nextNumber: "10901014000007121981287400",
	}
}

func (r *memAccountRepo) Save(_ context.Context, account *domain.BankAccount) error {
	if stored, ok := r.accounts[account.ID]; ok && stored.Version != account.Version {
		return domain.ErrConcurrentModification
	}
	account.Version++
	r.accounts[account.ID] = account
	return nil
}

func (r *memAccountRepo) FindByID(_ context.Context, id domain.BankAccountID) (*domain.BankAccount, error) {
	account, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

func (r *memAccountRepo) FindByIBAN(_ context.Context, iban domain.IBAN) (*domain.BankAccount, error) {
	for _, account := range r.accounts {
		if account.IBAN == iban {
			return account, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *memAccountRepo) FindByCustomerID(_ context.Context, customerID domain.CustomerID) ([]*domain.BankAccount, error) {
	var accounts []*domain.BankAccount
	for _, account := range r.accounts {
		if account.HasOwner(customerID) {
			accounts = append(accounts, account)
		}
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].IBAN.String() < accounts[j].IBAN.String()
	})
	return accounts, nil
}

func (r *memAccountRepo) FindAllActive(_ context.Context) ([]*domain.BankAccount, error) {
	var accounts []*domain.BankAccount
	for _, account := range r.accounts {
		if account.IsActive {
			accounts = append(accounts, account)
		}
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].IBAN.String() < accounts[j].IBAN.String()
	})
	return accounts, nil
}

func (r *memAccountRepo) ExistsByIBAN(_ context.Context, iban domain.IBAN) (bool, error) {
	_, err := r.FindByIBAN(context.Background(), iban)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (r *memAccountRepo) NextAccountNumber(_ context.Context) (string, error) {
	return r.nextNumber, nil
}

func (r *memAccountRepo) seed(account *domain.BankAccount) {
	r.accounts[account.ID] = account
}

type memTransactionRepo struct {
	records []domain.Transaction
}

func newMemTransactionRepo() *memTransactionRepo {
	return &memTransactionRepo{}
}

func (r *memTransactionRepo) Save(_ context.Context, transaction domain.Transaction) error {
	r.records = append(r.records, transaction)
	return nil
}

func (r *memTransactionRepo) FindByID(_ context.Context, id domain.TransactionID) (domain.Transaction, error) {
	for _, record := range r.records {
		if record.ID == id {
			return record, nil
		}
	}
	return domain.Transaction{}, domain.ErrTransactionNotFound
}

func (r *memTransactionRepo) FindByBankAccountID(_ context.Context, accountID domain.BankAccountID) ([]domain.Transaction, error) {
	var records []domain.Transaction
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].BankAccountID == accountID {
			records = append(records, r.records[i])
		}
	}
	return records, nil
}

type memUserRepo struct {
	users map[domain.UserID]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[domain.UserID]*domain.User)}
}

func (r *memUserRepo) Save(_ context.Context, user *domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id domain.UserID) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindAllCustomers(_ context.Context) ([]*domain.User, error) {
	var users []*domain.User
	for _, user := range r.users {
		if user.IsCustomer() {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].Username < users[j].Username
	})
	return users, nil
}

func (r *memUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, err := r.FindByUsername(context.Background(), username)
	return err == nil, nil
}

// memTxManager runs units of work directly, counting invocations so tests can
// assert which commands persist atomically.
type memTxManager struct {
	calls int
}

func (m *memTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

// failingTxManager refuses every unit of work without running it.
type failingTxManager struct {
	err error
}

func (m *failingTxManager) WithTransaction(_ context.Context, _ func(ctx context.Context) error) error {
	return m.err
}

// recordingBus captures published events without dispatching them.
type recordingBus struct {
	events []domain.DomainEvent
}

func (b *recordingBus) Publish(_ context.Context, event domain.DomainEvent) {
	b.events = append(b.events, event)
}
