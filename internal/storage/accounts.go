package storage

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"
)

// Account represents a bank account record. Balances move only through
// Credit and Debit so the available <= total invariant cannot be broken
// from outside. A hold would lower available without lowering total; no
// such operation exists today, the two balances stay equal in practice.
type Account struct {
	number    int
	pin       int
	available decimal.Decimal
	total     decimal.Decimal
}

// ErrBalanceInvariant reports seed data where the available balance
// exceeds the total balance.
var ErrBalanceInvariant = errors.New("available balance exceeds total balance")

// NewAccount creates an account, rejecting seed data that violates the
// balance invariant.
func NewAccount(number, pin int, available, total decimal.Decimal) (*Account, error) {
	if available.GreaterThan(total) {
		return nil, ErrBalanceInvariant
	}
	return &Account{
		number:    number,
		pin:       pin,
		available: available,
		total:     total,
	}, nil
}

// Number returns the account number.
func (a *Account) Number() int {
	return a.number
}

// ValidatePIN reports whether userPIN matches the account PIN exactly.
func (a *Account) ValidatePIN(userPIN int) bool {
	return userPIN == a.pin
}

// AvailableBalance returns the balance available for withdrawal.
func (a *Account) AvailableBalance() decimal.Decimal {
	return a.available
}

// TotalBalance returns the total balance including any held funds.
func (a *Account) TotalBalance() decimal.Decimal {
	return a.total
}

// Credit adds amount to both the available and total balance.
func (a *Account) Credit(amount decimal.Decimal) {
	a.total = a.total.Add(amount)
	a.available = a.available.Add(amount)
}

// Debit subtracts amount from both the available and total balance.
// Callers validate the amount against the available balance first.
func (a *Account) Debit(amount decimal.Decimal) {
	a.available = a.available.Sub(amount)
	a.total = a.total.Sub(amount)
}

// IAccountStore defines the interface for account resolution and
// authentication. This abstraction allows swapping the implementation
// (e.g. a real banking backend) without changing callers.
//
//go:generate mockery --name IAccountStore --output mock_IAccountStore.go
type IAccountStore interface {
	Lookup(accountNumber int) (*Account, bool)
	Authenticate(accountNumber, pin int) bool
}

// AccountStore is an in-memory account store. Membership is fixed after
// construction; only balances of individual accounts change, and those
// have a single writer (the one live session).
type AccountStore struct {
	mu       sync.Mutex
	accounts map[int]*Account
}

// Ensure AccountStore implements IAccountStore at compile time.
var _ IAccountStore = (*AccountStore)(nil)

// NewAccountStore creates a store holding the given accounts.
func NewAccountStore(accounts ...*Account) *AccountStore {
	store := &AccountStore{accounts: make(map[int]*Account, len(accounts))}
	for _, account := range accounts {
		store.accounts[account.number] = account
	}
	return store
}

// NewSeededAccountStore creates the store with the simulation's fixed
// seed data.
func NewSeededAccountStore() *AccountStore {
	first, _ := NewAccount(12345, 1111, decimal.NewFromInt(1000), decimal.NewFromInt(1000))
	second, _ := NewAccount(98765, 2222, decimal.NewFromInt(500), decimal.NewFromInt(500))
	return NewAccountStore(first, second)
}

// Lookup resolves an account by number without side effects.
func (s *AccountStore) Lookup(accountNumber int) (*Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.accounts[accountNumber]
	return account, ok
}

// Authenticate reports whether an account exists for accountNumber and
// its PIN matches pin. An unknown account and a wrong PIN are not
// distinguished in the result.
func (s *AccountStore) Authenticate(accountNumber, pin int) bool {
	account, ok := s.Lookup(accountNumber)
	if !ok {
		return false
	}
	return account.ValidatePIN(pin)
}
