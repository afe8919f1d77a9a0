package service

import (
	"sync"

	"github.com/shopspring/decimal"
)

// BillDenomination is the fixed value of every bill in the reserve.
const BillDenomination = 20

var billDenomination = decimal.NewFromInt(BillDenomination)

// BillsRequired returns how many bills cover amount, truncating toward
// zero. A fractional bill count is truncated, not rejected; withdrawals
// are validated as exact multiples of the denomination before this runs.
func BillsRequired(amount decimal.Decimal) int {
	return int(amount.Div(billDenomination).IntPart())
}

// CashReserve tracks the bills the machine has on hand.
type CashReserve struct {
	mu    sync.Mutex
	bills int
}

// NewCashReserve creates a reserve holding bills twenty-unit bills.
func NewCashReserve(bills int) *CashReserve {
	return &CashReserve{bills: bills}
}

// Bills returns the current bill count.
func (c *CashReserve) Bills() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bills
}

// Sufficient reports whether the reserve can cover amount.
func (c *CashReserve) Sufficient(amount decimal.Decimal) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bills >= BillsRequired(amount)
}

// Dispense removes the bills covering amount from the reserve. A request
// that would drive the count negative is rejected with
// ErrInsufficientCash and leaves the reserve unchanged; callers still
// check Sufficient first for the user-facing error path.
func (c *CashReserve) Dispense(amount decimal.Decimal) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	required := BillsRequired(amount)
	if required > c.bills {
		return ErrInsufficientCash
	}
	c.bills -= required
	return nil
}
