package sellerbook

import (
	"errors"
	"fmt"
)

// Error kinds reported by the core. They are returned, never logged: the
// caller decides how to surface them.
var (
	// ErrNotFound reports a lookup of an id the book does not hold.
	ErrNotFound = errors.New("not found")
	// ErrInvalidAmount reports a zero or negative transaction quantity.
	ErrInvalidAmount = errors.New("amount must be a positive quantity")
	// ErrInvalidNumber reports unparsable or negative numeric input.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrInvalidFeeTotal reports fees that sum to 100% or more of the
	// price, for which no finite price exists.
	ErrInvalidFeeTotal = errors.New("total fee percentage must stay below 100")
	// ErrEmptyCostBasis reports a price calculation without any material
	// cost to price.
	ErrEmptyCostBasis = errors.New("no material costs to price")
	// ErrDuplicateMonth reports an attempt to create a second period for
	// the same calendar month.
	ErrDuplicateMonth = errors.New("a period already exists for that month")
)

func errInvalidNumber(what, got string) error {
	return fmt.Errorf("%w: %s %q", ErrInvalidNumber, what, got)
}

// InsufficientStockError reports a debit larger than the stock on hand.
// It carries both quantities so the caller can render a precise message.
type InsufficientStockError struct {
	Requested int // quantity the transaction needs
	Available int // stock effectively on hand
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: requested %d, only %d available", e.Requested, e.Available)
}
