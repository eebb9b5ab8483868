package sellerbook

import "fmt"

// Period is a one-month accounting bucket with an income goal.
// A book holds at most one Period per calendar month.
type Period struct {
	ID    ID
	Month Month
	Goal  Money // income target for the month, zero until the user sets one
}

func (p Period) String() string {
	return fmt.Sprintf("%d/%d", p.Month.Year(), int(p.Month.Month()))
}
