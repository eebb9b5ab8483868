package sellerbook

import "fmt"

// Transaction is a recorded movement of an amount of an Asset within a
// Period: a sale when the asset is a product, a purchase when it is
// equipment. It references exactly one Asset and one Period and has no
// lifecycle of its own beyond those references.
type Transaction struct {
	ID        ID
	PeriodID  ID
	AssetID   ID
	Amount    int   // quantity moved, always positive
	UnitPrice Money // price per unit, not validated by the stock rules
}

// Total returns the monetary value of the transaction.
func (t Transaction) Total() Money { return t.UnitPrice.Times(t.Amount) }

func (t Transaction) String() string {
	return fmt.Sprintf("tx %s: %d pc at %s", t.ID, t.Amount, t.UnitPrice)
}
