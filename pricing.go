package sellerbook

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CostKind distinguishes the two variants of CostItem.
type CostKind int

const (
	// Material is a cost expressed in minor units.
	Material CostKind = iota
	// Fee is a cost expressed in percentage points of the final price.
	Fee
)

// CostItem is one line of the price calculator: a named material cost or
// a named fee. It is a calculator input only, never persisted.
type CostItem struct {
	Name        string
	Kind        CostKind
	Expenditure int // minor units for Material, percentage points (0-99) for Fee
}

// MaterialCost builds a material cost line.
func MaterialCost(name string, cost Money) CostItem {
	return CostItem{Name: name, Kind: Material, Expenditure: int(cost)}
}

// FeeCost builds a fee line, percent points of the final price.
func FeeCost(name string, percent int) CostItem {
	return CostItem{Name: name, Kind: Fee, Expenditure: percent}
}

func (c CostItem) String() string {
	if c.Kind == Fee {
		return fmt.Sprintf("%s %d%%", c.Name, c.Expenditure)
	}
	return fmt.Sprintf("%s %s", c.Name, Money(c.Expenditure))
}

type profitKind int

const (
	flatProfit profitKind = iota
	percentProfit
)

// ProfitSpec is the profit target of a price calculation: either a flat
// amount, or a percentage of the material cost.
type ProfitSpec struct {
	kind    profitKind
	flat    Money
	percent int
}

// FlatProfit targets a fixed profit amount.
func FlatProfit(amount Money) ProfitSpec {
	return ProfitSpec{kind: flatProfit, flat: amount}
}

// PercentProfit targets a profit of percent % of the material cost.
func PercentProfit(percent int) ProfitSpec {
	return ProfitSpec{kind: percentProfit, percent: percent}
}

func (p ProfitSpec) String() string {
	if p.kind == percentProfit {
		return fmt.Sprintf("%d%% of cost", p.percent)
	}
	return p.flat.String()
}

// PriceResult is the outcome of a price calculation, all in minor units.
type PriceResult struct {
	Price        Money // the sale price to ask
	Profit       Money // profit left after material cost
	MaterialCost Money // total of the material lines
	Fees         Money // fee portion of the price, Price minus netto
}

// Calculate derives a sale price from material costs, fees and a profit
// target.
//
// Fees are contractually a percentage of what the customer pays, so the
// material+profit portion (the netto) is only (100 - totalFeePercent)% of
// the final price. The price is therefore the netto scaled up by
// 100/nettoRate, not the netto with fees-on-cost added: getting this
// division backwards undercharges every sale.
//
// It fails with ErrEmptyCostBasis when there is no material cost,
// ErrInvalidFeeTotal when the fees reach 100%, and ErrInvalidNumber on
// any negative input. Rounding is half-up throughout.
func Calculate(materials, fees []CostItem, profit ProfitSpec) (PriceResult, error) {
	var materialCost Money
	for _, m := range materials {
		if m.Kind != Material {
			return PriceResult{}, fmt.Errorf("%s is not a material cost", m.Name)
		}
		if m.Expenditure < 0 {
			return PriceResult{}, errInvalidNumber("material cost", m.String())
		}
		materialCost += Money(m.Expenditure)
	}
	if materialCost == 0 {
		return PriceResult{}, fmt.Errorf("%w", ErrEmptyCostBasis)
	}

	totalFeePct := 0
	for _, f := range fees {
		if f.Kind != Fee {
			return PriceResult{}, fmt.Errorf("%s is not a fee", f.Name)
		}
		if f.Expenditure < 0 {
			return PriceResult{}, errInvalidNumber("fee", f.String())
		}
		totalFeePct += f.Expenditure
	}
	if totalFeePct >= 100 {
		return PriceResult{}, fmt.Errorf("%w: got %d%%", ErrInvalidFeeTotal, totalFeePct)
	}

	var profitAmount Money
	switch profit.kind {
	case flatProfit:
		if profit.flat < 0 {
			return PriceResult{}, errInvalidNumber("profit", profit.String())
		}
		profitAmount = profit.flat
	case percentProfit:
		if profit.percent < 0 {
			return PriceResult{}, errInvalidNumber("profit", profit.String())
		}
		profitAmount = PercentOf(materialCost, profit.percent)
	}

	netto := materialCost + profitAmount
	nettoRatePct := int64(100 - totalFeePct)
	price := Money(decimal.NewFromInt(int64(netto)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(nettoRatePct)).
		Round(0).
		IntPart())

	return PriceResult{
		Price:        price,
		Profit:       profitAmount,
		MaterialCost: materialCost,
		Fees:         price - netto,
	}, nil
}
