package sellerbook

// SummaryRow is one period of the monthly summary: what came in from
// product sales, what went out on equipment, and how income compares to
// the goal the user set for that month.
type SummaryRow struct {
	Period  Period
	Income  Money // sum of product transactions recorded in the period
	Expense Money // sum of equipment transactions recorded in the period
	ToGoal  Money // Income - Goal, negative while the goal is missed
}

// Summary is the month-by-month overview of the book, the report the
// seller reads to see whether each month met its goal.
type Summary struct {
	From, To     Month
	Rows         []SummaryRow
	TotalIncome  Money
	TotalExpense Money
}

// NewSummary builds the summary of all periods between from and to
// inclusive, in chronological order. Zero from/to leave that end of the
// range open.
func NewSummary(b *Book, from, to Month) *Summary {
	s := &Summary{From: from, To: to}
	for _, p := range b.Periods() {
		if !from.IsZero() && p.Month.Before(from) {
			continue
		}
		if !to.IsZero() && p.Month.After(to) {
			continue
		}
		row := SummaryRow{Period: p}
		for _, t := range b.TransactionsOf(p.ID) {
			asset, err := b.FindAsset(t.AssetID)
			if err != nil {
				continue // a dangling reference must not sink the report
			}
			switch asset.Type {
			case Product:
				row.Income += t.Total()
			case Equipment:
				row.Expense += t.Total()
			}
		}
		row.ToGoal = row.Income - p.Goal
		s.TotalIncome += row.Income
		s.TotalExpense += row.Expense
		s.Rows = append(s.Rows, row)
	}
	return s
}
