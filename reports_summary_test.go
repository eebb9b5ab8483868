package sellerbook

import (
	"testing"
	"time"
)

func newSummaryFixture(t *testing.T) *Book {
	t.Helper()
	b := NewBook()
	july, err := b.SavePeriod(Period{Month: NewMonth(2026, time.July), Goal: 10000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	august, err := b.SavePeriod(Period{Month: NewMonth(2026, time.August), Goal: 20000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mug := b.SaveAsset(Asset{Name: "mug", Type: Product, Stock: 100, CostBasis: 250})
	kiln := b.SaveAsset(Asset{Name: "kiln", Type: Equipment, Stock: 5, CostBasis: 40000})

	record := func(periodID, assetID ID, amount int, unitPrice Money) {
		t.Helper()
		if _, err := b.Record(Transaction{PeriodID: periodID, AssetID: assetID, Amount: amount, UnitPrice: unitPrice}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	record(july.ID, mug.ID, 10, 1200)  // 120.00 income in July
	record(august.ID, mug.ID, 5, 1200) // 60.00 income in August
	record(august.ID, kiln.ID, 1, 40000)
	return b
}

func TestNewSummary(t *testing.T) {
	b := newSummaryFixture(t)

	s := NewSummary(b, Month{}, Month{})
	if len(s.Rows) != 2 {
		t.Fatalf("summary has %d rows, want 2", len(s.Rows))
	}

	july := s.Rows[0]
	if july.Income != 12000 || july.Expense != 0 {
		t.Errorf("july income=%d expense=%d, want 12000 and 0", july.Income, july.Expense)
	}
	if july.ToGoal != 2000 {
		t.Errorf("july to-goal = %d, want +2000", july.ToGoal)
	}

	august := s.Rows[1]
	if august.Income != 6000 || august.Expense != 40000 {
		t.Errorf("august income=%d expense=%d, want 6000 and 40000", august.Income, august.Expense)
	}
	if august.ToGoal != -14000 {
		t.Errorf("august to-goal = %d, want -14000", august.ToGoal)
	}

	if s.TotalIncome != 18000 || s.TotalExpense != 40000 {
		t.Errorf("totals income=%d expense=%d, want 18000 and 40000", s.TotalIncome, s.TotalExpense)
	}
}

func TestNewSummaryRange(t *testing.T) {
	b := newSummaryFixture(t)

	august := NewMonth(2026, time.August)
	s := NewSummary(b, august, august)
	if len(s.Rows) != 1 {
		t.Fatalf("summary has %d rows, want 1", len(s.Rows))
	}
	if s.Rows[0].Period.Month != august {
		t.Errorf("row month = %v, want %v", s.Rows[0].Period.Month, august)
	}
	if s.TotalIncome != 6000 {
		t.Errorf("total income = %d, want 6000", s.TotalIncome)
	}
}
