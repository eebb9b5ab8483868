package sellerbook

import (
	"errors"
	"testing"
	"time"
)

// newTestBook builds a book with one period and two product assets, the
// fixture most scenarios start from.
func newTestBook(t *testing.T) (*Book, Period, Asset, Asset) {
	t.Helper()
	b := NewBook()
	period, err := b.SavePeriod(Period{Month: NewMonth(2026, time.August)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mug := b.SaveAsset(Asset{Name: "mug", Type: Product, Stock: 10, CostBasis: 250})
	bowl := b.SaveAsset(Asset{Name: "bowl", Type: Product, Stock: 5, CostBasis: 400})
	return b, period, mug, bowl
}

func TestBookAssignsIDs(t *testing.T) {
	b := NewBook()
	a := b.SaveAsset(Asset{Name: "mug", Type: Product})
	if !a.ID.IsSet() {
		t.Fatal("saved asset has no id")
	}
	c := b.SaveAsset(Asset{Name: "bowl", Type: Product})
	if c.ID == a.ID {
		t.Errorf("two inserts share id %s", c.ID)
	}
	a.Name = "cup"
	again := b.SaveAsset(a)
	if again.ID != a.ID {
		t.Errorf("update changed id from %s to %s", a.ID, again.ID)
	}
	stored, err := b.FindAsset(a.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Name != "cup" {
		t.Errorf("stored name = %q, want %q", stored.Name, "cup")
	}
}

func TestAssetByName(t *testing.T) {
	b := NewBook()
	mug := b.SaveAsset(Asset{Name: "mug", Type: Product})
	b.SaveAsset(Asset{Name: "bowl", Type: Product})

	got, ok := b.AssetByName("mug")
	if !ok || got.ID != mug.ID {
		t.Errorf("AssetByName(mug) = %v, %v, want asset %s", got, ok, mug.ID)
	}
	if _, ok := b.AssetByName("plate"); ok {
		t.Error("AssetByName(plate) should not find anything")
	}
}

func TestBookNotFound(t *testing.T) {
	b := NewBook()
	if _, err := b.FindAsset(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindAsset error = %v, want ErrNotFound", err)
	}
	if _, err := b.FindPeriod(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindPeriod error = %v, want ErrNotFound", err)
	}
	if _, err := b.FindTransaction(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindTransaction error = %v, want ErrNotFound", err)
	}
}

func TestBookPeriodUniqueness(t *testing.T) {
	b := NewBook()
	m := NewMonth(2026, time.August)
	p, err := b.SavePeriod(Period{Month: m})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.SavePeriod(Period{Month: m}); !errors.Is(err, ErrDuplicateMonth) {
		t.Errorf("second period for %v: error = %v, want ErrDuplicateMonth", m, err)
	}
	// Updating the same period keeps the month valid.
	p.Goal = 50000
	if _, err := b.SavePeriod(p); err != nil {
		t.Errorf("updating the period failed: %v", err)
	}
}

func TestRecord(t *testing.T) {
	b, period, mug, _ := newTestBook(t)

	tx, err := b.Record(Transaction{PeriodID: period.ID, AssetID: mug.ID, Amount: 3, UnitPrice: 1250})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tx.ID.IsSet() {
		t.Fatal("recorded transaction has no id")
	}
	stored, err := b.FindAsset(mug.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Stock != 7 {
		t.Errorf("stock after sale = %d, want 7", stored.Stock)
	}
}

func TestRecordInsufficientChangesNothing(t *testing.T) {
	b, period, mug, _ := newTestBook(t)

	_, err := b.Record(Transaction{PeriodID: period.ID, AssetID: mug.ID, Amount: 11, UnitPrice: 1250})
	var insufficient *InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("error = %v, want InsufficientStockError", err)
	}
	stored, _ := b.FindAsset(mug.ID)
	if stored.Stock != 10 {
		t.Errorf("stock = %d after failed record, want 10", stored.Stock)
	}
	if n := len(b.Transactions()); n != 0 {
		t.Errorf("book holds %d transactions after failed record, want 0", n)
	}
}

func TestAmendSameAsset(t *testing.T) {
	b, period, mug, _ := newTestBook(t)
	tx, err := b.Record(Transaction{PeriodID: period.ID, AssetID: mug.ID, Amount: 3, UnitPrice: 1250})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tx.Amount = 5
	if _, err := b.Amend(tx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stored, _ := b.FindAsset(mug.ID)
	if stored.Stock != 5 {
		t.Errorf("stock after amend = %d, want 5", stored.Stock)
	}
}

func TestAmendReassignment(t *testing.T) {
	b, period, mug, bowl := newTestBook(t)
	tx, err := b.Record(Transaction{PeriodID: period.ID, AssetID: mug.ID, Amount: 3, UnitPrice: 1250})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tx.AssetID = bowl.ID
	tx.Amount = 2
	if _, err := b.Amend(tx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	storedMug, _ := b.FindAsset(mug.ID)
	storedBowl, _ := b.FindAsset(bowl.ID)
	if storedMug.Stock != 10 {
		t.Errorf("old asset stock = %d, want the credit back to 10", storedMug.Stock)
	}
	if storedBowl.Stock != 3 {
		t.Errorf("new asset stock = %d, want 3", storedBowl.Stock)
	}
}

func TestAmendReassignmentInsufficientIsAtomic(t *testing.T) {
	b, period, mug, bowl := newTestBook(t)
	tx, err := b.Record(Transaction{PeriodID: period.ID, AssetID: mug.ID, Amount: 3, UnitPrice: 1250})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tx.AssetID = bowl.ID
	tx.Amount = 6 // bowl only has 5
	_, err = b.Amend(tx)
	var insufficient *InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("error = %v, want InsufficientStockError", err)
	}
	storedMug, _ := b.FindAsset(mug.ID)
	storedBowl, _ := b.FindAsset(bowl.ID)
	if storedMug.Stock != 7 || storedBowl.Stock != 5 {
		t.Errorf("stocks after failed amend = %d and %d, want 7 and 5 untouched",
			storedMug.Stock, storedBowl.Stock)
	}
	stored, _ := b.FindTransaction(tx.ID)
	if stored.AssetID != mug.ID || stored.Amount != 3 {
		t.Errorf("transaction changed by failed amend: %+v", stored)
	}
}

func TestRemove(t *testing.T) {
	b, period, mug, _ := newTestBook(t)
	tx, err := b.Record(Transaction{PeriodID: period.ID, AssetID: mug.ID, Amount: 3, UnitPrice: 1250})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := b.Remove(tx.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stored, _ := b.FindAsset(mug.ID)
	if stored.Stock != 10 {
		t.Errorf("stock after remove = %d, want 10", stored.Stock)
	}
	if _, err := b.FindTransaction(tx.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("removed transaction still found: %v", err)
	}
}

// Stock conservation: after any sequence of successful operations the
// stock equals the initial stock minus the net of all live transactions.
func TestStockConservation(t *testing.T) {
	b, period, mug, bowl := newTestBook(t)

	tx1, err := b.Record(Transaction{PeriodID: period.ID, AssetID: mug.ID, Amount: 2, UnitPrice: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tx2, err := b.Record(Transaction{PeriodID: period.ID, AssetID: mug.ID, Amount: 4, UnitPrice: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tx1.Amount = 3
	if _, err := b.Amend(tx1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tx2.AssetID = bowl.ID
	tx2.Amount = 1
	if _, err := b.Amend(tx2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	live := map[ID]int{}
	for _, tx := range b.Transactions() {
		live[tx.AssetID] += tx.Amount
	}
	storedMug, _ := b.FindAsset(mug.ID)
	storedBowl, _ := b.FindAsset(bowl.ID)
	if want := 10 - live[mug.ID]; storedMug.Stock != want {
		t.Errorf("mug stock = %d, want %d", storedMug.Stock, want)
	}
	if want := 5 - live[bowl.ID]; storedBowl.Stock != want {
		t.Errorf("bowl stock = %d, want %d", storedBowl.Stock, want)
	}
}

func TestSetGoal(t *testing.T) {
	b, period, _, _ := newTestBook(t)

	updated, err := b.SetGoal(period.Month, 50000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Goal != 50000 {
		t.Errorf("goal = %d, want 50000", updated.Goal)
	}
	if _, err := b.SetGoal(NewMonth(2031, time.January), 100); !errors.Is(err, ErrNotFound) {
		t.Errorf("goal on unknown month: error = %v, want ErrNotFound", err)
	}
}

func TestRefreshWindow(t *testing.T) {
	b := NewBook()
	now := NewMonth(2026, time.August)

	created, err := b.RefreshWindow(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != firstRunLookback+WindowMonths-1 {
		t.Fatalf("created %d periods, want %d", len(created), firstRunLookback+WindowMonths-1)
	}
	for _, p := range created {
		if !p.ID.IsSet() {
			t.Errorf("period %v persisted without id", p.Month)
		}
	}

	// A second refresh is a no-op.
	again, err := b.RefreshWindow(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(again) != 0 {
		t.Errorf("second refresh created %d periods, want 0", len(again))
	}

	// A month later the window slides by one.
	later, err := b.RefreshWindow(now.Plus(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(later) != 1 {
		t.Errorf("refresh one month later created %d periods, want 1", len(later))
	}
}
