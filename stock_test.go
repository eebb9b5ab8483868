package sellerbook

import (
	"errors"
	"testing"
)

func TestApplyInsert(t *testing.T) {
	asset := Asset{ID: 1, Name: "mug", Type: Product, Stock: 10}

	got, err := ApplyInsert(asset, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Stock != 7 {
		t.Errorf("stock after insert = %d, want 7", got.Stock)
	}
	if asset.Stock != 10 {
		t.Errorf("input snapshot mutated to %d, want 10", asset.Stock)
	}
}

func TestApplyInsertInsufficient(t *testing.T) {
	asset := Asset{ID: 1, Name: "mug", Type: Product, Stock: 2}

	_, err := ApplyInsert(asset, 3)
	var insufficient *InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("error = %v, want InsufficientStockError", err)
	}
	if insufficient.Requested != 3 || insufficient.Available != 2 {
		t.Errorf("error carries requested=%d available=%d, want 3 and 2",
			insufficient.Requested, insufficient.Available)
	}
}

func TestApplyInsertInvalidAmount(t *testing.T) {
	asset := Asset{ID: 1, Stock: 10}
	for _, amount := range []int{0, -1, -10} {
		if _, err := ApplyInsert(asset, amount); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("ApplyInsert(_, %d) error = %v, want ErrInvalidAmount", amount, err)
		}
	}
}

// A delete restores exactly what the original insert reserved.
func TestInsertThenDelete(t *testing.T) {
	asset := Asset{ID: 1, Name: "mug", Type: Product, Stock: 10}

	after, err := ApplyInsert(asset, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	restored := ApplyDelete(after, 3)
	if restored.Stock != 10 {
		t.Errorf("stock after insert+delete = %d, want 10", restored.Stock)
	}
}

func TestApplyUpdateSameAsset(t *testing.T) {
	tests := []struct {
		name      string
		stock     int
		oldAmount int
		newAmount int
		wantStock int
		wantErr   bool
	}{
		{"shrink amount", 7, 3, 1, 9, false},
		{"grow amount within credit", 7, 3, 10, 0, false},
		{"grow amount beyond credit", 7, 3, 11, 0, true},
		{"unchanged amount", 7, 3, 3, 7, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset := Asset{ID: 1, Stock: tt.stock}
			got, second, err := ApplyUpdate(asset, tt.oldAmount, asset, tt.newAmount)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var insufficient *InsufficientStockError
				if !errors.As(err, &insufficient) {
					t.Fatalf("error = %v, want InsufficientStockError", err)
				}
				return
			}
			if second != nil {
				t.Errorf("same-asset update returned a second asset: %+v", second)
			}
			if got.Stock != tt.wantStock {
				t.Errorf("stock = %d, want %d", got.Stock, tt.wantStock)
			}
		})
	}
}

func TestApplyUpdateReassignment(t *testing.T) {
	oldAsset := Asset{ID: 1, Name: "mug", Stock: 7}
	newAsset := Asset{ID: 2, Name: "bowl", Stock: 5}

	first, second, err := ApplyUpdate(oldAsset, 3, newAsset, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID != 1 || first.Stock != 10 {
		t.Errorf("old asset = %+v, want id 1 with stock 10", first)
	}
	if second == nil || second.ID != 2 || second.Stock != 3 {
		t.Errorf("new asset = %+v, want id 2 with stock 3", second)
	}
}

// Reassignment with insufficient stock on the new asset must fail whole
// and leave the old asset untouched, even though its credit-back alone
// would have succeeded.
func TestApplyUpdateReassignmentInsufficient(t *testing.T) {
	oldAsset := Asset{ID: 1, Stock: 5}
	newAsset := Asset{ID: 2, Stock: 2}

	_, _, err := ApplyUpdate(oldAsset, 5, newAsset, 3)
	var insufficient *InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("error = %v, want InsufficientStockError", err)
	}
	if insufficient.Requested != 3 || insufficient.Available != 2 {
		t.Errorf("error carries requested=%d available=%d, want 3 and 2",
			insufficient.Requested, insufficient.Available)
	}
	if oldAsset.Stock != 5 || newAsset.Stock != 2 {
		t.Errorf("snapshots mutated: old=%d new=%d, want 5 and 2", oldAsset.Stock, newAsset.Stock)
	}
}

// Swapping a transaction from A to B and back must restore both stocks.
func TestApplyUpdateReassignmentSymmetry(t *testing.T) {
	a := Asset{ID: 1, Stock: 7}
	b := Asset{ID: 2, Stock: 5}

	a2, b2, err := ApplyUpdate(a, 3, b, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b3, a3, err := ApplyUpdate(*b2, 2, a2, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b3.Stock != 5 {
		t.Errorf("asset B stock after swap back = %d, want 5", b3.Stock)
	}
	if a3 == nil || a3.Stock != 7 {
		t.Errorf("asset A stock after swap back = %+v, want 7", a3)
	}
}

func TestApplyUpdateInvalidAmounts(t *testing.T) {
	a := Asset{ID: 1, Stock: 7}
	b := Asset{ID: 2, Stock: 5}

	if _, _, err := ApplyUpdate(a, 0, b, 2); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("zero old amount: error = %v, want ErrInvalidAmount", err)
	}
	if _, _, err := ApplyUpdate(a, 3, b, -2); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("negative new amount: error = %v, want ErrInvalidAmount", err)
	}
}
