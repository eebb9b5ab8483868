package sellerbook

import "fmt"

// This file is the stock reconciliation engine: pure functions that turn a
// transaction mutation into the asset stock mutation(s) to persist. The
// caller owns the surrounding read-compute-write cycle (see Book); the
// functions here only compute, over snapshots, and either return the
// asset(s) to save or an error with nothing to apply.

// ApplyInsert debits a new transaction's amount from the asset stock.
// It fails with *InsufficientStockError when the stock cannot cover the
// amount, and with ErrInvalidAmount when the amount is not positive.
func ApplyInsert(a Asset, amount int) (Asset, error) {
	if amount <= 0 {
		return Asset{}, fmt.Errorf("%w: got %d", ErrInvalidAmount, amount)
	}
	if amount > a.Stock {
		return Asset{}, &InsufficientStockError{Requested: amount, Available: a.Stock}
	}
	a.Stock -= amount
	return a, nil
}

// ApplyDelete credits a removed transaction's amount back to the asset
// stock. Deleting restores what the original insert reserved, so it
// always succeeds.
func ApplyDelete(a Asset, amount int) Asset {
	a.Stock += amount
	return a
}

// ApplyUpdate reconciles a transaction whose asset and/or amount changed
// since it was recorded.
//
// When the asset is unchanged the amount previously reserved is credited
// back before checking, so the effective available stock is
// oldAsset.Stock + oldAmount; the single resulting asset is returned and
// the second result is nil.
//
// When the transaction moved to a different asset two mutations are
// produced: the old asset credited oldAmount, the new asset debited
// newAmount against its own stock. Both are validated before either is
// returned; on failure neither asset is touched.
func ApplyUpdate(oldAsset Asset, oldAmount int, newAsset Asset, newAmount int) (Asset, *Asset, error) {
	if oldAmount <= 0 {
		return Asset{}, nil, fmt.Errorf("%w: got %d", ErrInvalidAmount, oldAmount)
	}
	if newAmount <= 0 {
		return Asset{}, nil, fmt.Errorf("%w: got %d", ErrInvalidAmount, newAmount)
	}

	if oldAsset.ID == newAsset.ID {
		available := oldAsset.Stock + oldAmount
		if newAmount > available {
			return Asset{}, nil, &InsufficientStockError{Requested: newAmount, Available: available}
		}
		oldAsset.Stock = available - newAmount
		return oldAsset, nil, nil
	}

	// Reassignment: the debit on the new asset is checked first so that a
	// failure leaves the old asset untouched.
	if newAmount > newAsset.Stock {
		return Asset{}, nil, &InsufficientStockError{Requested: newAmount, Available: newAsset.Stock}
	}
	oldAsset.Stock += oldAmount
	newAsset.Stock -= newAmount
	return oldAsset, &newAsset, nil
}
