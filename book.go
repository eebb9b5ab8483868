package sellerbook

import (
	"fmt"
	"maps"
	"slices"
)

// Book holds the seller's whole dataset: assets, periods and
// transactions, indexed by id, persisted as one JSONL file (see
// EncodeBook / DecodeBook).
//
// Book methods are not safe for concurrent use; the sbk tool is a short
// lived single-threaded process, and each recording operation below is
// one logical transaction of its own.
type Book struct {
	assets  map[ID]Asset
	periods map[ID]Period
	txs     map[ID]Transaction

	nextAsset  ID
	nextPeriod ID
	nextTx     ID
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{
		assets:     make(map[ID]Asset),
		periods:    make(map[ID]Period),
		txs:        make(map[ID]Transaction),
		nextAsset:  1,
		nextPeriod: 1,
		nextTx:     1,
	}
}

// FindAsset returns the asset with the given id, or ErrNotFound.
func (b *Book) FindAsset(id ID) (Asset, error) {
	a, ok := b.assets[id]
	if !ok {
		return Asset{}, fmt.Errorf("asset %s: %w", id, ErrNotFound)
	}
	return a, nil
}

// SaveAsset inserts the asset when its id is unset, assigning a fresh
// id, and updates it otherwise. The stored copy is returned.
func (b *Book) SaveAsset(a Asset) Asset {
	if !a.ID.IsSet() {
		a.ID = b.nextAsset
		b.nextAsset++
	} else if a.ID >= b.nextAsset {
		b.nextAsset = a.ID + 1
	}
	b.assets[a.ID] = a
	return a
}

// AssetByName returns the first asset with the given name. Names are
// not unique, lookup by name is a CLI convenience only.
func (b *Book) AssetByName(name string) (Asset, bool) {
	for _, a := range b.Assets() {
		if a.Name == name {
			return a, true
		}
	}
	return Asset{}, false
}

// Assets returns all assets sorted by id.
func (b *Book) Assets() []Asset {
	ids := slices.Sorted(maps.Keys(b.assets))
	out := make([]Asset, 0, len(ids))
	for _, id := range ids {
		out = append(out, b.assets[id])
	}
	return out
}

// FindPeriod returns the period with the given id, or ErrNotFound.
func (b *Book) FindPeriod(id ID) (Period, error) {
	p, ok := b.periods[id]
	if !ok {
		return Period{}, fmt.Errorf("period %s: %w", id, ErrNotFound)
	}
	return p, nil
}

// PeriodOf returns the period covering the given month, if any.
func (b *Book) PeriodOf(m Month) (Period, bool) {
	for _, p := range b.periods {
		if p.Month == m {
			return p, true
		}
	}
	return Period{}, false
}

// LatestPeriod returns the chronologically last period of the book, or
// nil when the book has none.
func (b *Book) LatestPeriod() *Period {
	var latest *Period
	for _, p := range b.periods {
		if latest == nil || latest.Month.Before(p.Month) {
			q := p
			latest = &q
		}
	}
	return latest
}

// SavePeriod inserts the period when its id is unset and updates it
// otherwise, enforcing that months stay unique within the book.
func (b *Book) SavePeriod(p Period) (Period, error) {
	if existing, ok := b.PeriodOf(p.Month); ok && existing.ID != p.ID {
		return Period{}, fmt.Errorf("%w: %s", ErrDuplicateMonth, p.Month)
	}
	if !p.ID.IsSet() {
		p.ID = b.nextPeriod
		b.nextPeriod++
	} else if p.ID >= b.nextPeriod {
		b.nextPeriod = p.ID + 1
	}
	b.periods[p.ID] = p
	return p, nil
}

// Periods returns all periods in chronological order.
func (b *Book) Periods() []Period {
	out := slices.Collect(maps.Values(b.periods))
	slices.SortFunc(out, func(a, b Period) int { return a.Month.Compare(b.Month) })
	return out
}

// FindTransaction returns the transaction with the given id, or
// ErrNotFound.
func (b *Book) FindTransaction(id ID) (Transaction, error) {
	t, ok := b.txs[id]
	if !ok {
		return Transaction{}, fmt.Errorf("transaction %s: %w", id, ErrNotFound)
	}
	return t, nil
}

// SaveTransaction inserts or updates a transaction. Its asset and period
// references must resolve within the book.
func (b *Book) SaveTransaction(t Transaction) (Transaction, error) {
	if _, err := b.FindAsset(t.AssetID); err != nil {
		return Transaction{}, err
	}
	if _, err := b.FindPeriod(t.PeriodID); err != nil {
		return Transaction{}, err
	}
	if !t.ID.IsSet() {
		t.ID = b.nextTx
		b.nextTx++
	} else if t.ID >= b.nextTx {
		b.nextTx = t.ID + 1
	}
	b.txs[t.ID] = t
	return t, nil
}

// DeleteTransaction removes a transaction, reporting whether it existed.
func (b *Book) DeleteTransaction(id ID) bool {
	_, ok := b.txs[id]
	delete(b.txs, id)
	return ok
}

// Transactions returns all transactions sorted by id.
func (b *Book) Transactions() []Transaction {
	ids := slices.Sorted(maps.Keys(b.txs))
	out := make([]Transaction, 0, len(ids))
	for _, id := range ids {
		out = append(out, b.txs[id])
	}
	return out
}

// TransactionsOf returns the transactions recorded in the given period,
// sorted by id.
func (b *Book) TransactionsOf(periodID ID) []Transaction {
	var out []Transaction
	for _, t := range b.Transactions() {
		if t.PeriodID == periodID {
			out = append(out, t)
		}
	}
	return out
}

// Recording operations. Each one is a complete read-compute-write cycle:
// load the snapshots, run the stock rules, and persist every mutation or
// none. The stock arithmetic itself lives in stock.go.

// Record inserts a new transaction, debiting its amount from the asset
// stock. The transaction must not carry an id yet.
func (b *Book) Record(t Transaction) (Transaction, error) {
	if t.ID.IsSet() {
		return Transaction{}, fmt.Errorf("transaction %s is already recorded, amend it instead", t.ID)
	}
	asset, err := b.FindAsset(t.AssetID)
	if err != nil {
		return Transaction{}, err
	}
	if _, err := b.FindPeriod(t.PeriodID); err != nil {
		return Transaction{}, err
	}
	asset, err = ApplyInsert(asset, t.Amount)
	if err != nil {
		return Transaction{}, err
	}
	b.SaveAsset(asset)
	return b.SaveTransaction(t)
}

// Amend replaces a recorded transaction, reconciling the stock of the
// asset(s) involved, including the case where the amendment moves the
// transaction to a different asset. On error nothing is changed.
func (b *Book) Amend(t Transaction) (Transaction, error) {
	old, err := b.FindTransaction(t.ID)
	if err != nil {
		return Transaction{}, err
	}
	oldAsset, err := b.FindAsset(old.AssetID)
	if err != nil {
		return Transaction{}, err
	}
	newAsset, err := b.FindAsset(t.AssetID)
	if err != nil {
		return Transaction{}, err
	}
	if _, err := b.FindPeriod(t.PeriodID); err != nil {
		return Transaction{}, err
	}

	first, second, err := ApplyUpdate(oldAsset, old.Amount, newAsset, t.Amount)
	if err != nil {
		return Transaction{}, err
	}
	b.SaveAsset(first)
	if second != nil {
		b.SaveAsset(*second)
	}
	return b.SaveTransaction(t)
}

// Remove deletes a recorded transaction and credits its amount back to
// the asset stock.
func (b *Book) Remove(id ID) error {
	t, err := b.FindTransaction(id)
	if err != nil {
		return err
	}
	asset, err := b.FindAsset(t.AssetID)
	if err != nil {
		return err
	}
	b.SaveAsset(ApplyDelete(asset, t.Amount))
	b.DeleteTransaction(id)
	return nil
}

// SetGoal updates the income goal of the period covering the month.
func (b *Book) SetGoal(m Month, goal Money) (Period, error) {
	p, ok := b.PeriodOf(m)
	if !ok {
		return Period{}, fmt.Errorf("period %s: %w", m, ErrNotFound)
	}
	p.Goal = goal
	return b.SavePeriod(p)
}

// RefreshWindow extends the run of periods through the rolling window
// ending WindowMonths-1 months after now, persisting and returning the
// newly created ones. It runs at startup and after every goal edit.
func (b *Book) RefreshWindow(now Month) ([]Period, error) {
	var saved []Period
	for _, p := range EnsureWindow(b.LatestPeriod(), now) {
		stored, err := b.SavePeriod(p)
		if err != nil {
			return saved, err
		}
		saved = append(saved, stored)
	}
	return saved, nil
}
