// Package ledger owns the transaction log for one account / piggy bank /
// year shard: load, append, delete, query, save, and the running-balance
// arithmetic that keeps the log consistent.
package ledger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bankbook-dev/bankbook/internal/model"
)

// Ledger holds the in-memory transaction set for one shard. It is always
// kept sorted by (date, id) after any mutation or load.
type Ledger struct {
	store   *Store
	txns    []model.Transaction
	nextID  int
	balance decimal.Decimal
	year    int // 0 until a load, first append, or save pins a year
}

// New creates an empty ledger bound to a store.
func New(store *Store) *Ledger {
	return &Ledger{store: store, nextID: 1}
}

// LoadResult summarizes a successful Load.
type LoadResult struct {
	Year    int
	Count   int
	Balance decimal.Decimal
}

// SaveResult summarizes a successful Save or export.
type SaveResult struct {
	Path  string
	Count int
}

// Filter selects transactions for Query. Zero Start/End mean unbounded on
// that side; an empty Category matches every category.
type Filter struct {
	Start    time.Time
	End      time.Time
	Category string
}

// Load replaces the in-memory set with the persisted shard for year.
// Year 0 resolves to the most recent year that has a shard. Any failure
// resets the ledger to an empty shard for the resolved year.
func (l *Ledger) Load(year int) (LoadResult, error) {
	years, err := l.store.Years()
	if err != nil {
		l.reset(year)
		return LoadResult{}, err
	}
	if len(years) == 0 {
		l.reset(year)
		return LoadResult{}, fmt.Errorf("no transaction files in %s: %w", l.store.Dir(), ErrNotFound)
	}

	if year == 0 {
		for y := range years {
			if y > year {
				year = y
			}
		}
	}

	path, ok := years[year]
	if !ok {
		l.reset(year)
		return LoadResult{}, fmt.Errorf("no %d shard in %s: %w", year, l.store.Dir(), ErrNotFound)
	}

	f, err := os.Open(path)
	if err != nil {
		l.reset(year)
		if os.IsNotExist(err) {
			return LoadResult{}, fmt.Errorf("shard %s: %w", path, ErrNotFound)
		}
		return LoadResult{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	txns, hasBalance, err := ReadTransactions(f)
	if err != nil {
		l.reset(year)
		return LoadResult{}, fmt.Errorf("reading %s: %w", path, err)
	}

	l.txns = txns
	l.year = year
	sortCanonical(l.txns)
	if hasBalance {
		l.balance = decimal.Zero
		if len(l.txns) > 0 {
			l.balance = l.txns[len(l.txns)-1].Balance
		}
	} else {
		// Older shards predate the balance column.
		l.recomputeBalances()
	}
	l.nextID = maxID(l.txns) + 1

	return LoadResult{Year: year, Count: len(l.txns), Balance: l.balance}, nil
}

// Append records a new transaction. The date must be YYYY-MM-DD. Backdated
// entries are allowed: the whole balance column is recomputed afterwards so
// the running sum stays consistent in (date, id) order. Returns the
// materialized record with its final balance.
func (l *Ledger) Append(date string, amount decimal.Decimal, category, description string) (model.Transaction, error) {
	day, err := time.Parse(dateFormat, date)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: parsing date %q: %v", ErrInvalidInput, date, err)
	}

	// The first append into a fresh ledger pins the shard year, so a later
	// Save(0) lands next to the transaction instead of the wall-clock year.
	if l.year == 0 {
		l.year = day.Year()
	}

	txn := model.Transaction{
		ID:          l.nextID,
		Date:        day,
		Amount:      amount,
		Category:    category,
		Description: description,
		Balance:     l.balance.Add(amount),
	}
	l.txns = append(l.txns, txn)
	l.nextID++

	sortCanonical(l.txns)
	l.recomputeBalances()

	for _, t := range l.txns {
		if t.ID == txn.ID {
			return t, nil
		}
	}
	return txn, nil
}

// Delete removes the transaction with the given id. Remaining ids are
// reassigned densely as 1..N in (date, id) order: ids are positional ranks,
// not stable external identifiers. Returns the removed record with its
// pre-deletion field values.
func (l *Ledger) Delete(id int) (model.Transaction, error) {
	idx := -1
	for i, t := range l.txns {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.Transaction{}, fmt.Errorf("transaction %d: %w", id, ErrNotFound)
	}

	removed := l.txns[idx]
	l.txns = append(l.txns[:idx], l.txns[idx+1:]...)

	sortCanonical(l.txns)
	for i := range l.txns {
		l.txns[i].ID = i + 1
	}
	l.recomputeBalances()
	l.nextID = len(l.txns) + 1

	return removed, nil
}

// Query returns matching transactions in canonical order. Date bounds are
// inclusive; category match is exact and case-sensitive.
func (l *Ledger) Query(f Filter) []model.Transaction {
	var out []model.Transaction
	for _, t := range l.txns {
		if !f.Start.IsZero() && t.Date.Before(f.Start) {
			continue
		}
		if !f.End.IsZero() && t.Date.After(f.End) {
			continue
		}
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Save writes all transactions to the shard for year (or the loaded year,
// or the current year, when 0). The write goes through a temp file and
// rename so a failure leaves the prior shard untouched.
func (l *Ledger) Save(year int) (SaveResult, error) {
	if year == 0 {
		year = l.year
	}
	if year == 0 {
		year = time.Now().Year()
	}

	sortCanonical(l.txns)

	path, err := l.store.Path(year)
	if err != nil {
		return SaveResult{}, fmt.Errorf("%w: %v", ErrIO, err)
	}
	err = l.store.WriteAtomic(path, func(w io.Writer) error {
		return WriteTransactions(w, l.txns)
	})
	if err != nil {
		return SaveResult{}, err
	}

	l.year = year
	return SaveResult{Path: path, Count: len(l.txns)}, nil
}

// Transactions returns a copy of the in-memory set in canonical order.
// Mutating the returned slice does not affect the ledger.
func (l *Ledger) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(l.txns))
	copy(out, l.txns)
	return out
}

// Balance returns the running balance after the last transaction.
func (l *Ledger) Balance() decimal.Decimal {
	return l.balance
}

// Year returns the loaded shard year, or 0 if none was loaded yet.
func (l *Ledger) Year() int {
	return l.year
}

// Count returns the number of transactions.
func (l *Ledger) Count() int {
	return len(l.txns)
}

func (l *Ledger) reset(year int) {
	l.txns = nil
	l.nextID = 1
	l.balance = decimal.Zero
	l.year = year
}

// recomputeBalances rebuilds the balance column as the running sum of
// amounts. The set must already be in canonical order.
func (l *Ledger) recomputeBalances() {
	running := decimal.Zero
	for i := range l.txns {
		running = running.Add(l.txns[i].Amount)
		l.txns[i].Balance = running
	}
	l.balance = running
}

func sortCanonical(txns []model.Transaction) {
	sort.Slice(txns, func(i, j int) bool {
		return txns[i].Before(txns[j])
	})
}

func maxID(txns []model.Transaction) int {
	max := 0
	for _, t := range txns {
		if t.ID > max {
			max = t.ID
		}
	}
	return max
}
