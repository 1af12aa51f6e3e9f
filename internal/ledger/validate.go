package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidationError describes a single consistency violation in a ledger.
type ValidationError struct {
	ID          int
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("transaction %d: %s", e.ID, e.Description)
}

// Check verifies the ledger invariants over the in-memory set: canonical
// (date, id) ordering, dense ids 1..N, and the running balance column.
// A freshly mutated ledger always passes; a loaded shard may not if the
// file was edited by hand.
func (l *Ledger) Check() []ValidationError {
	var errs []ValidationError

	for i := 1; i < len(l.txns); i++ {
		if l.txns[i].Before(l.txns[i-1]) {
			errs = append(errs, ValidationError{
				ID:          l.txns[i].ID,
				Description: fmt.Sprintf("out of order after transaction %d", l.txns[i-1].ID),
			})
		}
	}

	seen := make(map[int]bool, len(l.txns))
	for _, t := range l.txns {
		switch {
		case t.ID < 1 || t.ID > len(l.txns):
			errs = append(errs, ValidationError{
				ID:          t.ID,
				Description: fmt.Sprintf("id outside 1..%d", len(l.txns)),
			})
		case seen[t.ID]:
			errs = append(errs, ValidationError{
				ID:          t.ID,
				Description: "duplicate id",
			})
		}
		seen[t.ID] = true
	}

	running := decimal.Zero
	for _, t := range l.txns {
		running = running.Add(t.Amount)
		if !t.Balance.Equal(running) {
			errs = append(errs, ValidationError{
				ID:          t.ID,
				Description: fmt.Sprintf("balance %s, want %s", t.Balance.StringFixed(2), running.StringFixed(2)),
			})
		}
	}

	return errs
}
