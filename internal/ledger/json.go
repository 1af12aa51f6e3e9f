package ledger

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

type jsonTransaction struct {
	ID          int             `json:"transaction_id"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Balance     decimal.Decimal `json:"balance"`
}

// ExportJSON writes the in-memory set as <year>_transactions.json in the
// piggy bank's json folder, dates serialized as ISO-8601.
func (l *Ledger) ExportJSON(year int) (SaveResult, error) {
	if year == 0 {
		year = l.year
	}
	if year == 0 {
		year = time.Now().Year()
	}

	rows := make([]jsonTransaction, 0, len(l.txns))
	for _, t := range l.txns {
		rows = append(rows, jsonTransaction{
			ID:          t.ID,
			Date:        t.Date.Format(dateFormat),
			Amount:      t.Amount,
			Category:    t.Category,
			Description: t.Description,
			Balance:     t.Balance,
		})
	}

	path, err := l.store.JSONPath(year)
	if err != nil {
		return SaveResult{}, fmt.Errorf("%w: %v", ErrIO, err)
	}
	err = l.store.WriteAtomic(path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	})
	if err != nil {
		return SaveResult{}, err
	}

	return SaveResult{Path: path, Count: len(rows)}, nil
}
