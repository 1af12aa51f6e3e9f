package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bankbook-dev/bankbook/internal/model"
)

// Header is the CSV header for a transaction shard.
const Header = "transaction_id,date,amount,category,description,balance"

const (
	numFields    = 6
	legacyFields = 5 // shards written before the balance column existed
	dateFormat   = "2006-01-02"
	colID        = 0
	colDate      = 1
	colAmount    = 2
	colCategory  = 3
	colDesc      = 4
	colBalance   = 5
)

// utf8BOM prefixes every shard so spreadsheet apps detect the encoding.
const utf8BOM = "\ufeff"

// ReadTransactions reads all rows from a shard. hasBalance reports whether
// the persisted rows carried a balance column; when false the caller must
// recompute balances from scratch.
func ReadTransactions(r io.Reader) (txns []model.Transaction, hasBalance bool, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, false, fmt.Errorf("reading shard CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, true, nil
	}

	header := records[0]
	header[0] = strings.TrimPrefix(header[0], utf8BOM)
	hasBalance = len(header) == numFields

	for i, rec := range records[1:] {
		txn, err := UnmarshalTransaction(rec, hasBalance)
		if err != nil {
			return nil, false, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, hasBalance, nil
}

// WriteTransactions writes a shard (BOM, header, then rows).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = strconv.Itoa(txn.ID)
	row[colDate] = txn.Date.Format(dateFormat)
	row[colAmount] = txn.Amount.StringFixed(2)
	row[colCategory] = txn.Category
	row[colDesc] = txn.Description
	row[colBalance] = txn.Balance.StringFixed(2)
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction. When hasBalance
// is false the row has only 5 fields and Balance is left zero.
func UnmarshalTransaction(record []string, hasBalance bool) (model.Transaction, error) {
	want := numFields
	if !hasBalance {
		want = legacyFields
	}
	if len(record) != want {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", want, len(record))
	}

	id, err := strconv.Atoi(record[colID])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing transaction_id %q: %w", record[colID], err)
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	var balance decimal.Decimal
	if hasBalance && record[colBalance] != "" {
		balance, err = decimal.NewFromString(record[colBalance])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing balance %q: %w", record[colBalance], err)
		}
	}

	return model.Transaction{
		ID:          id,
		Date:        date,
		Amount:      amount,
		Category:    record[colCategory],
		Description: record[colDesc],
		Balance:     balance,
	}, nil
}
