package ledger

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankbook-dev/bankbook/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestRoundTrip(t *testing.T) {
	txns := []model.Transaction{
		{
			ID:          1,
			Date:        date(2024, 1, 5),
			Amount:      dec("1000.00"),
			Category:    "Salary",
			Description: "January salary",
			Balance:     dec("1000.00"),
		},
		{
			ID:          2,
			Date:        date(2024, 1, 10),
			Amount:      dec("-200.00"),
			Category:    "Food",
			Description: `Groceries, "market" — 超市買菜`,
			Balance:     dec("800.00"),
		},
	}

	var buf bytes.Buffer
	err := WriteTransactions(&buf, txns)
	require.NoError(t, err)

	// BOM first, then the header.
	assert.True(t, strings.HasPrefix(buf.String(), utf8BOM+"transaction_id,"))

	got, hasBalance, err := ReadTransactions(&buf)
	require.NoError(t, err)
	assert.True(t, hasBalance)
	require.Len(t, got, 2)

	for i := range txns {
		assert.Equal(t, txns[i].ID, got[i].ID)
		assert.True(t, txns[i].Date.Equal(got[i].Date))
		assert.True(t, txns[i].Amount.Equal(got[i].Amount), "amount mismatch row %d", i)
		assert.Equal(t, txns[i].Category, got[i].Category)
		assert.Equal(t, txns[i].Description, got[i].Description)
		assert.True(t, txns[i].Balance.Equal(got[i].Balance), "balance mismatch row %d", i)
	}
}

func TestReadTransactions_MissingBalanceColumn(t *testing.T) {
	csv := "transaction_id,date,amount,category,description\n" +
		"1,2024-01-05,1000.00,Salary,\n" +
		"2,2024-01-10,-200.00,Food,lunch\n"

	got, hasBalance, err := ReadTransactions(strings.NewReader(csv))
	require.NoError(t, err)
	assert.False(t, hasBalance, "5-column shards predate the balance column")
	require.Len(t, got, 2)
	assert.True(t, got[0].Balance.IsZero())
	assert.True(t, got[1].Balance.IsZero())
}

func TestReadTransactions_Empty(t *testing.T) {
	got, _, err := ReadTransactions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReadTransactions_HeaderOnly(t *testing.T) {
	got, hasBalance, err := ReadTransactions(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.True(t, hasBalance)
	assert.Empty(t, got)
}

func TestReadTransactions_BadDate(t *testing.T) {
	csv := Header + "\n1,not-a-date,10.00,Food,,10.00\n"
	_, _, err := ReadTransactions(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestMarshalTransaction_FixedDecimals(t *testing.T) {
	txn := model.Transaction{
		ID:       3,
		Date:     date(2024, 3, 1),
		Amount:   dec("127.5"),
		Category: "Food",
		Balance:  dec("927.5"),
	}

	row := MarshalTransaction(txn)
	assert.Equal(t, "127.50", row[colAmount])
	assert.Equal(t, "927.50", row[colBalance])
	assert.Equal(t, "2024-03-01", row[colDate])
}

func TestUnmarshalTransaction_FieldCount(t *testing.T) {
	_, err := UnmarshalTransaction([]string{"1", "2024-01-01"}, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 6 fields")
}

func TestDecimalPrecision(t *testing.T) {
	// 0.1 + 0.2 must survive a round-trip as exactly 0.30.
	txn := model.Transaction{
		ID:       1,
		Date:     date(2024, 1, 1),
		Amount:   dec("0.1").Add(dec("0.2")),
		Category: "Food",
		Balance:  dec("0.30"),
	}

	got, err := UnmarshalTransaction(MarshalTransaction(txn), true)
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(dec("0.30")), "got %s", got.Amount)
}
