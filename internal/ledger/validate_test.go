package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_CleanLedger(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.Append("2024-01-05", dec("1000"), "Salary", "")
	require.NoError(t, err)
	_, err = l.Append("2024-01-02", dec("-50"), "Food", "")
	require.NoError(t, err)
	_, err = l.Delete(1)
	require.NoError(t, err)

	assert.Empty(t, l.Check())
}

func TestCheck_HandEditedShard(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "csv")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	// Balance column does not match the running sum, and id 3 leaves a gap.
	shard := Header + "\n" +
		"1,2024-01-05,1000.00,Salary,,1000.00\n" +
		"3,2024-01-10,-200.00,Food,,750.00\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2024_transactions.csv"), []byte(shard), 0o644))

	l := New(NewStoreAt(dir))
	_, err := l.Load(2024)
	require.NoError(t, err)

	violations := l.Check()
	require.NotEmpty(t, violations)

	var sawBalance, sawID bool
	for _, v := range violations {
		if v.ID == 3 {
			switch {
			case v.Description == "balance 750.00, want 800.00":
				sawBalance = true
			case v.Description == "id outside 1..2":
				sawID = true
			}
		}
	}
	assert.True(t, sawBalance, "expected a balance violation, got %v", violations)
	assert.True(t, sawID, "expected an id density violation, got %v", violations)
}

func TestCheck_DuplicateIDs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "csv")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	shard := Header + "\n" +
		"1,2024-01-05,10.00,Food,,10.00\n" +
		"1,2024-01-06,5.00,Food,,15.00\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2024_transactions.csv"), []byte(shard), 0o644))

	l := New(NewStoreAt(dir))
	_, err := l.Load(2024)
	require.NoError(t, err)

	violations := l.Check()
	var sawDuplicate bool
	for _, v := range violations {
		if v.Description == "duplicate id" {
			sawDuplicate = true
		}
	}
	assert.True(t, sawDuplicate, "expected a duplicate id violation, got %v", violations)
}
