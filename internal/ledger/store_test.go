package ledger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Years(t *testing.T) {
	dir := t.TempDir()

	files := []string{
		"2022_transactions.csv",
		"2024_transactions.csv",
		"notes.txt",
		"backup_transactions.csv",
		"123_transactions.csv", // not a 4-digit year
		"2023_transactions.json",
	}
	for _, name := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "2021_transactions.csv.d"), 0o755))

	years, err := NewStoreAt(dir).Years()
	require.NoError(t, err)
	require.Len(t, years, 2)
	assert.Equal(t, filepath.Join(dir, "2022_transactions.csv"), years[2022])
	assert.Equal(t, filepath.Join(dir, "2024_transactions.csv"), years[2024])
}

func TestStore_YearsMissingDir(t *testing.T) {
	years, err := NewStoreAt(filepath.Join(t.TempDir(), "missing")).Years()
	require.NoError(t, err)
	assert.Empty(t, years)
}

func TestStore_PathCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "csv")
	s := NewStoreAt(dir)

	path, err := s.Path(2024)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "2024_transactions.csv"), path)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStore_Layout(t *testing.T) {
	s := NewStore("/data", "alice", "vacation")
	assert.Equal(t, filepath.Join("/data", "alice", "piggy_banks", "vacation", "csv"), s.Dir())
}

func TestWriteAtomic_ReplacesContent(t *testing.T) {
	dir := t.TempDir()
	s := NewStoreAt(dir)
	path := filepath.Join(dir, "2024_transactions.csv")

	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	err := s.WriteAtomic(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "new")
		return err
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteAtomic_FailureKeepsPrior(t *testing.T) {
	dir := t.TempDir()
	s := NewStoreAt(dir)
	path := filepath.Join(dir, "2024_transactions.csv")

	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	err := s.WriteAtomic(path, func(w io.Writer) error {
		return fmt.Errorf("disk full")
	})
	require.ErrorIs(t, err, ErrIO)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data), "failed write must not touch the prior shard")
}
