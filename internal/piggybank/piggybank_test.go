package piggybank

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir, "alice")

	info, err := svc.Create("vacation")
	require.NoError(t, err)
	assert.Equal(t, "vacation", info.Name)
	assert.Equal(t, "alice", info.Account)

	for _, sub := range []string{"csv", "json"} {
		stat, statErr := os.Stat(filepath.Join(dir, "alice", "piggy_banks", "vacation", sub))
		require.NoError(t, statErr)
		assert.True(t, stat.IsDir())
	}
}

func TestCreate_InvalidName(t *testing.T) {
	svc := NewService(t.TempDir(), "alice")
	_, err := svc.Create("no spaces")
	require.Error(t, err)
}

func TestCreate_Duplicate(t *testing.T) {
	svc := NewService(t.TempDir(), "alice")
	_, err := svc.Create("vacation")
	require.NoError(t, err)
	_, err = svc.Create("vacation")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestListAndGet(t *testing.T) {
	svc := NewService(t.TempDir(), "alice")

	names, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = svc.Create("vacation")
	require.NoError(t, err)
	_, err = svc.Create("emergency")
	require.NoError(t, err)

	names, err = svc.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"vacation", "emergency"}, names)

	info, ok := svc.Get("vacation")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(info.Path, "csv"), info.CSVPath)

	_, ok = svc.Get("nope")
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir, "alice")
	_, err := svc.Create("vacation")
	require.NoError(t, err)

	// Without purge, data stays on disk.
	require.NoError(t, svc.Delete("vacation", false))
	_, statErr := os.Stat(filepath.Join(dir, "alice", "piggy_banks", "vacation"))
	assert.NoError(t, statErr)

	require.NoError(t, svc.Delete("vacation", true))
	_, statErr = os.Stat(filepath.Join(dir, "alice", "piggy_banks", "vacation"))
	assert.True(t, os.IsNotExist(statErr))

	require.Error(t, svc.Delete("vacation", false))
}
