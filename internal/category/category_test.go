package category

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	reg, err := Load(filepath.Join(t.TempDir(), "categories.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Categories, reg.Categories)
	assert.True(t, reg.Has("Savings"))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")

	reg := &Registry{Categories: []string{"Food", "薪水", "Café"}}
	require.NoError(t, Save(path, reg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, reg.Categories, got.Categories)
}

func TestAdd(t *testing.T) {
	reg := &Registry{Categories: []string{"Food"}}

	require.NoError(t, reg.Add("Travel"))
	assert.True(t, reg.Has("Travel"))

	require.Error(t, reg.Add("Food"), "duplicate")
	require.Error(t, reg.Add(""), "empty name")
}

func TestRename(t *testing.T) {
	reg := &Registry{Categories: []string{"Food", "Travel"}}

	require.NoError(t, reg.Rename("Food", "Groceries"))
	assert.Equal(t, []string{"Groceries", "Travel"}, reg.Categories)

	require.Error(t, reg.Rename("Food", "X"), "old name gone")
	require.Error(t, reg.Rename("Travel", "Groceries"), "new name taken")
	require.Error(t, reg.Rename("Travel", ""), "empty name")
}

func TestRemove(t *testing.T) {
	reg := &Registry{Categories: []string{"Food", "Travel"}}

	require.NoError(t, reg.Remove("Food"))
	assert.Equal(t, []string{"Travel"}, reg.Categories)
	require.Error(t, reg.Remove("Food"))
}
