package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bankbook.yaml")

	cfg := &Config{
		Data: DataConfig{Dir: "/tmp/books"},
		Defaults: DefaultsConfig{
			Account:        "personal",
			PiggyBank:      "main",
			ImportCategory: "Uncategorized",
		},
	}
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "bankbook.yaml"))
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default("data")
	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, "Uncategorized", cfg.Defaults.ImportCategory)
	assert.Empty(t, cfg.Defaults.Account)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("BANKBOOK_DATA_DIR", "/srv/books")
	t.Setenv("BANKBOOK_ACCOUNT", "shared")
	t.Setenv("BANKBOOK_PIGGY_BANK", "vacation")

	cfg := Default("data")
	cfg.ApplyEnv()

	assert.Equal(t, "/srv/books", cfg.Data.Dir)
	assert.Equal(t, "shared", cfg.Defaults.Account)
	assert.Equal(t, "vacation", cfg.Defaults.PiggyBank)
}

func TestApplyEnv_EmptyValuesIgnored(t *testing.T) {
	t.Setenv("BANKBOOK_DATA_DIR", "")

	cfg := Default("data")
	cfg.ApplyEnv()

	assert.Equal(t, "data", cfg.Data.Dir)
}
