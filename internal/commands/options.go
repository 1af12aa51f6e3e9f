package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bankbook-dev/bankbook/internal/config"
	"github.com/bankbook-dev/bankbook/internal/ledger"
)

const defaultConfigFile = "bankbook.yaml"

// dataOpts resolves the data directory shared by every command: flag, then
// environment, then bankbook.yaml.
type dataOpts struct {
	configPath string
	dataDir    string
}

func (o *dataOpts) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.configPath, "config", defaultConfigFile, "config file")
	cmd.Flags().StringVar(&o.dataDir, "data", "", "data directory (overrides config)")
}

func (o *dataOpts) resolve() (*config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Load(o.configPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default("data")
	} else if err != nil {
		return nil, err
	}

	cfg.ApplyEnv()
	if o.dataDir != "" {
		cfg.Data.Dir = o.dataDir
	}
	return cfg, nil
}

// ledgerOpts additionally pins an account and piggy bank pair.
type ledgerOpts struct {
	dataOpts
	account   string
	piggyBank string
}

func (o *ledgerOpts) addFlags(cmd *cobra.Command) {
	o.dataOpts.addFlags(cmd)
	cmd.Flags().StringVar(&o.account, "account", "", "account name")
	cmd.Flags().StringVar(&o.piggyBank, "piggy-bank", "", "piggy bank name")
}

// store resolves config and returns the shard store for the selected
// account and piggy bank.
func (o *ledgerOpts) store() (*ledger.Store, *config.Config, error) {
	cfg, err := o.resolve()
	if err != nil {
		return nil, nil, err
	}

	if o.account == "" {
		o.account = cfg.Defaults.Account
	}
	if o.piggyBank == "" {
		o.piggyBank = cfg.Defaults.PiggyBank
	}
	if o.account == "" {
		return nil, nil, fmt.Errorf("account required: pass --account or set defaults.account in %s", o.configPath)
	}
	if o.piggyBank == "" {
		return nil, nil, fmt.Errorf("piggy bank required: pass --piggy-bank or set defaults.piggy_bank in %s", o.configPath)
	}

	return ledger.NewStore(cfg.Data.Dir, o.account, o.piggyBank), cfg, nil
}

func (o *dataOpts) categoriesPath(cfg *config.Config) string {
	return filepath.Join(cfg.Data.Dir, "categories.yaml")
}
