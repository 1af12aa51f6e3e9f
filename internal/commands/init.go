package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bankbook-dev/bankbook/internal/category"
	"github.com/bankbook-dev/bankbook/internal/config"
)

func newInitCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new bankbook data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, dataDir)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", "data", "data directory, relative to the project directory")

	return cmd
}

func runInit(cmd *cobra.Command, dir, dataDir string) error {
	if !filepath.IsAbs(dataDir) {
		dataDir = filepath.Join(dir, dataDir)
	}

	for _, d := range []string{dataDir, filepath.Join(dataDir, "import")} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write bankbook.yaml.
	cfg := config.Default(dataDir)
	if err := config.Save(filepath.Join(dir, "bankbook.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Seed the category registry.
	if err := category.Save(filepath.Join(dataDir, "categories.yaml"), category.Default()); err != nil {
		return fmt.Errorf("writing categories: %w", err)
	}

	// Empty account registry.
	if err := os.WriteFile(filepath.Join(dataDir, "accounts.json"), []byte("[]\n"), 0o644); err != nil {
		return fmt.Errorf("writing account registry: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized bankbook data directory at %s\n", dataDir)
	return nil
}
