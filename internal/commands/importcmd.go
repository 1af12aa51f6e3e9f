package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bankbook-dev/bankbook/internal/importer"
	"github.com/bankbook-dev/bankbook/internal/ledger"
)

func newImportCommand() *cobra.Command {
	var opts ledgerOpts
	var format, cat string
	var year int
	var keep bool

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import a bank statement CSV into a piggy bank",
		Long: `Import appends each statement row as a transaction and saves the shard.
Without a file argument, every CSV waiting in <data>/import is processed
and moved to <data>/import/processed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, err := opts.store()
			if err != nil {
				return err
			}

			if cat == "" {
				cat = cfg.Defaults.ImportCategory
			}
			if cat == "" {
				cat = "Uncategorized"
			}

			parser := importer.DefaultRegistry().Get(format)
			if parser == nil {
				return fmt.Errorf("unknown statement format %q", format)
			}

			if len(args) == 1 {
				return importFile(cmd, store, parser, args[0], cat, year)
			}

			importDir := filepath.Join(cfg.Data.Dir, "import")
			files, err := importer.Scan(importDir)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to import.")
				return nil
			}

			for _, file := range files {
				if err := importFile(cmd, store, parser, file.Path, cat, year); err != nil {
					return fmt.Errorf("importing %s: %w", file.Name, err)
				}
				if !keep {
					if err := importer.MarkProcessed(importDir, file.Name); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVar(&format, "format", "generic", "statement format")
	cmd.Flags().StringVar(&cat, "category", "", "category for imported rows")
	cmd.Flags().IntVar(&year, "year", 0, "shard year (default: most recent)")
	cmd.Flags().BoolVar(&keep, "keep", false, "leave processed files in the import directory")

	return cmd
}

func importFile(cmd *cobra.Command, store *ledger.Store, parser importer.Parser, path, cat string, year int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	rows, err := parser.Parse(f)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: no rows\n", filepath.Base(path))
		return nil
	}

	l := ledger.New(store)
	if _, err := l.Load(year); err != nil && !errors.Is(err, ledger.ErrNotFound) {
		return err
	}

	for _, row := range rows {
		if _, err := l.Append(row.Date.Format("2006-01-02"), row.Amount, cat, row.Description); err != nil {
			return err
		}
	}

	result, err := l.Save(year)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: imported %d rows, %d transactions now in %s\n",
		filepath.Base(path), len(rows), result.Count, result.Path)
	return nil
}
