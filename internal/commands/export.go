package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bankbook-dev/bankbook/internal/ledger"
)

func newExportCommand() *cobra.Command {
	var opts ledgerOpts
	var year int

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a shard as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := opts.store()
			if err != nil {
				return err
			}

			l := ledger.New(store)
			if _, err := l.Load(year); err != nil {
				return err
			}

			result, err := l.ExportJSON(year)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d transactions to %s\n", result.Count, result.Path)
			return nil
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().IntVar(&year, "year", 0, "shard year (default: most recent)")

	return cmd
}
