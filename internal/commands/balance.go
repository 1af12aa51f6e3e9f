package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bankbook-dev/bankbook/internal/ledger"
)

func newBalanceCommand() *cobra.Command {
	var opts ledgerOpts
	var year int

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the current balance of a piggy bank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := opts.store()
			if err != nil {
				return err
			}

			l := ledger.New(store)
			result, err := l.Load(year)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d transactions in %d)\n",
				labelStyle.Render("Balance:"), result.Balance.StringFixed(2), result.Count, result.Year)
			return nil
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().IntVar(&year, "year", 0, "shard year (default: most recent)")

	return cmd
}
