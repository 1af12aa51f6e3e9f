package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bankbook-dev/bankbook/internal/ledger"
)

func newCheckCommand() *cobra.Command {
	var opts ledgerOpts
	var year int

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify ledger consistency (ordering, dense ids, running balance)",
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

			violations := l.Check()
			if len(violations) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "OK: %d transactions in %d are consistent\n", result.Count, result.Year)
				return nil
			}

			for _, v := range violations {
				fmt.Fprintln(cmd.ErrOrStderr(), v.Error())
			}
			return fmt.Errorf("%d consistency violations in %d shard", len(violations), result.Year)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().IntVar(&year, "year", 0, "shard year (default: most recent)")

	return cmd
}
