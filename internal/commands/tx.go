package commands

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/bankbook-dev/bankbook/internal/category"
	"github.com/bankbook-dev/bankbook/internal/ledger"
	"github.com/bankbook-dev/bankbook/internal/model"
)

func newTxCommand() *cobra.Command {
	txCmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage transactions",
	}
	txCmd.AddCommand(newTxAddCommand())
	txCmd.AddCommand(newTxListCommand())
	txCmd.AddCommand(newTxRmCommand())
	return txCmd
}

func newTxAddCommand() *cobra.Command {
	var opts ledgerOpts
	var date, amountStr, cat, description string
	var year int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, err := opts.store()
			if err != nil {
				return err
			}

			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", amountStr, err)
			}

			// The engine takes any category text; the registry is only
			// consulted to warn about typos.
			reg, err := category.Load(opts.categoriesPath(cfg))
			if err == nil && !reg.Has(cat) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: unknown category %q\n", cat)
			}

			l := ledger.New(store)
			if _, err := l.Load(year); err != nil && !errors.Is(err, ledger.ErrNotFound) {
				return err
			}

			txn, err := l.Append(date, amount, cat, description)
			if err != nil {
				return err
			}

			result, err := l.Save(year)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded transaction %d (%s %s %s), balance %s\n",
				txn.ID, date, amount.StringFixed(2), cat, l.Balance().StringFixed(2))
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d transactions to %s\n", result.Count, result.Path)
			return nil
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVar(&date, "date", "", "transaction date (YYYY-MM-DD, required)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount, positive income / negative expense (required)")
	cmd.Flags().StringVar(&cat, "category", "", "category label (required)")
	cmd.Flags().StringVar(&description, "desc", "", "free-text description")
	cmd.Flags().IntVar(&year, "year", 0, "shard year (default: most recent)")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func newTxListCommand() *cobra.Command {
	var opts ledgerOpts
	var from, to, cat string
	var year int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := opts.store()
			if err != nil {
				return err
			}

			filter := ledger.Filter{Category: cat}
			if filter.Start, err = parseDateFlag(from); err != nil {
				return err
			}
			if filter.End, err = parseDateFlag(to); err != nil {
				return err
			}

			l := ledger.New(store)
			if _, err := l.Load(year); err != nil {
				return err
			}

			txns := l.Query(filter)
			printTransactions(cmd, txns)
			fmt.Fprintf(cmd.OutOrStdout(), "%d transactions, balance %s\n", len(txns), l.Balance().StringFixed(2))
			return nil
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVar(&from, "from", "", "start date (inclusive, YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end date (inclusive, YYYY-MM-DD)")
	cmd.Flags().StringVar(&cat, "category", "", "exact category filter")
	cmd.Flags().IntVar(&year, "year", 0, "shard year (default: most recent)")

	return cmd
}

func newTxRmCommand() *cobra.Command {
	var opts ledgerOpts
	var year int

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a transaction; remaining ids are renumbered 1..N",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing transaction id %q: %w", args[0], err)
			}

			store, _, err := opts.store()
			if err != nil {
				return err
			}

			l := ledger.New(store)
			if _, err := l.Load(year); err != nil {
				return err
			}

			removed, err := l.Delete(id)
			if err != nil {
				return err
			}
			if _, err := l.Save(year); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted transaction %d (%s %s %s), balance %s\n",
				removed.ID, removed.Date.Format("2006-01-02"), removed.Amount.StringFixed(2),
				removed.Category, l.Balance().StringFixed(2))
			return nil
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().IntVar(&year, "year", 0, "shard year (default: most recent)")

	return cmd
}

func parseDateFlag(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", value, err)
	}
	return day, nil
}

func printTransactions(cmd *cobra.Command, txns []model.Transaction) {
	for _, t := range txns {
		amount := t.Amount.StringFixed(2)
		if t.Amount.IsNegative() {
			amount = negativeStyle.Render(amount)
		} else {
			amount = positiveStyle.Render(amount)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%4d  %s  %12s  %-16s %s\n",
			t.ID, t.Date.Format("2006-01-02"), amount, t.Category, t.Description)
	}
}
