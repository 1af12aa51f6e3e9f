package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bankbook-dev/bankbook/internal/ledger"
	"github.com/bankbook-dev/bankbook/internal/report"
)

func newReportCommand() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Financial reports",
	}
	reportCmd.AddCommand(newReportMonthCommand())
	reportCmd.AddCommand(newReportYearCommand())
	reportCmd.AddCommand(newReportSummaryCommand())
	return reportCmd
}

func newReportMonthCommand() *cobra.Command {
	var opts ledgerOpts
	var year, month int

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Monthly report",
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

			r, err := report.Monthly(l, year, month)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Monthly report %s", r.Period)))
			printAggregates(out, r.BalanceBefore.StringFixed(2), r.Income.StringFixed(2),
				r.Expenses.StringFixed(2), r.Net.StringFixed(2), r.BalanceAfter.StringFixed(2), r.TransactionCount)
			printBreakdown(out, "Expenses by category (savings excluded)", r.ExpenseByCategory)
			printBreakdown(out, "Income by category", r.IncomeByCategory)
			return nil
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().IntVar(&year, "year", 0, "report year (required)")
	cmd.Flags().IntVar(&month, "month", 0, "report month 1-12 (required)")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("month")

	return cmd
}

func newReportYearCommand() *cobra.Command {
	var opts ledgerOpts
	var year int

	cmd := &cobra.Command{
		Use:   "year",
		Short: "Yearly report",
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

			r := report.Yearly(l, year)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Yearly report %d", r.Year)))
			printAggregates(out, r.BalanceBefore.StringFixed(2), r.Income.StringFixed(2),
				r.Expenses.StringFixed(2), r.Net.StringFixed(2), r.BalanceAfter.StringFixed(2), r.TransactionCount)

			fmt.Fprintln(out, labelStyle.Render("Month    Income     Expenses   Net"))
			for _, m := range r.MonthlySummary {
				fmt.Fprintf(out, "%5d  %10s  %10s  %10s\n",
					m.Month, m.Income.StringFixed(2), m.Expenses.StringFixed(2), m.Net.StringFixed(2))
			}

			printBreakdown(out, "Expenses by category", r.ExpenseByCategory)
			printBreakdown(out, "Income by category", r.IncomeByCategory)
			return nil
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().IntVar(&year, "year", 0, "report year (required)")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}

func newReportSummaryCommand() *cobra.Command {
	var opts ledgerOpts
	var from, to string
	var year int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Category summary over a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := opts.store()
			if err != nil {
				return err
			}

			start, err := parseDateFlag(from)
			if err != nil {
				return err
			}
			end, err := parseDateFlag(to)
			if err != nil {
				return err
			}

			l := ledger.New(store)
			if _, err := l.Load(year); err != nil {
				return err
			}

			r := report.Categories(l, start, end)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("Category summary"))
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Total income:"), r.TotalIncome.StringFixed(2))
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Total expenses:"), r.TotalExpenses.StringFixed(2))
			printBreakdown(out, "Expenses by category", r.ExpenseByCategory)
			printBreakdown(out, "Income by category", r.IncomeByCategory)
			return nil
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVar(&from, "from", "", "start date (inclusive, YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end date (inclusive, YYYY-MM-DD)")
	cmd.Flags().IntVar(&year, "year", 0, "shard year (default: most recent)")

	return cmd
}

func printAggregates(out io.Writer, before, income, expenses, net, after string, count int) {
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Balance before:"), before)
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Income:"), positiveStyle.Render(income))
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Expenses:"), negativeStyle.Render(expenses))
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Net:"), net)
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Balance after:"), after)
	fmt.Fprintf(out, "%s %d\n", labelStyle.Render("Transactions:"), count)
}

func printBreakdown(out io.Writer, title string, totals []report.CategoryTotal) {
	if len(totals) == 0 {
		return
	}
	fmt.Fprintln(out, labelStyle.Render(title))
	for _, t := range totals {
		fmt.Fprintf(out, "  %-20s %12s\n", t.Category, t.Amount.StringFixed(2))
	}
}
