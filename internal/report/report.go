// Package report derives period aggregates (monthly, yearly, category
// summary) from a ledger's transaction set. It never mutates the ledger.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bankbook-dev/bankbook/internal/ledger"
	"github.com/bankbook-dev/bankbook/internal/model"
)

// savingsCategory is excluded from the monthly expense breakdown: transfers
// into savings count as allocations, not spending. The yearly report and
// the category summary keep it, matching long-standing behavior.
const savingsCategory = "savings"

// CategoryTotal is one category's summed amount. Breakdowns are ordered
// slices so their sort order survives serialization.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// MonthTotal is one month's slot in a yearly report's monthly summary.
type MonthTotal struct {
	Month    int
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// MonthlyReport aggregates one calendar month.
type MonthlyReport struct {
	Year              int
	Month             int
	Period            string // "YYYY-MM"
	BalanceBefore     decimal.Decimal
	Income            decimal.Decimal
	Expenses          decimal.Decimal
	Net               decimal.Decimal
	BalanceAfter      decimal.Decimal
	TransactionCount  int
	ExpenseByCategory []CategoryTotal // ascending by sum, savings excluded
	IncomeByCategory  []CategoryTotal // descending by sum
}

// YearlyReport aggregates one calendar year.
type YearlyReport struct {
	Year              int
	BalanceBefore     decimal.Decimal
	Income            decimal.Decimal
	Expenses          decimal.Decimal
	Net               decimal.Decimal
	BalanceAfter      decimal.Decimal
	TransactionCount  int
	ExpenseByCategory []CategoryTotal // ascending by sum, savings included
	IncomeByCategory  []CategoryTotal // descending by sum
	MonthlySummary    []MonthTotal    // always 12 entries, months 1..12
}

// CategorySummary aggregates an arbitrary date range.
type CategorySummary struct {
	TotalIncome       decimal.Decimal
	TotalExpenses     decimal.Decimal
	ExpenseByCategory []CategoryTotal
	IncomeByCategory  []CategoryTotal
}

// Monthly builds the report for one month. Month must be in 1..12.
// An empty month yields zero aggregates and empty breakdowns.
func Monthly(l *ledger.Ledger, year, month int) (MonthlyReport, error) {
	if month < 1 || month > 12 {
		return MonthlyReport{}, fmt.Errorf("%w: month %d outside 1..12", ledger.ErrInvalidInput, month)
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	balanceBefore, window := splitRange(l.Transactions(), start, end)
	income, expenses := sumBySign(window)
	net := income.Add(expenses)

	return MonthlyReport{
		Year:              year,
		Month:             month,
		Period:            fmt.Sprintf("%04d-%02d", year, month),
		BalanceBefore:     balanceBefore,
		Income:            income,
		Expenses:          expenses,
		Net:               net,
		BalanceAfter:      balanceBefore.Add(net),
		TransactionCount:  len(window),
		ExpenseByCategory: groupExpenses(window, true),
		IncomeByCategory:  groupIncome(window),
	}, nil
}

// Yearly builds the report for one year, including the fixed 12-slot
// monthly summary.
func Yearly(l *ledger.Ledger, year int) YearlyReport {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	balanceBefore, window := splitRange(l.Transactions(), start, end)
	income, expenses := sumBySign(window)
	net := income.Add(expenses)

	summary := make([]MonthTotal, 0, 12)
	for month := 1; month <= 12; month++ {
		mStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		mEnd := mStart.AddDate(0, 1, 0)
		_, monthWindow := splitRange(window, mStart, mEnd)
		mIncome, mExpenses := sumBySign(monthWindow)
		summary = append(summary, MonthTotal{
			Month:    month,
			Income:   mIncome,
			Expenses: mExpenses,
			Net:      mIncome.Add(mExpenses),
		})
	}

	return YearlyReport{
		Year:              year,
		BalanceBefore:     balanceBefore,
		Income:            income,
		Expenses:          expenses,
		Net:               net,
		BalanceAfter:      balanceBefore.Add(net),
		TransactionCount:  len(window),
		ExpenseByCategory: groupExpenses(window, false),
		IncomeByCategory:  groupIncome(window),
		MonthlySummary:    summary,
	}
}

// Categories summarizes income and expenses per category over an inclusive
// date range. Zero bounds mean unbounded on that side.
func Categories(l *ledger.Ledger, start, end time.Time) CategorySummary {
	window := l.Query(ledger.Filter{Start: start, End: end})
	income, expenses := sumBySign(window)

	return CategorySummary{
		TotalIncome:       income,
		TotalExpenses:     expenses,
		ExpenseByCategory: groupExpenses(window, false),
		IncomeByCategory:  groupIncome(window),
	}
}

// splitRange returns the summed amount of transactions dated strictly before
// start, and the transactions within [start, end).
func splitRange(txns []model.Transaction, start, end time.Time) (decimal.Decimal, []model.Transaction) {
	before := decimal.Zero
	var window []model.Transaction
	for _, t := range txns {
		if t.Date.Before(start) {
			before = before.Add(t.Amount)
			continue
		}
		if t.Date.Before(end) {
			window = append(window, t)
		}
	}
	return before, window
}

func sumBySign(txns []model.Transaction) (income, expenses decimal.Decimal) {
	for _, t := range txns {
		switch {
		case t.Amount.IsPositive():
			income = income.Add(t.Amount)
		case t.Amount.IsNegative():
			expenses = expenses.Add(t.Amount)
		}
	}
	return income, expenses
}

func groupExpenses(txns []model.Transaction, excludeSavings bool) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	for _, t := range txns {
		if !t.Amount.IsNegative() {
			continue
		}
		if excludeSavings && strings.EqualFold(t.Category, savingsCategory) {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}
	return sortedTotals(totals, true)
}

func groupIncome(txns []model.Transaction) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	for _, t := range txns {
		if !t.Amount.IsPositive() {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}
	return sortedTotals(totals, false)
}

// sortedTotals orders by summed amount, ties broken by category name so the
// ordering is deterministic.
func sortedTotals(totals map[string]decimal.Decimal, ascending bool) []CategoryTotal {
	out := make([]CategoryTotal, 0, len(totals))
	for category, amount := range totals {
		out = append(out, CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		cmp := out[i].Amount.Cmp(out[j].Amount)
		if cmp == 0 {
			return out[i].Category < out[j].Category
		}
		if ascending {
			return cmp < 0
		}
		return cmp > 0
	})
	return out
}
