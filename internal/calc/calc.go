// Package calc derives summary and grouping views from a transaction list.
// Every function is pure: same list in, same views out, stored records never
// mutated. Sums are float64 additions in encounter order; rounding is left
// to the presentation layer.
package calc

import (
	"sort"

	"github.com/tallyhq/tally/internal/model"
)

// TotalByType sums the amounts of all transactions with the given type.
func TotalByType(txs []model.Transaction, t model.Type) float64 {
	var total float64
	for _, tx := range txs {
		if tx.Type == t {
			total += tx.Amount
		}
	}
	return total
}

// TotalIncome sums all income amounts.
func TotalIncome(txs []model.Transaction) float64 {
	return TotalByType(txs, model.TypeIncome)
}

// TotalExpense sums all expense amounts.
func TotalExpense(txs []model.Transaction) float64 {
	return TotalByType(txs, model.TypeExpense)
}

// Balance is total income minus total expense. It may be negative.
func Balance(txs []model.Transaction) float64 {
	return TotalIncome(txs) - TotalExpense(txs)
}

// Split partitions a list by type, each side preserving original order.
type Split struct {
	Income  []model.Transaction
	Expense []model.Transaction
}

// SplitByType partitions txs into income and expense. Both sides are
// non-nil even for empty input.
func SplitByType(txs []model.Transaction) Split {
	s := Split{
		Income:  []model.Transaction{},
		Expense: []model.Transaction{},
	}
	for _, tx := range txs {
		if tx.Type == model.TypeIncome {
			s.Income = append(s.Income, tx)
		} else {
			s.Expense = append(s.Expense, tx)
		}
	}
	return s
}

// categoryOf maps an empty category to the default bucket for grouping
// purposes only.
func categoryOf(tx model.Transaction) string {
	if tx.Category == "" {
		return model.DefaultCategory
	}
	return tx.Category
}

// GroupByCategory buckets transactions by category name.
func GroupByCategory(txs []model.Transaction) map[string][]model.Transaction {
	groups := make(map[string][]model.Transaction)
	for _, tx := range txs {
		c := categoryOf(tx)
		groups[c] = append(groups[c], tx)
	}
	return groups
}

// TotalsByCategory sums amounts per category across both types.
func TotalsByCategory(txs []model.Transaction) map[string]float64 {
	totals := make(map[string]float64)
	for _, tx := range txs {
		totals[categoryOf(tx)] += tx.Amount
	}
	return totals
}

// TotalsByCategoryAndType sums amounts per category for one type only.
// Categories with no matching transactions of that type are absent.
func TotalsByCategoryAndType(txs []model.Transaction, t model.Type) map[string]float64 {
	totals := make(map[string]float64)
	for _, tx := range txs {
		if tx.Type == t {
			totals[categoryOf(tx)] += tx.Amount
		}
	}
	return totals
}

// Series is the income-vs-expense time series behind the chart: one point
// per distinct date, dates ascending, the two value slices aligned with
// Dates. Dates a type has no transactions on contribute a zero point.
type Series struct {
	Dates   []string
	Income  []float64
	Expense []float64
}

// SeriesByDate folds the list into per-day income and expense sums.
func SeriesByDate(txs []model.Transaction) Series {
	income := make(map[string]float64)
	expense := make(map[string]float64)
	var dates []string
	seen := make(map[string]bool)

	for _, tx := range txs {
		day := tx.Date.Format("2006-01-02")
		if !seen[day] {
			seen[day] = true
			dates = append(dates, day)
		}
		if tx.Type == model.TypeIncome {
			income[day] += tx.Amount
		} else {
			expense[day] += tx.Amount
		}
	}
	sort.Strings(dates)

	s := Series{Dates: dates}
	for _, day := range dates {
		s.Income = append(s.Income, income[day])
		s.Expense = append(s.Expense, expense[day])
	}
	return s
}
