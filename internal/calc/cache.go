package calc

import "github.com/tallyhq/tally/internal/model"

// Summary bundles every derived view for one list state.
type Summary struct {
	TotalIncome  float64
	TotalExpense float64
	Balance      float64

	Split             Split
	ByCategory        map[string][]model.Transaction
	TotalsByCategory  map[string]float64
	IncomeByCategory  map[string]float64
	ExpenseByCategory map[string]float64
}

// Summarize computes every derived view for the given list.
func Summarize(txs []model.Transaction) Summary {
	income := TotalIncome(txs)
	expense := TotalExpense(txs)
	return Summary{
		TotalIncome:       income,
		TotalExpense:      expense,
		Balance:           income - expense,
		Split:             SplitByType(txs),
		ByCategory:        GroupByCategory(txs),
		TotalsByCategory:  TotalsByCategory(txs),
		IncomeByCategory:  TotalsByCategoryAndType(txs, model.TypeIncome),
		ExpenseByCategory: TotalsByCategoryAndType(txs, model.TypeExpense),
	}
}

// Cache memoizes one Summary keyed on a list version counter. Recomputing on
// every call would also be correct; the cache only avoids the waste. The
// zero value is ready to use.
type Cache struct {
	valid   bool
	version uint64
	summary Summary
}

// Summary returns the views for txs, reusing the previous result when
// version matches the last computation.
func (c *Cache) Summary(version uint64, txs []model.Transaction) Summary {
	if c.valid && c.version == version {
		return c.summary
	}
	c.summary = Summarize(txs)
	c.version = version
	c.valid = true
	return c.summary
}
