package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/calc"
	"github.com/tallyhq/tally/internal/filter"
	"github.com/tallyhq/tally/internal/model"
)

func newListCommand(dir *string) *cobra.Command {
	var (
		search    string
		rangeMode string
		from      string
		to        string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, split by type",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()

			params, err := buildFilterParams(search, rangeMode, from, to)
			if err != nil {
				return err
			}

			e, err := openEnv(*dir)
			if err != nil {
				return err
			}

			split := calc.SplitByType(e.store.Transactions())
			income := filter.Apply(split.Income, params, now)
			expense := filter.Apply(split.Expense, params, now)

			printSection(cmd, "Income", income)
			printSection(cmd, "Expenses", expense)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "match against description and category")
	cmd.Flags().StringVar(&rangeMode, "range", string(filter.ModeAll), "date range: all, today, week, month, year, custom")
	cmd.Flags().StringVar(&from, "from", "", "custom range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "custom range end (YYYY-MM-DD)")

	return cmd
}

func buildFilterParams(search, rangeMode, from, to string) (filter.Params, error) {
	mode, ok := filter.ParseMode(rangeMode)
	if !ok {
		return filter.Params{}, fmt.Errorf("unknown range %q (want all, today, week, month, year, or custom)", rangeMode)
	}

	p := filter.Params{Search: search, Mode: mode}
	if mode == filter.ModeCustom {
		var err error
		if from != "" {
			if p.Start, err = time.Parse(dateFormat, from); err != nil {
				return filter.Params{}, fmt.Errorf("parsing --from %q: %w", from, err)
			}
		}
		if to != "" {
			if p.End, err = time.Parse(dateFormat, to); err != nil {
				return filter.Params{}, fmt.Errorf("parsing --to %q: %w", to, err)
			}
		}
	}
	return p, nil
}

func printSection(cmd *cobra.Command, title string, txs []model.Transaction) {
	cmd.Printf("%s\n", title)
	if len(txs) == 0 {
		cmd.Println("  (none)")
		return
	}
	for _, tx := range txs {
		cmd.Printf("  %s  %10s  %-14s  %s  %s\n",
			tx.Date.Format(dateFormat),
			formatMoney(tx.Amount),
			tx.Category,
			tx.Description,
			tx.ID,
		)
	}
}

// formatMoney renders an amount with two decimals for display. Core sums
// stay plain float64; rounding happens only here.
func formatMoney(a float64) string {
	return decimal.NewFromFloat(a).StringFixed(2)
}
