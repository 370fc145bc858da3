package commands

import (
	"sort"

	"github.com/spf13/cobra"
)

func newSummaryCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show totals, balance, and per-category breakdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dir)
			if err != nil {
				return err
			}

			s := e.store.Summary()

			cmd.Printf("Total income:  %s\n", formatMoney(s.TotalIncome))
			cmd.Printf("Total expense: %s\n", formatMoney(s.TotalExpense))
			cmd.Printf("Balance:       %s\n", formatMoney(s.Balance))

			if len(s.TotalsByCategory) == 0 {
				return nil
			}

			names := make([]string, 0, len(s.TotalsByCategory))
			for name := range s.TotalsByCategory {
				names = append(names, name)
			}
			sort.Strings(names)

			cmd.Println("\nBy category:")
			for _, name := range names {
				cmd.Printf("  %-14s %12s  (income %s, expense %s)\n",
					name,
					formatMoney(s.TotalsByCategory[name]),
					formatMoney(s.IncomeByCategory[name]),
					formatMoney(s.ExpenseByCategory[name]),
				)
			}
			return nil
		},
	}
	return cmd
}
