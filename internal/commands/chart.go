package commands

import (
	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/calc"
)

func newChartCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Show income vs. expense per day",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dir)
			if err != nil {
				return err
			}

			series := calc.SeriesByDate(e.store.Transactions())
			if len(series.Dates) == 0 {
				cmd.Println("No transactions yet.")
				return nil
			}

			cmd.Printf("%-12s %12s %12s\n", "Date", "Income", "Expense")
			for i, day := range series.Dates {
				cmd.Printf("%-12s %12s %12s\n",
					day,
					formatMoney(series.Income[i]),
					formatMoney(series.Expense[i]),
				)
			}
			return nil
		},
	}
	return cmd
}
