package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/model"
)

func newAddCommand(dir *string) *cobra.Command {
	var (
		txType      string
		amount      float64
		description string
		date        string
		category    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()

			t, err := parseType(txType)
			if err != nil {
				return err
			}
			if err := checkAmount(amount); err != nil {
				return err
			}
			if date == "" {
				date = now.Format(dateFormat)
			}
			d, err := parseDate(date, now)
			if err != nil {
				return err
			}

			e, err := openEnv(*dir)
			if err != nil {
				return err
			}
			cat, err := resolveCategory(e.cats, category)
			if err != nil {
				return err
			}

			tx, err := e.store.Add(model.Candidate{
				Type:        t,
				Amount:      amount,
				Description: description,
				Date:        d,
				Category:    cat,
			})
			if err != nil {
				return err
			}

			cmd.Printf("Added %s %s (%s) %s\n", tx.Type, formatMoney(tx.Amount), tx.Category, tx.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&txType, "type", string(model.TypeExpense), "transaction type (income or expense)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&description, "description", "", "description (required)")
	_ = cmd.MarkFlagRequired("description")
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&category, "category", "", "category (default Other)")

	return cmd
}
