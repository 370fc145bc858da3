package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/model"
)

func newUpdateCommand(dir *string) *cobra.Command {
	var (
		txType      string
		amount      float64
		description string
		date        string
		category    string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a transaction by ID",
		Long:  "Replace a stored transaction with a complete new record. All fields including --category must be supplied; nothing is defaulted on update.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()

			t, err := parseType(txType)
			if err != nil {
				return err
			}
			if err := checkAmount(amount); err != nil {
				return err
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

			_, found := e.store.Get(args[0])
			tx, err := e.store.Update(model.Transaction{
				ID:          args[0],
				Type:        t,
				Amount:      amount,
				Description: description,
				Date:        d,
				Category:    cat,
			})
			if err != nil {
				return err
			}

			if !found {
				cmd.Printf("No transaction with id %s\n", args[0])
				return nil
			}
			cmd.Printf("Updated %s\n", tx.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&txType, "type", "", "transaction type (required)")
	_ = cmd.MarkFlagRequired("type")
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&description, "description", "", "description (required)")
	_ = cmd.MarkFlagRequired("description")
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("date")
	cmd.Flags().StringVar(&category, "category", "", "category (required on update)")

	return cmd
}
