package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/export"
	"github.com/tallyhq/tally/internal/model"
)

func newImportCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import transactions from an exported CSV file",
		Long:  "Import transactions from a CSV file in the export format. Each row is re-validated by the store and gets a fresh ID; rejected rows are reported and skipped.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			rows, err := export.ParseCSV(f)
			if err != nil {
				return err
			}

			e, err := openEnv(*dir)
			if err != nil {
				return err
			}

			added := 0
			for i, row := range rows {
				_, err := e.store.Add(model.Candidate{
					Type:        row.Type,
					Amount:      row.Amount,
					Description: row.Description,
					Date:        row.Date,
					Category:    row.Category,
				})
				if err != nil {
					cmd.Printf("Skipping row %d: %v\n", i+2, err)
					continue
				}
				added++
			}

			cmd.Printf("Imported %d of %d transactions\n", added, len(rows))
			return nil
		},
	}
	return cmd
}
