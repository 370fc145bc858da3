package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/export"
)

func newExportCommand(dir *string) *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all transactions as CSV or JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dir)
			if err != nil {
				return err
			}
			txs := e.store.Transactions()

			var content string
			switch format {
			case "csv":
				content = export.CSV(txs)
			case "json":
				content, err = export.JSON(txs)
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown format %q (want csv or json)", format)
			}

			if out == "" {
				// Content goes to stdout so it can be piped.
				fmt.Fprintln(cmd.OutOrStdout(), content)
				return nil
			}
			if err := os.WriteFile(out, []byte(content), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			cmd.Printf("Exported %d transactions to %s\n", len(txs), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "output format: csv or json")
	cmd.Flags().StringVar(&out, "out", "", "write to file instead of stdout")

	return cmd
}
