package commands

import (
	"github.com/spf13/cobra"
)

func newDeleteCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dir)
			if err != nil {
				return err
			}

			_, found := e.store.Get(args[0])
			remaining := e.store.Delete(args[0])

			if !found {
				cmd.Printf("No transaction with id %s\n", args[0])
				return nil
			}
			cmd.Printf("Deleted %s (%d remaining)\n", args[0], len(remaining))
			return nil
		},
	}
	return cmd
}
