package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/agenda/internal/backup"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var toClipboard bool

	cmd := &cobra.Command{
		Use:   "export [FILE]",
		Short: "Export all items and preferences as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			items, err := app.Items.List(ctx)
			if err != nil {
				return err
			}
			prefs, err := app.Prefs.Get(ctx)
			if err != nil {
				return err
			}

			schema := backup.Snapshot(items, prefs, app.now())

			if toClipboard {
				if err := backup.CopyToClipboard(schema); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Copied %d items to clipboard\n", len(schema.Items))
				return nil
			}

			if len(args) == 0 {
				data, err := backup.MarshalSchema(schema)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
				return nil
			}

			if err := backup.SaveSchema(args[0], schema); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d items to %s\n", len(schema.Items), args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&toClipboard, "clipboard", false, "Copy the snapshot to the system clipboard")
	return cmd
}
