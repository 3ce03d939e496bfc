package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/agenda/internal/backup"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var fromClipboard, dryRun, withPrefs bool

	cmd := &cobra.Command{
		Use:   "import [FILE]",
		Short: "Import items from a JSON snapshot",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var schema *backup.Schema
			var err error
			switch {
			case fromClipboard:
				schema, err = backup.ReadFromClipboard()
			case len(args) == 1:
				schema, err = backup.LoadSchema(args[0])
			default:
				return fmt.Errorf("a snapshot file or --clipboard is required")
			}
			if err != nil {
				return err
			}

			if errs := backup.ValidateSchema(schema); len(errs) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Snapshot has %d validation errors:\n", len(errs))
				for _, e := range errs {
					fmt.Fprintf(cmd.OutOrStdout(), "  - %v\n", e)
				}
				return fmt.Errorf("import aborted")
			}

			items, prefs := backup.Restore(schema, app.now())

			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "Snapshot is valid: %d items\n", len(items))
				return nil
			}

			// All or nothing: a failure mid-batch must not leave a
			// partially applied snapshot behind.
			if err := app.Items.ImportAll(ctx, items); err != nil {
				return err
			}
			for _, item := range items {
				if err := app.syncNotifications(ctx, item.ID); err != nil {
					return err
				}
			}

			if withPrefs && prefs != nil {
				if err := app.Prefs.Update(ctx, prefs); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d items\n", len(items))
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromClipboard, "clipboard", false, "Read the snapshot from the system clipboard")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate without writing")
	cmd.Flags().BoolVar(&withPrefs, "prefs", false, "Also apply preferences from the snapshot")
	return cmd
}
