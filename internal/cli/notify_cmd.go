package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/agenda/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newNotifyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Manage the local notification queue",
	}

	cmd.AddCommand(
		newNotifySyncCmd(app),
		newNotifyListCmd(app),
		newNotifyRunCmd(app),
	)
	return cmd
}

func newNotifySyncCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Replan pending notifications for every item",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Notify == nil {
				return fmt.Errorf("notifications are disabled")
			}
			if err := app.Notify.SyncAll(context.Background(), app.now()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Notification queue synced")
			return nil
		},
	}
}

func newNotifyListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pending notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Notify == nil {
				return fmt.Errorf("notifications are disabled")
			}
			pending, err := app.Notify.Pending(context.Background(), app.now())
			if err != nil {
				return err
			}
			if len(pending) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No pending notifications.")
				return nil
			}

			headers := []string{"FIRE AT", "TITLE", "BODY"}
			rows := make([][]string, 0, len(pending))
			for _, n := range pending {
				rows = append(rows, []string{
					n.FireAt.Local().Format("Mon Jan 2 15:04"),
					formatter.Bold(n.Title),
					n.Body,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newNotifyRunCmd(app *App) *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the notification loop in the foreground",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Notify == nil {
				return fmt.Errorf("notifications are disabled")
			}
			ctx := context.Background()

			if err := app.Notify.SyncAll(ctx, app.now()); err != nil {
				return err
			}

			if once {
				return app.Notify.Tick(ctx, app.now())
			}

			if err := app.Notify.Start(ctx); err != nil {
				return err
			}
			defer app.Notify.Stop()

			fmt.Fprintln(cmd.OutOrStdout(), "Notification loop running, press Ctrl+C to stop")
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			<-sig
			return nil
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "Deliver currently due notifications and exit")
	return cmd
}
