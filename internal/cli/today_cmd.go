package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/agenda/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTodayCmd(app *App) *cobra.Command {
	var on string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the agenda for today",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()
			day := now
			if on != "" {
				parsed, err := time.Parse(dateLayout, on)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", on, err)
				}
				day = parsed
			}

			board, err := app.Agenda.Day(context.Background(), day, now)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatDayBoard(board))
			return nil
		},
	}

	cmd.Flags().StringVar(&on, "on", "", "Show a specific day instead (YYYY-MM-DD)")
	return cmd
}
