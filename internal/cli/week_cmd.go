package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/agenda/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newWeekCmd(app *App) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show a rolling seven-day agenda",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()
			start := now
			if from != "" {
				parsed, err := time.Parse(dateLayout, from)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", from, err)
				}
				start = parsed
			}

			boards, err := app.Agenda.Week(context.Background(), start, now)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatWeek(boards, now))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Start the window on a specific day (YYYY-MM-DD)")
	return cmd
}
