package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/agenda/internal/cli/formatter"
	"github.com/alexanderramin/agenda/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const dateLayout = "2006-01-02"

// resolveItemID matches an exact ID first, then a unique ID prefix, then a
// unique case-insensitive subject.
func resolveItemID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("item ID is required")
	}

	items, err := app.Items.List(ctx)
	if err != nil {
		return "", err
	}

	for _, item := range items {
		if item.ID == input {
			return item.ID, nil
		}
	}

	var matches []string
	for _, item := range items {
		if strings.HasPrefix(item.ID, input) {
			matches = append(matches, item.ID)
		}
	}
	if len(matches) == 0 {
		for _, item := range items {
			if strings.EqualFold(item.Subject, input) {
				matches = append(matches, item.ID)
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("item not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("item %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage schedule items",
	}

	cmd.AddCommand(
		newItemAddCmd(app),
		newItemListCmd(app),
		newItemInspectCmd(app),
		newItemUpdateCmd(app),
		newItemRemoveCmd(app),
	)

	return cmd
}

type itemFlags struct {
	subject   string
	category  string
	start     string
	end       string
	repeat    string
	day       string
	date      string
	color     string
	location  string
	notes     string
	reminders []int
}

func (f *itemFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.subject, "subject", "", "Item subject")
	flags.StringVar(&f.category, "category", "", "Category (event, task, habit)")
	flags.StringVar(&f.start, "start", "", "Start time (HH:MM)")
	flags.StringVar(&f.end, "end", "", "End time (HH:MM)")
	flags.StringVar(&f.repeat, "repeat", "", "Repeat rule (Never, Daily, Weekly, Bi-weekly, Monthly)")
	flags.StringVar(&f.day, "day", "", "Weekday for weekly items (e.g. Friday)")
	flags.StringVar(&f.date, "date", "", "Explicit date for one-off items (YYYY-MM-DD)")
	flags.StringVar(&f.color, "color", "", "Display color (hex)")
	flags.StringVar(&f.location, "location", "", "Location")
	flags.StringVar(&f.notes, "notes", "", "Free-form notes")
	flags.IntSliceVar(&f.reminders, "remind", nil, "Reminder offsets in minutes before start (repeatable)")
}

func (f *itemFlags) apply(item *domain.ScheduleItem, cmd *cobra.Command) error {
	set := cmd.Flags().Changed

	if set("subject") {
		item.Subject = f.subject
	}
	if set("category") {
		item.Category = domain.Category(f.category)
	}
	if set("start") {
		item.StartTime = f.start
	}
	if set("end") {
		item.EndTime = f.end
	}
	if set("repeat") {
		item.Repeat = domain.Repeat(f.repeat)
	}
	if set("day") {
		item.RepeatDay = f.day
	}
	if set("date") {
		if f.date == "" {
			item.Date = nil
		} else {
			d, err := time.Parse(dateLayout, f.date)
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", f.date, err)
			}
			item.Date = &d
		}
	}
	if set("color") {
		item.Color = f.color
	}
	if set("location") {
		item.Location = f.location
	}
	if set("notes") {
		item.Notes = f.notes
	}
	if set("remind") {
		item.Reminders = nil
		for _, off := range f.reminders {
			item.Reminders = append(item.Reminders, domain.Reminder{OffsetMin: off})
		}
	}
	return nil
}

func newItemAddCmd(app *App) *cobra.Command {
	var flags itemFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new schedule item",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			item := &domain.ScheduleItem{}

			if err := flags.apply(item, cmd); err != nil {
				return err
			}

			// Without a subject flag, fall back to the interactive form.
			if item.Subject == "" {
				if !app.interactive() {
					return fmt.Errorf("--subject is required")
				}
				if err := runItemForm(item); err != nil {
					return err
				}
			}

			if err := app.Items.Create(ctx, item); err != nil {
				return err
			}
			if err := app.syncNotifications(ctx, item.ID); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s %q (%s)\n", item.Category, item.Subject, item.ID[:8])
			return nil
		},
	}

	flags.register(cmd.Flags())
	return cmd
}

func newItemListCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List schedule items",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var items []*domain.ScheduleItem
			var err error
			if category != "" {
				items, err = app.Items.ListByCategory(ctx, domain.Category(category))
			} else {
				items, err = app.Items.List(ctx)
			}
			if err != nil {
				return err
			}

			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No items found.")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatItemList(items))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category (event, task, habit)")
	return cmd
}

func newItemInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show item details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			item, err := app.Items.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatItemInspect(item, app.now()))
			return nil
		},
	}
}

func newItemUpdateCmd(app *App) *cobra.Command {
	var flags itemFlags

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			item, err := app.Items.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if err := flags.apply(item, cmd); err != nil {
				return err
			}
			if err := app.Items.Update(ctx, item); err != nil {
				return err
			}
			if err := app.syncNotifications(ctx, item.ID); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated %q\n", item.Subject)
			return nil
		},
	}

	flags.register(cmd.Flags())
	return cmd
}

func newItemRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete an item and its pending notifications",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			item, err := app.Items.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if err := app.Items.Delete(ctx, id); err != nil {
				return err
			}
			// The delete cascades in the database; the sync keeps a
			// dispatcher with separate storage consistent too.
			if err := app.syncNotifications(ctx, id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed %q\n", item.Subject)
			return nil
		},
	}
}
