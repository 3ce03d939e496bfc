package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/agenda/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPrefsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change preferences",
	}

	cmd.AddCommand(newPrefsShowCmd(app), newPrefsSetCmd(app))
	return cmd
}

func newPrefsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := app.Prefs.Get(context.Background())
			if err != nil {
				return err
			}

			onOff := func(b bool) string {
				if b {
					return formatter.StyleGreen.Render("on")
				}
				return formatter.Dim("off")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", formatter.Header("Preferences"))
			fmt.Fprintf(out, "%s %s\n", formatter.Dim("Notifications"), onOff(prefs.NotifyEnabled))
			fmt.Fprintf(out, "%s %s\n", formatter.Dim("Sound        "), onOff(prefs.Sound))
			fmt.Fprintf(out, "%s %s\n", formatter.Dim("Tone         "), prefs.ReminderTone)
			fmt.Fprintf(out, "%s %s\n", formatter.Dim("Default view "), prefs.DefaultView)
			return nil
		},
	}
}

func newPrefsSetCmd(app *App) *cobra.Command {
	var notify, sound, tone, view string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			prefs, err := app.Prefs.Get(ctx)
			if err != nil {
				return err
			}

			set := cmd.Flags().Changed
			if set("notify") {
				prefs.NotifyEnabled, err = parseOnOff(notify)
				if err != nil {
					return err
				}
			}
			if set("sound") {
				prefs.Sound, err = parseOnOff(sound)
				if err != nil {
					return err
				}
			}
			if set("tone") {
				prefs.ReminderTone = tone
			}
			if set("view") {
				prefs.DefaultView = view
			}

			if err := app.Prefs.Update(ctx, prefs); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Preferences updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&notify, "notify", "", "Enable notifications (on, off)")
	cmd.Flags().StringVar(&sound, "sound", "", "Enable sound (on, off)")
	cmd.Flags().StringVar(&tone, "tone", "", "Reminder tone name")
	cmd.Flags().StringVar(&view, "view", "", "Default view (daily, weekly)")
	return cmd
}

func parseOnOff(s string) (bool, error) {
	switch s {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("expected on or off, got %q", s)
	}
}
