package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/agenda/internal/notify"
	"github.com/alexanderramin/agenda/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Items  service.ItemService
	Agenda service.AgendaService
	Prefs  service.PreferencesService
	Notify *notify.Dispatcher

	// IsInteractive reports whether stdin is a terminal; interactive
	// forms are only offered when it returns true.
	IsInteractive func() bool

	// Now supplies the reference instant; tests pin it.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// syncNotifications replans the pending notifications for one item after a
// mutation. A nil dispatcher (notifications disabled) is a no-op.
func (a *App) syncNotifications(ctx context.Context, itemID string) error {
	if a.Notify == nil {
		return nil
	}
	return a.Notify.SyncItem(ctx, itemID, a.now())
}

// NewRootCmd creates the top-level "agenda" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "agenda",
		Short: "Personal schedule, task, and habit tracker",
	}

	root.AddCommand(
		newItemCmd(app),
		newTodayCmd(app),
		newWeekCmd(app),
		newWatchCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newPrefsCmd(app),
		newNotifyCmd(app),
	)

	return root
}
