package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/agenda/internal/cli/formatter"
	"github.com/alexanderramin/agenda/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// watchTick drives the live status refresh.
const watchTick = 60 * time.Second

type watchKeyMap struct {
	PrevDay key.Binding
	NextDay key.Binding
	Today   key.Binding
	Quit    key.Binding
}

func defaultWatchKeyMap() watchKeyMap {
	return watchKeyMap{
		PrevDay: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "jump to today"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k watchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevDay, k.NextDay, k.Today, k.Quit}
}

func (k watchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type watchTickMsg time.Time

type watchBoardMsg struct {
	board *service.DayBoard
	err   error
}

// watchModel is the bubbletea model for the live agenda view. The offset
// tracks the shown day relative to today, so paging survives midnight.
type watchModel struct {
	app    *App
	offset int
	now    time.Time
	board  *service.DayBoard
	err    error
	keys   watchKeyMap
	help   help.Model
}

func newWatchModel(app *App) watchModel {
	return watchModel{
		app:  app,
		now:  app.now(),
		keys: defaultWatchKeyMap(),
		help: help.New(),
	}
}

func (m watchModel) shownDay() time.Time {
	return m.now.AddDate(0, 0, m.offset)
}

func (m watchModel) loadBoard() tea.Cmd {
	day := m.shownDay()
	now := m.now
	app := m.app
	return func() tea.Msg {
		board, err := app.Agenda.Day(context.Background(), day, now)
		return watchBoardMsg{board: board, err: err}
	}
}

func watchTickCmd() tea.Cmd {
	return tea.Tick(watchTick, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.loadBoard(), watchTickCmd())
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case watchTickMsg:
		m.now = m.app.now()
		return m, tea.Batch(m.loadBoard(), watchTickCmd())

	case watchBoardMsg:
		m.board = msg.board
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.PrevDay):
			m.offset--
			return m, m.loadBoard()
		case key.Matches(msg, m.keys.NextDay):
			m.offset++
			return m, m.loadBoard()
		case key.Matches(msg, m.keys.Today):
			m.offset = 0
			m.now = m.app.now()
			return m, m.loadBoard()
		}
	}

	return m, nil
}

func (m watchModel) View() string {
	var body string
	switch {
	case m.err != nil:
		body = formatter.StyleRed.Render(fmt.Sprintf("Error: %v", m.err))
	case m.board == nil:
		body = formatter.Dim("Loading...")
	default:
		body = formatter.FormatDayBoard(m.board)
	}
	return body + "\n" + m.help.View(m.keys) + "\n"
}

func newWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Live agenda view that refreshes every minute",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("watch requires an interactive terminal")
			}
			p := tea.NewProgram(newWatchModel(app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}
