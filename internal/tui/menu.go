// Package tui provides the interactive menu front end, standing in for
// the tray widget when shuttle runs from a terminal.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shuttlehq/shuttle/internal/logging"
	"github.com/shuttlehq/shuttle/internal/menu"
	"github.com/shuttlehq/shuttle/internal/settings"
)

// Action represents what the caller should do after the menu closes
type Action int

const (
	ActionNone Action = iota
	ActionLaunch
	ActionConfigure
	ActionQuit
)

// Result holds the user's choice when the menu loop ends
type Result struct {
	Action Action
	// Command is set for ActionLaunch.
	Command string
}

// menuItem implements list.Item for menu rows
type menuItem struct {
	row menu.Item
}

func (i menuItem) Title() string {
	indent := strings.Repeat("  ", i.row.Depth)
	if i.row.Group {
		return indent + i.row.Title + "/"
	}
	return indent + i.row.Title
}

func (i menuItem) Description() string {
	if i.row.Group {
		return "submenu"
	}
	switch i.row.ID {
	case menu.IDConfigure:
		return "open the config file in your editor"
	case menu.IDReload:
		return "reload settings from disk"
	case menu.IDQuit:
		return "exit"
	}
	return i.row.Command
}

func (i menuItem) FilterValue() string {
	return i.row.Title
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// Model is the bubbletea model for the launcher menu
type Model struct {
	list     list.Model
	store    *settings.Store
	result   Result
	quitting bool
	width    int
	height   int
}

// NewMenu creates a menu over the store's current snapshot
func NewMenu(store *settings.Store) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(buildItems(store.Current()), delegate, 80, 24)
	l.Title = "Shuttle"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return Model{
		list:  l,
		store: store,
	}
}

// buildItems flattens a snapshot into list rows. Separators are purely
// visual in a tray menu and are dropped here; the list has its own
// spacing.
func buildItems(s *settings.Settings) []list.Item {
	rows := menu.Items(s)
	items := make([]list.Item, 0, len(rows))
	for _, row := range rows {
		if row.Separator {
			continue
		}
		items = append(items, menuItem{row: row})
	}
	return items
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// Don't handle keys if filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			item, ok := m.list.SelectedItem().(menuItem)
			if !ok || item.row.Group {
				break
			}
			switch item.row.ID {
			case menu.IDQuit:
				m.result = Result{Action: ActionQuit}
				m.quitting = true
				return m, tea.Quit
			case menu.IDConfigure:
				m.result = Result{Action: ActionConfigure}
				m.quitting = true
				return m, tea.Quit
			case menu.IDReload:
				return m.reload()
			default:
				if item.row.Command != "" {
					m.result = Result{Action: ActionLaunch, Command: item.row.Command}
					m.quitting = true
					return m, tea.Quit
				}
			}

		case "r":
			return m.reload()

		case "q", "esc":
			m.result = Result{Action: ActionQuit}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// reload builds a fresh snapshot and swaps it into the store. A failed
// reload keeps the current snapshot on screen.
func (m Model) reload() (tea.Model, tea.Cmd) {
	next, err := settings.Load()
	if err != nil {
		logging.Warn("reload failed", "error", err)
		return m, m.list.NewStatusMessage("reload failed: " + err.Error())
	}
	m.store.Replace(next)
	cmd := m.list.SetItems(buildItems(next))
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("[enter] Launch  [r] Reload  [/] Filter  [q] Quit")

	return m.list.View() + "\n" + help
}

// Result returns the menu result
func (m Model) Result() Result {
	return m.result
}

// RunMenu runs the interactive launcher menu over store
func RunMenu(store *settings.Store) (Result, error) {
	m := NewMenu(store)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	return finalModel.(Model).Result(), nil
}
