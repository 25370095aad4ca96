package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/box-arcade/internal/core"
	"github.com/vovakirdan/box-arcade/internal/registry"
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID   string
	Title    string
	Field    string
	Controls string
}

// MenuItems describes every registered game, creating each once to read its
// key bindings.
func MenuItems(opts registry.Options) ([]MenuItem, error) {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, info := range games {
		g, err := registry.Create(info.ID, opts)
		if err != nil {
			return nil, err
		}
		items = append(items, MenuItem{
			GameID:   info.ID,
			Title:    g.Title(),
			Field:    fmt.Sprintf("%dx%d", info.Width, info.Height),
			Controls: DescribeBindings(g.Bindings()),
		})
	}
	return items, nil
}

// DescribeBindings summarizes bindings per player, e.g. "P1 w/s  P2 up/down".
// The quit binding is left out.
func DescribeBindings(bindings []core.Binding) string {
	var order []core.PlayerID
	keys := make(map[core.PlayerID][]string)
	for _, b := range bindings {
		if b.Action == core.ActionQuit {
			continue
		}
		if _, ok := keys[b.Player]; !ok {
			order = append(order, b.Player)
		}
		name := b.Key
		if name == " " {
			name = "space"
		}
		keys[b.Player] = append(keys[b.Player], name)
	}

	parts := make([]string, 0, len(order))
	for _, p := range order {
		parts = append(parts, p.String()+" "+strings.Join(keys[p], "/"))
	}
	return strings.Join(parts, "  ")
}

// MenuKeyMap defines the key bindings for the menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

var titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 2)

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items    []MenuItem
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	selected string
	quitting bool
}

// NewMenuModel creates a new menu model listing items.
func NewMenuModel(items []MenuItem) MenuModel {
	rows := make([]table.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, table.Row{it.GameID, it.Title, it.Field, it.Controls})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 8},
			{Title: "Title", Width: 16},
			{Title: "Field", Width: 10},
			{Title: "Controls", Width: 40},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return MenuModel{
		items: items,
		table: t,
		help:  help.New(),
		keys:  DefaultMenuKeyMap(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if len(m.items) > 0 {
				m.selected = m.items[m.table.Cursor()].GameID
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}
	return titleStyle.Render("B O X   A R C A D E") + "\n" +
		m.table.View() + "\n\n" +
		m.help.View(m.keys) + "\n"
}

// Selected returns the chosen game id, or "" if none was chosen.
func (m MenuModel) Selected() string {
	return m.selected
}

// RunMenu shows the menu and returns the chosen game id.
// An empty id means the user quit.
func RunMenu(items []MenuItem) (string, error) {
	p := tea.NewProgram(NewMenuModel(items), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}
