package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/box-arcade/internal/core"
	"github.com/vovakirdan/box-arcade/internal/registry"
)

var statusStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("229")).
	Background(lipgloss.Color("57")).
	Padding(0, 1)

// Model is the Bubble Tea model for running one game in the terminal.
type Model struct {
	game     registry.Game
	loop     *core.Loop
	screen   *core.Screen
	keys     *HeldKeys
	taps     map[string]bool // Keys bound to one-shot actions such as flap
	styles   styleCache
	config   core.RuntimeConfig
	state    core.GameState
	quitting bool
}

// NewModel resets game with cfg and wraps it in a loop sized to the field.
func NewModel(game registry.Game, cfg core.RuntimeConfig, width, height int, onEvent func(core.Event)) Model {
	game.Reset(cfg)
	w, h := game.Field()
	loop := core.NewLoop(game, w, h, cfg.TickRate)
	loop.OnEvent = onEvent

	taps := make(map[string]bool)
	for _, b := range game.Bindings() {
		if b.Action == core.ActionFlap {
			taps[b.Key] = true
		}
	}

	return Model{
		game:   game,
		loop:   loop,
		screen: core.NewScreen(width, max(height-1, 1)),
		keys:   NewHeldKeys(DefaultInitialHold, DefaultRepeatHold),
		taps:   taps,
		styles: make(styleCache),
		config: cfg,
		state:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		// One line is kept for the status bar.
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records a press of any bound key.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.taps[key] {
		m.keys.Tap(key, now, m.loop.Budget())
	} else {
		m.keys.Press(key, now)
	}
	return m, nil
}

// handleTick runs one loop tick on the keys held at now.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frame := core.FrameFromKeys(m.game.Bindings(), func(key string) bool {
		return m.keys.Held(key, now)
	})
	m.keys.Expire(now)

	m.state = m.loop.Tick(frame).State
	if m.loop.Done() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// View renders the last frame plus a status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Rasterize(m.loop.Canvas())
	if banner := m.banner(); banner != "" {
		m.screen.DrawTextCentered(m.screen.Height()/2, banner, core.ColorWhite)
	}
	return RenderScreen(m.screen, m.styles) + "\n" + statusStyle.Render(m.status())
}

// banner is the text overlaid on the middle row, if any.
func (m Model) banner() string {
	switch {
	case m.state.GameOver:
		return "GAME OVER"
	case m.state.Idle:
		return "PRESS TO START"
	}
	return ""
}

// status describes the game state in one line.
func (m Model) status() string {
	line := m.game.Title()
	switch {
	case m.state.GameOver:
		line += fmt.Sprintf("  health %d  game over", m.state.Health)
	case len(m.state.Scores) > 0:
		line += fmt.Sprintf("  scores %v", m.state.Scores)
	case m.state.Health > 0:
		line += fmt.Sprintf("  health %d", m.state.Health)
	default:
		line += fmt.Sprintf("  score %d", m.state.Score)
	}
	if m.state.Idle {
		line += "  (press to start)"
	}
	return line + "  esc: quit"
}

// Ticks returns the number of ticks run so far.
func (m Model) Ticks() int {
	return m.loop.Ticks()
}

// Run starts the Bubble Tea program for game and blocks until it quits.
func Run(game registry.Game, cfg core.RuntimeConfig, width, height int, onEvent func(core.Event)) error {
	model := NewModel(game, cfg, width, height, onEvent)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
