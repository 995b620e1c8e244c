package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// Model is the Bubble Tea model running one game session.
type Model struct {
	session *platform.Session
	sound   *audio.SoundManager
	store   *storage.Store
	logger  *log.Logger

	screen      *core.Screen
	keys        KeyMap
	help        help.Model
	tickRate    int
	showOptions bool
	quitting    bool
}

// Options configures a Model. Sound, Store and Logger are optional.
type Options struct {
	Session  *platform.Session
	Sound    *audio.SoundManager
	Store    *storage.Store
	Logger   *log.Logger
	Width    int
	Height   int
	TickRate int
}

// NewModel creates a model for the given session.
func NewModel(opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultTickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false
	h.Width = opts.Width

	return Model{
		session:  opts.Session,
		sound:    opts.Sound,
		store:    opts.Store,
		logger:   opts.Logger,
		screen:   core.NewScreen(opts.Width, arenaRows(opts.Height)),
		keys:     DefaultKeyMap(),
		help:     h,
		tickRate: opts.TickRate,
	}
}

// arenaRows leaves the bottom row for the help bar.
func arenaRows(height int) int {
	return max(height-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, arenaRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Esc closes the overlay before it quits
	if m.showOptions {
		switch {
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Select):
			m.showOptions = false
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}

	if key.Matches(msg, m.keys.Select) {
		switch platform.Activate(m.session.Sim) {
		case platform.OutcomeShowOptions:
			m.showOptions = true
		case platform.OutcomeQuit:
			return m.quit()
		}
		return m, nil
	}

	if k, ok := m.keys.GameKey(msg); ok {
		m.session.Sim.KeyPressed(k)
	}
	return m, nil
}

// handleTick advances the simulation by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	if m.session.Sim.IsPlaying() {
		res := m.session.Sim.Update()
		if len(res.Events) > 0 {
			if m.sound != nil {
				m.sound.PlayEvents(res.Events)
			}
			for _, ev := range res.Events {
				m.logger.Debug("event", "kind", ev.Kind, "player", ev.Player, "wall", ev.Wall)
			}
		}
	}

	return m, tickCmd(m.tickRate)
}

// quit saves the recording, if any, and stops the program.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if id, err := m.session.Save(m.store); err != nil {
		m.logger.Error("could not save recording", "error", err)
	} else if id != 0 {
		m.logger.Info("recording saved", "id", id)
	}
	return m, tea.Quit
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawFrame(m.screen, m.session.Sim.Frame())
	if m.showOptions {
		DrawOptions(m.screen, m.session.Settings)
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Quitting reports whether the model has been asked to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
