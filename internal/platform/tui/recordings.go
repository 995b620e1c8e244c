package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/replay"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// maxRecordings is how many rows the browser loads.
const maxRecordings = 100

// RecordingsKeyMap defines the key bindings for the recordings browser.
type RecordingsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Replay key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RecordingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Replay, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RecordingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Replay, k.Delete, k.Quit},
	}
}

// DefaultRecordingsKeyMap returns default key bindings.
func DefaultRecordingsKeyMap() RecordingsKeyMap {
	return RecordingsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Replay: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "replay"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RecordingsModel is the Bubble Tea model for browsing stored recordings.
type RecordingsModel struct {
	store    *storage.Store
	entries  []storage.RecordingEntry
	table    table.Model
	help     help.Model
	keys     RecordingsKeyMap
	width    int
	height   int
	status   string // Result of the last replay or delete
	quitting bool
}

// NewRecordingsModel creates a browser over the store's recordings.
func NewRecordingsModel(store *storage.Store, width, height int) RecordingsModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := RecordingsModel{
		store:  store,
		keys:   DefaultRecordingsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *RecordingsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Via", Width: 7},
		{Title: "Score", Width: 9},
		{Title: "Rounds", Width: 7},
		{Title: "Ticks", Width: 8},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, status and help
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

	return t
}

// load reads recordings from the store into the table.
func (m *RecordingsModel) load() {
	m.entries = nil
	if m.store != nil {
		entries, err := m.store.Recordings(maxRecordings)
		if err != nil {
			m.status = err.Error()
		} else {
			m.entries = entries
		}
	}
	m.table.SetRows(RecordingRows(m.entries))
}

// RecordingRows formats entries as table rows. Player 2 defends the left
// side, so the score reads "p2 - p1" as on screen.
func RecordingRows(entries []storage.RecordingEntry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", e.ID),
			e.Frontend,
			fmt.Sprintf("%d - %d", e.Score2, e.Score1),
			fmt.Sprintf("%d", e.Rounds),
			fmt.Sprintf("%d", e.Ticks),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// selected returns the highlighted entry.
func (m RecordingsModel) selected() (storage.RecordingEntry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.entries) {
		return storage.RecordingEntry{}, false
	}
	return m.entries[i], true
}

// Init initializes the browser.
func (m RecordingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m RecordingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Replay):
			if e, ok := m.selected(); ok {
				m.status = m.replay(e.ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if e, ok := m.selected(); ok && m.store != nil {
				if err := m.store.DeleteRecording(e.ID); err != nil {
					m.status = err.Error()
				} else {
					m.status = fmt.Sprintf("deleted #%d", e.ID)
				}
				cursor := m.table.Cursor()
				m.load()
				m.table.SetCursor(min(cursor, max(len(m.entries)-1, 0)))
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetRows(RecordingRows(m.entries))
		m.table.SetCursor(cursor)
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// replay re-runs a recording and describes its final frame.
func (m RecordingsModel) replay(id int64) string {
	rec, err := m.store.LoadRecording(id)
	if err != nil {
		return err.Error()
	}
	f, err := replay.Play(rec)
	if err != nil {
		return fmt.Sprintf("#%d: %v", id, err)
	}
	return fmt.Sprintf("#%d: %s", id, replay.Summarize(f))
}

// View renders the browser.
func (m RecordingsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("RECORDINGS", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(tableStyle.Render(emptyStyle.Render("No recordings yet.\nPlay with --record to keep a session.")))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Status returns the result line of the last action.
func (m RecordingsModel) Status() string {
	return m.status
}

// centerText pads text with spaces to centre it in width columns.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	return strings.Repeat(" ", (width-textWidth)/2) + text
}

// RunRecordings runs the recordings browser.
func RunRecordings(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewRecordingsModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
