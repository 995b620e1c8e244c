package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Menu item layout
const (
	MenuItemWidth  = 200.0
	MenuItemHeight = 30.0
	MenuItemMargin = 15.0
)

// MenuAction identifies what a menu item does when activated.
type MenuAction int

const (
	MenuResume MenuAction = iota
	MenuOptions
	MenuQuit
)

// String returns a human-readable name for the action.
func (a MenuAction) String() string {
	switch a {
	case MenuResume:
		return "Resume"
	case MenuOptions:
		return "Options"
	case MenuQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// MenuItem is one entry of the pause menu.
type MenuItem struct {
	Index      int // 1-based position
	Label      string
	Action     MenuAction
	Rect       core.Rect
	Text       core.Color
	Background core.Color
}

// newMenuItem lays an item out below the previous ones.
func newMenuItem(index int, action MenuAction) MenuItem {
	y := float64(index) * ((MenuItemHeight + MenuItemMargin) * 2)
	return MenuItem{
		Index:      index,
		Label:      action.String(),
		Action:     action,
		Rect:       core.NewRect(0, y, MenuItemWidth, MenuItemHeight),
		Text:       core.ColorWhite,
		Background: core.ColorBlack,
	}
}

// Menu is the fixed three-entry list shown while the game is not playing.
type Menu struct {
	items    [3]MenuItem
	selected int
}

// NewMenu creates the menu with the first item selected.
func NewMenu() Menu {
	return Menu{
		items: [3]MenuItem{
			newMenuItem(1, MenuResume),
			newMenuItem(2, MenuOptions),
			newMenuItem(3, MenuQuit),
		},
	}
}

// Items returns the menu entries in display order.
func (m Menu) Items() [3]MenuItem { return m.items }

// SelectedIndex returns the highlighted entry, 0..2.
func (m Menu) SelectedIndex() int { return m.selected }

// Selected returns the highlighted entry.
func (m Menu) Selected() MenuItem { return m.items[m.selected] }

// Previous moves the highlight up, wrapping from the first entry to the last.
func (m *Menu) Previous() {
	if m.selected == 0 {
		m.selected = len(m.items) - 1
		return
	}
	m.selected--
}

// Next moves the highlight down, wrapping from the last entry to the first.
func (m *Menu) Next() {
	if m.selected == len(m.items)-1 {
		m.selected = 0
		return
	}
	m.selected++
}
