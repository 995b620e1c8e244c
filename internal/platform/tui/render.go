package tui

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

// Glyphs used to draw the arena.
const (
	glyphWall      = '█'
	glyphPaddle    = '█'
	glyphBall      = '●'
	glyphSeparator = '┆'
)

// hudRows is the number of rows above the arena (score line).
const hudRows = 1

// Projection maps arena coordinates onto a grid of terminal cells.
type Projection struct {
	cols, rows     int     // Arena area in cells
	top            int     // First arena row on screen
	worldW, worldH float64 // Arena size in world units
}

// NewProjection fits an arena of worldW x worldH units into cols x rows
// cells starting at row top.
func NewProjection(worldW, worldH float64, cols, rows, top int) Projection {
	return Projection{
		cols:   max(cols, 1),
		rows:   max(rows, 1),
		top:    top,
		worldW: worldW,
		worldH: worldH,
	}
}

// Cell returns the screen cell holding world point (x, y).
func (p Projection) Cell(x, y float64) (int, int) {
	col := int(math.Floor((x + p.worldW/2) / p.worldW * float64(p.cols)))
	row := int(math.Floor((y + p.worldH/2) / p.worldH * float64(p.rows)))
	return core.Clamp(col, 0, p.cols-1), p.top + core.Clamp(row, 0, p.rows-1)
}

// Rect returns the half-open cell range [x0, x1) × [y0, y1) covered by a
// world rectangle. Every rectangle covers at least one cell.
func (p Projection) Rect(r core.Rect) (x0, y0, x1, y1 int) {
	x0, y0 = p.Cell(r.X, r.Y)
	// Subtract a hair so a right edge that lands exactly on a cell boundary
	// does not spill into the next cell.
	x1, y1 = p.Cell(r.Right()-1e-9, r.Bottom()-1e-9)
	return x0, y0, max(x1, x0) + 1, max(y1, y0) + 1
}

// DrawFrame renders a frame into the screen buffer.
func DrawFrame(s *core.Screen, f pong.Frame) {
	s.Clear()
	if s.Width() < 1 || s.Height() <= hudRows {
		return
	}

	proj := NewProjection(f.Width, f.Height, s.Width(), s.Height()-hudRows, hudRows)

	// Centre separator, blended since terminals have no alpha
	sep := core.ColorSeparator.Blend(f.Background)
	x0, y0, _, y1 := proj.Rect(f.Separator)
	for y := y0; y < y1; y++ {
		s.SetColored(x0, y, glyphSeparator, sep)
	}

	for _, w := range f.Walls {
		x0, y0, x1, y1 := proj.Rect(w.Rect())
		s.FillRect(x0, y0, x1, y1, glyphWall, w.Color())
	}

	for _, p := range f.Players {
		x0, y0, x1, y1 := proj.Rect(p.Rect())
		s.FillRect(x0, y0, x1, y1, glyphPaddle, p.Color())
	}

	bx, by := proj.Cell(f.Ball.Rect().Center())
	s.SetColored(bx, by, glyphBall, f.Ball.Color())

	drawHUD(s, f)

	if f.MenuVisible() {
		drawMenu(s, f)
	}
}

// drawHUD writes scores and state on the top row. Player 2 defends the left
// side, so its score is on the left.
func drawHUD(s *core.Screen, f pong.Frame) {
	p1, p2 := f.Scores()
	s.DrawTextColored(1, 0, fmt.Sprintf("P2 %d", p2), core.ColorWhite)

	right := fmt.Sprintf("%d P1", p1)
	s.DrawTextColored(s.Width()-len(right)-1, 0, right, core.ColorWhite)

	status := fmt.Sprintf("round %d", f.Round)
	if f.State != pong.Playing {
		status = strings.ToUpper(f.State.String())
	}
	s.DrawTextCentered(0, status, core.ColorGray)
}

// drawMenu draws the three menu items in a box centred on the screen.
func drawMenu(s *core.Screen, f pong.Frame) {
	items := f.Menu.Items()

	w := 0
	for _, it := range items {
		w = max(w, len(it.Label))
	}
	w += 8
	h := len(items)*2 + 1

	x := (s.Width() - w) / 2
	y := (s.Height() - h) / 2
	s.FillRect(x, y, x+w, y+h, ' ', core.ColorWhite)
	s.DrawBox(x, y, w, h, core.ColorGray)

	for i, it := range items {
		label := "  " + it.Label
		c := it.Text
		if i == f.Menu.SelectedIndex() {
			label = "> " + it.Label
			c = core.ColorHighlight
		}
		s.DrawTextColored(x+2, y+1+i*2, label, c)
	}
}

// DrawOptions draws the read-only settings overlay.
func DrawOptions(s *core.Screen, cfg config.Settings) {
	lines := platform.OptionLines(cfg)

	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 2

	x := (s.Width() - w) / 2
	y := (s.Height() - h) / 2
	s.FillRect(x, y, x+w, y+h, ' ', core.ColorWhite)
	s.DrawBox(x, y, w, h, core.ColorGray)
	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorHighlight
		}
		s.DrawTextColored(x+2, y+1+i, l, c)
	}
}

// styleCache maps colors to lipgloss styles, shared by all sessions.
var styleCache sync.Map // core.Color -> lipgloss.Style

// styleFor returns the foreground style for a color.
func styleFor(c core.Color) lipgloss.Style {
	if v, ok := styleCache.Load(c); ok {
		return v.(lipgloss.Style)
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	styleCache.Store(c, style)
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
