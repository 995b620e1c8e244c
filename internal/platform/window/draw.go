package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

// basicfont.Face7x13 metrics
const (
	glyphWidth  = 7
	glyphAscent = 11
	lineHeight  = 16
)

var face = basicfont.Face7x13

// toScreen converts a centred arena rectangle to image coordinates.
func toScreen(worldW, worldH float64, r core.Rect) (x, y, w, h float32) {
	return float32(r.X + worldW/2), float32(r.Y + worldH/2), float32(r.W), float32(r.H)
}

func fillRect(dst *ebiten.Image, f pong.Frame, r core.Rect, c color.Color) {
	x, y, w, h := toScreen(f.Width, f.Height, r)
	vector.DrawFilledRect(dst, x, y, w, h, c, false)
}

// textWidth returns the width of s in pixels.
func textWidth(s string) int {
	return len([]rune(s)) * glyphWidth
}

// drawFrame draws the arena, the HUD and, while not playing, the menu.
func drawFrame(dst *ebiten.Image, f pong.Frame) {
	dst.Fill(f.Background.NRGBA())

	fillRect(dst, f, f.Separator, core.ColorSeparator.NRGBA())
	for _, w := range f.Walls {
		fillRect(dst, f, w.Rect(), w.Color().NRGBA())
	}
	for _, p := range f.Players {
		fillRect(dst, f, p.Rect(), p.Color().NRGBA())
	}
	fillRect(dst, f, f.Ball.Rect(), f.Ball.Color().NRGBA())

	drawHUD(dst, f)

	if f.MenuVisible() {
		drawMenu(dst, f)
	}
}

// drawHUD writes the scores inside the top wall. Player 2 defends the left
// side, so its score is on the left.
func drawHUD(dst *ebiten.Image, f pong.Frame) {
	p1, p2 := f.Scores()
	w := int(f.Width)
	y := int(f.Walls[0].Rect().Bottom()+f.Height/2) + lineHeight

	left := fmt.Sprintf("P2 %d", p2)
	text.Draw(dst, left, face, w/4-textWidth(left)/2, y, core.ColorWhite.NRGBA())

	right := fmt.Sprintf("%d P1", p1)
	text.Draw(dst, right, face, w*3/4-textWidth(right)/2, y, core.ColorWhite.NRGBA())

	status := fmt.Sprintf("round %d", f.Round)
	if f.State != pong.Playing {
		status = f.State.String()
	}
	text.Draw(dst, status, face, (w-textWidth(status))/2, y+lineHeight, core.ColorGray.NRGBA())
}

// menuRect places item i of the menu centred on the arena, keeping the
// vertical spacing of the item layout.
func menuRect(m pong.Menu, i int) core.Rect {
	items := m.Items()
	mid := items[len(items)/2].Rect
	r := items[i].Rect
	return r.Translate(-r.X-r.W/2, -mid.Y-mid.H/2)
}

func drawMenu(dst *ebiten.Image, f pong.Frame) {
	for i, it := range f.Menu.Items() {
		r := menuRect(f.Menu, i)

		bg, fg := it.Background, it.Text
		if i == f.Menu.SelectedIndex() {
			bg, fg = it.Text, it.Background
		}
		fillRect(dst, f, r, bg.NRGBA())

		x, y, w, h := toScreen(f.Width, f.Height, r)
		vector.StrokeRect(dst, x, y, w, h, 1, it.Text.NRGBA(), false)
		tx := int(x) + (int(w)-textWidth(it.Label))/2
		ty := int(y) + (int(h)+glyphAscent)/2
		text.Draw(dst, it.Label, face, tx, ty, fg.NRGBA())
	}
}

// drawOptions draws the read-only settings overlay.
func drawOptions(dst *ebiten.Image, f pong.Frame, lines []string) {
	w := 0
	for _, l := range lines {
		w = max(w, textWidth(l))
	}
	w += 2 * glyphWidth * 2
	h := (len(lines) + 1) * lineHeight

	x := (int(f.Width) - w) / 2
	y := (int(f.Height) - h) / 2
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), core.ColorBlack.NRGBA(), false)
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 1, core.ColorGray.NRGBA(), false)

	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorHighlight
		}
		text.Draw(dst, l, face, x+2*glyphWidth, y+(i+1)*lineHeight, c.NRGBA())
	}
}
