package jumper

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Visual characters for rendering
const (
	BodyChar     = '█'
	BodyDotChar  = '●'
	ShineChar    = '▪'
	PlatformChar = '▀'
	SparkChar    = '*'
	EmberChar    = '·'
	ChargeFull   = '●'
	ChargeEmpty  = '○'
)

// Minimum terminal size the layout stays readable at.
const (
	minScreenW = 40
	minScreenH = 16
)

var instructions = []string{
	"LEFT/RIGHT - Move",
	"SPACE - Boost Jump (when in air)",
	"M - Toggle Sound",
	"R - Restart (when game over)",
	"ENTER - Start    Q - Quit",
}

// Render draws the current game state to the screen.
func (m *Machine) Render(dst *core.Screen) {
	DrawView(dst, m.View())
}

// DrawView draws a snapshot scaled from world units to the screen's cells.
func DrawView(dst *core.Screen, v View) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w < minScreenW || h < minScreenH {
		dst.DrawTextCentered(h/2, "Terminal too small")
		dst.DrawTextCentered(h/2+1, fmt.Sprintf("need %dx%d", minScreenW, minScreenH))
		return
	}

	c := canvas{dst: dst, world: config.WorldConfig{Width: v.World.X, Height: v.World.Y}}

	c.drawStars(v.Stars)

	switch v.State {
	case StateMenu.String():
		c.drawMenu(v)
	default:
		c.drawWorld(v)
		c.drawHUD(v)
		if v.State == StateGameOver.String() {
			c.drawGameOver(v)
		}
	}

	if v.Status != "" {
		c.centerText(h-1, v.Status, core.ColorWhite)
	}
}

// canvas maps world coordinates onto a screen.
type canvas struct {
	dst   *core.Screen
	world config.WorldConfig
}

func (c canvas) cell(p core.Vec2) (int, int) {
	return worldToCell(p, c.dst.Width(), c.dst.Height(), c.world)
}

func (c canvas) row(y float64) int {
	_, r := c.cell(core.Vec2{Y: y})
	return r
}

func (c canvas) drawStars(stars []StarView) {
	for _, s := range stars {
		x, y := c.cell(s.Pos)
		r := '.'
		switch {
		case s.Size >= 3:
			r = '*'
		case s.Size == 2:
			r = '+'
		}
		c.dst.SetColored(x, y, r, core.Gray(s.Brightness))
	}
}

func (c canvas) drawWorld(v View) {
	for _, p := range v.Platforms {
		x0, y := c.cell(core.Vec2{X: p.Rect.Left(), Y: p.Rect.Top()})
		x1, _ := c.cell(core.Vec2{X: p.Rect.Right(), Y: p.Rect.Top()})
		color := core.ColorHighlight
		if p.Visited {
			color = core.ColorPlatform
		}
		for x := x0; x < max(x1, x0+1); x++ {
			c.dst.SetColored(x, y, PlatformChar, color)
		}
	}

	// Particles sit behind the body.
	for _, p := range v.Particles {
		x, y := c.cell(p.Pos)
		r := EmberChar
		if p.Radius >= 3 {
			r = SparkChar
		}
		c.dst.SetColored(x, y, r, p.Color)
	}

	c.drawBody(v.Body)
}

// drawBody fills every cell whose center lies inside the body's circle.
func (c canvas) drawBody(b BodyView) {
	sw, sh := c.dst.Width(), c.dst.Height()
	x0, y0 := c.cell(core.Vec2{X: b.Pos.X - b.Radius, Y: b.Pos.Y - b.Radius})
	x1, y1 := c.cell(core.Vec2{X: b.Pos.X + b.Radius, Y: b.Pos.Y + b.Radius})

	drawn := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := cellToWorld(core.Point{X: x, Y: y}, sw, sh, c.world)
			if math.Hypot(p.X-b.Pos.X, p.Y-b.Pos.Y) <= b.Radius {
				c.dst.SetColored(x, y, BodyChar, core.ColorRed)
				drawn = true
			}
		}
	}

	cx, cy := c.cell(b.Pos)
	if !drawn {
		c.dst.SetColored(cx, cy, BodyDotChar, core.ColorRed)
		return
	}
	sx, sy := c.cell(core.Vec2{X: b.Pos.X - b.Radius*0.3, Y: b.Pos.Y - b.Radius*0.3})
	if c.dst.GetCell(sx, sy).Rune == BodyChar {
		c.dst.SetColored(sx, sy, ShineChar, core.ColorBodyShine)
	}
}

func (c canvas) drawHUD(v View) {
	c.dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", v.Stats.Score), core.ColorWhite)
	c.dst.DrawTextColored(14, 0, fmt.Sprintf("Height: %d", v.Stats.MaxHeight), core.ColorOverlayText)

	label := "Boosts: "
	x := c.dst.Width() - 1 - utf8.RuneCountInString(label) - v.BoostMax
	c.dst.DrawTextColored(x, 0, label, core.ColorWhite)
	x += utf8.RuneCountInString(label)
	for i := 0; i < v.BoostMax; i++ {
		if i < v.BoostCharges {
			c.dst.SetColored(x+i, 0, ChargeFull, core.ColorOrange)
		} else {
			c.dst.SetColored(x+i, 0, ChargeEmpty, core.ColorBoostGlow)
		}
	}
}

func (c canvas) drawMenu(v View) {
	x0, y0 := c.cell(core.Vec2{X: 50, Y: 50 * c.world.Height / layoutRefH})
	x1, y1 := c.cell(core.Vec2{X: c.world.Width - 50, Y: c.world.Height - 50*c.world.Height/layoutRefH})
	box := core.NewRect(x0, y0, x1-x0, y1-y0)
	c.dst.DrawRect(box, ' ')
	c.dst.DrawBox(box)

	sy := c.world.Height / layoutRefH
	c.centerText(c.row(85*sy), "PLATFORMER JUMPER", core.ColorYellow)

	sound := "SOUND: OFF"
	if v.SoundEnabled {
		sound = "SOUND: ON"
	}
	c.drawButton(v.Buttons["start"], "START GAME", core.ColorGreen)
	c.drawButton(v.Buttons["sound"], sound, core.ColorBlue)

	top := c.row(355 * sy)
	c.centerText(top, "Instructions:", core.ColorWhite)
	for i, line := range instructions {
		if top+1+i >= y1 {
			break
		}
		c.centerText(top+1+i, line, core.ColorOverlayText)
	}
}

func (c canvas) drawGameOver(v View) {
	sy := c.world.Height / layoutRefH
	c.centerText(c.row(200*sy), "GAME OVER! Press R to restart", core.ColorWhite)
	c.centerText(c.row(240*sy), fmt.Sprintf("Final Score: %d", v.Stats.Score), core.ColorWhite)
	c.centerText(c.row(280*sy), "Final Stats:", core.ColorYellow)

	stats := []string{
		fmt.Sprintf("Maximum Height: %d units", v.Stats.MaxHeight),
		fmt.Sprintf("Platforms Landed: %d", v.Stats.PlatformsLanded),
		fmt.Sprintf("Boost Jumps Used: %d", v.Stats.BoostsUsed),
		fmt.Sprintf("Game Time: %d:%02d", v.Stats.ElapsedSeconds/60, v.Stats.ElapsedSeconds%60),
	}
	row := c.row(310 * sy)
	for i, s := range stats {
		c.centerText(row+i, s, core.ColorOverlayText)
	}

	c.drawButton(v.Buttons["menu"], "Return to Menu", core.ColorBlue)
}

// drawButton draws a bracketed label on the row through the region's center.
func (c canvas) drawButton(r core.RectF, label string, color core.RGB) {
	if r.W <= 0 {
		return
	}
	x0, y := c.cell(core.Vec2{X: r.Left(), Y: r.Top() + r.H/2})
	x1, _ := c.cell(core.Vec2{X: r.Right(), Y: r.Top()})
	x1--
	for x := x0; x <= x1; x++ {
		c.dst.Set(x, y, ' ')
	}
	c.dst.SetColored(x0, y, '[', core.ColorWhite)
	c.dst.SetColored(x1, y, ']', core.ColorWhite)
	n := utf8.RuneCountInString(label)
	c.dst.DrawTextColored(x0+(x1-x0+1-n)/2, y, label, color)
}

// centerText writes text centered on row y over a cleared background.
func (c canvas) centerText(y int, text string, color core.RGB) {
	padded := " " + text + " "
	x := (c.dst.Width() - utf8.RuneCountInString(padded)) / 2
	c.dst.DrawTextColored(x, y, padded, color)
}
