package volley

import (
	"fmt"

	"github.com/vovakirdan/doggo-volley/internal/core"
)

// Visual characters for rendering
const (
	BallChar   = '●'
	GroundChar = '═'
	GroundFill = '░'
	NetChar    = '║'
	NetTopChar = '╦'
)

// bodyRune maps the animation state to the character fill, so the idle/walk/
// run classifier is visible in the terminal.
func bodyRune(a AnimState) rune {
	switch a {
	case AnimWalk:
		return '▓'
	case AnimRun:
		return '▒'
	default:
		return '█'
	}
}

// Render draws the current match state to the screen, scaling world
// coordinates (default 800x600) onto the terminal cell grid.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.match == nil {
		return
	}

	m := g.match
	court := m.Court()
	sx := float64(dst.Width()) / float64(court.W)
	sy := float64(dst.Height()) / float64(court.H)

	// Ground
	groundRow := int(float64(court.GroundY) * sy)
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar)
	for y := groundRow + 1; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			dst.SetColored(x, y, GroundFill, core.ColorGreen)
		}
	}

	// Net
	netCol := int((float64(court.Net.X) + float64(court.Net.W)/2) * sx)
	netTopRow := int(float64(court.Net.Y) * sy)
	dst.SetColored(netCol, netTopRow, NetTopChar, core.ColorWhite)
	for y := netTopRow + 1; y <= groundRow; y++ {
		dst.SetColored(netCol, y, NetChar, core.ColorWhite)
	}

	// Characters
	g.drawCharacter(dst, m.Player, core.ColorBrightCyan, sx, sy)
	g.drawCharacter(dst, m.AI, core.ColorBrightRed, sx, sy)

	// Ball (blinks while a serve is staged)
	if m.Phase() != PhaseServing || (m.Ticks()/10)%2 == 0 {
		bx := int(m.Ball.X * sx)
		by := int(m.Ball.Y * sy)
		dst.SetColored(bx, by, BallChar, core.ColorBrightYellow)
	}

	g.drawHUD(dst)
}

// drawCharacter renders one character as a scaled block with a facing mark.
func (g *Game) drawCharacter(dst *core.Screen, c *Character, color core.Color, sx, sy float64) {
	r := c.Rect()
	x0 := int(float64(r.X) * sx)
	y0 := int(float64(r.Y) * sy)
	x1 := int(float64(r.Right()) * sx)
	y1 := int(float64(r.Bottom()) * sy)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	fill := bodyRune(c.Anim)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, fill, color)
		}
	}

	// Eye on the facing edge.
	eyeX := x0
	if c.Facing > 0 {
		eyeX = x1 - 1
	}
	dst.SetColored(eyeX, y0, '◉', core.ColorBrightWhite)
}

// drawHUD renders the score line, serve instructions, the charge meter, and
// phase banners.
func (g *Game) drawHUD(dst *core.Screen) {
	m := g.match

	player, ai := m.Scores()
	score := fmt.Sprintf(" Player %d - %d AI  (first to %d) ", player, ai, m.WinScore())
	dst.DrawTextCentered(0, score)

	switch m.Phase() {
	case PhaseServing:
		if m.ServeSide() == SidePlayer {
			if g.match.cfg.Variant.ServeCharge {
				dst.DrawTextCentered(1, "Hold SPACE to charge serve, release to serve")
			} else {
				dst.DrawTextCentered(1, "Press SPACE to serve")
			}
			if m.Charging() {
				g.drawPowerMeter(dst, m.ServePower())
			}
		} else {
			dst.DrawTextCentered(1, "AI is preparing to serve...")
		}

	case PhasePointPause:
		// The serve already went to the loser, so the scorer is the
		// other side.
		if m.ServeSide() == SideAI {
			dst.DrawTextCentered(2, "Player scores!")
		} else {
			dst.DrawTextCentered(2, "AI scores!")
		}
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if winner, ok := m.Winner(); ok {
		var msg string
		if winner == SidePlayer {
			msg = "YOU WIN!"
		} else {
			msg = "AI WINS!"
		}
		sub := fmt.Sprintf("%d - %d  |  Press R to play again", player, ai)
		g.drawCenteredMessage(dst, msg, sub)
	}
}

// drawPowerMeter renders the serve charge bar, colored by thirds.
func (g *Game) drawPowerMeter(dst *core.Screen, power float64) {
	meterW := dst.Width() / 3
	if meterW < 10 {
		meterW = 10
	}
	x := (dst.Width() - meterW) / 2
	y := 2

	color := core.ColorBrightGreen
	switch {
	case power >= MaxServePower*0.66:
		color = core.ColorBrightRed
	case power >= MaxServePower*0.33:
		color = core.ColorBrightYellow
	}

	fill := int(power / MaxServePower * float64(meterW))
	for i := 0; i < meterW; i++ {
		if i < fill {
			dst.SetColored(x+i, y, '█', color)
		} else {
			dst.SetColored(x+i, y, '─', core.ColorGray)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
