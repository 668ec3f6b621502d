package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/quizrun/internal/core"
	"github.com/vovakirdan/quizrun/internal/quiz"
)

// Visual characters for rendering
const (
	PlayerChar  = '▲'
	EdgeChar    = '·'
	HorizonChar = '─'
	GroundChar  = '═'
	GateChar    = '█'
	HeartChar   = '♥'
	LostHeart   = '♡'
	ShieldChar  = '◈'
)

var difficultyColors = map[quiz.Difficulty]core.Color{
	quiz.DifficultyEasy:   core.ColorGreen,
	quiz.DifficultyMedium: core.ColorYellow,
	quiz.DifficultyHard:   core.ColorOrange,
	quiz.DifficultyExpert: core.ColorBrightRed,
}

// Render draws the current session state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawTrack(dst)
	g.drawObstacles(dst)
	g.drawPlayer(dst)
	g.drawHUD(dst)
	g.drawQuestion(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.score.Score()))
	}
}

// drawTrack renders the horizon, ground line, and the perspective lane
// boundaries between them.
func (g *Game) drawTrack(dst *core.Screen) {
	horizonY := int(g.track.HorizonY)
	groundY := int(g.track.GroundY)

	dst.DrawHLine(0, horizonY, dst.Width(), HorizonChar)
	dst.DrawHLine(0, groundY, dst.Width(), GroundChar)

	for b := 0; b <= g.track.Lanes; b++ {
		color := core.ColorGray
		if b == 0 || b == g.track.Lanes {
			color = core.ColorWhite
		}
		for y := horizonY + 1; y < groundY; y++ {
			t := float64(y-horizonY) / math.Max(1, g.track.GroundY-g.track.HorizonY)
			depth := g.track.MaxDepth * (1 - t)
			dst.SetCell(int(math.Round(g.track.EdgeX(b, depth))), y, EdgeChar, color)
		}
	}
}

// drawObstacles renders each answer gate, scaled by its depth. Far gates
// are a single letter; near gates grow into labeled blocks. The correct
// answer is never visually distinguished.
func (g *Game) drawObstacles(dst *core.Screen) {
	for _, o := range g.field.Obstacles() {
		if o.Depth < 0 || o.Depth > g.track.MaxDepth {
			continue
		}
		scale := g.track.ScaleAt(o.Depth)
		cx := int(math.Round(g.track.LaneX(float64(o.Lane), o.Depth)))
		cy := int(math.Round(g.track.LaneY(o.Depth)))

		label := fmt.Sprintf("[%s]", o.Option)
		half := int(math.Round(scale * 4))
		for dx := -half; dx <= half; dx++ {
			dst.SetCell(cx+dx, cy, GateChar, core.ColorCyan)
		}
		dst.DrawTextColored(cx-len(label)/2, cy, label, core.ColorBrightWhite)

		// Show the answer text once the gate is close enough to read
		if scale > 0.55 && o.Text != "" {
			text := o.Text
			if len(text) > 2*half+6 {
				text = text[:2*half+3] + "..."
			}
			dst.DrawTextColored(cx-len(text)/2, cy-1, text, core.ColorBrightCyan)
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen) {
	x := int(math.Round(g.track.LaneX(g.playerLane, 0)))
	y := int(g.track.GroundY) - 1

	color := core.ColorBrightYellow
	if g.lives.Invincible(g.tickCount) {
		color = core.ColorGray
	}
	dst.SetCell(x, y, PlayerChar, color)
	if g.lives.HasShield(g.tickCount) {
		dst.SetCell(x-1, y, ShieldChar, core.ColorBrightCyan)
		dst.SetCell(x+1, y, ShieldChar, core.ColorBrightCyan)
	}
}

// drawHUD renders score, lives, streak, and speed along the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score.Score()))

	hearts := strings.Repeat(string(HeartChar), g.lives.Lives()) +
		strings.Repeat(string(LostHeart), core.Max(0, g.lives.MaxLives()-g.lives.Lives()))
	dst.DrawTextColored(dst.Width()-len([]rune(hearts))-2, 0, hearts, core.ColorBrightRed)

	status := fmt.Sprintf(" Streak: %d  Speed: %.1f  Q: %d ",
		g.score.Streak(), g.speed, g.questionsAnswered)
	dst.DrawText(2, 1, status)
}

// drawQuestion renders the active question and its answer clock above
// the horizon.
func (g *Game) drawQuestion(dst *core.Screen) {
	q := g.field.Question()
	if q == nil {
		return
	}

	color := difficultyColors[q.Difficulty]
	text := q.Text
	if len([]rune(text)) > dst.Width()-4 {
		runes := []rune(text)
		text = string(runes[:dst.Width()-7]) + "..."
	}
	x := (dst.Width() - len([]rune(text))) / 2
	dst.DrawTextColored(x, 2, text, color)

	seconds := float64(g.field.CountdownTicks()) * g.config.DeltaMs() / 1000
	clock := fmt.Sprintf("%.1fs", seconds)
	clockColor := core.ColorGreen
	if seconds < 3 {
		clockColor = core.ColorBrightRed
	} else if seconds < 6 {
		clockColor = core.ColorYellow
	}
	dst.DrawTextColored((dst.Width()-len(clock))/2, 3, clock, clockColor)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
