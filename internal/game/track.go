// Package game implements the quiz runner session engine: obstacle
// spawning, lane projection, collision resolution, scoring, and lives.
// It contains pure logic with no external dependencies (especially no
// Bubble Tea) so the whole session is testable without a terminal.
package game

import (
	"math"

	"github.com/vovakirdan/quizrun/internal/config"
	"github.com/vovakirdan/quizrun/internal/core"
)

// Track is the perspective-projected playing field. All projection methods
// are pure; depth runs from MaxDepth at the spawn line down to 0 at the
// player.
type Track struct {
	Lanes       int
	MaxDepth    float64
	TopWidth    float64 // track width at the horizon
	BottomWidth float64 // track width at the player
	HorizonY    float64
	GroundY     float64
	CenterX     float64
}

// NewTrack builds a track fitted to the given screen dimensions.
func NewTrack(cfg config.TrackConfig, screenW, screenH int) Track {
	w := float64(screenW)
	h := float64(screenH)

	horizonY := math.Max(1, h*cfg.HorizonFrac)
	groundY := math.Max(horizonY+1, h-float64(cfg.GroundMargin))

	lanes := cfg.Lanes
	if lanes <= 0 {
		lanes = 4
	}
	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 100
	}

	return Track{
		Lanes:       lanes,
		MaxDepth:    maxDepth,
		TopWidth:    w * cfg.TopWidthFrac,
		BottomWidth: w * cfg.BottomWidthFrac,
		HorizonY:    horizonY,
		GroundY:     groundY,
		CenterX:     w / 2,
	}
}

// T converts a depth into the normalized approach parameter:
// 0 at the spawn line, 1 at the player. Clamped to [0, 1].
func (t Track) T(depth float64) float64 {
	return core.ClampF(1-depth/t.MaxDepth, 0, 1)
}

// WidthAt returns the track width at the given depth.
func (t Track) WidthAt(depth float64) float64 {
	return core.LerpF(t.TopWidth, t.BottomWidth, t.T(depth))
}

// LaneX projects a continuous lane position at a depth onto a screen x
// coordinate. Lane centers sit at (lane + 0.5) / Lanes of the track width.
func (t Track) LaneX(lane float64, depth float64) float64 {
	width := t.WidthAt(depth)
	left := t.CenterX - width/2
	return left + (lane+0.5)/float64(t.Lanes)*width
}

// LaneY projects a depth onto a screen y coordinate between the horizon
// and the ground line.
func (t Track) LaneY(depth float64) float64 {
	return core.LerpF(t.HorizonY, t.GroundY, t.T(depth))
}

// ScaleAt returns the render scale for an object at the given depth:
// full size at the player, shrinking to 20% at the spawn line. Objects
// never fully vanish.
func (t Track) ScaleAt(depth float64) float64 {
	return 1 - core.ClampF(depth/t.MaxDepth, 0, 1)*0.8
}

// EdgeX returns the screen x of a lane boundary (0..Lanes) at a depth.
// Boundary 0 is the left track edge, Lanes the right edge.
func (t Track) EdgeX(boundary int, depth float64) float64 {
	width := t.WidthAt(depth)
	left := t.CenterX - width/2
	return left + float64(boundary)/float64(t.Lanes)*width
}
