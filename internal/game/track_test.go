package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/quizrun/internal/config"
)

func testTrack() Track {
	return NewTrack(config.DefaultGameConfig().Track, 80, 24)
}

func TestTrackApproachParameter(t *testing.T) {
	tr := testTrack()

	if got := tr.T(tr.MaxDepth); got != 0 {
		t.Errorf("T at spawn line = %f, expected 0", got)
	}
	if got := tr.T(0); got != 1 {
		t.Errorf("T at player = %f, expected 1", got)
	}
	if got := tr.T(-5); got != 1 {
		t.Errorf("T below player = %f, expected clamp to 1", got)
	}
	if got := tr.T(tr.MaxDepth * 2); got != 0 {
		t.Errorf("T beyond spawn line = %f, expected clamp to 0", got)
	}

	// Approach is monotonic as depth decreases
	prev := tr.T(tr.MaxDepth)
	for depth := tr.MaxDepth - 1; depth >= 0; depth-- {
		cur := tr.T(depth)
		if cur < prev {
			t.Fatalf("T not monotonic at depth %f: %f < %f", depth, cur, prev)
		}
		prev = cur
	}
}

func TestTrackWidens(t *testing.T) {
	tr := testTrack()

	far := tr.WidthAt(tr.MaxDepth)
	near := tr.WidthAt(0)
	if far >= near {
		t.Errorf("track should widen toward the player: far %f, near %f", far, near)
	}
	if far != tr.TopWidth || near != tr.BottomWidth {
		t.Errorf("width endpoints = %f/%f, expected %f/%f", far, near, tr.TopWidth, tr.BottomWidth)
	}
}

func TestTrackLaneOrdering(t *testing.T) {
	tr := testTrack()

	for _, depth := range []float64{0, 25, 50, 75, tr.MaxDepth} {
		prev := math.Inf(-1)
		for lane := 0; lane < tr.Lanes; lane++ {
			x := tr.LaneX(float64(lane), depth)
			if x <= prev {
				t.Fatalf("lane %d at depth %f not to the right of lane %d", lane, depth, lane-1)
			}
			if x < tr.EdgeX(0, depth) || x > tr.EdgeX(tr.Lanes, depth) {
				t.Fatalf("lane %d at depth %f outside track edges", lane, depth)
			}
			prev = x
		}
	}
}

func TestTrackLaneYBetweenHorizonAndGround(t *testing.T) {
	tr := testTrack()

	if got := tr.LaneY(tr.MaxDepth); got != tr.HorizonY {
		t.Errorf("LaneY at spawn line = %f, expected horizon %f", got, tr.HorizonY)
	}
	if got := tr.LaneY(0); got != tr.GroundY {
		t.Errorf("LaneY at player = %f, expected ground %f", got, tr.GroundY)
	}
}

func TestTrackScale(t *testing.T) {
	tr := testTrack()

	if got := tr.ScaleAt(0); got != 1 {
		t.Errorf("scale at player = %f, expected 1", got)
	}
	if got := tr.ScaleAt(tr.MaxDepth); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("scale at spawn line = %f, expected 0.2", got)
	}
	if got := tr.ScaleAt(tr.MaxDepth * 10); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("scale beyond spawn line = %f, expected clamp to 0.2", got)
	}
}
