package poline

import (
	"math"
	"testing"
)

func TestDistanceHueWraparound(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-12
	}

	p1 := V3(350, 0, 0)
	p2 := V3(10, 0, 0)
	// 350° and 10° are 20° apart the short way around.
	if d := Distance(p1, p2, true); !approxEqual(d, 20.0/360) {
		t.Errorf("got hue-mode distance %v, want %v", d, 20.0/360)
	}
	// Without hue mode the first axis is linear.
	if d := Distance(p1, p2, false); !approxEqual(d, 340) {
		t.Errorf("got distance %v, want 340", d)
	}
}

func TestDistanceAbsentComponents(t *testing.T) {
	nan := math.NaN()
	// An absent axis contributes nothing.
	if d := Distance(V3(nan, 0.5, 0), V3(1, 0.25, 0), false); d != 0.25 {
		t.Errorf("got distance %v, want 0.25", d)
	}
	if d := Distance(V3(120, nan, nan), V3(120, 1, 0.5), true); d != 0 {
		t.Errorf("got distance %v, want 0", d)
	}
	if d := Distance(V3(nan, nan, nan), V3(1, 1, 1), false); d != 0 {
		t.Errorf("got distance %v, want 0", d)
	}
}

func TestDistanceEuclidean(t *testing.T) {
	if d := Distance(V3(0, 0, 0), V3(1, 2, 2), false); d != 3 {
		t.Errorf("got distance %v, want 3", d)
	}
}
