package poline

import (
	"math"
	"testing"
)

func TestHSLPair(t *testing.T) {
	got := hslPair(350, 60, [2]float64{0.8, 0.6}, [2]float64{0.9, 0.4})
	want := []HSL{
		{H: 350, S: 0.8, L: 0.9},
		{H: 50, S: 0.6, L: 0.4},
	}
	diff(t, want, got)
}

func TestHSLTriple(t *testing.T) {
	got := hslTriple(300, [2]float64{120, 180}, [3]float64{1, 0.5, 0.25}, [3]float64{0.8, 0.5, 0.3})
	want := []HSL{
		{H: 300, S: 1, L: 0.8},
		{H: 60, S: 0.5, L: 0.5},
		{H: 120, S: 0.25, L: 0.3},
	}
	diff(t, want, got)
}

func TestRandomHSLPair(t *testing.T) {
	for range 100 {
		pair := RandomHSLPair()
		if len(pair) != 2 {
			t.Fatalf("got %d colors, want 2", len(pair))
		}
		for i, c := range pair {
			if c.H < 0 || c.H >= 360 {
				t.Errorf("color %d: hue %v out of range", i, c.H)
			}
			if c.S < 0 || c.S >= 1 {
				t.Errorf("color %d: saturation %v out of range", i, c.S)
			}
		}
		if l := pair[0].L; l < 0.75 || l >= 0.95 {
			t.Errorf("got light partner lightness %v, want [0.75, 0.95)", l)
		}
		if l := pair[1].L; l < 0.3 || l >= 0.5 {
			t.Errorf("got dark partner lightness %v, want [0.3, 0.5)", l)
		}
		// The second hue is offset from the first by 60 to 240 degrees, so
		// on the circle the two are at least 60 and at most 180 apart.
		d := math.Abs(pair[0].H - pair[1].H)
		d = math.Min(d, 360-d)
		if d < 60-1e-9 {
			t.Errorf("got hues %v and %v only %v degrees apart", pair[0].H, pair[1].H, d)
		}
	}
}

func TestRandomHSLTriple(t *testing.T) {
	for range 100 {
		triple := RandomHSLTriple()
		if len(triple) != 3 {
			t.Fatalf("got %d colors, want 3", len(triple))
		}
		for i, c := range triple {
			if c.H < 0 || c.H >= 360 {
				t.Errorf("color %d: hue %v out of range", i, c.H)
			}
		}
	}
}
