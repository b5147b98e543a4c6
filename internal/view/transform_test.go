package view

import (
	"math"
	"testing"

	"planet-sim/internal/physics"
)

func TestHandle(t *testing.T) {
	tests := []struct {
		key  Key
		want Transform
	}{
		{KeyLeft, Transform{OffsetX: 10, ScaleFactor: 1}},
		{KeyRight, Transform{OffsetX: -10, ScaleFactor: 1}},
		{KeyUp, Transform{OffsetY: -10, ScaleFactor: 1}},
		{KeyDown, Transform{OffsetY: 10, ScaleFactor: 1}},
		{KeyZoomIn, Transform{ScaleFactor: 1.1}},
		{KeyZoomOut, Transform{ScaleFactor: 0.9}},
		{KeyNone, Transform{ScaleFactor: 1}},
	}

	for _, tt := range tests {
		got := Handle(Identity(), tt.key)
		if got.OffsetX != tt.want.OffsetX || got.OffsetY != tt.want.OffsetY || math.Abs(got.ScaleFactor-tt.want.ScaleFactor) > 1e-12 {
			t.Errorf("Handle(%d) = %+v, want %+v", tt.key, got, tt.want)
		}
	}
}

func TestHandleDoesNotMutateInput(t *testing.T) {
	start := Identity()
	_ = Handle(start, KeyLeft)
	if start != Identity() {
		t.Errorf("Expected input transform to be unchanged, got %+v", start)
	}
}

func TestZoomOutClamps(t *testing.T) {
	v := Identity()
	for i := 0; i < 50; i++ {
		v = Handle(v, KeyZoomOut)
	}
	if v.ScaleFactor != MinZoom {
		t.Errorf("Expected zoom clamped at %g, got %g", MinZoom, v.ScaleFactor)
	}
	v = Handle(v, KeyZoomIn)
	if v.ScaleFactor <= MinZoom {
		t.Errorf("Expected zoom in to recover from the clamp, got %g", v.ScaleFactor)
	}
}

func TestHandleAll(t *testing.T) {
	v := HandleAll(Identity(), []Key{KeyLeft, KeyLeft, KeyUp, KeyZoomIn})
	if v.OffsetX != 20 || v.OffsetY != -10 {
		t.Errorf("Expected offset (20, -10), got (%g, %g)", v.OffsetX, v.OffsetY)
	}
}

func TestWorldToScreen(t *testing.T) {
	v := Identity()
	x, y := v.WorldToScreen(0, 0, 1500, 900)
	if x != 750 || y != 450 {
		t.Errorf("Expected origin at screen center, got (%g, %g)", x, y)
	}

	x, y = v.WorldToScreen(physics.AU, -physics.AU, 1500, 900)
	if math.Abs(x-1000) > 1e-9 || math.Abs(y-200) > 1e-9 {
		t.Errorf("Expected 1 AU at 250px, got (%g, %g)", x, y)
	}

	v = Transform{OffsetX: -30, OffsetY: 10, ScaleFactor: 2}
	x, y = v.WorldToScreen(physics.AU, 0, 1500, 900)
	if math.Abs(x-1220) > 1e-9 || y != 460 {
		t.Errorf("Expected (1220, 460), got (%g, %g)", x, y)
	}
	if v.Radius(6.5) != 13 {
		t.Errorf("Expected radius 13, got %g", v.Radius(6.5))
	}
}

func TestTrailStride(t *testing.T) {
	tests := []struct{ n, max, want int }{
		{0, 100, 1},
		{100, 100, 1},
		{101, 100, 2},
		{1000, 100, 10},
		{1001, 100, 11},
		{500, 0, 1},
	}
	for _, tt := range tests {
		if got := TrailStride(tt.n, tt.max); got != tt.want {
			t.Errorf("TrailStride(%d, %d) = %d, want %d", tt.n, tt.max, got, tt.want)
		}
	}
}

func TestKeyRepeats(t *testing.T) {
	tests := []struct {
		held, delay, interval int
		want                  bool
	}{
		{0, 30, 3, false},
		{1, 30, 3, true},
		{2, 30, 3, false},
		{29, 30, 3, false},
		{30, 30, 3, true},
		{31, 30, 3, false},
		{33, 30, 3, true},
		{36, 30, 3, true},
		{35, 30, 3, false},
		{40, 30, 0, false},
	}
	for _, tt := range tests {
		if got := KeyRepeats(tt.held, tt.delay, tt.interval); got != tt.want {
			t.Errorf("KeyRepeats(%d, %d, %d) = %v, want %v", tt.held, tt.delay, tt.interval, got, tt.want)
		}
	}
}

func TestTrailIndices(t *testing.T) {
	tests := []struct {
		n, max int
		want   []int
	}{
		{0, 10, nil},
		{1, 10, []int{0}},
		{4, 10, []int{0, 1, 2, 3}},
		{10, 5, []int{0, 2, 4, 6, 8, 9}},
		{9, 3, []int{0, 3, 6, 8}},
		{7, 3, []int{0, 3, 6}},
	}
	for _, tt := range tests {
		got := TrailIndices(tt.n, tt.max)
		if len(got) != len(tt.want) {
			t.Errorf("TrailIndices(%d, %d) = %v, want %v", tt.n, tt.max, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("TrailIndices(%d, %d) = %v, want %v", tt.n, tt.max, got, tt.want)
				break
			}
		}
	}
}
