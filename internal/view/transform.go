// Package view maps simulation coordinates to screen coordinates and
// applies the keyboard pan and zoom controls.
package view

import "planet-sim/internal/physics"

// Key is a view control independent of the windowing backend.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyZoomIn
	KeyZoomOut
)

const (
	PanStep  = 10.0 // screen units per key repeat
	ZoomStep = 0.1  // scale factor change per key repeat
	MinZoom  = ZoomStep
)

// Transform holds the pan offset and zoom of the view.
// Screen space has its origin at the bottom-left with y pointing up.
type Transform struct {
	OffsetX     float64
	OffsetY     float64
	ScaleFactor float64
}

// Identity returns an unpanned view at zoom 1.
func Identity() Transform {
	return Transform{ScaleFactor: 1}
}

// Handle returns the transform after one press or repeat of key.
func Handle(t Transform, key Key) Transform {
	switch key {
	case KeyLeft:
		t.OffsetX += PanStep
	case KeyRight:
		t.OffsetX -= PanStep
	case KeyUp:
		t.OffsetY -= PanStep
	case KeyDown:
		t.OffsetY += PanStep
	case KeyZoomIn:
		t.ScaleFactor += ZoomStep
	case KeyZoomOut:
		t.ScaleFactor -= ZoomStep
		if t.ScaleFactor < MinZoom {
			t.ScaleFactor = MinZoom
		}
	}
	return t
}

// HandleAll applies keys in order.
func HandleAll(t Transform, keys []Key) Transform {
	for _, k := range keys {
		t = Handle(t, k)
	}
	return t
}

// WorldToScreen converts a position in meters to screen coordinates for a
// viewport of the given size.
func (t Transform) WorldToScreen(x, y float64, width, height int) (float64, float64) {
	sx := (x*physics.Scale*t.ScaleFactor + float64(width)/2) + t.OffsetX
	sy := (y*physics.Scale*t.ScaleFactor + float64(height)/2) + t.OffsetY
	return sx, sy
}

// Radius converts a body radius to screen units.
func (t Transform) Radius(r float64) float64 {
	return r * t.ScaleFactor
}

// TrailStride returns the step between drawn trail points so that at most
// max points of an n-point trail are drawn. The trail itself is untouched.
func TrailStride(n, max int) int {
	if max <= 0 || n <= max {
		return 1
	}
	return (n + max - 1) / max
}

// KeyRepeats reports whether a key held for the given number of ticks fires
// this tick: on the first tick, then every interval ticks once delay ticks
// have passed.
func KeyRepeats(held, delay, interval int) bool {
	if held == 1 {
		return true
	}
	if held < delay || interval <= 0 {
		return false
	}
	return (held-delay)%interval == 0
}

// TrailIndices returns the indices of an n-point trail to draw with at most
// max points plus the last one. The first and last points are always
// included.
func TrailIndices(n, max int) []int {
	if n == 0 {
		return nil
	}
	stride := TrailStride(n, max)
	idx := make([]int, 0, n/stride+2)
	for i := 0; i < n; i += stride {
		idx = append(idx, i)
	}
	if idx[len(idx)-1] != n-1 {
		idx = append(idx, n-1)
	}
	return idx
}
