package physics

import "gonum.org/v1/gonum/spatial/r2"

// Trail is the position history of a body, oldest first.
//
// A zero capacity keeps every point for the life of the body. A positive
// capacity keeps only the most recent points, so the rendered trail is
// shorter than the full path once the cap is reached.
type Trail struct {
	capacity int
	points   []r2.Vec
}

// NewTrail creates a trail. capacity <= 0 means unbounded.
func NewTrail(capacity int) *Trail {
	if capacity < 0 {
		capacity = 0
	}
	return &Trail{capacity: capacity}
}

// Append records a new position.
func (t *Trail) Append(p r2.Vec) {
	t.points = append(t.points, p)
	// Compact in bulk once the backing slice holds twice the cap, so eviction
	// stays amortized O(1).
	if t.capacity > 0 && len(t.points) >= 2*t.capacity {
		n := copy(t.points, t.points[len(t.points)-t.capacity:])
		t.points = t.points[:n]
	}
}

// Points returns the retained points, oldest first. The slice aliases the
// trail and is only valid until the next Append.
func (t *Trail) Points() []r2.Vec {
	if t.capacity > 0 && len(t.points) > t.capacity {
		return t.points[len(t.points)-t.capacity:]
	}
	return t.points
}

// Len returns the number of retained points.
func (t *Trail) Len() int {
	return len(t.Points())
}

// Capacity returns the configured cap, 0 for unbounded.
func (t *Trail) Capacity() int {
	return t.capacity
}

// Last returns the most recent point.
func (t *Trail) Last() (r2.Vec, bool) {
	if len(t.points) == 0 {
		return r2.Vec{}, false
	}
	return t.points[len(t.points)-1], true
}
