package physics

import (
	"fmt"
	"image/color"
	"math"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"
)

// Body is a point mass in a star-centered inertial frame.
type Body struct {
	ID   string
	Name string

	X, Y       float64 // meters
	XVel, YVel float64 // meters per second
	Mass       float64 // kilograms
	Radius     float64 // render size only
	Color      color.RGBA

	// Central marks the dominant mass. DistanceToPrimary tracks the last
	// distance to whichever body carries the flag.
	Central           bool
	DistanceToPrimary float64

	Orbit *Trail
}

// NewBody creates a body at rest with an unbounded trail.
func NewBody(name string, x, y, radius float64, clr color.RGBA, mass float64) (*Body, error) {
	if !(mass > 0) || math.IsInf(mass, 0) {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidMass, mass)
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidRadius, radius)
	}
	return &Body{
		ID:     fmt.Sprintf("body-%s", uuid.NewString()[:8]),
		Name:   name,
		X:      x,
		Y:      y,
		Mass:   mass,
		Radius: radius,
		Color:  clr,
		Orbit:  NewTrail(0),
	}, nil
}

// Position returns the current position.
func (b *Body) Position() r2.Vec {
	return r2.Vec{X: b.X, Y: b.Y}
}

// Velocity returns the current velocity.
func (b *Body) Velocity() r2.Vec {
	return r2.Vec{X: b.XVel, Y: b.YVel}
}

// Attraction returns the gravitational force other exerts on b.
// Coincident bodies yield ErrCoincident.
func (b *Body) Attraction(other *Body) (float64, float64, error) {
	return Gravity{}.Attraction(b, other)
}

// NetForce sums the attraction of every body in bodies except b itself.
func (b *Body) NetForce(bodies []*Body) (float64, float64, error) {
	return Gravity{}.NetForce(b, bodies)
}

// UpdatePosition advances b by one Timestep under the pull of bodies.
func (b *Body) UpdatePosition(bodies []*Body) error {
	return Gravity{}.UpdatePosition(b, bodies)
}

// Advance applies a net force for one Timestep: velocity first, then
// position with the new velocity, then the trail.
func (b *Body) Advance(fx, fy float64) {
	b.XVel += fx / b.Mass * Timestep
	b.YVel += fy / b.Mass * Timestep

	b.X += b.XVel * Timestep
	b.Y += b.YVel * Timestep
	b.Orbit.Append(r2.Vec{X: b.X, Y: b.Y})
}

// String representation for logging
func (b *Body) String() string {
	return fmt.Sprintf("Body[%s %s] Pos: (%.4f, %.4f) AU Vel: (%.1f, %.1f) m/s",
		b.ID, b.Name, b.X/AU, b.Y/AU, b.XVel, b.YVel)
}
