package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"

	"planet-sim/internal/physics"
)

// Momentum returns the total linear momentum of bodies (kg·m/s).
func Momentum(bodies []*physics.Body) r2.Vec {
	px := make([]float64, len(bodies))
	py := make([]float64, len(bodies))
	for i, b := range bodies {
		px[i] = b.Mass * b.XVel
		py[i] = b.Mass * b.YVel
	}
	return r2.Vec{X: floats.Sum(px), Y: floats.Sum(py)}
}

// MomentumScale returns the sum of momentum magnitudes, a reference for
// judging the drift of Momentum.
func MomentumScale(bodies []*physics.Body) float64 {
	mags := make([]float64, len(bodies))
	for i, b := range bodies {
		mags[i] = b.Mass * r2.Norm(b.Velocity())
	}
	return floats.Sum(mags)
}

// KineticEnergy returns the total kinetic energy in joules.
func KineticEnergy(bodies []*physics.Body) float64 {
	e := make([]float64, len(bodies))
	for i, b := range bodies {
		e[i] = 0.5 * b.Mass * r2.Norm2(b.Velocity())
	}
	return floats.Sum(e)
}

// PotentialEnergy returns the total gravitational potential energy in joules.
// Coincident pairs are skipped.
func PotentialEnergy(bodies []*physics.Body) float64 {
	var e []float64
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			d := r2.Norm(r2.Sub(bodies[i].Position(), bodies[j].Position()))
			if d > 0 {
				e = append(e, -physics.G*bodies[i].Mass*bodies[j].Mass/d)
			}
		}
	}
	return floats.Sum(e)
}

// TotalEnergy returns kinetic plus potential energy.
func TotalEnergy(bodies []*physics.Body) float64 {
	return KineticEnergy(bodies) + PotentialEnergy(bodies)
}

// CenterOfMass returns the mass-weighted mean position.
func CenterOfMass(bodies []*physics.Body) r2.Vec {
	var total float64
	var c r2.Vec
	for _, b := range bodies {
		c = r2.Add(c, r2.Scale(b.Mass, b.Position()))
		total += b.Mass
	}
	if total == 0 {
		return r2.Vec{}
	}
	return r2.Scale(1/total, c)
}

// RelativeDrift returns |now - start| / |start|, or |now - start| when start
// is zero.
func RelativeDrift(start, now float64) float64 {
	if start == 0 {
		return math.Abs(now - start)
	}
	return math.Abs((now - start) / start)
}
