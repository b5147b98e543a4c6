package physics

import "math"

// Gravity evaluates Newtonian attraction between bodies.
//
// MinDistance is a separation floor. At zero (the default) coincident bodies
// are a fault; a positive floor keeps the force finite at the cost of
// underestimating it for close encounters. Exactly coincident bodies exert
// no force on each other under a floor.
type Gravity struct {
	MinDistance float64
}

// Attraction returns the force other exerts on b, and records the distance
// in b.DistanceToPrimary when other is the central body.
func (g Gravity) Attraction(b, other *Body) (float64, float64, error) {
	distanceX := other.X - b.X
	distanceY := other.Y - b.Y
	distance := math.Sqrt(distanceX*distanceX + distanceY*distanceY)

	if other.Central {
		b.DistanceToPrimary = distance
	}

	if distance == 0 {
		if g.MinDistance > 0 {
			// No direction to push along.
			return 0, 0, nil
		}
		return 0, 0, &NumericFault{Body: b.Name, Other: other.Name, Err: ErrCoincident}
	}
	if distance < g.MinDistance {
		distance = g.MinDistance
	}

	force := G * b.Mass * other.Mass / (distance * distance)
	theta := math.Atan2(distanceY, distanceX)
	forceX := math.Cos(theta) * force
	forceY := math.Sin(theta) * force
	return forceX, forceY, nil
}

// NetForce sums Attraction over bodies in collection order, skipping b.
func (g Gravity) NetForce(b *Body, bodies []*Body) (float64, float64, error) {
	totalFx, totalFy := 0.0, 0.0
	for _, other := range bodies {
		if other == b {
			continue
		}
		fx, fy, err := g.Attraction(b, other)
		if err != nil {
			return 0, 0, err
		}
		totalFx += fx
		totalFy += fy
	}
	return totalFx, totalFy, nil
}

// UpdatePosition computes the net force on b from the current state of
// bodies and advances b by one Timestep. On error the kinematic state and
// trail of b are left unchanged.
func (g Gravity) UpdatePosition(b *Body, bodies []*Body) error {
	fx, fy, err := g.NetForce(b, bodies)
	if err != nil {
		return err
	}
	b.Advance(fx, fy)
	return nil
}
