package simulation

import (
	"fmt"
	"strings"

	"planet-sim/internal/physics"
)

// Scheme selects how bodies see each other's positions within one step.
type Scheme int

const (
	// Sequential updates bodies in collection order; a body processed later
	// sees the already-updated positions of bodies processed earlier in the
	// same step.
	Sequential Scheme = iota
	// Synchronized computes every net force from the pre-step positions
	// before any body moves. Numerically different from Sequential.
	Synchronized
)

func (s Scheme) String() string {
	switch s {
	case Sequential:
		return "sequential"
	case Synchronized:
		return "synchronized"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// ParseScheme converts a scheme name into a Scheme.
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sequential":
		return Sequential, nil
	case "synchronized":
		return Synchronized, nil
	default:
		return 0, fmt.Errorf("unknown update scheme %q (want sequential or synchronized)", name)
	}
}

// Step advances every body by one Timestep in collection order.
// The first numeric fault aborts the pass; bodies already updated keep
// their new state.
func Step(bodies []*physics.Body) error {
	return stepSequential(physics.Gravity{}, bodies)
}

func stepSequential(g physics.Gravity, bodies []*physics.Body) error {
	for _, b := range bodies {
		if err := g.UpdatePosition(b, bodies); err != nil {
			return err
		}
	}
	return nil
}

func stepSynchronized(g physics.Gravity, bodies []*physics.Body) error {
	forces := make([][2]float64, len(bodies))
	for i, b := range bodies {
		fx, fy, err := g.NetForce(b, bodies)
		if err != nil {
			return err
		}
		forces[i] = [2]float64{fx, fy}
	}
	for i, b := range bodies {
		b.Advance(forces[i][0], forces[i][1])
	}
	return nil
}
