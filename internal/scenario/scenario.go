package scenario

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hashicorp/go-multierror"
	"github.com/lucasb-eyer/go-colorful"

	"planet-sim/internal/physics"
)

// DefaultColor is used for bodies without a color.
var DefaultColor = color.RGBA{200, 200, 255, 255}

// Spec describes one body at setup time.
type Spec struct {
	Name       string
	X, Y       float64 // meters
	Radius     float64
	Color      color.RGBA
	Mass       float64
	XVel, YVel float64 // initial velocity, m/s
	Central    bool
}

// Scenario is an ordered list of body specifications. The order becomes the
// update order of the simulation.
type Scenario struct {
	Name   string
	Bodies []Spec
}

// Build creates the bodies of the scenario. Every invalid spec is reported,
// not only the first one. trailCap <= 0 keeps full orbit trails.
func (s Scenario) Build(trailCap int) ([]*physics.Body, error) {
	if len(s.Bodies) == 0 {
		return nil, fmt.Errorf("scenario %q has no bodies", s.Name)
	}

	var result *multierror.Error
	bodies := make([]*physics.Body, 0, len(s.Bodies))
	for i, spec := range s.Bodies {
		if err := checkFinite(spec); err != nil {
			result = multierror.Append(result, fmt.Errorf("body %d (%s): %w", i, spec.Name, err))
			continue
		}
		b, err := physics.NewBody(spec.Name, spec.X, spec.Y, spec.Radius, spec.Color, spec.Mass)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("body %d (%s): %w", i, spec.Name, err))
			continue
		}
		b.XVel = spec.XVel
		b.YVel = spec.YVel
		b.Central = spec.Central
		b.Orbit = physics.NewTrail(trailCap)
		bodies = append(bodies, b)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return bodies, nil
}

// CentralCount returns how many specs carry the central flag.
func (s Scenario) CentralCount() int {
	n := 0
	for _, b := range s.Bodies {
		if b.Central {
			n++
		}
	}
	return n
}

func checkFinite(spec Spec) error {
	for _, v := range []float64{spec.X, spec.Y, spec.XVel, spec.YVel} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite position or velocity")
		}
	}
	return nil
}

// rgb converts unit-range channel values to an opaque RGBA color.
func rgb(r, g, b float64) color.RGBA {
	r8, g8, b8 := colorful.Color{R: r, G: g, B: b}.Clamped().RGB255()
	return color.RGBA{r8, g8, b8, 255}
}

// ParseColor parses a "#rrggbb" hex color. An empty string yields DefaultColor.
func ParseColor(hex string) (color.RGBA, error) {
	if hex == "" {
		return DefaultColor, nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}
