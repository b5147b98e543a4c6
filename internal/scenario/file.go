package scenario

import (
	"encoding/json"
	"fmt"
	"os"

	"planet-sim/internal/physics"
)

// fileScenario is the on-disk JSON layout of a scenario.
type fileScenario struct {
	Name   string     `json:"name"`
	Bodies []fileBody `json:"bodies"`
}

type fileBody struct {
	Name    string  `json:"name"`
	XAU     float64 `json:"x_au"`
	YAU     float64 `json:"y_au"`
	XVel    float64 `json:"x_vel"`
	YVel    float64 `json:"y_vel"`
	Radius  float64 `json:"radius"`
	Color   string  `json:"color,omitempty"`
	Mass    float64 `json:"mass"`
	Central bool    `json:"central,omitempty"`
}

// Load reads a JSON scenario file.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("reading scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario %s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a JSON scenario. Positions are given in AU, velocities in m/s.
func Parse(data []byte) (Scenario, error) {
	var fs fileScenario
	if err := json.Unmarshal(data, &fs); err != nil {
		return Scenario{}, fmt.Errorf("parsing JSON: %w", err)
	}

	sc := Scenario{Name: fs.Name, Bodies: make([]Spec, 0, len(fs.Bodies))}
	for i, fb := range fs.Bodies {
		clr, err := ParseColor(fb.Color)
		if err != nil {
			return Scenario{}, fmt.Errorf("body %d (%s): %w", i, fb.Name, err)
		}
		sc.Bodies = append(sc.Bodies, Spec{
			Name:    fb.Name,
			X:       fb.XAU * physics.AU,
			Y:       fb.YAU * physics.AU,
			Radius:  fb.Radius,
			Color:   clr,
			Mass:    fb.Mass,
			XVel:    fb.XVel,
			YVel:    fb.YVel,
			Central: fb.Central,
		})
	}
	return sc, nil
}
