package telemetry

import (
	"planet-sim/internal/physics"
	"planet-sim/internal/simulation"
)

// BodyState is the published state of one body.
type BodyState struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	X                 float64 `json:"x"`
	Y                 float64 `json:"y"`
	XVel              float64 `json:"x_vel"`
	YVel              float64 `json:"y_vel"`
	Mass              float64 `json:"mass"`
	Central           bool    `json:"central,omitempty"`
	DistanceToPrimary float64 `json:"distance_to_primary"`
}

// Frame is a snapshot of the simulation after a step.
type Frame struct {
	Step    int         `json:"step"`
	Day     float64     `json:"day"`
	Elapsed float64     `json:"elapsed"`
	Bodies  []BodyState `json:"bodies"`
}

// Snapshot captures the current state of sim.
func Snapshot(sim *simulation.Simulation) Frame {
	bodies := sim.Bodies()
	f := Frame{
		Step:    sim.Steps(),
		Day:     sim.Days(),
		Elapsed: sim.Elapsed(),
		Bodies:  make([]BodyState, len(bodies)),
	}
	for i, b := range bodies {
		f.Bodies[i] = stateOf(b)
	}
	return f
}

func stateOf(b *physics.Body) BodyState {
	return BodyState{
		ID:                b.ID,
		Name:              b.Name,
		X:                 b.X,
		Y:                 b.Y,
		XVel:              b.XVel,
		YVel:              b.YVel,
		Mass:              b.Mass,
		Central:           b.Central,
		DistanceToPrimary: b.DistanceToPrimary,
	}
}
