package analysis

import (
	"fmt"
	"io"
	"strings"

	"github.com/guptarohit/asciigraph"

	"planet-sim/internal/physics"
	"planet-sim/internal/simulation"
)

// Recorder samples conservation quantities and primary distances while a
// simulation runs. It implements simulation.Observer.
type Recorder struct {
	every int

	startEnergy float64

	energyDrift []float64
	tracked     []tracked
	distances   map[string][]float64 // keyed by body ID
}

type tracked struct {
	id      string
	caption string
}

// NewRecorder samples every n steps (n < 1 samples every step). The energy
// baseline is taken from bodies now, so it must be called before the run
// starts.
func NewRecorder(bodies []*physics.Body, n int) *Recorder {
	if n < 1 {
		n = 1
	}
	r := &Recorder{
		every:       n,
		startEnergy: TotalEnergy(bodies),
		distances:   make(map[string][]float64),
	}

	seen := make(map[string]int)
	for _, b := range bodies {
		seen[b.Name]++
	}
	for _, b := range bodies {
		if b.Central {
			continue
		}
		caption := b.Name
		if caption == "" || seen[b.Name] > 1 {
			caption = strings.TrimSpace(b.Name + " " + b.ID)
		}
		r.tracked = append(r.tracked, tracked{id: b.ID, caption: caption})
	}
	return r
}

// OnStep records a sample.
func (r *Recorder) OnStep(sim *simulation.Simulation) error {
	if sim.Steps()%r.every != 0 {
		return nil
	}

	bodies := sim.Bodies()
	r.energyDrift = append(r.energyDrift, RelativeDrift(r.startEnergy, TotalEnergy(bodies)))
	for _, b := range bodies {
		if !b.Central {
			r.distances[b.ID] = append(r.distances[b.ID], b.DistanceToPrimary/physics.AU)
		}
	}
	return nil
}

// Distances returns the recorded distance-to-primary series of the body
// with the given ID, in AU.
func (r *Recorder) Distances(id string) []float64 {
	return r.distances[id]
}

// Samples returns the number of recorded samples.
func (r *Recorder) Samples() int {
	return len(r.energyDrift)
}

// EnergyDrift returns the recorded relative energy drift series.
func (r *Recorder) EnergyDrift() []float64 {
	return r.energyDrift
}

// WriteReport writes charts of the recorded series and an orbit summary for
// every body of sim.
func (r *Recorder) WriteReport(w io.Writer, sim *simulation.Simulation) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Simulated %.0f days (%d steps, %s scheme)\n\n", sim.Days(), sim.Steps(), sim.Scheme())

	if len(r.energyDrift) > 1 {
		sb.WriteString(asciigraph.Plot(r.energyDrift,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("relative energy drift")))
		sb.WriteString("\n\n")
	}

	for _, tb := range r.tracked {
		series := r.distances[tb.id]
		if len(series) < 2 {
			continue
		}
		sb.WriteString(asciigraph.Plot(series,
			asciigraph.Height(4),
			asciigraph.Width(60),
			asciigraph.Caption(tb.caption+" distance to primary (AU)")))
		sb.WriteString("\n\n")
	}

	sb.WriteString(OrbitTable(sim.Bodies()))

	_, err := io.WriteString(w, sb.String())
	return err
}

// OrbitTable summarises the fitted orbit of every body with enough trail.
func OrbitTable(bodies []*physics.Body) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-10s %10s %10s %10s %10s\n", "body", "fit r AU", "resid AU", "major AU", "flatten")
	for _, b := range bodies {
		pts := b.Orbit.Points()
		fit, err := FitCircle(pts)
		if err != nil {
			fmt.Fprintf(&sb, "%-10s %10s\n", b.Name, "-")
			continue
		}
		axes, err := PrincipalAxes(pts)
		if err != nil {
			fmt.Fprintf(&sb, "%-10s %10.4f %10.4f %10s\n", b.Name, fit.Radius/physics.AU, fit.Residual/physics.AU, "-")
			continue
		}
		fmt.Fprintf(&sb, "%-10s %10.4f %10.4f %10.4f %10.4f\n",
			b.Name, fit.Radius/physics.AU, fit.Residual/physics.AU, axes.Major/physics.AU, axes.Flattening())
	}
	return sb.String()
}
