package simulation

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"planet-sim/internal/physics"
)

// ErrNoBodies is returned when a simulation is created without bodies.
var ErrNoBodies = errors.New("simulation: no bodies")

// StepError wraps a failed step with the point in simulated time it happened.
type StepError struct {
	Step    int     // 1-based index of the step that failed
	Elapsed float64 // simulated seconds before the failed step
	Err     error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (day %.0f): %v", e.Step, e.Elapsed/physics.Timestep, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Simulation holds the ordered set of bodies and advances them together.
type Simulation struct {
	bodies  []*physics.Body // Iteration order is fixed at creation
	gravity physics.Gravity
	scheme  Scheme

	steps   int     // Completed steps
	elapsed float64 // Simulated seconds

	logger    hclog.Logger
	observers []Observer
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithScheme selects the update scheme. Sequential is the default.
func WithScheme(scheme Scheme) Option {
	return func(s *Simulation) { s.scheme = scheme }
}

// WithDistanceFloor sets a minimum separation for force evaluation.
// Zero keeps coincident bodies a fault.
func WithDistanceFloor(meters float64) Option {
	return func(s *Simulation) { s.gravity.MinDistance = meters }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger hclog.Logger) Option {
	return func(s *Simulation) { s.logger = logger }
}

// WithObserver registers an observer.
func WithObserver(o Observer) Option {
	return func(s *Simulation) { s.observers = append(s.observers, o) }
}

// NewSimulation creates a simulation over bodies. The slice is used as is;
// its order determines the update order for the whole run.
func NewSimulation(bodies []*physics.Body, opts ...Option) (*Simulation, error) {
	if len(bodies) == 0 {
		return nil, ErrNoBodies
	}
	for i, b := range bodies {
		if b == nil {
			return nil, fmt.Errorf("body %d is nil", i)
		}
		if b.Orbit == nil {
			b.Orbit = physics.NewTrail(0)
		}
	}

	s := &Simulation{
		bodies: bodies,
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.gravity.MinDistance < 0 {
		return nil, fmt.Errorf("distance floor must be non-negative, got %g", s.gravity.MinDistance)
	}
	if s.scheme != Sequential && s.scheme != Synchronized {
		return nil, fmt.Errorf("unsupported scheme %s", s.scheme)
	}

	s.logger.Debug("simulation created", "bodies", len(bodies), "scheme", s.scheme, "distance_floor", s.gravity.MinDistance)
	return s, nil
}

// AddObserver registers an observer after creation.
func (s *Simulation) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

// Step advances the simulation by one Timestep.
// A failed step is not counted and is not rolled back.
func (s *Simulation) Step() error {
	var err error
	switch s.scheme {
	case Synchronized:
		err = stepSynchronized(s.gravity, s.bodies)
	default:
		err = stepSequential(s.gravity, s.bodies)
	}
	if err != nil {
		return &StepError{Step: s.steps + 1, Elapsed: s.elapsed, Err: err}
	}

	s.steps++
	s.elapsed += physics.Timestep
	s.logger.Trace("step complete", "step", s.steps)

	for _, o := range s.observers {
		if oerr := o.OnStep(s); oerr != nil {
			s.logger.Warn("observer failed", "step", s.steps, "error", oerr)
		}
	}
	return nil
}

// Run executes n steps, stopping at the first failure.
func (s *Simulation) Run(n int) error {
	s.logger.Info("running simulation", "steps", n, "bodies", len(s.bodies), "scheme", s.scheme)
	for i := 0; i < n; i++ {
		if err := s.Step(); err != nil {
			return err
		}
	}
	s.logger.Info("simulation finished", "days", s.Days())
	return nil
}

// Bodies returns the bodies in update order. Callers must not reorder them.
func (s *Simulation) Bodies() []*physics.Body {
	return s.bodies
}

// Steps returns the number of completed steps.
func (s *Simulation) Steps() int {
	return s.steps
}

// Elapsed returns the simulated time in seconds.
func (s *Simulation) Elapsed() float64 {
	return s.elapsed
}

// Days returns the simulated time in days.
func (s *Simulation) Days() float64 {
	return s.elapsed / physics.Timestep
}

// Scheme returns the configured update scheme.
func (s *Simulation) Scheme() Scheme {
	return s.scheme
}

// Primary returns the first central body, if any.
func (s *Simulation) Primary() (*physics.Body, bool) {
	for _, b := range s.bodies {
		if b.Central {
			return b, true
		}
	}
	return nil, false
}

// LogState writes the current state of every body.
func (s *Simulation) LogState() {
	s.logger.Info("simulation state", "day", s.Days(), "steps", s.steps)
	for _, b := range s.bodies {
		s.logger.Info("body",
			"name", b.Name,
			"id", b.ID,
			"x_au", b.X/physics.AU,
			"y_au", b.Y/physics.AU,
			"x_vel", b.XVel,
			"y_vel", b.YVel,
			"distance_to_primary_au", b.DistanceToPrimary/physics.AU,
			"trail", b.Orbit.Len(),
		)
	}
}
