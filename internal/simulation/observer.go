package simulation

// Observer is notified after every successful step.
type Observer interface {
	// OnStep receives the simulation after its state has advanced.
	// Errors are logged by the simulation and do not stop it.
	OnStep(sim *Simulation) error
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(sim *Simulation) error

// OnStep calls f(sim).
func (f ObserverFunc) OnStep(sim *Simulation) error {
	return f(sim)
}
