package physics

// Fixed physical and rendering parameters of the simulation.
const (
	AU       = 149.6e6 * 1000 // 1 AU in meters
	G        = 6.67428e-11    // Gravitational constant
	Scale    = 250 / AU       // Meters to pixels at zoom 1
	Timestep = 3600 * 24      // One simulated day in seconds
)
