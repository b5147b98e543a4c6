package scenario

import "planet-sim/internal/physics"

// Planet colors.
var (
	SunColor     = rgb(1.0, 1.0, 0.0)
	MercuryColor = rgb(0.31, 0.30, 0.32)
	VenusColor   = rgb(1.0, 1.0, 1.0)
	EarthColor   = rgb(0.39, 0.58, 0.93)
	MarsColor    = rgb(0.74, 0.15, 0.20)
	JupiterColor = rgb(1.0, 0.5, 0.0)
	SaturnColor  = rgb(0.8, 0.8, 0.8)
	UranusColor  = rgb(0.5, 0.8, 0.8)
	NeptuneColor = rgb(0.2, 0.2, 1.0)
)

// SolarSystem returns the Sun and the eight planets, all starting on the
// x axis. Inner planets start on the positive side, the rest on the negative
// side.
func SolarSystem() Scenario {
	return Scenario{
		Name: "Solar System",
		Bodies: []Spec{
			{Name: "Sun", X: 0, Y: 0, Radius: 20, Color: SunColor, Mass: 1.98892e30, Central: true},
			{Name: "Mercury", X: 0.387 * physics.AU, Radius: 6, Color: MercuryColor, Mass: 3.30e23, YVel: -47.4 * 1000},
			{Name: "Venus", X: 0.723 * physics.AU, Radius: 6, Color: VenusColor, Mass: 4.8685e24, YVel: -35.02 * 1000},
			{Name: "Earth", X: -1 * physics.AU, Radius: 6.5, Color: EarthColor, Mass: 5.9742e24, YVel: 29.783 * 1000},
			{Name: "Mars", X: -1.524 * physics.AU, Radius: 6.5, Color: MarsColor, Mass: 6.39e23, YVel: 24.077 * 1000},
			{Name: "Jupiter", X: -5.203 * physics.AU, Radius: 8.5, Color: JupiterColor, Mass: 1.898e27, YVel: 13.07 * 1000},
			{Name: "Saturn", X: -9.537 * physics.AU, Radius: 7.5, Color: SaturnColor, Mass: 5.683e26, YVel: 9.69 * 1000},
			{Name: "Uranus", X: -19.191 * physics.AU, Radius: 7.5, Color: UranusColor, Mass: 8.681e25, YVel: 6.81 * 1000},
			{Name: "Neptune", X: -30.069 * physics.AU, Radius: 7, Color: NeptuneColor, Mass: 1.024e26, YVel: 5.43 * 1000},
		},
	}
}

// EarthSun is the two-body reference: Earth one AU from a Sun at the origin.
func EarthSun() Scenario {
	return Scenario{
		Name: "Earth and Sun",
		Bodies: []Spec{
			{Name: "Sun", Radius: 20, Color: SunColor, Mass: 1.989e30, Central: true},
			{Name: "Earth", X: 1.496e11, Radius: 6.5, Color: EarthColor, Mass: 5.9742e24, YVel: 29783},
		},
	}
}
