package physics

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func mustBody(t *testing.T, name string, x, y, mass float64) *Body {
	t.Helper()
	b, err := NewBody(name, x, y, 5, color.RGBA{255, 255, 255, 255}, mass)
	if err != nil {
		t.Fatalf("NewBody(%s): %v", name, err)
	}
	return b
}

func TestNewBodyRejectsInvalidInput(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	tests := []struct {
		name   string
		mass   float64
		radius float64
		want   error
	}{
		{"zero mass", 0, 1, ErrInvalidMass},
		{"negative mass", -5.97e24, 1, ErrInvalidMass},
		{"NaN mass", math.NaN(), 1, ErrInvalidMass},
		{"infinite mass", math.Inf(1), 1, ErrInvalidMass},
		{"zero radius", 1e24, 0, ErrInvalidRadius},
		{"negative radius", 1e24, -2, ErrInvalidRadius},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBody("x", 0, 0, tt.radius, white, tt.mass)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestNewBodyDefaults(t *testing.T) {
	b := mustBody(t, "Earth", AU, 0, 5.9742e24)

	if b.XVel != 0 || b.YVel != 0 {
		t.Errorf("Expected zero initial velocity, got (%g, %g)", b.XVel, b.YVel)
	}
	if b.Orbit.Len() != 0 {
		t.Errorf("Expected empty orbit, got %d points", b.Orbit.Len())
	}
	if b.Central {
		t.Error("Expected body to not be central by default")
	}
	if len(b.ID) != len("body-")+8 {
		t.Errorf("Unexpected ID format %q", b.ID)
	}
}

func TestAttractionMagnitudeAndDirection(t *testing.T) {
	sun := mustBody(t, "Sun", 0, 0, 1.98892e30)
	earth := mustBody(t, "Earth", -AU, 0, 5.9742e24)

	fx, fy, err := earth.Attraction(sun)
	if err != nil {
		t.Fatalf("Attraction: %v", err)
	}

	want := G * 5.9742e24 * 1.98892e30 / (AU * AU)
	if !scalar.EqualWithinRel(fx, want, 1e-12) {
		t.Errorf("Expected fx %g, got %g", want, fx)
	}
	if math.Abs(fy) > want*1e-12 {
		t.Errorf("Expected fy ~0, got %g", fy)
	}
}

func TestAttractionSymmetry(t *testing.T) {
	layouts := [][4]float64{
		{0, 0, AU, 0},
		{0.3 * AU, -1.2 * AU, -5.2 * AU, 0.7 * AU},
		{1e9, 1e9, 1e9 + 1, 1e9 - 1},
		{-30 * AU, 2 * AU, 19 * AU, -0.4 * AU},
	}

	for _, l := range layouts {
		a := mustBody(t, "A", l[0], l[1], 3.3e23)
		b := mustBody(t, "B", l[2], l[3], 1.898e27)

		ax, ay, err := a.Attraction(b)
		if err != nil {
			t.Fatalf("Attraction A->B: %v", err)
		}
		bx, by, err := b.Attraction(a)
		if err != nil {
			t.Fatalf("Attraction B->A: %v", err)
		}

		magA := math.Hypot(ax, ay)
		magB := math.Hypot(bx, by)
		if !scalar.EqualWithinRel(magA, magB, 1e-12) {
			t.Errorf("Layout %v: magnitudes differ: %g vs %g", l, magA, magB)
		}
		if math.Abs(ax+bx) > magA*1e-12 || math.Abs(ay+by) > magA*1e-12 {
			t.Errorf("Layout %v: forces not opposite: (%g, %g) vs (%g, %g)", l, ax, ay, bx, by)
		}
	}
}

func TestAttractionRecordsDistanceToPrimary(t *testing.T) {
	sun := mustBody(t, "Sun", 0, 0, 1.98892e30)
	sun.Central = true
	mars := mustBody(t, "Mars", 0, -1.524*AU, 6.39e23)
	venus := mustBody(t, "Venus", 0.723*AU, 0, 4.8685e24)

	if _, _, err := mars.Attraction(venus); err != nil {
		t.Fatal(err)
	}
	if mars.DistanceToPrimary != 0 {
		t.Errorf("Expected no update from a non-central body, got %g", mars.DistanceToPrimary)
	}

	if _, _, err := mars.Attraction(sun); err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinRel(mars.DistanceToPrimary, 1.524*AU, 1e-15) {
		t.Errorf("Expected distance %g, got %g", 1.524*AU, mars.DistanceToPrimary)
	}
}

// Coincident bodies are a fault unless a distance floor is configured.
func TestAttractionCoincidentBodies(t *testing.T) {
	a := mustBody(t, "A", AU, AU, 1e24)
	b := mustBody(t, "B", AU, AU, 1e24)

	_, _, err := a.Attraction(b)
	if !errors.Is(err, ErrCoincident) {
		t.Fatalf("Expected ErrCoincident, got %v", err)
	}
	var fault *NumericFault
	if !errors.As(err, &fault) {
		t.Fatalf("Expected *NumericFault, got %T", err)
	}
	if fault.Body != "A" || fault.Other != "B" {
		t.Errorf("Expected fault A -> B, got %s -> %s", fault.Body, fault.Other)
	}

	floored := Gravity{MinDistance: 1e6}
	fx, fy, err := floored.Attraction(a, b)
	if err != nil {
		t.Fatalf("Expected floored attraction to succeed, got %v", err)
	}
	if fx != 0 || fy != 0 {
		t.Errorf("Expected no force between coincident bodies, got (%g, %g)", fx, fy)
	}
}

func TestDistanceFloorRaisesCloseForces(t *testing.T) {
	a := mustBody(t, "A", 0, 0, 1e24)
	b := mustBody(t, "B", 1000, 0, 1e24)

	fx, fy, err := Gravity{MinDistance: 1e6}.Attraction(a, b)
	if err != nil {
		t.Fatal(err)
	}
	want := G * 1e24 * 1e24 / (1e6 * 1e6)
	if !scalar.EqualWithinRel(fx, want, 1e-12) || fy != 0 {
		t.Errorf("Expected (%g, 0), got (%g, %g)", want, fx, fy)
	}
}

func TestDistanceFloorOnlyAffectsCloseBodies(t *testing.T) {
	a := mustBody(t, "A", 0, 0, 1e24)
	b := mustBody(t, "B", AU, 0, 1e24)

	plainX, _, err := a.Attraction(b)
	if err != nil {
		t.Fatal(err)
	}
	flooredX, _, err := Gravity{MinDistance: 1e6}.Attraction(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if plainX != flooredX {
		t.Errorf("Expected identical force beyond the floor, got %g vs %g", plainX, flooredX)
	}
}

func TestNetForceOfIsolatedBodyIsZero(t *testing.T) {
	lone := mustBody(t, "Lone", 3*AU, -2*AU, 1.989e30)
	lone.XVel = 1000

	fx, fy, err := lone.NetForce([]*Body{lone})
	if err != nil {
		t.Fatal(err)
	}
	if fx != 0 || fy != 0 {
		t.Errorf("Expected exactly (0, 0), got (%g, %g)", fx, fy)
	}

	if err := lone.UpdatePosition([]*Body{lone}); err != nil {
		t.Fatal(err)
	}
	if lone.XVel != 1000 || lone.YVel != 0 {
		t.Errorf("Expected unchanged velocity, got (%g, %g)", lone.XVel, lone.YVel)
	}
	if lone.X != 3*AU+1000*Timestep {
		t.Errorf("Expected x %g, got %g", 3*AU+1000*Timestep, lone.X)
	}
}

// Velocity is updated first and the new velocity moves the body.
func TestUpdatePositionOrdering(t *testing.T) {
	sun := mustBody(t, "Sun", 0, 0, 1.98892e30)
	earth := mustBody(t, "Earth", -AU, 0, 5.9742e24)
	earth.YVel = 29.783 * 1000
	bodies := []*Body{sun, earth}

	fx, fy, err := earth.NetForce(bodies)
	if err != nil {
		t.Fatal(err)
	}
	wantXVel := 0 + fx/earth.Mass*Timestep
	wantYVel := 29.783*1000 + fy/earth.Mass*Timestep
	wantX := -AU + wantXVel*Timestep
	wantY := 0 + wantYVel*Timestep

	if err := earth.UpdatePosition(bodies); err != nil {
		t.Fatal(err)
	}

	if earth.XVel != wantXVel || earth.YVel != wantYVel {
		t.Errorf("Expected velocity (%g, %g), got (%g, %g)", wantXVel, wantYVel, earth.XVel, earth.YVel)
	}
	if earth.X != wantX || earth.Y != wantY {
		t.Errorf("Expected position (%g, %g), got (%g, %g)", wantX, wantY, earth.X, earth.Y)
	}
	last, ok := earth.Orbit.Last()
	if !ok || last.X != earth.X || last.Y != earth.Y {
		t.Errorf("Expected orbit to end at the new position, got %v", last)
	}
	if sun.Orbit.Len() != 0 {
		t.Error("Expected other bodies to be untouched")
	}
}

func TestUpdatePositionFaultLeavesBodyUnchanged(t *testing.T) {
	a := mustBody(t, "A", 0, 0, 1e24)
	b := mustBody(t, "B", 0, 0, 1e24)
	a.XVel = 5

	err := a.UpdatePosition([]*Body{a, b})
	if !errors.Is(err, ErrCoincident) {
		t.Fatalf("Expected ErrCoincident, got %v", err)
	}
	if a.X != 0 || a.XVel != 5 || a.Orbit.Len() != 0 {
		t.Errorf("Expected unchanged body after fault, got %s with %d orbit points", a, a.Orbit.Len())
	}
}
