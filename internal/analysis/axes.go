package analysis

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat"
)

// Axes describes the spread of a trail along its principal directions.
type Axes struct {
	Major float64 // semi-axis estimate along the first principal direction
	Minor float64 // semi-axis estimate along the second
	Angle float64 // direction of the major axis in [0, π)
}

// Flattening returns 1 - Minor/Major; 0 for a circle.
func (a Axes) Flattening() float64 {
	if a.Major == 0 {
		return 0
	}
	return 1 - a.Minor/a.Major
}

// PrincipalAxes runs a principal component analysis of points.
//
// For points spread evenly around an ellipse the variance along an axis is
// half the squared semi-axis, so sqrt(2·variance) recovers the semi-axes.
func PrincipalAxes(points []r2.Vec) (Axes, error) {
	n := len(points)
	if n < 3 {
		return Axes{}, ErrTooFewPoints
	}

	data := make([]float64, n*2)
	for i, p := range points {
		data[i*2] = p.X
		data[i*2+1] = p.Y
	}
	m := mat.NewDense(n, 2, data)

	var pc stat.PC
	if ok := pc.PrincipalComponents(m, nil); !ok {
		return Axes{}, errors.New("analysis: principal component analysis failed")
	}

	// VarsTo reports sample variances; rescale to the population variance.
	vars := pc.VarsTo(nil)
	for i := range vars {
		vars[i] *= float64(n-1) / float64(n)
	}
	var vecs mat.Dense
	pc.VectorsTo(&vecs)

	angle := math.Atan2(vecs.At(1, 0), vecs.At(0, 0))
	if angle < 0 {
		angle += math.Pi
	}
	if angle >= math.Pi {
		angle -= math.Pi
	}

	return Axes{
		Major: math.Sqrt(2 * math.Max(vars[0], 0)),
		Minor: math.Sqrt(2 * math.Max(vars[1], 0)),
		Angle: angle,
	}, nil
}
