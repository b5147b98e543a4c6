package analysis

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// ErrTooFewPoints is returned when a fit has fewer than three points.
var ErrTooFewPoints = errors.New("analysis: need at least 3 points")

// CircleFit is the least-squares circle through a set of trail points.
type CircleFit struct {
	Center r2.Vec
	Radius float64
	// Residual is the RMS of the radial deviations from Radius, in meters.
	// Zero for points exactly on a circle.
	Residual float64
}

// FitCircle fits a circle to points.
//
// Each point p_i satisfies |p_i - c|² = r². Subtracting the equation of a
// reference point p_k removes r and gives a linear system in c:
//
//	2(p_i - p_k)·c = |p_i|² - |p_k|²
//
// which is solved in the least-squares sense with a QR decomposition.
// Points are centered on their mean first to keep the system well scaled.
func FitCircle(points []r2.Vec) (CircleFit, error) {
	n := len(points)
	if n < 3 {
		return CircleFit{}, ErrTooFewPoints
	}

	var mean r2.Vec
	for _, p := range points {
		mean = r2.Add(mean, p)
	}
	mean = r2.Scale(1/float64(n), mean)

	centered := make([]r2.Vec, n)
	for i, p := range points {
		centered[i] = r2.Sub(p, mean)
	}

	// Use the last point as the reference.
	ref := centered[n-1]
	refNormSq := r2.Norm2(ref)

	rows := n - 1
	aData := make([]float64, rows*2)
	bData := make([]float64, rows)
	for i := 0; i < rows; i++ {
		diff := r2.Scale(2, r2.Sub(centered[i], ref))
		aData[i*2] = diff.X
		aData[i*2+1] = diff.Y
		bData[i] = r2.Norm2(centered[i]) - refNormSq
	}

	A := mat.NewDense(rows, 2, aData)
	b := mat.NewVecDense(rows, bData)

	var qr mat.QR
	qr.Factorize(A)

	var x mat.VecDense
	if err := qr.SolveVecTo(&x, false, b); err != nil {
		// Collinear or repeated points leave the center undetermined.
		return CircleFit{}, fmt.Errorf("circle fit failed: %w", err)
	}

	center := r2.Vec{X: x.AtVec(0), Y: x.AtVec(1)}

	radii := make([]float64, n)
	var sum float64
	for i, p := range centered {
		radii[i] = r2.Norm(r2.Sub(p, center))
		sum += radii[i]
	}
	radius := sum / float64(n)

	dev := mat.NewVecDense(n, nil)
	for i, r := range radii {
		dev.SetVec(i, r-radius)
	}
	residual := blas64.Nrm2(dev.RawVector()) / math.Sqrt(float64(n))

	return CircleFit{
		Center:   r2.Add(center, mean),
		Radius:   radius,
		Residual: residual,
	}, nil
}
