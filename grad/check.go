package grad

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"

	"github.com/katalvlaran/lvgrad/core"
)

var (
	// ErrGradientMismatch indicates the analytic and numeric derivatives
	// differ by more than the requested tolerance.
	ErrGradientMismatch = errors.New("grad: analytic gradient does not match finite difference")

	// ErrNilGraph indicates a Check builder returned a nil node.
	ErrNilGraph = errors.New("grad: builder returned nil node")
)

// DefaultStep is the finite-difference step used by Numerical.
const DefaultStep = 1e-6

// Report is the outcome of a single gradient check.
type Report struct {
	X        float64 // evaluation point
	Analytic float64 // gradient from Backward
	Numeric  float64 // central finite difference
	AbsErr   float64 // |Analytic - Numeric|
}

// Numerical estimates f'(x) with a central difference of step DefaultStep.
func Numerical(f func(float64) float64, x float64) float64 {
	return fd.Derivative(f, x, &fd.Settings{
		Formula: fd.Central,
		Step:    DefaultStep,
	})
}

// Check differentiates the scalar function described by build at x twice:
// analytically, by building a graph over a fresh leaf and running Backward,
// and numerically, by evaluating fresh graphs around x. It returns
// ErrGradientMismatch when the two differ by more than tol.
// A non-finite error is always a mismatch.
func Check(build func(x *core.Node) *core.Node, x, tol float64) (Report, error) {
	leaf := core.NewValue(x)
	out := build(leaf)
	if out == nil {
		return Report{X: x}, ErrNilGraph
	}
	Backward(out)

	numeric := Numerical(func(v float64) float64 {
		return build(core.NewValue(v)).Data()
	}, x)

	r := Report{
		X:        x,
		Analytic: leaf.Grad(),
		Numeric:  numeric,
		AbsErr:   math.Abs(leaf.Grad() - numeric),
	}
	if !(r.AbsErr <= tol) {
		return r, fmt.Errorf("%w: at x=%g analytic=%g numeric=%g", ErrGradientMismatch, x, r.Analytic, r.Numeric)
	}

	return r, nil
}
