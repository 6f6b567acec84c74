package grad_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgrad/core"
	"github.com/katalvlaran/lvgrad/grad"
)

// TestNumerical matches known derivatives.
func TestNumerical(t *testing.T) {
	assert.InDelta(t, 6.0, grad.Numerical(func(x float64) float64 { return x * x }, 3), 1e-6)
	assert.InDelta(t, math.Cos(1), grad.Numerical(math.Sin, 1), 1e-6)
}

// TestCheck_Pass reports both derivatives for a cubic.
func TestCheck_Pass(t *testing.T) {
	r, err := grad.Check(func(x *core.Node) *core.Node { return core.Pow(x, 3) }, 2, 1e-4)
	require.NoError(t, err)
	assert.Equal(t, 2.0, r.X)
	assert.Equal(t, 12.0, r.Analytic)
	assert.InDelta(t, 12.0, r.Numeric, 1e-5)
	assert.LessOrEqual(t, r.AbsErr, 1e-4)
}

// TestCheck_Mismatch flags a builder whose graph disagrees with its value:
// the detached copy carries the value but none of the gradient.
func TestCheck_Mismatch(t *testing.T) {
	detached := func(x *core.Node) *core.Node {
		return core.Add(core.NewValue(x.Data()*x.Data()), 0)
	}
	r, err := grad.Check(detached, 1.5, 1e-4)
	assert.ErrorIs(t, err, grad.ErrGradientMismatch)
	assert.Equal(t, 0.0, r.Analytic)
	assert.InDelta(t, 3.0, r.Numeric, 1e-5)
}

// TestCheck_NonFiniteIsMismatch never accepts NaN.
func TestCheck_NonFiniteIsMismatch(t *testing.T) {
	_, err := grad.Check(func(x *core.Node) *core.Node { return core.Pow(x, 0.5) }, -1, 1e-4)
	assert.ErrorIs(t, err, grad.ErrGradientMismatch)
}

// TestCheck_NilGraph rejects a builder returning nil.
func TestCheck_NilGraph(t *testing.T) {
	_, err := grad.Check(func(*core.Node) *core.Node { return nil }, 0, 1e-4)
	assert.ErrorIs(t, err, grad.ErrNilGraph)
}
