package grad_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgrad/core"
	"github.com/katalvlaran/lvgrad/grad"
)

// scenario builds L = tanh(a*b + c) with a=2, b=-3, c=10.
type scenario struct {
	a, b, c, e, d, L *core.Node
}

func newScenario() scenario {
	var s scenario
	s.a = core.NewValue(2.0, core.WithLabel("a"))
	s.b = core.NewValue(-3.0, core.WithLabel("b"))
	s.c = core.NewValue(10.0, core.WithLabel("c"))
	s.e = core.Mul(s.a, s.b).Named("e")
	s.d = core.Add(s.e, s.c).Named("d")
	s.L = core.Tanh(s.d).Named("L")

	return s
}

// TestBackward_EndToEnd reproduces the reference forward and backward values.
func TestBackward_EndToEnd(t *testing.T) {
	s := newScenario()
	assert.Equal(t, -6.0, s.e.Data())
	assert.Equal(t, 4.0, s.d.Data())
	assert.InDelta(t, 0.9993292997, s.L.Data(), 1e-9)

	grad.Backward(s.L)

	const tol = 1e-6
	dd := 1 - s.L.Data()*s.L.Data()
	assert.Equal(t, 1.0, s.L.Grad())
	assert.InDelta(t, 0.0013409507, s.d.Grad(), tol)
	assert.InDelta(t, dd, s.d.Grad(), 1e-15)
	assert.InDelta(t, s.d.Grad(), s.c.Grad(), 1e-15)
	assert.InDelta(t, s.d.Grad(), s.e.Grad(), 1e-15)
	assert.InDelta(t, -0.0040228520, s.a.Grad(), tol)
	assert.InDelta(t, 0.0026819014, s.b.Grad(), tol)
}

// TestBackward_SharedSubexpression: b = a + a gives a.grad == 2.
func TestBackward_SharedSubexpression(t *testing.T) {
	a := core.NewValue(3)
	b := core.Add(a, a)

	grad.Backward(b)
	assert.Equal(t, 2.0, a.Grad())
}

// TestBackward_MultiplyRule covers e = a*b at a=2, b=-3.
func TestBackward_MultiplyRule(t *testing.T) {
	a, b := core.NewValue(2), core.NewValue(-3)
	e := core.Mul(a, b)

	grad.Backward(e)
	assert.Equal(t, -6.0, e.Data())
	assert.Equal(t, -3.0, a.Grad())
	assert.Equal(t, 2.0, b.Grad())
}

// TestBackward_PowerRule covers y = a**2 at a=4.
func TestBackward_PowerRule(t *testing.T) {
	a := core.NewValue(4)
	y := core.Pow(a, 2)

	grad.Backward(y)
	assert.Equal(t, 16.0, y.Data())
	assert.Equal(t, 8.0, a.Grad())
}

// TestBackward_Diamond accumulates through two distinct paths.
// f = (a*b) + tanh(a), so df/da = b + 1 - tanh(a)².
func TestBackward_Diamond(t *testing.T) {
	a, b := core.NewValue(0.7), core.NewValue(1.5)
	f := core.Add(core.Mul(a, b), core.Tanh(a))

	grad.Backward(f)
	th := math.Tanh(0.7)
	assert.InDelta(t, 1.5+1-th*th, a.Grad(), 1e-12)
	assert.InDelta(t, 0.7, b.Grad(), 1e-12)
}

// TestBackward_ReusedIntermediate checks an intermediate consumed twice:
// u = a*a, f = u*u = a⁴, df/da = 4a³.
func TestBackward_ReusedIntermediate(t *testing.T) {
	a := core.NewValue(1.5)
	u := core.Mul(a, a)
	f := core.Mul(u, u)

	grad.Backward(f)
	assert.InDelta(t, 4*1.5*1.5*1.5, a.Grad(), 1e-12)
	assert.InDelta(t, 2*u.Data(), u.Grad(), 1e-12)
}

// TestBackward_DerivedOps differentiates Sub and Div through their
// primitive expansions.
func TestBackward_DerivedOps(t *testing.T) {
	a, b := core.NewValue(6), core.NewValue(4)
	q := core.Div(core.Sub(a, b), b) // (a-b)/b

	grad.Backward(q)
	assert.InDelta(t, 0.5, q.Data(), 1e-12)
	assert.InDelta(t, 1.0/4, a.Grad(), 1e-12)
	assert.InDelta(t, -6.0/16, b.Grad(), 1e-12) // d/db (a/b - 1) = -a/b²
}

// TestBackward_Twice doubles every gradient below the root.
func TestBackward_Twice(t *testing.T) {
	once := newScenario()
	grad.Backward(once.L)

	twice := newScenario()
	grad.Backward(twice.L)
	grad.Backward(twice.L)

	assert.Equal(t, 1.0, twice.L.Grad(), "the root is seeded, not accumulated")
	pairs := [][2]*core.Node{
		{once.d, twice.d}, {once.e, twice.e}, {once.c, twice.c},
		{once.a, twice.a}, {once.b, twice.b},
	}
	for _, p := range pairs {
		assert.InDelta(t, 2*p[0].Grad(), p[1].Grad(), 1e-15, p[0].Label())
	}
}

// TestBackward_OverlappingRoots adds gradients from two roots that share
// leaves.
func TestBackward_OverlappingRoots(t *testing.T) {
	a := core.NewValue(3)
	f := core.Mul(a, 2)
	g := core.Pow(a, 2)

	grad.Backward(f)
	grad.Backward(g)
	assert.Equal(t, 2.0+6.0, a.Grad())
}

// TestZeroGrad resets the reachable graph so a second pass is fresh.
func TestZeroGrad(t *testing.T) {
	s := newScenario()
	grad.Backward(s.L)
	first := s.a.Grad()

	grad.ZeroGrad(s.L)
	for n, g := range grad.Gradients(s.L) {
		assert.Zero(t, g, n.Label())
	}

	grad.Backward(s.L)
	assert.Equal(t, first, s.a.Grad())
	assert.Equal(t, 4.0, s.d.Data(), "data is untouched")
}

// TestGradients snapshots every reachable node.
func TestGradients(t *testing.T) {
	s := newScenario()
	grad.Backward(s.L)

	snap := grad.Gradients(s.L)
	require.Len(t, snap, 6)
	assert.Equal(t, s.a.Grad(), snap[s.a])
	assert.Equal(t, 1.0, snap[s.L])
	assert.Nil(t, grad.Gradients(nil))
}

// TestBackward_Nil is a no-op.
func TestBackward_Nil(t *testing.T) {
	assert.NotPanics(t, func() {
		grad.Backward(nil)
		grad.ZeroGrad(nil)
	})
}

// TestBackward_NonFinitePropagates runs over NaN without guarding.
func TestBackward_NonFinitePropagates(t *testing.T) {
	a := core.NewValue(-2)
	r := core.Pow(a, 0.5)
	out := core.Mul(r, 3)

	grad.Backward(out)
	assert.True(t, math.IsNaN(out.Data()))
	assert.True(t, math.IsNaN(a.Grad()))
}

// TestBackward_TanhFiniteDifference compares tanh gradients with a
// central difference at several points.
func TestBackward_TanhFiniteDifference(t *testing.T) {
	for _, x := range []float64{-3, -1.2, -0.4, 0, 0.3, 0.9, 2.5} {
		r, err := grad.Check(func(n *core.Node) *core.Node { return core.Tanh(n) }, x, 1e-4)
		require.NoError(t, err)
		assert.InDelta(t, 1-math.Tanh(x)*math.Tanh(x), r.Analytic, 1e-12)
	}
}

// TestBackward_RandomExpressions checks random compositions against finite
// differences with respect to one input.
func TestBackward_RandomExpressions(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for trial := 0; trial < 25; trial++ {
		ops := make([]int, 12)
		consts := make([]float64, 12)
		for i := range ops {
			ops[i] = rng.IntN(4)
			consts[i] = rng.Float64()*2 - 1
		}
		build := func(x *core.Node) *core.Node {
			acc := x
			for i, op := range ops {
				switch op {
				case 0:
					acc = core.Add(acc, core.Mul(x, consts[i]))
				case 1:
					acc = core.Mul(acc, consts[i])
				case 2:
					acc = core.Tanh(acc)
				default:
					acc = core.Add(core.Pow(core.Tanh(acc), 2), x)
				}
			}
			return acc
		}
		x := rng.Float64()*2 - 1
		_, err := grad.Check(build, x, 1e-5)
		require.NoError(t, err, "trial %d at x=%g", trial, x)
	}
}
