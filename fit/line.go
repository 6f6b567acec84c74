package fit

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvgrad/core"
	"github.com/katalvlaran/lvgrad/grad"
)

// Result holds the fitted parameters and the loss recorded before each
// update (Losses[i] is the MSE at the start of iteration i).
type Result struct {
	W, B   float64
	Losses []float64
}

// FinalLoss returns the last recorded loss, or NaN when none was recorded.
func (r Result) FinalLoss() float64 {
	if len(r.Losses) == 0 {
		return math.NaN()
	}

	return r.Losses[len(r.Losses)-1]
}

// Line fits y ≈ w·x + b by gradient descent on the mean squared error.
//
// Errors:
//   - ErrEmptyInput      len(xs) == 0
//   - ErrLengthMismatch  len(xs) != len(ys)
//   - ErrDiverged        the loss became non-finite; the partial Result
//     (parameters before the failing step, losses so far) is returned too.
//
// Complexity: O(iters · n) time, O(n) live graph per iteration.
func Line(xs, ys []float64, opts ...Option) (Result, error) {
	// 1. Validate samples
	if len(xs) == 0 {
		return Result{}, ErrEmptyInput
	}
	if len(xs) != len(ys) {
		return Result{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(xs), len(ys))
	}

	// 2. Resolve options
	cfg := newConfig(opts...)
	res := Result{W: cfg.w0, B: cfg.b0, Losses: make([]float64, 0, cfg.iters)}
	scale := 1 / float64(len(xs))

	// 3. Descend; a fresh graph per step keeps gradients independent
	for it := 0; it < cfg.iters; it++ {
		w := core.NewValue(res.W, core.WithLabel("w"))
		b := core.NewValue(res.B, core.WithLabel("b"))
		loss := mse(w, b, xs, ys, scale)

		if l := loss.Data(); math.IsNaN(l) || math.IsInf(l, 0) {
			if cfg.logger != nil {
				cfg.logger.Warn("fit: diverged", "iter", it, "w", res.W, "b", res.B)
			}
			return res, fmt.Errorf("%w: iteration %d", ErrDiverged, it)
		}
		res.Losses = append(res.Losses, loss.Data())

		grad.Backward(loss)
		res.W -= cfg.lr * w.Grad()
		res.B -= cfg.lr * b.Grad()

		if cfg.logger != nil && it%cfg.logEvery == 0 {
			cfg.logger.Debug("fit: step", "iter", it, "loss", loss.Data(), "w", res.W, "b", res.B)
		}
	}

	if cfg.logger != nil {
		cfg.logger.Info("fit: done", "iters", cfg.iters, "w", res.W, "b", res.B, "loss", res.FinalLoss())
	}

	return res, nil
}

// mse builds scale · Σ (w·x + b − y)² over the samples.
func mse(w, b *core.Node, xs, ys []float64, scale float64) *core.Node {
	terms := make([]*core.Node, len(xs))
	for i, x := range xs {
		pred := core.Add(core.Mul(w, x), b)
		terms[i] = core.Pow(core.Sub(pred, ys[i]), 2)
	}

	return core.Mul(core.Sum(terms...), scale)
}
