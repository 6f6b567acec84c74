// Package fit fits a straight line y ≈ w·x + b by gradient descent on the
// mean squared error, with every gradient computed by the autodiff engine.
//
// Each iteration builds a fresh graph over new leaves for w and b, so
// gradients start from zero without an explicit reset:
//
//	loss = (1/n) · Σ (w·xᵢ + b − yᵢ)²
//	grad.Backward(loss)
//	w -= lr · ∂loss/∂w,  b -= lr · ∂loss/∂b
//
// Options follow the usual functional style; option constructors panic on
// meaningless values (non-positive rate, nil logger), while Line returns
// sentinel errors for bad data or a diverging run.
//
// Synthetic produces reproducible noisy samples for demos and tests.
package fit
