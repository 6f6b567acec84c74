// File: ops.go
// Role: Operation builders. Each builder evaluates the forward value and
// records the op tag whose local rule PropagateGrad replays.

package core

import (
	"fmt"
	"math"
)

// Operand is anything a builder accepts as an input: an existing node or
// a bare number. Numbers are promoted to fresh zero-gradient leaves, so
// Add(a, 1) and Add(1, a) build the same expression.
type Operand interface {
	*Node | float64 | float32 | int | int64
}

// promote returns x as a node, wrapping numeric literals in a leaf.
// A nil *Node is a programming error and panics with ErrNilNode.
func promote[T Operand](x T) *Node {
	switch v := any(x).(type) {
	case *Node:
		if v == nil {
			panic(ErrNilNode)
		}
		return v
	case float64:
		return NewValue(v)
	case float32:
		return NewValue(float64(v))
	case int:
		return NewValue(float64(v))
	case int64:
		return NewValue(float64(v))
	}

	panic(fmt.Sprintf("core: unsupported operand %T", x)) // unreachable: Operand is closed
}

// Add returns a node holding a + b.
// Local rule: a.grad += g, b.grad += g.
func Add[A, B Operand](a A, b B) *Node {
	x, y := promote(a), promote(b)

	return newNode(x.data+y.data, Op{Kind: OpAdd}, x, y)
}

// Mul returns a node holding a * b.
// Local rule: a.grad += b*g, b.grad += a*g.
func Mul[A, B Operand](a A, b B) *Node {
	x, y := promote(a), promote(b)

	return newNode(x.data*y.data, Op{Kind: OpMul}, x, y)
}

// Pow returns a node holding a**k for a constant exponent k.
// The exponent is not part of the graph and receives no gradient.
// Local rule: a.grad += k * a**(k-1) * g.
//
// Domain errors (negative base with a fractional k, zero base with a
// negative k) yield NaN or ±Inf data, not an error.
func Pow[A Operand](a A, k float64) *Node {
	x := promote(a)

	return newNode(math.Pow(x.data, k), Op{Kind: OpPow, Exponent: k}, x)
}

// PowOf is Pow for an exponent whose type is only known at run time.
// k must be a Go numeric value; a *Node or any other type is rejected with
// ErrInvalidExponent before any node is created.
func PowOf[A Operand](a A, k any) (*Node, error) {
	exp, err := exponent(k)
	if err != nil {
		return nil, err
	}
	if n, ok := any(a).(*Node); ok && n == nil {
		return nil, ErrNilNode
	}

	return Pow(a, exp), nil
}

// exponent converts a dynamically typed constant into float64.
func exponent(k any) (float64, error) {
	switch v := k.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case *Node:
		// differentiating w.r.t. the exponent is not supported
		return 0, fmt.Errorf("%w: got graph node", ErrInvalidExponent)
	default:
		return 0, fmt.Errorf("%w: got %T", ErrInvalidExponent, k)
	}
}

// Tanh returns a node holding tanh(a).
// math.Tanh saturates to ±1 for large |a| instead of overflowing.
// Local rule: a.grad += (1 - t²) * g, with t the output value.
func Tanh[A Operand](a A) *Node {
	x := promote(a)

	return newNode(math.Tanh(x.data), Op{Kind: OpTanh}, x)
}

// Neg returns -a, built as a * -1.
func Neg[A Operand](a A) *Node {
	return Mul(a, -1.0)
}

// Sub returns a - b, built as a + (b * -1).
func Sub[A, B Operand](a A, b B) *Node {
	return Add(a, Neg(b))
}

// Div returns a / b, built as a * b**-1.
func Div[A, B Operand](a A, b B) *Node {
	return Mul(a, Pow(b, -1))
}

// Sum folds xs with Add from left to right.
// An empty sum is a zero leaf; a single term is returned unchanged.
func Sum(xs ...*Node) *Node {
	if len(xs) == 0 {
		return NewValue(0)
	}
	acc := xs[0]
	for _, x := range xs[1:] {
		acc = Add(acc, x)
	}

	return acc
}
