// Package quantity provides the immutable value type at the center of the
// engine: a numeric magnitude, a metric prefix, and a dimension vector.
//
// # Value Semantics
//
// A Quantity represents Value × Prefix.Factor in the unit described by its
// dimension vector. Every operation returns a new Quantity; nothing is
// mutated in place. Binary operators that need a common scale (Add, Sub,
// Cmp) normalize both operands to SI first and return an identity-prefixed
// result.
//
// Multiplication and division of two quantities deliberately drop prefix
// information: the raw values are combined, the dimension vectors multiply,
// and the result carries the identity prefix. Scale information is
// recovered later through best-prefix selection during formatting. Scalar
// multiplication and division, in contrast, preserve the original prefix.
//
// Quantities carry no composite-unit name; display names are resolved on
// demand by the unit registry and the conversion engine.
package quantity

import (
	"fmt"

	"github.com/unitkit/unitkit/pkg/dimension"
	"github.com/unitkit/unitkit/pkg/errors"
	"github.com/unitkit/unitkit/pkg/prefix"
)

// Quantity is (value, prefix, dimension vector). The zero value is a
// dimensionless zero with identity prefix.
//
// Unit is an optional display-symbol hint: the named unit the value is
// currently expressed in after a unit conversion ("eV", "mph"). Empty means
// the value is in the SI composite for Dims. Arithmetic results always
// clear it — only conversions set it.
type Quantity struct {
	Value  float64
	Prefix prefix.Prefix
	Dims   dimension.Vector
	Unit   string
}

// New constructs a Quantity.
func New(value float64, p prefix.Prefix, dims dimension.Vector) Quantity {
	return Quantity{Value: value, Prefix: p, Dims: dims}
}

// Scalar constructs a dimensionless, identity-prefixed Quantity.
func Scalar(value float64) Quantity {
	return Quantity{Value: value, Prefix: prefix.Identity()}
}

// SI returns the prefix-normalized magnitude: Value × Prefix.Factor.
func (q Quantity) SI() float64 {
	return q.Value * q.Prefix.Float()
}

// Add returns the SI-normalized sum. Both operands must share a dimension
// vector; the result carries the identity prefix.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	if q.Dims != o.Dims {
		return Quantity{}, errors.New(errors.ErrCodeIncompatibleDimensions,
			"cannot add %s to %s", o.Dims, q.Dims)
	}
	return Quantity{Value: q.SI() + o.SI(), Prefix: prefix.Identity(), Dims: q.Dims}, nil
}

// Sub returns the SI-normalized difference, with the same dimension rule
// as [Quantity.Add].
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	if q.Dims != o.Dims {
		return Quantity{}, errors.New(errors.ErrCodeIncompatibleDimensions,
			"cannot subtract %s from %s", o.Dims, q.Dims)
	}
	return Quantity{Value: q.SI() - o.SI(), Prefix: prefix.Identity(), Dims: q.Dims}, nil
}

// Neg returns the negated quantity. Negation is linear, so prefix, unit
// hint, and dimensions are kept as-is.
func (q Quantity) Neg() Quantity {
	return Quantity{Value: -q.Value, Prefix: q.Prefix, Dims: q.Dims, Unit: q.Unit}
}

// Mul multiplies two quantities: raw value product, dimension vectors
// multiplied, identity result prefix. Operand prefixes are dropped, not
// folded into the value.
func (q Quantity) Mul(o Quantity) Quantity {
	return Quantity{Value: q.Value * o.Value, Prefix: prefix.Identity(), Dims: q.Dims.Mul(o.Dims)}
}

// Div divides two quantities: raw value quotient, dimension vectors
// divided, identity result prefix. Operand prefixes are dropped.
func (q Quantity) Div(o Quantity) Quantity {
	return Quantity{Value: q.Value / o.Value, Prefix: prefix.Identity(), Dims: q.Dims.Div(o.Dims)}
}

// Scale multiplies by a bare scalar, preserving prefix, unit hint, and
// dimensions.
func (q Quantity) Scale(s float64) Quantity {
	return Quantity{Value: q.Value * s, Prefix: q.Prefix, Dims: q.Dims, Unit: q.Unit}
}

// ScaleDiv divides by a bare scalar, preserving prefix, unit hint, and
// dimensions.
func (q Quantity) ScaleDiv(s float64) Quantity {
	return Quantity{Value: q.Value / s, Prefix: q.Prefix, Dims: q.Dims, Unit: q.Unit}
}

// ScalarDiv divides a bare scalar by a quantity: identity-prefixed
// reciprocal with the inverted dimension vector.
func ScalarDiv(s float64, q Quantity) Quantity {
	return Quantity{
		Value:  s / q.Value,
		Prefix: prefix.Identity(),
		Dims:   dimension.Vector{}.Div(q.Dims),
	}
}

// Pow raises the quantity to an integer power: value^n, dimensions scaled
// by n, identity result prefix.
func (q Quantity) Pow(n int) Quantity {
	return Quantity{Value: intPow(q.Value, n), Prefix: prefix.Identity(), Dims: q.Dims.Pow(n)}
}

// Cmp compares two quantities by SI magnitude, returning -1, 0, or +1.
// Comparing across different dimension vectors is an error.
func (q Quantity) Cmp(o Quantity) (int, error) {
	if q.Dims != o.Dims {
		return 0, errors.New(errors.ErrCodeIncompatibleDimensions,
			"cannot compare %s with %s", q.Dims, o.Dims)
	}
	a, b := q.SI(), o.SI()
	switch {
	case a < b:
		return -1, nil
	case a > b:
		return 1, nil
	}
	return 0, nil
}

// Equal reports whether two quantities have equal SI magnitude and equal
// dimensions. Unlike ordering, equality across different dimensions is
// simply false, never an error.
func (q Quantity) Equal(o Quantity) bool {
	return q.Dims == o.Dims && q.SI() == o.SI()
}

// String renders "<value> <prefix><raw dims>" using the dimension vector's
// base-symbol notation. Composite names need a registry; use the conversion
// engine's Pretty for display-quality output.
func (q Quantity) String() string {
	if q.Dims.IsZero() {
		if q.Prefix.Symbol == "" {
			return fmt.Sprintf("%g", q.Value)
		}
		return fmt.Sprintf("%g %s", q.Value, q.Prefix.Symbol)
	}
	return fmt.Sprintf("%g %s%s", q.Value, q.Prefix.Symbol, q.Dims)
}

// intPow computes x^n for integer n without drifting through math.Pow for
// the common small exponents.
func intPow(x float64, n int) float64 {
	if n < 0 {
		return 1 / intPow(x, -n)
	}
	result := 1.0
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			result *= x
		}
		x *= x
	}
	return result
}
