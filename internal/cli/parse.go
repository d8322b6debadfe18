package cli

import (
	"strconv"

	"github.com/unitkit/unitkit/pkg/convert"
	"github.com/unitkit/unitkit/pkg/errors"
	"github.com/unitkit/unitkit/pkg/prefix"
	"github.com/unitkit/unitkit/pkg/quantity"
)

// parseQuantity turns a value string plus a unit expression into a
// quantity. Three expression forms are accepted, tried in order:
//
//   - an exact registry symbol ("m", "J", "mi") — non-canonical symbols
//     keep their name so round trips go through the conversion table
//   - a metric prefix followed by an SI expression ("km", "ms", "kW·h")
//   - a bare SI expression ("m/s^2", "kg.m^2")
func parseQuantity(e *convert.Engine, valueStr, expr string) (quantity.Quantity, error) {
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return quantity.Quantity{}, errors.New(errors.ErrCodeInvalidInput, "not a number: %q", valueStr)
	}

	if vec, ok := e.Units().Lookup(expr); ok {
		q := quantity.New(value, prefix.Identity(), vec)
		if name, _ := e.Units().CompositeName(vec); name != expr {
			q.Unit = expr
		}
		return q, nil
	}

	if sym, ok := e.Prefixes().HasPrefix(expr); ok {
		rest := expr[len(sym):]
		if vec, err := e.Units().ParseExpr(rest); err == nil {
			p, err := e.Prefixes().Resolve(sym)
			if err != nil {
				return quantity.Quantity{}, err
			}
			return quantity.New(value, p, vec), nil
		}
	}

	vec, err := e.Units().ParseExpr(expr)
	if err != nil {
		return quantity.Quantity{}, err
	}
	return quantity.New(value, prefix.Identity(), vec), nil
}

// formatQuantity renders a quantity as "<value> <prefix><name>", using
// the display symbol when the quantity carries one.
func formatQuantity(e *convert.Engine, q quantity.Quantity) string {
	name := q.Unit
	if name == "" {
		name = e.Units().Name(q.Dims)
	}
	return strconv.FormatFloat(q.Value, 'g', -1, 64) + " " + q.Prefix.Symbol + name
}
