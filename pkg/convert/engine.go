// Package convert implements the conversion engine: registered scalar
// conversion factors between named units, best-prefix selection, and
// human-readable formatting.
//
// # Engine
//
// An [Engine] owns its prefix table, unit registry, and conversion-factor
// table. Registries are explicit objects, never ambient globals; construct
// one engine per configuration and share it freely — all registries are
// safe for concurrent use.
//
//	eng := convert.NewEngine()
//	q := quantity.New(1, prefix.Identity(), dimension.Vector{Mass: 1, Length: 2, Time: -2})
//	ev, err := eng.ConvertUnit(q, "eV") // 6.241509e+18 eV
//
// # Conversion table
//
// The table is keyed by (source symbol, target symbol) pairs and is always
// kept symmetric: registering a factor inserts the exact reciprocal for the
// reverse direction. The stock table covers the energy, length, mass, time,
// velocity, power, pressure, force, angle, area, volume, and
// temperature-difference families.
package convert

import (
	"math"
	"math/big"
	"strconv"
	"sync"

	"github.com/unitkit/unitkit/pkg/dimension"
	"github.com/unitkit/unitkit/pkg/errors"
	"github.com/unitkit/unitkit/pkg/prefix"
	"github.com/unitkit/unitkit/pkg/quantity"
	"github.com/unitkit/unitkit/pkg/unit"
)

// pair keys the conversion table.
type pair struct {
	from, to string
}

// Engine bundles the registries and the conversion-factor table.
type Engine struct {
	prefixes *prefix.Table
	units    *unit.Registry

	mu          sync.RWMutex
	conversions map[pair]float64
}

// NewEngine returns an engine with the standard prefix table, the default
// SI unit registry, and the stock conversion table.
func NewEngine() *Engine {
	e := NewEngineWith(prefix.NewTable(), unit.NewSIRegistry())
	e.seed()
	return e
}

// NewEngineWith returns an engine over caller-owned registries and an empty
// conversion table.
func NewEngineWith(prefixes *prefix.Table, units *unit.Registry) *Engine {
	return &Engine{
		prefixes:    prefixes,
		units:       units,
		conversions: make(map[pair]float64),
	}
}

// Prefixes returns the engine's prefix table.
func (e *Engine) Prefixes() *prefix.Table { return e.prefixes }

// Units returns the engine's unit registry.
func (e *Engine) Units() *unit.Registry { return e.units }

// RegisterConversion records factor for (from, to) and the exact reciprocal
// for (to, from), keeping the table symmetric.
func (e *Engine) RegisterConversion(from, to string, factor float64) error {
	if from == "" || to == "" || from == to {
		return errors.New(errors.ErrCodeInvalidInput, "conversion needs two distinct symbols")
	}
	if factor <= 0 || math.IsInf(factor, 0) || math.IsNaN(factor) {
		return errors.New(errors.ErrCodeInvalidInput, "conversion factor must be a positive finite number")
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.conversions[pair{from, to}] = factor
	e.conversions[pair{to, from}] = 1 / factor
	return nil
}

// RegisterUnit registers a custom unit symbol and, when the dimension
// vector already has a canonical name, the conversion pair between that
// name and the new symbol. siFactor is the magnitude of one new unit
// expressed in the SI composite (e.g. 1055.06 for BTU against J).
func (e *Engine) RegisterUnit(symbol string, vec dimension.Vector, priority int, siFactor float64) error {
	base, hasBase := e.units.CompositeName(vec)
	if err := e.units.Register(symbol, vec, priority); err != nil {
		return err
	}
	if hasBase && base != symbol && siFactor > 0 {
		return e.RegisterConversion(symbol, base, siFactor)
	}
	return nil
}

// Factor returns the registered factor for (from, to).
func (e *Engine) Factor(from, to string) (float64, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	f, ok := e.conversions[pair{from, to}]
	return f, ok
}

// ConvertPrefix rescales a quantity into a different prefix without
// changing its physical meaning: 2 km becomes 2000 m.
func (e *Engine) ConvertPrefix(q quantity.Quantity, targetSymbol string) (quantity.Quantity, error) {
	target, err := e.prefixes.Resolve(targetSymbol)
	if err != nil {
		return quantity.Quantity{}, err
	}
	ratio := new(big.Rat).Quo(q.Prefix.Factor(), target.Factor())
	f, _ := ratio.Float64()
	out := quantity.New(q.Value*f, target, q.Dims)
	out.Unit = q.Unit
	return out, nil
}

// ConvertUnit converts a quantity to a different but dimensionally related
// unit through the conversion table. The source symbol is the canonical
// composite name of the quantity's dimensions; quantities whose dimensions
// resolve to no name (including bare dimensionless values) and unregistered
// pairs fail with UNKNOWN_CONVERSION. The result carries the identity
// prefix and the target unit's registered dimension vector when one exists
// (falling back to reparsing the target, then to the source dimensions).
func (e *Engine) ConvertUnit(q quantity.Quantity, targetSymbol string) (quantity.Quantity, error) {
	source := q.Unit
	if source == "" {
		var ok bool
		source, ok = e.units.CompositeName(q.Dims)
		if !ok {
			if q.Dims.IsZero() {
				return quantity.Quantity{}, errors.New(errors.ErrCodeUnknownConversion,
					"cannot convert a dimensionless quantity")
			}
			return quantity.Quantity{}, errors.New(errors.ErrCodeUnknownConversion,
				"no composite name for %s", q.Dims)
		}
	}

	if source == targetSymbol {
		out := quantity.New(q.Value*q.Prefix.Float(), prefix.Identity(), q.Dims)
		out.Unit = q.Unit
		return out, nil
	}

	factor, ok := e.Factor(source, targetSymbol)
	if !ok {
		return quantity.Quantity{}, errors.New(errors.ErrCodeUnknownConversion,
			"no known conversion from %s to %s", source, targetSymbol)
	}

	dims := q.Dims
	if vec, ok := e.units.Lookup(targetSymbol); ok {
		dims = vec
	} else if vec, err := e.units.ParseExpr(targetSymbol); err == nil {
		dims = vec
	}

	// the factor applies to the prefix-free magnitude, so fold the
	// source prefix in first
	out := quantity.New(q.Value*q.Prefix.Float()*factor, prefix.Identity(), dims)
	if name, ok := e.units.CompositeName(dims); !ok || name != targetSymbol {
		out.Unit = targetSymbol
	}
	return out, nil
}

// To converts a quantity to the unit expression expr, choosing between a
// prefix conversion ("km", "ms") and a unit conversion ("eV", "mph").
func (e *Engine) To(q quantity.Quantity, expr string) (quantity.Quantity, error) {
	// A value already expressed in a named non-SI unit can only move
	// through the conversion table.
	if q.Unit != "" {
		return e.ConvertUnit(q, expr)
	}

	// An exact registry symbol with the same dimensions is either the
	// canonical name (strip the prefix) or a unit conversion target.
	if vec, ok := e.units.Lookup(expr); ok && vec == q.Dims {
		if name, _ := e.units.CompositeName(q.Dims); name == expr {
			return e.ConvertPrefix(q, "")
		}
		return e.ConvertUnit(q, expr)
	}

	// A leading prefix whose remainder names the same dimensions is a
	// prefix conversion: "km" against a length is kilo + m.
	if sym, ok := e.prefixes.HasPrefix(expr); ok {
		rest := expr[len(sym):]
		if vec, err := e.units.ParseExpr(rest); err == nil && vec == q.Dims {
			return e.ConvertPrefix(q, sym)
		}
	}

	// Same dimensions under full expression parsing: normalize to the
	// identity prefix ("m/s" for a velocity).
	if vec, err := e.units.ParseExpr(expr); err == nil && vec == q.Dims {
		return e.ConvertPrefix(q, "")
	}

	return e.ConvertUnit(q, expr)
}

// BestPrefix rescales a quantity to the most readable prefix at the given
// granularity. A zero-valued quantity is returned unchanged (no logarithm
// of zero), as is a quantity whose stepped exponent has no registered
// prefix — no silent approximation.
func (e *Engine) BestPrefix(q quantity.Quantity, g prefix.Granularity) quantity.Quantity {
	absVal := math.Abs(q.SI())
	if absVal == 0 {
		return q
	}
	exp := int(math.Floor(math.Log10(absVal)))

	sym, ok := e.prefixes.BestSymbolForExponent(exp, g)
	if !ok {
		return q
	}
	target, err := e.prefixes.Resolve(sym)
	if err != nil {
		return q
	}
	out := quantity.New(q.SI()/target.Float(), target, q.Dims)
	out.Unit = q.Unit
	return out
}

// Pretty formats a quantity for humans: best prefix at the granularity,
// value rounded half away from zero to precision decimal digits, display
// name via the composite-name lookup with raw dimension notation as the
// fallback. Output is "<value> <prefix><name>" with a single space.
func (e *Engine) Pretty(q quantity.Quantity, precision int, g prefix.Granularity) string {
	best := e.BestPrefix(q, g)
	val := roundHalfAway(best.Value, precision)
	name := best.Unit
	if name == "" {
		name = e.units.Name(best.Dims)
	}
	return strconv.FormatFloat(val, 'g', -1, 64) + " " + best.Prefix.Symbol + name
}

// roundHalfAway rounds to the given number of decimal digits, halves away
// from zero (math.Round semantics after scaling).
func roundHalfAway(v float64, digits int) float64 {
	if digits < 0 {
		digits = 0
	}
	scale := math.Pow(10, float64(digits))
	return math.Round(v*scale) / scale
}
