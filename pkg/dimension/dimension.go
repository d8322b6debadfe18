// Package dimension provides the seven-exponent vector over the SI base
// dimensions that characterizes a physical quantity's kind.
//
// A [Vector] is an immutable value type: every operation returns a new
// vector. Vectors are comparable with == and usable as map keys, which the
// unit registry relies on for reverse lookups.
//
// # Basic Usage
//
//	velocity := dimension.Vector{Length: 1, Time: -1}
//	accel := velocity.Div(dimension.Vector{Time: 1})
//	energy := dimension.Vector{Mass: 1, Length: 2, Time: -2}
//
//	fmt.Println(energy) // "kg.m^2/s^2" rendered as raw notation: m^2.kg.s^-2
package dimension

import (
	"fmt"
	"strings"
)

// Vector holds the exponent of each SI base dimension. The zero value is
// the dimensionless vector.
type Vector struct {
	Length            int // metre (m)
	Mass              int // kilogram (kg)
	Time              int // second (s)
	ElectricCurrent   int // ampere (A)
	Temperature       int // kelvin (K)
	AmountOfSubstance int // mole (mol)
	LuminousIntensity int // candela (cd)
}

// Base symbols in canonical emission order.
var baseSymbols = [7]string{"m", "kg", "s", "A", "K", "mol", "cd"}

// exponents returns the exponents in canonical order, matching baseSymbols.
func (v Vector) exponents() [7]int {
	return [7]int{
		v.Length, v.Mass, v.Time, v.ElectricCurrent,
		v.Temperature, v.AmountOfSubstance, v.LuminousIntensity,
	}
}

// Mul returns the dimension of a product: the field-wise sum of exponents.
func (v Vector) Mul(o Vector) Vector {
	return Vector{
		Length:            v.Length + o.Length,
		Mass:              v.Mass + o.Mass,
		Time:              v.Time + o.Time,
		ElectricCurrent:   v.ElectricCurrent + o.ElectricCurrent,
		Temperature:       v.Temperature + o.Temperature,
		AmountOfSubstance: v.AmountOfSubstance + o.AmountOfSubstance,
		LuminousIntensity: v.LuminousIntensity + o.LuminousIntensity,
	}
}

// Div returns the dimension of a quotient: the field-wise difference of
// exponents.
func (v Vector) Div(o Vector) Vector {
	return Vector{
		Length:            v.Length - o.Length,
		Mass:              v.Mass - o.Mass,
		Time:              v.Time - o.Time,
		ElectricCurrent:   v.ElectricCurrent - o.ElectricCurrent,
		Temperature:       v.Temperature - o.Temperature,
		AmountOfSubstance: v.AmountOfSubstance - o.AmountOfSubstance,
		LuminousIntensity: v.LuminousIntensity - o.LuminousIntensity,
	}
}

// Pow returns the dimension of a power: every exponent scaled by n.
func (v Vector) Pow(n int) Vector {
	return Vector{
		Length:            v.Length * n,
		Mass:              v.Mass * n,
		Time:              v.Time * n,
		ElectricCurrent:   v.ElectricCurrent * n,
		Temperature:       v.Temperature * n,
		AmountOfSubstance: v.AmountOfSubstance * n,
		LuminousIntensity: v.LuminousIntensity * n,
	}
}

// IsZero reports whether the vector is dimensionless.
func (v Vector) IsZero() bool {
	return v == Vector{}
}

// String renders the vector in raw base-symbol notation: `sym^exp` for each
// non-zero exponent in canonical order (m, kg, s, A, K, mol, cd), joined
// with ".", with `^1` omitted. The zero vector renders as "dimensionless".
func (v Vector) String() string {
	if v.IsZero() {
		return "dimensionless"
	}
	exps := v.exponents()
	parts := make([]string, 0, 7)
	for i, sym := range baseSymbols {
		switch exps[i] {
		case 0:
		case 1:
			parts = append(parts, sym)
		default:
			parts = append(parts, fmt.Sprintf("%s^%d", sym, exps[i]))
		}
	}
	return strings.Join(parts, ".")
}

// Base returns the single-dimension vector for one of the seven SI base
// symbols (m, kg, s, A, K, mol, cd). ok is false for any other symbol.
func Base(symbol string) (Vector, bool) {
	switch symbol {
	case "m":
		return Vector{Length: 1}, true
	case "kg":
		return Vector{Mass: 1}, true
	case "s":
		return Vector{Time: 1}, true
	case "A":
		return Vector{ElectricCurrent: 1}, true
	case "K":
		return Vector{Temperature: 1}, true
	case "mol":
		return Vector{AmountOfSubstance: 1}, true
	case "cd":
		return Vector{LuminousIntensity: 1}, true
	}
	return Vector{}, false
}
