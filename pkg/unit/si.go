package unit

import "github.com/unitkit/unitkit/pkg/dimension"

// siEntry describes one unit of the default table.
type siEntry struct {
	symbol   string
	vec      dimension.Vector
	priority int
}

// defaultUnits is the stock table: SI base and derived units, extended
// forms, accepted metric units, and common imperial/historical units that
// share SI dimension vectors. Order matters only for equal-priority ties.
var defaultUnits = []siEntry{
	// SI base
	{"m", dimension.Vector{Length: 1}, PrioritySIBase},
	{"kg", dimension.Vector{Mass: 1}, PrioritySIBase},
	{"s", dimension.Vector{Time: 1}, PrioritySIBase},
	{"A", dimension.Vector{ElectricCurrent: 1}, PrioritySIBase},
	{"K", dimension.Vector{Temperature: 1}, PrioritySIBase},
	{"mol", dimension.Vector{AmountOfSubstance: 1}, PrioritySIBase},
	{"cd", dimension.Vector{LuminousIntensity: 1}, PrioritySIBase},

	// SI derived
	{"N", dimension.Vector{Mass: 1, Length: 1, Time: -2}, PrioritySIDerived},
	{"J", dimension.Vector{Mass: 1, Length: 2, Time: -2}, PrioritySIDerived},
	{"W", dimension.Vector{Mass: 1, Length: 2, Time: -3}, PrioritySIDerived},
	{"Pa", dimension.Vector{Mass: 1, Length: -1, Time: -2}, PrioritySIDerived},
	{"C", dimension.Vector{Time: 1, ElectricCurrent: 1}, PrioritySIDerived},
	{"V", dimension.Vector{Mass: 1, Length: 2, Time: -3, ElectricCurrent: -1}, PrioritySIDerived},
	{"F", dimension.Vector{Mass: -1, Length: -2, Time: 4, ElectricCurrent: 2}, PrioritySIDerived},
	{"Ω", dimension.Vector{Mass: 1, Length: 2, Time: -3, ElectricCurrent: -2}, PrioritySIDerived},
	{"S", dimension.Vector{Mass: -1, Length: -2, Time: 3, ElectricCurrent: 2}, PrioritySIDerived},
	{"T", dimension.Vector{Mass: 1, Time: -2, ElectricCurrent: -1}, PrioritySIDerived},
	{"H", dimension.Vector{Mass: 1, Length: 2, Time: -2, ElectricCurrent: -2}, PrioritySIDerived},
	{"Hz", dimension.Vector{Time: -1}, PrioritySIDerived},
	{"Wb", dimension.Vector{Mass: 1, Length: 2, Time: -2, ElectricCurrent: -1}, PrioritySIDerived},
	{"kat", dimension.Vector{AmountOfSubstance: 1, Time: -1}, PrioritySIDerived},
	{"lm", dimension.Vector{LuminousIntensity: 1}, PrioritySIDerived},
	{"lx", dimension.Vector{Length: -2, LuminousIntensity: 1}, PrioritySIDerived},

	// extended SI forms
	{"m²", dimension.Vector{Length: 2}, PriorityExtended},
	{"m³", dimension.Vector{Length: 3}, PriorityExtended},
	{"m/s", dimension.Vector{Length: 1, Time: -1}, PriorityExtended},

	// accepted non-SI metric
	{"L", dimension.Vector{Length: 3}, PriorityAcceptedNonSI},
	{"bar", dimension.Vector{Mass: 1, Length: -1, Time: -2}, PriorityAcceptedNonSI},
	{"cal", dimension.Vector{Mass: 1, Length: 2, Time: -2}, PriorityAcceptedNonSI},
	{"Wh", dimension.Vector{Mass: 1, Length: 2, Time: -2}, PriorityAcceptedNonSI},
	{"erg", dimension.Vector{Mass: 1, Length: 2, Time: -2}, PriorityAcceptedNonSI},
	{"ha", dimension.Vector{Length: 2}, PriorityAcceptedNonSI},
	{"rad", dimension.Vector{}, PriorityAcceptedNonSI},
	{"deg", dimension.Vector{}, PriorityAcceptedNonSI},

	// everything else
	{"Å", dimension.Vector{Length: 1}, PriorityOther},
	{"ly", dimension.Vector{Length: 1}, PriorityOther},
	{"pc", dimension.Vector{Length: 1}, PriorityOther},
	{"in", dimension.Vector{Length: 1}, PriorityOther},
	{"ft", dimension.Vector{Length: 1}, PriorityOther},
	{"mi", dimension.Vector{Length: 1}, PriorityOther},
	{"g", dimension.Vector{Mass: 1}, PriorityOther},
	{"t", dimension.Vector{Mass: 1}, PriorityOther},
	{"lb", dimension.Vector{Mass: 1}, PriorityOther},
	{"oz", dimension.Vector{Mass: 1}, PriorityOther},
	{"atm", dimension.Vector{Mass: 1, Length: -1, Time: -2}, PriorityOther},
	{"mmHg", dimension.Vector{Mass: 1, Length: -1, Time: -2}, PriorityOther},
	{"torr", dimension.Vector{Mass: 1, Length: -1, Time: -2}, PriorityOther},
	{"psi", dimension.Vector{Mass: 1, Length: -1, Time: -2}, PriorityOther},
	{"dyn", dimension.Vector{Mass: 1, Length: 1, Time: -2}, PriorityOther},
	{"lbf", dimension.Vector{Mass: 1, Length: 1, Time: -2}, PriorityOther},
	{"hp", dimension.Vector{Mass: 1, Length: 2, Time: -3}, PriorityOther},
	{"cm²", dimension.Vector{Length: 2}, PriorityOther},
	{"acre", dimension.Vector{Length: 2}, PriorityOther},
	{"gal", dimension.Vector{Length: 3}, PriorityOther},
	{"ft³", dimension.Vector{Length: 3}, PriorityOther},
	{"mph", dimension.Vector{Length: 1, Time: -1}, PriorityOther},
	{"knot", dimension.Vector{Length: 1, Time: -1}, PriorityOther},
	{"km/h", dimension.Vector{Length: 1, Time: -1}, PriorityOther},
	{"°C", dimension.Vector{Temperature: 1}, PriorityOther},
	{"min", dimension.Vector{Time: 1}, PriorityOther},
	{"h", dimension.Vector{Time: 1}, PriorityOther},
	{"eV", dimension.Vector{Mass: 1, Length: 2, Time: -2}, PriorityOther},
}

// NewSIRegistry returns a registry pre-populated with the default table.
func NewSIRegistry() *Registry {
	r := NewRegistry()
	for _, e := range defaultUnits {
		r.add(e.symbol, e.vec, e.priority)
	}
	return r
}
