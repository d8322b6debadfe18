package convert

import "math"

// seedEntry is one stock conversion: factor converts a value expressed in
// from-units into to-units. The reverse direction is derived as the exact
// reciprocal at registration time.
type seedEntry struct {
	from, to string
	factor   float64
}

// Exact defining constants (SI brochure / NIST).
const (
	electronVolt = 1.602176634e-19 // J per eV
	inch         = 0.0254          // m per in
	foot         = 0.3048          // m per ft
	mile         = 1609.344        // m per mi
	lightYear    = 9.4607304725808e15
	parsec       = 3.0856775814913673e16
	pound        = 0.45359237 // kg per lb
	ounce        = pound / 16
	mphInSI      = 0.44704        // m/s per mph
	knotInSI     = 1852.0 / 3600  // m/s per knot
	horsepower   = 745.6998715822702
	atmosphere   = 101325.0
	mmHg         = 133.322387415
	psi          = 6894.757293168361
	poundForce   = 4.4482216152605
	acreInSI     = 4046.8564224
	usGallon     = 0.003785411784
	cubicFoot    = 0.028316846592
	calorie      = 4.184
)

// stockConversions covers the energy, length, mass, time, velocity, power,
// pressure, force, angle, area, volume, and temperature-difference
// families.
var stockConversions = []seedEntry{
	// energy
	{"J", "eV", 1 / electronVolt},
	{"J", "cal", 1 / calorie},
	{"J", "Wh", 1.0 / 3600},
	{"J", "erg", 1e7},

	// length
	{"m", "in", 1 / inch},
	{"m", "ft", 1 / foot},
	{"m", "mi", 1 / mile},
	{"m", "Å", 1e10},
	{"m", "ly", 1 / lightYear},
	{"m", "pc", 1 / parsec},

	// mass
	{"kg", "g", 1e3},
	{"kg", "t", 1e-3},
	{"kg", "lb", 1 / pound},
	{"kg", "oz", 1 / ounce},

	// time
	{"s", "min", 1.0 / 60},
	{"s", "h", 1.0 / 3600},

	// velocity
	{"m/s", "km/h", 3.6},
	{"m/s", "mph", 1 / mphInSI},
	{"m/s", "knot", 1 / knotInSI},

	// power
	{"W", "hp", 1 / horsepower},

	// pressure
	{"Pa", "atm", 1 / atmosphere},
	{"Pa", "bar", 1e-5},
	{"Pa", "mmHg", 1 / mmHg},
	{"Pa", "torr", 760 / atmosphere},
	{"Pa", "psi", 1 / psi},

	// force
	{"N", "dyn", 1e5},
	{"N", "lbf", 1 / poundForce},

	// angle
	{"rad", "deg", 180 / math.Pi},

	// area
	{"m²", "cm²", 1e4},
	{"m²", "ha", 1e-4},
	{"m²", "acre", 1 / acreInSI},

	// volume
	{"m³", "L", 1e3},
	{"m³", "gal", 1 / usGallon},
	{"m³", "ft³", 1 / cubicFoot},

	// temperature differences (not absolute temperatures)
	{"K", "°C", 1},
}

// seed loads the stock table. Factors are validated at build time by the
// table tests; registration failures cannot occur for the stock entries.
func (e *Engine) seed() {
	for _, c := range stockConversions {
		_ = e.RegisterConversion(c.from, c.to, c.factor)
	}
}
