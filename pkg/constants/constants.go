// Package constants provides physical constants as ready-made quantities
// with the correct SI dimension vectors. All values follow the 2019 SI
// redefinition (CODATA 2018 where a constant is still measured).
package constants

import (
	"github.com/unitkit/unitkit/pkg/dimension"
	"github.com/unitkit/unitkit/pkg/prefix"
	"github.com/unitkit/unitkit/pkg/quantity"
)

func si(value float64, dims dimension.Vector) quantity.Quantity {
	return quantity.New(value, prefix.Identity(), dims)
}

// Fundamental constants.
var (
	// SpeedOfLight is c, exact.
	SpeedOfLight = si(299792458, dimension.Vector{Length: 1, Time: -1})
	// PlanckConstant is h, exact.
	PlanckConstant = si(6.62607015e-34, dimension.Vector{Length: 2, Mass: 1, Time: -1})
	// ReducedPlanckConstant is ħ = h/2π.
	ReducedPlanckConstant = si(1.054571817e-34, dimension.Vector{Length: 2, Mass: 1, Time: -1})
	// GravitationalConstant is G.
	GravitationalConstant = si(6.67430e-11, dimension.Vector{Length: 3, Mass: -1, Time: -2})
	// StandardGravity is g₀, exact by convention.
	StandardGravity = si(9.80665, dimension.Vector{Length: 1, Time: -2})
)

// Particle constants.
var (
	// ElementaryCharge is e, exact. Dimensions are A·s (coulomb).
	ElementaryCharge = si(1.602176634e-19, dimension.Vector{ElectricCurrent: 1, Time: 1})
	ElectronMass     = si(9.1093837015e-31, dimension.Vector{Mass: 1})
	ProtonMass       = si(1.67262192369e-27, dimension.Vector{Mass: 1})
	NeutronMass      = si(1.67492749804e-27, dimension.Vector{Mass: 1})
)

// Atomic and quantum constants.
var (
	RydbergConstant  = si(10973731.568160, dimension.Vector{Length: -1})
	RydbergEnergy    = si(13.605693122994, dimension.Vector{Length: 2, Mass: 1, Time: -2})
	RydbergFrequency = si(3.289841960355e15, dimension.Vector{Time: -1})
	HartreeEnergy    = si(4.3597447222071e-18, dimension.Vector{Length: 2, Mass: 1, Time: -2})
	// ElectronVolt is the energy of one eV in joules.
	ElectronVolt = si(1.602176634e-19, dimension.Vector{Length: 2, Mass: 1, Time: -2})
)

// Electromagnetism.
var (
	VacuumPermittivity = si(8.854187817e-12, dimension.Vector{Length: -3, Mass: -1, Time: 4, ElectricCurrent: 2})
	VacuumPermeability = si(1.25663706212e-6, dimension.Vector{Length: 1, Mass: 1, Time: -2, ElectricCurrent: -2})
	CoulombConstant    = si(8.9875517923e9, dimension.Vector{Length: 3, Mass: 1, Time: -4, ElectricCurrent: -2})
	FaradayConstant    = si(96485.33212, dimension.Vector{ElectricCurrent: 1, Time: 1, AmountOfSubstance: -1})
)

// Thermodynamics.
var (
	// BoltzmannConstant is k_B, exact.
	BoltzmannConstant       = si(1.380649e-23, dimension.Vector{Length: 2, Mass: 1, Time: -2, Temperature: -1})
	GasConstant             = si(8.314462618, dimension.Vector{Length: 2, Mass: 1, Time: -2, Temperature: -1, AmountOfSubstance: -1})
	StefanBoltzmannConstant = si(5.670374419e-8, dimension.Vector{Length: -2, Mass: 1, Time: -3, Temperature: -4})
	// RoomTemperatureEnergy is k_B·T at 300 K, in joules.
	RoomTemperatureEnergy = si(0.02585, dimension.Vector{Length: 2, Mass: 1, Time: -2})
)

// AvogadroConstant is N_A, exact.
var AvogadroConstant = si(6.02214076e23, dimension.Vector{AmountOfSubstance: 1})
