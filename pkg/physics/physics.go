// Package physics provides formula helpers over dimensioned quantities.
// Every result carries the dimension vector that falls out of the
// arithmetic, so callers get dimensional bookkeeping for free.
//
// Formulas that can fail — division by a zero-valued quantity, square
// roots of non-positive magnitudes, speeds at or beyond c — validate
// their inputs and return a DOMAIN_ERROR instead of producing NaN or Inf.
// Pure products never fail and return the quantity directly.
package physics

import (
	"math"

	"github.com/unitkit/unitkit/pkg/constants"
	"github.com/unitkit/unitkit/pkg/dimension"
	"github.com/unitkit/unitkit/pkg/errors"
	"github.com/unitkit/unitkit/pkg/prefix"
	"github.com/unitkit/unitkit/pkg/quantity"
)

func nonzero(q quantity.Quantity, what string) error {
	if q.SI() == 0 {
		return errors.New(errors.ErrCodeDomain, "%s must be nonzero", what)
	}
	return nil
}

func positive(q quantity.Quantity, what string) error {
	if q.SI() <= 0 {
		return errors.New(errors.ErrCodeDomain, "%s must be positive", what)
	}
	return nil
}

// Speed computes v = d / t.
func Speed(distance, duration quantity.Quantity) (quantity.Quantity, error) {
	if err := nonzero(duration, "time"); err != nil {
		return quantity.Quantity{}, err
	}
	return distance.Div(duration), nil
}

// Acceleration computes a = Δv / t.
func Acceleration(velocityChange, duration quantity.Quantity) (quantity.Quantity, error) {
	if err := nonzero(duration, "time"); err != nil {
		return quantity.Quantity{}, err
	}
	return velocityChange.Div(duration), nil
}

// Force computes F = m·a.
func Force(mass, acceleration quantity.Quantity) quantity.Quantity {
	return mass.Mul(acceleration)
}

// Momentum computes p = m·v.
func Momentum(mass, velocity quantity.Quantity) quantity.Quantity {
	return mass.Mul(velocity)
}

// Impulse computes J = F·t.
func Impulse(force, duration quantity.Quantity) quantity.Quantity {
	return force.Mul(duration)
}

// KineticEnergy computes E = ½·m·v².
func KineticEnergy(mass, velocity quantity.Quantity) quantity.Quantity {
	return mass.Mul(velocity.Pow(2)).Scale(0.5)
}

// PotentialEnergy computes E = m·g₀·h under standard gravity.
func PotentialEnergy(mass, height quantity.Quantity) quantity.Quantity {
	return mass.Mul(constants.StandardGravity).Mul(height)
}

// MechanicalEnergy sums kinetic and potential energy; the addends must
// share dimensions.
func MechanicalEnergy(kinetic, potential quantity.Quantity) (quantity.Quantity, error) {
	return kinetic.Add(potential)
}

// Work computes W = F·d.
func Work(force, distance quantity.Quantity) quantity.Quantity {
	return force.Mul(distance)
}

// Power computes P = W / t.
func Power(work, duration quantity.Quantity) (quantity.Quantity, error) {
	if err := nonzero(duration, "time"); err != nil {
		return quantity.Quantity{}, err
	}
	return work.Div(duration), nil
}

// EnergyFromPower computes E = P·t.
func EnergyFromPower(power, duration quantity.Quantity) quantity.Quantity {
	return power.Mul(duration)
}

// Torque computes τ = F·r.
func Torque(force, radius quantity.Quantity) quantity.Quantity {
	return force.Mul(radius)
}

// AngularMomentum computes L = I·ω.
func AngularMomentum(momentOfInertia, angularVelocity quantity.Quantity) quantity.Quantity {
	return momentOfInertia.Mul(angularVelocity)
}

// RotationalKineticEnergy computes E = ½·I·ω².
func RotationalKineticEnergy(momentOfInertia, angularVelocity quantity.Quantity) quantity.Quantity {
	return momentOfInertia.Mul(angularVelocity.Pow(2)).Scale(0.5)
}

// Pressure computes P = F / A.
func Pressure(force, area quantity.Quantity) (quantity.Quantity, error) {
	if err := nonzero(area, "area"); err != nil {
		return quantity.Quantity{}, err
	}
	return force.Div(area), nil
}

// TemperatureFromEnergy computes T = E / k_B.
func TemperatureFromEnergy(energy quantity.Quantity) quantity.Quantity {
	return energy.Div(constants.BoltzmannConstant)
}

// IdealGasPressure computes P = nRT / V.
func IdealGasPressure(moles, volume, temperature quantity.Quantity) (quantity.Quantity, error) {
	if err := nonzero(volume, "volume"); err != nil {
		return quantity.Quantity{}, err
	}
	return moles.Mul(constants.GasConstant).Mul(temperature).Div(volume), nil
}

// Heat computes Q = m·c·ΔT for a specific heat capacity c.
func Heat(mass, specificHeat, temperatureChange quantity.Quantity) quantity.Quantity {
	return mass.Mul(specificHeat).Mul(temperatureChange)
}

// ThermalEnergy computes E = k_B·T.
func ThermalEnergy(temperature quantity.Quantity) quantity.Quantity {
	return constants.BoltzmannConstant.Mul(temperature)
}

// ElectricForce computes the Coulomb force F = k·q₁·q₂ / r².
func ElectricForce(charge1, charge2, distance quantity.Quantity) (quantity.Quantity, error) {
	if err := nonzero(distance, "distance"); err != nil {
		return quantity.Quantity{}, err
	}
	return constants.CoulombConstant.Mul(charge1).Mul(charge2).Div(distance.Pow(2)), nil
}

// ElectricField computes E = F / q.
func ElectricField(force, charge quantity.Quantity) (quantity.Quantity, error) {
	if err := nonzero(charge, "charge"); err != nil {
		return quantity.Quantity{}, err
	}
	return force.Div(charge), nil
}

// ElectricPotentialEnergy computes U = q·V.
func ElectricPotentialEnergy(charge, potential quantity.Quantity) quantity.Quantity {
	return charge.Mul(potential)
}

// VoltageFromField computes V = E·d.
func VoltageFromField(field, distance quantity.Quantity) quantity.Quantity {
	return field.Mul(distance)
}

// Capacitance computes C = Q / V.
func Capacitance(charge, voltage quantity.Quantity) (quantity.Quantity, error) {
	if err := nonzero(voltage, "voltage"); err != nil {
		return quantity.Quantity{}, err
	}
	return charge.Div(voltage), nil
}

// CapacitorEnergy computes U = ½·C·V².
func CapacitorEnergy(capacitance, voltage quantity.Quantity) quantity.Quantity {
	return capacitance.Mul(voltage.Pow(2)).Scale(0.5)
}

// Current computes I = Q / t.
func Current(charge, duration quantity.Quantity) (quantity.Quantity, error) {
	if err := nonzero(duration, "time"); err != nil {
		return quantity.Quantity{}, err
	}
	return charge.Div(duration), nil
}

// VoltageFromCurrent computes V = I·R.
func VoltageFromCurrent(current, resistance quantity.Quantity) quantity.Quantity {
	return current.Mul(resistance)
}

// ElectricalPower computes P = V·I.
func ElectricalPower(voltage, current quantity.Quantity) quantity.Quantity {
	return voltage.Mul(current)
}

// WaveSpeed computes v = f·λ.
func WaveSpeed(frequency, wavelength quantity.Quantity) quantity.Quantity {
	return frequency.Mul(wavelength)
}

// FrequencyFromPeriod computes f = 1 / T.
func FrequencyFromPeriod(period quantity.Quantity) (quantity.Quantity, error) {
	if err := nonzero(period, "period"); err != nil {
		return quantity.Quantity{}, err
	}
	return quantity.ScalarDiv(1, period), nil
}

// PhotonEnergy computes E = h·f.
func PhotonEnergy(frequency quantity.Quantity) quantity.Quantity {
	return constants.PlanckConstant.Mul(frequency)
}

// PhotonEnergyFromWavelength computes E = h·c / λ.
func PhotonEnergyFromWavelength(wavelength quantity.Quantity) (quantity.Quantity, error) {
	if err := nonzero(wavelength, "wavelength"); err != nil {
		return quantity.Quantity{}, err
	}
	return constants.PlanckConstant.Mul(constants.SpeedOfLight).Div(wavelength), nil
}

// RefractiveIndex computes n = c / v.
func RefractiveIndex(speedInVacuum, speedInMedium quantity.Quantity) (quantity.Quantity, error) {
	if err := nonzero(speedInMedium, "speed in medium"); err != nil {
		return quantity.Quantity{}, err
	}
	return speedInVacuum.Div(speedInMedium), nil
}

// GravitationalForce computes F = G·m₁·m₂ / r².
func GravitationalForce(mass1, mass2, distance quantity.Quantity) (quantity.Quantity, error) {
	if err := nonzero(distance, "distance"); err != nil {
		return quantity.Quantity{}, err
	}
	return constants.GravitationalConstant.Mul(mass1).Mul(mass2).Div(distance.Pow(2)), nil
}

// OrbitalVelocity computes v = √(GM / r) for a circular orbit around a
// central mass.
func OrbitalVelocity(centralMass, radius quantity.Quantity) (quantity.Quantity, error) {
	if err := positive(centralMass, "central mass"); err != nil {
		return quantity.Quantity{}, err
	}
	if err := positive(radius, "orbital radius"); err != nil {
		return quantity.Quantity{}, err
	}
	v := math.Sqrt(constants.GravitationalConstant.SI() * centralMass.SI() / radius.SI())
	return quantity.New(v, prefix.Identity(), dimension.Vector{Length: 1, Time: -1}), nil
}

// EscapeVelocity computes v = √(2GM / r).
func EscapeVelocity(mass, radius quantity.Quantity) (quantity.Quantity, error) {
	if err := positive(mass, "mass"); err != nil {
		return quantity.Quantity{}, err
	}
	if err := positive(radius, "radius"); err != nil {
		return quantity.Quantity{}, err
	}
	v := math.Sqrt(2 * constants.GravitationalConstant.SI() * mass.SI() / radius.SI())
	return quantity.New(v, prefix.Identity(), dimension.Vector{Length: 1, Time: -1}), nil
}

// GravitationalPotentialEnergy computes U = -G·m₁·m₂ / r.
func GravitationalPotentialEnergy(mass1, mass2, distance quantity.Quantity) (quantity.Quantity, error) {
	if err := nonzero(distance, "distance"); err != nil {
		return quantity.Quantity{}, err
	}
	return constants.GravitationalConstant.Mul(mass1).Mul(mass2).Div(distance).Neg(), nil
}

// MassEnergy computes E = m·c².
func MassEnergy(mass quantity.Quantity) quantity.Quantity {
	return mass.Mul(constants.SpeedOfLight.Pow(2))
}

// TimeDilation computes t = t₀ / √(1 − v²/c²). Speeds at or beyond the
// speed of light are outside the formula's domain.
func TimeDilation(properTime, velocity quantity.Quantity) (quantity.Quantity, error) {
	beta := velocity.SI() / constants.SpeedOfLight.SI()
	if math.Abs(beta) >= 1 {
		return quantity.Quantity{}, errors.New(errors.ErrCodeDomain,
			"speed must be below the speed of light")
	}
	gamma := 1 / math.Sqrt(1-beta*beta)
	return properTime.Scale(gamma), nil
}

// GravitationalRedshift computes z ≈ Δφ / c².
func GravitationalRedshift(potentialDifference quantity.Quantity) quantity.Quantity {
	return potentialDifference.Div(constants.SpeedOfLight.Pow(2))
}

// Density computes ρ = m / V.
func Density(mass, volume quantity.Quantity) (quantity.Quantity, error) {
	if err := nonzero(volume, "volume"); err != nil {
		return quantity.Quantity{}, err
	}
	return mass.Div(volume), nil
}

// PressureFromDepth computes P = ρ·g₀·h.
func PressureFromDepth(density, depth quantity.Quantity) quantity.Quantity {
	return density.Mul(constants.StandardGravity).Mul(depth)
}

// BuoyantForce computes F = ρ·V·g₀.
func BuoyantForce(fluidDensity, submergedVolume quantity.Quantity) quantity.Quantity {
	return fluidDensity.Mul(submergedVolume).Mul(constants.StandardGravity)
}

// BernoulliPressure computes the total pressure P + ½ρv² + ρg₀h along a
// streamline. The three terms must agree dimensionally.
func BernoulliPressure(staticPressure, density, velocity, height quantity.Quantity) (quantity.Quantity, error) {
	kinetic := density.Mul(velocity.Pow(2)).Scale(0.5)
	potential := density.Mul(constants.StandardGravity).Mul(height)
	sum, err := staticPressure.Add(kinetic)
	if err != nil {
		return quantity.Quantity{}, err
	}
	return sum.Add(potential)
}

// FlowRate computes Q = V / t.
func FlowRate(volume, duration quantity.Quantity) (quantity.Quantity, error) {
	if err := nonzero(duration, "time"); err != nil {
		return quantity.Quantity{}, err
	}
	return volume.Div(duration), nil
}

// ContinuityVelocity solves A₁·v₁ = A₂·v₂ for v₂.
func ContinuityVelocity(area1, velocity1, area2 quantity.Quantity) (quantity.Quantity, error) {
	if err := nonzero(area2, "area"); err != nil {
		return quantity.Quantity{}, err
	}
	return area1.Mul(velocity1).Div(area2), nil
}
