// Package units provides the physical constants consumed by the field model.
// Values are CODATA 2022 recommended values; they are injected here once so
// the rest of the codebase never hard-codes a constant inline.
package units

import "math"

// SI constants
const (
	// VacuumPermeability is μ₀ in N·A⁻² (equivalently T·m·A⁻¹).
	VacuumPermeability = 1.25663706127e-6

	// ProtonMagneticMoment is the proton magnetic moment in J·T⁻¹.
	ProtonMagneticMoment = 1.41060679545e-26
)

// Mu0Over4Pi is the μ₀/4π prefactor of the dipole field expression.
var Mu0Over4Pi = VacuumPermeability / (4 * math.Pi)

// SphereVolume returns the volume of a sphere of radius r.
func SphereVolume(r float64) float64 {
	return 4.0 / 3.0 * math.Pi * r * r * r
}
