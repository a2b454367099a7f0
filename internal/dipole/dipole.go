// Package dipole implements the magnetic dipole field model: the moment of a
// single proton-bearing sphere and the field it produces, plus the cubic
// lattice of eight such spheres whose cavity the estimator samples.
package dipole

import (
	"fmt"

	"github.com/spinlab/magcavity/internal/geom"
	"github.com/spinlab/magcavity/internal/units"
)

// Moment computes the net magnetic moment of a sphere of radius r0 filled
// with protons at number density n. All proton moments are taken as aligned
// along +z, so the result is the total moment magnitude on the z axis.
// Returns an error for non-positive n or r0 rather than propagating
// nonsensical negative volumes downstream.
func Moment(n, r0 float64) (geom.Vec3, error) {
	if n <= 0 {
		return geom.Vec3{}, fmt.Errorf("number density must be positive, got %g", n)
	}
	if r0 <= 0 {
		return geom.Vec3{}, fmt.Errorf("sphere radius must be positive, got %g", r0)
	}

	totalProtons := n * units.SphereVolume(r0)
	return geom.Vec3{Z: totalProtons * units.ProtonMagneticMoment}, nil
}

// Field evaluates the magnetic dipole field at displacement r from a dipole
// of moment m:
//
//	B = (μ₀ / 4π|r|³) · (3(m·r̂)r̂ − m)
//
// A zero displacement returns the zero vector. That is a singularity guard,
// not a physical limit: the field diverges at the dipole itself.
func Field(r, m geom.Vec3) geom.Vec3 {
	dist := r.Norm()
	if dist == 0 {
		return geom.Vec3{}
	}

	rHat := r.Scale(1 / dist)
	prefactor := units.Mu0Over4Pi / (dist * dist * dist)
	return rHat.Scale(3 * m.Dot(rHat)).Sub(m).Scale(prefactor)
}
