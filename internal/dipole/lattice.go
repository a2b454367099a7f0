package dipole

import (
	"fmt"

	"github.com/spinlab/magcavity/internal/geom"
)

// Lattice is a cubic arrangement of identical dipole-bearing spheres, one at
// each corner of a cube of side Constant = 2·SphereRadius. Every sphere
// carries the same moment; they differ only in position.
type Lattice struct {
	Positions    []geom.Vec3
	Moment       geom.Vec3
	SphereRadius float64
}

// NewLattice builds the eight-corner lattice for spheres of radius r0 filled
// with protons at number density n.
func NewLattice(n, r0 float64) (*Lattice, error) {
	m, err := Moment(n, r0)
	if err != nil {
		return nil, fmt.Errorf("lattice moment: %w", err)
	}

	half := r0 // lattice constant is 2·r0, corners sit at ±r0 on each axis
	positions := make([]geom.Vec3, 0, 8)
	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			for _, sz := range []float64{-1, 1} {
				positions = append(positions, geom.Vec3{X: sx * half, Y: sy * half, Z: sz * half})
			}
		}
	}

	return &Lattice{
		Positions:    positions,
		Moment:       m,
		SphereRadius: r0,
	}, nil
}

// Constant returns the lattice constant: the cube edge length 2·r0.
func (l *Lattice) Constant() float64 {
	return 2 * l.SphereRadius
}

// FieldAt returns the total magnetic field at p, the linear superposition of
// every sphere's dipole contribution.
func (l *Lattice) FieldAt(p geom.Vec3) geom.Vec3 {
	var total geom.Vec3
	for _, pos := range l.Positions {
		total = total.Add(Field(p.Sub(pos), l.Moment))
	}
	return total
}

// Contains reports whether p lies strictly inside any lattice sphere.
// Points exactly on a sphere surface count as outside (cavity).
func (l *Lattice) Contains(p geom.Vec3) bool {
	r0Sq := l.SphereRadius * l.SphereRadius
	for _, pos := range l.Positions {
		if p.Sub(pos).NormSq() < r0Sq {
			return true
		}
	}
	return false
}
