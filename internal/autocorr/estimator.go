// Package autocorr estimates the spatial autocorrelation of the lattice
// field inside the cavity: the mean dot product of the field at a cavity
// point and the field at points a fixed separation away.
package autocorr

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/spinlab/magcavity/internal/dipole"
	"github.com/spinlab/magcavity/internal/geom"
	"github.com/spinlab/magcavity/internal/sampling"
)

// DefaultSurfaceSamples is the number of candidate separation points drawn
// around each grid point.
const DefaultSurfaceSamples = 100

// Estimator computes the field autocorrelation at a single separation
// radius over a set of cavity grid points.
type Estimator struct {
	// SurfaceSamples is the number of points drawn on the separation sphere
	// around each grid point. Zero means DefaultSurfaceSamples.
	SurfaceSamples int
}

// Result holds the estimate at one separation radius.
type Result struct {
	Value   float64 // mean dot(B(p), B(q)) over valid pairs
	StdErr  float64 // standard error of the mean; 0 when Samples < 2
	Samples int     // valid pair count after cavity filtering
}

// Estimate computes the autocorrelation at separation sep. For each grid
// point p it draws SurfaceSamples candidates on the sphere of radius sep
// around p, discards candidates inside any lattice sphere, and averages
// dot(B(p), B(q)) over the survivors. A zero valid-sample count yields a
// zero Result; callers should read that as "no signal at this radius", not
// as a measured zero correlation.
func (e *Estimator) Estimate(rng *rand.Rand, sep float64, grid []geom.Vec3, lat *dipole.Lattice) Result {
	perPoint := e.SurfaceSamples
	if perPoint <= 0 {
		perPoint = DefaultSurfaceSamples
	}

	dots := make([]float64, 0, len(grid)*perPoint)
	for _, p := range grid {
		b1 := lat.FieldAt(p)
		for _, offset := range sampling.SphereSurface(rng, sep, perPoint) {
			q := p.Add(offset)
			if lat.Contains(q) {
				continue
			}
			dots = append(dots, b1.Dot(lat.FieldAt(q)))
		}
	}

	if len(dots) == 0 {
		return Result{}
	}

	mean := stat.Mean(dots, nil)
	var stderr float64
	if len(dots) > 1 {
		stderr = stat.StdDev(dots, nil) / math.Sqrt(float64(len(dots)))
	}
	return Result{Value: mean, StdErr: stderr, Samples: len(dots)}
}
