// Package sampling provides the random point generators used by the
// autocorrelation estimator. Every generator takes an explicit *rand.Rand so
// callers control seeding and runs stay reproducible.
package sampling

import (
	"log"
	"math/rand"

	"github.com/spinlab/magcavity/internal/dipole"
	"github.com/spinlab/magcavity/internal/geom"
)

// OversampleFactor is how many cube candidates are drawn per requested
// cavity point before filtering against the lattice spheres.
const OversampleFactor = 10

// SphereSurface draws count points uniformly distributed on the surface of a
// sphere of the given radius centered at the origin. Directions come from
// normalizing 3D Gaussian draws, which is uniform over solid angle by the
// rotational symmetry of the Gaussian.
func SphereSurface(rng *rand.Rand, radius float64, count int) []geom.Vec3 {
	points := make([]geom.Vec3, 0, count)
	for len(points) < count {
		dir := geom.Vec3{
			X: rng.NormFloat64(),
			Y: rng.NormFloat64(),
			Z: rng.NormFloat64(),
		}
		if dir.NormSq() == 0 {
			// Astronomically unlikely degenerate draw; try again.
			continue
		}
		points = append(points, dir.Normalize().Scale(radius))
	}
	return points
}

// CubeUniform draws count points uniformly in the cube
// [-side/2, side/2]³ centered at the origin.
func CubeUniform(rng *rand.Rand, side float64, count int) []geom.Vec3 {
	points := make([]geom.Vec3, count)
	for i := range points {
		points[i] = geom.Vec3{
			X: side * (rng.Float64() - 0.5),
			Y: side * (rng.Float64() - 0.5),
			Z: side * (rng.Float64() - 0.5),
		}
	}
	return points
}

// CavityPoints draws cavity grid points for the sweep: OversampleFactor·want
// uniform cube candidates filtered to those outside every lattice sphere,
// truncated to want points. If the filter passes fewer than want candidates
// the shorter set is returned and a warning logged; the sweep still runs,
// just with fewer grid points.
func CavityPoints(rng *rand.Rand, lat *dipole.Lattice, want int) []geom.Vec3 {
	if want <= 0 {
		return nil
	}

	candidates := CubeUniform(rng, lat.Constant(), OversampleFactor*want)
	points := make([]geom.Vec3, 0, want)
	for _, c := range candidates {
		if lat.Contains(c) {
			continue
		}
		points = append(points, c)
		if len(points) == want {
			break
		}
	}

	if len(points) < want {
		log.Printf("WARNING: cavity sampling produced %d of %d requested grid points", len(points), want)
	}
	return points
}
