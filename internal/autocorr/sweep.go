package autocorr

import (
	"fmt"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/spinlab/magcavity/internal/dipole"
	"github.com/spinlab/magcavity/internal/geom"
)

// DefaultRadiusSteps is the number of separation radii in a sweep,
// linearly spaced from 0 to the lattice constant inclusive.
const DefaultRadiusSteps = 100

// SweepConfig controls a full radius sweep.
type SweepConfig struct {
	RadiusSteps    int   // number of radii; zero means DefaultRadiusSteps
	SurfaceSamples int   // per-grid-point samples; zero means DefaultSurfaceSamples
	Seed           int64 // base seed; radius i uses Seed+i
	Workers        int   // concurrent radius evaluations; zero means GOMAXPROCS
}

// Sweep estimates the autocorrelation curve over RadiusSteps linearly spaced
// separations from 0 to the lattice constant. The radius-0 entry is defined
// as exactly 1.0 and never routed through the estimator.
//
// Radii are evaluated concurrently, but each radius gets its own generator
// seeded from Seed plus the radius index, so the curve is identical for any
// worker count.
func Sweep(cfg SweepConfig, lat *dipole.Lattice, grid []geom.Vec3) (Curve, error) {
	steps := cfg.RadiusSteps
	if steps <= 0 {
		steps = DefaultRadiusSteps
	}
	if steps < 2 {
		return nil, fmt.Errorf("radius sweep needs at least 2 steps, got %d", steps)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	radii := make([]float64, steps)
	floats.Span(radii, 0, lat.Constant())

	est := &Estimator{SurfaceSamples: cfg.SurfaceSamples}
	curve := make(Curve, steps)
	curve[0] = Point{SeparationM: 0, Value: 1.0}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 1; i < steps; i++ {
		g.Go(func() error {
			rng := rand.New(rand.NewSource(cfg.Seed + int64(i)))
			res := est.Estimate(rng, radii[i], grid, lat)
			curve[i] = Point{
				SeparationM: radii[i],
				Value:       res.Value,
				StdErr:      res.StdErr,
				Samples:     res.Samples,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return curve, nil
}
