// Command magcavity estimates the spatial autocorrelation of the magnetic
// dipole field in the cavity between eight dipole-bearing spheres on a cubic
// lattice, and emits the resulting (separation, autocorrelation) curve.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/spinlab/magcavity/internal/autocorr"
	"github.com/spinlab/magcavity/internal/config"
	"github.com/spinlab/magcavity/internal/db"
	"github.com/spinlab/magcavity/internal/dipole"
	"github.com/spinlab/magcavity/internal/report"
	"github.com/spinlab/magcavity/internal/sampling"
	"github.com/spinlab/magcavity/internal/version"
)

var (
	configPath = flag.String("config", "", "Path to JSON config file (flags override it)")

	numberDensity = flag.Float64("n", 0, "Number density in protons/m³ (0 = config/default)")
	sphereRadius  = flag.Float64("r0", 0, "Sphere radius in metres (0 = config/default)")
	gridPoints    = flag.Int("grid-points", -1, "Cavity grid point count (-1 = config/default)")
	surfaceSamps  = flag.Int("surface-samples", 0, "Samples per grid point per radius (0 = config/default)")
	radiusSteps   = flag.Int("radius-steps", 0, "Separation radii in the sweep (0 = config/default)")
	seed          = flag.Int64("seed", 0, "PRNG seed (0 = config/default)")
	workers       = flag.Int("workers", 0, "Concurrent radius evaluations (0 = one per CPU)")

	outPath  = flag.String("out", "", "Write the curve to this file instead of stdout")
	jsonOut  = flag.Bool("json", false, "Emit JSON instead of CSV")
	plotPath = flag.String("plot", "", "Also render the curve as a PNG to this path")
	htmlPath = flag.String("html", "", "Also render an interactive HTML chart to this path")
	dbPath   = flag.String("db", "", "Also persist the run to this SQLite database")

	showVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()
	if *showVersion {
		fmt.Println(version.String())
		return
	}
	if err := run(); err != nil {
		log.Fatalf("magcavity: %v", err)
	}
}

func run() error {
	cfg := &config.SimConfig{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	n := cfg.GetNumberDensity()
	if *numberDensity > 0 {
		n = *numberDensity
	}
	r0 := cfg.GetSphereRadiusM()
	if *sphereRadius > 0 {
		r0 = *sphereRadius
	}
	points := cfg.GetNumGridPoints()
	if *gridPoints >= 0 {
		points = *gridPoints
	}
	samples := cfg.GetSurfaceSamples()
	if *surfaceSamps > 0 {
		samples = *surfaceSamps
	}
	steps := cfg.GetRadiusSteps()
	if *radiusSteps > 0 {
		steps = *radiusSteps
	}
	runSeed := cfg.GetSeed()
	if *seed != 0 {
		runSeed = *seed
	}
	workerCount := cfg.GetWorkers()
	if *workers > 0 {
		workerCount = *workers
	}

	lat, err := dipole.NewLattice(n, r0)
	if err != nil {
		return err
	}

	grid := sampling.CavityPoints(rand.New(rand.NewSource(runSeed)), lat, points)
	log.Printf("sweeping %d radii over %d cavity grid points (n=%g, r0=%g, seed=%d)",
		steps, len(grid), n, r0, runSeed)

	curve, err := autocorr.Sweep(autocorr.SweepConfig{
		RadiusSteps:    steps,
		SurfaceSamples: samples,
		Seed:           runSeed,
		Workers:        workerCount,
	}, lat, grid)
	if err != nil {
		return err
	}

	if err := emit(curve); err != nil {
		return err
	}

	if *plotPath != "" {
		if err := report.SavePNG(curve, *plotPath); err != nil {
			return err
		}
		log.Printf("wrote plot to %s", *plotPath)
	}

	if *htmlPath != "" {
		f, err := os.Create(*htmlPath)
		if err != nil {
			return fmt.Errorf("create html output: %w", err)
		}
		defer f.Close()
		if err := report.RenderHTML(curve, f); err != nil {
			return err
		}
		log.Printf("wrote chart to %s", *htmlPath)
	}

	if *dbPath != "" {
		store, err := db.NewDB(*dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		runRec := &db.SweepRun{
			NumberDensity: n,
			SphereRadiusM: r0,
			NumGridPoints: len(grid),
			SurfaceSamps:  samples,
			RadiusSteps:   steps,
			Seed:          runSeed,
		}
		if err := store.SaveRun(runRec, curve); err != nil {
			return err
		}
		log.Printf("saved run %s to %s", runRec.RunID, *dbPath)
	}

	return nil
}

func emit(curve autocorr.Curve) error {
	var w io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if *jsonOut {
		return curve.WriteJSON(w)
	}
	return curve.WriteCSV(w)
}
