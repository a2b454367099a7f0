package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/spinlab/magcavity/internal/db"
)

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	outFile := filepath.Join(dir, "curve.csv")
	dbFile := filepath.Join(dir, "runs.db")

	resetFlags := setFlags(t, map[string]interface{}{
		"grid-points":     5,
		"surface-samples": 5,
		"radius-steps":    6,
		"seed":            int64(3),
		"workers":         2,
		"out":             outFile,
		"db":              dbFile,
	})
	defer resetFlags()

	if err := run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	// The CSV must contain a header plus one row per radius step, with the
	// radius-0 row pinned at 1.0.
	f, err := os.Open(outFile)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 7 {
		t.Fatalf("got %d csv rows, want 7 (header + 6 radii)", len(records))
	}
	v, err := strconv.ParseFloat(records[1][1], 64)
	if err != nil {
		t.Fatal(err)
	}
	if v != 1.0 {
		t.Errorf("radius-0 autocorrelation = %v, want exactly 1.0", v)
	}

	// The run must have been persisted.
	store, err := db.NewDB(dbFile)
	if err != nil {
		t.Fatalf("open run db: %v", err)
	}
	defer store.Close()

	runs, err := store.ListRuns()
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d persisted runs, want 1", len(runs))
	}
	if runs[0].Seed != 3 || runs[0].RadiusSteps != 6 {
		t.Errorf("persisted run parameters mismatch: %+v", runs[0])
	}
}

func TestRunZeroGridPoints(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "curve.csv")

	resetFlags := setFlags(t, map[string]interface{}{
		"grid-points":  0,
		"radius-steps": 5,
		"out":          outFile,
	})
	defer resetFlags()

	if err := run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	f, err := os.Open(outFile)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	// Radius 0 stays pinned at 1.0; every other value is 0 with no grid
	// points to sample from.
	for i, rec := range records[1:] {
		v, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			t.Fatal(err)
		}
		want := 0.0
		if i == 0 {
			want = 1.0
		}
		if v != want {
			t.Errorf("row %d autocorrelation = %v, want %v", i, v, want)
		}
	}
}

// setFlags applies flag overrides for a test and returns a restore func.
func setFlags(t *testing.T, values map[string]interface{}) func() {
	t.Helper()

	saved := struct {
		gridPoints, surfaceSamps, radiusSteps, workers int
		seed                                           int64
		out, db, html, plot                            string
	}{*gridPoints, *surfaceSamps, *radiusSteps, *workers, *seed, *outPath, *dbPath, *htmlPath, *plotPath}

	*outPath, *dbPath, *htmlPath, *plotPath = "", "", "", ""
	for name, v := range values {
		switch name {
		case "grid-points":
			*gridPoints = v.(int)
		case "surface-samples":
			*surfaceSamps = v.(int)
		case "radius-steps":
			*radiusSteps = v.(int)
		case "workers":
			*workers = v.(int)
		case "seed":
			*seed = v.(int64)
		case "out":
			*outPath = v.(string)
		case "db":
			*dbPath = v.(string)
		default:
			t.Fatalf("unknown flag %q", name)
		}
	}

	return func() {
		*gridPoints = saved.gridPoints
		*surfaceSamps = saved.surfaceSamps
		*radiusSteps = saved.radiusSteps
		*workers = saved.workers
		*seed = saved.seed
		*outPath = saved.out
		*dbPath = saved.db
		*htmlPath = saved.html
		*plotPath = saved.plot
	}
}
