package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spinlab/magcavity/internal/autocorr"
)

// SweepRun records the parameters of one completed sweep.
type SweepRun struct {
	RunID         string  `json:"run_id"`
	NumberDensity float64 `json:"number_density"`
	SphereRadiusM float64 `json:"sphere_radius_m"`
	NumGridPoints int     `json:"num_grid_points"`
	SurfaceSamps  int     `json:"surface_samples"`
	RadiusSteps   int     `json:"radius_steps"`
	Seed          int64   `json:"seed"`
	CreatedAt     int64   `json:"created_at"`
}

// SaveRun persists a run and its full curve in one transaction. If RunID is
// empty a UUID is generated and written back to the struct.
func (db *DB) SaveRun(run *SweepRun, curve autocorr.Curve) error {
	if run.RunID == "" {
		run.RunID = uuid.New().String()
	}
	if run.CreatedAt == 0 {
		run.CreatedAt = time.Now().UnixNano()
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO sweep_runs (
			run_id, number_density, sphere_radius_m, num_grid_points,
			surface_samples, radius_steps, seed, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID, run.NumberDensity, run.SphereRadiusM, run.NumGridPoints,
		run.SurfaceSamps, run.RadiusSteps, run.Seed, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for i, p := range curve {
		_, err = tx.Exec(`
			INSERT INTO curve_points (
				run_id, point_index, separation_m, autocorrelation, std_err, samples
			) VALUES (?, ?, ?, ?, ?, ?)`,
			run.RunID, i, p.SeparationM, p.Value, p.StdErr, p.Samples,
		)
		if err != nil {
			return fmt.Errorf("insert curve point %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	return nil
}

// GetRun loads a run and its curve by ID.
func (db *DB) GetRun(runID string) (*SweepRun, autocorr.Curve, error) {
	run := &SweepRun{}
	err := db.QueryRow(`
		SELECT run_id, number_density, sphere_radius_m, num_grid_points,
		       surface_samples, radius_steps, seed, created_at
		FROM sweep_runs WHERE run_id = ?`, runID).Scan(
		&run.RunID, &run.NumberDensity, &run.SphereRadiusM, &run.NumGridPoints,
		&run.SurfaceSamps, &run.RadiusSteps, &run.Seed, &run.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil, fmt.Errorf("run %s not found", runID)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("query run: %w", err)
	}

	rows, err := db.Query(`
		SELECT separation_m, autocorrelation, std_err, samples
		FROM curve_points WHERE run_id = ? ORDER BY point_index`, runID)
	if err != nil {
		return nil, nil, fmt.Errorf("query curve points: %w", err)
	}
	defer rows.Close()

	var curve autocorr.Curve
	for rows.Next() {
		var p autocorr.Point
		if err := rows.Scan(&p.SeparationM, &p.Value, &p.StdErr, &p.Samples); err != nil {
			return nil, nil, fmt.Errorf("scan curve point: %w", err)
		}
		curve = append(curve, p)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate curve points: %w", err)
	}

	return run, curve, nil
}

// ListRuns returns all runs ordered by creation time descending, without
// their curves.
func (db *DB) ListRuns() ([]*SweepRun, error) {
	rows, err := db.Query(`
		SELECT run_id, number_density, sphere_radius_m, num_grid_points,
		       surface_samples, radius_steps, seed, created_at
		FROM sweep_runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []*SweepRun
	for rows.Next() {
		run := &SweepRun{}
		if err := rows.Scan(
			&run.RunID, &run.NumberDensity, &run.SphereRadiusM, &run.NumGridPoints,
			&run.SurfaceSamps, &run.RadiusSteps, &run.Seed, &run.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
