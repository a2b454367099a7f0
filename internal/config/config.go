// Package config loads simulation parameters from JSON files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SimConfig holds the cavity autocorrelation parameters. All fields are
// pointers so a partial JSON file only overrides what it names; the Get*
// methods supply defaults for everything else.
type SimConfig struct {
	// Physical parameters
	NumberDensity *float64 `json:"number_density,omitempty"` // protons per m³
	SphereRadiusM *float64 `json:"sphere_radius_m,omitempty"`

	// Estimator parameters
	NumGridPoints  *int `json:"num_grid_points,omitempty"`
	SurfaceSamples *int `json:"surface_samples,omitempty"`
	RadiusSteps    *int `json:"radius_steps,omitempty"`

	// Run control
	Seed    *int64 `json:"seed,omitempty"`
	Workers *int   `json:"workers,omitempty"`
}

// Default parameter values.
const (
	DefaultNumberDensity  = 1e28
	DefaultSphereRadiusM  = 2e-5
	DefaultNumGridPoints  = 100
	DefaultSurfaceSamples = 100
	DefaultRadiusSteps    = 100
	DefaultSeed           = 1
)

// Load reads a SimConfig from a JSON file. Fields omitted from the file keep
// their defaults, so partial configs are safe.
func Load(path string) (*SimConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &SimConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that every set field carries a usable value.
func (c *SimConfig) Validate() error {
	if c.NumberDensity != nil && *c.NumberDensity <= 0 {
		return fmt.Errorf("number_density must be positive, got %g", *c.NumberDensity)
	}
	if c.SphereRadiusM != nil && *c.SphereRadiusM <= 0 {
		return fmt.Errorf("sphere_radius_m must be positive, got %g", *c.SphereRadiusM)
	}
	if c.NumGridPoints != nil && *c.NumGridPoints < 0 {
		return fmt.Errorf("num_grid_points must be non-negative, got %d", *c.NumGridPoints)
	}
	if c.SurfaceSamples != nil && *c.SurfaceSamples <= 0 {
		return fmt.Errorf("surface_samples must be positive, got %d", *c.SurfaceSamples)
	}
	if c.RadiusSteps != nil && *c.RadiusSteps < 2 {
		return fmt.Errorf("radius_steps must be at least 2, got %d", *c.RadiusSteps)
	}
	if c.Workers != nil && *c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", *c.Workers)
	}
	return nil
}

// GetNumberDensity returns the number density or the default.
func (c *SimConfig) GetNumberDensity() float64 {
	if c.NumberDensity == nil {
		return DefaultNumberDensity
	}
	return *c.NumberDensity
}

// GetSphereRadiusM returns the sphere radius or the default.
func (c *SimConfig) GetSphereRadiusM() float64 {
	if c.SphereRadiusM == nil {
		return DefaultSphereRadiusM
	}
	return *c.SphereRadiusM
}

// GetNumGridPoints returns the cavity grid point count or the default.
func (c *SimConfig) GetNumGridPoints() int {
	if c.NumGridPoints == nil {
		return DefaultNumGridPoints
	}
	return *c.NumGridPoints
}

// GetSurfaceSamples returns the per-point surface sample count or the default.
func (c *SimConfig) GetSurfaceSamples() int {
	if c.SurfaceSamples == nil {
		return DefaultSurfaceSamples
	}
	return *c.SurfaceSamples
}

// GetRadiusSteps returns the sweep step count or the default.
func (c *SimConfig) GetRadiusSteps() int {
	if c.RadiusSteps == nil {
		return DefaultRadiusSteps
	}
	return *c.RadiusSteps
}

// GetSeed returns the PRNG seed or the default.
func (c *SimConfig) GetSeed() int64 {
	if c.Seed == nil {
		return DefaultSeed
	}
	return *c.Seed
}

// GetWorkers returns the worker count, 0 meaning one per CPU.
func (c *SimConfig) GetWorkers() int {
	if c.Workers == nil {
		return 0
	}
	return *c.Workers
}
