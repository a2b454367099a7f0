package sampling

import (
	"math"
	"math/rand"
	"testing"

	"github.com/spinlab/magcavity/internal/dipole"
)

func TestSphereSurfaceRadius(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, radius := range []float64{1.0, 2e-5, 750} {
		points := SphereSurface(rng, radius, 200)
		if len(points) != 200 {
			t.Fatalf("got %d points, want 200", len(points))
		}
		for i, p := range points {
			if math.Abs(p.Norm()-radius) > 1e-12*radius {
				t.Fatalf("point %d at distance %g, want %g", i, p.Norm(), radius)
			}
		}
	}
}

func TestSphereSurfaceCoversOctants(t *testing.T) {
	// Uniform solid-angle coverage implies every octant sees samples.
	rng := rand.New(rand.NewSource(2))
	points := SphereSurface(rng, 1, 800)

	octants := make(map[[3]bool]int)
	for _, p := range points {
		octants[[3]bool{p.X > 0, p.Y > 0, p.Z > 0}]++
	}
	if len(octants) != 8 {
		t.Fatalf("samples cover %d octants, want 8", len(octants))
	}
	for oct, n := range octants {
		if n < 800/8/4 {
			t.Errorf("octant %v undersampled: %d of 800", oct, n)
		}
	}
}

func TestCubeUniformBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	side := 4e-5
	points := CubeUniform(rng, side, 1000)

	if len(points) != 1000 {
		t.Fatalf("got %d points, want 1000", len(points))
	}
	half := side / 2
	for i, p := range points {
		if math.Abs(p.X) > half || math.Abs(p.Y) > half || math.Abs(p.Z) > half {
			t.Fatalf("point %d outside cube: %+v", i, p)
		}
	}
}

func TestSamplersDeterministic(t *testing.T) {
	a := SphereSurface(rand.New(rand.NewSource(7)), 1, 50)
	b := SphereSurface(rand.New(rand.NewSource(7)), 1, 50)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("surface sample %d differs between identically seeded draws", i)
		}
	}

	c := CubeUniform(rand.New(rand.NewSource(7)), 2, 50)
	d := CubeUniform(rand.New(rand.NewSource(7)), 2, 50)
	for i := range c {
		if c[i] != d[i] {
			t.Fatalf("cube sample %d differs between identically seeded draws", i)
		}
	}
}

func TestCavityPointsOutsideSpheres(t *testing.T) {
	lat, err := dipole.NewLattice(1e28, 2e-5)
	if err != nil {
		t.Fatal(err)
	}

	rng := rand.New(rand.NewSource(11))
	points := CavityPoints(rng, lat, 200)

	if len(points) == 0 {
		t.Fatal("no cavity points produced")
	}
	if len(points) > 200 {
		t.Fatalf("got %d points, want at most 200", len(points))
	}
	for i, p := range points {
		if lat.Contains(p) {
			t.Fatalf("cavity point %d lies inside a sphere: %+v", i, p)
		}
	}
}

func TestCavityPointsZeroRequest(t *testing.T) {
	lat, err := dipole.NewLattice(1e28, 2e-5)
	if err != nil {
		t.Fatal(err)
	}
	if got := CavityPoints(rand.New(rand.NewSource(1)), lat, 0); len(got) != 0 {
		t.Errorf("CavityPoints(0) = %d points, want none", len(got))
	}
}
