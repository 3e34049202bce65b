package manhattan_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridcover/grid"
	"github.com/katalvlaran/gridcover/manhattan"
)

// benchGrid builds a 100×100 grid with 1000 distinct random centers,
// seeded for reproducible runs.
func benchGrid(b *testing.B) *grid.Grid[int] {
	rng := rand.New(rand.NewSource(42))
	idx := rng.Perm(100 * 100)[:1000]
	centers := make([]grid.Coord, len(idx))
	for i, n := range idx {
		centers[i] = grid.Coord{X: n % 100, Y: n / 100}
	}

	return mustGrid(b, 100, 100, centers)
}

// BenchmarkCount measures the center-count scaling axis: many centers,
// small radius. Complexity: O(P·r²)
func BenchmarkCount(b *testing.B) {
	g := benchGrid(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := manhattan.Count(g, 2); err != nil {
			b.Fatalf("Count failed: %v", err)
		}
	}
}

// BenchmarkCountParallel runs the same workload fanned across 8 workers.
func BenchmarkCountParallel(b *testing.B) {
	g := benchGrid(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := manhattan.Count(g, 2, manhattan.WithWorkers(8)); err != nil {
			b.Fatalf("Count failed: %v", err)
		}
	}
}

// BenchmarkCountWraparound measures the extra folding pass on a torus.
func BenchmarkCountWraparound(b *testing.B) {
	g := benchGrid(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := manhattan.Count(g, 2, manhattan.WithWraparound()); err != nil {
			b.Fatalf("Count failed: %v", err)
		}
	}
}

// BenchmarkCountLargeRadius measures the radius scaling axis: few
// centers, large balls. Complexity: O(P·r²)
func BenchmarkCountLargeRadius(b *testing.B) {
	centers := []grid.Coord{{X: 50, Y: 50}, {X: 150, Y: 150}, {X: 100, Y: 30}}
	g := mustGrid(b, 200, 200, centers)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := manhattan.Count(g, 32); err != nil {
			b.Fatalf("Count failed: %v", err)
		}
	}
}

// BenchmarkNeighborhood measures single-ball generation at radius 32.
func BenchmarkNeighborhood(b *testing.B) {
	center := grid.Coord{X: 100, Y: 100}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := manhattan.Neighborhood(center, 32, 201, 201, true); err != nil {
			b.Fatalf("Neighborhood failed: %v", err)
		}
	}
}
