package manhattan

import (
	"fmt"

	"github.com/katalvlaran/gridcover/grid"
)

// Neighborhood returns every coordinate within L1 distance radius of
// center, excluding center itself. With prune=true, coordinates outside
// the width×height bounds are dropped as they are produced; with
// prune=false they are retained as-is (possibly negative or past the
// far edge) so a caller can fold them onto a torus later, and width and
// height are not consulted.
//
// The ball is generated from its first quadrant: every offset pair with
// 0 ≤ dx, 0 ≤ dy and 0 < dx+dy ≤ radius is reflected into all four
// quadrants, and the set absorbs reflections that coincide on the axes.
// radius 0 yields an empty set.
//
// Returns ErrNegativeRadius when radius < 0.
// Complexity: O(r²) time and memory.
func Neighborhood(center grid.Coord, radius, width, height int, prune bool) (grid.CoordSet, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w (%d)", ErrNegativeRadius, radius)
	}
	set := grid.NewCoordSet(ballSize(radius))
	emit(set, center, radius, width, height, prune)

	return set, nil
}

// ballSize is the cardinality of an L1 ball of radius r minus its
// center, 2·r·(r+1), used to pre-size sets.
func ballSize(radius int) int {
	return 2 * radius * (radius + 1)
}

// emit writes the neighborhood of center into set, pruning or retaining
// out-of-bounds coordinates as requested.
func emit(set grid.CoordSet, center grid.Coord, radius, width, height int, prune bool) {
	for dx := 0; dx <= radius; dx++ {
		for dy := 0; dx+dy <= radius; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			put(set, grid.Coord{X: center.X + dx, Y: center.Y + dy}, width, height, prune)
			put(set, grid.Coord{X: center.X + dx, Y: center.Y - dy}, width, height, prune)
			put(set, grid.Coord{X: center.X - dx, Y: center.Y + dy}, width, height, prune)
			put(set, grid.Coord{X: center.X - dx, Y: center.Y - dy}, width, height, prune)
		}
	}
}

// put adds c to set unless pruning is on and c falls outside the grid.
func put(set grid.CoordSet, c grid.Coord, width, height int, prune bool) {
	if prune && !c.In(width, height) {
		return
	}
	set.Add(c)
}
