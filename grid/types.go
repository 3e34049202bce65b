// Package grid defines the coordinate, set, and element types shared by
// the gridcover subpackages of github.com/katalvlaran/gridcover.
package grid

import "sort"

// Value constrains the numeric element types a Grid may hold.
// A cell counts as positive when its value is strictly greater than zero,
// so unsigned zeros and negative floats are both "not positive".
type Value interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Coord identifies a single cell by its column (X) and row (Y).
// It is a comparable value type and may be used as a map key.
type Coord struct {
	X, Y int
}

// L1 returns the Manhattan distance |c.X-o.X| + |c.Y-o.Y|.
// Complexity: O(1).
func (c Coord) L1(o Coord) int {
	dx := c.X - o.X
	if dx < 0 {
		dx = -dx
	}
	dy := c.Y - o.Y
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}

// In reports whether c lies within a width×height grid.
// Complexity: O(1).
func (c Coord) In(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// Wrap folds c onto a width×height torus. The result always lies in
// [0,width)×[0,height): Go's remainder keeps the dividend's sign, so
// negative remainders are shifted back into range.
// Complexity: O(1).
func (c Coord) Wrap(width, height int) Coord {
	x := c.X % width
	if x < 0 {
		x += width
	}
	y := c.Y % height
	if y < 0 {
		y += height
	}

	return Coord{X: x, Y: y}
}

// CoordSet is a deduplicating set of coordinates keyed by exact value
// equality. Construct with NewCoordSet; a nil CoordSet is read-only empty.
type CoordSet map[Coord]struct{}

// NewCoordSet returns an empty set pre-sized for about hint coordinates.
// Complexity: O(1).
func NewCoordSet(hint int) CoordSet {
	if hint < 0 {
		hint = 0
	}

	return make(CoordSet, hint)
}

// Add inserts c; inserting a coordinate already present is a no-op.
// Complexity: O(1).
func (s CoordSet) Add(c Coord) {
	s[c] = struct{}{}
}

// Has reports whether c is a member of the set.
// Complexity: O(1).
func (s CoordSet) Has(c Coord) bool {
	_, ok := s[c]

	return ok
}

// Len returns the number of distinct coordinates in the set.
// Complexity: O(1).
func (s CoordSet) Len() int {
	return len(s)
}

// Merge inserts every coordinate of other into s. Merging is commutative
// and associative, so any merge order yields the same set.
// Complexity: O(|other|).
func (s CoordSet) Merge(other CoordSet) {
	for c := range other {
		s[c] = struct{}{}
	}
}

// Fold wraps every coordinate onto a width×height torus and returns the
// folded set. Folding is many-to-one: distinct coordinates may coincide,
// so the result never has more members than s.
// Panics if width or height is not positive.
// Complexity: O(|s|).
func (s CoordSet) Fold(width, height int) CoordSet {
	if width <= 0 || height <= 0 {
		panic("grid: Fold requires positive dimensions")
	}
	folded := NewCoordSet(len(s))
	for c := range s {
		folded.Add(c.Wrap(width, height))
	}

	return folded
}

// Coords returns the members sorted in row-major order (Y first, then X),
// giving map-backed sets a deterministic external form.
// Complexity: O(n log n).
func (s CoordSet) Coords() []Coord {
	out := make([]Coord, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}

		return out[i].X < out[j].X
	})

	return out
}
