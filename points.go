package tfdrawer

import "sort"

// Point is an inflection point of the transfer function. Both coordinates
// are intensities on the 0-255 scale.
type Point struct {
	X int
	Y int
}

// PointSet is an ordered collection of inflection points. It always contains
// the fixed boundary points (0,0) and (255,255) as its first and last
// elements; interior points are kept sorted ascending by X.
//
// Invalid mutations are absorbed as no-ops rather than reported as errors:
// the set backs an interactive session where stray clicks must never abort.
type PointSet struct {
	pts []Point
}

// Interior points must keep clear of the pinned boundary columns.
const (
	interiorMinX = 1
	interiorMaxX = 254
)

// NewPointSet returns a set holding only the two boundary points.
func NewPointSet() *PointSet {
	return &PointSet{pts: []Point{{0, 0}, {255, 255}}}
}

// NewSeededPointSet returns a set holding the given interior points plus the
// boundaries. Seed points outside the interior domain are dropped the same
// way Add drops them.
func NewSeededPointSet(seed []Point) *PointSet {
	s := NewPointSet()
	for _, p := range seed {
		s.Add(p.X, p.Y)
	}
	return s
}

// Add inserts an interior point and re-sorts the set. Coordinates outside
// x in [1,254], y in [0,255] are ignored. It reports whether the set changed.
//
// Duplicate X values among interior points are tolerated; the resulting
// transfer function over such a column is undefined but stable (the sort is
// stable, so insertion order is preserved).
func (s *PointSet) Add(x, y int) bool {
	if x < interiorMinX || x > interiorMaxX || y < 0 || y > 255 {
		return false
	}
	s.pts = append(s.pts, Point{X: x, Y: y})
	sort.SliceStable(s.pts, func(i, j int) bool { return s.pts[i].X < s.pts[j].X })
	return true
}

// Remove deletes the point at index into the displayed sequence, which
// includes the boundaries at positions 0 and Len()-1. Boundary indices and
// out-of-range indices are ignored. It reports whether the set changed.
func (s *PointSet) Remove(index int) bool {
	if index <= 0 || index >= len(s.pts)-1 {
		return false
	}
	s.pts = append(s.pts[:index], s.pts[index+1:]...)
	return true
}

// Points returns a snapshot of the ordered sequence including boundaries.
func (s *PointSet) Points() []Point {
	out := make([]Point, len(s.pts))
	copy(out, s.pts)
	return out
}

// Len returns the number of points including the two boundaries.
func (s *PointSet) Len() int {
	return len(s.pts)
}

// String renders the set in the textual exchange format, e.g.
// "[(0, 0), (128, 200), (255, 255)]".
func (s *PointSet) String() string {
	return FormatPoints(s.pts)
}
