package tfdrawer

// TableSize is the number of entries in a lookup table, one per 8-bit
// input intensity.
const TableSize = 256

// Table maps each input intensity to an output intensity. It is a derived
// value, fully recomputed from the current point set on every mutation.
type Table [TableSize]uint8

// IdentityTable returns the table that maps every intensity to itself.
func IdentityTable() Table {
	var t Table
	for i := range t {
		t[i] = uint8(i)
	}
	return t
}

// BuildTable converts an ordered point sequence into a full lookup table by
// piecewise-linear interpolation between consecutive points.
//
// The boundary points (0,0) and (255,255) are synthesized around the input
// unconditionally; if the input already carries them the synthesized copies
// are zero-width duplicates and fall out of the interpolation. Each segment
// contributes xj-xi+1 values inclusive of both endpoints, with the shared
// junction value emitted once. Interpolated values are truncated to uint8.
//
// For any input sorted ascending by X with coordinates in [0,255], the
// result has exactly 256 entries, t[0] equal to the effective Y at X=0 and
// t[255] equal to the effective Y at X=255. A zero-width segment (duplicate
// X) keeps only its single endpoint value; the table over such a column is
// undefined but stays in range.
func BuildTable(points []Point) Table {
	pts := make([]Point, 0, len(points)+2)
	pts = append(pts, Point{X: 0, Y: 0})
	pts = append(pts, points...)
	pts = append(pts, Point{X: 255, Y: 255})

	vals := make([]float64, 1, TableSize)
	vals[0] = float64(pts[0].Y)
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		// Drop the junction value duplicated by the previous segment.
		vals = vals[:len(vals)-1]
		span := b.X - a.X
		if span <= 0 {
			vals = append(vals, float64(a.Y))
			continue
		}
		for k := 0; k <= span; k++ {
			vals = append(vals, float64(a.Y)+float64(b.Y-a.Y)*float64(k)/float64(span))
		}
	}

	var t Table
	for i := 0; i < TableSize && i < len(vals); i++ {
		t[i] = truncToByte(vals[i])
	}
	return t
}

// IsIdentity reports whether applying t would leave any image unchanged.
func (t Table) IsIdentity() bool {
	for i, v := range t {
		if v != uint8(i) {
			return false
		}
	}
	return true
}
