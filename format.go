package tfdrawer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSeed reports a malformed serialized point list.
var ErrInvalidSeed = errors.New("invalid seed points")

// FormatPoints renders points in the textual exchange format, e.g.
// "[(0, 0), (64, 200), (255, 255)]". The output round-trips through
// ParsePoints.
func FormatPoints(pts []Point) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range pts {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "(%d, %d)", p.X, p.Y)
	}
	b.WriteByte(']')
	return b.String()
}

// ParsePoints decodes a textual point list of the form
// "[(x0, y0), (x1, y1), ...]". Whitespace is ignored. Non-numeric entries,
// pairs of the wrong arity and coordinates outside [0,255] are rejected
// with an error wrapping ErrInvalidSeed.
//
// The parse substitutes brackets for the parentheses and decodes the result
// as a nested numeric array, so it tolerates anything re-exported by
// FormatPoints as well as hand-edited spacing.
func ParsePoints(s string) ([]Point, error) {
	jsonish := strings.NewReplacer("(", "[", ")", "]").Replace(s)
	var raw [][]int
	if err := json.Unmarshal([]byte(jsonish), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	pts := make([]Point, 0, len(raw))
	for i, pair := range raw {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: element %d has %d coordinates", ErrInvalidSeed, i, len(pair))
		}
		x, y := pair[0], pair[1]
		if x < 0 || x > 255 || y < 0 || y > 255 {
			return nil, fmt.Errorf("%w: point (%d, %d) outside [0,255]", ErrInvalidSeed, x, y)
		}
		pts = append(pts, Point{X: x, Y: y})
	}
	return pts, nil
}
