package tfdrawer

import (
	"fmt"
	"image"
)

// StrategyAuto picks StrategyGrayscale for single-channel input and
// StrategyLuminance for color input at engine construction.
const StrategyAuto Strategy = -1

// Options configures an Engine at construction.
type Options struct {
	// Strategy overrides the color-application strategy. StrategyAuto
	// resolves by channel count, which is the one knob the interactive
	// layer normally touches.
	Strategy Strategy
	// Seed holds initial interior points.
	Seed []Point
	// SeedText holds initial points in the textual exchange format,
	// typically a previously printed point list. Parsed in addition
	// to Seed.
	SeedText string
	// DisplayScale uniformly scales the display copy of the image.
	// 1 keeps the source size.
	DisplayScale float64
}

// Engine owns one editing session: the current point set, the lookup table
// derived from it, and the processed display image. All methods are
// synchronous; every mutation rebuilds the table and reapplies it before
// returning, so the engine is always in a consistent, fully-built state.
//
// An Engine is not safe for concurrent use. The interactive layer drives it
// from a single event loop.
type Engine struct {
	points    *PointSet
	table     Table
	strategy  Strategy
	source    image.Image
	display   image.Image
	processed image.Image
	scale     float64
}

// NewEngine starts a session on img. The only failure mode is malformed
// seed data; stray coordinates inside well-formed seeds are dropped, not
// reported.
func NewEngine(img image.Image, opts ...func(o *Options)) (*Engine, error) {
	opt := Options{Strategy: StrategyAuto, DisplayScale: 1}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}

	seed := append([]Point(nil), opt.Seed...)
	if opt.SeedText != "" {
		parsed, err := ParsePoints(opt.SeedText)
		if err != nil {
			return nil, fmt.Errorf("seed points: %w", err)
		}
		seed = append(seed, parsed...)
	}

	strategy := opt.Strategy
	if strategy == StrategyAuto {
		if _, ok := img.(*image.Gray); ok {
			strategy = StrategyGrayscale
		} else {
			strategy = StrategyLuminance
		}
	}

	e := &Engine{
		points:   NewSeededPointSet(seed),
		strategy: strategy,
		source:   img,
		scale:    1,
	}
	e.display = img
	if opt.DisplayScale > 0 && opt.DisplayScale != 1 {
		e.scale = opt.DisplayScale
		e.display = Scale(img, opt.DisplayScale)
	}
	e.rebuild()
	return e, nil
}

// AddPoint inserts an inflection point and returns the freshly processed
// display image. Out-of-range coordinates leave the session untouched.
func (e *Engine) AddPoint(x, y int) image.Image {
	if e.points.Add(x, y) {
		e.rebuild()
	}
	return e.processed
}

// RemovePoint deletes the point at index into the displayed sequence and
// returns the freshly processed display image. Boundary and out-of-range
// indices leave the session untouched.
func (e *Engine) RemovePoint(index int) image.Image {
	if e.points.Remove(index) {
		e.rebuild()
	}
	return e.processed
}

// SetDisplayScale re-derives the display copy at the given uniform scale
// factor and reapplies the current table to it. Non-positive factors are
// ignored.
func (e *Engine) SetDisplayScale(factor float64) image.Image {
	if factor <= 0 || factor == e.scale {
		return e.processed
	}
	e.scale = factor
	if factor == 1 {
		e.display = e.source
	} else {
		e.display = Scale(e.source, factor)
	}
	e.processed = Apply(e.display, e.table, e.strategy)
	return e.processed
}

// Render applies the current table to an arbitrary image. The session's
// display state is unaffected; this is the path used to process the
// full-resolution source at save time.
func (e *Engine) Render(src image.Image) image.Image {
	return Apply(src, e.table, e.strategy)
}

// Points returns a snapshot of the current point sequence including the
// boundary points.
func (e *Engine) Points() []Point {
	return e.points.Points()
}

// Table returns the current lookup table.
func (e *Engine) Table() Table {
	return e.table
}

// Strategy returns the resolved color-application strategy.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Processed returns the display image with the current table applied.
func (e *Engine) Processed() image.Image {
	return e.processed
}

func (e *Engine) rebuild() {
	e.table = BuildTable(e.points.Points())
	e.processed = Apply(e.display, e.table, e.strategy)
}
