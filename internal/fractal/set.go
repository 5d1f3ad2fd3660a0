// Package fractal computes and renders the Mandelbrot set into an RGBA
// frame buffer, recomputing only what pending commands have invalidated.
package fractal

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"mandelview/internal/core"
	"mandelview/internal/palette"
	"mandelview/internal/render"
)

// DefaultMaxIterations is the rendering depth used at startup.
const DefaultMaxIterations = 1000

// Set owns the viewport, the smoothed iteration field, the palette lookup
// table and the cached frame buffer. Commands mark state dirty; Draw resolves
// a pending recompute before a pending recolor, never the other way around.
type Set struct {
	vp      *Viewport
	field   *core.FloatGrid
	grad    palette.Gradient
	table   []color.RGBA
	frame   []byte
	recipe  string
	maxIter int
	rng     *rand.Rand

	recalcNeeded bool
	redrawNeeded bool
	drawing      bool

	watch   core.Stopwatch
	recalcs int
}

// NewSet creates a renderer for a width*height surface. The RNG feeds random
// palette generation; passing the same source reproduces the same palettes.
func NewSet(width, height, maxIterations int, rng *rand.Rand) (*Set, error) {
	if maxIterations <= 0 {
		return nil, fmt.Errorf("max iterations must be positive, got %d", maxIterations)
	}
	vp, err := NewViewport(width, height)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(0, 0))
	}

	s := &Set{
		vp:      vp,
		field:   core.NewFloatGrid(width, height),
		frame:   newFrame(width, height),
		maxIter: maxIterations,
		rng:     rng,

		recalcNeeded: true,
		redrawNeeded: true,
	}
	if err := s.UsePalette(palette.Rainbow); err != nil {
		return nil, err
	}
	return s, nil
}

func newFrame(width, height int) []byte {
	frame := make([]byte, width*height*4)
	for i := range frame {
		frame[i] = 0xff
	}
	return frame
}

// Zoom recenters on the plane point under the pixel (px, py) and scales the
// view by factor. The next draw recomputes the iteration field.
func (s *Set) Zoom(px, py, factor float64) error {
	if err := s.vp.Zoom(px, py, factor); err != nil {
		return err
	}
	s.markRecalc()
	return nil
}

// Resize rescales the viewport proportionally and reallocates the iteration
// field and frame buffer for the new dimensions.
func (s *Set) Resize(width, height int) error {
	if err := s.vp.Resize(width, height); err != nil {
		return err
	}
	s.field.Resize(width, height)
	s.frame = newFrame(width, height)
	s.markRecalc()
	return nil
}

// Pan shifts the view by the given fractions of the current axis spans.
func (s *Set) Pan(dx, dy float64) {
	s.vp.Pan(dx, dy)
	s.markRecalc()
}

// RandomizePalette rebuilds the lookup table from the random recipe. Only a
// recolor is needed; the iteration field stays valid.
func (s *Set) RandomizePalette() {
	s.mustUsePalette(palette.Random)
}

// UsePalette switches to the named palette recipe and rebuilds the lookup
// table.
func (s *Set) UsePalette(name string) error {
	recipe, ok := palette.Get(name)
	if !ok {
		return fmt.Errorf("unknown palette %q", name)
	}
	s.grad = recipe(s.rng)
	s.table = s.grad.Table(s.maxIter)
	s.recipe = name
	s.redrawNeeded = true
	return nil
}

// mustUsePalette switches recipes and panics on an unknown name. It is for
// the built-in recipes, which init registers unconditionally.
func (s *Set) mustUsePalette(name string) {
	if err := s.UsePalette(name); err != nil {
		panic(err)
	}
}

// SetMaxIterations changes the iteration cap. The field values and the table
// size both depend on it, so everything is rebuilt on the next draw.
func (s *Set) SetMaxIterations(n int) error {
	if n <= 0 {
		return fmt.Errorf("max iterations must be positive, got %d", n)
	}
	s.maxIter = n
	s.table = s.grad.Table(n)
	s.markRecalc()
	return nil
}

// Reset restores the default viewport bounds and the rainbow palette.
func (s *Set) Reset() {
	s.vp.Reset()
	s.mustUsePalette(palette.Rainbow)
	s.markRecalc()
}

// MaxIterations returns the current iteration cap.
func (s *Set) MaxIterations() int { return s.maxIter }

// Size returns the pixel dimensions of the output surface.
func (s *Set) Size() core.Size { return core.Size{W: s.vp.Width, H: s.vp.Height} }

// Info returns a snapshot of the current view for display layers.
func (s *Set) Info() core.ViewInfo {
	cx, cy := s.vp.Center()
	sx, sy := s.vp.Span()
	return core.ViewInfo{
		CenterX:       cx,
		CenterY:       cy,
		SpanX:         sx,
		SpanY:         sy,
		MaxIterations: s.maxIter,
		Palette:       s.recipe,
		Recalc:        s.watch.Last(),
	}
}

// Draw fills frame with the current RGBA image, first resolving any pending
// recompute and recolor. With nothing pending it is a plain copy of the
// cached buffer. The frame must be exactly width*height*4 bytes.
func (s *Set) Draw(frame []byte) error {
	want := s.vp.Width * s.vp.Height * 4
	if len(frame) != want {
		return fmt.Errorf("frame buffer is %d bytes, want %d", len(frame), want)
	}

	// The guard keeps a reentrant draw request from kicking off a second
	// recompute over state already being rebuilt; it sees the last complete
	// frame instead.
	if !s.drawing {
		s.drawing = true
		if s.recalcNeeded {
			s.recalcField()
			s.recalcNeeded = false
		}
		if s.redrawNeeded {
			render.FillSmoothRGBA(s.frame, s.field.Values(), s.maxIter, s.table)
			s.redrawNeeded = false
		}
		s.drawing = false
	}

	copy(frame, s.frame)
	return nil
}

// markRecalc flags the iteration field stale; a stale field always implies a
// stale frame buffer as well.
func (s *Set) markRecalc() {
	s.recalcNeeded = true
	s.redrawNeeded = true
}

func (s *Set) recalcField() {
	s.watch.Start()
	width := s.vp.Width
	values := s.field.Values()
	for py := 0; py < s.vp.Height; py++ {
		for px := 0; px < width; px++ {
			x0, y0 := s.vp.ToPlane(float64(px), float64(py))
			values[py*width+px] = escapeTime(x0, y0, s.maxIter)
		}
	}
	s.watch.Stop()
	s.recalcs++
}
