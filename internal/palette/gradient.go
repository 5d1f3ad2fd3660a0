// Package palette builds the color lookup tables that turn smoothed
// iteration counts into pixels.
package palette

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Stop anchors a color at a position along a gradient. Positions act as
// relative weights between stops and are not confined to [0, 1].
type Stop struct {
	Pos   float64
	Color colorful.Color
}

// Gradient is a piecewise-linear color ramp over an ordered sequence of stops.
type Gradient []Stop

// At samples the gradient at pos, clamping to the first and last stop colors
// outside the covered range.
func (g Gradient) At(pos float64) colorful.Color {
	if len(g) == 0 {
		return colorful.Color{}
	}
	last := len(g) - 1
	if pos <= g[0].Pos {
		return g[0].Color
	}
	if pos >= g[last].Pos {
		return g[last].Color
	}
	for i := 0; i < last; i++ {
		a, b := g[i], g[i+1]
		if pos > b.Pos {
			continue
		}
		span := b.Pos - a.Pos
		if span <= 0 {
			return b.Color
		}
		return a.Color.BlendRgb(b.Color, (pos-a.Pos)/span)
	}
	return g[last].Color
}

// Table samples the gradient at n evenly spaced points across its stop range
// and returns a lookup table of n+1 colors.
func (g Gradient) Table(n int) []color.RGBA {
	if n < 1 {
		n = 1
	}
	table := make([]color.RGBA, n+1)
	if len(g) == 0 {
		return table
	}
	lo, hi := g[0].Pos, g[len(g)-1].Pos
	for i := 0; i <= n; i++ {
		pos := lo + (hi-lo)*float64(i)/float64(n)
		r, gr, b := g.At(pos).RGB255()
		table[i] = color.RGBA{R: r, G: gr, B: b, A: 0xff}
	}
	return table
}
