package render

import "image/color"

// FrameSource produces RGBA frames on demand.
type FrameSource interface {
	Draw(frame []byte) error
}

// FillSmoothRGBA converts smoothed iteration counts into RGBA pixels in buf.
// Values at or above maxIterations take the final table entry, the interior
// color; escaped values blend between the two neighboring table entries by
// their fractional part. The table must hold maxIterations+1 entries.
func FillSmoothRGBA(buf []byte, field []float64, maxIterations int, table []color.RGBA) {
	for i, v := range field {
		var c color.RGBA
		if v >= float64(maxIterations) {
			c = table[maxIterations]
		} else {
			idx := int(v)
			if idx < 0 {
				idx = 0
			}
			// Rounding can push v within an epsilon of the cap; keep idx+1
			// inside the table.
			if idx > maxIterations-1 {
				idx = maxIterations - 1
			}
			f := v - float64(idx)
			if f < 0 {
				f = 0
			}
			c = lerpRGBA(table[idx], table[idx+1], f)
		}
		base := i * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}

// lerpRGBA mixes two colors channel-wise by fraction t in [0, 1].
func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: 0xff,
	}
}
