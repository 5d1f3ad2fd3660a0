package fractal

import "fmt"

// Default bounds frame the full set with a little margin on every side.
const (
	defaultXMin = -2.00
	defaultXMax = 0.47
	defaultYMin = -1.12
	defaultYMax = 1.12
)

// normalize linearly remaps n from the range [rMin, rMax] to [tMin, tMax].
func normalize(n, rMin, rMax, tMin, tMax float64) float64 {
	return (n-rMin)/(rMax-rMin)*(tMax-tMin) + tMin
}

// Viewport maps the pixel grid onto a rectangular region of the complex plane.
type Viewport struct {
	Width, Height int
	XMin, XMax    float64
	YMin, YMax    float64
}

// NewViewport creates a viewport over the default bounds.
func NewViewport(width, height int) (*Viewport, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("viewport dimensions must be positive, got %dx%d", width, height)
	}
	v := &Viewport{Width: width, Height: height}
	v.Reset()
	return v, nil
}

// Reset restores the default plane bounds. Pixel dimensions are unchanged.
func (v *Viewport) Reset() {
	v.XMin, v.XMax = defaultXMin, defaultXMax
	v.YMin, v.YMax = defaultYMin, defaultYMax
}

// ToPlane remaps the pixel coordinate (px, py) to its point on the plane.
// Pixel 0 maps to the minimum bound and width-1/height-1 to the maximum.
func (v *Viewport) ToPlane(px, py float64) (float64, float64) {
	xDenom, yDenom := float64(v.Width-1), float64(v.Height-1)
	if xDenom < 1 {
		xDenom = 1
	}
	if yDenom < 1 {
		yDenom = 1
	}
	x := normalize(px, 0, xDenom, v.XMin, v.XMax)
	y := normalize(py, 0, yDenom, v.YMin, v.YMax)
	return x, y
}

// Zoom recenters the viewport on the plane point under the pixel (px, py) and
// scales both axis ranges by factor; factor < 1 zooms in, > 1 zooms out.
// Centering divides by the full width/height rather than width-1/height-1:
// pixel width/2 then lands exactly on the midpoint of the range.
func (v *Viewport) Zoom(px, py, factor float64) error {
	if factor <= 0 {
		return fmt.Errorf("zoom factor must be positive, got %g", factor)
	}

	cx := v.XMin + (px/float64(v.Width))*(v.XMax-v.XMin)
	cy := v.YMin + (py/float64(v.Height))*(v.YMax-v.YMin)

	halfX := (v.XMax - v.XMin) * factor / 2
	halfY := (v.YMax - v.YMin) * factor / 2
	v.XMin, v.XMax = cx-halfX, cx+halfX
	v.YMin, v.YMax = cy-halfY, cy+halfY
	return nil
}

// Resize adjusts the plane bounds so that plane units per pixel stay constant
// across the change, then adopts the new pixel dimensions. Growing the window
// exposes more of the plane; shrinking it narrows the view.
func (v *Viewport) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("viewport dimensions must be positive, got %dx%d", width, height)
	}

	xRatio := float64(width) / float64(v.Width)
	yRatio := float64(height) / float64(v.Height)

	xRange := v.XMax - v.XMin
	yRange := v.YMax - v.YMin

	// Split the extra (or removed) extent evenly so the center stays put.
	xDiff := xRatio*xRange - xRange
	yDiff := yRatio*yRange - yRange

	v.XMin -= xDiff / 2
	v.XMax += xDiff / 2
	v.YMin -= yDiff / 2
	v.YMax += yDiff / 2

	v.Width, v.Height = width, height
	return nil
}

// Pan shifts the view by the given fractions of the current axis spans.
func (v *Viewport) Pan(dx, dy float64) {
	xShift := dx * (v.XMax - v.XMin)
	yShift := dy * (v.YMax - v.YMin)
	v.XMin += xShift
	v.XMax += xShift
	v.YMin += yShift
	v.YMax += yShift
}

// Center returns the midpoint of the viewed plane region.
func (v *Viewport) Center() (float64, float64) {
	return (v.XMin + v.XMax) / 2, (v.YMin + v.YMax) / 2
}

// Span returns the extent of each axis range.
func (v *Viewport) Span() (float64, float64) {
	return v.XMax - v.XMin, v.YMax - v.YMin
}
