package fractal

import (
	"math"
	"testing"
)

const tolerance = 1e-12

func approx(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestToPlaneCorners(t *testing.T) {
	v, err := NewViewport(640, 480)
	if err != nil {
		t.Fatalf("NewViewport: %v", err)
	}

	x, y := v.ToPlane(0, 0)
	if x != v.XMin || y != v.YMin {
		t.Fatalf("ToPlane(0,0) = (%v, %v), want (%v, %v)", x, y, v.XMin, v.YMin)
	}

	x, y = v.ToPlane(639, 479)
	if !approx(x, v.XMax) || !approx(y, v.YMax) {
		t.Fatalf("ToPlane(639,479) = (%v, %v), want (%v, %v)", x, y, v.XMax, v.YMax)
	}
}

func TestResizeRoundTrip(t *testing.T) {
	v, err := NewViewport(640, 480)
	if err != nil {
		t.Fatalf("NewViewport: %v", err)
	}
	xMin, xMax, yMin, yMax := v.XMin, v.XMax, v.YMin, v.YMax

	if err := v.Resize(800, 600); err != nil {
		t.Fatalf("Resize(800,600): %v", err)
	}
	if err := v.Resize(640, 480); err != nil {
		t.Fatalf("Resize(640,480): %v", err)
	}

	if !approx(v.XMin, xMin) || !approx(v.XMax, xMax) || !approx(v.YMin, yMin) || !approx(v.YMax, yMax) {
		t.Fatalf("bounds after round trip = [%v,%v]x[%v,%v], want [%v,%v]x[%v,%v]",
			v.XMin, v.XMax, v.YMin, v.YMax, xMin, xMax, yMin, yMax)
	}
}

func TestResizeKeepsUnitsPerPixel(t *testing.T) {
	v, err := NewViewport(640, 480)
	if err != nil {
		t.Fatalf("NewViewport: %v", err)
	}
	perPixelX := (v.XMax - v.XMin) / float64(v.Width)
	perPixelY := (v.YMax - v.YMin) / float64(v.Height)

	if err := v.Resize(1024, 768); err != nil {
		t.Fatalf("Resize: %v", err)
	}

	gotX := (v.XMax - v.XMin) / float64(v.Width)
	gotY := (v.YMax - v.YMin) / float64(v.Height)
	if !approx(gotX, perPixelX) || !approx(gotY, perPixelY) {
		t.Fatalf("units per pixel changed: (%v, %v) -> (%v, %v)", perPixelX, perPixelY, gotX, gotY)
	}
}

func TestZoomInverse(t *testing.T) {
	v, err := NewViewport(640, 480)
	if err != nil {
		t.Fatalf("NewViewport: %v", err)
	}
	xMin, xMax, yMin, yMax := v.XMin, v.XMax, v.YMin, v.YMax

	// The window midpoint is a fixed point of zoom centering, so zooming in
	// and back out from it must restore the original bounds.
	if err := v.Zoom(320, 240, 0.5); err != nil {
		t.Fatalf("Zoom in: %v", err)
	}
	if err := v.Zoom(320, 240, 2.0); err != nil {
		t.Fatalf("Zoom out: %v", err)
	}

	if !approx(v.XMin, xMin) || !approx(v.XMax, xMax) || !approx(v.YMin, yMin) || !approx(v.YMax, yMax) {
		t.Fatalf("bounds after inverse zoom = [%v,%v]x[%v,%v], want [%v,%v]x[%v,%v]",
			v.XMin, v.XMax, v.YMin, v.YMax, xMin, xMax, yMin, yMax)
	}
}

func TestZoomRecenters(t *testing.T) {
	v, err := NewViewport(640, 480)
	if err != nil {
		t.Fatalf("NewViewport: %v", err)
	}

	if err := v.Zoom(320, 240, 0.5); err != nil {
		t.Fatalf("Zoom: %v", err)
	}
	cx, cy := v.Center()
	if !approx(cx, -0.765) || !approx(cy, 0) {
		t.Fatalf("center after midpoint zoom = (%v, %v), want (-0.765, 0)", cx, cy)
	}
	sx, sy := v.Span()
	if !approx(sx, 2.47/2) || !approx(sy, 2.24/2) {
		t.Fatalf("span after zoom = (%v, %v), want (1.235, 1.12)", sx, sy)
	}
}

func TestZoomRejectsNonPositiveFactor(t *testing.T) {
	v, err := NewViewport(640, 480)
	if err != nil {
		t.Fatalf("NewViewport: %v", err)
	}
	before := *v

	for _, factor := range []float64{0, -1} {
		if err := v.Zoom(320, 240, factor); err == nil {
			t.Fatalf("Zoom with factor %v did not fail", factor)
		}
		if *v != before {
			t.Fatalf("Zoom with factor %v mutated the viewport", factor)
		}
	}
}

func TestResizeRejectsNonPositiveDimensions(t *testing.T) {
	v, err := NewViewport(640, 480)
	if err != nil {
		t.Fatalf("NewViewport: %v", err)
	}
	before := *v

	for _, dims := range [][2]int{{0, 480}, {640, 0}, {-1, -1}} {
		if err := v.Resize(dims[0], dims[1]); err == nil {
			t.Fatalf("Resize(%d,%d) did not fail", dims[0], dims[1])
		}
		if *v != before {
			t.Fatalf("Resize(%d,%d) mutated the viewport", dims[0], dims[1])
		}
	}
}

func TestNewViewportRejectsNonPositiveDimensions(t *testing.T) {
	if _, err := NewViewport(0, 480); err == nil {
		t.Fatal("NewViewport(0,480) did not fail")
	}
	if _, err := NewViewport(640, -1); err == nil {
		t.Fatal("NewViewport(640,-1) did not fail")
	}
}

func TestPanShiftsBySpanFraction(t *testing.T) {
	v, err := NewViewport(640, 480)
	if err != nil {
		t.Fatalf("NewViewport: %v", err)
	}
	sx, sy := v.Span()
	cx, cy := v.Center()

	v.Pan(0.1, -0.25)

	gotX, gotY := v.Center()
	if !approx(gotX, cx+0.1*sx) || !approx(gotY, cy-0.25*sy) {
		t.Fatalf("center after pan = (%v, %v), want (%v, %v)", gotX, gotY, cx+0.1*sx, cy-0.25*sy)
	}
	newSX, newSY := v.Span()
	if !approx(newSX, sx) || !approx(newSY, sy) {
		t.Fatalf("pan changed span: (%v, %v) -> (%v, %v)", sx, sy, newSX, newSY)
	}
}
