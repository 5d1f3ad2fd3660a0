package fractal

import "math"

var log10of2 = math.Log10(2)

// insideCardioid reports whether c = (x0, y0) lies inside the main cardioid.
func insideCardioid(x0, y0 float64) bool {
	p := math.Sqrt((x0-0.25)*(x0-0.25) + y0*y0)
	return x0 <= p-2*p*p+0.25
}

// insideBulb reports whether c lies inside the period-2 bulb centered at -1.
func insideBulb(x0, y0 float64) bool {
	return (x0+1)*(x0+1)+y0*y0 <= 1.0/16
}

// escapeTime returns the smoothed iteration count for the plane point
// c = (x0, y0) under z -> z^2 + c starting from zero. The result is exactly
// maxIterations when the point is classified as non-escaping (interior or
// periodic); any lesser, possibly fractional, value measures how quickly the
// orbit escaped.
func escapeTime(x0, y0 float64, maxIterations int) float64 {
	// Closed-form interior checks skip the two largest non-escaping regions
	// without iterating at all.
	if insideCardioid(x0, y0) || insideBulb(x0, y0) {
		return float64(maxIterations)
	}

	var x, y, x2, y2 float64
	var oldX, oldY float64
	iteration, period := 0, 0
	for x2+y2 <= 4 && iteration < maxIterations {
		y = 2*x*y + y0
		x = x2 - y2 + x0
		x2 = x * x
		y2 = y * y
		iteration++

		// An orbit that exactly revisits an earlier point is bounded forever.
		if x == oldX && y == oldY {
			return float64(maxIterations)
		}
		period++
		if period > 20 {
			period = 0
			oldX, oldY = x, y
		}
	}

	if iteration >= maxIterations {
		return float64(maxIterations)
	}

	// Continuous iteration count; the escape condition guarantees
	// x2+y2 > 4, so both logs have positive arguments.
	nu := math.Log10(math.Log10(x2+y2)/log10of2) / log10of2
	smoothed := float64(iteration) + 1 - nu
	if smoothed < 0 {
		return 0
	}
	return smoothed
}
