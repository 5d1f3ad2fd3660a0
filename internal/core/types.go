package core

import "time"

// Size describes the pixel dimensions of the output surface.
type Size struct {
	W int
	H int
}

// ViewInfo is a read-only snapshot of renderer state for display layers.
type ViewInfo struct {
	CenterX, CenterY float64
	SpanX, SpanY     float64
	MaxIterations    int
	Palette          string
	Recalc           time.Duration
}
