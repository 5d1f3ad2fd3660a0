//go:build ebiten

package ui

import (
	"fmt"

	"mandelview/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// InfoProvider supplies the current view snapshot for display.
type InfoProvider interface {
	Info() core.ViewInfo
}

// HUD overlays view diagnostics in the top-left screen corner.
type HUD struct {
	src     InfoProvider
	visible bool
}

// NewHUD constructs a HUD reading from the provided source.
func NewHUD(src InfoProvider) *HUD {
	return &HUD{src: src, visible: true}
}

// Toggle flips HUD visibility.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Draw prints the snapshot over the rendered frame.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible {
		return
	}
	info := h.src.Info()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"center (%.9f, %.9f)\nspan %.3e x %.3e\niterations %d\npalette %s\nrecalc %v\nfps %.1f",
		info.CenterX, info.CenterY,
		info.SpanX, info.SpanY,
		info.MaxIterations,
		info.Palette,
		info.Recalc,
		ebiten.ActualFPS()))
}
