//go:build !ebiten

package ui

import "mandelview/internal/core"

// InfoProvider supplies the current view snapshot for display.
type InfoProvider interface {
	Info() core.ViewInfo
}

// HUD is a placeholder that satisfies the API expected by the GUI build.
type HUD struct{}

// NewHUD returns an inert HUD in the headless build.
func NewHUD(InfoProvider) *HUD { return &HUD{} }

// Toggle is a no-op placeholder.
func (h *HUD) Toggle() {}

// Draw is a no-op placeholder to satisfy the interface shape.
func (h *HUD) Draw(any) {}
