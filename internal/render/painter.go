//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Painter uploads frames from a FrameSource into an ebiten image for display.
type Painter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewPainter allocates a painter for a w*h output surface.
func NewPainter(w, h int) *Painter {
	p := &Painter{w: w, h: h, buf: make([]byte, 4*w*h)}
	p.img = ebiten.NewImage(w, h)
	return p
}

// Resize reallocates the staging image and buffer for new dimensions.
func (p *Painter) Resize(w, h int) {
	if w == p.w && h == p.h {
		return
	}
	p.w, p.h = w, h
	p.buf = make([]byte, 4*w*h)
	p.img.Dispose()
	p.img = ebiten.NewImage(w, h)
}

// Blit pulls a frame from src and draws it onto dst.
func (p *Painter) Blit(dst *ebiten.Image, src FrameSource) error {
	if err := src.Draw(p.buf); err != nil {
		return err
	}
	p.img.WritePixels(p.buf)
	dst.DrawImage(p.img, nil)
	return nil
}

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() (int, int) { return p.w, p.h }
