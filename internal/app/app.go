//go:build ebiten

package app

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"mandelview/internal/fractal"
	"mandelview/internal/render"
	"mandelview/internal/ui"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Zoom factors for the two mouse buttons; click to dive in, right-click to
// back out.
const (
	zoomInFactor  = 0.5
	zoomOutFactor = 2.0
)

const panStep = 0.1

// Game adapts a fractal.Set to the ebiten.Game interface.
type Game struct {
	set     *fractal.Set
	painter *render.Painter
	hud     *ui.HUD
	logger  bslogger.Logger
}

// New constructs a Game around the provided set.
func New(set *fractal.Set, showHUD bool) *Game {
	size := set.Size()
	g := &Game{
		set:     set,
		painter: render.NewPainter(size.W, size.H),
		hud:     ui.NewHUD(set),
		logger:  bslogger.NewLogger("Game", bslogger.Normal, nil),
	}
	if !showHUD {
		g.hud.Toggle()
	}
	return g
}

// Update decodes input into renderer commands.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cx, cy := ebiten.CursorPosition()
		g.zoom(cx, cy, zoomInFactor)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		cx, cy := ebiten.CursorPosition()
		g.zoom(cx, cy, zoomOutFactor)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.set.Pan(-panStep, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.set.Pan(panStep, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.set.Pan(0, -panStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.set.Pan(0, panStep)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.set.RandomizePalette()
		g.logger.Debug("randomized palette")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.set.Reset()
		g.logger.Debug("reset view")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.setIterations(g.set.MaxIterations() * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.setIterations(g.set.MaxIterations() / 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.screenshot()
	}
	return nil
}

// Draw renders the current frame and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	if err := g.painter.Blit(screen, g.set); err != nil {
		g.logger.Error(err.Error())
		return
	}
	g.hud.Draw(screen)
}

// Layout adopts the window size, resizing the renderer when it changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	size := g.set.Size()
	if outsideWidth != size.W || outsideHeight != size.H {
		if err := g.set.Resize(outsideWidth, outsideHeight); err != nil {
			g.logger.Error(err.Error())
		} else {
			g.painter.Resize(outsideWidth, outsideHeight)
			g.logger.Debug(fmt.Sprintf("resized to %dx%d", outsideWidth, outsideHeight))
		}
	}
	return outsideWidth, outsideHeight
}

func (g *Game) zoom(cx, cy int, factor float64) {
	if err := g.set.Zoom(float64(cx), float64(cy), factor); err != nil {
		g.logger.Error(err.Error())
		return
	}
	info := g.set.Info()
	g.logger.Debug(fmt.Sprintf("zoom x%g, center (%.9f, %.9f)", factor, info.CenterX, info.CenterY))
}

func (g *Game) setIterations(n int) {
	if err := g.set.SetMaxIterations(n); err != nil {
		g.logger.Error(err.Error())
		return
	}
	g.logger.Debug(fmt.Sprintf("iteration cap now %d", n))
}

// screenshot writes the current frame to a timestamped PNG in the working
// directory.
func (g *Game) screenshot() {
	size := g.set.Size()
	frame := make([]byte, size.W*size.H*4)
	if err := g.set.Draw(frame); err != nil {
		g.logger.Error(err.Error())
		return
	}

	img := &image.RGBA{Pix: frame, Stride: size.W * 4, Rect: image.Rect(0, 0, size.W, size.H)}
	name := fmt.Sprintf("mandelview_%s.png", time.Now().Format("20060102_150405"))
	f, err := os.Create(name)
	if err != nil {
		g.logger.Error(err.Error())
		return
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		g.logger.Error(err.Error())
		return
	}
	g.logger.Info("saved " + name)
}
