//go:build ebiten

package main

import (
	"errors"
	"flag"

	"mandelview/internal/app"
	"mandelview/internal/fractal"
	"mandelview/pkg/core"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	logger := bslogger.NewLogger("mandelview", bslogger.Normal, nil)

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	rng := core.NewRNG(cfg.Seed).Source()
	set, err := fractal.NewSet(cfg.Width, cfg.Height, cfg.MaxIterations, rng)
	if err != nil {
		logger.Fatal(err.Error())
	}
	if err := set.UsePalette(cfg.Palette); err != nil {
		logger.Fatal(err.Error())
	}

	game := app.New(set, cfg.HUD)

	ebiten.SetWindowTitle("mandelview")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal(err.Error())
	}
}
