//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sheikhrachel/bounded-life/driver"
	"github.com/sheikhrachel/bounded-life/render"
	"github.com/sheikhrachel/bounded-life/utils"
)

func main() {
	cfg := utils.DefaultConfig()
	scale := flag.Int("scale", 12, "pixel scale multiplier")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	grid, err := driver.NewGrid(cfg)
	if err != nil {
		log.Fatal(err)
	}
	grid.Seed()

	window := render.NewWindow(grid, *scale, cfg.MaxGenerations)

	ebiten.SetWindowTitle("bounded-life — " + cfg.Pattern)
	ebiten.SetTPS(max(1, int(time.Second/cfg.FrameRate)))
	ebiten.SetWindowSize(grid.GetWidth()*(*scale), grid.GetHeight()*(*scale))

	if err := ebiten.RunGame(window); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
