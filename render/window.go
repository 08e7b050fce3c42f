//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sheikhrachel/bounded-life/model"
)

// Window adapts a Grid to the ebiten.Game interface
type Window struct {
	grid  *model.Grid
	img   *ebiten.Image
	buf   []byte
	scale int

	onColor  color.Color
	offColor color.Color

	paused         bool
	tickOnce       bool
	maxGenerations int
}

// NewWindow constructs a Window for a seeded grid. The grid stops advancing
// after maxGenerations when it is positive.
func NewWindow(g *model.Grid, scale, maxGenerations int) *Window {
	w, h := g.GetWidth(), g.GetHeight()
	return &Window{
		grid:     g,
		img:      ebiten.NewImage(w, h),
		buf:      make([]byte, 4*w*h),
		scale:    scale,
		onColor:  color.White,
		offColor: color.Black,

		maxGenerations: maxGenerations,
	}
}

// Update handles input and advances the grid once per tick
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.paused = !w.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		w.tickOnce = true
	}

	if w.maxGenerations > 0 && w.grid.Generation() >= w.maxGenerations {
		return nil
	}
	if !w.paused || w.tickOnce {
		w.grid.Advance()
		w.tickOnce = false
	}
	return nil
}

// Draw renders the current generation
func (w *Window) Draw(screen *ebiten.Image) {
	fillSymbolsRGBA(w.buf, w.grid.Render(), w.onColor, w.offColor)
	w.img.WritePixels(w.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w.scale), float64(w.scale))
	screen.DrawImage(w.img, op)
}

// Layout returns the logical screen size
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.grid.GetWidth() * w.scale, w.grid.GetHeight() * w.scale
}
