// Package driver runs a grid on a fixed cadence: render the current
// generation, decide whether to stop, advance, wait for the next tick.
package driver

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/bounded-life/model"
	"github.com/sheikhrachel/bounded-life/patterns"
	"github.com/sheikhrachel/bounded-life/render"
	"github.com/sheikhrachel/bounded-life/utils"
)

// StopReason explains why Run returned
type StopReason string

const (
	ReasonMaxGenerations StopReason = "maximum generations reached"
	ReasonExtinct        StopReason = "extinction"
	ReasonStagnant       StopReason = "stagnation detected"
	ReasonInterrupted    StopReason = "interrupted"
	ReasonQuit           StopReason = "quit"
)

// Renderer displays one generation together with a status line
type Renderer interface {
	Display(rows [][]model.Symbol, status string) error
}

// quitter is implemented by renderers that read keyboard input
type quitter interface {
	WaitQuit(ctx context.Context) error
}

// Result summarises a finished run
type Result struct {
	Generations int
	Reason      StopReason
	Stats       *utils.Stats
}

// Game owns a grid and drives it with a renderer
type Game struct {
	grid     *model.Grid
	renderer Renderer
	config   utils.Config
	stats    *utils.Stats

	stagnantCount int
	reason        StopReason
}

// New returns a Game for an unseeded grid
func New(grid *model.Grid, renderer Renderer, config utils.Config) *Game {
	return &Game{
		grid:     grid,
		renderer: renderer,
		config:   config,
		stats:    utils.NewStats(),
	}
}

// NewGrid builds the grid described by config: explicit cells when given,
// otherwise the named pattern centered on a grid of the configured size.
func NewGrid(config utils.Config) (*model.Grid, error) {
	opts := []model.Option{model.WithWorkers(config.Workers)}
	if config.UseBoundedGrid {
		opts = append(opts, model.WithBoundedScan())
	}

	if len(config.Cells) > 0 {
		seed := make([]model.Point, len(config.Cells))
		for i, c := range config.Cells {
			seed[i] = model.Point{X: c[0], Y: c[1]}
		}
		g, err := model.NewGrid(config.Width, config.Height, seed, opts...)
		return g, errors.Wrap(err, "[NewGrid] explicit cells")
	}

	p, err := patterns.Lookup(config.Pattern)
	if err != nil {
		return nil, errors.Wrap(err, "[NewGrid]")
	}
	width, height := config.Width, config.Height
	if width == 0 {
		width = p.Width
	}
	if height == 0 {
		height = p.Height
	}
	g, err := model.NewGrid(width, height, p.Centered(width, height), opts...)
	return g, errors.Wrapf(err, "[NewGrid] pattern %q", p.Name)
}

// Run seeds the grid and drives it until a stop condition is met, the
// renderer reports a quit, or ctx is done.
func (g *Game) Run(ctx context.Context) (Result, error) {
	g.grid.Seed()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer cancel()
		return g.loop(ctx)
	})
	if q, ok := g.renderer.(quitter); ok {
		eg.Go(func() error {
			return q.WaitQuit(ctx)
		})
	}

	err := eg.Wait()
	if errors.Is(err, render.ErrQuit) {
		g.reason = ReasonQuit
		err = nil
	}

	return Result{
		Generations: g.grid.Generation(),
		Reason:      g.reason,
		Stats:       g.stats,
	}, err
}

func (g *Game) loop(ctx context.Context) error {
	ticker := time.NewTicker(g.config.FrameRate)
	defer ticker.Stop()

	lastFrameTime := time.Now()
	for {
		frameStart := time.Now()
		livingCells, stagnant := g.updateGameState(frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		if err := g.renderer.Display(g.grid.Render(), g.status(livingCells, stagnant)); err != nil {
			return errors.Wrapf(err, "[Game.loop] display failed at generation %d", g.grid.Generation())
		}

		if reason := g.checkStopConditions(livingCells); reason != "" {
			g.reason = reason
			return nil
		}

		g.grid.Advance()
		t := g.grid.LastTransition()
		g.stats.RecordTransitions(t.Births(), t.Deaths())

		select {
		case <-ctx.Done():
			g.reason = ReasonInterrupted
			return nil
		case <-ticker.C:
		}
	}
}

// updateGameState refreshes stats and stagnation tracking for the current generation
func (g *Game) updateGameState(frameDuration time.Duration) (int, bool) {
	livingCells := g.grid.CountLivingCells()
	g.stats.Update(g.grid.Generation(), livingCells, frameDuration)

	stagnant := g.grid.IsStagnant()
	g.grid.UpdateHistory()
	if stagnant {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}
	return livingCells, stagnant
}

func (g *Game) status(livingCells int, stagnant bool) string {
	density := float64(livingCells) / float64(g.grid.GetWidth()*g.grid.GetHeight()) * 100

	state := "Active"
	if stagnant {
		state = "Stagnant"
	}
	if livingCells == 0 {
		state = "Extinct"
	}

	boundingInfo := ""
	if g.config.UseBoundedGrid {
		boundingInfo = fmt.Sprintf(" | Bounding box: %d cells", g.grid.GetBoundingBoxSize())
	}

	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Births: %d | Deaths: %d | Status: %s%s",
		g.grid.Generation(), livingCells, density, g.stats.TotalBirths, g.stats.TotalDeaths, state, boundingInfo)
}

// checkStopConditions returns a non-empty reason when the run should end
func (g *Game) checkStopConditions(livingCells int) StopReason {
	if g.config.MaxGenerations > 0 && g.grid.Generation() >= g.config.MaxGenerations {
		return ReasonMaxGenerations
	}
	if !g.config.StopOnStagnation {
		return ""
	}
	if livingCells == 0 {
		return ReasonExtinct
	}
	if g.stagnantCount >= g.config.StagnationThreshold {
		return ReasonStagnant
	}
	return ""
}
