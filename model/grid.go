package model

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/bounded-life/rules"
)

// Point is a cell coordinate on the grid
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Symbol is the rendered state of a single cell
type Symbol uint8

const (
	Dead Symbol = iota
	Alive
)

// Option configures optional Grid behaviour
type Option func(*Grid)

// WithWorkers splits the neighbor counting pass of Advance across n goroutines
func WithWorkers(n int) Option {
	return func(g *Grid) {
		if n > 0 {
			g.workers = n
		}
	}
}

// WithBoundedScan limits Advance to the bounding box of living cells plus a one cell margin
func WithBoundedScan() Option {
	return func(g *Grid) {
		g.bounded = true
	}
}

// Grid represents a finite game board made of linked cells
type Grid struct {
	width  int
	height int
	cells  []Cell
	seed   []Point
	seeded bool

	// next holds the pending transition of every cell during Advance
	next       []rules.Transition
	workers    int
	generation int
	last       Transitions
	history    []string // Store recent grid states for cycle detection

	// Optional bounded grid optimization
	bounded      bool
	activeBounds struct {
		minX, maxX, minY, maxY int
		valid                  bool
	}
}

// NewGrid creates a grid with the specified dimensions and links every cell
// to its Moore neighbors. Seed coordinates are validated but not applied
// until Seed is called.
func NewGrid(width, height int, seed []Point, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] got %dx%d", width, height)
	}
	for _, p := range seed {
		if !inBounds(p.X, p.Y, width, height) {
			return nil, errors.Wrapf(ErrOutOfBounds, "[NewGrid] seed %v outside %dx%d grid", p, width, height)
		}
	}

	g := &Grid{
		width:   width,
		height:  height,
		cells:   make([]Cell, width*height),
		seed:    slices.Clone(seed),
		next:    make([]rules.Transition, width*height),
		workers: 1,
	}
	for _, opt := range opts {
		opt(g)
	}

	for y := range height {
		for x := range width {
			g.cells[g.index(x, y)] = Cell{x: x, y: y}
		}
	}
	g.linkNeighbors()

	return g, nil
}

// linkNeighbors builds the adjacency of every cell from the eight offsets
func (g *Grid) linkNeighbors() {
	for i := range g.cells {
		c := &g.cells[i]
		c.neighbors = make([]*Cell, 0, len(neighborOffsets))
		for _, d := range neighborOffsets {
			nx, ny := c.x+d[0], c.y+d[1]
			if inBounds(nx, ny, g.width, g.height) {
				c.neighbors = append(c.neighbors, &g.cells[g.index(nx, ny)])
			}
		}
	}
}

func inBounds(x, y, width, height int) bool {
	return x >= 0 && x < width && y >= 0 && y < height
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Seed marks every seed coordinate alive. Only the first call has an effect.
func (g *Grid) Seed() {
	if g.seeded {
		return
	}
	for _, p := range g.seed {
		g.cells[g.index(p.X, p.Y)].alive = true
	}
	g.seeded = true
	g.activeBounds.valid = false
}

// Seeded reports whether Seed has been applied
func (g *Grid) Seeded() bool {
	return g.seeded
}

// SeedPoints returns a copy of the seed coordinates
func (g *Grid) SeedPoints() []Point {
	return slices.Clone(g.seed)
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Generation returns how many times Advance has run
func (g *Grid) Generation() int {
	return g.generation
}

// Get returns the state of a cell, false outside the grid
func (g *Grid) Get(x, y int) bool {
	if !inBounds(x, y, g.width, g.height) {
		return false
	}
	return g.cells[g.index(x, y)].alive
}

// Cell returns the cell at (x, y) or nil outside the grid
func (g *Grid) Cell(x, y int) *Cell {
	if !inBounds(x, y, g.width, g.height) {
		return nil
	}
	return &g.cells[g.index(x, y)]
}

// Render returns the current state as height rows of width symbols
func (g *Grid) Render() [][]Symbol {
	rows := make([][]Symbol, g.height)
	for y := range g.height {
		row := make([]Symbol, g.width)
		for x := range g.width {
			if g.cells[g.index(x, y)].alive {
				row[x] = Alive
			}
		}
		rows[y] = row
	}
	return rows
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for i := range g.cells {
		if g.cells[i].alive {
			count++
		}
	}
	return
}

// LivingCells returns the coordinates of living cells in row-major order
func (g *Grid) LivingCells() []Point {
	var out []Point
	for i := range g.cells {
		if g.cells[i].alive {
			out = append(out, Point{X: g.cells[i].x, Y: g.cells[i].y})
		}
	}
	return out
}
