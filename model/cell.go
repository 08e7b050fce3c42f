package model

import "slices"

// neighborOffsets lists the Moore neighborhood deltas in row-major order
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Cell is a single grid position. Its neighbor list is fixed when the owning
// Grid is built; only the alive flag changes afterwards.
type Cell struct {
	x, y      int
	alive     bool
	neighbors []*Cell
}

// X returns the column of the cell
func (c *Cell) X() int { return c.x }

// Y returns the row of the cell
func (c *Cell) Y() int { return c.y }

// Alive reports whether the cell is currently alive
func (c *Cell) Alive() bool { return c.alive }

// Neighbors returns a copy of the cell's neighbor references
func (c *Cell) Neighbors() []*Cell {
	return slices.Clone(c.neighbors)
}

// CountLiveNeighbors counts the neighbors alive at the time of the call
func (c *Cell) CountLiveNeighbors() (count int) {
	for _, n := range c.neighbors {
		if n.alive {
			count++
		}
	}
	return
}
