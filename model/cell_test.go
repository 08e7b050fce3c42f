package model

import "testing"

func TestNeighborCounts(t *testing.T) {
	g := mustGrid(t, 5, 4, nil)

	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 3},
		{4, 0, 3},
		{0, 3, 3},
		{4, 3, 3},
		{2, 0, 5},
		{0, 2, 5},
		{4, 1, 5},
		{3, 3, 5},
		{1, 1, 8},
		{3, 2, 8},
	}

	for _, tt := range tests {
		got := len(g.Cell(tt.x, tt.y).Neighbors())
		if got != tt.want {
			t.Fatalf("cell (%d,%d) has %d neighbors, expected %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestNeighborsAreSymmetric(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 5}, {5, 1}, {2, 2}, {3, 3}, {6, 4}}

	for _, size := range sizes {
		g := mustGrid(t, size[0], size[1], nil)
		for y := range g.GetHeight() {
			for x := range g.GetWidth() {
				a := g.Cell(x, y)
				for _, b := range a.Neighbors() {
					if !contains(b.Neighbors(), a) {
						t.Fatalf("%dx%d: (%d,%d) lists (%d,%d) but not the reverse", size[0], size[1], x, y, b.X(), b.Y())
					}
					dx, dy := b.X()-a.X(), b.Y()-a.Y()
					if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
						t.Fatalf("%dx%d: (%d,%d) is not a Moore neighbor of (%d,%d)", size[0], size[1], b.X(), b.Y(), x, y)
					}
				}
			}
		}
	}
}

func TestSingleCellHasNoNeighbors(t *testing.T) {
	g := mustGrid(t, 1, 1, []Point{{0, 0}})
	g.Seed()
	c := g.Cell(0, 0)
	if n := len(c.Neighbors()); n != 0 {
		t.Fatalf("1x1 grid cell has %d neighbors", n)
	}
	if n := c.CountLiveNeighbors(); n != 0 {
		t.Fatalf("CountLiveNeighbors() = %d, expected 0", n)
	}
}

func TestCountLiveNeighborsReadsCurrentState(t *testing.T) {
	g := mustGrid(t, 3, 3, []Point{{0, 0}, {1, 0}, {2, 2}})
	center := g.Cell(1, 1)

	if n := center.CountLiveNeighbors(); n != 0 {
		t.Fatalf("before Seed: CountLiveNeighbors() = %d, expected 0", n)
	}
	g.Seed()
	if n := center.CountLiveNeighbors(); n != 3 {
		t.Fatalf("after Seed: CountLiveNeighbors() = %d, expected 3", n)
	}
	if n := g.Cell(0, 0).CountLiveNeighbors(); n != 1 {
		t.Fatalf("corner CountLiveNeighbors() = %d, expected 1", n)
	}
}

func TestNeighborsReturnsCopy(t *testing.T) {
	g := mustGrid(t, 3, 3, nil)
	c := g.Cell(1, 1)
	ns := c.Neighbors()
	ns[0] = nil
	for _, n := range c.Neighbors() {
		if n == nil {
			t.Fatalf("mutating the returned slice changed the cell's neighbors")
		}
	}
}

func mustGrid(t *testing.T, width, height int, seed []Point, opts ...Option) *Grid {
	t.Helper()
	g, err := NewGrid(width, height, seed, opts...)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", width, height, err)
	}
	return g
}

func contains(cells []*Cell, c *Cell) bool {
	for _, n := range cells {
		if n == c {
			return true
		}
	}
	return false
}
