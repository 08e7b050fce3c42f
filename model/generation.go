package model

import (
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/bounded-life/rules"
)

// Transitions tallies the rule outcomes of a single generation
type Transitions struct {
	Underpopulation int
	Overcrowding    int
	Survival        int
	Reproduction    int
}

// Births returns the number of cells that came alive
func (t Transitions) Births() int { return t.Reproduction }

// Deaths returns the number of cells that died
func (t Transitions) Deaths() int { return t.Underpopulation + t.Overcrowding }

func (t *Transitions) add(tr rules.Transition) {
	switch tr {
	case rules.Underpopulation:
		t.Underpopulation++
	case rules.Overcrowding:
		t.Overcrowding++
	case rules.Survival:
		t.Survival++
	case rules.Reproduction:
		t.Reproduction++
	}
}

// region is an inclusive rectangle of cells evaluated by Advance
type region struct {
	minX, maxX, minY, maxY int
}

// Advance moves the grid forward one generation. Every cell's transition is
// decided from the pre-transition state before any cell is updated.
func (g *Grid) Advance() {
	r, ok := g.scanRegion()
	g.generation++
	g.last = Transitions{}
	if !ok {
		return
	}

	g.classify(r)
	g.commit(r)
}

// LastTransition returns the rule tallies of the most recent Advance
func (g *Grid) LastTransition() Transitions {
	return g.last
}

// scanRegion returns the cells Advance has to look at. With a bounded scan
// an empty grid yields no region at all.
func (g *Grid) scanRegion() (region, bool) {
	full := region{minX: 0, maxX: g.width - 1, minY: 0, maxY: g.height - 1}
	if !g.bounded {
		return full, true
	}

	if !g.activeBounds.valid {
		g.calculateActiveBounds()
	}
	if !g.activeBounds.valid {
		return region{}, false
	}

	// Process only the active region + 1 margin
	return region{
		minX: max(0, g.activeBounds.minX-1),
		maxX: min(g.width-1, g.activeBounds.maxX+1),
		minY: max(0, g.activeBounds.minY-1),
		maxY: min(g.height-1, g.activeBounds.maxY+1),
	}, true
}

// classify fills g.next for every cell in r, sharding rows across workers
func (g *Grid) classify(r region) {
	rows := r.maxY - r.minY + 1
	numWorkers := min(g.workers, rows)
	if numWorkers <= 1 {
		g.classifyRows(r, r.minY, r.maxY+1)
		return
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = r.minY + i*rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, r.maxY+1)
		)
		if startRow > r.maxY {
			break
		}

		eg.Go(func() error {
			g.classifyRows(r, startRow, endRow)
			return nil
		})
	}

	// workers only read cell state and write disjoint parts of g.next
	_ = eg.Wait()
}

func (g *Grid) classifyRows(r region, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := r.minX; x <= r.maxX; x++ {
			idx := g.index(x, y)
			c := &g.cells[idx]
			g.next[idx] = rules.Classify(c.CountLiveNeighbors(), c.alive)
		}
	}
}

// commit applies g.next to the cells in r and refreshes the active bounds
func (g *Grid) commit(r region) {
	g.activeBounds.valid = false
	for y := r.minY; y <= r.maxY; y++ {
		for x := r.minX; x <= r.maxX; x++ {
			idx := g.index(x, y)
			tr := g.next[idx]
			g.last.add(tr)
			g.cells[idx].alive = tr.Alive()
			if tr.Alive() {
				g.extendActiveBounds(x, y)
			}
		}
	}
}

// extendActiveBounds grows the active bounding box to include (x, y)
func (g *Grid) extendActiveBounds(x, y int) {
	if !g.activeBounds.valid {
		g.activeBounds.minX = x
		g.activeBounds.maxX = x
		g.activeBounds.minY = y
		g.activeBounds.maxY = y
		g.activeBounds.valid = true
		return
	}
	g.activeBounds.minX = min(g.activeBounds.minX, x)
	g.activeBounds.maxX = max(g.activeBounds.maxX, x)
	g.activeBounds.minY = min(g.activeBounds.minY, y)
	g.activeBounds.maxY = max(g.activeBounds.maxY, y)
}

// calculateActiveBounds calculates the bounding box of living cells
func (g *Grid) calculateActiveBounds() {
	g.activeBounds.valid = false
	for i := range g.cells {
		if g.cells[i].alive {
			g.extendActiveBounds(g.cells[i].x, g.cells[i].y)
		}
	}
}

// GetBoundingBoxSize returns the size of the active region
func (g *Grid) GetBoundingBoxSize() int {
	if !g.activeBounds.valid {
		g.calculateActiveBounds()
	}
	if !g.activeBounds.valid {
		return 0
	}
	return (g.activeBounds.maxX - g.activeBounds.minX + 1) *
		(g.activeBounds.maxY - g.activeBounds.minY + 1)
}
