package model

import (
	"crypto/md5"
	"fmt"
)

// historySize is how many recent states are kept for cycle detection
const historySize = 5

// GetGridHash returns an efficient MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i := range g.cells {
		if g.cells[i].alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds current state to history and maintains size
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.GetGridHash())
	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
}

// IsStagnant reports whether the current state repeats one of the last three
// recorded states, which covers still lifes and period 2 and 3 oscillators.
// Call it before UpdateHistory records the current state.
func (g *Grid) IsStagnant() bool {
	if len(g.history) == 0 {
		return false
	}

	currentHash := g.GetGridHash()
	for i := len(g.history) - 1; i >= max(0, len(g.history)-3); i-- {
		if g.history[i] == currentHash {
			return true
		}
	}
	return false
}

// ClearHistory forgets every recorded state
func (g *Grid) ClearHistory() {
	g.history = nil
}
