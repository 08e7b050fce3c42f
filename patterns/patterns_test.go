package patterns

import (
	"slices"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/bounded-life/model"
)

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("spaceship-9000"); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("Lookup error = %v, expected ErrUnknownPattern", err)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if !slices.IsSorted(names) {
		t.Fatalf("Names() not sorted: %v", names)
	}
	for _, want := range []string{"beacon", "blinker", "block", "glider", "pulsar"} {
		if !slices.Contains(names, want) {
			t.Fatalf("Names() = %v, missing %q", names, want)
		}
	}
}

func TestEveryPatternFitsItsGrid(t *testing.T) {
	for _, name := range Names() {
		p, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if _, err := p.NewGrid(); err != nil {
			t.Fatalf("pattern %q: %v", name, err)
		}
	}
}

func TestPulsarHasFortyEightCells(t *testing.T) {
	p, _ := Lookup("pulsar")
	seen := map[model.Point]bool{}
	for _, c := range p.Cells {
		seen[c] = true
	}
	if len(p.Cells) != 48 || len(seen) != 48 {
		t.Fatalf("pulsar has %d cells (%d distinct), expected 48", len(p.Cells), len(seen))
	}
}

func TestOscillatorPeriods(t *testing.T) {
	tests := []struct {
		name   string
		period int
	}{
		{"block", 1},
		{"blinker", 2},
		{"beacon", 2},
		{"pulsar", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Lookup(tt.name)
			if err != nil {
				t.Fatalf("Lookup: %v", err)
			}
			g, err := p.NewGrid()
			if err != nil {
				t.Fatalf("NewGrid: %v", err)
			}
			g.Seed()
			start := g.Render()

			for gen := 1; gen < tt.period; gen++ {
				g.Advance()
				if sameRows(start, g.Render()) {
					t.Fatalf("returned to the start after %d generations, expected period %d", gen, tt.period)
				}
			}
			g.Advance()
			if !sameRows(start, g.Render()) {
				t.Fatalf("did not return to the start after %d generations", tt.period)
			}
		})
	}
}

func TestCentered(t *testing.T) {
	p, _ := Lookup("blinker")
	got := p.Centered(9, 7)
	want := []model.Point{{X: 3, Y: 3}, {X: 4, Y: 3}, {X: 5, Y: 3}}
	if !slices.Equal(got, want) {
		t.Fatalf("Centered = %v, expected %v", got, want)
	}
}

func sameRows(a, b [][]model.Symbol) bool {
	return slices.EqualFunc(a, b, func(x, y []model.Symbol) bool { return slices.Equal(x, y) })
}
