// Package patterns holds the named starting positions the simulator ships with.
package patterns

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/bounded-life/model"
)

// ErrUnknownPattern is returned by Lookup for a name that is not registered
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a seed list together with the smallest grid it is meant for
type Pattern struct {
	Name   string
	Width  int
	Height int
	Cells  []model.Point
}

// NewGrid builds a grid sized for the pattern
func (p Pattern) NewGrid(opts ...model.Option) (*model.Grid, error) {
	g, err := model.NewGrid(p.Width, p.Height, p.Cells, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "[Pattern.NewGrid] pattern %q", p.Name)
	}
	return g, nil
}

// Centered returns the pattern's cells shifted to the middle of a width x height grid
func (p Pattern) Centered(width, height int) []model.Point {
	dx, dy := (width-p.Width)/2, (height-p.Height)/2
	out := make([]model.Point, len(p.Cells))
	for i, c := range p.Cells {
		out[i] = model.Point{X: c.X + dx, Y: c.Y + dy}
	}
	return out
}

var registry = map[string]Pattern{}

func register(p Pattern) {
	registry[p.Name] = p
}

// Lookup returns the pattern registered under name
func Lookup(name string) (Pattern, error) {
	p, ok := registry[name]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "[Lookup] %q", name)
	}
	return p, nil
}

// Names returns every registered pattern name in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func points(coords ...[2]int) []model.Point {
	out := make([]model.Point, len(coords))
	for i, c := range coords {
		out[i] = model.Point{X: c[0], Y: c[1]}
	}
	return out
}

func init() {
	register(Pattern{
		Name:   "blinker",
		Width:  5,
		Height: 5,
		Cells:  points([2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2}),
	})
	register(Pattern{
		Name:   "block",
		Width:  4,
		Height: 4,
		Cells:  points([2]int{1, 1}, [2]int{2, 1}, [2]int{1, 2}, [2]int{2, 2}),
	})
	register(Pattern{
		Name:   "beacon",
		Width:  6,
		Height: 6,
		Cells: points(
			[2]int{1, 1}, [2]int{2, 1}, [2]int{1, 2},
			[2]int{3, 4}, [2]int{4, 3}, [2]int{4, 4},
		),
	})
	register(Pattern{
		Name:   "glider",
		Width:  8,
		Height: 8,
		Cells:  points([2]int{1, 0}, [2]int{2, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2}),
	})
	register(Pattern{
		Name:   "pulsar",
		Width:  17,
		Height: 17,
		Cells:  pulsarCells(),
	})
}

// pulsarCells mirrors one quadrant of the pulsar around the grid center
func pulsarCells() []model.Point {
	var out []model.Point
	for _, a := range []int{4, 5, 6, 10, 11, 12} {
		for _, b := range []int{2, 7, 9, 14} {
			out = append(out, model.Point{X: a, Y: b}, model.Point{X: b, Y: a})
		}
	}
	return out
}
