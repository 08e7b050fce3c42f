package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/bounded-life/driver"
	"github.com/sheikhrachel/bounded-life/model"
	"github.com/sheikhrachel/bounded-life/patterns"
	"github.com/sheikhrachel/bounded-life/render"
	"github.com/sheikhrachel/bounded-life/utils"
)

// cliOptions are flags that do not belong in the config file
type cliOptions struct {
	configPath string
	list       bool
}

func newFlagSet(config *utils.Config, opts *cliOptions) *flag.FlagSet {
	fs := flag.NewFlagSet("bounded-life", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", opts.configPath, "JSON config file; flags override its values")
	fs.BoolVar(&opts.list, "list", opts.list, "list the available patterns and exit")
	config.Bind(fs)
	return fs
}

// parseFlags builds the config from defaults, an optional config file and
// finally the command line flags
func parseFlags(args []string) (utils.Config, cliOptions, error) {
	var opts cliOptions
	config := utils.DefaultConfig()
	if err := newFlagSet(&config, &opts).Parse(args); err != nil {
		return config, opts, errors.Wrap(err, "[parseFlags]")
	}

	if opts.configPath != "" {
		loaded, err := utils.LoadConfig(opts.configPath)
		if err != nil {
			return config, opts, err
		}
		config = loaded
		// parse again so flags win over the file
		if err := newFlagSet(&config, &opts).Parse(args); err != nil {
			return config, opts, errors.Wrap(err, "[parseFlags]")
		}
	}

	return config, opts, config.Validate()
}

// newRenderer returns the configured renderer and a function releasing it
func newRenderer(config utils.Config, w io.Writer) (driver.Renderer, func(), error) {
	if config.Renderer == utils.RendererTcell {
		screen, err := render.NewScreen()
		if err != nil {
			return nil, nil, err
		}
		return screen, screen.Close, nil
	}
	return render.NewText(w, true), func() {}, nil
}

// listPatterns prints every named pattern with its grid size
func listPatterns(w io.Writer) {
	for _, name := range patterns.Names() {
		p, _ := patterns.Lookup(name)
		fmt.Fprintf(w, "%-8s %dx%d, %d cells\n", p.Name, p.Width, p.Height, len(p.Cells))
	}
}

// displayGameInfo shows the initial game information
func displayGameInfo(w io.Writer, config utils.Config, grid *model.Grid) {
	fmt.Fprintf(w, "Features: Workers: %d, Bounded: %v, Renderer: %s\n",
		config.Workers, config.UseBoundedGrid, config.Renderer)
	fmt.Fprintf(w, "Grid: %dx%d | Seed cells: %d\n",
		grid.GetWidth(), grid.GetHeight(), len(grid.SeedPoints()))
	fmt.Fprintln(w, "Press Ctrl+C to exit gracefully")
}

// displaySummary prints the final stats of a run
func displaySummary(w io.Writer, result driver.Result) {
	fmt.Fprintf(w, "\nStopped: %s\n", result.Reason)
	fmt.Fprintf(w, "Final stats: %d generations in %.1f seconds\n",
		result.Generations, result.Stats.Runtime().Seconds())
	fmt.Fprintf(w, "Average: %.1f gen/sec, %.1f avg population, %d births, %d deaths\n",
		result.Stats.GenerationsPerSecond, result.Stats.AveragePopulation,
		result.Stats.TotalBirths, result.Stats.TotalDeaths)
}
