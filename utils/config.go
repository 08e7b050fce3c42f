package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	RendererText  = "text"
	RendererTcell = "tcell"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	// Width and Height of zero use the pattern's own size
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	MaxGenerations      int           `json:"max_generations"`
	Pattern             string        `json:"pattern"`
	Cells               [][2]int      `json:"cells"` // overrides Pattern when set
	Workers             int           `json:"workers"`
	UseBoundedGrid      bool          `json:"use_bounded_grid"`
	Renderer            string        `json:"renderer"`
	StopOnStagnation    bool          `json:"stop_on_stagnation"`
	StagnationThreshold int           `json:"stagnation_threshold"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		FrameRate:           500 * time.Millisecond,
		MaxGenerations:      0, // run until interrupted
		Pattern:             "blinker",
		Workers:             1,
		Renderer:            RendererText,
		StagnationThreshold: 5,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet so flags override
// whatever was loaded from file.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width (0 uses the pattern width)")
	fs.IntVar(&c.Height, "height", c.Height, "grid height (0 uses the pattern height)")
	fs.DurationVar(&c.FrameRate, "frame-rate", c.FrameRate, "delay between generations")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations (0 runs forever)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "named starting pattern")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used to count neighbors")
	fs.BoolVar(&c.UseBoundedGrid, "bounded", c.UseBoundedGrid, "only evaluate the region around living cells")
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "output: text or tcell")
	fs.BoolVar(&c.StopOnStagnation, "stop-on-stagnation", c.StopOnStagnation, "stop once the grid stops changing")
	fs.IntVar(&c.StagnationThreshold, "stagnation-threshold", c.StagnationThreshold, "stagnant generations before stopping")
}

// Validate checks the values that cannot be corrected at runtime
func (c Config) Validate() error {
	switch {
	case c.Width < 0 || c.Height < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative grid size %dx%d", c.Width, c.Height)
	case len(c.Cells) > 0 && (c.Width == 0 || c.Height == 0):
		return errors.Wrap(ErrInvalidConfig, "[Validate] explicit cells need width and height")
	case c.FrameRate <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame rate must be positive, got %v", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative max generations %d", c.MaxGenerations)
	case c.Workers < 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] workers must be at least 1, got %d", c.Workers)
	case c.StopOnStagnation && c.StagnationThreshold < 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] stagnation threshold must be at least 1, got %d", c.StagnationThreshold)
	case c.Renderer != RendererText && c.Renderer != RendererTcell:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown renderer %q", c.Renderer)
	}
	return nil
}
