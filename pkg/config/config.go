// Package config holds the startup settings shared by the commands and the
// checks that must pass before any render loop begins.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/willbeason/zoombrot/pkg/palette"
	"github.com/willbeason/zoombrot/pkg/viewport"
)

const (
	// DefaultSize matches the 240x240 panel the explorer was built for.
	DefaultSize = 240

	// DefaultIterations: low values such as 8 are less intricate but show the
	// pattern better. Above 20-30 makes little difference but draws slower.
	DefaultIterations = 15

	DefaultSampleInterval = 100 * time.Millisecond
	DefaultSettleDelay    = 500 * time.Millisecond
)

var (
	ErrOddWidth      = errors.New("width must be even")
	ErrBadSize       = errors.New("width and height must be positive")
	ErrBadIterations = errors.New("iterations must be positive")
	ErrBadView       = errors.New("view bounds must have end > start on both axes")
	ErrBadInterval   = errors.New("intervals must not be negative")
)

type Config struct {
	Width, Height int
	Iterations    int

	View viewport.Viewport

	// PalettePath, when set, replaces the default palette at Load.
	PalettePath string
	Palette     palette.Palette

	Background color.RGBA
	Highlight  color.RGBA

	SampleInterval time.Duration
	SettleDelay    time.Duration

	FlushEvery    int
	WorkerTimeout time.Duration

	Log LogConfig
}

// Default returns the settings of the original handheld explorer.
func Default() Config {
	return Config{
		Width:          DefaultSize,
		Height:         DefaultSize,
		Iterations:     DefaultIterations,
		View:           viewport.Default(DefaultSize, DefaultSize),
		Palette:        palette.Default(),
		Background:     color.RGBA{A: 255},
		Highlight:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
		SampleInterval: DefaultSampleInterval,
		SettleDelay:    DefaultSettleDelay,
		FlushEvery:     2,
		Log:            DefaultLogConfig(),
	}
}

// BindFlags registers the shared flags on fs, writing into c.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "surface width in pixels, must be even")
	fs.IntVar(&c.Height, "height", c.Height, "surface height in pixels")
	fs.IntVar(&c.Iterations, "iterations", c.Iterations, "base iteration budget per pixel")
	fs.Float64Var(&c.View.RealStart, "real-start", c.View.RealStart, "left edge of the view")
	fs.Float64Var(&c.View.RealEnd, "real-end", c.View.RealEnd, "right edge of the view")
	fs.Float64Var(&c.View.ImagStart, "imag-start", c.View.ImagStart, "top edge of the view")
	fs.Float64Var(&c.View.ImagEnd, "imag-end", c.View.ImagEnd, "bottom edge of the view")
	fs.StringVar(&c.PalettePath, "palette", c.PalettePath, "JSON file of [r,g,b] triples; entry 0 is never drawn")
	fs.IntVar(&c.FlushEvery, "flush-every", c.FlushEvery, "column pairs drawn between display flushes")
	fs.DurationVar(&c.WorkerTimeout, "worker-timeout", c.WorkerTimeout, "give up on a stalled render worker after this long, 0 waits forever")
	c.Log.BindFlags(fs)
}

// Load reads the palette file, if any, and validates the result.
func (c *Config) Load() error {
	if c.PalettePath != "" {
		f, err := os.Open(c.PalettePath)
		if err != nil {
			return fmt.Errorf("opening palette: %w", err)
		}
		defer f.Close()

		p, err := palette.Load(f)
		if err != nil {
			return fmt.Errorf("loading palette %q: %w", c.PalettePath, err)
		}
		c.Palette = p
	}

	c.View.Width, c.View.Height = c.Width, c.Height
	return c.Validate()
}

// Validate rejects settings the render loop cannot run with. These are
// startup faults; nothing downstream tolerates them.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: %dx%d", ErrBadSize, c.Width, c.Height))
	} else if c.Width%2 != 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrOddWidth, c.Width))
	}
	if c.Iterations <= 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrBadIterations, c.Iterations))
	}
	if c.Palette.Len() < palette.MinColors {
		errs = append(errs, fmt.Errorf("%w: got %d", palette.ErrTooFewColors, c.Palette.Len()))
	}
	if !(c.View.RealEnd > c.View.RealStart && c.View.ImagEnd > c.View.ImagStart) {
		errs = append(errs, fmt.Errorf("%w: %v", ErrBadView, c.View))
	}
	if c.SampleInterval < 0 || c.SettleDelay < 0 || c.WorkerTimeout < 0 {
		errs = append(errs, ErrBadInterval)
	}
	return errors.Join(errs...)
}
