// Package navigate runs the explorer: it renders the current viewport, shows
// the cursor over the result until a button is pressed, applies the button
// to the viewport and renders again.
package navigate

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/willbeason/zoombrot/pkg/config"
	"github.com/willbeason/zoombrot/pkg/cursor"
	"github.com/willbeason/zoombrot/pkg/input"
	"github.com/willbeason/zoombrot/pkg/palette"
	"github.com/willbeason/zoombrot/pkg/render"
	"github.com/willbeason/zoombrot/pkg/surface"
	"github.com/willbeason/zoombrot/pkg/viewport"
	"github.com/zeromicro/go-zero/core/logx"
	"tinygo.org/x/drivers"
)

// ZoomOutFactor is how much wider each axis becomes on ZoomOut.
const ZoomOutFactor = 2

var ErrMissingInput = errors.New("navigate: every knob and button must be connected")

// An Event is a button action. Lower values win when several buttons are
// down in the same cycle.
type Event int

const (
	None Event = iota
	ResolutionToggle
	Recenter
	ZoomIn
	ZoomOut
)

func (e Event) String() string {
	switch e {
	case None:
		return "none"
	case ResolutionToggle:
		return "resolution"
	case Recenter:
		return "recenter"
	case ZoomIn:
		return "zoom-in"
	case ZoomOut:
		return "zoom-out"
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

// State is everything a navigation event changes.
type State struct {
	Viewport       viewport.Viewport
	BaseIterations int
	HighRes        bool
}

// MaxIterations is the budget for the next pass: doubled in high resolution.
func (s State) MaxIterations() int {
	if s.HighRes {
		return s.BaseIterations * 2
	}
	return s.BaseIterations
}

//go:generate mockgen -destination=mock_input_test.go -package=navigate github.com/willbeason/zoombrot/pkg/input Analog,Button

type Inputs struct {
	CursorX, CursorY, Zoom input.Analog

	ZoomIn, ZoomOut, Recenter, Resolution input.Button
}

func (in Inputs) complete() bool {
	return in.CursorX != nil && in.CursorY != nil && in.Zoom != nil &&
		in.ZoomIn != nil && in.ZoomOut != nil && in.Recenter != nil && in.Resolution != nil
}

type Controller struct {
	state State
	in    Inputs

	surface  *surface.Surface
	palette  palette.Palette
	renderer *render.Renderer
	overlay  *cursor.Overlay

	background     color.RGBA
	sampleInterval time.Duration
	settleDelay    time.Duration

	// OnRender, if set, is called after every finished pass.
	OnRender func(State, render.Stats)

	sleep func(ctx context.Context, d time.Duration) error
}

// New validates cfg and builds the surface, renderer and overlay for it.
// sink receives every presented frame. Close releases the render worker.
func New(cfg config.Config, sink drivers.Displayer, in Inputs) (*Controller, error) {
	cfg.View.Width, cfg.View.Height = cfg.Width, cfg.Height
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !in.complete() {
		return nil, ErrMissingInput
	}

	r, err := render.New(render.Options{
		Width:         cfg.Width,
		Height:        cfg.Height,
		Palette:       cfg.Palette,
		FlushEvery:    cfg.FlushEvery,
		WorkerTimeout: cfg.WorkerTimeout,
	})
	if err != nil {
		return nil, err
	}

	s := surface.New(cfg.Width, cfg.Height, sink)

	sampleInterval := cfg.SampleInterval
	if sampleInterval <= 0 {
		sampleInterval = config.DefaultSampleInterval
	}

	return &Controller{
		state: State{
			Viewport:       cfg.View,
			BaseIterations: cfg.Iterations,
		},
		in:             in,
		surface:        s,
		palette:        cfg.Palette,
		renderer:       r,
		overlay:        cursor.New(s, cfg.Highlight),
		background:     cfg.Background,
		sampleInterval: sampleInterval,
		settleDelay:    cfg.SettleDelay,
		sleep:          sleepContext,
	}, nil
}

func (c *Controller) Close() {
	c.renderer.Close()
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Surface() *surface.Surface {
	return c.surface
}

// Run alternates between rendering and tracking the cursor until ctx is
// done. A pass in progress is always finished; ctx is only checked between
// passes and between cursor samples.
func (c *Controller) Run(ctx context.Context) error {
	for {
		if err := c.RenderPass(); err != nil {
			return err
		}

		ev, err := c.track(ctx)
		if err != nil {
			return ignoreCancel(err)
		}

		c.Apply(ev)

		// Let a held button come back up before polling again.
		if err := c.sleep(ctx, c.settleDelay); err != nil {
			return ignoreCancel(err)
		}
	}
}

// RenderPass clears the surface and paints the current viewport onto it.
func (c *Controller) RenderPass() error {
	// The saved cursor edges belong to the old image.
	c.overlay.Reset()
	c.surface.Clear(c.background)
	if err := c.surface.Present(); err != nil {
		return fmt.Errorf("clearing display: %w", err)
	}

	stats, err := c.renderer.Render(c.state.Viewport, c.state.MaxIterations(), surface.Painter{
		Surface: c.surface,
		Palette: c.palette,
	})
	if err != nil {
		return err
	}

	if c.OnRender != nil {
		c.OnRender(c.state, stats)
	}
	return nil
}

// Step runs one tracking cycle: it returns the pressed button, if any, and
// otherwise moves the cursor to follow the knobs.
func (c *Controller) Step() (Event, error) {
	if ev := c.Poll(); ev != None {
		return ev, nil
	}
	_, err := c.overlay.Track(c.in.CursorX.ReadNormalized(), c.in.CursorY.ReadNormalized(), c.in.Zoom.ReadNormalized())
	return None, err
}

// Poll returns the highest priority pressed button. Buttons after the first
// pressed one are not read.
func (c *Controller) Poll() Event {
	switch {
	case c.in.Resolution.IsPressed():
		return ResolutionToggle
	case c.in.Recenter.IsPressed():
		return Recenter
	case c.in.ZoomIn.IsPressed():
		return ZoomIn
	case c.in.ZoomOut.IsPressed():
		return ZoomOut
	}
	return None
}

// Apply changes the state for ev. The caller renders afterwards.
func (c *Controller) Apply(ev Event) {
	before := c.state

	switch ev {
	case None:
		return
	case ResolutionToggle:
		c.state.HighRes = !c.state.HighRes
	case Recenter:
		cx, cy := c.CursorRegion().Center()
		c.state.Viewport = c.state.Viewport.RecenterOn(cx, cy)
	case ZoomIn:
		c.state.Viewport = c.state.Viewport.ZoomTo(c.CursorRegion())
	case ZoomOut:
		c.state.Viewport = c.state.Viewport.ZoomOutBy(ZoomOutFactor)
	}

	logx.Infow("navigate",
		logx.Field("event", ev.String()),
		logx.Field("before", before.Viewport.String()),
		logx.Field("after", c.state.Viewport.String()),
		logx.Field("maxIter", c.state.MaxIterations()),
	)
}

// CursorRegion is the rectangle a zoom or recenter acts on: the one on
// screen, or if none has been drawn since the last pass, the one the knobs
// point at now.
func (c *Controller) CursorRegion() viewport.Rect {
	if r, ok := c.overlay.Region(); ok {
		return r
	}
	return cursor.Derive(
		c.in.CursorX.ReadNormalized(),
		c.in.CursorY.ReadNormalized(),
		c.in.Zoom.ReadNormalized(),
		c.surface.Width(), c.surface.Height(),
	)
}

func (c *Controller) track(ctx context.Context) (Event, error) {
	ticker := time.NewTicker(c.sampleInterval)
	defer ticker.Stop()

	for {
		ev, err := c.Step()
		if err != nil || ev != None {
			return ev, err
		}

		select {
		case <-ctx.Done():
			return None, ctx.Err()
		case <-ticker.C:
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func ignoreCancel(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
