package main

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"github.com/willbeason/zoombrot/pkg/config"
	"github.com/willbeason/zoombrot/pkg/navigate"
	"github.com/willbeason/zoombrot/pkg/render"
	"github.com/willbeason/zoombrot/pkg/surface"
	"github.com/willbeason/zoombrot/pkg/viewport"
	"github.com/zeromicro/go-zero/core/logx"
)

var errBadZoom = errors.New("--zoom takes four pixel bounds: left,right,top,bottom")

type options struct {
	cfg config.Config

	out     string
	zoom    []int
	zoomOut int
	hires   bool
}

func mainCmd() *cobra.Command {
	opts := &options{cfg: config.Default()}

	cmd := &cobra.Command{
		Use:   "escape",
		Short: "Render one view of the Mandelbrot set to a PNG",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	fs := cmd.Flags()
	opts.cfg.BindFlags(fs)
	fs.StringVar(&opts.out, "out", "out", "directory for the image and its snapshot")
	fs.IntSliceVar(&opts.zoom, "zoom", nil, "zoom into the pixel rectangle left,right,top,bottom before rendering")
	fs.IntVar(&opts.zoomOut, "zoom-out", 0, "zoom out this many times before rendering")
	fs.BoolVar(&opts.hires, "hires", false, "double the iteration budget")

	return cmd
}

// snapshot records what was rendered so a view can be reproduced.
type snapshot struct {
	RealStart     float64 `json:"realStart"`
	RealEnd       float64 `json:"realEnd"`
	ImagStart     float64 `json:"imagStart"`
	ImagEnd       float64 `json:"imagEnd"`
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	MaxIterations int     `json:"maxIterations"`
	HighRes       bool    `json:"highRes"`
	Elapsed       string  `json:"elapsed"`
}

func runCmd(cmd *cobra.Command, opts *options) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	cfg := opts.cfg
	if err := config.SetupLogging("escape", cfg.Log); err != nil {
		return err
	}
	if err := cfg.Load(); err != nil {
		return err
	}

	state, err := navigateTo(cfg, opts)
	if err != nil {
		return err
	}

	r, err := render.New(render.Options{
		Width:         cfg.Width,
		Height:        cfg.Height,
		Palette:       cfg.Palette,
		FlushEvery:    cfg.FlushEvery,
		WorkerTimeout: cfg.WorkerTimeout,
	})
	if err != nil {
		return err
	}
	defer r.Close()

	s := surface.New(cfg.Width, cfg.Height, surface.Discard{W: int16(cfg.Width), H: int16(cfg.Height)})
	s.Clear(cfg.Background)

	stats, err := r.Render(state.Viewport, state.MaxIterations(), surface.Painter{Surface: s, Palette: cfg.Palette})
	if err != nil {
		return err
	}

	err = os.MkdirAll(opts.out, os.ModePerm)
	if err != nil {
		return err
	}
	base := filepath.Join(opts.out, time.Now().Format("20060102150405"))

	f, err := os.Create(base + ".png")
	if err != nil {
		return err
	}
	defer f.Close()

	err = png.Encode(f, s)
	if err != nil {
		return err
	}

	snap, err := sonic.Marshal(snapshot{
		RealStart:     state.Viewport.RealStart,
		RealEnd:       state.Viewport.RealEnd,
		ImagStart:     state.Viewport.ImagStart,
		ImagEnd:       state.Viewport.ImagEnd,
		Width:         state.Viewport.Width,
		Height:        state.Viewport.Height,
		MaxIterations: state.MaxIterations(),
		HighRes:       state.HighRes,
		Elapsed:       stats.Elapsed.String(),
	})
	if err != nil {
		return err
	}
	err = os.WriteFile(base+".json", snap, 0o644)
	if err != nil {
		return err
	}

	logx.Infow("wrote image", logx.Field("path", base+".png"), logx.Field("viewport", state.Viewport.String()))
	return nil
}

// navigateTo replays the navigation flags on the configured starting view,
// zooming in before zooming out.
func navigateTo(cfg config.Config, opts *options) (navigate.State, error) {
	state := navigate.State{
		Viewport:       cfg.View,
		BaseIterations: cfg.Iterations,
		HighRes:        opts.hires,
	}

	if opts.zoom != nil {
		if len(opts.zoom) != 4 {
			return state, fmt.Errorf("%w: got %v", errBadZoom, opts.zoom)
		}
		rect := viewport.Rect{Left: opts.zoom[0], Right: opts.zoom[1], Top: opts.zoom[2], Bottom: opts.zoom[3]}
		if !rect.Within(cfg.Width, cfg.Height) {
			return state, fmt.Errorf("%w: %v is outside %dx%d", errBadZoom, rect, cfg.Width, cfg.Height)
		}
		state.Viewport = state.Viewport.ZoomTo(rect)
	}

	for i := 0; i < opts.zoomOut; i++ {
		state.Viewport = state.Viewport.ZoomOutBy(navigate.ZoomOutFactor)
	}

	return state, nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
