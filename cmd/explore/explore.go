package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/gops/agent"
	"github.com/spf13/cobra"
	"github.com/willbeason/zoombrot/pkg/config"
	"github.com/willbeason/zoombrot/pkg/display"
	"github.com/willbeason/zoombrot/pkg/input"
	"github.com/willbeason/zoombrot/pkg/navigate"
	"github.com/willbeason/zoombrot/pkg/render"
	"github.com/zeromicro/go-zero/core/logx"
	"golang.org/x/sync/errgroup"
)

type options struct {
	cfg config.Config

	fit  bool
	gops bool
}

func mainCmd() *cobra.Command {
	opts := &options{cfg: config.Default()}
	// Console logs would draw over the image.
	opts.cfg.Log.Mode = "file"

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Explore the Mandelbrot set in the terminal",
		Long: `Explore the Mandelbrot set in the terminal.

Arrow keys move the cursor and +/- resize it; hold shift for bigger steps.
a zooms into the cursor, x zooms out, b recenters on the cursor and
y toggles high resolution. q or Esc quits.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	fs := cmd.Flags()
	opts.cfg.BindFlags(fs)
	fs.BoolVar(&opts.fit, "fit", true, "size the image to the terminal, ignoring --width and --height")
	fs.BoolVar(&opts.gops, "gops", false, "start a gops diagnostics agent")

	return cmd
}

func runCmd(cmd *cobra.Command, opts *options) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	cfg := opts.cfg
	if err := config.SetupLogging("explore", cfg.Log); err != nil {
		return err
	}

	if opts.gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			return fmt.Errorf("starting gops agent: %w", err)
		}
		defer agent.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	// Fini also wakes the event pump, so it may run before the deferred call.
	fini := sync.OnceFunc(screen.Fini)
	defer fini()

	if opts.fit {
		cols, rows := screen.Size()
		// One row is kept for the status line.
		cfg.Width, cfg.Height = cols-cols%2, 2*(rows-1)
	}
	if err := cfg.Load(); err != nil {
		return err
	}

	term := display.NewTerminal(screen, cfg.Width, cfg.Height)
	panel := input.NewPanel()

	ctrl, err := navigate.New(cfg, term, navigate.Inputs{
		CursorX:    panel.CursorX,
		CursorY:    panel.CursorY,
		Zoom:       panel.Zoom,
		ZoomIn:     panel.ZoomIn,
		ZoomOut:    panel.ZoomOut,
		Recenter:   panel.Recenter,
		Resolution: panel.Resolution,
	})
	if err != nil {
		return err
	}
	defer ctrl.Close()

	ctrl.OnRender = func(s navigate.State, stats render.Stats) {
		res := "low"
		if s.HighRes {
			res = "high"
		}
		term.SetStatus(fmt.Sprintf("%s  iterations %d (%s)  %s",
			s.Viewport, s.MaxIterations(), res, stats.Elapsed.Round(time.Millisecond)))
	}

	ctx, quit := context.WithCancel(cmd.Context())
	defer quit()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				// The screen was finalized.
				return nil
			case *tcell.EventKey:
				if panel.HandleKey(ev) {
					quit()
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	})

	g.Go(func() error {
		defer fini()
		return ctrl.Run(ctx)
	})

	err = g.Wait()
	if err != nil {
		logx.Errorf("explore: %v", err)
	}
	return err
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
