// Package render paints a viewport column by column using two goroutines: the
// caller's and a single parked worker.
//
// Columns are taken in pairs (x, x+1). The worker computes column x into a
// private buffer while the caller computes and plots column x+1, then the
// caller copies the worker's column onto the target. Only the caller ever
// touches the target.
package render

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/willbeason/zoombrot/pkg/escape"
	"github.com/willbeason/zoombrot/pkg/palette"
	"github.com/willbeason/zoombrot/pkg/viewport"
	"github.com/zeromicro/go-zero/core/logx"
)

// DefaultFlushEvery is the number of column pairs between presents.
const DefaultFlushEvery = 2

var (
	ErrOddWidth      = errors.New("render: surface width must be even")
	ErrBadSize       = errors.New("render: surface size must be positive")
	ErrSizeMismatch  = errors.New("render: viewport size does not match renderer")
	ErrWorkerStalled = errors.New("render: worker did not finish its column")
	ErrClosed        = errors.New("render: renderer is closed")
)

// A Target receives every pixel of a pass. Plot is called exactly once per
// pixel, from one goroutine, including for NoPaint indices.
type Target interface {
	Plot(x, y int, idx palette.Index)
	Present() error
}

type Options struct {
	Width, Height int
	Palette       palette.Palette

	// FlushEvery is how many column pairs are drawn between presents.
	// Zero means DefaultFlushEvery.
	FlushEvery int

	// WorkerTimeout bounds the wait for the worker's column. Zero waits
	// forever.
	WorkerTimeout time.Duration
}

// Stats describes a finished pass.
type Stats struct {
	Pairs   int
	Flushes int
	Elapsed time.Duration
}

type job struct {
	x       int
	vp      viewport.Viewport
	maxIter int
}

type Renderer struct {
	opts Options

	// column is the worker's result buffer, reused by every pass. The worker
	// writes it between receiving a job and sending on done; the caller reads
	// it only after receiving from done.
	column []palette.Index
	fill   func(vp viewport.Viewport, x, maxIter int, out []palette.Index)

	jobs chan job
	done chan int
	wg   sync.WaitGroup

	closed  bool
	stalled bool
}

// New validates opts and starts the worker goroutine. Close stops it.
func New(opts Options) (*Renderer, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, opts.Width, opts.Height)
	}
	if opts.Width%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrOddWidth, opts.Width)
	}
	if opts.Palette.Len() < palette.MinColors {
		return nil, palette.ErrTooFewColors
	}
	if opts.FlushEvery <= 0 {
		opts.FlushEvery = DefaultFlushEvery
	}

	r := &Renderer{
		opts:   opts,
		column: make([]palette.Index, opts.Height),
		jobs:   make(chan job),
		// Buffered so a worker finishing after a timed-out wait can still exit.
		done: make(chan int, 1),
	}
	r.fill = r.computeColumn

	r.wg.Add(1)
	go r.work()

	return r, nil
}

func (r *Renderer) work() {
	defer r.wg.Done()
	for j := range r.jobs {
		r.fill(j.vp, j.x, j.maxIter, r.column)
		r.done <- j.x
	}
}

// Close stops the worker. A renderer whose worker stalled cannot be waited
// on, so Close only signals it in that case.
func (r *Renderer) Close() {
	if r.closed {
		return
	}
	r.closed = true
	close(r.jobs)
	if !r.stalled {
		r.wg.Wait()
	}
}

// Render paints every pixel of vp onto target with the given iteration
// budget. A pass always runs to completion unless the worker stalls.
func (r *Renderer) Render(vp viewport.Viewport, maxIter int, target Target) (Stats, error) {
	var stats Stats
	switch {
	case r.closed:
		return stats, ErrClosed
	case r.stalled:
		return stats, ErrWorkerStalled
	case vp.Width != r.opts.Width || vp.Height != r.opts.Height:
		return stats, fmt.Errorf("%w: viewport %dx%d, renderer %dx%d",
			ErrSizeMismatch, vp.Width, vp.Height, r.opts.Width, r.opts.Height)
	}

	start := time.Now()
	w, h := r.opts.Width, r.opts.Height

	for x := 0; x < w; x += 2 {
		r.jobs <- job{x: x, vp: vp, maxIter: maxIter}

		x1 := x + 1
		for y := 0; y < h; y++ {
			target.Plot(x1, y, r.index(vp, x1, y, maxIter))
		}

		if err := r.wait(x); err != nil {
			return stats, err
		}
		for y, idx := range r.column {
			target.Plot(x, y, idx)
		}

		stats.Pairs++
		if stats.Pairs%r.opts.FlushEvery == 0 {
			if err := target.Present(); err != nil {
				return stats, fmt.Errorf("presenting column %d: %w", x1, err)
			}
			stats.Flushes++
		}
	}

	// The last pair may not have landed on a flush.
	if err := target.Present(); err != nil {
		return stats, fmt.Errorf("presenting final frame: %w", err)
	}
	stats.Flushes++
	stats.Elapsed = time.Since(start)

	logx.Infow("render pass complete",
		logx.Field("viewport", vp.String()),
		logx.Field("maxIter", maxIter),
		logx.Field("pairs", stats.Pairs),
		logx.Field("flushes", stats.Flushes),
		logx.Field("elapsed", stats.Elapsed.String()),
	)

	return stats, nil
}

func (r *Renderer) wait(x int) error {
	if r.opts.WorkerTimeout <= 0 {
		<-r.done
		return nil
	}

	timer := time.NewTimer(r.opts.WorkerTimeout)
	defer timer.Stop()

	select {
	case <-r.done:
		return nil
	case <-timer.C:
		r.stalled = true
		logx.Errorf("render: worker did not finish column %d within %s", x, r.opts.WorkerTimeout)
		return fmt.Errorf("%w: column %d after %s", ErrWorkerStalled, x, r.opts.WorkerTimeout)
	}
}

func (r *Renderer) computeColumn(vp viewport.Viewport, x, maxIter int, out []palette.Index) {
	for y := range out {
		out[y] = r.index(vp, x, y, maxIter)
	}
}

func (r *Renderer) index(vp viewport.Viewport, x, y, maxIter int) palette.Index {
	return r.opts.Palette.IndexFor(escape.Iterate(vp.SampleAt(x, y), maxIter))
}
