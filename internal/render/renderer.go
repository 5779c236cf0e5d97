// Package render turns a camera view and a caster into an RGB frame.
package render

import (
	"fmt"
	"runtime"
	"time"

	"github.com/fogleman/pt/pt"
	"go.uber.org/zap"

	"github.com/Faultbox/mirrorcast/pkg/camera"
	"github.com/Faultbox/mirrorcast/pkg/raster"
	"github.com/Faultbox/mirrorcast/pkg/trace"
)

// Frame is a rendered image as packed row-major RGB bytes, top row first.
type Frame struct {
	Width  int
	Height int
	Pixels []byte
}

// Save writes the frame to path in the format its extension names.
func (f *Frame) Save(path string) error {
	return raster.Write(path, f.Width, f.Height, f.Pixels)
}

// Stats summarizes one Render call.
type Stats struct {
	Pixels         int
	Workers        int
	Duration       time.Duration
	DepthLimitHits int64 // Reflection chains cut off during this render
}

// Renderer casts one primary ray per pixel.
type Renderer struct {
	caster  *trace.Caster
	view    camera.View
	workers int
	log     *zap.Logger
}

// New creates a renderer. workers <= 0 uses one worker per CPU.
// A nil log discards output.
func New(caster *trace.Caster, view camera.View, workers int, log *zap.Logger) *Renderer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{
		caster:  caster,
		view:    view,
		workers: workers,
		log:     log,
	}
}

// Workers returns the number of goroutines Render uses.
func (r *Renderer) Workers() int {
	return r.workers
}

// Render casts every pixel of the view and returns the packed frame.
func (r *Renderer) Render() (*Frame, Stats, error) {
	if err := r.view.Validate(); err != nil {
		return nil, Stats{}, fmt.Errorf("invalid view: %w", err)
	}

	start := time.Now()
	hitsBefore := r.caster.DepthLimitHits()

	frame := &Frame{
		Width:  r.view.Width,
		Height: r.view.Height,
		Pixels: make([]byte, r.view.Width*r.view.Height*raster.BytesPerPixel),
	}

	workers := min(r.workers, r.view.Height)
	r.log.Debug("rendering",
		zap.Int("width", frame.Width),
		zap.Int("height", frame.Height),
		zap.Int("workers", workers),
		zap.Int("surfaces", r.caster.Scene().Len()))

	pool := newRowPool(workers, r.renderRow(frame, camera.Directions(r.view)))
	pool.run(frame.Height)

	stats := Stats{
		Pixels:         frame.Width * frame.Height,
		Workers:        workers,
		Duration:       time.Since(start),
		DepthLimitHits: r.caster.DepthLimitHits() - hitsBefore,
	}

	r.log.Info("frame rendered",
		zap.Int("pixels", stats.Pixels),
		zap.Int("workers", stats.Workers),
		zap.Duration("elapsed", stats.Duration))
	if stats.DepthLimitHits > 0 {
		r.log.Warn("reflection depth limit reached",
			zap.Int64("casts", stats.DepthLimitHits))
	}

	return frame, stats, nil
}

// renderRow returns a job that fills image row y of frame.
func (r *Renderer) renderRow(frame *Frame, dirs []pt.Vector) func(y int) {
	rowBytes := frame.Width * raster.BytesPerPixel
	return func(y int) {
		out := frame.Pixels[y*rowBytes : (y+1)*rowBytes]
		for x, dir := range dirs[y*frame.Width : (y+1)*frame.Width] {
			c := r.caster.Cast(pt.Ray{Origin: r.view.Origin, Direction: dir})
			i := x * raster.BytesPerPixel
			out[i] = raster.ChannelByte(c.R)
			out[i+1] = raster.ChannelByte(c.G)
			out[i+2] = raster.ChannelByte(c.B)
		}
	}
}
