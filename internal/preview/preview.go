// Package preview shows a rendered frame in an SDL2 window.
package preview

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/mirrorcast/internal/logger"
	"github.com/Faultbox/mirrorcast/internal/render"
	"github.com/Faultbox/mirrorcast/pkg/raster"
)

func init() {
	// SDL video calls must come from the main thread
	runtime.LockOSThread()
}

// frameDelayMS paces the event loop while the window is idle.
const frameDelayMS = 16

// Window displays a single frame until the user closes it.
type Window struct {
	sdlWindow *sdl.Window
	frame     *render.Frame
	log       *zap.Logger
}

// Open initializes SDL2 and creates a window sized to the frame.
func Open(title string, frame *render.Frame) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	win, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(frame.Width),
		int32(frame.Height),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	w := &Window{
		sdlWindow: win,
		frame:     frame,
		log:       logger.Named("preview"),
	}
	w.log.Info("window created",
		zap.String("title", title),
		zap.Int("width", frame.Width),
		zap.Int("height", frame.Height))

	return w, nil
}

// Draw copies the frame onto the window surface and presents it.
func (w *Window) Draw() error {
	surface, err := w.sdlWindow.GetSurface()
	if err != nil {
		return fmt.Errorf("SDL_GetWindowSurface failed: %w", err)
	}

	img, err := raster.ToImage(w.frame.Width, w.frame.Height, w.frame.Pixels)
	if err != nil {
		return err
	}

	bounds := img.Bounds().Intersect(surface.Bounds())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			surface.Set(x, y, img.RGBAAt(x, y))
		}
	}

	return w.sdlWindow.UpdateSurface()
}

// Run draws the frame and blocks until the window is closed or Esc is pressed.
func (w *Window) Run() error {
	if err := w.Draw(); err != nil {
		return err
	}

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch handle(event) {
			case actionQuit:
				w.log.Debug("preview closed")
				return nil
			case actionRedraw:
				if err := w.Draw(); err != nil {
					return err
				}
			}
		}
		sdl.Delay(frameDelayMS)
	}
}

// Close destroys the window and shuts SDL2 down.
func (w *Window) Close() {
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}
	sdl.Quit()
}

type action int

const (
	actionNone action = iota
	actionQuit
	actionRedraw
)

// handle maps an SDL event to what the event loop should do.
func handle(event sdl.Event) action {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return actionQuit
	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && (e.Keysym.Sym == sdl.K_ESCAPE || e.Keysym.Sym == sdl.K_q) {
			return actionQuit
		}
	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_EXPOSED, sdl.WINDOWEVENT_SIZE_CHANGED:
			return actionRedraw
		case sdl.WINDOWEVENT_CLOSE:
			return actionQuit
		}
	}
	return actionNone
}
