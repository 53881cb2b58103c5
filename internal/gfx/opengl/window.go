// Package opengl owns the SDL window, its GL context and the on-screen
// overlay.
package opengl

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/cowsed/Random/CubeWave/internal/gfx"
)

var (
	ErrInit    = errors.New("SDL Initialization Error")
	ErrWindow  = errors.New("SDL Window Creation Error")
	ErrContext = errors.New("SDL OpenGL Context Creation Error")
)

const (
	Title  = "3D Grid"
	PosX   = 100
	PosY   = 100
	Width  = 800
	Height = 600
)

// system, surface and context are the three resources Open acquires, in
// order. Each must be released if a later one fails.
type system interface {
	init() error
	createWindow() (surface, error)
	quit()
}

type surface interface {
	createContext() (context, error)
	swap()
	destroy()
}

type context interface {
	load() error
	release()
}

type Window struct {
	sys system
	win surface
	ctx context
}

// Open initializes SDL, creates the window and makes a GL context current.
// On error everything acquired so far has been released.
func Open() (*Window, error) {
	return open(sdlSystem{})
}

func open(sys system) (w *Window, err error) {
	if err := sys.init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInit, err)
	}
	defer func() {
		if err != nil {
			sys.quit()
		}
	}()

	win, err := sys.createWindow()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWindow, err)
	}
	defer func() {
		if err != nil {
			win.destroy()
		}
	}()

	ctx, err := win.createContext()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContext, err)
	}
	if err := ctx.load(); err != nil {
		ctx.release()
		return nil, fmt.Errorf("%w: %v", ErrContext, err)
	}
	return &Window{sys: sys, win: win, ctx: ctx}, nil
}

// Setup loads the camera projection.
func (w *Window) Setup(cam gfx.Camera) {
	cam.Project(Pipeline{})
}

// Poll drains pending events and reports whether a quit was among them.
func (w *Window) Poll() (quit bool) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			quit = true
		}
	}
	return quit
}

func (w *Window) Swap() { w.win.swap() }

func (w *Window) Close() {
	w.ctx.release()
	w.win.destroy()
	w.sys.quit()
}

type sdlSystem struct{}

func (sdlSystem) init() error { return sdl.Init(sdl.INIT_VIDEO) }
func (sdlSystem) quit()       { sdl.Quit() }

func (sdlSystem) createWindow() (surface, error) {
	win, err := sdl.CreateWindow(Title, PosX, PosY, Width, Height, sdl.WINDOW_OPENGL)
	if err != nil {
		return nil, err
	}
	return sdlWindow{win}, nil
}

type sdlWindow struct{ win *sdl.Window }

func (s sdlWindow) swap()    { s.win.GLSwap() }
func (s sdlWindow) destroy() { s.win.Destroy() }

func (s sdlWindow) createContext() (context, error) {
	ctx, err := s.win.GLCreateContext()
	if err != nil {
		return nil, err
	}
	return glContext{ctx}, nil
}

type glContext struct{ ctx sdl.GLContext }

func (c glContext) release() { sdl.GLDeleteContext(c.ctx) }

func (c glContext) load() error {
	if err := gl.Init(); err != nil {
		return err
	}
	log.Println("OpenGL version:", gl.GoStr(gl.GetString(gl.VERSION)))
	gl.Enable(gl.DEPTH_TEST)
	return nil
}
