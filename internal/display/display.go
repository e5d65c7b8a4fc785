// Package display presents the PPU's framebuffer in an SDL2 window: an
// integer-scaled streaming texture updated once per emulated frame.
//
// The teacher's display package (internal/display/display.go) defined a
// DisplayInterface abstraction over a console-text backend; it never
// wired SDL2 for video, only for audio (internal/audio/sdl2_audio.go).
// Audio/APU are out of scope for this core, so that SDL2 usage moves here
// instead, as a single concrete Window type (NewWindow/Present/SetTitle/
// Close); event polling lives in internal/input.
package display

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

const (
	GameBoyWidth  = 160
	GameBoyHeight = 144
)

// Window owns the SDL2 window, renderer and streaming texture used to
// present RGB24 frames produced by ppu.PPU.RenderRGB.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	scale    int
}

// NewWindow creates and shows an SDL2 window scaled by the given integer
// factor (1 = native 160x144).
func NewWindow(title string, scale int) (*Window, error) {
	if scale < 1 {
		scale = 1
	}
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	w, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(GameBoyWidth*scale), int32(GameBoyHeight*scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}

	r, err := sdl.CreateRenderer(w, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		w.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	r.SetLogicalSize(int32(GameBoyWidth*scale), int32(GameBoyHeight*scale))

	tex, err := r.CreateTexture(sdl.PIXELFORMAT_RGB24, sdl.TEXTUREACCESS_STREAMING,
		int32(GameBoyWidth), int32(GameBoyHeight))
	if err != nil {
		r.Destroy()
		w.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create texture: %w", err)
	}

	return &Window{window: w, renderer: r, texture: tex, scale: scale}, nil
}

// Present uploads a packed RGB24 frame (160*144*3 bytes, row-major) to the
// texture and draws it.
func (win *Window) Present(rgb []byte) error {
	if err := win.texture.Update(nil, rgb, GameBoyWidth*3); err != nil {
		return fmt.Errorf("texture update: %w", err)
	}
	win.renderer.Clear()
	if err := win.renderer.Copy(win.texture, nil, nil); err != nil {
		return fmt.Errorf("renderer copy: %w", err)
	}
	win.renderer.Present()
	return nil
}

// SetTitle updates the window title (handy for showing FPS/ROM name).
func (win *Window) SetTitle(title string) { win.window.SetTitle(title) }

// Close releases all SDL2 resources owned by the window.
func (win *Window) Close() {
	win.texture.Destroy()
	win.renderer.Destroy()
	win.window.Destroy()
	sdl.Quit()
}
