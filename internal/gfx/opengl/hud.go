package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const (
	hudFontSize = 14
	hudWrap     = 300
)

var hudColor = sdl.Color{R: 255, G: 255, B: 255, A: 255}

// HUD draws a block of text in the top-left corner of the window.
type HUD struct {
	font    *ttf.Font
	texture uint32
	w, h    int32
}

// OpenHUD loads the font at path. The caller must Close the HUD.
func OpenHUD(path string) (*HUD, error) {
	if err := ttf.Init(); err != nil {
		return nil, fmt.Errorf("ttf init: %w", err)
	}
	font, err := ttf.OpenFont(path, hudFontSize)
	if err != nil {
		ttf.Quit()
		return nil, fmt.Errorf("open font %s: %w", path, err)
	}
	h := &HUD{font: font}
	gl.GenTextures(1, &h.texture)
	return h, nil
}

// SetText re-renders the overlay texture.
func (h *HUD) SetText(text string) error {
	if text == "" {
		text = " " // zero-width text is an error in SDL_ttf
	}
	surf, err := h.font.RenderUTF8BlendedWrapped(text, hudColor, hudWrap)
	if err != nil {
		return err
	}
	defer surf.Free()

	// ABGR8888 is R,G,B,A in memory on little endian, which is what GL_RGBA reads.
	rgba, err := surf.ConvertFormat(sdl.PIXELFORMAT_ABGR8888, 0)
	if err != nil {
		return err
	}
	defer rgba.Free()

	pix := rgba.Pixels()
	h.w, h.h = rgba.W, rgba.H

	gl.BindTexture(gl.TEXTURE_2D, h.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, rgba.Pitch/4)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, h.w, h.h, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

// Draw blits the last rendered text. All state it touches is restored.
func (h *HUD) Draw() {
	if h.w == 0 || h.h == 0 {
		return
	}
	gl.MatrixMode(gl.PROJECTION)
	gl.PushMatrix()
	gl.LoadIdentity()
	gl.Ortho(0, Width, Height, 0, -1, 1)
	gl.MatrixMode(gl.MODELVIEW)
	gl.PushMatrix()
	gl.LoadIdentity()

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, h.texture)

	w, ht := float32(h.w), float32(h.h)
	gl.Color4f(1, 1, 1, 1)
	gl.Begin(gl.QUADS)
	gl.TexCoord2f(0, 0)
	gl.Vertex2f(0, 0)
	gl.TexCoord2f(1, 0)
	gl.Vertex2f(w, 0)
	gl.TexCoord2f(1, 1)
	gl.Vertex2f(w, ht)
	gl.TexCoord2f(0, 1)
	gl.Vertex2f(0, ht)
	gl.End()

	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.Disable(gl.TEXTURE_2D)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)

	gl.PopMatrix()
	gl.MatrixMode(gl.PROJECTION)
	gl.PopMatrix()
	gl.MatrixMode(gl.MODELVIEW)
}

func (h *HUD) Close() {
	gl.DeleteTextures(1, &h.texture)
	h.font.Close()
	ttf.Quit()
}
