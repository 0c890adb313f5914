//go:build !tinygo && cgo

package sim

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tamzrod/input-remapper/internal/display"
)

// DefaultScale is the window magnification of the panel.
const DefaultScale = 4

var (
	pixelOn  = color.RGBA{R: 0x9F, G: 0xE8, B: 0xFF, A: 0xFF}
	pixelOff = color.RGBA{R: 0x08, G: 0x0C, B: 0x10, A: 0xFF}
)

// Window is the ebiten game presenting the framebuffer.
type Window struct {
	ctx  context.Context
	fb   *display.Framebuffer
	kb   *Keyboard
	keys Keymap

	scale  int
	width  int16
	height int16
	img    *ebiten.Image
	pix    []byte
}

// NewWindow builds a window over fb feeding kb.
func NewWindow(ctx context.Context, fb *display.Framebuffer, kb *Keyboard) *Window {
	return &Window{ctx: ctx, fb: fb, kb: kb, keys: DefaultKeymap()}
}

// Run opens the window and blocks until it is closed or ctx ends.
func (w *Window) Run(title string, scale int) error {
	if scale <= 0 {
		scale = DefaultScale
	}
	w.scale = scale
	w.width, w.height = w.fb.Size()

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(w.width)*scale, int(w.height)*scale)
	ebiten.SetTPS(120)

	return ebiten.RunGame(w)
}

func (w *Window) Update() error {
	if w.ctx.Err() != nil {
		return ebiten.Termination
	}
	w.kb.Set(w.keys.Word(ebiten.IsKeyPressed))

	// the panel is resized once the profile document is bound
	if width, height := w.fb.Size(); width != w.width || height != w.height {
		w.width, w.height = width, height
		w.img = nil
		ebiten.SetWindowSize(int(width)*w.scale, int(height)*w.scale)
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	if w.img == nil {
		w.img = ebiten.NewImage(int(w.width), int(w.height))
		w.pix = make([]byte, 4*int(w.width)*int(w.height))
	}

	w.fb.RGBA(w.pix, pixelOn, pixelOff)
	w.img.WritePixels(w.pix)
	screen.DrawImage(w.img, nil)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(w.width), int(w.height)
}

// Title formats the window title for a build version.
func Title(version string) string {
	return fmt.Sprintf("input-remapper (%s)", version)
}
