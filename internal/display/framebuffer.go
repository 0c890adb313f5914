package display

import (
	"image/color"
	"sync"
)

// Framebuffer is an in-memory monochrome panel. Drawing goes to a back
// buffer owned by the render goroutine; Display publishes it so other
// goroutines can read a complete frame.
//
// Only the render goroutine may call Resize and the drawing methods.
type Framebuffer struct {
	back []bool

	mu     sync.Mutex
	w, h   int16
	front  []bool
	frames int
}

// NewFramebuffer returns a blank w x h panel.
func NewFramebuffer(w, h int16) *Framebuffer {
	if w <= 0 || h <= 0 {
		w, h = 128, 64
	}
	n := int(w) * int(h)
	return &Framebuffer{w: w, h: h, back: make([]bool, n), front: make([]bool, n)}
}

// Size implements drivers.Displayer.
func (f *Framebuffer) Size() (x, y int16) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.w, f.h
}

// Resize reallocates the panel as a blank w x h panel. Non-positive
// dimensions are ignored.
func (f *Framebuffer) Resize(w, h int16) {
	if w <= 0 || h <= 0 {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if w == f.w && h == f.h {
		return
	}
	n := int(w) * int(h)
	f.w, f.h = w, h
	f.back = make([]bool, n)
	f.front = make([]bool, n)
}

// SetPixel implements drivers.Displayer. Any non-black color turns the
// pixel on.
func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return
	}
	f.back[int(y)*int(f.w)+int(x)] = c.R != 0 || c.G != 0 || c.B != 0
}

// Display implements drivers.Displayer.
func (f *Framebuffer) Display() error {
	f.mu.Lock()
	copy(f.front, f.back)
	f.frames++
	f.mu.Unlock()
	return nil
}

// ClearBuffer blanks the back buffer.
func (f *Framebuffer) ClearBuffer() {
	for i := range f.back {
		f.back[i] = false
	}
}

// Pixel reports the published state of one pixel.
func (f *Framebuffer) Pixel(x, y int16) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return false
	}
	return f.front[int(y)*int(f.w)+int(x)]
}

// Frames returns how many frames were published.
func (f *Framebuffer) Frames() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frames
}

// RGBA writes the published frame into dst as RGBA pixels, 4 bytes each.
func (f *Framebuffer) RGBA(dst []byte, on, off color.RGBA) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, lit := range f.front {
		if 4*i+3 >= len(dst) {
			return
		}
		c := off
		if lit {
			c = on
		}
		dst[4*i] = c.R
		dst[4*i+1] = c.G
		dst[4*i+2] = c.B
		dst[4*i+3] = c.A
	}
}
