package display

import (
	"image/color"
	"strconv"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"

	"github.com/tamzrod/input-remapper/internal/status"
)

var (
	white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	black = color.RGBA{A: 0xFF}
)

// Screen geometry.
const (
	headerBaseline = 6
	unlockedX      = 96
	inputsLine     = 8
	inputCell      = 8
	badgeY         = 31
	badgeSize      = 7
	nameBaseline   = 37
	outputsLine    = 40
)

// Panel is a display with a clearable frame buffer.
type Panel interface {
	drivers.Displayer
	ClearBuffer()
}

// Screen renders snapshots onto a panel.
type Screen struct {
	panel Panel
	font  tinyfont.Fonter
}

// NewScreen returns a screen drawing with the TomThumb font.
func NewScreen(p Panel) *Screen {
	return &Screen{panel: p, font: &tinyfont.TomThumb}
}

// Render redraws the whole screen and flushes it to the panel.
func (s *Screen) Render(snap status.Snapshot) error {
	p := s.panel
	p.ClearBuffer()

	tinyfont.WriteLine(p, s.font, 0, headerBaseline, "Current inputs", white)
	if snap.Unlocked() {
		tinyfont.WriteLine(p, s.font, unlockedX, headerBaseline, "Unlocked", white)
	}

	s.drawInputs(inputsLine, snap.Input)
	s.drawBadge(snap.ProfileID, snap.ProfileName)
	drawOutputs(p, s.font, outputsLine, snap.Output, snap.Layout)

	return p.Display()
}

// drawInputs draws 32 cells in two rows of 16; row two holds inputs 17-32.
func (s *Screen) drawInputs(line int16, word uint32) {
	for i := int16(0); i < 16; i++ {
		x := i * inputCell
		cell(s.panel, x, line, inputCell-1, inputCell-1, word>>uint(i)&1 == 1)
		cell(s.panel, x, line+inputCell, inputCell-1, inputCell-1, word>>uint(i+16)&1 == 1)
	}
}

func (s *Screen) drawBadge(id uint8, name string) {
	tinydraw.FilledRectangle(s.panel, 0, badgeY, badgeSize, badgeSize, white)
	// rounded corners
	last := int16(badgeSize - 1)
	s.panel.SetPixel(0, badgeY, black)
	s.panel.SetPixel(last, badgeY, black)
	s.panel.SetPixel(0, badgeY+last, black)
	s.panel.SetPixel(last, badgeY+last, black)

	tinyfont.WriteLine(s.panel, s.font, 2, nameBaseline, strconv.Itoa(int(id)), black)
	tinyfont.WriteLine(s.panel, s.font, badgeSize+2, nameBaseline, name, white)
}

// cell draws a filled rectangle when on, an outline otherwise.
func cell(d drivers.Displayer, x, y, w, h int16, on bool) {
	if on {
		tinydraw.FilledRectangle(d, x, y, w, h, white)
		return
	}
	tinydraw.Rectangle(d, x, y, w, h, white)
}

func dot(d drivers.Displayer, x, y, r int16, on bool) {
	if on {
		tinydraw.FilledCircle(d, x, y, r, white)
		return
	}
	tinydraw.Circle(d, x, y, r, white)
}
