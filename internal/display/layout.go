package display

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"github.com/tamzrod/input-remapper/internal/hw"
)

// Output layouts selectable per profile.
const (
	LayoutFightstick uint8 = 0
	LayoutHitbox     uint8 = 1
	LayoutController uint8 = 2
)

// TurboLabel is printed when the turbo output is asserted.
const TurboLabel = "TPK"

type shapeKind uint8

const (
	square shapeKind = iota // 6x6 box
	box                     // w x h box
	circle                  // radius 4
)

const (
	squareSize   = 6
	circleRadius = 4
	turboX       = 109
	turboY       = 7
)

// shape is one output indicator, positioned relative to the layout origin.
type shape struct {
	kind   shapeKind
	x, y   int16
	w, h   int16
	output int
}

func sq(x, y int16, out int) shape       { return shape{kind: square, x: x, y: y, output: out} }
func rc(x, y, w, h int16, out int) shape { return shape{kind: box, x: x, y: y, w: w, h: h, output: out} }
func ci(x, y int16, out int) shape       { return shape{kind: circle, x: x, y: y, output: out} }

var layouts = map[uint8][]shape{
	LayoutFightstick: {
		sq(0, 7, 12), sq(14, 7, 13), sq(7, 0, 15), sq(7, 14, 14), // left right up down

		ci(31, 5, 8), ci(41, 5, 7), ci(51, 5, 6), ci(61, 5, 5), // punches
		ci(31, 15, 4), ci(41, 15, 3), ci(51, 15, 2), ci(61, 15, 1), // kicks

		sq(75, 2, 11), sq(82, 2, 9), sq(89, 2, 10), // select start home

		ci(79, 15, 16), ci(90, 15, 17), // L3 R3
	},
	LayoutHitbox: {
		ci(5, 5, 12), ci(15, 5, 14), ci(24, 9, 13), ci(25, 19, 15),

		ci(35, 5, 8), ci(45, 5, 7), ci(55, 5, 6), ci(65, 5, 5),
		ci(35, 15, 4), ci(45, 15, 3), ci(55, 15, 2), ci(65, 15, 1),

		sq(79, 2, 11), sq(86, 2, 9), sq(93, 2, 10),

		ci(83, 15, 16), ci(94, 15, 17),
	},
	LayoutController: {
		sq(0, 7, 12), sq(14, 7, 13), sq(7, 0, 15), sq(7, 14, 14),

		rc(25, 2, 6, 4, 11), rc(32, 2, 6, 4, 9), ci(31, 12, 10),

		sq(43, 7, 8), sq(57, 7, 3), sq(50, 0, 7), sq(50, 14, 4), // face buttons

		rc(70, 0, 10, 6, 5), rc(81, 0, 10, 6, 6), // L1 R1
		rc(70, 7, 10, 6, 1), rc(81, 7, 10, 6, 2), // L2 R2

		ci(75, 18, 16), ci(85, 18, 17),
	},
}

// drawOutputs draws the layout selected for the profile. An unknown layout
// draws nothing.
func drawOutputs(d drivers.Displayer, font tinyfont.Fonter, line int16, word uint32, layout uint8) {
	shapes, ok := layouts[layout]
	if !ok {
		return
	}

	for _, sh := range shapes {
		on := hw.Active(word, sh.output)
		switch sh.kind {
		case square:
			cell(d, sh.x, line+sh.y, squareSize, squareSize, on)
		case box:
			cell(d, sh.x, line+sh.y, sh.w, sh.h, on)
		case circle:
			dot(d, sh.x, line+sh.y, circleRadius, on)
		}
	}

	if hw.Active(word, hw.TurboPosition) {
		tinyfont.WriteLine(d, font, turboX, line+turboY, TurboLabel, white)
	}
}
