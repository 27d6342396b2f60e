// Package surface provides page drawing surfaces for the year planner.
//
// All surfaces use PDF coordinates: points, origin at the bottom-left corner
// of the page, y growing upwards. Text is positioned by its baseline.
package surface

import "io"

// A4 landscape in points
const (
	A4LandscapeWidth  = 841.89
	A4LandscapeHeight = 595.28
)

// FontStyle selects the weight of the surface's sans-serif font
type FontStyle int

const (
	Regular FontStyle = iota
	Bold
)

func (s FontStyle) String() string {
	if s == Bold {
		return "bold"
	}
	return "regular"
}

// Color is an 8-bit RGB color
type Color struct {
	R, G, B uint8
}

var (
	Black     = Color{0, 0, 0}
	White     = Color{255, 255, 255}
	LightGrey = Color{211, 211, 211}
)

// Surface is the set of drawing primitives the planner needs
type Surface interface {
	// Size returns the page width and height in points.
	Size() (width, height float64)
	SetFillColor(c Color)
	SetStrokeColor(c Color)
	// Rect draws the rectangle with its bottom-left corner at (x, y).
	Rect(x, y, w, h float64, fill, stroke bool)
	SetFont(style FontStyle, size float64)
	DrawString(x, y float64, s string)
	DrawCentredString(x, y float64, s string)
	DrawRightString(x, y float64, s string)
	// Save encodes the finished page.
	Save(w io.Writer) error
}
