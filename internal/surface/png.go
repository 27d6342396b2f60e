package surface

import (
	"fmt"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultPNGScale is the number of pixels per point
const DefaultPNGScale = 2.0

type faceKey struct {
	style FontStyle
	size  float64
}

// PNG rasterizes the page with gg, using the Go fonts
type PNG struct {
	dc            *gg.Context
	width, height float64
	scale         float64
	fill          Color
	stroke        Color
	fonts         map[FontStyle]*truetype.Font
	faces         map[faceKey]font.Face
}

// NewPNG creates a white page of width x height points rendered at scale
// pixels per point.
func NewPNG(width, height, scale float64) (*PNG, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("png: scale must be positive, got %v", scale)
	}
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("png: parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("png: parse bold font: %w", err)
	}

	dc := gg.NewContext(int(math.Ceil(width*scale)), int(math.Ceil(height*scale)))
	dc.SetRGB255(255, 255, 255)
	dc.Clear()

	p := &PNG{
		dc:     dc,
		width:  width,
		height: height,
		scale:  scale,
		fill:   Black,
		stroke: Black,
		fonts:  map[FontStyle]*truetype.Font{Regular: regular, Bold: bold},
		faces:  make(map[faceKey]font.Face),
	}
	p.SetFont(Regular, 10)
	return p, nil
}

func (p *PNG) Size() (float64, float64) {
	return p.width, p.height
}

func (p *PNG) SetFillColor(c Color) {
	p.fill = c
}

func (p *PNG) SetStrokeColor(c Color) {
	p.stroke = c
}

func (p *PNG) Rect(x, y, w, h float64, fill, stroke bool) {
	px, py := p.point(x, y+h)
	pw, ph := w*p.scale, h*p.scale
	if fill {
		p.dc.DrawRectangle(px, py, pw, ph)
		p.dc.SetRGB255(int(p.fill.R), int(p.fill.G), int(p.fill.B))
		p.dc.Fill()
	}
	if stroke {
		p.dc.DrawRectangle(px, py, pw, ph)
		p.dc.SetRGB255(int(p.stroke.R), int(p.stroke.G), int(p.stroke.B))
		p.dc.SetLineWidth(p.scale)
		p.dc.Stroke()
	}
}

func (p *PNG) SetFont(style FontStyle, size float64) {
	key := faceKey{style: style, size: size}
	face, ok := p.faces[key]
	if !ok {
		face = truetype.NewFace(p.fonts[style], &truetype.Options{
			Size:    size * p.scale,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		p.faces[key] = face
	}
	p.dc.SetFontFace(face)
}

func (p *PNG) DrawString(x, y float64, s string) {
	p.text(x, y, s, 0)
}

func (p *PNG) DrawCentredString(x, y float64, s string) {
	p.text(x, y, s, 0.5)
}

func (p *PNG) DrawRightString(x, y float64, s string) {
	p.text(x, y, s, 1)
}

// text draws s with its baseline at y, shifted left by ax times its width
func (p *PNG) text(x, y float64, s string, ax float64) {
	px, py := p.point(x, y)
	w, _ := p.dc.MeasureString(s)
	p.dc.SetRGB255(0, 0, 0)
	p.dc.DrawString(s, px-ax*w, py)
}

// point converts page coordinates to pixel coordinates
func (p *PNG) point(x, y float64) (float64, float64) {
	return x * p.scale, (p.height - y) * p.scale
}

func (p *PNG) Save(w io.Writer) error {
	if err := p.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("png: %w", err)
	}
	return nil
}
