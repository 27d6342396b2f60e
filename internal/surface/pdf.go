package surface

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

const pdfFontFamily = "Helvetica"

// PDF draws onto a single landscape A4 page using the core Helvetica fonts
type PDF struct {
	pdf           *fpdf.Fpdf
	width, height float64
	tr            func(string) string
}

// NewPDF creates a one-page A4 landscape document. A non-zero createdAt pins
// the document's creation date.
func NewPDF(createdAt time.Time) *PDF {
	pdf := fpdf.New("L", "pt", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCatalogSort(true)
	if !createdAt.IsZero() {
		pdf.SetCreationDate(createdAt)
		pdf.SetModificationDate(createdAt)
	}
	pdf.AddPage()
	pdf.SetFont(pdfFontFamily, "", 10)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetTextColor(0, 0, 0)

	w, h := pdf.GetPageSize()
	return &PDF{
		pdf:    pdf,
		width:  w,
		height: h,
		// Core fonts are cp1252 encoded; labels such as "Mié" need translating.
		tr: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (p *PDF) Size() (float64, float64) {
	return p.width, p.height
}

func (p *PDF) SetFillColor(c Color) {
	p.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
}

func (p *PDF) SetStrokeColor(c Color) {
	p.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
}

func (p *PDF) Rect(x, y, w, h float64, fill, stroke bool) {
	var style string
	switch {
	case fill && stroke:
		style = "FD"
	case fill:
		style = "F"
	case stroke:
		style = "D"
	default:
		return
	}
	p.pdf.Rect(x, p.height-y-h, w, h, style)
}

func (p *PDF) SetFont(style FontStyle, size float64) {
	s := ""
	if style == Bold {
		s = "B"
	}
	p.pdf.SetFont(pdfFontFamily, s, size)
}

func (p *PDF) DrawString(x, y float64, s string) {
	p.pdf.Text(x, p.height-y, p.tr(s))
}

func (p *PDF) DrawCentredString(x, y float64, s string) {
	t := p.tr(s)
	p.pdf.Text(x-p.pdf.GetStringWidth(t)/2, p.height-y, t)
}

func (p *PDF) DrawRightString(x, y float64, s string) {
	t := p.tr(s)
	p.pdf.Text(x-p.pdf.GetStringWidth(t), p.height-y, t)
}

// Save writes the document. Any error recorded while drawing is returned
// instead of output.
func (p *PDF) Save(w io.Writer) error {
	if err := p.pdf.Error(); err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	if err := p.pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	return nil
}
