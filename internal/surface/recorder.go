package surface

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Op identifies a recorded drawing command
type Op string

const (
	OpFillColor   Op = "fill-color"
	OpStrokeColor Op = "stroke-color"
	OpRect        Op = "rect"
	OpFont        Op = "font"
	OpText        Op = "text"
)

// Align is the horizontal alignment of a text command
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Command is one drawing call together with the state it was issued under
type Command struct {
	Op     Op
	X, Y   float64
	W, H   float64
	Fill   bool
	Stroke bool
	Color  Color
	Style  FontStyle
	Size   float64
	Align  Align
	Text   string

	// Fill color and font active when a rect or text command was issued
	FillColor Color
}

// Recorder is an in-memory Surface that keeps every command in order
type Recorder struct {
	width, height float64
	fill          Color
	stroke        Color
	style         FontStyle
	size          float64
	commands      []Command
}

// NewRecorder creates a recorder for a page of the given size
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{
		width:  width,
		height: height,
		fill:   Black,
		stroke: Black,
	}
}

func (r *Recorder) Size() (float64, float64) {
	return r.width, r.height
}

func (r *Recorder) SetFillColor(c Color) {
	r.fill = c
	r.commands = append(r.commands, Command{Op: OpFillColor, Color: c})
}

func (r *Recorder) SetStrokeColor(c Color) {
	r.stroke = c
	r.commands = append(r.commands, Command{Op: OpStrokeColor, Color: c})
}

func (r *Recorder) Rect(x, y, w, h float64, fill, stroke bool) {
	r.commands = append(r.commands, Command{
		Op: OpRect, X: x, Y: y, W: w, H: h,
		Fill: fill, Stroke: stroke,
		FillColor: r.fill, Color: r.stroke,
	})
}

func (r *Recorder) SetFont(style FontStyle, size float64) {
	r.style = style
	r.size = size
	r.commands = append(r.commands, Command{Op: OpFont, Style: style, Size: size})
}

func (r *Recorder) DrawString(x, y float64, s string) {
	r.text(x, y, s, AlignLeft)
}

func (r *Recorder) DrawCentredString(x, y float64, s string) {
	r.text(x, y, s, AlignCenter)
}

func (r *Recorder) DrawRightString(x, y float64, s string) {
	r.text(x, y, s, AlignRight)
}

func (r *Recorder) text(x, y float64, s string, align Align) {
	r.commands = append(r.commands, Command{
		Op: OpText, X: x, Y: y, Text: s, Align: align,
		Style: r.style, Size: r.size, FillColor: r.fill,
	})
}

// Commands returns the recorded commands in issue order
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Rects returns only the rectangle commands
func (r *Recorder) Rects() []Command {
	return r.filter(OpRect)
}

// Texts returns only the text commands
func (r *Recorder) Texts() []Command {
	return r.filter(OpText)
}

func (r *Recorder) filter(op Op) []Command {
	var out []Command
	for _, c := range r.commands {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Save writes one line per command
func (r *Recorder) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, c := range r.commands {
		if _, err := fmt.Fprintln(bw, c.line()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Fingerprint is a BLAKE2b-256 digest of the command stream. Two renders with
// identical structure produce the same fingerprint.
func (r *Recorder) Fingerprint() string {
	h, _ := blake2b.New256(nil)
	for _, c := range r.commands {
		fmt.Fprintln(h, c.line())
	}
	return hex.EncodeToString(h.Sum(nil))
}

func (c Command) line() string {
	var b strings.Builder
	b.WriteString(string(c.Op))
	switch c.Op {
	case OpFillColor, OpStrokeColor:
		fmt.Fprintf(&b, " %d,%d,%d", c.Color.R, c.Color.G, c.Color.B)
	case OpRect:
		fmt.Fprintf(&b, " %.2f %.2f %.2f %.2f fill=%t stroke=%t", c.X, c.Y, c.W, c.H, c.Fill, c.Stroke)
	case OpFont:
		fmt.Fprintf(&b, " %s %.1f", c.Style, c.Size)
	case OpText:
		fmt.Fprintf(&b, " %s %.2f %.2f %q", c.Align, c.X, c.Y, c.Text)
	}
	return b.String()
}
