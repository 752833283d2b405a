// seehuhn.de/go/annot - a library for regenerating PDF annotation appearances
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package content writes PDF content streams, restricted to the small
// operator vocabulary needed for annotation appearance streams.
package content

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"seehuhn.de/go/annot/internal/float"
)

// Writer writes a PDF content stream.
//
// The first error encountered is stored in the Err field, and all
// subsequent method calls are silently ignored.
type Writer struct {
	Content io.Writer
	Err     error

	qDepth int
}

// NewWriter allocates a new Writer.
func NewWriter(out io.Writer) *Writer {
	return &Writer{Content: out}
}

// num formats a coordinate or parameter value for the content stream.
func num(x float64) string {
	return float.Format(x, 4)
}

// MoveTo starts a new path at the given coordinates.
//
// This implements the PDF graphics operator "m".
func (w *Writer) MoveTo(x, y float64) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, num(x), num(y), "m")
}

// LineTo appends a straight line segment to the current path.
//
// This implements the PDF graphics operator "l".
func (w *Writer) LineTo(x, y float64) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, num(x), num(y), "l")
}

// CurveTo appends a cubic Bezier curve to the current path.
//
// This implements the PDF graphics operator "c".
func (w *Writer) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content,
		num(x1), num(y1), num(x2), num(y2), num(x3), num(y3), "c")
}

// Rectangle appends a rectangle to the current path as a closed
// subpath.
//
// This implements the PDF graphics operator "re".
func (w *Writer) Rectangle(x, y, width, height float64) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, num(x), num(y), num(width), num(height), "re")
}

// Stroke strokes the current path.
//
// This implements the PDF graphics operator "S".
func (w *Writer) Stroke() {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "S")
}

// CloseAndStroke closes and strokes the current path.
//
// This implements the PDF graphics operator "s".
func (w *Writer) CloseAndStroke() {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "s")
}

// Fill fills the current path, using the nonzero winding number rule.
// Any subpaths that are open are implicitly closed before being filled.
//
// This implements the PDF graphics operator "f".
func (w *Writer) Fill() {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "f")
}

// FillAndStroke fills and strokes the current path.
//
// This implements the PDF graphics operator "B".
func (w *Writer) FillAndStroke() {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "B")
}

// CloseFillAndStroke closes, fills and strokes the current path.
//
// This implements the PDF graphics operator "b".
func (w *Writer) CloseFillAndStroke() {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "b")
}

// EndPath ends the path without filling and stroking it.
// This is for use after the [Writer.ClipNonZero] method.
//
// This implements the PDF graphics operator "n".
func (w *Writer) EndPath() {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "n")
}

// ClipNonZero sets the current clipping path using the nonzero winding
// number rule.
//
// This implements the PDF graphics operator "W".
func (w *Writer) ClipNonZero() {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "W")
}

// SetLineWidth sets the line width.
//
// This implements the PDF graphics operator "w".
func (w *Writer) SetLineWidth(width float64) {
	if w.Err != nil {
		return
	}
	if width < 0 {
		w.Err = fmt.Errorf("SetLineWidth: negative width %f", width)
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, num(width), "w")
}

// SetLineDash sets the line dash pattern.
//
// This implements the PDF graphics operator "d".
func (w *Writer) SetLineDash(pattern []float64, phase float64) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprint(w.Content, "[")
	if w.Err != nil {
		return
	}
	sep := ""
	for _, x := range pattern {
		_, w.Err = fmt.Fprint(w.Content, sep, num(x))
		if w.Err != nil {
			return
		}
		sep = " "
	}
	_, w.Err = fmt.Fprint(w.Content, "] ", num(phase), " d\n")
}

// SetExtGState applies the named graphics state parameter dictionary
// from the ExtGState resource dictionary.
//
// This implements the PDF graphics operator "gs".
func (w *Writer) SetExtGState(name string) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "/"+name, "gs")
}

// PushGraphicsState saves the current graphics state.
//
// This implements the PDF graphics operator "q".
func (w *Writer) PushGraphicsState() {
	if w.Err != nil {
		return
	}
	w.qDepth++
	_, w.Err = fmt.Fprintln(w.Content, "q")
}

// PopGraphicsState restores the previous graphics state.
//
// This implements the PDF graphics operator "Q".
func (w *Writer) PopGraphicsState() {
	if w.Err != nil {
		return
	}
	if w.qDepth == 0 {
		w.Err = errors.New("PopGraphicsState: no matching PushGraphicsState")
		return
	}
	w.qDepth--
	_, w.Err = fmt.Fprintln(w.Content, "Q")
}

// TextStart begins a text object.
//
// This implements the PDF graphics operator "BT".
func (w *Writer) TextStart() {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "BT")
}

// TextEnd ends a text object.
//
// This implements the PDF graphics operator "ET".
func (w *Writer) TextEnd() {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "ET")
}

// TextSetFont selects the font in the resource dictionary and sets the
// font size.
//
// This implements the PDF graphics operator "Tf".
func (w *Writer) TextSetFont(name string, size float64) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "/"+name, num(size), "Tf")
}

// TextFirstLine moves to the start of the next line of text, offset
// from the start of the current line by (dx, dy).
//
// This implements the PDF graphics operator "Td".
func (w *Writer) TextFirstLine(dx, dy float64) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, num(dx), num(dy), "Td")
}

// TextShowRaw shows a string, without any adjustment of the glyph
// positions.
//
// This implements the PDF graphics operator "Tj".
func (w *Writer) TextShowRaw(s string) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "("+escapeString(s)+") Tj")
}

// escapeString quotes the characters with special meaning inside PDF
// literal strings.
func escapeString(s string) string {
	r := strings.NewReplacer(
		"\\", `\\`,
		"(", `\(`,
		")", `\)`,
		"\r", `\r`,
		"\n", `\n`,
	)
	return r.Replace(s)
}
