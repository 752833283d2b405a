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

package memdoc

import (
	"bytes"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annot"
	"seehuhn.de/go/annot/content"
	"seehuhn.de/go/annot/matrix"
)

// RegenerateAppearance rebuilds the normal appearance stream from the
// stored annotation attributes.  Annotation types the document layer
// cannot draw keep their existing appearance.
//
// Rebuilding installs a fresh stream: the bounding box is reset to the
// annotation rectangle and the appearance matrix to the identity.
// Callers which need the old matrix must read it before calling this
// method.
func (a *Annot) RegenerateAppearance() error {
	var body []byte
	var err error
	switch a.typ {
	case annot.TypeSquare:
		body, err = a.squareAppearance()
	case annot.TypeCircle:
		body, err = a.circleAppearance()
	case annot.TypeLine, annot.TypeInk, annot.TypePolyLine:
		body, err = a.polylineAppearance(false)
	case annot.TypePolygon:
		body, err = a.polylineAppearance(true)
	case annot.TypeRedact:
		body, err = a.redactAppearance()
	case annot.TypeFreeText:
		body, err = a.freeTextAppearance()
	default:
		return nil
	}
	if err != nil {
		return err
	}
	a.ap = &Stream{
		BBox:   a.rect,
		Matrix: matrix.Identity,
		Body:   body,
	}
	return nil
}

// strokeColor returns the stroke color, defaulting to black.
func (a *Annot) strokeColor() []float64 {
	if len(a.stroke) > 0 {
		return a.stroke
	}
	return []float64{0, 0, 0}
}

func corner(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// squareAppearance draws the annotation rectangle, inset by half the
// line width so that the border stays inside.
func (a *Annot) squareAppearance() ([]byte, error) {
	buf := &bytes.Buffer{}
	w := content.NewWriter(buf)

	lw := a.border.Width
	hasStroke := lw > 0
	hasFill := len(a.fill) > 0

	if hasStroke {
		w.SetLineWidth(lw)
		w.SetStrokeColor(a.strokeColor())
	}
	if hasFill {
		w.SetFillColor(a.fill)
	}
	if hasStroke || hasFill {
		r := a.rect
		w.Rectangle(r.X0+lw/2, r.Y0+lw/2, r.Width()-lw, r.Height()-lw)
		switch {
		case hasStroke && hasFill:
			w.FillAndStroke()
		case hasFill:
			w.Fill()
		default:
			w.Stroke()
		}
	}
	return buf.Bytes(), w.Err
}

// circleAppearance draws an oval inscribed into the annotation
// rectangle.
func (a *Annot) circleAppearance() ([]byte, error) {
	buf := &bytes.Buffer{}
	w := content.NewWriter(buf)

	lw := a.border.Width
	hasStroke := lw > 0
	hasFill := len(a.fill) > 0

	if hasStroke {
		w.SetLineWidth(lw)
		w.SetStrokeColor(a.strokeColor())
	}
	if hasFill {
		w.SetFillColor(a.fill)
	}
	if hasStroke || hasFill {
		r := a.rect.Expand(-lw / 2)
		w.Oval(corner(r.X0, r.Y0), corner(r.X1, r.Y0),
			corner(r.X1, r.Y1), corner(r.X0, r.Y1))
		switch {
		case hasStroke && hasFill:
			w.CloseFillAndStroke()
		case hasFill:
			w.Fill()
		default:
			w.CloseAndStroke()
		}
	}
	return buf.Bytes(), w.Err
}

// polylineAppearance strokes the stored vertex path.  For closed
// shapes the final stroke also closes the path.
func (a *Annot) polylineAppearance(closed bool) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := content.NewWriter(buf)

	lw := a.border.Width
	if lw <= 0 {
		lw = 1
	}
	w.SetLineWidth(lw)
	w.SetStrokeColor(a.strokeColor())

	if len(a.vertices) >= 2 {
		w.MoveTo(a.vertices[0].X, a.vertices[0].Y)
		for _, v := range a.vertices[1:] {
			w.LineTo(v.X, v.Y)
		}
	}
	if closed {
		w.CloseAndStroke()
	} else {
		w.Stroke()
	}
	return buf.Bytes(), w.Err
}

// redactAppearance outlines the annotation rectangle in red.  The
// stream has a fixed shape of six lines: the color command, the four
// corner path commands, and the paint command.
func (a *Annot) redactAppearance() ([]byte, error) {
	buf := &bytes.Buffer{}
	w := content.NewWriter(buf)

	r := a.rect
	w.SetStrokeColor([]float64{1, 0, 0})
	w.MoveTo(r.X0, r.Y0)
	w.LineTo(r.X1, r.Y0)
	w.LineTo(r.X1, r.Y1)
	w.LineTo(r.X0, r.Y1)
	w.CloseAndStroke()
	return buf.Bytes(), w.Err
}

// freeTextAppearance typesets the annotation text, one line per Tj
// command, using the font and color from the /DA string.
func (a *Annot) freeTextAppearance() ([]byte, error) {
	buf := &bytes.Buffer{}
	w := content.NewWriter(buf)

	da := annot.ParseDefaultAppearance(a.da)
	if da.Size <= 0 {
		da.Size = 12
	}
	if da.Font == "" {
		da.Font = "Helv"
	}
	leading := 1.2 * da.Size

	w.TextStart()
	if len(da.Color) > 0 {
		w.SetFillColor(da.Color)
	}
	w.TextSetFont(da.Font, da.Size)
	for i, line := range strings.Split(a.contents, "\n") {
		if i == 0 {
			w.TextFirstLine(2, a.rect.Height()-leading)
		} else {
			w.TextFirstLine(0, -leading)
		}
		w.TextShowRaw(line)
	}
	w.TextEnd()
	return buf.Bytes(), w.Err
}
