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

package appearance

import (
	"bytes"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annot"
	"seehuhn.de/go/annot/content"
	"seehuhn.de/go/annot/matrix"
)

// leParams holds the drawing parameters shared by all line ending
// symbols of one annotation.
type leParams struct {
	width   float64   // border line width
	stroke  []float64 // stroke color, never empty
	fill    []float64 // fill color, never empty
	opacity bool      // reference the transparency graphics state
}

// leGeom places one line ending symbol.  The terminal segment of the
// path has been rotated onto the x axis; L and R are the transformed
// segment ends, and im maps the horizontal frame back to the
// annotation's coordinates.
type leGeom struct {
	im    matrix.Matrix
	L, R  vec.Vec2
	d     float64 // symbol size
	atEnd bool    // symbol sits at R rather than L
}

// at returns the symbol location in the horizontal frame.
func (g leGeom) at() vec.Vec2 {
	if g.atEnd {
		return g.R
	}
	return g.L
}

// lineEndBlocks renders the line ending symbols for a Polygon or
// PolyLine annotation.  The returned bytes are self-contained
// content stream fragments which can be appended to the appearance
// stream.
func lineEndBlocks(a annot.Annot, start, end annot.LineEndingStyle, snap snapshot) ([]byte, error) {
	verts := a.Vertices()
	if len(verts) < 2 {
		return nil, nil
	}

	imat, err := a.Page().TransformationMatrix().Inv()
	if err != nil {
		return nil, err
	}

	par := leParams{
		width:   snap.border.Width,
		stroke:  snap.stroke,
		fill:    snap.fill,
		opacity: snap.opacity >= 0 && snap.opacity < 1,
	}
	if len(par.stroke) == 0 {
		par.stroke = []float64{0, 0, 0}
	}
	if len(par.fill) == 0 {
		par.fill = []float64{1, 1, 1}
	}

	var out []byte
	if hasLineEnding(start) {
		p1 := imat.ApplyVec(verts[0])
		p2 := imat.ApplyVec(verts[1])
		block, err := drawLineEnd(start, p1, p2, false, par)
		if err != nil {
			return nil, err
		}
		out = append(out, block...)
	}
	if hasLineEnding(end) {
		n := len(verts)
		p1 := imat.ApplyVec(verts[n-2])
		p2 := imat.ApplyVec(verts[n-1])
		block, err := drawLineEnd(end, p1, p2, true, par)
		if err != nil {
			return nil, err
		}
		out = append(out, block...)
	}
	return out, nil
}

// lePaint selects the operator which paints a symbol path.
type lePaint int

const (
	leCloseFillStroke lePaint = iota // "b"
	leCloseStroke                    // "s"
	leStroke                         // "S"
)

// drawLineEnd renders a single line ending symbol at one end of the
// segment from p1 to p2.  Unknown styles and segments without a usable
// direction give no output.
func drawLineEnd(style annot.LineEndingStyle, p1, p2 vec.Vec2, atEnd bool, par leParams) ([]byte, error) {
	m, ok := horMatrix(p1, p2)
	if !ok {
		return nil, nil
	}
	im, err := m.Inv()
	if err != nil {
		return nil, err
	}
	g := leGeom{
		im:    im,
		L:     m.ApplyVec(p1),
		R:     m.ApplyVec(p2),
		d:     2 * math.Max(1, par.width),
		atEnd: atEnd,
	}

	buf := &bytes.Buffer{}
	w := content.NewWriter(buf)
	w.PushGraphicsState()
	if par.opacity {
		w.SetExtGState("H")
	}

	var withFill bool
	var paint lePaint
	switch style {
	case annot.LineEndingStyleSquare:
		drawLEBox(w, g)
		withFill, paint = true, leCloseFillStroke
	case annot.LineEndingStyleCircle:
		drawLECircle(w, g)
		withFill, paint = true, leCloseFillStroke
	case annot.LineEndingStyleDiamond:
		drawLEDiamond(w, g)
		withFill, paint = true, leCloseFillStroke
	case annot.LineEndingStyleOpenArrow:
		drawLEArrow(w, g, g.d/2, false)
		withFill, paint = false, leStroke
	case annot.LineEndingStyleClosedArrow:
		drawLEArrow(w, g, g.d/2, false)
		withFill, paint = true, leCloseFillStroke
	case annot.LineEndingStyleButt:
		drawLEButt(w, g)
		withFill, paint = false, leCloseStroke
	case annot.LineEndingStyleROpenArrow:
		drawLEArrow(w, g, -g.d/3, true)
		withFill, paint = true, leStroke
	case annot.LineEndingStyleRClosedArrow:
		drawLEArrow(w, g, -2*g.d, true)
		withFill, paint = true, leCloseFillStroke
	case annot.LineEndingStyleSlash:
		drawLESlash(w, g)
		withFill, paint = false, leCloseStroke
	default:
		return nil, nil
	}

	w.SetLineWidth(par.width)
	w.SetStrokeColor(par.stroke)
	if withFill {
		w.SetFillColor(par.fill)
	}
	switch paint {
	case leCloseFillStroke:
		w.CloseFillAndStroke()
	case leCloseStroke:
		w.CloseAndStroke()
	case leStroke:
		w.Stroke()
	}
	w.PopGraphicsState()

	if w.Err != nil {
		return nil, w.Err
	}
	return buf.Bytes(), nil
}

// horMatrix computes the matrix which moves p1 to the origin and
// rotates the segment from p1 to p2 onto the positive x axis.  If the
// segment is too short to define a direction, ok is false.
func horMatrix(p1, p2 vec.Vec2) (m matrix.Matrix, ok bool) {
	d := p2.Sub(p1)
	length := d.Length()
	if length < matrix.Epsilon {
		return matrix.Matrix{}, false
	}
	s := d.Mul(1 / length)
	rot := matrix.Matrix{s.X, -s.Y, s.Y, s.X, 0, 0}
	return matrix.Translate(-p1.X, -p1.Y).Mul(rot), true
}

// moveTo and lineTo map a point from the horizontal frame back to
// annotation coordinates before emitting the path operator.

func moveTo(w *content.Writer, im matrix.Matrix, p vec.Vec2) {
	q := im.ApplyVec(p)
	w.MoveTo(q.X, q.Y)
}

func lineTo(w *content.Writer, im matrix.Matrix, p vec.Vec2) {
	q := im.ApplyVec(p)
	w.LineTo(q.X, q.Y)
}

// drawLEBox draws a square with edge length 2d centered on the symbol
// location.
func drawLEBox(w *content.Writer, g leGeom) {
	M := g.at()
	moveTo(w, g.im, vec.Vec2{X: M.X - g.d, Y: M.Y - g.d})
	lineTo(w, g.im, vec.Vec2{X: M.X + g.d, Y: M.Y - g.d})
	lineTo(w, g.im, vec.Vec2{X: M.X + g.d, Y: M.Y + g.d})
	lineTo(w, g.im, vec.Vec2{X: M.X - g.d, Y: M.Y + g.d})
}

// drawLECircle draws a circle with diameter 2d centered on the symbol
// location, as four Bezier arcs.
func drawLECircle(w *content.Writer, g leGeom) {
	M := g.at()
	p1 := g.im.ApplyVec(vec.Vec2{X: M.X - g.d, Y: M.Y - g.d})
	p2 := g.im.ApplyVec(vec.Vec2{X: M.X + g.d, Y: M.Y - g.d})
	p3 := g.im.ApplyVec(vec.Vec2{X: M.X + g.d, Y: M.Y + g.d})
	p4 := g.im.ApplyVec(vec.Vec2{X: M.X - g.d, Y: M.Y + g.d})
	w.Oval(p1, p2, p3, p4)
}

// drawLEDiamond draws a diamond connecting the edge midpoints of the
// square with edge length 2d centered on the symbol location.
func drawLEDiamond(w *content.Writer, g leGeom) {
	M := g.at()
	moveTo(w, g.im, vec.Vec2{X: M.X - g.d, Y: M.Y})
	lineTo(w, g.im, vec.Vec2{X: M.X, Y: M.Y - g.d})
	lineTo(w, g.im, vec.Vec2{X: M.X + g.d, Y: M.Y})
	lineTo(w, g.im, vec.Vec2{X: M.X, Y: M.Y + g.d})
}

// drawLEArrow draws an arrow head.  The tip is moved along the segment
// direction by offset (negative values pull it inward), and reverse
// flips the wings so that the arrow points back at the path.
func drawLEArrow(w *content.Writer, g leGeom, offset float64, reverse bool) {
	out := 1.0
	if !g.atEnd {
		out = -1
	}
	M := g.at()
	tip := vec.Vec2{X: M.X + out*offset, Y: M.Y}
	back := -out * 2 * g.d
	if reverse {
		back = out * 2 * g.d
	}
	moveTo(w, g.im, vec.Vec2{X: tip.X + back, Y: tip.Y - g.d})
	lineTo(w, g.im, tip)
	lineTo(w, g.im, vec.Vec2{X: tip.X + back, Y: tip.Y + g.d})
}

// drawLEButt draws a bar perpendicular to the segment.
func drawLEButt(w *content.Writer, g leGeom) {
	M := g.at()
	moveTo(w, g.im, vec.Vec2{X: M.X, Y: M.Y - g.d/2})
	lineTo(w, g.im, vec.Vec2{X: M.X, Y: M.Y + g.d/2})
}

// drawLESlash draws a bar inclined by 30 degrees against the segment
// normal.
func drawLESlash(w *content.Writer, g leGeom) {
	M := g.at()
	rw := 0.57735 * g.d // tan(30°)
	moveTo(w, g.im, vec.Vec2{X: M.X - rw, Y: M.Y - g.d})
	lineTo(w, g.im, vec.Vec2{X: M.X + rw, Y: M.Y + g.d})
}
