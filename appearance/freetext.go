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

	"seehuhn.de/go/annot"
	"seehuhn.de/go/annot/content"
)

// rebuildFreeText patches the appearance stream of a FreeText
// annotation.
//
// Only the text object of the regenerated base appearance is kept.  It
// is preceded by a clip path restricting drawing to the annotation
// rectangle; when the annotation is rotated by 90 or 270 degrees, or
// when the appearance matrix already contains a rotation, width and
// height of the clip rectangle change places.  A border color override
// or a fill color additionally draw the rectangle behind the text.
func rebuildFreeText(ap []byte, a annot.Annot, rot int, snap snapshot, opt *Options) []byte {
	if i := bytes.Index(ap, []byte("BT")); i >= 0 {
		if j := bytes.Index(ap, []byte("ET")); j >= 0 && j+2 > i {
			ap = ap[i : j+2]
		}
	}

	r := a.Rect()
	w, h := r.Width(), r.Height()
	if rot == 90 || rot == 270 || (snap.apnmat[1] != 0 && snap.apnmat[2] != 0) {
		w, h = h, w
	}

	clip := &bytes.Buffer{}
	cw := content.NewWriter(clip)
	cw.Rectangle(0, 0, w, h)
	cw.ClipNonZero()
	cw.EndPath()
	ap = append(clip.Bytes(), ap...)

	// draw the rectangle behind the text if a fill color or a border
	// color is given
	var borderCol []float64
	if opt.Set&OverrideBorderColor != 0 {
		borderCol = opt.BorderColor
	}
	hasFill := len(snap.fill) > 0
	hasStroke := len(borderCol) > 0

	if hasFill || hasStroke {
		paint := &bytes.Buffer{}
		pw := content.NewWriter(paint)
		if hasFill {
			pw.SetFillColor(snap.fill)
		}
		if hasStroke {
			pw.SetStrokeColor(borderCol)
			if snap.border.Width > 0 {
				pw.SetLineWidth(snap.border.Width)
			}
		}
		pw.Rectangle(0, 0, w, h)
		switch {
		case hasFill && hasStroke:
			pw.FillAndStroke()
		case hasFill:
			pw.Fill()
		default:
			pw.Stroke()
		}
		ap = append(paint.Bytes(), ap...)
	}

	return ap
}
