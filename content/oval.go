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

package content

import "seehuhn.de/go/geom/vec"

// kappa is the control point distance for approximating a quarter
// circle by a cubic Bezier curve.
const kappa = 0.55228474983

// Oval appends an oval to the current path, inscribed into the
// parallelogram with corners p1, p2, p3, p4 (in circular order).  The
// path starts at the midpoint of the edge from p1 to p4 and consists
// of four Bezier arcs meeting at the edge midpoints.
func (w *Writer) Oval(p1, p2, p3, p4 vec.Vec2) {
	ml := lerp(p1, p4, 0.5)
	mo := lerp(p1, p2, 0.5)
	mr := lerp(p2, p3, 0.5)
	mu := lerp(p4, p3, 0.5)

	ol1 := lerp(ml, p1, kappa)
	ol2 := lerp(mo, p1, kappa)
	or1 := lerp(mo, p2, kappa)
	or2 := lerp(mr, p2, kappa)
	ur1 := lerp(mr, p3, kappa)
	ur2 := lerp(mu, p3, kappa)
	ul1 := lerp(mu, p4, kappa)
	ul2 := lerp(ml, p4, kappa)

	w.MoveTo(ml.X, ml.Y)
	w.CurveTo(ol1.X, ol1.Y, ol2.X, ol2.Y, mo.X, mo.Y)
	w.CurveTo(or1.X, or1.Y, or2.X, or2.Y, mr.X, mr.Y)
	w.CurveTo(ur1.X, ur1.Y, ur2.X, ur2.Y, mu.X, mu.Y)
	w.CurveTo(ul1.X, ul1.Y, ul2.X, ul2.Y, ml.X, ml.Y)
}

// lerp interpolates between a and b.
func lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}
