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

package rect

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annot/matrix"
)

// Quad is a general quadrilateral, given by its four corners.  The
// corner names follow the same convention as [Rect.Quad].
type Quad struct {
	UL, UR, LL, LR vec.Vec2
}

// Rect returns the smallest rectangle covering the quad.
func (q Quad) Rect() Rect {
	return Rect{
		X0: math.Min(math.Min(q.UL.X, q.UR.X), math.Min(q.LL.X, q.LR.X)),
		Y0: math.Min(math.Min(q.UL.Y, q.UR.Y), math.Min(q.LL.Y, q.LR.Y)),
		X1: math.Max(math.Max(q.UL.X, q.UR.X), math.Max(q.LL.X, q.LR.X)),
		Y1: math.Max(math.Max(q.UL.Y, q.UR.Y), math.Max(q.LL.Y, q.LR.Y)),
	}
}

// Transform applies M to the four corners.
func (q Quad) Transform(M matrix.Matrix) Quad {
	return Quad{
		UL: M.ApplyVec(q.UL),
		UR: M.ApplyVec(q.UR),
		LL: M.ApplyVec(q.LL),
		LR: M.ApplyVec(q.LR),
	}
}

// Morph transforms the corners of the quad by M while keeping the pivot
// point p fixed.
func (q Quad) Morph(p vec.Vec2, M matrix.Matrix) Quad {
	T := matrix.Translate(-p.X, -p.Y).Mul(M).Mul(matrix.Translate(p.X, p.Y))
	return q.Transform(T)
}

// IsEmpty reports whether the quad encloses no area.
func (q Quad) IsEmpty() bool {
	return q.Rect().IsEmpty()
}

// IsConvex reports whether the polygon UL, UR, LR, LL turns in a single
// direction at every corner.
func (q Quad) IsConvex() bool {
	corners := [4]vec.Vec2{q.UL, q.UR, q.LR, q.LL}
	var sign float64
	for i := range corners {
		a := corners[i]
		b := corners[(i+1)%4]
		c := corners[(i+2)%4]
		cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
		if cross == 0 {
			continue
		}
		if sign == 0 {
			sign = cross
		} else if sign*cross < 0 {
			return false
		}
	}
	return true
}
