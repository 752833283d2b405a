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

// Package rect implements rectangles and quadrilaterals as immutable
// values which transform under affine matrices.
package rect

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annot/matrix"
)

// The coordinate bounds of the infinite rectangle.  These are the values
// MuPDF uses, so that rectangles read from existing documents keep their
// meaning.
const (
	minInf = -2147483648
	maxInf = 2147483520
)

// Rect is an axis-aligned rectangle, given by two opposite corners
// (X0, Y0) and (X1, Y1).  A valid rectangle has X0 <= X1 and Y0 <= Y1.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Infinite returns the infinite rectangle.
func Infinite() Rect {
	return Rect{minInf, minInf, maxInf, maxInf}
}

// IsInfinite reports whether rect is the infinite rectangle.
func (r Rect) IsInfinite() bool {
	return r == Infinite()
}

// IsEmpty reports whether the rectangle encloses no area.
func (r Rect) IsEmpty() bool {
	return r.X0 >= r.X1 || r.Y0 >= r.Y1
}

// IsValid reports whether the corners of the rectangle are ordered.
func (r Rect) IsValid() bool {
	return r.X0 <= r.X1 && r.Y0 <= r.Y1
}

// Normalized returns the rectangle with flipped corners repaired.
func (r Rect) Normalized() Rect {
	if r.X0 > r.X1 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y0 > r.Y1 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

// Width returns the width of the rectangle, or 0 if the rectangle is not
// valid.
func (r Rect) Width() float64 {
	return math.Max(0, r.X1-r.X0)
}

// Height returns the height of the rectangle, or 0 if the rectangle is
// not valid.
func (r Rect) Height() float64 {
	return math.Max(0, r.Y1-r.Y0)
}

// Center returns the midpoint of the diagonal.
func (r Rect) Center() vec.Vec2 {
	return vec.Vec2{X: (r.X0 + r.X1) / 2, Y: (r.Y0 + r.Y1) / 2}
}

// Contains reports whether the point p lies inside the rectangle or on
// its boundary.
func (r Rect) Contains(p vec.Vec2) bool {
	return p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1
}

// Extend enlarges the rectangle to also cover other.  Empty and invalid
// arguments are ignored, an infinite rectangle on either side gives an
// infinite result.
func (r Rect) Extend(other Rect) Rect {
	if r.IsInfinite() || other.IsInfinite() {
		return Infinite()
	}
	if other.IsEmpty() {
		return r
	}
	if r.IsEmpty() {
		return other
	}
	return Rect{
		X0: math.Min(r.X0, other.X0),
		Y0: math.Min(r.Y0, other.Y0),
		X1: math.Max(r.X1, other.X1),
		Y1: math.Max(r.Y1, other.Y1),
	}
}

// ExtendVec enlarges the rectangle to also cover the point p.
func (r Rect) ExtendVec(p vec.Vec2) Rect {
	if r.IsInfinite() {
		return r
	}
	return Rect{
		X0: math.Min(r.X0, p.X),
		Y0: math.Min(r.Y0, p.Y),
		X1: math.Max(r.X1, p.X),
		Y1: math.Max(r.Y1, p.Y),
	}
}

// Intersect returns the largest rectangle covered by both arguments.
// The result may be empty.
func (r Rect) Intersect(other Rect) Rect {
	if r.IsInfinite() {
		return other
	}
	if other.IsInfinite() {
		return r
	}
	return Rect{
		X0: math.Max(r.X0, other.X0),
		Y0: math.Max(r.Y0, other.Y0),
		X1: math.Min(r.X1, other.X1),
		Y1: math.Min(r.Y1, other.Y1),
	}
}

// Shift moves the rectangle by the vector (dx, dy).
func (r Rect) Shift(dx, dy float64) Rect {
	return Rect{r.X0 + dx, r.Y0 + dy, r.X1 + dx, r.Y1 + dy}
}

// Expand grows the rectangle by d in all four directions.  The infinite
// rectangle is unchanged.
func (r Rect) Expand(d float64) Rect {
	if r.IsInfinite() {
		return r
	}
	return Rect{r.X0 - d, r.Y0 - d, r.X1 + d, r.Y1 + d}
}

// Transform returns the smallest rectangle covering the image of the
// four corners under M.  The infinite rectangle is unchanged.
func (r Rect) Transform(M matrix.Matrix) Rect {
	if r.IsInfinite() {
		return r
	}
	return r.Quad().Transform(M).Rect()
}

// Quad returns the four corners of the rectangle.  Corner names follow
// MuPDF's convention of a downward y axis: UL is (X0, Y0), UR is
// (X1, Y0), LL is (X0, Y1) and LR is (X1, Y1).
func (r Rect) Quad() Quad {
	return Quad{
		UL: vec.Vec2{X: r.X0, Y: r.Y0},
		UR: vec.Vec2{X: r.X1, Y: r.Y0},
		LL: vec.Vec2{X: r.X0, Y: r.Y1},
		LR: vec.Vec2{X: r.X1, Y: r.Y1},
	}
}

// Morph transforms the corners of the rectangle by M while keeping the
// pivot point p fixed.
func (r Rect) Morph(p vec.Vec2, M matrix.Matrix) Quad {
	if r.IsInfinite() {
		return Infinite().Quad()
	}
	return r.Quad().Morph(p, M)
}

// NearlyEqual reports whether the corner coordinates of two rectangles
// differ by less than eps.
func (r Rect) NearlyEqual(other Rect, eps float64) bool {
	return (math.Abs(r.X0-other.X0) < eps &&
		math.Abs(r.Y0-other.Y0) < eps &&
		math.Abs(r.X1-other.X1) < eps &&
		math.Abs(r.Y1-other.Y1) < eps)
}

func (r Rect) String() string {
	return fmt.Sprintf("[%.2f %.2f %.2f %.2f]", r.X0, r.Y0, r.X1, r.Y1)
}
