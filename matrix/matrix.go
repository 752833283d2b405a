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

// Package matrix implements the planar affine transformations used for
// annotation geometry.
package matrix

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Epsilon is the tolerance used when comparing matrix coefficients and
// when snapping rotation angles to multiples of 90 degrees.
const Epsilon = 1e-5

// ErrNotInvertible is returned by [Matrix.Inv] when the determinant of
// the matrix is zero.
var ErrNotInvertible = errors.New("matrix is not invertible")

// Matrix contains a PDF transformation matrix.
// The elements are stored in the same order as for the "cm" operator.
//
// If M = [a b c d e f] is a [Matrix], then M corresponds to the following
// 3x3 matrix:
//
//	/ a b 0 \
//	| c d 0 |
//	\ e f 1 /
//
// A vector (x, y, 1) is transformed by M into
//
//	(x y 1) * M = (a*x+c*y+e, b*x+d*y+f, 1)
type Matrix [6]float64

// Identity is the identity transformation.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

// Translate moves the origin of the coordinate system.
func Translate(dx, dy float64) Matrix {
	return Matrix{1, 0, 0, 1, dx, dy}
}

// Scale scales the coordinate system.
func Scale(xScale, yScale float64) Matrix {
	return Matrix{xScale, 0, 0, yScale, 0, 0}
}

// Shear slants the coordinate system, with h the horizontal and v the
// vertical shearing factor.
func Shear(h, v float64) Matrix {
	return Matrix{1, v, h, 1, 0, 0}
}

// Rotate rotates the coordinate system counter-clockwise by the given
// angle (in degrees).  The angle is reduced into the range [0, 360).
// Angles within [Epsilon] of  0, 90, 180 or 270 degrees use exact
// coefficients, so that repeated right-angle rotations compose without
// rounding drift.
func Rotate(deg float64) Matrix {
	deg = normAngle(deg)
	switch {
	case math.Abs(deg) < Epsilon:
		return Identity
	case math.Abs(deg-90) < Epsilon:
		return Matrix{0, 1, -1, 0, 0, 0}
	case math.Abs(deg-180) < Epsilon:
		return Matrix{-1, 0, 0, -1, 0, 0}
	case math.Abs(deg-270) < Epsilon:
		return Matrix{0, -1, 1, 0, 0, 0}
	}
	phi := deg / 180 * math.Pi
	c := math.Cos(phi)
	s := math.Sin(phi)
	return Matrix{c, s, -s, c, 0, 0}
}

// normAngle reduces an angle in degrees into the range [0, 360).
func normAngle(deg float64) float64 {
	for deg < 0 {
		deg += 360
	}
	for deg >= 360 {
		deg -= 360
	}
	return deg
}

// Apply applies the transformation matrix to the given vector.
func (M Matrix) Apply(x, y float64) (float64, float64) {
	return x*M[0] + y*M[2] + M[4], x*M[1] + y*M[3] + M[5]
}

// ApplyVec applies the transformation matrix to the given point.
func (M Matrix) ApplyVec(p vec.Vec2) vec.Vec2 {
	x, y := M.Apply(p.X, p.Y)
	return vec.Vec2{X: x, Y: y}
}

// Mul multiplies two transformation matrices and returns the result.
// The result is equivalent to first applying M and then B.
func (M Matrix) Mul(B Matrix) Matrix {
	// / M0 M1 0 \  / B0 B1 0 \   / M0*B0+M1*B2    M0*B1+M1*B3    0 \
	// | M2 M3 0 |  | B2 B3 0 | = | M2*B0+M3*B2    M2*B1+M3*B3    0 |
	// \ M4 M5 1 /  \ B4 B5 1 /   \ M4*B0+M5*B2+B4 M4*B1+M5*B3+B5 1 /
	return Matrix{
		M[0]*B[0] + M[1]*B[2],
		M[0]*B[1] + M[1]*B[3],
		M[2]*B[0] + M[3]*B[2],
		M[2]*B[1] + M[3]*B[3],
		M[4]*B[0] + M[5]*B[2] + B[4],
		M[4]*B[1] + M[5]*B[3] + B[5],
	}
}

// Inv computes the inverse of the transformation matrix M.
func (M Matrix) Inv() (Matrix, error) {
	det := M[0]*M[3] - M[1]*M[2]
	if det == 0 {
		return Matrix{}, ErrNotInvertible
	}
	invDet := 1 / det
	return Matrix{
		M[3] * invDet, -M[1] * invDet,
		-M[2] * invDet, M[0] * invDet,
		(M[2]*M[5] - M[3]*M[4]) * invDet,
		(M[1]*M[4] - M[0]*M[5]) * invDet,
	}, nil
}

// PreRotate returns the matrix with a rotation by deg degrees applied
// before M.  The angle is snapped like in [Rotate].
func (M Matrix) PreRotate(deg float64) Matrix {
	return Rotate(deg).Mul(M)
}

// PreScale returns the matrix with a scaling applied before M.
func (M Matrix) PreScale(sx, sy float64) Matrix {
	return Scale(sx, sy).Mul(M)
}

// PreShear returns the matrix with a shearing applied before M.
func (M Matrix) PreShear(h, v float64) Matrix {
	return Shear(h, v).Mul(M)
}

// PreTranslate returns the matrix with a translation applied before M.
func (M Matrix) PreTranslate(tx, ty float64) Matrix {
	return Translate(tx, ty).Mul(M)
}

// NearlyEqual reports whether all coefficients of M and B differ by
// less than eps.
func (M Matrix) NearlyEqual(B Matrix, eps float64) bool {
	for i := range M {
		if math.Abs(M[i]-B[i]) >= eps {
			return false
		}
	}
	return true
}

// IsRectilinear reports whether the matrix maps axis-parallel lines to
// axis-parallel lines.
func (M Matrix) IsRectilinear() bool {
	return (math.Abs(M[1]) < Epsilon && math.Abs(M[2]) < Epsilon) ||
		(math.Abs(M[0]) < Epsilon && math.Abs(M[3]) < Epsilon)
}
