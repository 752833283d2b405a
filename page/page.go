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

// Package page derives the transform between stored page coordinates
// and displayed coordinates from a page's rotation value.
package page

import (
	"seehuhn.de/go/annot/matrix"
	"seehuhn.de/go/annot/rect"
)

// Page describes the page-level state the appearance engine needs.
type Page struct {
	// Rotation is the page's /Rotate value in degrees.  Values are
	// interpreted via [NormalizeRotation].
	Rotation int

	// MediaBox is the page's media box.
	MediaBox rect.Rect

	// Base maps media/user space to the un-rotated box, with the box
	// corner at the origin.  It is supplied by the document layer.
	Base matrix.Matrix
}

// NormalizeRotation reduces a /Rotate value into the range [0, 360).
// Values that are not multiples of 90 map to 0.
func NormalizeRotation(deg int) int {
	for deg < 0 {
		deg += 360
	}
	for deg >= 360 {
		deg -= 360
	}
	if deg%90 != 0 {
		return 0
	}
	return deg
}

// RotationMatrix maps the un-rotated box to the displayed, rotated box,
// keeping the box corner at the origin.
func (p Page) RotationMatrix() matrix.Matrix {
	w := p.MediaBox.Width()
	h := p.MediaBox.Height()
	switch NormalizeRotation(p.Rotation) {
	case 90:
		return matrix.Matrix{0, 1, -1, 0, h, 0}
	case 180:
		return matrix.Matrix{-1, 0, 0, -1, w, h}
	case 270:
		return matrix.Matrix{0, -1, 1, 0, 0, w}
	}
	return matrix.Identity
}

// DerotationMatrix maps displayed coordinates back to the canonical
// un-rotated frame.  It is the inverse of [Page.RotationMatrix].
func (p Page) DerotationMatrix() matrix.Matrix {
	w := p.MediaBox.Width()
	h := p.MediaBox.Height()
	switch NormalizeRotation(p.Rotation) {
	case 90:
		return matrix.Matrix{0, -1, 1, 0, 0, h}
	case 180:
		return matrix.Matrix{-1, 0, 0, -1, w, h}
	case 270:
		return matrix.Matrix{0, 1, -1, 0, w, 0}
	}
	return matrix.Identity
}

// TransformationMatrix maps media/user space to displayed space.  For
// rotated pages this is Base followed by the rotation about the box.
func (p Page) TransformationMatrix() matrix.Matrix {
	if NormalizeRotation(p.Rotation) == 0 {
		return p.Base
	}
	return p.Base.Mul(p.RotationMatrix())
}
