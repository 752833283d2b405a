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

package page

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/annot/matrix"
	"seehuhn.de/go/annot/rect"
)

func TestNormalizeRotation(t *testing.T) {
	cases := []struct {
		deg, want int
	}{
		{0, 0},
		{90, 90},
		{180, 180},
		{270, 270},
		{360, 0},
		{450, 90},
		{-90, 270},
		{-360, 0},
		{45, 0},
		{91, 0},
	}
	for _, test := range cases {
		if got := NormalizeRotation(test.deg); got != test.want {
			t.Errorf("NormalizeRotation(%d) = %d, want %d",
				test.deg, got, test.want)
		}
		if got := NormalizeRotation(test.deg + 360); got != NormalizeRotation(test.deg) {
			t.Errorf("NormalizeRotation(%d+360) != NormalizeRotation(%d)",
				test.deg, test.deg)
		}
	}
}

// TestRotationCorners checks that the rotation matrix keeps the box
// corner at the origin.
func TestRotationCorners(t *testing.T) {
	box := rect.Rect{X0: 0, Y0: 0, X1: 612, Y1: 792}
	cases := []struct {
		rot  int
		want rect.Rect
	}{
		{0, box},
		{90, rect.Rect{X0: 0, Y0: 0, X1: 792, Y1: 612}},
		{180, box},
		{270, rect.Rect{X0: 0, Y0: 0, X1: 792, Y1: 612}},
	}
	for _, test := range cases {
		t.Run(fmt.Sprintf("rot%d", test.rot), func(t *testing.T) {
			p := Page{Rotation: test.rot, MediaBox: box}
			got := box.Transform(p.RotationMatrix())
			if d := cmp.Diff(test.want, got); d != "" {
				t.Error(d)
			}
		})
	}
}

// TestDerotation checks that rotation and derotation matrices are
// inverses of each other.
func TestDerotation(t *testing.T) {
	box := rect.Rect{X0: 0, Y0: 0, X1: 595, Y1: 842}
	for _, rot := range []int{0, 90, 180, 270} {
		t.Run(fmt.Sprintf("rot%d", rot), func(t *testing.T) {
			p := Page{Rotation: rot, MediaBox: box}
			got := p.RotationMatrix().Mul(p.DerotationMatrix())
			if !got.NearlyEqual(matrix.Identity, matrix.Epsilon) {
				t.Errorf("rotation * derotation = %v", got)
			}
			got = p.DerotationMatrix().Mul(p.RotationMatrix())
			if !got.NearlyEqual(matrix.Identity, matrix.Epsilon) {
				t.Errorf("derotation * rotation = %v", got)
			}
		})
	}
}

func TestTransformationMatrix(t *testing.T) {
	box := rect.Rect{X0: 0, Y0: 0, X1: 612, Y1: 792}
	base := matrix.Matrix{1, 0, 0, -1, 0, 792} // flip, top-left origin

	p := Page{Rotation: 0, MediaBox: box, Base: base}
	if got := p.TransformationMatrix(); got != base {
		t.Errorf("rotation 0: got %v, want %v", got, base)
	}

	p.Rotation = 90
	want := base.Mul(p.RotationMatrix())
	if got := p.TransformationMatrix(); got != want {
		t.Errorf("rotation 90: got %v, want %v", got, want)
	}

	// a point fixed under base must land where the rotation sends it
	x, y := p.TransformationMatrix().Apply(0, 792)
	if x != 792 || y != 0 {
		t.Errorf("corner mapped to (%g, %g), want (792, 0)", x, y)
	}
}
