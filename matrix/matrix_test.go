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

package matrix

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestIdentity(t *testing.T) {
	for i, A := range testMatrices {
		t.Run(fmt.Sprintf("mat%d", i), func(t *testing.T) {
			B := A.Mul(Identity)
			if d := cmp.Diff(A, B); d != "" {
				t.Error(d)
			}
			C := Identity.Mul(A)
			if d := cmp.Diff(A, C); d != "" {
				t.Error(d)
			}
		})
	}
}

// TestInverse1 checks that a matrix multiplied by its inverse is the
// identity matrix.
func TestInverse1(t *testing.T) {
	for i, A := range testMatrices {
		t.Run(fmt.Sprintf("mat%d", i), func(t *testing.T) {
			Ainv, err := A.Inv()
			if err != nil {
				t.Fatal(err)
			}

			B := Ainv.Mul(A)
			if d := cmp.Diff(Identity, B, cmpopts.EquateApprox(1e-6, 1e-6)); d != "" {
				t.Error(d)
			}

			B = A.Mul(Ainv)
			if d := cmp.Diff(Identity, B, cmpopts.EquateApprox(1e-6, 1e-6)); d != "" {
				t.Error(d)
			}
		})
	}
}

// TestInverse2 checks that the inverse of the inverse of a matrix is the
// original matrix.
func TestInverse2(t *testing.T) {
	for i, A := range testMatrices {
		t.Run(fmt.Sprintf("mat%d", i), func(t *testing.T) {
			Ainv, err := A.Inv()
			if err != nil {
				t.Fatal(err)
			}
			B, err := Ainv.Inv()
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(A, B, cmpopts.EquateApprox(1e-6, 1e-6)); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestInverseSingular(t *testing.T) {
	singular := []Matrix{
		{},
		{1, 2, 2, 4, 0, 0},
		{0, 0, 0, 0, 5, 7},
	}
	for i, A := range singular {
		t.Run(fmt.Sprintf("mat%d", i), func(t *testing.T) {
			_, err := A.Inv()
			if err != ErrNotInvertible {
				t.Errorf("got error %v, want ErrNotInvertible", err)
			}
		})
	}
}

// TestRotateInverse checks that rotations by theta and -theta cancel.
func TestRotateInverse(t *testing.T) {
	angles := []float64{0, 1, 30, 45, 60, 90, 123.456, 180, 270, 300, 359}
	for _, theta := range angles {
		t.Run(fmt.Sprintf("%g", theta), func(t *testing.T) {
			A := Rotate(theta).Mul(Rotate(-theta))
			if !A.NearlyEqual(Identity, Epsilon) {
				t.Errorf("Rotate(%g)*Rotate(%g) = %v", theta, -theta, A)
			}
		})
	}
}

func TestRotateSnap(t *testing.T) {
	cases := []struct {
		deg  float64
		want Matrix
	}{
		{0, Identity},
		{90, Matrix{0, 1, -1, 0, 0, 0}},
		{180, Matrix{-1, 0, 0, -1, 0, 0}},
		{270, Matrix{0, -1, 1, 0, 0, 0}},
		{360, Identity},
		{450, Matrix{0, 1, -1, 0, 0, 0}},
		{-90, Matrix{0, -1, 1, 0, 0, 0}},
		{90 + 1e-6, Matrix{0, 1, -1, 0, 0, 0}},
		{180 - 1e-6, Matrix{-1, 0, 0, -1, 0, 0}},
	}
	for _, test := range cases {
		got := Rotate(test.deg)
		if got != test.want {
			t.Errorf("Rotate(%g) = %v, want %v", test.deg, got, test.want)
		}
	}
}

func TestPreOps(t *testing.T) {
	for i, A := range testMatrices {
		t.Run(fmt.Sprintf("mat%d", i), func(t *testing.T) {
			if d := cmp.Diff(Rotate(33).Mul(A), A.PreRotate(33)); d != "" {
				t.Error(d)
			}
			if d := cmp.Diff(Scale(2, 3).Mul(A), A.PreScale(2, 3)); d != "" {
				t.Error(d)
			}
			if d := cmp.Diff(Shear(2, 3).Mul(A), A.PreShear(2, 3)); d != "" {
				t.Error(d)
			}
			if d := cmp.Diff(Translate(-1, 7).Mul(A), A.PreTranslate(-1, 7)); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestPreShear(t *testing.T) {
	got := Identity.PreShear(2, 3)
	want := Matrix{1, 3, 2, 1, 0, 0}
	if got != want {
		t.Errorf("Identity.PreShear(2, 3) = %v, want %v", got, want)
	}
}

func TestApply(t *testing.T) {
	cases := []struct {
		M            Matrix
		x, y         float64
		wantX, wantY float64
	}{
		{Identity, 3, 4, 3, 4},
		{Rotate(90), 1, 0, 0, 1},
		{Rotate(180), 1, 2, -1, -2},
		{Translate(5, 7), 1, 1, 6, 8},
		{Scale(2, 3), 1, 1, 2, 3},
		{Shear(1, 0), 0, 1, 1, 1},
	}
	for i, test := range cases {
		gotX, gotY := test.M.Apply(test.x, test.y)
		if d := cmp.Diff([]float64{test.wantX, test.wantY}, []float64{gotX, gotY},
			cmpopts.EquateApprox(1e-12, 1e-12)); d != "" {
			t.Errorf("case %d: %s", i, d)
		}
	}
}

func TestIsRectilinear(t *testing.T) {
	cases := []struct {
		M    Matrix
		want bool
	}{
		{Identity, true},
		{Rotate(90), true},
		{Rotate(180), true},
		{Rotate(45), false},
		{Scale(2, -3), true},
		{Shear(1, 0), false},
	}
	for i, test := range cases {
		if got := test.M.IsRectilinear(); got != test.want {
			t.Errorf("case %d: IsRectilinear = %t, want %t", i, got, test.want)
		}
	}
}

var testMatrices = []Matrix{
	Identity,
	{2, 3, 4, 5, 6, 7},
	Translate(-0.5, 0.5),
	Translate(0, 1),
	Translate(1, 2),
	Scale(0.5, 0.5),
	Scale(2, 1),
	Scale(3, 4),
	Scale(-1, -1),
	Shear(1, 2),
	Rotate(0.1),
	Rotate(30),
	Rotate(90),
	Rotate(180),
}
