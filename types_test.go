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

package annot

import (
	"testing"
)

func TestTypeNames(t *testing.T) {
	for typ := TypeText; typ <= TypeProjection; typ++ {
		name := typ.String()
		if name == "" || name == "Unknown" {
			t.Errorf("type %d has no name", int(typ))
		}
		if got := TypeFromName(name); got != typ {
			t.Errorf("TypeFromName(%q) == %d, want %d", name, got, typ)
		}
	}
	if got := TypeFromName("Nonsense"); got != TypeUnknown {
		t.Errorf("TypeFromName(Nonsense) == %d, want TypeUnknown", got)
	}
	if got := TypeUnknown.String(); got != "Unknown" {
		t.Errorf("TypeUnknown.String() == %q", got)
	}
}

func TestRotatable(t *testing.T) {
	rotatable := []Type{
		TypeCaret, TypeCircle, TypeFileAttachment, TypeInk, TypeLine,
		TypePolyLine, TypePolygon, TypeSquare, TypeStamp, TypeText,
	}
	isRotatable := make(map[Type]bool)
	for _, typ := range rotatable {
		isRotatable[typ] = true
	}
	for typ := TypeText; typ <= TypeProjection; typ++ {
		if got := typ.Rotatable(); got != isRotatable[typ] {
			t.Errorf("%s.Rotatable() == %t, want %t", typ, got, isRotatable[typ])
		}
	}
}

func TestNormalizeRotation(t *testing.T) {
	cases := []struct {
		typ  Type
		deg  int
		want int
		ok   bool
	}{
		{TypeLine, 0, 0, true},
		{TypeLine, 45, 45, true},
		{TypeLine, 360, 0, true},
		{TypeLine, 405, 45, true},
		{TypeSquare, -30, 330, true},
		{TypeSquare, -360, 0, true},

		// FreeText only supports multiples of 90 degrees.
		{TypeFreeText, 45, 0, true},
		{TypeFreeText, 90, 90, true},
		{TypeFreeText, -90, 270, true},
		{TypeFreeText, 180, 180, true},
		{TypeFreeText, 91, 0, true},

		// these types ignore rotation
		{TypeHighlight, 90, 0, false},
		{TypeRedact, 180, 0, false},
		{TypeWidget, 42, 0, false},
	}
	for _, test := range cases {
		got, ok := test.typ.NormalizeRotation(test.deg)
		if got != test.want || ok != test.ok {
			t.Errorf("%s.NormalizeRotation(%d) == (%d, %t), want (%d, %t)",
				test.typ, test.deg, got, ok, test.want, test.ok)
		}
	}
}

func TestNormalizeRotationPeriodic(t *testing.T) {
	for _, typ := range []Type{TypeLine, TypeFreeText} {
		for deg := -360; deg < 360; deg += 30 {
			a, _ := typ.NormalizeRotation(deg)
			b, _ := typ.NormalizeRotation(deg + 360)
			if a != b {
				t.Errorf("%s: NormalizeRotation(%d) == %d, NormalizeRotation(%d) == %d",
					typ, deg, a, deg+360, b)
			}
			if a < 0 || a >= 360 {
				t.Errorf("%s: NormalizeRotation(%d) == %d, out of range",
					typ, deg, a)
			}
		}
	}
}
