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

	"github.com/google/go-cmp/cmp"
)

func TestParseDefaultAppearance(t *testing.T) {
	cases := []struct {
		in   string
		want DefaultAppearance
	}{
		{
			in:   "0 0 0 rg /Helv 12 Tf",
			want: DefaultAppearance{Font: "Helv", Size: 12, Color: []float64{0, 0, 0}},
		},
		{
			in:   "0.5 g /Helv 11.5 Tf",
			want: DefaultAppearance{Font: "Helv", Size: 11.5, Color: []float64{0.5}},
		},
		{
			in:   "1 0 0 0 k /F0 8 Tf",
			want: DefaultAppearance{Font: "F0", Size: 8, Color: []float64{1, 0, 0, 0}},
		},
		{
			in:   "/TiRo 0 Tf",
			want: DefaultAppearance{Font: "TiRo"},
		},
		{
			in:   "",
			want: DefaultAppearance{},
		},
		{ // unknown operators are skipped
			in:   "q 0 0 1 RG 1 0 0 rg /Helv 10 Tf Q",
			want: DefaultAppearance{Font: "Helv", Size: 10, Color: []float64{1, 0, 0}},
		},
		{ // malformed operands leave the color unset
			in:   "zero g /Helv 12 Tf",
			want: DefaultAppearance{Font: "Helv", Size: 12},
		},
	}
	for _, test := range cases {
		got := ParseDefaultAppearance(test.in)
		if d := cmp.Diff(test.want, got); d != "" {
			t.Errorf("ParseDefaultAppearance(%q) mismatch (-want +got):\n%s",
				test.in, d)
		}
	}
}

func TestFormatDefaultAppearance(t *testing.T) {
	cases := []struct {
		in   DefaultAppearance
		want string
	}{
		{
			in:   DefaultAppearance{Font: "Helv", Size: 12},
			want: "0 0 0 rg /Helv 12 Tf",
		},
		{
			in:   DefaultAppearance{Font: "Helv", Size: 12, Color: []float64{0.5}},
			want: "0.5 g /Helv 12 Tf",
		},
		{
			in:   DefaultAppearance{Font: "F1", Size: 9.5, Color: []float64{0, 0, 0, 1}},
			want: "0 0 0 1 k /F1 9.5 Tf",
		},
	}
	for _, test := range cases {
		if got := test.in.String(); got != test.want {
			t.Errorf("String() == %q, want %q", got, test.want)
		}
	}
}

func TestDefaultAppearanceRoundTrip(t *testing.T) {
	cases := []DefaultAppearance{
		{Font: "Helv", Size: 12, Color: []float64{0, 0, 0}},
		{Font: "TiRo", Size: 8.25, Color: []float64{0.5}},
		{Font: "F0", Size: 20, Color: []float64{0, 1, 0.5, 0}},
	}
	for _, da := range cases {
		got := ParseDefaultAppearance(da.String())
		if d := cmp.Diff(da, got); d != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", d)
		}
	}
}
