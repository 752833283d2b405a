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

package float

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		x         float64
		precision int
		want      string
	}{
		{0, 4, "0"},
		{1, 4, "1"},
		{0.5, 4, "0.5"},
		{-0.5, 4, "-0.5"},
		{1.25, 1, "1.2"},
		{100, 4, "100"},
		{0.10009, 4, "0.1001"},
		{2.5000001, 4, "2.5"},
		{-0.00001, 2, "0"},
		{1.0 / 3.0, 4, "0.3333"},
	}
	for _, test := range cases {
		got := Format(test.x, test.precision)
		if got != test.want {
			t.Errorf("Format(%g, %d) = %q, want %q",
				test.x, test.precision, got, test.want)
		}
	}
}

func TestRound(t *testing.T) {
	cases := []struct {
		x      float64
		digits int
		want   float64
	}{
		{1.23456, 2, 1.23},
		{-1.23456, 2, -1.23},
		{2, 4, 2},
		{0.1 + 0.2, 1, 0.3},
	}
	for _, test := range cases {
		got := Round(test.x, test.digits)
		if got != test.want {
			t.Errorf("Round(%g, %d) = %g, want %g",
				test.x, test.digits, got, test.want)
		}
	}
}
