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

import (
	"bytes"
	"errors"
	"testing"
)

func TestColorOperator(t *testing.T) {
	cases := []struct {
		col  []float64
		role Role
		want string
	}{
		{nil, Fill, ""},
		{[]float64{}, Stroke, ""},
		{[]float64{0.5}, Fill, "0.5 g"},
		{[]float64{0.5}, Stroke, "0.5 G"},
		{[]float64{1, 0, 0}, Stroke, "1 0 0 RG"},
		{[]float64{0.2, 0.3, 0.4}, Fill, "0.2 0.3 0.4 rg"},
		{[]float64{0, 0, 0, 1}, Fill, "0 0 0 1 k"},
		{[]float64{0, 0.5, 1, 0}, Stroke, "0 0.5 1 0 K"},
	}
	for _, test := range cases {
		got, err := ColorOperator(test.col, test.role)
		if err != nil {
			t.Errorf("ColorOperator(%v, %d): %v", test.col, test.role, err)
			continue
		}
		if got != test.want {
			t.Errorf("ColorOperator(%v, %d) == %q, want %q",
				test.col, test.role, got, test.want)
		}
	}
}

func TestColorOperatorLength(t *testing.T) {
	for _, n := range []int{2, 5, 6} {
		col := make([]float64, n)
		_, err := ColorOperator(col, Fill)
		if !errors.Is(err, ErrColorLength) {
			t.Errorf("length %d: got error %v, want ErrColorLength", n, err)
		}
	}
}

func TestSetColorError(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.SetFillColor([]float64{1, 2})
	if !errors.Is(w.Err, ErrColorLength) {
		t.Errorf("got error %v, want ErrColorLength", w.Err)
	}

	// once the error is set, no further output is produced
	w.Stroke()
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
}
