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
	"fmt"
	"strings"

	"seehuhn.de/go/annot"
)

// Role selects whether a color is used for filling or for stroking.
type Role int

// The valid color roles.
const (
	Fill Role = iota
	Stroke
)

// ErrColorLength indicates that a color array does not have 0, 1, 3 or
// 4 components.
const ErrColorLength = annot.Error("invalid color array length")

// ColorOperator returns the content stream fragment which installs col
// as the current fill or stroke color, for example "0.5 g" or
// "1 0 0 RG".  The number of components selects the color space:
// 1 for DeviceGray, 3 for DeviceRGB and 4 for DeviceCMYK.  An empty
// color yields an empty string, every other length is an error
// wrapping [ErrColorLength].
func ColorOperator(col []float64, role Role) (string, error) {
	var op string
	switch len(col) {
	case 0:
		return "", nil
	case 1:
		op = "g"
	case 3:
		op = "rg"
	case 4:
		op = "k"
	default:
		return "", fmt.Errorf("%w: %d", ErrColorLength, len(col))
	}
	if role == Stroke {
		op = strings.ToUpper(op)
	}

	b := &strings.Builder{}
	for _, x := range col {
		b.WriteString(num(x))
		b.WriteByte(' ')
	}
	b.WriteString(op)
	return b.String(), nil
}

// SetFillColor sets the color to use for filling operations.
//
// This implements the PDF graphics operators "g", "rg" and "k".
func (w *Writer) SetFillColor(col []float64) {
	w.setColor(col, Fill)
}

// SetStrokeColor sets the color to use for stroking operations.
//
// This implements the PDF graphics operators "G", "RG" and "K".
func (w *Writer) SetStrokeColor(col []float64) {
	w.setColor(col, Stroke)
}

func (w *Writer) setColor(col []float64, role Role) {
	if w.Err != nil {
		return
	}
	op, err := ColorOperator(col, role)
	if err != nil {
		w.Err = err
		return
	}
	if op == "" {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, op)
}
