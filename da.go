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
	"strconv"
	"strings"

	"seehuhn.de/go/annot/internal/float"
)

// DefaultAppearance is the parsed form of the default appearance
// string (/DA) of a FreeText annotation.
type DefaultAppearance struct {
	// Font is the resource name of the font, without the leading
	// slash.
	Font string

	// Size is the font size in points.
	Size float64

	// Color is the text color.  Valid lengths are 1 (gray), 3 (RGB)
	// and 4 (CMYK); an empty slice means black.
	Color []float64
}

// ParseDefaultAppearance extracts the font name, font size and text
// color from a default appearance string.  Tokens which are not
// understood are ignored; missing information is left at the zero
// value.
func ParseDefaultAppearance(s string) DefaultAppearance {
	var da DefaultAppearance
	tok := strings.Fields(s)
	for i, t := range tok {
		switch t {
		case "Tf":
			if i >= 2 && strings.HasPrefix(tok[i-2], "/") {
				da.Font = tok[i-2][1:]
			}
			if i >= 1 {
				if x, err := strconv.ParseFloat(tok[i-1], 64); err == nil {
					da.Size = x
				}
			}
		case "g":
			if col, ok := parseNumbers(tok, i, 1); ok {
				da.Color = col
			}
		case "rg":
			if col, ok := parseNumbers(tok, i, 3); ok {
				da.Color = col
			}
		case "k":
			if col, ok := parseNumbers(tok, i, 4); ok {
				da.Color = col
			}
		}
	}
	return da
}

// parseNumbers reads the n tokens preceding position i as numbers.
func parseNumbers(tok []string, i, n int) ([]float64, bool) {
	if i < n {
		return nil, false
	}
	res := make([]float64, n)
	for j := range res {
		x, err := strconv.ParseFloat(tok[i-n+j], 64)
		if err != nil {
			return nil, false
		}
		res[j] = x
	}
	return res, true
}

// String formats d as a default appearance string, for example
// "0 0 0 rg /Helv 12 Tf".  Colors with an unsupported number of
// components are written as black.
func (d DefaultAppearance) String() string {
	var w strings.Builder
	var op string
	col := d.Color
	switch len(col) {
	case 1:
		op = "g"
	case 3:
		op = "rg"
	case 4:
		op = "k"
	default:
		col = []float64{0, 0, 0}
		op = "rg"
	}
	for _, x := range col {
		w.WriteString(float.Format(x, 4))
		w.WriteByte(' ')
	}
	w.WriteString(op)
	w.WriteString(" /")
	w.WriteString(d.Font)
	w.WriteByte(' ')
	w.WriteString(float.Format(d.Size, 4))
	w.WriteString(" Tf")
	return w.String()
}
