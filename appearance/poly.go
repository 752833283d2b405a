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

package appearance

import (
	"bytes"

	"seehuhn.de/go/annot"
)

// rebuildPoly replaces the final paint operator of a Polygon or
// PolyLine appearance stream.
//
// A Polygon with a fill color is closed, filled and stroked; without
// one it is only closed and stroked.  A PolyLine is always just
// stroked, the path stays open either way.
func rebuildPoly(ap []byte, typ annot.Type, bfill string) []byte {
	ap = bytes.TrimRight(ap, "\n")
	lines := bytes.Split(ap, []byte("\n"))
	if len(lines) > 0 {
		lines = lines[:len(lines)-1]
	}

	out := bytes.Join(lines, []byte("\n"))
	out = append(out, '\n')
	if typ == annot.TypePolygon {
		if bfill != "" {
			out = append(out, bfill...)
			out = append(out, '\n', 'b')
		} else {
			out = append(out, 's')
		}
	} else {
		out = append(out, 'S')
	}
	return out
}
