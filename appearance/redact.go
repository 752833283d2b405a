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

	"seehuhn.de/go/annot/internal/float"
)

// rebuildRedact patches the appearance stream of a Redact annotation.
//
// The regenerated base appearance outlines the annotation rectangle:
// one prologue line, four corner path commands and a paint operator.
// With crossOut set, the paint operator is replaced by commands which
// also draw the two diagonals.  Independent of that, a positive border
// width replaces all line width commands in the stream, and a stroke
// color replaces all "RG" commands.
func rebuildRedact(ap []byte, width float64, bstroke string, crossOut bool) ([]byte, bool) {
	lines := bytes.Split(bytes.TrimRight(ap, "\n"), []byte("\n"))
	updated := false

	if crossOut && len(lines) == 6 {
		lines = lines[:5]
		LL, LR, UR, UL := lines[1], lines[2], lines[3], lines[4]
		lines = append(lines, LR, LL, UR, LL, UL, []byte("S"))
		updated = true
	}

	if width > 0 || bstroke != "" {
		var ntab [][]byte
		if width > 0 {
			ntab = append(ntab, []byte(float.Format(width, 4)+" w"))
		}
		for _, line := range lines {
			if bytes.HasSuffix(line, []byte("w")) {
				continue
			}
			if bytes.HasSuffix(line, []byte("RG")) && bstroke != "" {
				line = []byte(bstroke)
			}
			ntab = append(ntab, line)
		}
		lines = ntab
		updated = true
	}

	if !updated {
		return ap, false
	}
	return bytes.Join(lines, []byte("\n")), true
}
