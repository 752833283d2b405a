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

// Error is a string error type used for simple error conditions.
type Error string

func (err Error) Error() string {
	return string(err)
}

const (
	// ErrNoAppearance indicates that an annotation has no normal
	// appearance stream.
	ErrNoAppearance = Error("annotation has no appearance stream")

	// ErrNotAStream indicates that the /AP/N entry of an annotation
	// refers to an object which is not a stream.
	ErrNotAStream = Error("appearance object is not a stream")
)
