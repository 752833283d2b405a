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

// Package annot provides types for working with the stored state of PDF
// annotations, independent of any particular PDF reader or writer.
//
// The central type is the [Annot] interface, which gives access to the
// attributes of a single annotation (rectangle, colors, border, rotation,
// and the normal appearance stream) through the small set of operations
// needed for appearance stream generation.  The package
// [seehuhn.de/go/annot/appearance] uses this interface to regenerate
// appearance streams, and [seehuhn.de/go/annot/memdoc] provides an
// in-memory implementation for testing and for synthesising documents
// from scratch.
package annot
