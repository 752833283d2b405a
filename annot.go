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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annot/matrix"
	"seehuhn.de/go/annot/page"
	"seehuhn.de/go/annot/rect"
)

// Border describes the line width and dash pattern used for drawing the
// border of an annotation.
type Border struct {
	// Width is the border width in default user space units.
	Width float64

	// Style is the border style name.  The styles relevant for
	// appearance generation are "S" (solid) and "D" (dashed).
	Style string

	// DashArray defines a pattern of dashes and gaps for drawing the
	// border when Style is "D".
	DashArray []float64
}

// Colors holds the colors of an annotation.  Valid color lengths are
// 0 (no color), 1 (gray), 3 (RGB) and 4 (CMYK).
type Colors struct {
	// Stroke is the color used for the annotation outline.
	//
	// This corresponds to the /C entry in the annotation dictionary.
	Stroke []float64

	// Fill is the interior color.
	//
	// This corresponds to the /IC entry in the annotation dictionary.
	Fill []float64
}

// An Annot gives access to the stored state of a single PDF annotation.
//
// The methods mirror the document-level operations needed for
// appearance stream generation.  The package
// [seehuhn.de/go/annot/memdoc] contains an in-memory implementation.
type Annot interface {
	// Type returns the annotation subtype.
	Type() Type

	// Rect returns the annotation rectangle in default user space.
	Rect() rect.Rect

	// SetRect replaces the annotation rectangle.
	SetRect(rect.Rect)

	// Border returns the effective border settings, merged from the
	// /BS and /Border entries of the annotation dictionary.
	Border() Border

	// Colors returns the stroke and interior colors.
	Colors() Colors

	// SetInteriorColor replaces the interior color (/IC).
	SetInteriorColor(col []float64)

	// Vertices returns the defining vertices of the annotation
	// (/Vertices, /L or /InkList), transformed to displayed page
	// coordinates.  The result is nil for annotation types without
	// vertices.
	Vertices() []vec.Vec2

	// LineEnds returns the line ending styles for the start and end
	// point of the annotation.  If the annotation has no /LE entry,
	// ok is false.
	LineEnds() (start, end LineEndingStyle, ok bool)

	// Opacity returns the constant opacity (/CA) of the annotation.
	// If the annotation dictionary has no /CA entry, the result is -1.
	Opacity() float64

	// SetOpacityKey sets the /CA entry of the annotation dictionary.
	SetOpacityKey(opacity float64)

	// BlendMode returns the blend mode name (/BM), or "" if the entry
	// is absent.
	BlendMode() string

	// SetBlendModeKey sets the /BM entry of the annotation dictionary.
	SetBlendModeKey(name string)

	// Rotation returns the annotation rotation (/Rotate) in degrees,
	// or -1 if the entry is absent.
	Rotation() int

	// SetRotationKey sets the /Rotate entry of the annotation
	// dictionary.
	SetRotationKey(deg int)

	// DefaultAppearance returns the default appearance string (/DA)
	// used by FreeText annotations, or "" if the entry is absent.
	DefaultAppearance() string

	// SetDefaultAppearance sets the /DA entry of the annotation
	// dictionary.
	SetDefaultAppearance(da string)

	// RegenerateAppearance rebuilds the normal appearance stream from
	// the stored annotation attributes, the way a PDF viewer would
	// when it encounters a dirty annotation.  Annotation types the
	// document layer cannot draw keep their existing appearance.
	RegenerateAppearance() error

	// SetExtGState installs a graphics state parameter dictionary
	// named /H in the resources of the normal appearance stream.  The
	// dictionary carries the given opacity (/CA and /ca, omitted if
	// negative) and blend mode (/BM, omitted if empty).
	//
	// The error is [ErrNoAppearance] if the annotation has no normal
	// appearance stream, and [ErrNotAStream] if the appearance object
	// is not a stream.
	SetExtGState(opacity float64, blendMode string) error

	// AppearanceBytes returns the decoded contents of the normal
	// appearance stream (/AP/N).
	//
	// The error is [ErrNoAppearance] if the annotation has no normal
	// appearance stream, and [ErrNotAStream] if the appearance object
	// is not a stream.
	AppearanceBytes() ([]byte, error)

	// SetAppearanceBytes replaces the contents of the normal
	// appearance stream.  If resizeBBox is true, the /BBox entry of
	// the stream is recomputed from the annotation rectangle.
	SetAppearanceBytes(data []byte, resizeBBox bool) error

	// AppearanceMatrix returns the /Matrix entry of the normal
	// appearance stream, or the identity matrix if the entry is
	// absent.
	AppearanceMatrix() matrix.Matrix

	// SetAppearanceMatrix sets the /Matrix entry of the normal
	// appearance stream.
	SetAppearanceMatrix(m matrix.Matrix)

	// Page returns the geometry of the page containing the annotation.
	Page() page.Page
}
