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

// Type identifies the subtype of an annotation.
type Type int

// The annotation subtypes defined by the PDF specification.
const (
	TypeText Type = iota
	TypeLink
	TypeFreeText
	TypeLine
	TypeSquare
	TypeCircle
	TypePolygon
	TypePolyLine
	TypeHighlight
	TypeUnderline
	TypeSquiggly
	TypeStrikeOut
	TypeRedact
	TypeStamp
	TypeCaret
	TypeInk
	TypePopup
	TypeFileAttachment
	TypeSound
	TypeMovie
	TypeRichMedia
	TypeWidget
	TypeScreen
	TypePrinterMark
	TypeTrapNet
	TypeWatermark
	Type3D
	TypeProjection

	// TypeUnknown is used for annotations with a subtype not listed
	// above.
	TypeUnknown Type = -1
)

var typeNames = []string{
	"Text",
	"Link",
	"FreeText",
	"Line",
	"Square",
	"Circle",
	"Polygon",
	"PolyLine",
	"Highlight",
	"Underline",
	"Squiggly",
	"StrikeOut",
	"Redact",
	"Stamp",
	"Caret",
	"Ink",
	"Popup",
	"FileAttachment",
	"Sound",
	"Movie",
	"RichMedia",
	"Widget",
	"Screen",
	"PrinterMark",
	"TrapNet",
	"Watermark",
	"3D",
	"Projection",
}

// String returns the PDF subtype name of t, e.g. "FreeText".
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Unknown"
	}
	return typeNames[t]
}

// TypeFromName returns the annotation type for the given PDF subtype
// name.  Unrecognised names map to [TypeUnknown].
func TypeFromName(name string) Type {
	for i, n := range typeNames {
		if n == name {
			return Type(i)
		}
	}
	return TypeUnknown
}

// Rotatable reports whether the appearance of annotations of type t
// follows the /Rotate entry of the annotation dictionary.
func (t Type) Rotatable() bool {
	switch t {
	case TypeCaret, TypeCircle, TypeFileAttachment, TypeInk, TypeLine,
		TypePolyLine, TypePolygon, TypeSquare, TypeStamp, TypeText:
		return true
	default:
		return false
	}
}

// NormalizeRotation reduces deg into the range [0, 360) and applies the
// constraints for annotations of type t: FreeText annotations only
// support multiples of 90 degrees, and any other value is replaced by
// zero.  The second return value reports whether annotations of type t
// honour a rotation value at all; if it is false, the returned angle
// is zero.
func (t Type) NormalizeRotation(deg int) (int, bool) {
	if !t.Rotatable() && t != TypeFreeText {
		return 0, false
	}
	for deg < 0 {
		deg += 360
	}
	for deg >= 360 {
		deg -= 360
	}
	if t == TypeFreeText && deg%90 != 0 {
		deg = 0
	}
	return deg, true
}

// LineEndingStyle describes the decoration drawn at the endpoints of
// line, polygon and polyline annotations.
type LineEndingStyle string

const (
	LineEndingStyleSquare       LineEndingStyle = "Square"
	LineEndingStyleCircle       LineEndingStyle = "Circle"
	LineEndingStyleDiamond      LineEndingStyle = "Diamond"
	LineEndingStyleOpenArrow    LineEndingStyle = "OpenArrow"
	LineEndingStyleClosedArrow  LineEndingStyle = "ClosedArrow"
	LineEndingStyleNone         LineEndingStyle = "None"
	LineEndingStyleButt         LineEndingStyle = "Butt"
	LineEndingStyleROpenArrow   LineEndingStyle = "ROpenArrow"
	LineEndingStyleRClosedArrow LineEndingStyle = "RClosedArrow"
	LineEndingStyleSlash        LineEndingStyle = "Slash"
)
