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

// Package appearance regenerates the normal appearance streams of PDF
// annotations.
//
// The entry point is [Update]: given an annotation and a set of
// override options it rebuilds the appearance stream the way viewers
// expect it, patching the stream regenerated by the document layer
// with the decorations the document layer does not provide (crossed
// out redactions, free text borders, polygon fills, dash patterns,
// transparency and line ending symbols).
package appearance

import (
	"bytes"
	"math"

	"seehuhn.de/go/annot"
	"seehuhn.de/go/annot/content"
	"seehuhn.de/go/annot/matrix"
	"seehuhn.de/go/annot/rect"
)

// Override selects which fields of [Options] are applied.  Fields
// whose flag is not set keep the value stored in the annotation.
type Override uint32

// The valid override flags.
const (
	OverrideOpacity Override = 1 << iota
	OverrideBlendMode
	OverrideRotation
	OverrideFillColor
	OverrideBorderColor
	OverrideTextColor
	OverrideFontName
	OverrideFontSize
)

// Options modify the behaviour of [Update].  The zero value leaves the
// stored annotation state unchanged.
type Options struct {
	// Set selects which of the override fields below are applied.
	Set Override

	// Opacity replaces the stored constant opacity.  Values in the
	// range [0, 1) force a transparency graphics state into the
	// appearance stream.
	Opacity float64

	// BlendMode replaces the stored blend mode name.
	BlendMode string

	// Rotation replaces the stored annotation rotation, in degrees.
	// The value is normalised via [annot.Type.NormalizeRotation]; for
	// annotation types which do not honour rotation the field is
	// silently ignored.
	Rotation int

	// FillColor replaces the interior color.
	FillColor []float64

	// BorderColor is used by FreeText annotations to draw a border
	// around the text rectangle.
	BorderColor []float64

	// TextColor replaces the text color of FreeText annotations.
	TextColor []float64

	// FontName replaces the font of FreeText annotations.
	FontName string

	// FontSize replaces the font size of FreeText annotations.
	// Values <= 0 are ignored.
	FontSize float64

	// CrossOut draws two diagonals across Redact annotations.
	CrossOut bool
}

// snapshot holds the annotation state read at the start of [Update].
// The document layer's appearance regeneration must not perturb the
// patching steps, so all decisions below are based on this copy.
type snapshot struct {
	border  annot.Border
	stroke  []float64
	fill    []float64 // fill color override already resolved
	apnmat  matrix.Matrix
	opacity float64 // effective /CA value, override already resolved
}

// Update regenerates the normal appearance stream of a, applying the
// given overrides.
//
// The appearance stream is first rebuilt by the document layer from the
// stored annotation attributes, and then patched: Redact annotations
// can be crossed out and restroked, FreeText annotations are reduced to
// their text object plus clip and optional border, Polygon and PolyLine
// annotations have their final paint operator replaced according to the
// fill color, dash patterns and transparency are installed, and line
// ending symbols are appended.  Finally, for rotatable annotation
// types, a stored rotation is applied by morphing the annotation
// rectangle and the appearance matrix.
//
// Update does not roll back changes already committed when a later
// step fails.
func Update(a annot.Annot, opt *Options) error {
	if opt == nil {
		opt = &Options{}
	}
	typ := a.Type()

	// Check all override colors before any state is modified.
	for _, col := range [][]float64{opt.FillColor, opt.BorderColor, opt.TextColor} {
		if _, err := content.ColorOperator(col, content.Fill); err != nil {
			return err
		}
	}

	// Take a snapshot of the state which the document layer's
	// regeneration pass below must not disturb.
	snap := snapshot{
		border:  a.Border(),
		stroke:  a.Colors().Stroke,
		fill:    a.Colors().Fill,
		apnmat:  a.AppearanceMatrix(),
		opacity: a.Opacity(),
	}
	if opt.Set&OverrideFillColor != 0 {
		snap.fill = opt.FillColor
	}

	// normalize the rotation override
	rot := -1
	if opt.Set&OverrideRotation != 0 {
		if r, ok := typ.NormalizeRotation(opt.Rotation); ok {
			rot = r
		}
	}

	// resolve opacity and blend mode
	opacity := snap.opacity
	if opt.Set&OverrideOpacity != 0 {
		opacity = opt.Opacity
		snap.opacity = opacity
	}
	blend := a.BlendMode()
	if opt.Set&OverrideBlendMode != 0 {
		blend = opt.BlendMode
	}
	hasGS := opacity >= 0 && opacity < 1 || blend != ""

	// FreeText annotations draw their text using the /DA string, so
	// it must be refreshed before the appearance is regenerated.
	if typ == annot.TypeFreeText {
		updateDefaultAppearance(a, opt)
	}

	// Write back the non-appearance state and let the document layer
	// regenerate the base appearance.  Failure here aborts the whole
	// update.
	if opt.Set&OverrideFillColor != 0 {
		a.SetInteriorColor(opt.FillColor)
	}
	if rot != -1 {
		a.SetRotationKey(rot)
	}
	if opt.Set&OverrideOpacity != 0 {
		a.SetOpacityKey(opacity)
	}
	if opt.Set&OverrideBlendMode != 0 {
		a.SetBlendModeKey(blend)
	}
	if err := a.RegenerateAppearance(); err != nil {
		return err
	}
	if hasGS {
		if err := a.SetExtGState(opacity, blend); err != nil {
			return err
		}
	}

	bfill, err := content.ColorOperator(snap.fill, content.Fill)
	if err != nil {
		return err
	}
	bstroke, err := content.ColorOperator(snap.stroke, content.Stroke)
	if err != nil {
		return err
	}

	ap, err := a.AppearanceBytes()
	if err != nil {
		return err
	}

	updated := false

	// per-type stream rebuild
	switch typ {
	case annot.TypeRedact:
		ap, updated = rebuildRedact(ap, snap.border.Width, bstroke, opt.CrossOut)
	case annot.TypeFreeText:
		ap = rebuildFreeText(ap, a, rot, snap, opt)
		updated = true
	case annot.TypePolygon, annot.TypePolyLine:
		ap = rebuildPoly(ap, typ, bfill)
		updated = true
	}

	// install the dash pattern
	if len(snap.border.DashArray) > 0 {
		buf := &bytes.Buffer{}
		w := content.NewWriter(buf)
		w.SetLineDash(snap.border.DashArray, 0)
		ap = append(buf.Bytes(), ap...)
		if typ == annot.TypeLine {
			// dashing must not bleed into the line ending symbols
			ap = bytes.Replace(ap, []byte("\nS\n"), []byte("\nS\n[] 0 d\n"), 1)
		}
		updated = true
	}

	if hasGS {
		ap = append([]byte("/H gs\n"), ap...)
		updated = true
	}

	// isolate the stream from the graphics state of the surroundings
	wrapped := make([]byte, 0, len(ap)+5)
	wrapped = append(wrapped, 'q', '\n')
	wrapped = append(wrapped, ap...)
	wrapped = append(wrapped, '\n', 'Q', '\n')
	ap = wrapped

	// line ending symbols for Polygon and PolyLine annotations
	var newRect rect.Rect
	haveRect := false
	if typ == annot.TypePolygon || typ == annot.TypePolyLine {
		start, end, ok := a.LineEnds()
		if ok && (hasLineEnding(start) || hasLineEnding(end)) {
			d := 2 * math.Max(1, snap.border.Width)
			newRect = a.Rect().Expand(d)
			haveRect = true
			updated = true

			blocks, err := lineEndBlocks(a, start, end, snap)
			if err != nil {
				return err
			}
			ap = append(ap, blocks...)
		}
	}

	// commit the new stream, updating the rectangle first if the line
	// ending margin changed it
	if updated {
		if haveRect {
			a.SetRect(newRect)
			if err := a.SetAppearanceBytes(ap, true); err != nil {
				return err
			}
		} else {
			if err := a.SetAppearanceBytes(ap, false); err != nil {
				return err
			}
		}
	}

	return rotationEpilogue(a, typ, snap.apnmat)
}

// rotationEpilogue applies the stored annotation rotation by morphing
// the annotation rectangle about its center and adjusting the
// appearance matrix.  Only a fixed set of annotation types supports
// this; all others are left alone.
func rotationEpilogue(a annot.Annot, typ annot.Type, apnmat matrix.Matrix) error {
	if !typ.Rotatable() {
		return nil
	}
	rot := a.Rotation()
	if rot == -1 {
		return nil
	}

	r := a.Rect()
	center := r.Center()

	if rot == 0 {
		if apnmat.NearlyEqual(matrix.Identity, matrix.Epsilon) {
			return nil
		}
		// undo an earlier rotation
		inv, err := apnmat.Inv()
		if err != nil {
			return err
		}
		a.SetRect(r.Morph(center, inv).Rect())
		a.SetAppearanceMatrix(matrix.Identity)
		return nil
	}

	mat := matrix.Rotate(float64(rot))
	a.SetRect(r.Morph(center, mat).Rect())
	a.SetAppearanceMatrix(apnmat.Mul(mat))
	return nil
}

// updateDefaultAppearance rewrites the /DA string of a FreeText
// annotation, filling in defaults and applying the font and text color
// overrides.
func updateDefaultAppearance(a annot.Annot, opt *Options) {
	da := annot.ParseDefaultAppearance(a.DefaultAppearance())
	dirty := false
	if da.Size <= 0 {
		da.Size = 12
		dirty = true
	}
	if da.Font == "" {
		da.Font = "Helv"
		dirty = true
	}
	if opt.Set&OverrideTextColor != 0 {
		da.Color = opt.TextColor
		dirty = true
	}
	if opt.Set&OverrideFontName != 0 && opt.FontName != "" {
		da.Font = opt.FontName
		dirty = true
	}
	if opt.Set&OverrideFontSize != 0 && opt.FontSize > 0 {
		da.Size = opt.FontSize
		dirty = true
	}
	if dirty {
		a.SetDefaultAppearance(da.String())
	}
}

func hasLineEnding(style annot.LineEndingStyle) bool {
	return style != "" && style != annot.LineEndingStyleNone
}
