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

// Package memdoc provides an in-memory implementation of the document
// layer used by the appearance engine.
//
// A [Document] holds pages, a [Page] holds annotations.  The [Annot]
// type implements [seehuhn.de/go/annot.Annot], storing the annotation
// attributes and the normal appearance stream directly in memory.  The
// package is used for testing and by command line tools; it contains
// no PDF file parsing.
package memdoc

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annot"
	"seehuhn.de/go/annot/matrix"
	"seehuhn.de/go/annot/page"
	"seehuhn.de/go/annot/rect"
)

// Document is an in-memory collection of pages.
type Document struct {
	pages []*Page
}

// New allocates an empty document.
func New() *Document {
	return &Document{}
}

// Pages returns the pages of the document, in order.
func (d *Document) Pages() []*Page {
	return d.pages
}

// AddPage appends a page with the given media box and rotation to the
// document.  The base transform puts the origin into the corner of the
// media box and flips the y axis, so that displayed coordinates have
// the origin at the top left.
func (d *Document) AddPage(mediaBox rect.Rect, rotation int) *Page {
	p := &Page{
		doc: d,
		geom: page.Page{
			Rotation: rotation,
			MediaBox: mediaBox,
			Base:     matrix.Matrix{1, 0, 0, -1, -mediaBox.X0, mediaBox.Y1},
		},
	}
	d.pages = append(d.pages, p)
	return p
}

// Page holds the annotations of one page together with the page
// geometry.
type Page struct {
	doc    *Document
	geom   page.Page
	annots []*Annot
}

// Geometry returns the page-level state used by the appearance engine.
func (p *Page) Geometry() page.Page {
	return p.geom
}

// Annots returns the annotations of the page, in order.
func (p *Page) Annots() []*Annot {
	return p.annots
}

// AddAnnot appends an annotation of the given type to the page.  The
// border defaults to a solid line of width 1, opacity and rotation
// default to absent.
func (p *Page) AddAnnot(typ annot.Type, r rect.Rect) *Annot {
	a := &Annot{
		page:     p,
		typ:      typ,
		rect:     r,
		border:   annot.Border{Width: 1, Style: "S"},
		opacity:  -1,
		rotation: -1,
	}
	p.annots = append(p.annots, a)
	return a
}

// Annot stores the state of a single annotation.
type Annot struct {
	page *Page

	typ      annot.Type
	rect     rect.Rect
	border   annot.Border
	stroke   []float64
	fill     []float64
	vertices []vec.Vec2 // default user space
	contents string
	lineEnds *[2]annot.LineEndingStyle
	opacity  float64 // -1 when absent
	blend    string
	rotation int // -1 when absent
	da       string

	ap apObject // nil when the annotation has no appearance
}

// apObject is the value of the /AP/N entry.  Normally this is a
// [*Stream]; widget annotations can use a [*StateDict] instead.
type apObject interface {
	isAP()
}

// Stream is a normal appearance stream.
type Stream struct {
	// BBox is the form bounding box of the stream.
	BBox rect.Rect

	// Matrix maps form space to the annotation rectangle.
	Matrix matrix.Matrix

	// Body holds the decoded content stream.
	Body []byte

	// Resources names the resources used by the stream.
	Resources *Resources
}

func (*Stream) isAP() {}

// StateDict is a dictionary of appearance states, keyed by the
// annotation's /AS value.  It is not a stream.
type StateDict struct {
	States map[string]*Stream
}

func (*StateDict) isAP() {}

// Resources is the resource dictionary of an appearance stream.
type Resources struct {
	// ExtGState maps graphics state parameter names to their
	// dictionaries.
	ExtGState map[string]*ExtGState
}

// ExtGState is a graphics state parameter dictionary.
type ExtGState struct {
	// StrokeAlpha is the stroking alpha constant (/CA), or -1 when
	// absent.
	StrokeAlpha float64

	// FillAlpha is the non-stroking alpha constant (/ca), or -1 when
	// absent.
	FillAlpha float64

	// BlendMode is the blend mode name (/BM), or "" when absent.
	BlendMode string
}

var _ annot.Annot = (*Annot)(nil)

// Type returns the annotation subtype.
func (a *Annot) Type() annot.Type {
	return a.typ
}

// Rect returns the annotation rectangle.
func (a *Annot) Rect() rect.Rect {
	return a.rect
}

// SetRect replaces the annotation rectangle.
func (a *Annot) SetRect(r rect.Rect) {
	a.rect = r
}

// Border returns the border settings.
func (a *Annot) Border() annot.Border {
	return a.border
}

// SetBorder replaces the border settings.
func (a *Annot) SetBorder(b annot.Border) {
	a.border = b
}

// Colors returns the stroke and interior colors.
func (a *Annot) Colors() annot.Colors {
	return annot.Colors{Stroke: a.stroke, Fill: a.fill}
}

// SetStrokeColor sets the stroke color (/C).  A nil or empty slice
// removes the entry.
func (a *Annot) SetStrokeColor(col []float64) {
	a.stroke = col
}

// SetInteriorColor sets the interior color (/IC).  A nil or empty
// slice removes the entry.
func (a *Annot) SetInteriorColor(col []float64) {
	a.fill = col
}

// SetVertices sets the defining vertices of the annotation, in default
// user space.
func (a *Annot) SetVertices(verts []vec.Vec2) {
	a.vertices = verts
}

// Vertices returns the defining vertices, transformed to displayed
// page coordinates.
func (a *Annot) Vertices() []vec.Vec2 {
	if len(a.vertices) == 0 {
		return nil
	}
	M := a.page.geom.TransformationMatrix()
	out := make([]vec.Vec2, len(a.vertices))
	for i, v := range a.vertices {
		out[i] = M.ApplyVec(v)
	}
	return out
}

// SetContents sets the text content (/Contents) of the annotation.
func (a *Annot) SetContents(text string) {
	a.contents = text
}

// Contents returns the text content of the annotation.
func (a *Annot) Contents() string {
	return a.contents
}

// SetLineEnds sets the line ending styles (/LE).
func (a *Annot) SetLineEnds(start, end annot.LineEndingStyle) {
	a.lineEnds = &[2]annot.LineEndingStyle{start, end}
}

// LineEnds returns the line ending styles, with ok false if no /LE
// entry is present.
func (a *Annot) LineEnds() (start, end annot.LineEndingStyle, ok bool) {
	if a.lineEnds == nil {
		return "", "", false
	}
	return a.lineEnds[0], a.lineEnds[1], true
}

// Opacity returns the constant opacity, or -1 when absent.
func (a *Annot) Opacity() float64 {
	return a.opacity
}

// SetOpacityKey sets the /CA entry.
func (a *Annot) SetOpacityKey(opacity float64) {
	a.opacity = opacity
}

// BlendMode returns the blend mode name, or "" when absent.
func (a *Annot) BlendMode() string {
	return a.blend
}

// SetBlendModeKey sets the /BM entry.
func (a *Annot) SetBlendModeKey(name string) {
	a.blend = name
}

// Rotation returns the annotation rotation in degrees, or -1 when
// absent.
func (a *Annot) Rotation() int {
	return a.rotation
}

// SetRotationKey sets the /Rotate entry.
func (a *Annot) SetRotationKey(deg int) {
	a.rotation = deg
}

// DefaultAppearance returns the /DA string, or "" when absent.
func (a *Annot) DefaultAppearance() string {
	return a.da
}

// SetDefaultAppearance sets the /DA entry.
func (a *Annot) SetDefaultAppearance(da string) {
	a.da = da
}

// Appearance returns the normal appearance stream, or nil if the
// annotation has none or the appearance is not a stream.
func (a *Annot) Appearance() *Stream {
	s, _ := a.ap.(*Stream)
	return s
}

// SetAppearance installs s as the normal appearance stream.
func (a *Annot) SetAppearance(s *Stream) {
	a.ap = s
}

// SetAppearanceStates replaces the normal appearance by a dictionary
// of named appearance states.  Afterwards all stream operations on the
// appearance fail with [annot.ErrNotAStream].
func (a *Annot) SetAppearanceStates(states map[string]*Stream) {
	a.ap = &StateDict{States: states}
}

// ClearAppearance removes the appearance dictionary.
func (a *Annot) ClearAppearance() {
	a.ap = nil
}

// normalAppearance returns the normal appearance stream, or the error
// the document layer reports when stream access is impossible.
func (a *Annot) normalAppearance() (*Stream, error) {
	switch ap := a.ap.(type) {
	case nil:
		return nil, annot.ErrNoAppearance
	case *Stream:
		return ap, nil
	default:
		return nil, annot.ErrNotAStream
	}
}

// SetExtGState installs the transparency graphics state /H in the
// resources of the normal appearance stream.
func (a *Annot) SetExtGState(opacity float64, blendMode string) error {
	s, err := a.normalAppearance()
	if err != nil {
		return err
	}
	gs := &ExtGState{StrokeAlpha: -1, FillAlpha: -1, BlendMode: blendMode}
	if opacity >= 0 {
		gs.StrokeAlpha = opacity
		gs.FillAlpha = opacity
	}
	if s.Resources == nil {
		s.Resources = &Resources{}
	}
	if s.Resources.ExtGState == nil {
		s.Resources.ExtGState = make(map[string]*ExtGState)
	}
	s.Resources.ExtGState["H"] = gs
	return nil
}

// AppearanceBytes returns a copy of the normal appearance stream
// contents.
func (a *Annot) AppearanceBytes() ([]byte, error) {
	s, err := a.normalAppearance()
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), s.Body...), nil
}

// SetAppearanceBytes replaces the contents of the normal appearance
// stream.  If resizeBBox is set, the stream's bounding box is reset to
// the annotation rectangle.
func (a *Annot) SetAppearanceBytes(data []byte, resizeBBox bool) error {
	s, err := a.normalAppearance()
	if err != nil {
		return err
	}
	s.Body = append([]byte(nil), data...)
	if resizeBBox {
		s.BBox = a.rect
	}
	return nil
}

// AppearanceMatrix returns the /Matrix entry of the normal appearance
// stream.  Annotations without an appearance stream report the
// identity matrix.
func (a *Annot) AppearanceMatrix() matrix.Matrix {
	s, err := a.normalAppearance()
	if err != nil {
		return matrix.Identity
	}
	return s.Matrix
}

// SetAppearanceMatrix sets the /Matrix entry of the normal appearance
// stream.  Annotations without an appearance stream are left alone.
func (a *Annot) SetAppearanceMatrix(m matrix.Matrix) {
	s, err := a.normalAppearance()
	if err != nil {
		return
	}
	s.Matrix = m
}

// Page returns the geometry of the page containing the annotation.
func (a *Annot) Page() page.Page {
	return a.page.geom
}
