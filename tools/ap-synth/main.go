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

// Ap-synth regenerates annotation appearance streams from a YAML
// description.
//
// The input file describes one page together with its annotations, and
// optionally an update to apply to each of them:
//
//	page:
//	  mediabox: [0, 0, 612, 792]
//	  rotation: 0
//	annotations:
//	  - type: Square
//	    rect: [10, 10, 110, 60]
//	    border: {width: 2, style: S}
//	    stroke: [0, 0, 1]
//	update:
//	  opacity: 0.5
//
// The regenerated appearance streams are written to stdout, together
// with the annotation state the update changed.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annot"
	"seehuhn.de/go/annot/appearance"
	"seehuhn.de/go/annot/internal/float"
	"seehuhn.de/go/annot/matrix"
	"seehuhn.de/go/annot/memdoc"
	"seehuhn.de/go/annot/rect"
)

func main() {
	out := flag.String("o", "", "output file name (default stdout)")
	flag.Parse()

	if len(flag.Args()) != 1 {
		fmt.Fprintln(os.Stderr, "usage: ap-synth [-o out.txt] scenario.yaml")
		os.Exit(1)
	}

	buf := &bytes.Buffer{}
	err := run(buf, flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *out != "" {
		err = os.WriteFile(*out, buf.Bytes(), 0o666)
	} else {
		_, err = os.Stdout.Write(buf.Bytes())
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer, fname string) error {
	cfg, err := loadScenario(fname)
	if err != nil {
		return err
	}

	page, err := cfg.build()
	if err != nil {
		return err
	}

	opt := cfg.Update.options()
	for i, a := range page.Annots() {
		err := appearance.Update(a, opt)
		if err != nil {
			return fmt.Errorf("annotation %d (%s): %w", i+1, a.Type(), err)
		}
		dumpAnnot(w, i+1, a)
	}
	return nil
}

// scenario mirrors the YAML file structure.
type scenario struct {
	Page        pageConfig    `yaml:"page"`
	Annotations []annotConfig `yaml:"annotations"`
	Update      *updateConfig `yaml:"update"`
}

type pageConfig struct {
	MediaBox []float64 `yaml:"mediabox"`
	Rotation int       `yaml:"rotation"`
}

type annotConfig struct {
	Type     string        `yaml:"type"`
	Rect     []float64     `yaml:"rect"`
	Border   *borderConfig `yaml:"border"`
	Stroke   []float64     `yaml:"stroke"`
	Fill     []float64     `yaml:"fill"`
	Vertices [][]float64   `yaml:"vertices"`
	Contents *string       `yaml:"contents"`
	LineEnds []string      `yaml:"lineends"`
	Opacity  *float64      `yaml:"opacity"`
	Blend    string        `yaml:"blendmode"`
	Rotation *int          `yaml:"rotation"`
	DA       string        `yaml:"da"`
}

type borderConfig struct {
	Width float64   `yaml:"width"`
	Style string    `yaml:"style"`
	Dash  []float64 `yaml:"dash"`
}

// updateConfig distinguishes absent keys from zero values using
// pointer fields, so that only the keys present in the file override
// the stored annotation state.
type updateConfig struct {
	Opacity   *float64  `yaml:"opacity"`
	BlendMode *string   `yaml:"blendmode"`
	Rotation  *int      `yaml:"rotation"`
	Fill      []float64 `yaml:"fill"`
	Border    []float64 `yaml:"bordercolor"`
	Text      []float64 `yaml:"textcolor"`
	FontName  *string   `yaml:"fontname"`
	FontSize  *float64  `yaml:"fontsize"`
	CrossOut  bool      `yaml:"crossout"`
}

func loadScenario(fname string) (*scenario, error) {
	body, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	cfg := &scenario{}
	err = yaml.Unmarshal(body, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return cfg, nil
}

func asRect(coords []float64) (rect.Rect, error) {
	if len(coords) != 4 {
		return rect.Rect{}, fmt.Errorf("need 4 rectangle coordinates, got %d", len(coords))
	}
	return rect.Rect{X0: coords[0], Y0: coords[1], X1: coords[2], Y1: coords[3]}, nil
}

// build assembles the in-memory page the scenario describes.
func (cfg *scenario) build() (*memdoc.Page, error) {
	mb := cfg.Page.MediaBox
	if mb == nil {
		mb = []float64{0, 0, 612, 792}
	}
	box, err := asRect(mb)
	if err != nil {
		return nil, fmt.Errorf("page mediabox: %w", err)
	}

	doc := memdoc.New()
	page := doc.AddPage(box, cfg.Page.Rotation)

	for i, ac := range cfg.Annotations {
		typ := annot.TypeFromName(ac.Type)
		if typ == annot.TypeUnknown {
			return nil, fmt.Errorf("annotation %d: unknown type %q", i+1, ac.Type)
		}
		r, err := asRect(ac.Rect)
		if err != nil {
			return nil, fmt.Errorf("annotation %d: %w", i+1, err)
		}

		a := page.AddAnnot(typ, r)
		if ac.Border != nil {
			a.SetBorder(annot.Border{
				Width:     ac.Border.Width,
				Style:     ac.Border.Style,
				DashArray: ac.Border.Dash,
			})
		}
		a.SetStrokeColor(ac.Stroke)
		a.SetInteriorColor(ac.Fill)
		if len(ac.Vertices) > 0 {
			verts := make([]vec.Vec2, len(ac.Vertices))
			for j, v := range ac.Vertices {
				if len(v) != 2 {
					return nil, fmt.Errorf("annotation %d: vertex %d has %d coordinates",
						i+1, j+1, len(v))
				}
				verts[j] = vec.Vec2{X: v[0], Y: v[1]}
			}
			a.SetVertices(verts)
		}
		if ac.Contents != nil {
			a.SetContents(*ac.Contents)
		}
		if len(ac.LineEnds) == 2 {
			a.SetLineEnds(annot.LineEndingStyle(ac.LineEnds[0]),
				annot.LineEndingStyle(ac.LineEnds[1]))
		} else if len(ac.LineEnds) != 0 {
			return nil, fmt.Errorf("annotation %d: need 2 line ending styles, got %d",
				i+1, len(ac.LineEnds))
		}
		if ac.Opacity != nil {
			a.SetOpacityKey(*ac.Opacity)
		}
		if ac.Blend != "" {
			a.SetBlendModeKey(ac.Blend)
		}
		if ac.Rotation != nil {
			a.SetRotationKey(*ac.Rotation)
		}
		if ac.DA != "" {
			a.SetDefaultAppearance(ac.DA)
		}
	}
	return page, nil
}

// options converts the update section into appearance options.  A nil
// receiver gives nil options, regenerating with the stored state only.
func (c *updateConfig) options() *appearance.Options {
	if c == nil {
		return nil
	}
	opt := &appearance.Options{CrossOut: c.CrossOut}
	if c.Opacity != nil {
		opt.Set |= appearance.OverrideOpacity
		opt.Opacity = *c.Opacity
	}
	if c.BlendMode != nil {
		opt.Set |= appearance.OverrideBlendMode
		opt.BlendMode = *c.BlendMode
	}
	if c.Rotation != nil {
		opt.Set |= appearance.OverrideRotation
		opt.Rotation = *c.Rotation
	}
	if c.Fill != nil {
		opt.Set |= appearance.OverrideFillColor
		opt.FillColor = c.Fill
	}
	if c.Border != nil {
		opt.Set |= appearance.OverrideBorderColor
		opt.BorderColor = c.Border
	}
	if c.Text != nil {
		opt.Set |= appearance.OverrideTextColor
		opt.TextColor = c.Text
	}
	if c.FontName != nil {
		opt.Set |= appearance.OverrideFontName
		opt.FontName = *c.FontName
	}
	if c.FontSize != nil {
		opt.Set |= appearance.OverrideFontSize
		opt.FontSize = *c.FontSize
	}
	return opt
}

func fmtRect(r rect.Rect) string {
	return "[" + float.Format(r.X0, 4) + " " + float.Format(r.Y0, 4) + " " +
		float.Format(r.X1, 4) + " " + float.Format(r.Y1, 4) + "]"
}

func fmtMatrix(m matrix.Matrix) string {
	parts := make([]string, len(m))
	for i, x := range m {
		parts[i] = float.Format(x, 4)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// dumpAnnot writes a report of the annotation state after the update.
func dumpAnnot(w io.Writer, num int, a *memdoc.Annot) {
	fmt.Fprintf(w, "annotation %d: %s\n", num, a.Type())
	fmt.Fprintf(w, "  Rect: %s\n", fmtRect(a.Rect()))
	if rot := a.Rotation(); rot != -1 {
		fmt.Fprintf(w, "  Rotate: %d\n", rot)
	}
	if da := a.DefaultAppearance(); da != "" {
		fmt.Fprintf(w, "  DA: %s\n", da)
	}

	s := a.Appearance()
	if s == nil {
		fmt.Fprintln(w, "  no appearance stream")
		return
	}

	fmt.Fprintf(w, "  BBox: %s\n", fmtRect(s.BBox))
	if s.Matrix != matrix.Identity {
		fmt.Fprintf(w, "  Matrix: %s\n", fmtMatrix(s.Matrix))
	}
	if res := s.Resources; res != nil && len(res.ExtGState) > 0 {
		names := maps.Keys(res.ExtGState)
		slices.Sort(names)
		for _, name := range names {
			gs := res.ExtGState[name]
			fmt.Fprintf(w, "  ExtGState /%s:", name)
			if gs.StrokeAlpha >= 0 {
				fmt.Fprintf(w, " /CA %s", float.Format(gs.StrokeAlpha, 4))
			}
			if gs.FillAlpha >= 0 {
				fmt.Fprintf(w, " /ca %s", float.Format(gs.FillAlpha, 4))
			}
			if gs.BlendMode != "" {
				fmt.Fprintf(w, " /BM /%s", gs.BlendMode)
			}
			fmt.Fprintln(w)
		}
	}

	fmt.Fprintln(w, "  stream:")
	body := strings.TrimRight(string(s.Body), "\n")
	if body != "" {
		for _, line := range strings.Split(body, "\n") {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}
}
