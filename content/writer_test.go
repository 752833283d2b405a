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

package content

import (
	"bytes"
	"testing"
)

func TestWriterPath(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.SetLineWidth(2)
	w.SetStrokeColor([]float64{1, 0, 0})
	w.MoveTo(0, 0)
	w.LineTo(100, 0)
	w.LineTo(100, 50.5)
	w.Stroke()
	if w.Err != nil {
		t.Fatal(w.Err)
	}

	want := "2 w\n1 0 0 RG\n0 0 m\n100 0 l\n100 50.5 l\nS\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriterClip(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.Rectangle(0, 0, 40, 20)
	w.ClipNonZero()
	w.EndPath()
	if w.Err != nil {
		t.Fatal(w.Err)
	}

	want := "0 0 40 20 re\nW\nn\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriterDash(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.SetLineDash([]float64{3, 1}, 0)
	w.SetLineDash(nil, 0)
	if w.Err != nil {
		t.Fatal(w.Err)
	}

	want := "[3 1] 0 d\n[] 0 d\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriterText(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.TextStart()
	w.TextSetFont("Helv", 12)
	w.TextFirstLine(2, 10)
	w.TextShowRaw(`Hello (world) \o/`)
	w.TextEnd()
	if w.Err != nil {
		t.Fatal(w.Err)
	}

	want := "BT\n/Helv 12 Tf\n2 10 Td\n(Hello \\(world\\) \\\\o/) Tj\nET\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriterStateNesting(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.PushGraphicsState()
	w.SetExtGState("H")
	w.PopGraphicsState()
	if w.Err != nil {
		t.Fatal(w.Err)
	}
	want := "q\n/H gs\nQ\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	w.PopGraphicsState()
	if w.Err == nil {
		t.Error("missing error for unbalanced PopGraphicsState")
	}
}

func TestWriterNegativeWidth(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.SetLineWidth(-1)
	if w.Err == nil {
		t.Error("missing error for negative line width")
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestWriterCurve(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.MoveTo(0, 1)
	w.CurveTo(0.5523, 1, 1, 0.5523, 1, 0)
	w.CloseFillAndStroke()
	if w.Err != nil {
		t.Fatal(w.Err)
	}

	want := "0 1 m\n0.5523 1 1 0.5523 1 0 c\nb\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
