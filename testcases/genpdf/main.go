// seehuhn.de/go/softrender - a supersampling software renderer
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

// Command genpdf generates reference images for the scene tests.
// It creates PDFs from the coverage masks of the test cases and renders
// them to PNGs using Ghostscript.
package main

import (
	"fmt"
	"maps"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/softrender"
	"seehuhn.de/go/softrender/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Black background: 0 means no coverage, 255 means full coverage.
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; test cases assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))
	page.SetLineWidth(1)

	// Element transformations are applied here, so that the geometry
	// is written in device coordinates.
	w := &writer{page: page}
	w.elements(tc.Transform(), tc.Mask().Elements)

	return page.Close()
}

// pathPainter is the part of the PDF page API used for drawing the scene.
type pathPainter interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Rectangle(x, y, w, h float64)
	Fill()
	Stroke()
}

type writer struct {
	page pathPainter
}

func (w *writer) elements(m matrix.Matrix, elems []softrender.Element) {
	for _, e := range elems {
		w.element(m, e)
	}
}

func (w *writer) element(ctm matrix.Matrix, e softrender.Element) {
	switch e := e.(type) {
	case *softrender.Point:
		if e.Style.Fill.A == 0 {
			return
		}
		p := apply(local(e.Transform).Mul(ctm), e.Position)
		w.page.Rectangle(math.Floor(p.X), math.Floor(p.Y), 1, 1)
		w.page.Fill()

	case *softrender.Line:
		if e.Style.Stroke.A == 0 {
			return
		}
		m := local(e.Transform).Mul(ctm)
		w.path(m, []vec.Vec2{e.From, e.To}, false)
		w.page.Stroke()

	case *softrender.Polyline:
		if e.Style.Stroke.A == 0 || len(e.Points) < 2 {
			return
		}
		w.path(local(e.Transform).Mul(ctm), e.Points, false)
		w.page.Stroke()

	case *softrender.Rect:
		m := local(e.Transform).Mul(ctm)
		x, y := e.Position.X, e.Position.Y
		dx, dy := e.Dimension.X, e.Dimension.Y
		corners := []vec.Vec2{{X: x, Y: y}, {X: x + dx, Y: y}, {X: x + dx, Y: y + dy}, {X: x, Y: y + dy}}
		w.shape(m, corners, e.Style)

	case *softrender.Polygon:
		if len(e.Points) < 2 {
			return
		}
		w.shape(local(e.Transform).Mul(ctm), e.Points, e.Style)

	case *softrender.Group:
		w.elements(local(e.Transform).Mul(ctm), e.Elements)
	}

	// ellipses and images are not drawn by the renderer
}

// shape fills and strokes a closed outline.
func (w *writer) shape(m matrix.Matrix, pts []vec.Vec2, style softrender.Style) {
	if style.Fill.A != 0 {
		w.path(m, pts, true)
		w.page.Fill()
	}
	if style.Stroke.A != 0 {
		w.path(m, pts, true)
		w.page.Stroke()
	}
}

func (w *writer) path(m matrix.Matrix, pts []vec.Vec2, closed bool) {
	for i, p := range pts {
		q := apply(m, p)
		if i == 0 {
			w.page.MoveTo(q.X, q.Y)
		} else {
			w.page.LineTo(q.X, q.Y)
		}
	}
	if closed {
		w.page.ClosePath()
	}
}

func local(m matrix.Matrix) matrix.Matrix {
	if m == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return m
}

func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
