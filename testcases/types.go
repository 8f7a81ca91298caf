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

// Package testcases defines the scenes used for testing and comparing the
// renderer.
package testcases

import (
	"image"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/softrender"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name       string               // lowercase a-z, 0-9 and _ only
	Elements   []softrender.Element // the scene, in document coordinates
	Width      int                  // canvas width in pixels
	Height     int                  // canvas height in pixels
	SampleRate int                  // samples per pixel along each axis (0 means 1)
	CTM        matrix.Matrix        // transformation matrix (zero-value means no transform)
}

// Document returns the scene as a document covering the canvas.
func (tc TestCase) Document() *softrender.Document {
	return &softrender.Document{
		Width:    float64(tc.Width),
		Height:   float64(tc.Height),
		Elements: tc.Elements,
	}
}

// Transform returns the CTM of the test case.
func (tc TestCase) Transform() matrix.Matrix {
	if tc.CTM == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return tc.CTM
}

// Rate returns the sample rate of the test case.
func (tc TestCase) Rate() int {
	return max(tc.SampleRate, 1)
}

// Render draws the test case onto a canvas filled with bg.
func (tc TestCase) Render(bg softrender.Color, filter softrender.Filter) (*image.NRGBA, error) {
	img := image.NewNRGBA(image.Rect(0, 0, tc.Width, tc.Height))
	c := bg.NRGBA()
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}

	r := softrender.NewRenderer()
	if err := r.SetSampleRate(tc.Rate()); err != nil {
		return nil, err
	}
	if err := r.SetRenderTarget(img.Pix, tc.Width, tc.Height); err != nil {
		return nil, err
	}
	r.CTM = tc.Transform()
	r.Filter = filter

	err := r.Render(tc.Document())
	return img, err
}

// Mask returns a copy of the test case where every visible fill and
// stroke is opaque white.  Rendered onto black, the mask shows the
// coverage of the scene.
func (tc TestCase) Mask() TestCase {
	tc.Elements = maskElements(tc.Elements)
	return tc
}

func maskElements(elems []softrender.Element) []softrender.Element {
	out := make([]softrender.Element, len(elems))
	for i, e := range elems {
		out[i] = maskElement(e)
	}
	return out
}

func maskElement(e softrender.Element) softrender.Element {
	switch e := e.(type) {
	case *softrender.Point:
		c := *e
		c.Style = maskStyle(c.Style)
		return &c
	case *softrender.Line:
		c := *e
		c.Style = maskStyle(c.Style)
		return &c
	case *softrender.Polyline:
		c := *e
		c.Style = maskStyle(c.Style)
		return &c
	case *softrender.Rect:
		c := *e
		c.Style = maskStyle(c.Style)
		return &c
	case *softrender.Polygon:
		c := *e
		c.Style = maskStyle(c.Style)
		return &c
	case *softrender.Ellipse:
		c := *e
		c.Style = maskStyle(c.Style)
		return &c
	case *softrender.Image:
		c := *e
		c.Style = maskStyle(c.Style)
		return &c
	case *softrender.Group:
		c := *e
		c.Style = maskStyle(c.Style)
		c.Elements = maskElements(e.Elements)
		return &c
	}
	return e
}

func maskStyle(s softrender.Style) softrender.Style {
	if s.Fill.A != 0 {
		s.Fill = softrender.White
	}
	if s.Stroke.A != 0 {
		s.Stroke = softrender.White
	}
	return s
}

// Colours used in the scenes.
var (
	red    = softrender.Color{R: 0.9, G: 0.1, B: 0.1, A: 1}
	green  = softrender.Color{R: 0.1, G: 0.7, B: 0.2, A: 1}
	blue   = softrender.Color{R: 0.1, G: 0.2, B: 0.9, A: 1}
	orange = softrender.Color{R: 1, G: 0.6, B: 0, A: 1}
	black  = softrender.Black

	translucentBlue = softrender.Color{R: 0, G: 0, B: 1, A: 0.5}
	translucentRed  = softrender.Color{R: 1, G: 0, B: 0, A: 0.5}
)

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func filled(c softrender.Color) softrender.Style {
	return softrender.Style{Fill: c}
}

func stroked(c softrender.Color) softrender.Style {
	return softrender.Style{Stroke: c}
}

func polygon(s softrender.Style, pts ...vec.Vec2) *softrender.Polygon {
	return &softrender.Polygon{Common: softrender.Common{Style: s}, Points: pts}
}

func triangle(x1, y1, x2, y2, x3, y3 float64, s softrender.Style) *softrender.Polygon {
	return polygon(s, pt(x1, y1), pt(x2, y2), pt(x3, y3))
}

// rectangle builds the axis-parallel rectangle with corners (x1, y1)
// and (x2, y2).
func rectangle(x1, y1, x2, y2 float64, s softrender.Style) *softrender.Rect {
	return &softrender.Rect{
		Common:    softrender.Common{Style: s},
		Position:  pt(x1, y1),
		Dimension: pt(x2-x1, y2-y1),
	}
}

func line(x1, y1, x2, y2 float64, c softrender.Color) *softrender.Line {
	return &softrender.Line{
		Common: softrender.Common{Style: stroked(c)},
		From:   pt(x1, y1),
		To:     pt(x2, y2),
	}
}

func group(m matrix.Matrix, elems ...softrender.Element) *softrender.Group {
	return &softrender.Group{
		Common:   softrender.Common{Transform: m},
		Elements: elems,
	}
}
