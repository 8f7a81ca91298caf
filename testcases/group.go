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

package testcases

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/softrender"
)

var groupCases = []TestCase{
	{
		Name: "nested_transform",
		Elements: []softrender.Element{
			group(matrix.Matrix{1, 0, 0, 1, 8, 8},
				rectangle(0, 0, 20, 20, filled(blue)),
				group(matrix.Scale(0.5, 0.5).Translate(24, 24),
					rectangle(0, 0, 40, 40, filled(red)),
				),
			),
		},
		Width:      64,
		Height:     64,
		SampleRate: 2,
	},
	{
		Name:       "wheel",
		Elements:   wheel(32, 32, 12),
		Width:      64,
		Height:     64,
		SampleRate: 4,
	},
	{
		Name:       "deep_nesting",
		Elements:   []softrender.Element{nested(12)},
		Width:      64,
		Height:     64,
		SampleRate: 2,
	},
	{
		Name: "all_primitives",
		Elements: []softrender.Element{
			&softrender.Point{Common: softrender.Common{Style: filled(red)}, Position: pt(4, 4)},
			line(8, 4, 56, 4, black),
			&softrender.Polyline{
				Common: softrender.Common{Style: stroked(blue)},
				Points: zigzag(8, 8, 56, 16, 6),
			},
			rectangle(8, 20, 28, 40, softrender.Style{Fill: green, Stroke: black}),
			star(46, 30, 12, 5, softrender.Style{Fill: orange, Stroke: red}),
			&softrender.Ellipse{
				Common: softrender.Common{Style: filled(blue)},
				Center: pt(16, 52),
				Radius: pt(8, 6),
			},
			&softrender.Image{
				Common:    softrender.Common{Style: filled(black)},
				Position:  pt(36, 46),
				Dimension: pt(16, 12),
				Texture:   checkerboard(4, 3),
			},
		},
		Width:      64,
		Height:     64,
		SampleRate: 2,
	},
	{
		Name: "translucent_layers",
		Elements: []softrender.Element{
			group(matrix.Identity,
				rectangle(4, 4, 60, 60, filled(softrender.Color{R: 1, G: 1, B: 0, A: 1})),
				group(matrix.Matrix{1, 0, 0, 1, 4, 4},
					rectangle(4, 4, 36, 36, filled(translucentRed)),
					group(matrix.Matrix{1, 0, 0, 1, 16, 16},
						rectangle(4, 4, 36, 36, filled(translucentBlue)),
					),
				),
			),
		},
		Width:      64,
		Height:     64,
		SampleRate: 2,
	},
}

// wheel builds n spokes, each a rectangle inside a rotated group.
func wheel(cx, cy float64, n int) []softrender.Element {
	elems := make([]softrender.Element, n)
	for i := range n {
		m := matrix.RotateDeg(float64(i) * 360 / float64(n)).Translate(cx, cy)
		c := red
		if i%2 == 1 {
			c = blue
		}
		elems[i] = group(m, rectangle(6, -1.5, 28, 1.5, filled(c)))
	}
	return elems
}

// nested builds a chain of depth groups, each shrinking and turning its
// content a little.
func nested(depth int) softrender.Element {
	var inner softrender.Element = rectangle(-24, -24, 24, 24, stroked(black))
	for i := range depth {
		c := green
		if i%2 == 1 {
			c = orange
		}
		m := matrix.Scale(0.85, 0.85).RotateDeg(8)
		inner = group(m,
			rectangle(-24, -24, 24, 24, stroked(c)),
			inner,
		)
	}
	return group(matrix.Matrix{1, 0, 0, 1, 32, 32}, inner)
}

// checkerboard returns a small texture for image elements.
func checkerboard(w, h int) image.Image {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			if (x+y)%2 == 0 {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}
