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
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/softrender"
)

var ctmCases = []TestCase{
	// uniform scaling
	{
		Name:       "scale_2x",
		Elements:   []softrender.Element{rectangle(0, 0, 20, 20, filled(blue))},
		Width:      128,
		Height:     128,
		SampleRate: 2,
		CTM:        matrix.Scale(2, 2).Translate(24, 24),
	},
	{
		Name:       "scale_half",
		Elements:   []softrender.Element{rectangle(0, 0, 80, 80, filled(blue))},
		Width:      64,
		Height:     64,
		SampleRate: 2,
		CTM:        matrix.Scale(0.5, 0.5).Translate(12, 12),
	},
	{
		Name:       "scale_10x",
		Elements:   []softrender.Element{triangle(0, 4, 2, 0, 4, 4, filled(red))},
		Width:      128,
		Height:     128,
		SampleRate: 2,
		CTM:        matrix.Scale(10, 10).Translate(44, 44),
	},

	// rotation
	{
		Name:       "rotate_45deg",
		Elements:   []softrender.Element{rectangle(-10, -10, 10, 10, filled(green))},
		Width:      64,
		Height:     64,
		SampleRate: 4,
		CTM:        matrix.RotateDeg(45).Translate(32, 32),
	},
	{
		Name:       "rotate_90deg",
		Elements:   []softrender.Element{rectangle(-15, -10, 15, 10, filled(green))},
		Width:      64,
		Height:     64,
		SampleRate: 2,
		CTM:        matrix.RotateDeg(90).Translate(32, 32),
	},
	{
		Name: "rotate_5deg",
		Elements: []softrender.Element{
			rectangle(-20, -10, 20, 10, softrender.Style{Fill: orange, Stroke: black}),
		},
		Width:      64,
		Height:     64,
		SampleRate: 4,
		CTM:        matrix.RotateDeg(5).Translate(32, 32),
	},

	// non-uniform scaling
	{
		Name:       "scale_2x_1y",
		Elements:   []softrender.Element{rectangle(-10, -10, 10, 10, filled(blue))},
		Width:      128,
		Height:     64,
		SampleRate: 2,
		CTM:        matrix.Scale(2, 1).Translate(64, 32),
	},
	{
		Name:       "scale_1x_2y",
		Elements:   []softrender.Element{rectangle(-10, -10, 10, 10, filled(blue))},
		Width:      64,
		Height:     128,
		SampleRate: 2,
		CTM:        matrix.Scale(1, 2).Translate(32, 64),
	},
	{
		Name:       "hexagon_stretched",
		Elements:   []softrender.Element{polygon(filled(red), regularPolygon(0, 0, 15, 6)...)},
		Width:      128,
		Height:     64,
		SampleRate: 4,
		CTM:        matrix.Scale(2, 1).Translate(64, 32),
	},

	// shear
	{
		Name:       "shear_horizontal",
		Elements:   []softrender.Element{rectangle(-15, -15, 15, 15, filled(green))},
		Width:      64,
		Height:     64,
		SampleRate: 2,
		CTM:        matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(32, 32),
	},
	{
		Name:       "shear_vertical",
		Elements:   []softrender.Element{rectangle(-15, -15, 15, 15, filled(green))},
		Width:      64,
		Height:     64,
		SampleRate: 2,
		CTM:        matrix.Matrix{1, 0.5, 0, 1, 0, 0}.Translate(32, 32),
	},
	{
		Name: "shear_and_rotate",
		Elements: []softrender.Element{
			rectangle(-12, -12, 12, 12, softrender.Style{Fill: translucentBlue, Stroke: blue}),
		},
		Width:      64,
		Height:     64,
		SampleRate: 4,
		CTM:        matrix.Matrix{1, 0, 0.3, 1, 0, 0}.RotateDeg(30).Translate(32, 32),
	},

	// lines under transformation
	{
		Name:     "lines_rotated",
		Elements: fan(0, 0, 20, 6, black),
		Width:    64,
		Height:   64,
		CTM:      matrix.RotateDeg(10).Translate(32, 32),
	},
	{
		Name:     "lines_scaled",
		Elements: []softrender.Element{line(-25, -5, 25, 5, red)},
		Width:    128,
		Height:   64,
		CTM:      matrix.Scale(2, 1).Translate(64, 32),
	},

	// y axis pointing up
	{
		Name: "flip_y",
		Elements: []softrender.Element{
			triangle(8, 8, 56, 8, 32, 56, filled(orange)),
			&softrender.Point{Common: softrender.Common{Style: filled(black)}, Position: pt(32, 50)},
		},
		Width:      64,
		Height:     64,
		SampleRate: 2,
		CTM:        matrix.Matrix{1, 0, 0, -1, 0, 64},
	},
}
