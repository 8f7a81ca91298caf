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

var precisionCases = []TestCase{
	// subpixel positioning
	{
		Name:       "subpixel_offset_00",
		Elements:   []softrender.Element{offsetRectangle(20, 20, 24, 24, 0.0)},
		Width:      64,
		Height:     64,
		SampleRate: 4,
	},
	{
		Name:       "subpixel_offset_25",
		Elements:   []softrender.Element{offsetRectangle(20, 20, 24, 24, 0.25)},
		Width:      64,
		Height:     64,
		SampleRate: 4,
	},
	{
		Name:       "subpixel_offset_50",
		Elements:   []softrender.Element{offsetRectangle(20, 20, 24, 24, 0.5)},
		Width:      64,
		Height:     64,
		SampleRate: 4,
	},
	{
		Name:       "subpixel_offset_75",
		Elements:   []softrender.Element{offsetRectangle(20, 20, 24, 24, 0.75)},
		Width:      64,
		Height:     64,
		SampleRate: 4,
	},
	{
		Name:     "thin_line_y_integer",
		Elements: []softrender.Element{line(5, 10, 59, 10, black)},
		Width:    64,
		Height:   64,
	},
	{
		Name:     "thin_line_y_quarter",
		Elements: []softrender.Element{line(5, 10.25, 59, 10.25, black)},
		Width:    64,
		Height:   64,
	},
	{
		Name:     "thin_line_y_half",
		Elements: []softrender.Element{line(5, 10.5, 59, 10.5, black)},
		Width:    64,
		Height:   64,
	},
	{
		Name:       "sliver_triangle",
		Elements:   []softrender.Element{triangle(4, 30, 60, 31, 4, 31.5, filled(black))},
		Width:      64,
		Height:     64,
		SampleRate: 8,
	},

	// large coordinates
	{
		Name:       "large_coord_centered",
		Elements:   []softrender.Element{rectangle(990, 990, 1010, 1010, filled(blue))},
		Width:      64,
		Height:     64,
		SampleRate: 2,
		CTM:        matrix.Matrix{1, 0, 0, 1, -968, -968},
	},
	{
		Name: "small_shape_large_offset",
		Elements: []softrender.Element{
			triangle(10000, 10002, 10001, 10000, 10002, 10002, filled(red)),
		},
		Width:      64,
		Height:     64,
		SampleRate: 4,
		CTM:        matrix.Matrix{10, 0, 0, 10, -99980, -99980},
	},
	{
		Name:     "line_large_offset",
		Elements: []softrender.Element{line(1e6, 1e6+3, 1e6+50, 1e6+40, black)},
		Width:    64,
		Height:   64,
		CTM:      matrix.Matrix{1, 0, 0, 1, -1e6 + 7, -1e6 + 7},
	},
}

// offsetRectangle builds a square with a subpixel offset applied to all
// coordinates.
func offsetRectangle(x1, y1, w, h, offset float64) *softrender.Rect {
	return rectangle(x1+offset, y1+offset, x1+w+offset, y1+h+offset, filled(black))
}
