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
	"seehuhn.de/go/softrender"
)

// largeCases contains test cases with large canvases and shapes which
// extend far beyond the canvas.
var largeCases = []TestCase{
	{
		Name:       "large_rectangle",
		Elements:   []softrender.Element{rectangle(50, 50, 462, 462, filled(blue))},
		Width:      512,
		Height:     512,
		SampleRate: 2,
	},
	{
		Name:       "large_diamond",
		Elements:   []softrender.Element{diamond(256, 256, 180, filled(green))},
		Width:      512,
		Height:     512,
		SampleRate: 2,
	},
	{
		Name:     "large_grid",
		Elements: rectangleGrid(8, 8, 512, 512, 4),
		Width:    512,
		Height:   512,
	},
	{
		Name:       "large_clipped",
		Elements:   []softrender.Element{rectangle(-100, 100, 612, 400, filled(red))},
		Width:      512,
		Height:     512,
		SampleRate: 2,
	},
	{
		Name: "large_offscreen",
		Elements: []softrender.Element{
			triangle(-1e5, -1e5, 1e5, -1e5, -1e5, 1e5, filled(translucentBlue)),
			line(-1e5, 200, 1e5, 300, black),
			line(250, -1e5, 260, 1e5, black),
		},
		Width:  512,
		Height: 512,
	},
	{
		Name:     "large_fan",
		Elements: fan(256, 256, 240, 90, black),
		Width:    512,
		Height:   512,
	},
}

// diamond builds a square standing on one of its corners.
func diamond(cx, cy, r float64, s softrender.Style) *softrender.Polygon {
	return polygon(s, pt(cx, cy-r), pt(cx+r, cy), pt(cx, cy+r), pt(cx-r, cy))
}

// rectangleGrid builds a grid of rectangles.
func rectangleGrid(rows, cols, width, height int, gap float64) []softrender.Element {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	var elems []softrender.Element
	for row := range rows {
		for col := range cols {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap

			c := blue
			if (row+col)%2 == 1 {
				c = orange
			}
			elems = append(elems, rectangle(x1, y1, x2, y2, filled(c)))
		}
	}
	return elems
}
