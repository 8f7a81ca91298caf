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
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/softrender"
)

var fillCases = []TestCase{
	{
		Name:     "triangle",
		Elements: []softrender.Element{triangle(10, 50, 32, 10, 54, 50, filled(red))},
		Width:    64,
		Height:   64,
	},
	{
		Name:     "triangle_cw",
		Elements: []softrender.Element{triangle(10, 50, 54, 50, 32, 10, filled(red))},
		Width:    64,
		Height:   64,
	},
	{
		Name:       "triangle_rate4",
		Elements:   []softrender.Element{triangle(10, 50, 32, 10, 54, 50, filled(red))},
		Width:      64,
		Height:     64,
		SampleRate: 4,
	},
	{
		Name:       "rectangle",
		Elements:   []softrender.Element{rectangle(10, 10, 54, 54, filled(blue))},
		Width:      64,
		Height:     64,
		SampleRate: 2,
	},
	{
		Name:       "star",
		Elements:   []softrender.Element{star(32, 32, 25, 10, filled(orange))},
		Width:      64,
		Height:     64,
		SampleRate: 4,
	},
	{
		Name: "l_shape",
		Elements: []softrender.Element{polygon(filled(green),
			pt(10, 10), pt(54, 10), pt(54, 30), pt(30, 30), pt(30, 54), pt(10, 54))},
		Width:      64,
		Height:     64,
		SampleRate: 2,
	},
	{
		Name: "two_triangles",
		Elements: []softrender.Element{
			triangle(5, 55, 20, 10, 35, 55, filled(red)),
			triangle(29, 55, 44, 10, 59, 55, filled(blue)),
		},
		Width:      64,
		Height:     64,
		SampleRate: 2,
	},
	{
		Name: "overlapping_translucent",
		Elements: []softrender.Element{
			rectangle(8, 8, 40, 40, filled(translucentRed)),
			rectangle(24, 24, 56, 56, filled(translucentBlue)),
		},
		Width:      64,
		Height:     64,
		SampleRate: 2,
	},
	{
		Name:       "many_small_shapes",
		Elements:   smallShapes(8, 8, 64, 64),
		Width:      64,
		Height:     64,
		SampleRate: 4,
	},
	{
		Name: "filled_and_stroked",
		Elements: []softrender.Element{
			&softrender.Polygon{
				Common: softrender.Common{Style: softrender.Style{Fill: orange, Stroke: black}},
				Points: regularPolygon(32, 32, 24, 6),
			},
			&softrender.Rect{
				Common:    softrender.Common{Style: softrender.Style{Fill: translucentBlue, Stroke: blue}},
				Position:  pt(20, 20),
				Dimension: pt(24, 24),
			},
		},
		Width:      64,
		Height:     64,
		SampleRate: 2,
	},
}

// regularPolygon returns the vertices of a regular polygon with n corners.
func regularPolygon(cx, cy, r float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range n {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return pts
}

// star builds the outline of a five-pointed star as a simple polygon.
func star(cx, cy, outer, inner float64, s softrender.Style) *softrender.Polygon {
	pts := make([]vec.Vec2, 10)
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := float64(i)*math.Pi/5 - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return polygon(s, pts...)
}

// smallShapes fills a grid of cells with alternating small triangles and
// squares.
func smallShapes(rows, cols, width, height int) []softrender.Element {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	var elems []softrender.Element
	for row := range rows {
		for col := range cols {
			x := float64(col) * cellW
			y := float64(row) * cellH
			if (row+col)%2 == 0 {
				elems = append(elems, triangle(x+1, y+cellH-1, x+cellW/2, y+1, x+cellW-1, y+cellH-1, filled(green)))
			} else {
				elems = append(elems, rectangle(x+1.5, y+1.5, x+cellW-1.5, y+cellH-1.5, filled(blue)))
			}
		}
	}
	return elems
}
