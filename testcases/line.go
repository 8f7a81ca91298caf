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

var lineCases = []TestCase{
	{
		Name:     "horizontal",
		Elements: []softrender.Element{line(5, 32, 59, 32, black)},
		Width:    64,
		Height:   64,
	},
	{
		Name:     "vertical",
		Elements: []softrender.Element{line(32, 5, 32, 59, black)},
		Width:    64,
		Height:   64,
	},
	{
		Name:     "diagonal",
		Elements: []softrender.Element{line(5, 5, 59, 59, black)},
		Width:    64,
		Height:   64,
	},
	{
		Name:     "shallow",
		Elements: []softrender.Element{line(4, 20, 60, 27.5, blue)},
		Width:    64,
		Height:   64,
	},
	{
		Name:     "steep",
		Elements: []softrender.Element{line(20, 60, 27.5, 4, blue)},
		Width:    64,
		Height:   64,
	},
	{
		Name:       "fan",
		Elements:   fan(32, 32, 28, 24, black),
		Width:      64,
		Height:     64,
		SampleRate: 2,
	},
	{
		Name: "zigzag",
		Elements: []softrender.Element{&softrender.Polyline{
			Common: softrender.Common{Style: stroked(red)},
			Points: zigzag(6, 20, 58, 44, 8),
		}},
		Width:  64,
		Height: 64,
	},
	{
		Name:     "rect_outline",
		Elements: []softrender.Element{rectangle(10.5, 12.5, 53.5, 51.5, stroked(green))},
		Width:    64,
		Height:   64,
	},
	{
		Name: "hexagon_outline",
		Elements: []softrender.Element{
			polygon(stroked(black), regularPolygon(32, 32, 26, 6)...),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name:     "points",
		Elements: pointGrid(4, 4, 60, 60, 8, red),
		Width:    64,
		Height:   64,
	},
	{
		Name: "translucent_crossing",
		Elements: []softrender.Element{
			line(4, 32, 60, 32, translucentRed),
			line(32, 4, 32, 60, translucentBlue),
			line(4, 4, 60, 60, translucentRed),
		},
		Width:      64,
		Height:     64,
		SampleRate: 2,
	},
}

// fan builds n lines starting at (cx, cy), spread evenly over all
// directions.
func fan(cx, cy, r float64, n int, c softrender.Color) []softrender.Element {
	elems := make([]softrender.Element, n)
	for i := range n {
		angle := float64(i) * 2 * math.Pi / float64(n)
		elems[i] = line(cx, cy, cx+r*math.Cos(angle), cy+r*math.Sin(angle), c)
	}
	return elems
}

// zigzag returns the vertices of a zigzag line between x1 and x2 which
// alternates between y1 and y2.
func zigzag(x1, y1, x2, y2 float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n+1)
	for i := range pts {
		y := y1
		if i%2 == 1 {
			y = y2
		}
		pts[i] = pt(x1+(x2-x1)*float64(i)/float64(n), y)
	}
	return pts
}

// pointGrid places single points on a regular grid.
func pointGrid(x1, y1, x2, y2, step float64, c softrender.Color) []softrender.Element {
	var elems []softrender.Element
	for y := y1; y <= y2; y += step {
		for x := x1; x <= x2; x += step {
			elems = append(elems, &softrender.Point{
				Common:   softrender.Common{Style: filled(c)},
				Position: pt(x+0.5, y+0.5),
			})
		}
	}
	return elems
}
