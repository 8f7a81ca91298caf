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

package softrender

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// rasterizeTriangle fills a triangle given in device coordinates with a
// flat colour.
//
// Every pixel in the bounding box of the triangle is tested at rate×rate
// sample positions, located at the centres of a regular grid within the
// pixel.  The test accepts both vertex orders, so clockwise and
// counter-clockwise triangles give the same result.
func (r *Renderer) rasterizeTriangle(x0, y0, x1, y1, x2, y2 float64, c Color) {
	if !isFinite(x0) || !isFinite(y0) || !isFinite(x1) || !isFinite(y1) ||
		!isFinite(x2) || !isFinite(y2) {
		return
	}

	// The bounding box rounds the low corner down and the high corner up,
	// then is clipped to the output region on both sides.  The clipped
	// box is checked in float, before any int conversion.
	loX := max(math.Floor(min(x0, x1, x2)), r.Clip.LLx)
	loY := max(math.Floor(min(y0, y1, y2)), r.Clip.LLy)
	hiX := min(math.Ceil(max(x0, x1, x2)), r.Clip.URx-1)
	hiY := min(math.Ceil(max(y0, y1, y2)), r.Clip.URy-1)
	if !(loX <= hiX && loY <= hiY) {
		return
	}
	xMin, xMax := int(loX), int(hiX)
	yMin, yMax := int(loY), int(hiY)

	a := vec.Vec2{X: x0, Y: y0}
	b := vec.Vec2{X: x1, Y: y1}
	d := vec.Vec2{X: x2, Y: y2}

	rate := r.rate
	size := 1 / float64(rate)
	center := size / 2

	for x := xMin; x <= xMax; x++ {
		for y := yMin; y <= yMax; y++ {
			for sx := range rate {
				for sy := range rate {
					p := vec.Vec2{
						X: float64(x) + center + float64(sx)*size,
						Y: float64(y) + center + float64(sy)*size,
					}
					if inside(a, b, d, p) || inside(a, d, b, p) {
						r.sink.FillSample(x, y, sx, sy, c)
					}
				}
			}
		}
	}
}

// inside reports whether p lies in the triangle abc.  The vertices must be
// ordered so that the interior is on the non-negative side of each edge;
// points on an edge count as inside.
func inside(a, b, c, p vec.Vec2) bool {
	return edgeFunction(a, b, p) >= 0 &&
		edgeFunction(b, c, p) >= 0 &&
		edgeFunction(c, a, p) >= 0
}

// edgeFunction returns the z-component of the cross product (b-a)×(p-a).
func edgeFunction(a, b, p vec.Vec2) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}
