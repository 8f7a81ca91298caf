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

// Package triangulate splits simple polygons into triangles.
package triangulate

import (
	"errors"
	"fmt"
	"slices"

	"seehuhn.de/go/geom/vec"
)

var (
	// ErrDegenerate indicates a polygon with fewer than three vertices or
	// with zero area.
	ErrDegenerate = errors.New("degenerate polygon")

	// ErrNoEar indicates that ear clipping got stuck, which happens for
	// self-intersecting polygons.
	ErrNoEar = errors.New("no ear found")
)

// Polygon triangulates a simple polygon by ear clipping.  The vertices may
// be given in either orientation.  The result is a flat list of triangle
// vertices, three per triangle.
func Polygon(pts []vec.Vec2) ([]vec.Vec2, error) {
	n := len(pts)
	if n < 3 {
		return nil, fmt.Errorf("%w: %d vertices", ErrDegenerate, n)
	}
	area := SignedArea(pts)
	if area == 0 {
		return nil, fmt.Errorf("%w: zero area", ErrDegenerate)
	}
	ccw := area > 0

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	out := make([]vec.Vec2, 0, 3*(n-2))
	for len(idx) > 3 {
		found := false
		for i := range idx {
			i0 := idx[(i+len(idx)-1)%len(idx)]
			i1 := idx[i]
			i2 := idx[(i+1)%len(idx)]
			a, b, c := pts[i0], pts[i1], pts[i2]

			cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
			if cross == 0 {
				// b lies on the segment ac or repeats a vertex; dropping
				// it leaves the outline unchanged.
				idx = slices.Delete(idx, i, i+1)
				found = true
				break
			}
			if (cross > 0) != ccw {
				continue // reflex vertex
			}

			blocked := false
			for _, j := range idx {
				if j == i0 || j == i1 || j == i2 {
					continue
				}
				if PointInTriangle(pts[j], a, b, c) {
					blocked = true
					break
				}
			}
			if blocked {
				continue
			}

			out = append(out, a, b, c)
			idx = slices.Delete(idx, i, i+1)
			found = true
			break
		}
		if !found {
			return nil, fmt.Errorf("%w (%d of %d vertices left)", ErrNoEar, len(idx), n)
		}
	}

	a, b, c := pts[idx[0]], pts[idx[1]], pts[idx[2]]
	if (b.X-a.X)*(c.Y-a.Y)-(b.Y-a.Y)*(c.X-a.X) != 0 {
		out = append(out, a, b, c)
	}
	return out, nil
}

// SignedArea returns the area enclosed by the polygon.  The result is
// positive if the vertices are ordered counter-clockwise in a y-up
// coordinate system.
func SignedArea(pts []vec.Vec2) float64 {
	var a float64
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a / 2
}

// PointInTriangle reports whether p lies inside or on the boundary of the
// triangle abc.  The vertex order does not matter.
func PointInTriangle(p, a, b, c vec.Vec2) bool {
	d1 := side(p, a, b)
	d2 := side(p, b, c)
	d3 := side(p, c, a)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func side(p1, p2, p3 vec.Vec2) float64 {
	return (p1.X-p3.X)*(p2.Y-p3.Y) - (p2.X-p3.X)*(p1.Y-p3.Y)
}
