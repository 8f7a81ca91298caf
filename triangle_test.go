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
	"image/color"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

func TestTriangleRate1(t *testing.T) {
	r, _ := newTestRenderer(t, 12, 12, 1, 0)
	r.rasterizeTriangle(0, 0, 10, 0, 0, 10, Black)

	for y := range 12 {
		for x := range 12 {
			cx := float64(x) + 0.5
			cy := float64(y) + 0.5
			s := r.samples.Sample(x, y, 0, 0)
			switch {
			case cx+cy < 10:
				assert.Equal(t, Black, s, "sample at (%g, %g)", cx, cy)
			case cx+cy > 10:
				assert.Equal(t, Transparent, s, "sample at (%g, %g)", cx, cy)
			}
		}
	}
}

func TestTriangleWindingAgnostic(t *testing.T) {
	pts := []float64{1.3, 0.7, 9.2, 2.1, 4.4, 8.8}

	r1, _ := newTestRenderer(t, 12, 12, 3, 0)
	r1.rasterizeTriangle(pts[0], pts[1], pts[2], pts[3], pts[4], pts[5], Black)

	r2, _ := newTestRenderer(t, 12, 12, 3, 0)
	r2.rasterizeTriangle(pts[0], pts[1], pts[4], pts[5], pts[2], pts[3], Black)

	assert.Equal(t, r1.samples.samples, r2.samples.samples)
	assert.True(t, slices.Contains(r1.samples.samples, color.NRGBA{A: 255}))
}

func TestTriangleSubsamples(t *testing.T) {
	// The triangle covers the left half of pixel (0, 0) exactly.  With
	// rate 4, the two left sample columns are inside.
	r, _ := newTestRenderer(t, 2, 2, 4, 0)
	r.rasterizeTriangle(0, -10, 0.5, -10, 0.5, 20, Black)
	r.rasterizeTriangle(0, -10, 0, 20, 0.5, 20, Black)

	for sy := range 4 {
		for sx := range 4 {
			want := Transparent
			if sx < 2 {
				want = Black
			}
			assert.Equal(t, want, r.samples.Sample(0, 0, sx, sy), "sample (%d, %d)", sx, sy)
			assert.Equal(t, Transparent, r.samples.Sample(1, 0, sx, sy))
		}
	}
}

func TestTriangleClipped(t *testing.T) {
	r, _ := newTestRenderer(t, 4, 4, 2, 0)
	r.rasterizeTriangle(-100, -100, 300, -100, -100, 300, Black)

	// the target lies completely inside the triangle
	for _, s := range r.samples.samples {
		assert.Equal(t, color.NRGBA{A: 255}, s)
	}
	assert.Equal(t, 4*4*4, r.samples.Len())
}

func TestInside(t *testing.T) {
	a := vec.Vec2{X: 0, Y: 0}
	b := vec.Vec2{X: 10, Y: 0}
	c := vec.Vec2{X: 0, Y: 10}

	cases := []struct {
		p  vec.Vec2
		in bool
	}{
		{vec.Vec2{X: 1, Y: 1}, true},
		{vec.Vec2{X: 5, Y: 5}, true}, // on the hypotenuse
		{vec.Vec2{X: 0, Y: 3}, true}, // on an edge
		{vec.Vec2{X: 6, Y: 6}, false},
		{vec.Vec2{X: -1, Y: 1}, false},
	}
	for _, tc := range cases {
		got := inside(a, b, c, tc.p) || inside(a, c, b, tc.p)
		assert.Equal(t, tc.in, got, "point %v", tc.p)
	}

	// only one of the two orders accepts interior points
	p := vec.Vec2{X: 1, Y: 1}
	assert.NotEqual(t, inside(a, b, c, p), inside(a, c, b, p))
}

func TestTriangleFarAway(t *testing.T) {
	r, _ := newTestRenderer(t, 10, 10, 2, 0)
	sink := countWrites(r)

	for _, d := range []float64{1e19, -1e19, 1e300, -1e300} {
		r.rasterizeTriangle(d, d, d+10, d, d, d+10, Black)
		r.rasterizeTriangle(d, 0, d+10, 0, d, 10, Black)
		r.rasterizeTriangle(0, d, 10, d, 0, d+10, Black)
	}
	require.NoError(t, r.Draw(&Rect{
		Position:  vec.Vec2{X: 1e19, Y: 1e19},
		Dimension: vec.Vec2{X: 10, Y: 10},
		Common:    Common{Style: Style{Fill: Black}},
	}))

	assert.Zero(t, sink.n)
}
