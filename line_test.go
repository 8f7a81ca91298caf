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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRenderer returns a renderer for a width×height target which is
// filled with the byte value bg.
func newTestRenderer(t *testing.T, width, height, rate int, bg byte) (*Renderer, []byte) {
	t.Helper()

	target := make([]byte, 4*width*height)
	for i := range target {
		target[i] = bg
	}

	r := NewRenderer()
	require.NoError(t, r.SetRenderTarget(target, width, height))
	require.NoError(t, r.SetSampleRate(rate))
	return r, target
}

// pixelSamples returns all samples of pixel (x, y).
func pixelSamples(r *Renderer, x, y int) []color.NRGBA {
	return r.samples.block(x, y)
}

// assertPixel checks that all samples of pixel (x, y) equal want.
func assertPixel(t *testing.T, r *Renderer, x, y int, want color.NRGBA) {
	t.Helper()
	for i, s := range pixelSamples(r, x, y) {
		if !assert.Equal(t, want, s, "pixel (%d, %d), sample %d", x, y, i) {
			return
		}
	}
}

func TestFPart(t *testing.T) {
	cases := []struct{ x, f float64 }{
		{0, 0},
		{2.25, 0.25},
		{7, 0},
		{-0.25, 0.25},
		{-1.75, 0.75},
		{-3, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.f, fpart(tc.x), "fpart(%g)", tc.x)
		assert.Equal(t, 1-tc.f, rfpart(tc.x), "rfpart(%g)", tc.x)
	}
}

func TestLineHorizontal(t *testing.T) {
	r, _ := newTestRenderer(t, 10, 10, 2, 0)
	r.rasterizeLine(1, 5, 8, 5, Black)

	opaque := color.NRGBA{A: 255}
	for x := range 10 {
		want := color.NRGBA{}
		if x >= 1 && x <= 8 {
			want = opaque
		}
		assertPixel(t, r, x, 5, want)
		assertPixel(t, r, x, 4, color.NRGBA{})
		assertPixel(t, r, x, 6, color.NRGBA{})
	}
}

func TestLineVertical(t *testing.T) {
	r, _ := newTestRenderer(t, 10, 10, 3, 0)
	r.rasterizeLine(3, 8, 3, 1, Black) // drawn upwards

	opaque := color.NRGBA{A: 255}
	for y := range 10 {
		want := color.NRGBA{}
		if y >= 1 && y <= 8 {
			want = opaque
		}
		assertPixel(t, r, 3, y, want)
		assertPixel(t, r, 2, y, color.NRGBA{})
		assertPixel(t, r, 4, y, color.NRGBA{})
	}
}

func TestLineCoverage(t *testing.T) {
	r, _ := newTestRenderer(t, 6, 4, 1, 0)
	r.rasterizeLine(0, 1.25, 5, 1.25, Black)

	for x := range 6 {
		assertPixel(t, r, x, 1, color.NRGBA{A: 191})
		assertPixel(t, r, x, 2, color.NRGBA{A: 64})
		assertPixel(t, r, x, 0, color.NRGBA{})
	}
}

func TestLineDiagonal(t *testing.T) {
	r, _ := newTestRenderer(t, 8, 8, 1, 0)
	r.rasterizeLine(0, 0, 7, 7, Black)

	for i := range 8 {
		assertPixel(t, r, i, i, color.NRGBA{A: 255})
		if i+1 < 8 {
			assertPixel(t, r, i, i+1, color.NRGBA{})
			assertPixel(t, r, i+1, i, color.NRGBA{})
		}
	}
}

func TestLineBrighten(t *testing.T) {
	r, _ := newTestRenderer(t, 10, 10, 1, 0)
	r.LineCoverage = CoverageBrighten
	r.rasterizeLine(1, 5, 8, 5, Black)

	for x := 1; x <= 8; x++ {
		assertPixel(t, r, x, 5, color.NRGBA{A: 255})
		// the zero-weight neighbour is painted white
		assertPixel(t, r, x, 6, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	}
}

func TestLineDegenerate(t *testing.T) {
	r, _ := newTestRenderer(t, 10, 10, 1, 0)

	// a zero-length line paints the pixel at its position
	r.rasterizeLine(4, 4, 4, 4, Black)
	assertPixel(t, r, 4, 4, color.NRGBA{A: 255})

	// non-finite coordinates are ignored
	r.Clear()
	r.rasterizeLine(math.NaN(), 1, 5, 5, Black)
	r.rasterizeLine(1, 1, math.Inf(1), 5, Black)
	for _, s := range r.samples.samples {
		assert.Equal(t, color.NRGBA{}, s)
	}
}

func TestLineFarOffscreen(t *testing.T) {
	r, _ := newTestRenderer(t, 10, 10, 1, 0)
	r.rasterizeLine(-1e9, 5, 5, 5, Black)
	r.rasterizeLine(2, 7, 1e12, 7, Black)

	for x := range 10 {
		want := color.NRGBA{}
		if x <= 5 {
			want = color.NRGBA{A: 255}
		}
		assertPixel(t, r, x, 5, want)

		want = color.NRGBA{}
		if x >= 2 {
			want = color.NRGBA{A: 255}
		}
		assertPixel(t, r, x, 7, want)
	}
}
