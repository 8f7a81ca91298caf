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
	"testing"

	"github.com/stretchr/testify/assert"
)

func targetPixel(target []byte, width, x, y int) color.NRGBA {
	i := 4 * (y*width + x)
	return color.NRGBA{R: target[i], G: target[i+1], B: target[i+2], A: target[i+3]}
}

func setTargetPixel(target []byte, width, x, y int, c color.NRGBA) {
	i := 4 * (y*width + x)
	target[i], target[i+1], target[i+2], target[i+3] = c.R, c.G, c.B, c.A
}

func TestResolveUniform(t *testing.T) {
	want := color.NRGBA{R: 51, G: 102, B: 153, A: 255}
	for _, filter := range []Filter{FilterRMS, FilterBox} {
		for _, rate := range []int{1, 2, 3, 4} {
			r, target := newTestRenderer(t, 3, 2, rate, 255)
			r.Filter = filter
			for i := range r.samples.samples {
				r.samples.samples[i] = want
			}

			r.Resolve()

			for y := range 2 {
				for x := range 3 {
					assert.Equal(t, want, targetPixel(target, 3, x, y),
						"filter %s, rate %d, pixel (%d, %d)", filter, rate, x, y)
				}
			}
		}
	}
}

func TestResolveRMSOrder(t *testing.T) {
	r, target := newTestRenderer(t, 1, 1, 2, 255)
	block := r.samples.block(0, 0)
	for i := range block {
		block[i] = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	}
	// sample (1, 1) is visited last
	block[3] = color.NRGBA{R: 200, G: 100, B: 0, A: 55}

	r.Resolve()

	// sqrt((200² + 100²)/2) = 158.1, sqrt(100²/2) = 70.7, (55+255)/2 = 155
	assert.Equal(t, color.NRGBA{R: 158, G: 100, B: 70, A: 155}, targetPixel(target, 1, 0, 0))
}

func TestResolveRMSBlend(t *testing.T) {
	r, target := newTestRenderer(t, 3, 1, 2, 0)

	// pixel 0: painted target, resolved transparent black: RMS blend
	setTargetPixel(target, 3, 0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 40})

	// pixel 1: painted target, resolved white: unchanged
	setTargetPixel(target, 3, 1, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	white := r.samples.block(1, 0)
	for i := range white {
		white[i] = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}

	// pixel 2: blank canvas (one channel saturated): overwritten
	setTargetPixel(target, 3, 2, 0, color.NRGBA{R: 0, G: 255, B: 0, A: 255})
	dark := r.samples.block(2, 0)
	for i := range dark {
		dark[i] = color.NRGBA{R: 1, G: 2, B: 3, A: 4}
	}

	r.Resolve()

	assert.Equal(t, color.NRGBA{R: 7, G: 14, B: 21, A: 28}, targetPixel(target, 3, 0, 0))
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 40}, targetPixel(target, 3, 1, 0))
	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 4}, targetPixel(target, 3, 2, 0))
}

func TestResolveBox(t *testing.T) {
	r, target := newTestRenderer(t, 1, 1, 2, 255)
	r.Filter = FilterBox
	block := r.samples.block(0, 0)
	block[0] = color.NRGBA{A: 255}
	block[3] = color.NRGBA{A: 255}

	r.Resolve()

	// half-covered black over opaque white
	assert.Equal(t, color.NRGBA{R: 128, G: 128, B: 128, A: 255}, targetPixel(target, 1, 0, 0))
}

func TestResolvePointsLast(t *testing.T) {
	red := Color{R: 1, A: 1}
	for _, filter := range []Filter{FilterRMS, FilterBox} {
		r, target := newTestRenderer(t, 2, 1, 2, 255)
		r.Filter = filter
		for i := range r.samples.samples {
			r.samples.samples[i] = color.NRGBA{B: 255, A: 255}
		}
		r.rasterizePoint(0.5, 0.5, red)

		r.Resolve()

		assert.Equal(t, color.NRGBA{R: 255, A: 255}, targetPixel(target, 2, 0, 0), "filter %s", filter)
		assert.NotEqual(t, color.NRGBA{R: 255, A: 255}, targetPixel(target, 2, 1, 0), "filter %s", filter)
		assert.Empty(t, r.pixels)
	}
}

func TestFilterString(t *testing.T) {
	assert.Equal(t, "rms", FilterRMS.String())
	assert.Equal(t, "box", FilterBox.String())
	assert.Equal(t, "alpha", CoverageAlpha.String())
	assert.Equal(t, "brighten", CoverageBrighten.String())
}
