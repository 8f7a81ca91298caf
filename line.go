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

import "math"

// LineCoverage selects how the partial coverage of line pixels is
// represented.
type LineCoverage int

const (
	// CoverageAlpha scales the alpha channel of the stroke colour by the
	// coverage.  Pixels with zero coverage are not touched.
	CoverageAlpha LineCoverage = iota

	// CoverageBrighten pulls the stroke colour toward white by the
	// uncovered fraction of the pixel and paints it with unchanged alpha.
	// This reproduces the output of older versions, including the white
	// pixels written next to axis-aligned lines.
	CoverageBrighten
)

func (lc LineCoverage) String() string {
	switch lc {
	case CoverageAlpha:
		return "alpha"
	case CoverageBrighten:
		return "brighten"
	default:
		return "LineCoverage(invalid)"
	}
}

// fpart returns the fractional part of x.  For negative x the complement
// 1-(x-⌊x⌋) is used.
func fpart(x float64) float64 {
	if x < 0 {
		return 1 - (x - math.Floor(x))
	}
	return x - math.Floor(x)
}

// rfpart returns 1-fpart(x).
func rfpart(x float64) float64 {
	return 1 - fpart(x)
}

// rasterizeLine draws an anti-aliased line between two points in device
// coordinates, using Xiaolin Wu's algorithm.
//
// The line is stepped one pixel at a time along its major axis, starting
// at the endpoint with the smaller coordinate.  At every step the two
// pixels straddling the exact minor-axis position are painted, weighted by
// their distance from it.
func (r *Renderer) rasterizeLine(x0, y0, x1, y1 float64, c Color) {
	if !isFinite(x0) || !isFinite(y0) || !isFinite(x1) || !isFinite(y1) {
		return
	}

	steep := math.Abs(y1-y0) > math.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	gradient := 0.0
	if dx := x1 - x0; dx != 0 {
		gradient = (y1 - y0) / dx
	}

	// Only steps between -1 and the far edge of the clip rectangle along
	// the major axis can produce visible pixels.
	xLimit := r.Clip.URx
	if steep {
		xLimit = r.Clip.URy
	}
	intery := y0
	x := x0
	if x < -1 {
		skip := math.Ceil(-1 - x)
		x += skip
		intery += skip * gradient
	}

	for ; x <= x1 && x < xLimit; x++ {
		px := int(math.Floor(x))
		py := int(math.Floor(intery))
		f := fpart(intery)
		if steep {
			r.plot(py, px, rfpart(intery), c)
			r.plot(py+1, px, f, c)
		} else {
			r.plot(px, py, rfpart(intery), c)
			r.plot(px, py+1, f, c)
		}
		intery += gradient
	}
}

// plot paints all samples of the pixel (x, y) with a stroke colour
// representing the given coverage.
func (r *Renderer) plot(x, y int, coverage float64, c Color) {
	switch r.LineCoverage {
	case CoverageBrighten:
		c = Brighten(c, 1-coverage)
	default:
		if coverage <= 0 {
			return
		}
		c.A *= min(coverage, 1)
	}
	r.sink.FillPixel(x, y, c)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
