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

package viewport

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/matrix"
)

func apply(m matrix.Matrix, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

func assertMaps(t *testing.T, m matrix.Matrix, x, y, wantX, wantY float64) {
	t.Helper()
	gotX, gotY := apply(m, x, y)
	assert.InDelta(t, wantX, gotX, 1e-12, "x of (%g, %g)", x, y)
	assert.InDelta(t, wantY, gotY, 1e-12, "y of (%g, %g)", x, y)
}

func TestNew(t *testing.T) {
	v, err := New(0, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, matrix.Matrix{0.5, 0, 0, 0.5, 0.5, 0.5}, v.SVGToNorm)

	assertMaps(t, v.SVGToNorm, -1, -1, 0, 0)
	assertMaps(t, v.SVGToNorm, 0, 0, 0.5, 0.5)
	assertMaps(t, v.SVGToNorm, 1, 1, 1, 1)

	for _, span := range []float64{0, -1, math.NaN()} {
		_, err := New(0, 0, span)
		assert.ErrorIs(t, err, ErrInvalidSpan, "span %g", span)
	}
}

func TestSetViewBox(t *testing.T) {
	v, err := New(0, 0, 1)
	require.NoError(t, err)

	v.SetViewBox(10, 20, 5)
	assert.Equal(t, 10.0, v.X)
	assert.Equal(t, 20.0, v.Y)
	assert.Equal(t, 5.0, v.Span)
	assertMaps(t, v.SVGToNorm, 5, 15, 0, 0)
	assertMaps(t, v.SVGToNorm, 10, 20, 0.5, 0.5)
	assertMaps(t, v.SVGToNorm, 15, 25, 1, 1)
}

func TestUpdateViewBox(t *testing.T) {
	v, err := New(0, 0, 1)
	require.NoError(t, err)

	require.NoError(t, v.UpdateViewBox(1, 2, 2))
	assert.Equal(t, -1.0, v.X)
	assert.Equal(t, -2.0, v.Y)
	assert.Equal(t, 2.0, v.Span)
	assertMaps(t, v.SVGToNorm, -3, -4, 0, 0)
	assertMaps(t, v.SVGToNorm, 1, 0, 1, 1)

	// zooming back restores the span
	require.NoError(t, v.UpdateViewBox(0, 0, 0.5))
	assert.Equal(t, 1.0, v.Span)
}

func TestUpdateViewBoxInvalid(t *testing.T) {
	v, err := New(3, 4, 2)
	require.NoError(t, err)
	want := *v

	for _, scale := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		assert.ErrorIs(t, v.UpdateViewBox(1, 1, scale), ErrInvalidSpan, "scale %g", scale)
		assert.Equal(t, want, *v, "scale %g", scale)
	}
}

func TestCanvasToScreen(t *testing.T) {
	v, err := New(0, 0, 1)
	require.NoError(t, err)

	assert.Equal(t, matrix.Matrix{200, 0, 0, 100, 0, 0}, NormToScreen(200, 100))

	m := v.CanvasToScreen(200, 100)
	assertMaps(t, m, -1, -1, 0, 0)
	assertMaps(t, m, 0, 0, 100, 50)
	assertMaps(t, m, 1, 1, 200, 100)
}
