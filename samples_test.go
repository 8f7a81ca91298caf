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
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleBufferSize(t *testing.T) {
	for _, tc := range []struct{ w, h, rate int }{
		{0, 0, 1},
		{3, 2, 1},
		{3, 2, 4},
		{17, 5, 3},
	} {
		b, err := NewSampleBuffer(tc.w, tc.h, tc.rate)
		require.NoError(t, err)
		assert.Equal(t, tc.rate*tc.rate*tc.w*tc.h, b.Len())
		assert.Equal(t, image.Rect(0, 0, tc.w*tc.rate, tc.h*tc.rate), b.Bounds())
	}
}

func TestSampleBufferInvalid(t *testing.T) {
	_, err := NewSampleBuffer(3, 3, 0)
	assert.ErrorIs(t, err, ErrInvalidSampleRate)
	_, err = NewSampleBuffer(3, 3, -2)
	assert.ErrorIs(t, err, ErrInvalidSampleRate)
	_, err = NewSampleBuffer(-1, 3, 1)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestSampleBufferFill(t *testing.T) {
	b, err := NewSampleBuffer(3, 2, 4)
	require.NoError(t, err)

	red := Color{R: 1, A: 1}
	b.FillSample(1, 1, 2, 3, red)
	assert.Equal(t, red, b.Sample(1, 1, 2, 3))
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, b.At(1*4+2, 1*4+3))
	assert.Equal(t, color.NRGBA{}, b.At(1*4+3, 1*4+2))

	// half-transparent blue over red
	b.FillSample(1, 1, 2, 3, Color{B: 1, A: 0.5})
	got := b.Sample(1, 1, 2, 3)
	assert.InDelta(t, 0.5, got.R, 1.0/255)
	assert.InDelta(t, 0.5, got.B, 1.0/255)
	assert.Equal(t, 1.0, got.A)

	// out of range writes are dropped
	for _, p := range [][4]int{
		{-1, 0, 0, 0}, {3, 0, 0, 0}, {0, 2, 0, 0}, {0, 0, 4, 0}, {0, 0, 0, -1},
	} {
		b.FillSample(p[0], p[1], p[2], p[3], red)
	}
	n := 0
	for _, s := range b.samples {
		if s != (color.NRGBA{}) {
			n++
		}
	}
	assert.Equal(t, 1, n)
	assert.Equal(t, Transparent, b.Sample(5, 5, 0, 0))
}

func TestSampleBufferResizeClears(t *testing.T) {
	b, err := NewSampleBuffer(4, 4, 2)
	require.NoError(t, err)
	for i := range b.samples {
		b.samples[i] = color.NRGBA{R: 1, G: 2, B: 3, A: 4}
	}

	require.NoError(t, b.Resize(2, 3, 3))
	assert.Equal(t, 9*2*3, b.Len())
	for _, s := range b.samples {
		assert.Equal(t, color.NRGBA{}, s)
	}

	b.FillSample(0, 0, 0, 0, Black)
	b.Clear()
	assert.Equal(t, Transparent, b.Sample(0, 0, 0, 0))
}

func TestSampleBufferFillPixel(t *testing.T) {
	b, err := NewSampleBuffer(2, 2, 3)
	require.NoError(t, err)

	b.FillPixel(1, 0, Black)
	b.FillPixel(2, 0, Black)
	b.FillPixel(0, -1, Black)
	for sy := range 3 {
		for sx := range 3 {
			assert.Equal(t, Black, b.Sample(1, 0, sx, sy))
			assert.Equal(t, Transparent, b.Sample(0, 0, sx, sy))
			assert.Equal(t, Transparent, b.Sample(0, 1, sx, sy))
		}
	}
}
