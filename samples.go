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
	"errors"
	"image"
	"image/color"
	"slices"
)

// Configuration errors.
var (
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidSize       = errors.New("invalid target size")
)

// SampleBuffer stores the supersampled colours of a render target.
// Every target pixel is covered by rate×rate samples, and each sample is
// an independent RGBA colour.  The samples of one pixel are stored
// contiguously, row by row.
//
// SampleBuffer implements [image.Image] on the full sample grid, which is
// useful for inspecting the buffer before it is resolved.
type SampleBuffer struct {
	width, height int // target size in pixels
	rate          int // samples per pixel along each axis

	samples []color.NRGBA
}

// NewSampleBuffer allocates a zeroed sample buffer for a target of the
// given size.
func NewSampleBuffer(width, height, rate int) (*SampleBuffer, error) {
	b := &SampleBuffer{}
	if err := b.Resize(width, height, rate); err != nil {
		return nil, err
	}
	return b, nil
}

// Resize changes the dimensions of the buffer and sets all samples to
// transparent black.  The underlying storage is reused when it is large
// enough.
func (b *SampleBuffer) Resize(width, height, rate int) error {
	if rate <= 0 {
		return ErrInvalidSampleRate
	}
	if width < 0 || height < 0 {
		return ErrInvalidSize
	}

	n := rate * rate * width * height
	b.samples = slices.Grow(b.samples[:0], n)[:n]
	clear(b.samples)

	b.width = width
	b.height = height
	b.rate = rate

	Logger().Debug("sample buffer resized",
		"width", width, "height", height, "rate", rate, "samples", n)
	return nil
}

// Clear sets all samples to transparent black.
func (b *SampleBuffer) Clear() {
	clear(b.samples)
}

// Len returns the number of samples, rate²·width·height.
func (b *SampleBuffer) Len() int {
	return len(b.samples)
}

// Rate returns the number of samples per pixel along each axis.
func (b *SampleBuffer) Rate() int {
	return b.rate
}

// Size returns the size of the render target in pixels.
func (b *SampleBuffer) Size() (width, height int) {
	return b.width, b.height
}

// index returns the position of sample (sx, sy) of pixel (x, y).
// The second return value is false if the sample lies outside the buffer.
func (b *SampleBuffer) index(x, y, sx, sy int) (int, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, false
	}
	if sx < 0 || sx >= b.rate || sy < 0 || sy >= b.rate {
		return 0, false
	}
	return ((y*b.width+x)*b.rate+sy)*b.rate + sx, true
}

// Sample returns the colour of sample (sx, sy) of pixel (x, y).
// Samples outside the buffer are transparent.
func (b *SampleBuffer) Sample(x, y, sx, sy int) Color {
	i, ok := b.index(x, y, sx, sy)
	if !ok {
		return Transparent
	}
	return FromNRGBA(b.samples[i])
}

// FillSample paints fg over sample (sx, sy) of pixel (x, y) using
// source-over compositing.  Writes outside the buffer are ignored.
func (b *SampleBuffer) FillSample(x, y, sx, sy int, fg Color) {
	i, ok := b.index(x, y, sx, sy)
	if !ok {
		return
	}
	bg := FromNRGBA(b.samples[i])
	b.samples[i] = Composite(fg, bg).NRGBA()
}

// FillPixel paints fg over all samples of pixel (x, y).
func (b *SampleBuffer) FillPixel(x, y int, fg Color) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	blk := b.block(x, y)
	for i, s := range blk {
		blk[i] = Composite(fg, FromNRGBA(s)).NRGBA()
	}
}

// block returns the samples of pixel (x, y), which must be inside the
// buffer.
func (b *SampleBuffer) block(x, y int) []color.NRGBA {
	n := b.rate * b.rate
	start := (y*b.width + x) * n
	return b.samples[start : start+n]
}

// ColorModel implements the [image.Image] interface.
func (b *SampleBuffer) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements the [image.Image] interface.
// The image covers the full sample grid.
func (b *SampleBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width*b.rate, b.height*b.rate)
}

// At implements the [image.Image] interface.
func (b *SampleBuffer) At(x, y int) color.Color {
	if x < 0 || y < 0 || b.rate == 0 {
		return color.NRGBA{}
	}
	i, ok := b.index(x/b.rate, y/b.rate, x%b.rate, y%b.rate)
	if !ok {
		return color.NRGBA{}
	}
	return b.samples[i]
}
