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

// Package softrender implements a supersampling software renderer for
// simple vector scenes.
//
// A [Renderer] draws the elements of a [Document] into a buffer of
// supersamples.  Lines are drawn with Xiaolin Wu's anti-aliasing, filled
// shapes are split into triangles which are sampled on a regular grid
// within each pixel.  [Renderer.Resolve] then reduces the samples to the
// caller's RGBA render target.
package softrender

import (
	"errors"
	"fmt"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/softrender/triangulate"
)

// ErrTargetTooSmall is returned if the render target buffer cannot hold
// the requested number of pixels.
var ErrTargetTooSmall = errors.New("render target too small")

// sampleSink receives the sample writes of the rasterisers.
type sampleSink interface {
	FillSample(x, y, sx, sy int, c Color)
	FillPixel(x, y int, c Color)
}

// pendingPixel is a pixel written directly to the render target.
type pendingPixel struct {
	x, y int
	c    color.NRGBA
}

// Renderer draws documents into a caller-owned RGBA render target.
//
// The render target is a row-major byte slice with four bytes (R, G, B, A)
// per pixel and the origin in the top-left corner.  The Renderer never
// reallocates the target.
//
// Drawing accumulates in an internal sample buffer until [Renderer.Clear]
// is called or the target size or sample rate changes.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	// CTM maps document coordinates to device (pixel) coordinates.
	// Element transformations are applied before CTM.
	CTM matrix.Matrix

	// Clip restricts drawing to this device-coordinate rectangle.
	// It is reset to the full target by SetRenderTarget.
	Clip rect.Rect

	// LineCoverage selects how partial coverage of line pixels is
	// represented.
	LineCoverage LineCoverage

	// Filter selects how samples are combined when resolving.
	Filter Filter

	// Outline enables drawing a black frame around the document canvas
	// in Render.
	Outline bool

	// Triangulate splits polygons into triangles for filling.
	// The result must be a flat list with three vertices per triangle.
	Triangulate func(pts []vec.Vec2) ([]vec.Vec2, error)

	target        []byte
	width, height int
	rate          int

	samples *SampleBuffer
	sink    sampleSink
	stack   transformStack
	pixels  []pendingPixel
}

// NewRenderer returns a Renderer with sample rate 1, an identity CTM and
// no render target.  Call SetRenderTarget before drawing.
func NewRenderer() *Renderer {
	samples := &SampleBuffer{rate: 1}
	return &Renderer{
		CTM:          matrix.Identity,
		LineCoverage: CoverageAlpha,
		Filter:       FilterRMS,
		Triangulate:  triangulate.Polygon,

		rate:    1,
		samples: samples,
		sink:    samples,
	}
}

// SetRenderTarget sets the buffer which receives the output of Resolve.
// The buffer must hold at least 4·width·height bytes.  The sample buffer
// is reallocated and cleared.
func (r *Renderer) SetRenderTarget(target []byte, width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if need := 4 * width * height; len(target) < need {
		return fmt.Errorf("%w: need %d bytes, got %d", ErrTargetTooSmall, need, len(target))
	}
	if err := r.samples.Resize(width, height, r.rate); err != nil {
		return err
	}

	r.target = target
	r.width = width
	r.height = height
	r.Clip = rect.Rect{LLx: 0, LLy: 0, URx: float64(width), URy: float64(height)}
	r.pixels = r.pixels[:0]
	return nil
}

// SetSampleRate sets the number of samples per pixel along each axis.
// The sample buffer is reallocated and cleared.
func (r *Renderer) SetSampleRate(rate int) error {
	if rate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, rate)
	}
	if err := r.samples.Resize(r.width, r.height, rate); err != nil {
		return err
	}
	r.rate = rate
	r.pixels = r.pixels[:0]
	return nil
}

// SampleRate returns the current number of samples per pixel along each
// axis.
func (r *Renderer) SampleRate() int {
	return r.rate
}

// Samples gives access to the sample buffer.
func (r *Renderer) Samples() *SampleBuffer {
	return r.samples
}

// Clear discards everything drawn since the last resize.
func (r *Renderer) Clear() {
	r.samples.Clear()
	r.pixels = r.pixels[:0]
}

// Render draws all elements of doc and resolves the result into the
// render target.
//
// Elements which cannot be drawn completely do not stop rendering; the
// corresponding errors are joined and returned.
func (r *Renderer) Render(doc *Document) error {
	r.stack.reset(r.CTM)

	var errs []error
	for i, e := range doc.Elements {
		if err := r.drawElement(e, fmt.Sprint(i)); err != nil {
			errs = append(errs, err)
		}
	}

	if r.Outline {
		r.drawOutline(doc.Width, doc.Height)
	}

	r.Resolve()
	return errors.Join(errs...)
}

// Draw draws a single element tree into the sample buffer.
// The result becomes visible after the next call to Resolve.
func (r *Renderer) Draw(e Element) error {
	r.stack.reset(r.CTM)
	return r.drawElement(e, "0")
}

// fillPixel sets pixel (x, y) of the render target to c, bypassing the
// sample buffer.  The write happens at the end of the next Resolve.
func (r *Renderer) fillPixel(x, y int, c Color) {
	r.pixels = append(r.pixels, pendingPixel{x: x, y: y, c: c.NRGBA()})
}
