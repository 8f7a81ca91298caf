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

// Package viewport maps a square window of document space to normalized
// device coordinates and implements panning and zooming of the window.
package viewport

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/matrix"
)

// ErrInvalidSpan is returned for a viewbox with a non-positive span.
var ErrInvalidSpan = errors.New("viewbox span must be positive")

// Viewport describes the visible part of a document: the square with
// centre (X, Y) extending Span units in each direction.
type Viewport struct {
	X, Y, Span float64

	// SVGToNorm maps document coordinates to normalized device
	// coordinates, where the visible square becomes [0, 1]×[0, 1].
	SVGToNorm matrix.Matrix
}

// New returns a viewport for the given viewbox.
func New(x, y, span float64) (*Viewport, error) {
	if !(span > 0) {
		return nil, ErrInvalidSpan
	}
	v := &Viewport{}
	v.SetViewBox(x, y, span)
	return v, nil
}

// SetViewBox sets the visible window and recomputes SVGToNorm.
// The transformation scales by 1/(2·span) and translates the corner
// (x-span, y-span) to the origin.
func (v *Viewport) SetViewBox(x, y, span float64) {
	v.X = x
	v.Y = y
	v.Span = span

	s := 1 / (2 * span)
	v.SVGToNorm = matrix.Matrix{
		s, 0,
		0, s,
		-s * (x - span), -s * (y - span),
	}
}

// UpdateViewBox pans and zooms the window.  The centre moves by (-dx, -dy),
// so that dragging the view by (dx, dy) moves the content with the
// pointer, and the span is multiplied by scale.  If the new span is not
// positive and finite, the viewport is left unchanged and ErrInvalidSpan
// is returned.
func (v *Viewport) UpdateViewBox(dx, dy, scale float64) error {
	span := v.Span * scale
	if !(span > 0) || math.IsInf(span, 1) {
		return ErrInvalidSpan
	}
	v.SetViewBox(v.X-dx, v.Y-dy, span)
	return nil
}

// NormToScreen maps normalized device coordinates to the pixels of a
// width×height screen.
func NormToScreen(width, height int) matrix.Matrix {
	return matrix.Scale(float64(width), float64(height))
}

// CanvasToScreen maps document coordinates to the pixels of a
// width×height screen.
func (v *Viewport) CanvasToScreen(width, height int) matrix.Matrix {
	return v.SVGToNorm.Mul(NormToScreen(width, height))
}
