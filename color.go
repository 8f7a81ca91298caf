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
)

// Color is a straight (non-premultiplied) RGBA colour with channels
// in the range [0, 1].  The alpha channel is opacity.
type Color struct {
	R, G, B, A float64
}

// Frequently used colours.
var (
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
	Transparent = Color{}
)

// transparentAlpha is the alpha value below which a composited colour
// counts as fully transparent.
const transparentAlpha = 1.0e-6

// RGBA implements the [color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA returns the 8-bit encoding of c.  Every channel is clamped to
// [0, 1] before it is scaled.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: encode(c.R),
		G: encode(c.G),
		B: encode(c.B),
		A: encode(c.A),
	}
}

// FromNRGBA converts an 8-bit colour to a Color.
func FromNRGBA(c color.NRGBA) Color {
	return Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

// Composite paints fg over bg using the source-over operator.
//
// The resulting alpha is 1-(1-fg.A)(1-bg.A).  If this is (almost) zero,
// the result is [Transparent].  Otherwise each colour channel is
// fg·fg.A + bg·(1-fg.A).
func Composite(fg, bg Color) Color {
	a := 1 - (1-fg.A)*(1-bg.A)
	if a < transparentAlpha {
		return Transparent
	}
	return Color{
		R: fg.R*fg.A + bg.R*(1-fg.A),
		G: fg.G*fg.A + bg.G*(1-fg.A),
		B: fg.B*fg.A + bg.B*(1-fg.A),
		A: a,
	}
}

// BlendRMS merges two colours.  The colour channels are combined using
// the root mean square sqrt((a²+b²)/2), alpha uses the arithmetic mean.
// The result is clamped to [0, 1].
func BlendRMS(a, b Color) Color {
	return Color{
		R: clamp01(blendRMS(a.R, b.R)),
		G: clamp01(blendRMS(a.G, b.G)),
		B: clamp01(blendRMS(a.B, b.B)),
		A: clamp01(0.5*a.A + 0.5*b.A),
	}
}

// Brighten pulls the colour channels of c toward white.  An amount of 0
// leaves c unchanged, an amount of 1 gives white.  Alpha is not modified.
func Brighten(c Color, amount float64) Color {
	amount = clamp01(amount)
	return Color{
		R: c.R + (1-c.R)*amount,
		G: c.G + (1-c.G)*amount,
		B: c.B + (1-c.B)*amount,
		A: c.A,
	}
}

func blendRMS(a, b float64) float64 {
	return math.Sqrt(0.5*a*a + 0.5*b*b)
}

// clamp01 restricts x to [0, 1].  NaN maps to 0.
func clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// encode converts a channel value to 8 bits.
func encode(x float64) uint8 {
	return uint8(math.Round(clamp01(x) * 255))
}
