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

// Filter selects how the samples of a pixel are combined and merged into
// the render target.
type Filter int

const (
	// FilterRMS combines the colour channels of the samples by repeated
	// pairwise root-mean-square blending and averages alpha.  Target
	// pixels with a saturated colour channel are treated as blank canvas
	// and are overwritten; all other target pixels are RMS-blended with
	// the resolved colour unless that colour is pure white.
	//
	// Pairwise RMS blending of more than two values is not the RMS of all
	// values: later samples carry more weight than earlier ones.
	FilterRMS Filter = iota

	// FilterBox averages the samples of each pixel and composites the
	// result over the existing target pixel using source-over.
	FilterBox
)

func (f Filter) String() string {
	switch f {
	case FilterRMS:
		return "rms"
	case FilterBox:
		return "box"
	default:
		return "Filter(invalid)"
	}
}

// Resolve downsamples the sample buffer into the render target.
// Pixels painted by point primitives are written afterwards, replacing the
// resolved values.  Points therefore survive the resolve step instead of
// being overwritten by it.
func (r *Renderer) Resolve() {
	switch r.Filter {
	case FilterBox:
		r.resolveBox()
	default:
		r.resolveRMS()
	}

	for _, p := range r.pixels {
		i := 4 * (p.y*r.width + p.x)
		r.target[i+0] = p.c.R
		r.target[i+1] = p.c.G
		r.target[i+2] = p.c.B
		r.target[i+3] = p.c.A
	}
	r.pixels = r.pixels[:0]
}

func (r *Renderer) resolveRMS() {
	rate := r.rate
	for x := range r.width {
		for y := range r.height {
			block := r.samples.block(x, y)

			var red, green, blue, alpha int
			first := true
			for sx := range rate {
				for sy := range rate {
					s := block[sy*rate+sx]
					if first {
						red, green, blue, alpha = int(s.R), int(s.G), int(s.B), int(s.A)
						first = false
						continue
					}
					red = blendByte(int(s.R), red)
					green = blendByte(int(s.G), green)
					blue = blendByte(int(s.B), blue)
					alpha = clampByte(int(0.5*float64(s.A) + 0.5*float64(alpha)))
				}
			}

			i := 4 * (y*r.width + x)
			px := r.target[i : i+4 : i+4]
			if px[0] == 255 || px[1] == 255 || px[2] == 255 {
				px[0] = uint8(red)
				px[1] = uint8(green)
				px[2] = uint8(blue)
				px[3] = uint8(alpha)
			} else if red != 255 || green != 255 || blue != 255 {
				px[0] = uint8(blendByte(int(px[0]), red))
				px[1] = uint8(blendByte(int(px[1]), green))
				px[2] = uint8(blendByte(int(px[2]), blue))
				px[3] = uint8(blendByte(int(px[3]), alpha))
			}
		}
	}
}

func (r *Renderer) resolveBox() {
	n := r.rate * r.rate
	for y := range r.height {
		for x := range r.width {
			var red, green, blue, alpha int
			for _, s := range r.samples.block(x, y) {
				red += int(s.R)
				green += int(s.G)
				blue += int(s.B)
				alpha += int(s.A)
			}
			avg := Color{
				R: float64(red) / float64(255*n),
				G: float64(green) / float64(255*n),
				B: float64(blue) / float64(255*n),
				A: float64(alpha) / float64(255*n),
			}

			i := 4 * (y*r.width + x)
			px := r.target[i : i+4 : i+4]
			bg := Color{
				R: float64(px[0]) / 255,
				G: float64(px[1]) / 255,
				B: float64(px[2]) / 255,
				A: float64(px[3]) / 255,
			}
			out := Composite(avg, bg).NRGBA()
			px[0], px[1], px[2], px[3] = out.R, out.G, out.B, out.A
		}
	}
}

// blendByte RMS-blends two 8-bit channel values, truncating the result.
// Blending a value with itself gives the value back exactly.
func blendByte(a, b int) int {
	return clampByte(int(blendRMS(float64(a), float64(b))))
}

func clampByte(x int) int {
	return min(max(x, 0), 255)
}
