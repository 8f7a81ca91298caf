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

package svg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"seehuhn.de/go/softrender"
)

// ErrColor is returned for colour values which cannot be parsed.
var ErrColor = errors.New("invalid colour")

// ParseColor converts an SVG colour value to a [softrender.Color].
// Supported are #rgb, #rrggbb and #rrggbbaa notation, rgb() and rgba()
// functions, the CSS colour names, and the keywords "none" and
// "transparent", which both give a fully transparent colour.
func ParseColor(s string) (softrender.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return softrender.Color{}, fmt.Errorf("%w: empty value", ErrColor)
	}
	if s[0] == '#' {
		return parseHex(s)
	}

	low := strings.ToLower(s)
	switch low {
	case "none", "transparent":
		return softrender.Transparent, nil
	}
	if strings.HasPrefix(low, "rgb") {
		return parseRGBFunc(low)
	}

	nc, ok := colornames.Map[low]
	if !ok {
		return softrender.Color{}, fmt.Errorf("%w: unknown name %q", ErrColor, s)
	}
	return softrender.FromNRGBA(nc), nil
}

func parseHex(s string) (softrender.Color, error) {
	x := strings.TrimPrefix(s, "#")

	var digits []uint64
	switch len(x) {
	case 3:
		for i := range 3 {
			v, err := strconv.ParseUint(x[i:i+1], 16, 8)
			if err != nil {
				return softrender.Color{}, fmt.Errorf("%w: %q", ErrColor, s)
			}
			digits = append(digits, v<<4|v)
		}
		digits = append(digits, 255)
	case 6, 8:
		for i := 0; i < len(x); i += 2 {
			v, err := strconv.ParseUint(x[i:i+2], 16, 8)
			if err != nil {
				return softrender.Color{}, fmt.Errorf("%w: %q", ErrColor, s)
			}
			digits = append(digits, v)
		}
		if len(digits) == 3 {
			digits = append(digits, 255)
		}
	default:
		return softrender.Color{}, fmt.Errorf("%w: %q", ErrColor, s)
	}

	return softrender.Color{
		R: float64(digits[0]) / 255,
		G: float64(digits[1]) / 255,
		B: float64(digits[2]) / 255,
		A: float64(digits[3]) / 255,
	}, nil
}

// parseRGBFunc parses rgb(r, g, b) and rgba(r, g, b, a).  Colour
// components are integers in [0, 255] or percentages, alpha is a number
// in [0, 1].
func parseRGBFunc(s string) (softrender.Color, error) {
	name, args, ok := strings.Cut(s, "(")
	if !ok || !strings.HasSuffix(args, ")") {
		return softrender.Color{}, fmt.Errorf("%w: %q", ErrColor, s)
	}
	name = strings.TrimSpace(name)
	fields := splitList(strings.TrimSuffix(args, ")"))

	want := 3
	if name == "rgba" {
		want = 4
	} else if name != "rgb" {
		return softrender.Color{}, fmt.Errorf("%w: %q", ErrColor, s)
	}
	if len(fields) != want {
		return softrender.Color{}, fmt.Errorf("%w: %q needs %d arguments", ErrColor, s, want)
	}

	var ch [4]float64
	ch[3] = 1
	for i, f := range fields {
		scale := 255.0
		if i == 3 {
			scale = 1
		}
		if p, isPercent := strings.CutSuffix(f, "%"); isPercent {
			f = p
			scale = 100
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return softrender.Color{}, fmt.Errorf("%w: %q: %w", ErrColor, s, err)
		}
		ch[i] = min(max(v/scale, 0), 1)
	}
	return softrender.Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}
