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
	"math"
	"strconv"
	"strings"
	"unicode"

	"seehuhn.de/go/geom/matrix"
)

// ErrTransform is returned for transform attributes which cannot be
// parsed.
var ErrTransform = errors.New("invalid transform")

// ParseTransform converts the value of an SVG transform attribute to a
// matrix.  The functions matrix, translate, scale, rotate, skewX and skewY
// are supported.  In a list of transformations, the rightmost one is
// applied first.
func ParseTransform(s string) (matrix.Matrix, error) {
	m := matrix.Identity
	rest := strings.TrimSpace(s)
	for rest != "" {
		name, args, ok := strings.Cut(rest, "(")
		if !ok {
			return m, fmt.Errorf("%w: %q", ErrTransform, s)
		}
		args, rest, ok = strings.Cut(args, ")")
		if !ok {
			return m, fmt.Errorf("%w: %q: missing ')'", ErrTransform, s)
		}
		rest = strings.TrimLeftFunc(rest, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})

		name = strings.TrimSpace(name)
		v, err := parseNumbers(args)
		if err != nil {
			return m, fmt.Errorf("%w: %s: %w", ErrTransform, name, err)
		}
		t, err := transformFunc(name, v)
		if err != nil {
			return m, err
		}
		m = t.Mul(m)
	}
	return m, nil
}

func transformFunc(name string, v []float64) (matrix.Matrix, error) {
	argErr := func() error {
		return fmt.Errorf("%w: %s: unexpected %d arguments", ErrTransform, name, len(v))
	}

	switch name {
	case "matrix":
		if len(v) != 6 {
			return matrix.Identity, argErr()
		}
		return matrix.Matrix{v[0], v[1], v[2], v[3], v[4], v[5]}, nil

	case "translate":
		switch len(v) {
		case 1:
			return matrix.Matrix{1, 0, 0, 1, v[0], 0}, nil
		case 2:
			return matrix.Matrix{1, 0, 0, 1, v[0], v[1]}, nil
		}
		return matrix.Identity, argErr()

	case "scale":
		switch len(v) {
		case 1:
			return matrix.Matrix{v[0], 0, 0, v[0], 0, 0}, nil
		case 2:
			return matrix.Matrix{v[0], 0, 0, v[1], 0, 0}, nil
		}
		return matrix.Identity, argErr()

	case "rotate":
		if len(v) != 1 && len(v) != 3 {
			return matrix.Identity, argErr()
		}
		sin, cos := math.Sincos(v[0] * math.Pi / 180)
		rot := matrix.Matrix{cos, sin, -sin, cos, 0, 0}
		if len(v) == 1 {
			return rot, nil
		}
		cx, cy := v[1], v[2]
		toOrigin := matrix.Matrix{1, 0, 0, 1, -cx, -cy}
		back := matrix.Matrix{1, 0, 0, 1, cx, cy}
		return toOrigin.Mul(rot).Mul(back), nil

	case "skewX":
		if len(v) != 1 {
			return matrix.Identity, argErr()
		}
		return matrix.Matrix{1, 0, math.Tan(v[0] * math.Pi / 180), 1, 0, 0}, nil

	case "skewY":
		if len(v) != 1 {
			return matrix.Identity, argErr()
		}
		return matrix.Matrix{1, math.Tan(v[0] * math.Pi / 180), 0, 1, 0, 0}, nil
	}

	return matrix.Identity, fmt.Errorf("%w: unknown function %q", ErrTransform, name)
}

// splitList splits a list of values separated by commas and/or white
// space.
func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// parseNumbers parses a comma or white space separated list of numbers.
func parseNumbers(s string) ([]float64, error) {
	fields := splitList(s)
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, x)
	}
	return out, nil
}
