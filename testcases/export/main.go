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

// Command export renders all test cases and writes PNG previews, enlarged
// so that individual pixels can be inspected.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/draw"

	"seehuhn.de/go/softrender"
	"seehuhn.de/go/softrender/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/preview", "output directory")
	scale := flag.Int("scale", 4, "enlargement factor")
	filterName := flag.String("filter", "rms", "resolve filter (rms or box)")
	flag.Parse()

	var filter softrender.Filter
	switch *filterName {
	case "rms":
		filter = softrender.FilterRMS
	case "box":
		filter = softrender.FilterBox
	default:
		panic(fmt.Sprintf("unknown filter %q", *filterName))
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			img, err := tc.Render(softrender.White, filter)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			fname := filepath.Join(*outDir, name+".png")
			if err := writePNG(fname, enlarge(img, *scale)); err != nil {
				panic(err)
			}
		}
	}
}

// enlarge scales img by an integer factor without smoothing.
func enlarge(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func writePNG(fname string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
