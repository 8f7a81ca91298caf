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

// Command svg2png renders an SVG file to a PNG image.
//
// Usage:
//
//	svg2png [flags] input.svg
//
// The document is centred in the output image and scaled to fit.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/softrender"
	"seehuhn.de/go/softrender/svg"
	"seehuhn.de/go/softrender/viewport"
)

type options struct {
	output   string
	width    int
	height   int
	rate     int
	filter   string
	outline  bool
	brighten bool
	zoom     float64
	verbose  bool
}

func main() {
	opts := &options{}
	flag.StringVar(&opts.output, "o", "", "output file (default: input name with .png)")
	flag.IntVar(&opts.width, "w", 0, "image width in pixels (default: document size)")
	flag.IntVar(&opts.height, "h", 0, "image height in pixels (default: document size)")
	flag.IntVar(&opts.rate, "rate", 4, "samples per pixel along each axis")
	flag.StringVar(&opts.filter, "filter", "rms", "resolve filter: rms or box")
	flag.BoolVar(&opts.outline, "outline", false, "draw a frame around the document")
	flag.BoolVar(&opts.brighten, "brighten", false, "represent line coverage by brightening")
	flag.Float64Var(&opts.zoom, "zoom", 1, "zoom factor")
	flag.BoolVar(&opts.verbose, "v", false, "log debug messages to stderr")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] input.svg\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	input := flag.Arg(0)
	if opts.output == "" {
		opts.output = trimExt(input) + ".png"
	}

	if err := run(input, opts); err != nil {
		fmt.Fprintln(os.Stderr, "svg2png:", err)
		os.Exit(1)
	}
}

func run(input string, opts *options) error {
	if opts.verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		softrender.SetLogger(slog.New(h))
	}

	doc, err := svg.ReadFile(input)
	if err != nil {
		return err
	}

	img, renderErr := render(doc, opts)
	if img == nil {
		return renderErr
	}
	if renderErr != nil {
		// partial output is still written
		fmt.Fprintln(os.Stderr, "svg2png: warning:", renderErr)
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// render draws doc onto a white canvas.  If the document could be drawn
// only partially, both the image and an error are returned.
func render(doc *softrender.Document, opts *options) (*image.NRGBA, error) {
	w, h := opts.width, opts.height
	side := int(math.Ceil(max(doc.Width, doc.Height)))
	if w <= 0 {
		w = side
	}
	if h <= 0 {
		h = side
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("cannot determine image size, use -w and -h")
	}

	var filter softrender.Filter
	switch opts.filter {
	case "rms":
		filter = softrender.FilterRMS
	case "box":
		filter = softrender.FilterBox
	default:
		return nil, fmt.Errorf("unknown filter %q", opts.filter)
	}
	if !(opts.zoom > 0) {
		return nil, fmt.Errorf("invalid zoom factor %g", opts.zoom)
	}

	span := max(doc.Width, doc.Height) / 2
	vp, err := viewport.New(doc.Width/2, doc.Height/2, max(span, 1))
	if err != nil {
		return nil, err
	}
	if err := vp.UpdateViewBox(0, 0, 1/opts.zoom); err != nil {
		return nil, fmt.Errorf("invalid zoom factor %g: %w", opts.zoom, err)
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	r := softrender.NewRenderer()
	if err := r.SetSampleRate(opts.rate); err != nil {
		return nil, err
	}
	if err := r.SetRenderTarget(img.Pix, w, h); err != nil {
		return nil, err
	}
	r.CTM = vp.CanvasToScreen(w, h)
	r.Filter = filter
	r.Outline = opts.outline
	if opts.brighten {
		r.LineCoverage = softrender.CoverageBrighten
	}

	return img, r.Render(doc)
}

func trimExt(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
