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

package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/softrender"
	"seehuhn.de/go/softrender/svg"
)

const square = `<svg width="20" height="20">
  <rect x="5" y="5" width="10" height="10" fill="#0000ff"/>
</svg>`

func TestRender(t *testing.T) {
	doc := &softrender.Document{Width: 20, Height: 20}
	opts := &options{rate: 2, filter: "box", zoom: 1}

	img, err := render(doc, opts)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
	// an empty document leaves the canvas white
	assert.Equal(t, []byte{255, 255, 255, 255}, img.Pix[:4])

	opts.width, opts.height = 40, 10
	img, err = render(doc, opts)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 10, img.Bounds().Dy())

	_, err = render(doc, &options{rate: 2, filter: "sinc", zoom: 1})
	assert.Error(t, err)
	_, err = render(doc, &options{rate: 0, filter: "rms", zoom: 1})
	assert.ErrorIs(t, err, softrender.ErrInvalidSampleRate)
	_, err = render(doc, &options{rate: 1, filter: "rms", zoom: 0})
	assert.Error(t, err)
	_, err = render(&softrender.Document{}, &options{rate: 1, filter: "rms", zoom: 1})
	assert.Error(t, err)
}

func TestRenderFits(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "square.svg")
	require.NoError(t, os.WriteFile(input, []byte(square), 0o644))

	doc, err := svg.ReadFile(input)
	require.NoError(t, err)

	// the document fills the image exactly
	img, err := render(doc, &options{rate: 1, filter: "box", zoom: 1})
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 255, 255}, img.Pix[img.PixOffset(10, 10):img.PixOffset(10, 10)+4])
	assert.Equal(t, []byte{255, 255, 255, 255}, img.Pix[img.PixOffset(2, 2):img.PixOffset(2, 2)+4])

	// zooming in by a factor of two lets the square fill the image
	img, err = render(doc, &options{rate: 1, filter: "box", zoom: 2})
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 255, 255}, img.Pix[img.PixOffset(2, 2):img.PixOffset(2, 2)+4])
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "square.svg")
	require.NoError(t, os.WriteFile(input, []byte(square), 0o644))

	opts := &options{output: filepath.Join(dir, "out.png"), rate: 2, filter: "rms", zoom: 1}
	require.NoError(t, run(input, opts))

	f, err := os.Open(opts.output)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())

	err = run(filepath.Join(dir, "missing.svg"), opts)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTrimExt(t *testing.T) {
	assert.Equal(t, "a/b/scene", trimExt("a/b/scene.svg"))
	assert.Equal(t, "scene", trimExt("scene"))
	assert.Equal(t, "dir.v2/scene", trimExt("dir.v2/scene"))
}
