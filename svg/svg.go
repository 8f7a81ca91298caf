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

// Package svg reads scenes for the renderer from a subset of SVG.
//
// Supported elements are svg, g, point, line, polyline, polygon, rect,
// circle, ellipse and image.  Other elements are skipped together with
// their content.  Paths, text, gradients and style sheets are not
// supported.
package svg

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // image textures
	_ "image/png"  // image textures
	"io"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/softrender"
)

// ErrNotSVG is returned if the root element of a document is not <svg>.
var ErrNotSVG = errors.New("not an SVG document")

// ReadFile reads an SVG document from the named file.
func ReadFile(name string) (*softrender.Document, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	doc, err := Read(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return doc, nil
}

// Read reads an SVG document.
//
// If the root element has a viewBox, the document elements are wrapped in
// a group which maps the viewBox onto the document size.
func Read(r io.Reader) (*softrender.Document, error) {
	dec := xml.NewDecoder(r)

	var root xml.StartElement
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, ErrNotSVG
		} else if err != nil {
			return nil, err
		}
		if t, ok := tok.(xml.StartElement); ok {
			root = t
			break
		}
	}
	if root.Name.Local != "svg" {
		return nil, fmt.Errorf("%w: root element <%s>", ErrNotSVG, root.Name.Local)
	}

	p := &parser{dec: dec}
	doc, top, err := p.readRoot(root)
	if err != nil {
		return nil, err
	}
	if err := p.readChildren(top); err != nil {
		return nil, err
	}

	if top.group.Transform == matrix.Identity {
		doc.Elements = top.group.Elements
	} else {
		doc.Elements = []softrender.Element{top.group}
	}
	return doc, nil
}

// paint is the inherited part of the presentation attributes.
type paint struct {
	fill, stroke               softrender.Color
	fillOpacity, strokeOpacity float64
	opacity                    float64
}

var defaultPaint = paint{
	fill:          softrender.Black,
	stroke:        softrender.Transparent,
	fillOpacity:   1,
	strokeOpacity: 1,
	opacity:       1,
}

func (p paint) style() softrender.Style {
	fill := p.fill
	fill.A *= p.fillOpacity * p.opacity
	stroke := p.stroke
	stroke.A *= p.strokeOpacity * p.opacity
	return softrender.Style{Fill: fill, Stroke: stroke}
}

// frame is an open container element.
type frame struct {
	group *softrender.Group
	paint paint
}

type parser struct {
	dec *xml.Decoder
}

// attributes holds the attributes of one element, with declarations from
// the style attribute taking precedence.
type attributes struct {
	elem string
	m    map[string]string
}

func newAttributes(t xml.StartElement) attributes {
	a := attributes{elem: t.Name.Local, m: make(map[string]string, len(t.Attr))}
	var style string
	for _, at := range t.Attr {
		if at.Name.Local == "style" {
			style = at.Value
			continue
		}
		a.m[at.Name.Local] = at.Value
	}
	for _, decl := range strings.Split(style, ";") {
		key, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		a.m[strings.TrimSpace(key)] = strings.TrimSpace(val)
	}
	return a
}

func (a attributes) wrap(key string, err error) error {
	return fmt.Errorf("<%s> %s=%q: %w", a.elem, key, a.m[key], err)
}

// number returns the numeric value of the attribute key, or 0 if the
// attribute is absent.  A "px" unit suffix is accepted.
func (a attributes) number(key string) (float64, error) {
	s, ok := a.m[key]
	if !ok {
		return 0, nil
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, a.wrap(key, err)
	}
	return x, nil
}

// numbers returns the values of several numeric attributes.
func (a attributes) numbers(keys ...string) ([]float64, error) {
	out := make([]float64, len(keys))
	for i, key := range keys {
		x, err := a.number(key)
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}

func (a attributes) points(key string) ([]vec.Vec2, error) {
	v, err := parseNumbers(a.m[key])
	if err != nil {
		return nil, a.wrap(key, err)
	}
	if len(v)%2 != 0 {
		return nil, a.wrap(key, errors.New("odd number of coordinates"))
	}
	pts := make([]vec.Vec2, len(v)/2)
	for i := range pts {
		pts[i] = vec.Vec2{X: v[2*i], Y: v[2*i+1]}
	}
	return pts, nil
}

func (a attributes) transform() (matrix.Matrix, error) {
	s, ok := a.m["transform"]
	if !ok {
		return matrix.Identity, nil
	}
	m, err := ParseTransform(s)
	if err != nil {
		return m, a.wrap("transform", err)
	}
	return m, nil
}

// paint applies the presentation attributes of the element to the
// inherited paint.
func (a attributes) paint(parent paint) (paint, error) {
	p := parent
	for _, key := range []string{"fill", "stroke"} {
		s, ok := a.m[key]
		if !ok || s == "inherit" {
			continue
		}
		c, err := ParseColor(s)
		if err != nil {
			return p, a.wrap(key, err)
		}
		if key == "fill" {
			p.fill = c
		} else {
			p.stroke = c
		}
	}

	for _, key := range []string{"fill-opacity", "stroke-opacity", "opacity"} {
		if _, ok := a.m[key]; !ok {
			continue
		}
		x, err := a.number(key)
		if err != nil {
			return p, err
		}
		x = min(max(x, 0), 1)
		switch key {
		case "fill-opacity":
			p.fillOpacity = x
		case "stroke-opacity":
			p.strokeOpacity = x
		case "opacity":
			p.opacity *= x
		}
	}
	return p, nil
}

func (a attributes) common(parent paint) (softrender.Common, paint, error) {
	m, err := a.transform()
	if err != nil {
		return softrender.Common{}, parent, err
	}
	p, err := a.paint(parent)
	if err != nil {
		return softrender.Common{}, parent, err
	}
	return softrender.Common{Transform: m, Style: p.style()}, p, nil
}

// readRoot interprets the attributes of the <svg> element and returns the
// document together with the frame which receives the top-level elements.
func (p *parser) readRoot(t xml.StartElement) (*softrender.Document, frame, error) {
	a := newAttributes(t)

	doc := &softrender.Document{}
	top := &softrender.Group{}
	top.Transform = matrix.Identity

	var vb []float64
	if s, ok := a.m["viewBox"]; ok {
		v, err := parseNumbers(s)
		if err == nil && len(v) != 4 {
			err = errors.New("need four numbers")
		}
		if err == nil && (v[2] <= 0 || v[3] <= 0) {
			err = errors.New("non-positive size")
		}
		if err != nil {
			return nil, frame{}, a.wrap("viewBox", err)
		}
		vb = v
	}

	for _, key := range []string{"width", "height"} {
		s := a.m[key]
		if s == "" || strings.HasSuffix(s, "%") {
			continue
		}
		x, err := a.number(key)
		if err != nil {
			return nil, frame{}, err
		}
		if key == "width" {
			doc.Width = x
		} else {
			doc.Height = x
		}
	}

	if vb != nil {
		if doc.Width == 0 {
			doc.Width = vb[2]
		}
		if doc.Height == 0 {
			doc.Height = vb[3]
		}
		sx := doc.Width / vb[2]
		sy := doc.Height / vb[3]
		top.Transform = matrix.Matrix{sx, 0, 0, sy, -vb[0] * sx, -vb[1] * sy}
	}

	rootPaint, err := a.paint(defaultPaint)
	if err != nil {
		return nil, frame{}, err
	}

	return doc, frame{group: top, paint: rootPaint}, nil
}

// readChildren reads the content of a container element up to its end
// tag and appends the drawable elements to f.group.
func (p *parser) readChildren(f frame) error {
	for {
		tok, err := p.dec.Token()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if err := p.readElement(f, t); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// readElement reads the element which starts with t, including its end
// tag.
func (p *parser) readElement(f frame, t xml.StartElement) error {
	a := newAttributes(t)

	if a.elem == "g" {
		common, gp, err := a.common(f.paint)
		if err != nil {
			return err
		}
		g := &softrender.Group{Common: common}
		f.group.Elements = append(f.group.Elements, g)
		return p.readChildren(frame{group: g, paint: gp})
	}

	e, err := p.shape(a, f.paint)
	if err != nil {
		return err
	}
	if e != nil {
		f.group.Elements = append(f.group.Elements, e)
	}
	return p.dec.Skip()
}

// shape converts a leaf element.  Unsupported elements give nil.
func (p *parser) shape(a attributes, parent paint) (softrender.Element, error) {
	switch a.elem {
	case "point", "line", "polyline", "polygon", "rect", "circle", "ellipse", "image":
	default:
		softrender.Logger().Debug("svg element skipped", "element", a.elem)
		return nil, nil
	}

	common, _, err := a.common(parent)
	if err != nil {
		return nil, err
	}

	switch a.elem {
	case "point":
		v, err := a.numbers("x", "y")
		if err != nil {
			return nil, err
		}
		return &softrender.Point{Common: common, Position: vec.Vec2{X: v[0], Y: v[1]}}, nil

	case "line":
		v, err := a.numbers("x1", "y1", "x2", "y2")
		if err != nil {
			return nil, err
		}
		return &softrender.Line{
			Common: common,
			From:   vec.Vec2{X: v[0], Y: v[1]},
			To:     vec.Vec2{X: v[2], Y: v[3]},
		}, nil

	case "polyline":
		pts, err := a.points("points")
		if err != nil {
			return nil, err
		}
		return &softrender.Polyline{Common: common, Points: pts}, nil

	case "polygon":
		pts, err := a.points("points")
		if err != nil {
			return nil, err
		}
		return &softrender.Polygon{Common: common, Points: pts}, nil

	case "rect":
		v, err := a.numbers("x", "y", "width", "height")
		if err != nil {
			return nil, err
		}
		return &softrender.Rect{
			Common:    common,
			Position:  vec.Vec2{X: v[0], Y: v[1]},
			Dimension: vec.Vec2{X: v[2], Y: v[3]},
		}, nil

	case "circle":
		v, err := a.numbers("cx", "cy", "r")
		if err != nil {
			return nil, err
		}
		return &softrender.Ellipse{
			Common: common,
			Center: vec.Vec2{X: v[0], Y: v[1]},
			Radius: vec.Vec2{X: v[2], Y: v[2]},
		}, nil

	case "ellipse":
		v, err := a.numbers("cx", "cy", "rx", "ry")
		if err != nil {
			return nil, err
		}
		return &softrender.Ellipse{
			Common: common,
			Center: vec.Vec2{X: v[0], Y: v[1]},
			Radius: vec.Vec2{X: v[2], Y: v[3]},
		}, nil

	default: // image
		v, err := a.numbers("x", "y", "width", "height")
		if err != nil {
			return nil, err
		}
		img := &softrender.Image{
			Common:    common,
			Position:  vec.Vec2{X: v[0], Y: v[1]},
			Dimension: vec.Vec2{X: v[2], Y: v[3]},
		}
		img.Texture, err = decodeDataURL(a.m["href"])
		if err != nil {
			return nil, a.wrap("href", err)
		}
		return img, nil
	}
}

// decodeDataURL decodes an image embedded as a base64 data URL.  Other
// references give a nil image.
func decodeDataURL(href string) (image.Image, error) {
	rest, ok := strings.CutPrefix(href, "data:")
	if !ok {
		if href != "" {
			softrender.Logger().Debug("external image not loaded", "href", href)
		}
		return nil, nil
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(header, ";base64") {
		return nil, errors.New("unsupported data URL")
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}
