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
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// drawElement draws e and its children.  The argument where identifies
// the element in error messages.
func (r *Renderer) drawElement(e Element, where string) error {
	if e == nil {
		return nil
	}

	r.stack.push(e.common().localTransform())
	defer r.stack.pop()

	switch e := e.(type) {
	case *Point:
		r.drawPoint(e)
	case *Line:
		r.drawLine(e)
	case *Polyline:
		r.drawPolyline(e)
	case *Rect:
		r.drawRect(e)
	case *Polygon:
		return r.drawPolygon(e, where)
	case *Ellipse:
		r.drawEllipse(e)
	case *Image:
		r.drawImage(e)
	case *Group:
		return r.drawGroup(e, where)
	}
	return nil
}

// transform maps p from element coordinates to device coordinates.
func (r *Renderer) transform(p vec.Vec2) vec.Vec2 {
	return apply(r.stack.current(), p)
}

func (r *Renderer) drawPoint(p *Point) {
	c := p.Style.Fill
	if c.A == 0 {
		return
	}
	q := r.transform(p.Position)
	r.rasterizePoint(q.X, q.Y, c)
}

func (r *Renderer) drawLine(l *Line) {
	c := l.Style.Stroke
	if c.A == 0 {
		return
	}
	p0 := r.transform(l.From)
	p1 := r.transform(l.To)
	r.rasterizeLine(p0.X, p0.Y, p1.X, p1.Y, c)
}

func (r *Renderer) drawPolyline(pl *Polyline) {
	c := pl.Style.Stroke
	if c.A == 0 {
		return
	}
	for i := 1; i < len(pl.Points); i++ {
		p0 := r.transform(pl.Points[i-1])
		p1 := r.transform(pl.Points[i])
		r.rasterizeLine(p0.X, p0.Y, p1.X, p1.Y, c)
	}
}

func (r *Renderer) drawRect(rc *Rect) {
	x, y := rc.Position.X, rc.Position.Y
	w, h := rc.Dimension.X, rc.Dimension.Y

	p0 := r.transform(vec.Vec2{X: x, Y: y})
	p1 := r.transform(vec.Vec2{X: x + w, Y: y})
	p2 := r.transform(vec.Vec2{X: x, Y: y + h})
	p3 := r.transform(vec.Vec2{X: x + w, Y: y + h})

	if c := rc.Style.Fill; c.A != 0 {
		r.rasterizeTriangle(p0.X, p0.Y, p1.X, p1.Y, p2.X, p2.Y, c)
		r.rasterizeTriangle(p2.X, p2.Y, p1.X, p1.Y, p3.X, p3.Y, c)
	}

	if c := rc.Style.Stroke; c.A != 0 {
		r.rasterizeLine(p0.X, p0.Y, p1.X, p1.Y, c)
		r.rasterizeLine(p1.X, p1.Y, p3.X, p3.Y, c)
		r.rasterizeLine(p3.X, p3.Y, p2.X, p2.Y, c)
		r.rasterizeLine(p2.X, p2.Y, p0.X, p0.Y, c)
	}
}

func (r *Renderer) drawPolygon(pg *Polygon, where string) error {
	var err error

	if c := pg.Style.Fill; c.A != 0 {
		tri, tErr := r.Triangulate(pg.Points)
		if tErr != nil {
			Logger().Warn("polygon fill skipped", "element", where, "error", tErr)
			err = fmt.Errorf("element %s: polygon fill: %w", where, tErr)
		}
		for i := 0; i+2 < len(tri); i += 3 {
			p0 := r.transform(tri[i])
			p1 := r.transform(tri[i+1])
			p2 := r.transform(tri[i+2])
			r.rasterizeTriangle(p0.X, p0.Y, p1.X, p1.Y, p2.X, p2.Y, c)
		}
	}

	if c := pg.Style.Stroke; c.A != 0 {
		n := len(pg.Points)
		for i := range n {
			p0 := r.transform(pg.Points[i])
			p1 := r.transform(pg.Points[(i+1)%n])
			r.rasterizeLine(p0.X, p0.Y, p1.X, p1.Y, c)
		}
	}

	return err
}

func (r *Renderer) drawEllipse(e *Ellipse) {
	Logger().Debug("ellipse not rendered", "center", e.Center, "radius", e.Radius)
}

func (r *Renderer) drawImage(img *Image) {
	p0 := r.transform(img.Position)
	p1 := r.transform(img.Position.Add(img.Dimension))
	r.rasterizeImage(p0.X, p0.Y, p1.X, p1.Y, img)
}

func (r *Renderer) drawGroup(g *Group, where string) error {
	var errs []error
	for i, child := range g.Elements {
		if err := r.drawElement(child, fmt.Sprintf("%s/%d", where, i)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// drawOutline draws a black frame just outside the document canvas.
func (r *Renderer) drawOutline(width, height float64) {
	a := r.transform(vec.Vec2{X: 0, Y: 0})
	b := r.transform(vec.Vec2{X: width, Y: 0})
	c := r.transform(vec.Vec2{X: 0, Y: height})
	d := r.transform(vec.Vec2{X: width, Y: height})
	a.X--
	a.Y--
	b.X++
	b.Y--
	c.X--
	c.Y++
	d.X++
	d.Y++

	r.rasterizeLine(a.X, a.Y, b.X, b.Y, Black)
	r.rasterizeLine(a.X, a.Y, c.X, c.Y, Black)
	r.rasterizeLine(d.X, d.Y, b.X, b.Y, Black)
	r.rasterizeLine(d.X, d.Y, c.X, c.Y, Black)
}

// rasterizePoint sets the pixel containing (x, y) to c.
func (r *Renderer) rasterizePoint(x, y float64, c Color) {
	if !isFinite(x) || !isFinite(y) {
		return
	}
	sx := math.Floor(x)
	sy := math.Floor(y)
	if sx < 0 || sx >= float64(r.width) || sy < 0 || sy >= float64(r.height) {
		return
	}
	r.fillPixel(int(sx), int(sy), c)
}

// rasterizeImage would draw the texture of img into the device rectangle
// spanned by (x0, y0) and (x1, y1).  Image rendering is not implemented;
// no pixels are written.
func (r *Renderer) rasterizeImage(x0, y0, x1, y1 float64, img *Image) {
	Logger().Debug("image not rendered",
		"x0", x0, "y0", y0, "x1", x1, "y1", y1, "texture", img.Texture != nil)
}
