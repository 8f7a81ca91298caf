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
	"image"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Document is a scene to be rendered.
type Document struct {
	Width, Height float64 // canvas size in document units
	Elements      []Element
}

// Element is one drawable node of a [Document].
// The concrete types are [*Point], [*Line], [*Polyline], [*Rect],
// [*Polygon], [*Ellipse], [*Image] and [*Group].
type Element interface {
	common() *Common
}

// Style gives the paint used for an element.  A colour with alpha 0
// disables the corresponding paint operation.
type Style struct {
	Fill   Color
	Stroke Color
}

// Common holds the fields shared by all elements.
type Common struct {
	// Transform maps element coordinates to the coordinates of the parent.
	// The zero value means identity.
	Transform matrix.Matrix

	Style Style
}

func (c *Common) common() *Common { return c }

// localTransform returns the element transform, substituting the identity
// for the zero matrix.
func (c *Common) localTransform() matrix.Matrix {
	if c.Transform == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return c.Transform
}

// Point is a single pixel, painted with the fill colour.
type Point struct {
	Common
	Position vec.Vec2
}

// Line is a segment, painted with the stroke colour.
type Line struct {
	Common
	From, To vec.Vec2
}

// Polyline is an open sequence of segments, painted with the stroke colour.
type Polyline struct {
	Common
	Points []vec.Vec2
}

// Rect is an axis-aligned rectangle in element coordinates.
type Rect struct {
	Common
	Position  vec.Vec2 // top-left corner
	Dimension vec.Vec2 // width and height
}

// Polygon is a closed shape.  The fill is computed by triangulation.
type Polygon struct {
	Common
	Points []vec.Vec2
}

// Ellipse is an axis-aligned ellipse.  Ellipses are not rendered.
type Ellipse struct {
	Common
	Center vec.Vec2
	Radius vec.Vec2
}

// Image places a texture into a rectangle.  Images are not rendered.
type Image struct {
	Common
	Position  vec.Vec2
	Dimension vec.Vec2
	Texture   image.Image
}

// Group collects child elements.  The group transform applies to all
// children.
type Group struct {
	Common
	Elements []Element
}
