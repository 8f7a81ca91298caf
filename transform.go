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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// transformStack holds the composed transformations from the element
// currently being drawn up to device space.  The top of the stack is the
// product of all transformations on the current path through the element
// tree.
type transformStack struct {
	m []matrix.Matrix
}

// reset empties the stack and pushes the base transformation.
func (s *transformStack) reset(base matrix.Matrix) {
	s.m = append(s.m[:0], base)
}

// push composes local with the current top and pushes the result.
// The local transformation is applied first.
func (s *transformStack) push(local matrix.Matrix) {
	s.m = append(s.m, local.Mul(s.current()))
}

// pop removes the top of the stack.
func (s *transformStack) pop() {
	s.m = s.m[:len(s.m)-1]
}

// current returns the top of the stack.  It must not be called on an
// empty stack.
func (s *transformStack) current() matrix.Matrix {
	return s.m[len(s.m)-1]
}

func (s *transformStack) depth() int {
	return len(s.m)
}

// apply maps p using the affine transformation m.
func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}
