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
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

func TestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	r, _ := newTestRenderer(t, 10, 10, 2, 0)
	err := r.Render(&Document{Elements: []Element{
		&Polygon{Common: Common{Style: Style{Fill: Black}}, Points: []vec.Vec2{{X: 1, Y: 1}}},
		&Ellipse{Common: Common{Style: Style{Fill: Black}}},
	}})
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "level=WARN msg=\"polygon fill skipped\" element=0")
	assert.Contains(t, out, "ellipse not rendered")
	assert.Contains(t, out, "sample buffer resized")
}

func TestLoggerDefault(t *testing.T) {
	SetLogger(nil)
	require.NotNil(t, Logger())
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}
