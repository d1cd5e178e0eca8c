// github.com/xmvishnupriya/PDFrenderer - a PDF content stream interpreter
// Copyright (C) 2026  The PDFrenderer Authors
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

package pdfrenderer

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// PathMode describes what a committed path is used for.  The paint modes
// may be combined with PathClip.
type PathMode int

const (
	PathStroke PathMode = 1
	PathFill   PathMode = 2
	PathBoth   PathMode = PathStroke | PathFill
	PathClip   PathMode = 4
)

// A Path accumulates subpath segments until a painting operator commits
// it to the sink.  The winding rule is authoritative only at commit time.
type Path struct {
	data    path.Data
	n       int // number of segments appended
	cur     vec.Vec2
	start   vec.Vec2
	evenOdd bool
}

func newPath() *Path {
	return &Path{}
}

// IsEmpty reports whether the path has no segments.
func (p *Path) IsEmpty() bool {
	return p.n == 0
}

// EvenOdd reports whether the path uses the even-odd winding rule.
// The default is non-zero winding.
func (p *Path) EvenOdd() bool {
	return p.evenOdd
}

// SetEvenOdd switches the path to the even-odd winding rule.
func (p *Path) SetEvenOdd() {
	p.evenOdd = true
}

// Data returns the accumulated path geometry.
func (p *Path) Data() *path.Data {
	return &p.data
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.cur = vec.Vec2{X: x, Y: y}
	p.start = p.cur
	p.data.MoveTo(p.cur)
	p.n++
}

// LineTo adds a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.cur = vec.Vec2{X: x, Y: y}
	p.data.LineTo(p.cur)
	p.n++
}

// CurveTo adds a cubic segment with control points (x1,y1), (x2,y2) and
// endpoint (x3,y3).
func (p *Path) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	p.data.CubeTo(vec.Vec2{X: x1, Y: y1}, vec.Vec2{X: x2, Y: y2}, vec.Vec2{X: x3, Y: y3})
	p.cur = vec.Vec2{X: x3, Y: y3}
	p.n++
}

// CurveV adds a cubic segment whose first control point is the current
// point.
func (p *Path) CurveV(x2, y2, x3, y3 float64) {
	p.CurveTo(p.cur.X, p.cur.Y, x2, y2, x3, y3)
}

// CurveY adds a cubic segment whose second control point coincides with
// the endpoint.
func (p *Path) CurveY(x1, y1, x3, y3 float64) {
	p.CurveTo(x1, y1, x3, y3, x3, y3)
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.data.Close()
	p.cur = p.start
	p.n++
}

// Rect appends a closed rectangle as a four-line subpath.
func (p *Path) Rect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}
