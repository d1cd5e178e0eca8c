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

// Package rastersink renders recorded command lists into images.
//
// This is a deliberately small renderer: it understands paths, device
// colors and nested command lists, which is enough to visualize most
// vector content and to exercise recorded pages in tests.  Stroking is
// approximated by filling a thin quadrilateral along each segment; text
// glyphs arrive as ordinary path commands and need no special handling.
// Images, shadings and clipping are skipped.
package rastersink

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	pdfrenderer "github.com/xmvishnupriya/PDFrenderer"
)

// gstate is the renderer's graphics state, saved and restored by
// Push/Pop commands.
type gstate struct {
	ctm         matrix.Matrix
	fill        color.RGBA
	stroke      color.RGBA
	strokeWidth float64
}

// A Renderer replays recorded pages into an RGBA image.
type Renderer struct {
	img   *image.RGBA
	ras   *vector.Rasterizer
	state gstate
	stack []gstate
}

// New creates a renderer with a white canvas of the given size.  The
// transform maps PDF user space onto the canvas; use a flipped matrix to
// put the PDF origin at the bottom left.
func New(width, height int, trfm matrix.Matrix) *Renderer {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return &Renderer{
		img: img,
		ras: vector.NewRasterizer(width, height),
		state: gstate{
			ctm:         trfm,
			fill:        color.RGBA{A: 0xff},
			stroke:      color.RGBA{A: 0xff},
			strokeWidth: 1,
		},
	}
}

// Image returns the canvas.
func (r *Renderer) Image() *image.RGBA {
	return r.img
}

// Render replays the page's command list onto the canvas.
func (r *Renderer) Render(p *pdfrenderer.Page) {
	for _, cmd := range p.CommandList() {
		switch cmd := cmd.(type) {
		case pdfrenderer.PushCmd:
			r.stack = append(r.stack, r.state)
		case pdfrenderer.PopCmd:
			if n := len(r.stack); n > 0 {
				r.state = r.stack[n-1]
				r.stack = r.stack[:n-1]
			}
		case pdfrenderer.TransformCmd:
			r.state.ctm = cmd.M.Mul(r.state.ctm)
		case pdfrenderer.StrokeWidthCmd:
			r.state.strokeWidth = cmd.W
		case pdfrenderer.StrokePaintCmd:
			if c, ok := toRGBA(cmd.P); ok {
				r.state.stroke = c
			}
		case pdfrenderer.FillPaintCmd:
			if c, ok := toRGBA(cmd.P); ok {
				r.state.fill = c
			}
		case pdfrenderer.PathCmd:
			r.paintPath(cmd.Path, cmd.Mode)
		case pdfrenderer.CommandsCmd:
			r.stack = append(r.stack, r.state)
			r.Render(cmd.Page)
			r.state = r.stack[len(r.stack)-1]
			r.stack = r.stack[:len(r.stack)-1]
		}
	}
}

func (r *Renderer) paintPath(p *pdfrenderer.Path, mode pdfrenderer.PathMode) {
	if mode&pdfrenderer.PathFill != 0 {
		r.fillPath(p.Data().Iter(), r.state.fill)
	}
	if mode&pdfrenderer.PathStroke != 0 {
		r.strokePath(p, r.state.stroke)
	}
}

// fillPath rasterizes a path with the current transform and draws it in
// the given color.
func (r *Renderer) fillPath(p path.Path, col color.RGBA) {
	r.ras.Reset(r.img.Bounds().Dx(), r.img.Bounds().Dy())
	haveFirst := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			haveFirst = true
			x, y := r.xy(pts[0])
			r.ras.MoveTo(x, y)
		case path.CmdLineTo:
			x, y := r.xy(pts[0])
			r.ras.LineTo(x, y)
		case path.CmdQuadTo:
			x1, y1 := r.xy(pts[0])
			x2, y2 := r.xy(pts[1])
			r.ras.QuadTo(x1, y1, x2, y2)
		case path.CmdCubeTo:
			x1, y1 := r.xy(pts[0])
			x2, y2 := r.xy(pts[1])
			x3, y3 := r.xy(pts[2])
			r.ras.CubeTo(x1, y1, x2, y2, x3, y3)
		case path.CmdClose:
			r.ras.ClosePath()
		}
	}
	if !haveFirst {
		return
	}
	r.ras.Draw(r.img, r.img.Bounds(), image.NewUniform(col), image.Point{})
}

// strokePath draws each segment as a filled quadrilateral of the current
// stroke width.  Curves are flattened to their control polygon; this is
// a preview-quality approximation.
func (r *Renderer) strokePath(p *pdfrenderer.Path, col color.RGBA) {
	w := r.state.strokeWidth
	if w <= 0 {
		w = 1
	}
	var cur, start vec.Vec2
	stroke := &path.Data{}
	segment := func(a, b vec.Vec2) {
		dx, dy := b.X-a.X, b.Y-a.Y
		n := math.Hypot(dx, dy)
		if n == 0 {
			return
		}
		// unit normal, scaled to half the stroke width
		ox, oy := -dy/n*w/2, dx/n*w/2
		stroke.MoveTo(vec.Vec2{X: a.X + ox, Y: a.Y + oy})
		stroke.LineTo(vec.Vec2{X: b.X + ox, Y: b.Y + oy})
		stroke.LineTo(vec.Vec2{X: b.X - ox, Y: b.Y - oy})
		stroke.LineTo(vec.Vec2{X: a.X - ox, Y: a.Y - oy})
		stroke.Close()
	}
	for cmd, pts := range p.Data().Iter() {
		switch cmd {
		case path.CmdMoveTo:
			cur = pts[0]
			start = cur
		case path.CmdLineTo:
			segment(cur, pts[0])
			cur = pts[0]
		case path.CmdQuadTo:
			segment(cur, pts[0])
			segment(pts[0], pts[1])
			cur = pts[1]
		case path.CmdCubeTo:
			segment(cur, pts[0])
			segment(pts[0], pts[1])
			segment(pts[1], pts[2])
			cur = pts[2]
		case path.CmdClose:
			segment(cur, start)
			cur = start
		}
	}
	r.fillPath(stroke.Iter(), col)
}

// xy maps a user space point through the current transform to rasterizer
// coordinates.
func (r *Renderer) xy(v vec.Vec2) (float32, float32) {
	m := r.state.ctm
	x := m[0]*v.X + m[2]*v.Y + m[4]
	y := m[1]*v.X + m[3]*v.Y + m[5]
	return float32(x), float32(y)
}

// toRGBA converts a device color paint to RGBA.  Unknown paints keep the
// previous color.
func toRGBA(p pdfrenderer.Paint) (color.RGBA, bool) {
	dc, ok := p.(pdfrenderer.DeviceColor)
	if !ok {
		return color.RGBA{}, false
	}
	clamp := func(x float64) uint8 {
		if x < 0 {
			x = 0
		} else if x > 1 {
			x = 1
		}
		return uint8(math.Round(x * 255))
	}
	c := dc.Components
	switch dc.Space {
	case "DeviceGray":
		if len(c) != 1 {
			return color.RGBA{}, false
		}
		g := clamp(c[0])
		return color.RGBA{R: g, G: g, B: g, A: 0xff}, true
	case "DeviceRGB":
		if len(c) != 3 {
			return color.RGBA{}, false
		}
		return color.RGBA{R: clamp(c[0]), G: clamp(c[1]), B: clamp(c[2]), A: 0xff}, true
	case "DeviceCMYK":
		if len(c) != 4 {
			return color.RGBA{}, false
		}
		return color.RGBA{
			R: clamp((1 - c[0]) * (1 - c[3])),
			G: clamp((1 - c[1]) * (1 - c[3])),
			B: clamp((1 - c[2]) * (1 - c[3])),
			A: 0xff,
		}, true
	default:
		return color.RGBA{}, false
	}
}
