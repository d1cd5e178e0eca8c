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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// A Cmd is one recorded rendering command.
type Cmd interface {
	isCmd()
}

type PushCmd struct{}

type PopCmd struct{}

type TransformCmd struct {
	M matrix.Matrix
}

type StrokeWidthCmd struct {
	W float64
}

type EndCapCmd struct {
	Cap int
}

type LineJoinCmd struct {
	Join int
}

type MiterLimitCmd struct {
	Limit float64
}

type DashCmd struct {
	Pattern []float64
	Phase   float64
}

type StrokeAlphaCmd struct {
	A float64
}

type FillAlphaCmd struct {
	A float64
}

type StrokePaintCmd struct {
	P Paint
}

type FillPaintCmd struct {
	P Paint
}

type PathCmd struct {
	Path *Path
	Mode PathMode
}

type ShadeCmd struct {
	P    Paint
	BBox rect.Rect
}

type ImageCmd struct {
	Img Image
}

type CommandsCmd struct {
	Page *Page
}

func (PushCmd) isCmd()        {}
func (PopCmd) isCmd()         {}
func (TransformCmd) isCmd()   {}
func (StrokeWidthCmd) isCmd() {}
func (EndCapCmd) isCmd()      {}
func (LineJoinCmd) isCmd()    {}
func (MiterLimitCmd) isCmd()  {}
func (DashCmd) isCmd()        {}
func (StrokeAlphaCmd) isCmd() {}
func (FillAlphaCmd) isCmd()   {}
func (StrokePaintCmd) isCmd() {}
func (FillPaintCmd) isCmd()   {}
func (PathCmd) isCmd()        {}
func (ShadeCmd) isCmd()       {}
func (ImageCmd) isCmd()       {}
func (CommandsCmd) isCmd()    {}

// A Page records the command sequence for one page or form.  It is the
// standard command sink: the interpreter writes into it, renderers walk
// the recorded list afterwards.
type Page struct {
	// BBox is the page or form bounding box.  It is the fallback extent
	// for shadings that do not declare their own.
	BBox rect.Rect

	cmds     []Cmd
	finished bool
}

// NewPage returns an empty page with the given bounding box.
func NewPage(bbox rect.Rect) *Page {
	return &Page{BBox: bbox}
}

// CommandList returns the recorded command list.
func (p *Page) CommandList() []Cmd {
	return p.cmds
}

// Finished reports whether the producing interpreter has signalled
// completion.
func (p *Page) Finished() bool {
	return p.finished
}

func (p *Page) add(c Cmd) {
	p.cmds = append(p.cmds, c)
}

func (p *Page) Push()                                 { p.add(PushCmd{}) }
func (p *Page) Pop()                                  { p.add(PopCmd{}) }
func (p *Page) Transform(m matrix.Matrix)             { p.add(TransformCmd{M: m}) }
func (p *Page) StrokeWidth(w float64)                 { p.add(StrokeWidthCmd{W: w}) }
func (p *Page) EndCap(cap int)                        { p.add(EndCapCmd{Cap: cap}) }
func (p *Page) LineJoin(join int)                     { p.add(LineJoinCmd{Join: join}) }
func (p *Page) MiterLimit(limit float64)              { p.add(MiterLimitCmd{Limit: limit}) }
func (p *Page) Dash(pattern []float64, phase float64) { p.add(DashCmd{Pattern: pattern, Phase: phase}) }
func (p *Page) StrokeAlpha(a float64)                 { p.add(StrokeAlphaCmd{A: a}) }
func (p *Page) FillAlpha(a float64)                   { p.add(FillAlphaCmd{A: a}) }
func (p *Page) StrokePaint(paint Paint)               { p.add(StrokePaintCmd{P: paint}) }
func (p *Page) FillPaint(paint Paint)                 { p.add(FillPaintCmd{P: paint}) }
func (p *Page) Path(path *Path, mode PathMode)        { p.add(PathCmd{Path: path, Mode: mode}) }
func (p *Page) Shade(paint Paint, bbox rect.Rect)     { p.add(ShadeCmd{P: paint, BBox: bbox}) }
func (p *Page) Image(img Image)                       { p.add(ImageCmd{Img: img}) }
func (p *Page) Commands(sub *Page)                    { p.add(CommandsCmd{Page: sub}) }

func (p *Page) Finish() {
	p.finished = true
}
