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
	"weak"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// A CommandSink receives the rendering commands produced by the
// interpreter, in program order of the source stream.
type CommandSink interface {
	// Push saves the sink's graphics state.
	Push()

	// Pop restores the sink's graphics state.
	Pop()

	// Transform concatenates m onto the current transformation matrix.
	Transform(m matrix.Matrix)

	// StrokeWidth sets the line width.
	StrokeWidth(w float64)

	// EndCap sets the line cap style.
	EndCap(cap int)

	// LineJoin sets the line join style.
	LineJoin(join int)

	// MiterLimit sets the miter limit.
	MiterLimit(limit float64)

	// Dash sets the dash pattern and phase.
	Dash(pattern []float64, phase float64)

	// StrokeAlpha sets the stroking alpha constant.
	StrokeAlpha(a float64)

	// FillAlpha sets the non-stroking alpha constant.
	FillAlpha(a float64)

	// StrokePaint sets the stroking paint.
	StrokePaint(p Paint)

	// FillPaint sets the non-stroking paint.
	FillPaint(p Paint)

	// Path paints or clips with a committed path.
	Path(p *Path, mode PathMode)

	// Shade fills bbox with a shading paint.
	Shade(p Paint, bbox rect.Rect)

	// Image draws an image.
	Image(img Image)

	// Commands inlines a previously recorded command list.
	Commands(sub *Page)

	// Finish signals that no more commands will arrive.
	Finish()
}

// A SinkRef is a possibly non-owning handle to a command sink.  Get
// returns nil once the sink has been released by its owner.
type SinkRef interface {
	Get() CommandSink
}

type strongRef struct {
	sink CommandSink
}

func (r strongRef) Get() CommandSink {
	return r.sink
}

// StrongSink returns a SinkRef that keeps the sink alive.
func StrongSink(s CommandSink) SinkRef {
	return strongRef{sink: s}
}

type weakRef[T any] struct {
	ptr weak.Pointer[T]
	as  func(*T) CommandSink
}

func (r weakRef[T]) Get() CommandSink {
	p := r.ptr.Value()
	if p == nil {
		return nil
	}
	return r.as(p)
}

// WeakSink returns a SinkRef that does not keep the sink alive.  For the
// interpreter to make progress, some other code must retain a strong
// reference to the sink; once that is dropped, iteration stops.
func WeakSink[T any, P interface {
	*T
	CommandSink
}](sink P) SinkRef {
	return weakRef[T]{
		ptr: weak.Make((*T)(sink)),
		as:  func(p *T) CommandSink { return P(p) },
	}
}
