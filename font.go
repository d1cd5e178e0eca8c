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
	"errors"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

var errNoFactory = errors.New("no factory installed")

// A Font maps PDF strings to glyphs.  Encoding and glyph outlines are
// the font's business; the interpreter only positions the results.
type Font interface {
	// Glyphs decodes a PDF string into glyphs using the font's encoding.
	Glyphs(s []byte) []Glyph
}

// A Glyph is one positioned unit of text output.
type Glyph interface {
	// Advance is the glyph's advance width in text space units, for a
	// font size of 1.
	Advance() float64

	// IsSpace reports whether the glyph is a word space, for word
	// spacing purposes.
	IsSpace() bool

	// Draw appends the glyph's rendering commands to the sink,
	// transformed by trfm.
	Draw(sink CommandSink, trfm matrix.Matrix)
}

// FontFactory constructs a font from a PDF font dictionary and the
// resources in scope.
type FontFactory func(obj PDFObject, resources Resources) (Font, error)

// An Image is a decoded raster image, ready to hand to the sink.
type Image interface {
	// Bounds returns the image dimensions in pixels.
	Bounds() (width, height int)
}

// ImageFactory constructs an image from an image XObject or inline image
// object and the resources in scope.
type ImageFactory func(obj PDFObject, resources Resources) (Image, error)

// A Shader fills a region with a gradient or similar paint.
type Shader interface {
	// Paint returns the shading paint.
	Paint() Paint

	// BBox returns the shading's bounding box, if it declares one.
	BBox() (bbox rect.Rect, ok bool)
}

// ShaderFactory constructs a shader from a shading dictionary and the
// resources in scope.
type ShaderFactory func(obj PDFObject, resources Resources) (Shader, error)
