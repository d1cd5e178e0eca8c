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

// Paint is an opaque fill or stroke paint, produced by a color space and
// consumed by the command sink.
type Paint interface{}

// A ColorSpace turns component values into paints.  Color spaces are
// immutable and may be shared freely between graphics states.
type ColorSpace interface {
	// NumComponents returns the number of color components.
	NumComponents() int

	// Paint returns the paint for the given component values.
	Paint(components []float64) (Paint, error)
}

// A PatternSpace is a color space whose paints are constructed from named
// pattern resources rather than from component values alone.
type PatternSpace interface {
	ColorSpace

	// PatternPaint builds a paint from a pattern object, optional
	// preceding color components, and the resources in scope.
	PatternPaint(pattern PDFObject, components []float64, resources Resources) (Paint, error)
}

// ColorSpaceFactory constructs a color space from a PDF object (a name,
// array, or dictionary) and the resources in scope.
type ColorSpaceFactory func(obj PDFObject, resources Resources) (ColorSpace, error)

// PatternFactory constructs a pattern paint from a pattern object.  It
// backs the built-in Pattern color space used by the SCN and scn
// operators.
type PatternFactory func(pattern PDFObject, components []float64, resources Resources) (Paint, error)

// DeviceColor is the paint produced by the built-in device color spaces.
type DeviceColor struct {
	Space      Name // DeviceGray, DeviceRGB or DeviceCMYK
	Components []float64
}

// deviceSpace is one of the three device color spaces.
type deviceSpace struct {
	name Name
	n    int
}

// The built-in device color spaces.
var (
	DeviceGray ColorSpace = deviceSpace{name: "DeviceGray", n: 1}
	DeviceRGB  ColorSpace = deviceSpace{name: "DeviceRGB", n: 3}
	DeviceCMYK ColorSpace = deviceSpace{name: "DeviceCMYK", n: 4}
)

func (d deviceSpace) NumComponents() int {
	return d.n
}

func (d deviceSpace) Paint(components []float64) (Paint, error) {
	if len(components) != d.n {
		return nil, typeError("%s needs %d components, got %d", d.name, d.n, len(components))
	}
	return DeviceColor{Space: d.name, Components: components}, nil
}

// deviceSpaceByName returns the built-in color space for a device name,
// accepting both the full names and the inline image abbreviations.
func deviceSpaceByName(name Name) ColorSpace {
	switch name {
	case "DeviceGray", "G":
		return DeviceGray
	case "DeviceRGB", "RGB":
		return DeviceRGB
	case "DeviceCMYK", "CMYK":
		return DeviceCMYK
	}
	return nil
}

// patternSpace is the built-in Pattern color space.  Component values are
// the underlying color for uncolored patterns; the paint itself comes
// from the pattern factory.
type patternSpace struct {
	build PatternFactory
}

func (p patternSpace) NumComponents() int {
	return 1
}

func (p patternSpace) Paint(components []float64) (Paint, error) {
	return nil, typeError("a pattern space needs a pattern name")
}

func (p patternSpace) PatternPaint(pattern PDFObject, components []float64, resources Resources) (Paint, error) {
	if p.build == nil {
		return nil, collabError("pattern", errNoFactory)
	}
	paint, err := p.build(pattern, components, resources)
	if err != nil {
		return nil, collabError("pattern", err)
	}
	return paint, nil
}
