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

import "seehuhn.de/go/geom/matrix"

// TextFormat tracks the text state: font, spacing parameters, and the
// text and text line matrices.  Glyphs are positioned in text space and
// handed to the sink; the device transform is the sink's business.
type TextFormat struct {
	font        Font
	fontSize    float64
	charSpacing float64
	wordSpacing float64
	horizScale  float64 // 1.0 is normal
	leading     float64
	rise        float64
	mode        int

	textMatrix matrix.Matrix
	lineMatrix matrix.Matrix
}

// Text rendering mode 3 draws nothing.
const renderModeInvisible = 3

func newTextFormat() *TextFormat {
	return &TextFormat{
		horizScale: 1,
		textMatrix: matrix.Identity,
		lineMatrix: matrix.Identity,
	}
}

// clone copies the formatter, for graphics state saves.
func (t *TextFormat) clone() *TextFormat {
	c := *t
	return &c
}

// reset reinitializes both matrices, for the BT operator.
func (t *TextFormat) reset() {
	t.textMatrix = matrix.Identity
	t.lineMatrix = matrix.Identity
}

// end finishes a text object, for the ET operator.
func (t *TextFormat) end() {
	// the matrices do not persist between text objects
	t.reset()
}

// flush releases the font when interpretation ends.  All show operations
// have already been emitted at that point.
func (t *TextFormat) flush() {
	t.font = nil
}

func (t *TextFormat) setFont(f Font, size float64) {
	t.font = f
	t.fontSize = size
}

func (t *TextFormat) setCharSpacing(s float64) { t.charSpacing = s }
func (t *TextFormat) setWordSpacing(s float64) { t.wordSpacing = s }
func (t *TextFormat) setLeading(l float64)     { t.leading = l }
func (t *TextFormat) setRise(r float64)        { t.rise = r }
func (t *TextFormat) setMode(m int)            { t.mode = m }

// setHorizontalScale takes the Tz operand, a percentage.
func (t *TextFormat) setHorizontalScale(percent float64) {
	t.horizScale = percent / 100
}

// setMatrix sets the text matrix and text line matrix directly.
func (t *TextFormat) setMatrix(m []float64) {
	t.textMatrix = matrix.Matrix{m[0], m[1], m[2], m[3], m[4], m[5]}
	t.lineMatrix = t.textMatrix
}

// carriageReturn translates the text line matrix by (x, y) and restarts
// the text matrix there.
func (t *TextFormat) carriageReturn(x, y float64) {
	t.lineMatrix = matrix.Translate(x, y).Mul(t.lineMatrix)
	t.textMatrix = t.lineMatrix
}

// nextLine advances to the start of the next line using the current
// leading.
func (t *TextFormat) nextLine() {
	t.carriageReturn(0, -t.leading)
}

// show emits the glyphs for a PDF string and advances the text matrix.
func (t *TextFormat) show(sink CommandSink, s []byte) {
	if t.font == nil {
		warnf("text shown with no font selected")
		return
	}
	for _, g := range t.font.Glyphs(s) {
		if t.mode != renderModeInvisible {
			trfm := matrix.Matrix{t.fontSize * t.horizScale, 0, 0, t.fontSize, 0, t.rise}
			g.Draw(sink, trfm.Mul(t.textMatrix))
		}
		advance := g.Advance()*t.fontSize + t.charSpacing
		if g.IsSpace() {
			advance += t.wordSpacing
		}
		t.textMatrix = matrix.Translate(advance*t.horizScale, 0).Mul(t.textMatrix)
	}
}

// kern applies a TJ adjustment, in thousandths of a unit of text space.
func (t *TextFormat) kern(d float64) {
	dx := -d / 1000 * t.fontSize * t.horizScale
	t.textMatrix = matrix.Translate(dx, 0).Mul(t.textMatrix)
}

// showKerned shows a TJ array: strings are shown, numbers adjust the
// position between them.
func (t *TextFormat) showKerned(sink CommandSink, a Array) error {
	for _, el := range a {
		switch el := el.(type) {
		case String:
			t.show(sink, []byte(el))
		case Number:
			t.kern(float64(el))
		default:
			return typeError("TJ array element is %T, not a string or number", el)
		}
	}
	return nil
}
