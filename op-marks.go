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

// Marked content carries no rendering semantics; the operators consume
// their operands and are otherwise ignored.

func opMarkPoint(in *Interpreter) error {
	_, err := in.stack.popString()
	return err
}

// opMarkPointDict implements DP: role name plus an inline dictionary or
// a name in the Properties resources.
func opMarkPointDict(in *Interpreter) error {
	if _, err := in.stack.pop(); err != nil {
		return err
	}
	_, err := in.stack.popString()
	return err
}

func opBeginMarked(in *Interpreter) error {
	_, err := in.stack.popString()
	return err
}

func opBeginMarkedDict(in *Interpreter) error {
	if _, err := in.stack.pop(); err != nil {
		return err
	}
	_, err := in.stack.popString()
	return err
}

func opEndMarked(in *Interpreter) error {
	return nil
}

// opGlyphWidth implements d0, the Type 3 glyph width declaration.
func opGlyphWidth(in *Interpreter) error {
	_, err := in.stack.popNumbers(2)
	return err
}

// opGlyphWidthBBox implements d1, the Type 3 glyph width and bounding
// box declaration.
func opGlyphWidthBBox(in *Interpreter) error {
	_, err := in.stack.popNumbers(6)
	return err
}

// opBeginCompat implements BX: until the matching EX, unknown operators
// and collaborator failures are warnings rather than errors.
func opBeginCompat(in *Interpreter) error {
	in.catch = true
	return nil
}

func opEndCompat(in *Interpreter) error {
	in.catch = false
	return nil
}
