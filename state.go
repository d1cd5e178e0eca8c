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

// graphicsState is the part of the graphics state the interpreter tracks
// itself.  Everything else (transform, stroke parameters, paints) lives
// in the sink and is saved and restored there by Push/Pop commands.
type graphicsState struct {
	fillSpace   ColorSpace
	strokeSpace ColorSpace
	text        *TextFormat
}

func newGraphicsState() *graphicsState {
	return &graphicsState{
		fillSpace:   DeviceGray,
		strokeSpace: DeviceGray,
		text:        newTextFormat(),
	}
}

// clone copies the state for the q operator.  Color spaces are immutable
// and shared; the text formatter carries mutable matrices and is copied
// deeply.
func (gs *graphicsState) clone() *graphicsState {
	return &graphicsState{
		fillSpace:   gs.fillSpace,
		strokeSpace: gs.strokeSpace,
		text:        gs.text.clone(),
	}
}
