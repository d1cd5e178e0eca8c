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

// Package pdfrenderer interprets PDF content streams.
//
// The interpreter consumes the decoded byte stream of a single page (or
// Form XObject) and drives a [CommandSink] by issuing rendering commands:
// graphics state changes, path painting, text placement, images and
// shadings.  The surrounding PDF machinery (object resolution, font and
// image decoding, color space and pattern construction) is supplied by the
// caller through small collaborator interfaces.
//
// An [Interpreter] is externally stepped: each call to Iterate processes
// one object from the stream (an operand is pushed, an operator is
// executed) and reports whether more input remains.
// The convenience method Go drives it to completion.
package pdfrenderer
