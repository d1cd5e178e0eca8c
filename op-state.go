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

// opSave implements the q operator.
func opSave(in *Interpreter) error {
	in.saved = append(in.saved, in.state.clone())
	in.cmds.Push()
	return nil
}

// opRestore implements the Q operator.  With nothing saved this is a
// no-op on the interpreter state, but the Pop is still emitted so that
// sink saves stay paired with the source stream.
func opRestore(in *Interpreter) error {
	in.cmds.Pop()
	if n := len(in.saved); n > 0 {
		in.state = in.saved[n-1]
		in.saved = in.saved[:n-1]
	}
	return nil
}

// opConcat implements the cm operator.
func opConcat(in *Interpreter) error {
	m, err := in.stack.popNumbers(6)
	if err != nil {
		return err
	}
	in.cmds.Transform(matrix.Matrix{m[0], m[1], m[2], m[3], m[4], m[5]})
	return nil
}

func opStrokeWidth(in *Interpreter) error {
	w, err := in.stack.popNumber()
	if err != nil {
		return err
	}
	in.cmds.StrokeWidth(w)
	return nil
}

func opEndCap(in *Interpreter) error {
	c, err := in.stack.popInt()
	if err != nil {
		return err
	}
	in.cmds.EndCap(c)
	return nil
}

func opLineJoin(in *Interpreter) error {
	j, err := in.stack.popInt()
	if err != nil {
		return err
	}
	in.cmds.LineJoin(j)
	return nil
}

func opMiterLimit(in *Interpreter) error {
	limit, err := in.stack.popInt()
	if err != nil {
		return err
	}
	in.cmds.MiterLimit(float64(limit))
	return nil
}

func opDash(in *Interpreter) error {
	phase, err := in.stack.popNumber()
	if err != nil {
		return err
	}
	pattern, err := in.stack.popNumberArray()
	if err != nil {
		return err
	}
	in.cmds.Dash(pattern, phase)
	return nil
}

// opRenderingIntent consumes the ri operand.  Rendering intents are not
// interpreted.
func opRenderingIntent(in *Interpreter) error {
	_, err := in.stack.popString()
	return err
}

// opFlatness consumes the i operand.  Flatness is left to the sink.
func opFlatness(in *Interpreter) error {
	_, err := in.stack.popNumber()
	return err
}
