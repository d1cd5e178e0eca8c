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

// opExtGState implements gs: apply a named ExtGState parameter
// dictionary.  Only the entries below are interpreted; everything else
// (blend modes, soft masks, ...) is ignored.
func opExtGState(in *Interpreter) error {
	name, err := in.stack.popName()
	if err != nil {
		return err
	}
	obj, err := in.findResource(name, "ExtGState")
	if err != nil {
		return err
	}

	if d := obj.Get("LW"); d != nil {
		in.cmds.StrokeWidth(d.Number())
	}
	if d := obj.Get("LC"); d != nil {
		in.cmds.EndCap(int(d.Number()))
	}
	if d := obj.Get("LJ"); d != nil {
		in.cmds.LineJoin(int(d.Number()))
	}
	if d := obj.Get("Font"); d != nil && d.Len() == 2 {
		f, err := in.getFont(Name(d.At(0).Text()))
		if err != nil {
			return err
		}
		in.state.text.setFont(f, d.At(1).Number())
	}
	if d := obj.Get("ML"); d != nil {
		in.cmds.MiterLimit(d.Number())
	}
	if d := obj.Get("D"); d != nil && d.Len() == 2 {
		dashObj := d.At(0)
		dash := make([]float64, dashObj.Len())
		for i := range dash {
			dash[i] = dashObj.At(i).Number()
		}
		in.cmds.Dash(dash, d.At(1).Number())
	}
	if d := obj.Get("CA"); d != nil {
		in.cmds.StrokeAlpha(d.Number())
	}
	if d := obj.Get("ca"); d != nil {
		in.cmds.FillAlpha(d.Number())
	}
	return nil
}
