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

func opBeginText(in *Interpreter) error {
	in.state.text.reset()
	return nil
}

func opEndText(in *Interpreter) error {
	in.state.text.end()
	return nil
}

func opCharSpacing(in *Interpreter) error {
	x, err := in.stack.popNumber()
	if err != nil {
		return err
	}
	in.state.text.setCharSpacing(x)
	return nil
}

func opWordSpacing(in *Interpreter) error {
	x, err := in.stack.popNumber()
	if err != nil {
		return err
	}
	in.state.text.setWordSpacing(x)
	return nil
}

func opHorizScale(in *Interpreter) error {
	x, err := in.stack.popNumber()
	if err != nil {
		return err
	}
	in.state.text.setHorizontalScale(x)
	return nil
}

func opLeading(in *Interpreter) error {
	x, err := in.stack.popNumber()
	if err != nil {
		return err
	}
	in.state.text.setLeading(x)
	return nil
}

// getFont resolves a font resource through the font factory.
func (in *Interpreter) getFont(name Name) (Font, error) {
	obj, err := in.findResource(name, "Font")
	if err != nil {
		return nil, err
	}
	if in.Fonts == nil {
		return nil, collabError("font", errNoFactory)
	}
	f, err := in.Fonts(obj, in.resources)
	if err != nil {
		return nil, collabError("font "+string(name), err)
	}
	return f, nil
}

func opFont(in *Interpreter) error {
	size, err := in.stack.popNumber()
	if err != nil {
		return err
	}
	name, err := in.stack.popName()
	if err != nil {
		return err
	}
	f, err := in.getFont(name)
	if err != nil {
		return err
	}
	in.state.text.setFont(f, size)
	return nil
}

func opRenderMode(in *Interpreter) error {
	mode, err := in.stack.popInt()
	if err != nil {
		return err
	}
	in.state.text.setMode(mode)
	return nil
}

func opRise(in *Interpreter) error {
	x, err := in.stack.popNumber()
	if err != nil {
		return err
	}
	in.state.text.setRise(x)
	return nil
}

func opTextMove(in *Interpreter) error {
	y, err := in.stack.popNumber()
	if err != nil {
		return err
	}
	x, err := in.stack.popNumber()
	if err != nil {
		return err
	}
	in.state.text.carriageReturn(x, y)
	return nil
}

// opTextMoveLeading implements TD, which is "-ty TL tx ty Td".
func opTextMoveLeading(in *Interpreter) error {
	y, err := in.stack.popNumber()
	if err != nil {
		return err
	}
	x, err := in.stack.popNumber()
	if err != nil {
		return err
	}
	in.state.text.setLeading(-y)
	in.state.text.carriageReturn(x, y)
	return nil
}

func opTextMatrix(in *Interpreter) error {
	m, err := in.stack.popNumbers(6)
	if err != nil {
		return err
	}
	in.state.text.setMatrix(m)
	return nil
}

func opTextNextLine(in *Interpreter) error {
	in.state.text.nextLine()
	return nil
}

func opShowText(in *Interpreter) error {
	s, err := in.stack.popString()
	if err != nil {
		return err
	}
	in.state.text.show(in.cmds, s)
	return nil
}

// opNextLineShowText implements ', which is "T* string Tj".
func opNextLineShowText(in *Interpreter) error {
	s, err := in.stack.popString()
	if err != nil {
		return err
	}
	in.state.text.nextLine()
	in.state.text.show(in.cmds, s)
	return nil
}

// opSpacingNextLineShowText implements ", which is "aw Tw ac Tc string '".
func opSpacingNextLineShowText(in *Interpreter) error {
	s, err := in.stack.popString()
	if err != nil {
		return err
	}
	ac, err := in.stack.popNumber()
	if err != nil {
		return err
	}
	aw, err := in.stack.popNumber()
	if err != nil {
		return err
	}
	in.state.text.setWordSpacing(aw)
	in.state.text.setCharSpacing(ac)
	in.state.text.nextLine()
	in.state.text.show(in.cmds, s)
	return nil
}

func opShowKernedText(in *Interpreter) error {
	a, err := in.stack.popArray()
	if err != nil {
		return err
	}
	return in.state.text.showKerned(in.cmds, a)
}
