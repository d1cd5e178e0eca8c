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

func opMoveTo(in *Interpreter) error {
	y, err := in.stack.popNumber()
	if err != nil {
		return err
	}
	x, err := in.stack.popNumber()
	if err != nil {
		return err
	}
	in.path.MoveTo(x, y)
	return nil
}

func opLineTo(in *Interpreter) error {
	y, err := in.stack.popNumber()
	if err != nil {
		return err
	}
	x, err := in.stack.popNumber()
	if err != nil {
		return err
	}
	in.path.LineTo(x, y)
	return nil
}

func opCurveTo(in *Interpreter) error {
	a, err := in.stack.popNumbers(6)
	if err != nil {
		return err
	}
	in.path.CurveTo(a[0], a[1], a[2], a[3], a[4], a[5])
	return nil
}

// opCurveV implements v: the first control point is the current point.
func opCurveV(in *Interpreter) error {
	a, err := in.stack.popNumbers(4)
	if err != nil {
		return err
	}
	in.path.CurveV(a[0], a[1], a[2], a[3])
	return nil
}

// opCurveY implements y: the second control point is the endpoint.
func opCurveY(in *Interpreter) error {
	a, err := in.stack.popNumbers(4)
	if err != nil {
		return err
	}
	in.path.CurveY(a[0], a[1], a[2], a[3])
	return nil
}

func opClosePath(in *Interpreter) error {
	in.path.Close()
	return nil
}

func opRectangle(in *Interpreter) error {
	a, err := in.stack.popNumbers(4)
	if err != nil {
		return err
	}
	in.path.Rect(a[0], a[1], a[2], a[3])
	return nil
}

// commitPath hands the current path to the sink and starts a fresh one.
// A pending clip flag is folded into the mode and cleared.
func (in *Interpreter) commitPath(mode PathMode) {
	in.cmds.Path(in.path, mode|in.clip)
	in.clip = 0
	in.path = newPath()
}

func opStroke(in *Interpreter) error {
	in.commitPath(PathStroke)
	return nil
}

func opCloseStroke(in *Interpreter) error {
	in.path.Close()
	in.commitPath(PathStroke)
	return nil
}

func opFill(in *Interpreter) error {
	in.commitPath(PathFill)
	return nil
}

func opFillEvenOdd(in *Interpreter) error {
	in.path.SetEvenOdd()
	in.commitPath(PathFill)
	return nil
}

func opFillStroke(in *Interpreter) error {
	in.commitPath(PathBoth)
	return nil
}

func opFillStrokeEvenOdd(in *Interpreter) error {
	in.path.SetEvenOdd()
	in.commitPath(PathBoth)
	return nil
}

func opCloseFillStroke(in *Interpreter) error {
	in.path.Close()
	in.commitPath(PathBoth)
	return nil
}

func opCloseFillStrokeEvenOdd(in *Interpreter) error {
	in.path.Close()
	in.path.SetEvenOdd()
	in.commitPath(PathBoth)
	return nil
}

// opEndPath implements n: the path is discarded, but a pending clip is
// still committed.
func opEndPath(in *Interpreter) error {
	if in.clip != 0 {
		in.cmds.Path(in.path, in.clip)
	}
	in.clip = 0
	in.path = newPath()
	return nil
}

// opClip implements W.  The clip takes effect with the next path commit.
func opClip(in *Interpreter) error {
	in.clip = PathClip
	return nil
}

func opClipEvenOdd(in *Interpreter) error {
	in.path.SetEvenOdd()
	in.clip = PathClip
	return nil
}

// opShade implements sh.  Shader failures are never fatal: a shading is
// decorative, so the error is logged and interpretation continues.
func opShade(in *Interpreter) error {
	name, err := in.stack.popName()
	if err != nil {
		return err
	}
	err = in.doShade(name)
	if err != nil {
		warnf("shading %s failed: %v", name, err)
	}
	return nil
}

func (in *Interpreter) doShade(name Name) error {
	obj, err := in.findResource(name, "Shading")
	if err != nil {
		return err
	}
	if in.Shaders == nil {
		return collabError("shader", errNoFactory)
	}
	shader, err := in.Shaders(obj, in.resources)
	if err != nil {
		return collabError("shader", err)
	}

	bbox, ok := shader.BBox()
	if !ok {
		if page, isPage := in.cmds.(*Page); isPage {
			bbox = page.BBox
		}
	}
	in.cmds.Push()
	in.cmds.Shade(shader.Paint(), bbox)
	in.cmds.Pop()
	return nil
}
