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

// parseColorSpace resolves a color space name: one of the device spaces,
// the Pattern space, or a named entry in the ColorSpace resources, which
// is handed to the color space factory.
func (in *Interpreter) parseColorSpace(name Name) (ColorSpace, error) {
	if cs := deviceSpaceByName(name); cs != nil {
		return cs, nil
	}
	if name == "Pattern" {
		return patternSpace{build: in.Patterns}, nil
	}

	obj, err := in.findResource(name, "ColorSpace")
	if err != nil {
		return nil, err
	}
	if in.ColorSpaces == nil {
		return nil, collabError("color space", errNoFactory)
	}
	cs, err := in.ColorSpaces(obj, in.resources)
	if err != nil {
		return nil, collabError("color space", err)
	}
	return cs, nil
}

func opStrokeColorSpace(in *Interpreter) error {
	name, err := in.stack.popName()
	if err != nil {
		return err
	}
	cs, err := in.parseColorSpace(name)
	if err != nil {
		return err
	}
	in.state.strokeSpace = cs
	return nil
}

func opFillColorSpace(in *Interpreter) error {
	name, err := in.stack.popName()
	if err != nil {
		return err
	}
	cs, err := in.parseColorSpace(name)
	if err != nil {
		return err
	}
	in.state.fillSpace = cs
	return nil
}

// popPaint builds a paint from the current color space, popping as many
// components as the space requires.
func (in *Interpreter) popPaint(cs ColorSpace) (Paint, error) {
	components, err := in.stack.popNumbers(cs.NumComponents())
	if err != nil {
		return nil, err
	}
	paint, err := cs.Paint(components)
	if err != nil {
		return nil, collabError("paint", err)
	}
	return paint, nil
}

// popPatternPaint handles the SCN/scn forms: in a Pattern space, a
// trailing pattern name is popped along with any preceding components;
// otherwise the operator behaves like SC/sc, tolerating (and warning
// about) a stray trailing name.
func (in *Interpreter) popPatternPaint(cs ColorSpace) (Paint, error) {
	ps, isPattern := cs.(PatternSpace)
	if !isPattern {
		if n := in.stack.size(); n > 0 {
			if _, ok := in.stack.data[n-1].(Name); ok {
				warnf("ignoring pattern name in a non-pattern color space")
				in.stack.pop()
			}
		}
		return in.popPaint(cs)
	}

	name, err := in.stack.popName()
	if err != nil {
		return nil, err
	}
	pattern, err := in.findResource(name, "Pattern")
	if err != nil {
		return nil, err
	}
	var components []float64
	if n := in.stack.size(); n > 0 {
		components, err = in.stack.popNumbers(n)
		if err != nil {
			return nil, err
		}
	}
	return ps.PatternPaint(pattern, components, in.resources)
}

func opStrokeColor(in *Interpreter) error {
	paint, err := in.popPaint(in.state.strokeSpace)
	if err != nil {
		return err
	}
	in.cmds.StrokePaint(paint)
	return nil
}

func opFillColor(in *Interpreter) error {
	paint, err := in.popPaint(in.state.fillSpace)
	if err != nil {
		return err
	}
	in.cmds.FillPaint(paint)
	return nil
}

func opStrokeColorN(in *Interpreter) error {
	paint, err := in.popPatternPaint(in.state.strokeSpace)
	if err != nil {
		return err
	}
	in.cmds.StrokePaint(paint)
	return nil
}

func opFillColorN(in *Interpreter) error {
	paint, err := in.popPatternPaint(in.state.fillSpace)
	if err != nil {
		return err
	}
	in.cmds.FillPaint(paint)
	return nil
}

// setDevicePaint switches to a device color space and applies the color
// in one step, for the G/g/RG/rg/K/k shortcuts.
func (in *Interpreter) setDevicePaint(cs ColorSpace, stroke bool) error {
	if stroke {
		in.state.strokeSpace = cs
	} else {
		in.state.fillSpace = cs
	}
	paint, err := in.popPaint(cs)
	if err != nil {
		return err
	}
	if stroke {
		in.cmds.StrokePaint(paint)
	} else {
		in.cmds.FillPaint(paint)
	}
	return nil
}

func opStrokeGray(in *Interpreter) error {
	return in.setDevicePaint(DeviceGray, true)
}

func opFillGray(in *Interpreter) error {
	return in.setDevicePaint(DeviceGray, false)
}

func opStrokeRGB(in *Interpreter) error {
	return in.setDevicePaint(DeviceRGB, true)
}

func opFillRGB(in *Interpreter) error {
	return in.setDevicePaint(DeviceRGB, false)
}

func opStrokeCMYK(in *Interpreter) error {
	return in.setDevicePaint(DeviceCMYK, true)
}

func opFillCMYK(in *Interpreter) error {
	return in.setDevicePaint(DeviceCMYK, false)
}
