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

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// opXObject implements Do: draw an image XObject or run a form XObject.
func opXObject(in *Interpreter) error {
	name, err := in.stack.popName()
	if err != nil {
		return err
	}
	obj, err := in.findResource(name, "XObject")
	if err != nil {
		return err
	}
	subtype := obj.Get("Subtype")
	if subtype == nil {
		subtype = obj.Get("S")
	}
	if subtype == nil {
		return resourceError("XObject %s has no subtype", name)
	}
	switch subtype.Text() {
	case "Image":
		return in.doImage(obj)
	case "Form":
		return in.doForm(obj)
	default:
		return resourceError("unknown XObject subtype %q", subtype.Text())
	}
}

// doImage hands an image object to the image collaborator and emits the
// result.
func (in *Interpreter) doImage(obj PDFObject) error {
	if in.Images == nil {
		return collabError("image", errNoFactory)
	}
	img, err := in.Images(obj, in.resources)
	if err != nil {
		return collabError("image", err)
	}
	in.cmds.Image(img)
	return nil
}

// doForm runs a form XObject.  The recorded sub-commands are cached on
// the form object, so each form is interpreted only once per document;
// either way the sub-commands are emitted bracketed by Push/Pop, with
// the form's Matrix already applied.
func (in *Interpreter) doForm(obj PDFObject) error {
	sub, _ := obj.Cache().(*Page)
	if sub == nil {
		var err error
		sub, err = in.interpretForm(obj)
		if err != nil {
			return err
		}
		obj.SetCache(sub)
	}
	in.cmds.Push()
	in.cmds.Commands(sub)
	in.cmds.Pop()
	return nil
}

func (in *Interpreter) interpretForm(obj PDFObject) (*Page, error) {
	trfm := matrix.Identity
	if m := obj.Get("Matrix"); m != nil {
		for i := 0; i < 6; i++ {
			if el := m.At(i); el != nil {
				trfm[i] = el.Number()
			}
		}
	}
	var bbox rect.Rect
	if b := obj.Get("BBox"); b != nil && b.Len() == 4 {
		bbox = rect.Rect{
			LLx: b.At(0).Number(),
			LLy: b.At(1).Number(),
			URx: b.At(2).Number(),
			URy: b.At(3).Number(),
		}
	}

	sub := NewPage(bbox)
	sub.Transform(trfm)

	// form resources override the caller's, key by key
	res := in.resources.merged(obj.Get("Resources"))

	form := New(StrongSink(sub), obj.Raw(), res)
	form.Fonts = in.Fonts
	form.Images = in.Images
	form.ColorSpaces = in.ColorSpaces
	form.Patterns = in.Patterns
	form.Shaders = in.Shaders
	if err := form.Go(true); err != nil {
		return nil, err
	}
	return sub, nil
}
