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
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Resources maps resource categories (Font, XObject, ColorSpace, Pattern,
// Shading, ExtGState, Properties) to their dictionaries.
type Resources map[Name]PDFObject

// find returns the object registered under name in the given category
// sub-dictionary.
func (r Resources) find(name, category Name) (PDFObject, error) {
	cat := r[category]
	if cat == nil || cat.Type() != ObjDict && cat.Type() != ObjStream {
		return nil, resourceError("no dictionary called %s found in the resources", category)
	}
	obj := cat.Get(name)
	if obj == nil {
		return nil, resourceError("no %s resource called %s", category, name)
	}
	return obj, nil
}

// merged returns a copy of r with the entries of the dictionary object d
// layered on top.
func (r Resources) merged(d PDFObject) Resources {
	res := maps.Clone(r)
	if res == nil {
		res = make(Resources)
	}
	if d == nil {
		return res
	}
	for _, key := range d.Keys() {
		res[key] = d.Get(key)
	}
	return res
}

func sortedKeys(m map[Name]PDFObject) []Name {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
