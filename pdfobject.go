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

import "fmt"

// ObjectType tags the kind of a PDF object.
type ObjectType int

const (
	ObjNull ObjectType = iota
	ObjBool
	ObjNumber
	ObjString
	ObjName
	ObjArray
	ObjDict
	ObjStream
)

// PDFObject is the view of the surrounding PDF file that the interpreter
// needs: typed access to resolved objects, and a single-slot cache used to
// memoize interpreted Form XObjects.
//
// Implementations backed by a real PDF file resolve indirect references
// before answering.  The in-memory implementation returned by [NewObject],
// [NewDict] and [NewStream] holds direct values only.
type PDFObject interface {
	// Type returns the object's type tag.
	Type() ObjectType

	// Get returns the named dictionary entry, or nil if the object is
	// not a dictionary (or stream) or has no such entry.
	Get(key Name) PDFObject

	// At returns the i-th array element, or nil if out of range.
	At(i int) PDFObject

	// Len returns the number of array elements or dictionary entries.
	Len() int

	// Keys returns the dictionary keys in sorted order.
	Keys() []Name

	// Number returns the numeric value, or 0.
	Number() float64

	// Bool returns the boolean value, or false.
	Bool() bool

	// Text returns the value of a string or name object.
	Text() string

	// Raw returns the decoded stream bytes, or nil.
	Raw() []byte

	// Cache returns the value stored by SetCache, or nil.
	Cache() interface{}

	// SetCache stores a value in the object's single cache slot.
	SetCache(v interface{})
}

// memObject is a direct, in-memory PDF object.
type memObject struct {
	kind  ObjectType
	num   float64
	b     bool
	text  string
	arr   []PDFObject
	dict  map[Name]PDFObject
	raw   []byte
	cache interface{}
}

// NewObject wraps a parsed content stream value as a PDF object.
// Supported inputs are nil, Number, String, Name, Array, Dict, bool,
// float64, int, string, []float64, map[Name]PDFObject, and values that
// already implement PDFObject.
func NewObject(v interface{}) PDFObject {
	switch v := v.(type) {
	case nil:
		return &memObject{kind: ObjNull}
	case PDFObject:
		return v
	case Number:
		return &memObject{kind: ObjNumber, num: float64(v)}
	case float64:
		return &memObject{kind: ObjNumber, num: v}
	case int:
		return &memObject{kind: ObjNumber, num: float64(v)}
	case bool:
		return &memObject{kind: ObjBool, b: v}
	case String:
		return &memObject{kind: ObjString, text: string(v)}
	case Name:
		return &memObject{kind: ObjName, text: string(v)}
	case string:
		return &memObject{kind: ObjString, text: v}
	case Array:
		arr := make([]PDFObject, len(v))
		for i, el := range v {
			arr[i] = NewObject(el)
		}
		return &memObject{kind: ObjArray, arr: arr}
	case []float64:
		arr := make([]PDFObject, len(v))
		for i, x := range v {
			arr[i] = NewObject(x)
		}
		return &memObject{kind: ObjArray, arr: arr}
	case Dict:
		return NewDict(map[Name]PDFObject(v))
	case map[Name]PDFObject:
		return NewDict(v)
	default:
		panic(fmt.Sprintf("cannot wrap %T as a PDF object", v))
	}
}

// NewDict returns a dictionary object with the given entries.
func NewDict(entries map[Name]PDFObject) PDFObject {
	if entries == nil {
		entries = make(map[Name]PDFObject)
	}
	return &memObject{kind: ObjDict, dict: entries}
}

// NewStream returns a stream object with the given dictionary and
// decoded content.
func NewStream(entries map[Name]PDFObject, data []byte) PDFObject {
	if entries == nil {
		entries = make(map[Name]PDFObject)
	}
	return &memObject{kind: ObjStream, dict: entries, raw: data}
}

func (o *memObject) Type() ObjectType { return o.kind }

func (o *memObject) Get(key Name) PDFObject {
	return o.dict[key]
}

func (o *memObject) At(i int) PDFObject {
	if i < 0 || i >= len(o.arr) {
		return nil
	}
	return o.arr[i]
}

func (o *memObject) Len() int {
	if o.kind == ObjArray {
		return len(o.arr)
	}
	return len(o.dict)
}

func (o *memObject) Keys() []Name {
	return sortedKeys(o.dict)
}

func (o *memObject) Number() float64 { return o.num }

func (o *memObject) Bool() bool { return o.b }

func (o *memObject) Text() string { return o.text }

func (o *memObject) Raw() []byte { return o.raw }

func (o *memObject) Cache() interface{} { return o.cache }

func (o *memObject) SetCache(v interface{}) { o.cache = v }
