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

// Object is a value parsed from a content stream.  The concrete types are
// [Number], [String], [Name], [Array], [Dict] and [Operator].
type Object interface{}

// Number is a numeric operand.  All content stream numbers are kept as
// float64; operators that need an integer truncate toward zero.
type Number float64

// String is a literal or hex string operand.
type String []byte

func (s String) String() string {
	return fmt.Sprintf("%q", string(s))
}

// Name is a name operand, without the leading slash.
type Name string

func (n Name) String() string {
	return "/" + string(n)
}

// Array is an array operand.
type Array []Object

// Dict is an inline dictionary operand.  Values are wrapped as PDF
// objects so that dictionaries parsed from the stream and dictionaries
// resolved from the file share one shape.
type Dict map[Name]PDFObject

func (d Dict) String() string {
	return fmt.Sprintf("<Dict %d>", len(d))
}

// Operator is an operator keyword found in a content stream.
type Operator string
