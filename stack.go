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

// opStack is the untyped operand stack.  Operands accumulate between
// operator invocations; each operator pops what it needs.
type opStack struct {
	data []Object
}

func (s *opStack) push(o Object) {
	s.data = append(s.data, o)
}

func (s *opStack) size() int {
	return len(s.data)
}

func (s *opStack) clear() {
	s.data = s.data[:0]
}

func (s *opStack) pop() (Object, error) {
	if len(s.data) == 0 {
		return nil, typeError("stack underflow")
	}
	o := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return o, nil
}

// popNumber pops a number from the stack.  An empty stack yields 0, so
// that operators with missing operands degrade instead of failing.
func (s *opStack) popNumber() (float64, error) {
	if len(s.data) == 0 {
		return 0, nil
	}
	o, _ := s.pop()
	x, ok := o.(Number)
	if !ok {
		return 0, typeError("expected a number, got %T", o)
	}
	return float64(x), nil
}

// popInt pops a number and truncates it toward zero.
func (s *opStack) popInt() (int, error) {
	o, err := s.pop()
	if err != nil {
		return 0, err
	}
	x, ok := o.(Number)
	if !ok {
		return 0, typeError("expected a number, got %T", o)
	}
	return int(x), nil
}

// popNumbers pops count numbers, filling the result from back to front
// so that it reads in source order.
func (s *opStack) popNumbers(count int) ([]float64, error) {
	res := make([]float64, count)
	for i := count - 1; i >= 0; i-- {
		x, err := s.popNumber()
		if err != nil {
			return nil, err
		}
		res[i] = x
	}
	return res, nil
}

// popNumberArray pops an array of numbers.
func (s *opStack) popNumberArray() ([]float64, error) {
	o, err := s.pop()
	if err != nil {
		return nil, err
	}
	a, ok := o.(Array)
	if !ok {
		return nil, typeError("expected an array, got %T", o)
	}
	res := make([]float64, len(a))
	for i, el := range a {
		x, ok := el.(Number)
		if !ok {
			return nil, typeError("array element %d is %T, not a number", i, el)
		}
		res[i] = float64(x)
	}
	return res, nil
}

// popString pops a string or name.  The dispatcher tells the two apart
// by context.
func (s *opStack) popString() ([]byte, error) {
	o, err := s.pop()
	if err != nil {
		return nil, err
	}
	switch o := o.(type) {
	case String:
		return []byte(o), nil
	case Name:
		return []byte(o), nil
	default:
		return nil, typeError("expected a string, got %T", o)
	}
}

// popName pops a name (or string) and returns it as a Name.
func (s *opStack) popName() (Name, error) {
	b, err := s.popString()
	if err != nil {
		return "", err
	}
	return Name(b), nil
}

// popArray pops an array.
func (s *opStack) popArray() (Array, error) {
	o, err := s.pop()
	if err != nil {
		return nil, err
	}
	a, ok := o.(Array)
	if !ok {
		return nil, typeError("expected an array, got %T", o)
	}
	return a, nil
}
