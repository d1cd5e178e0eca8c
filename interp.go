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

// An Interpreter executes one content stream against a command sink.
//
// The zero value is not usable; call [New].  Collaborator factories may
// be set between New and Setup; a nil factory rejects the operators that
// need it.
type Interpreter struct {
	scan      *scanner
	stack     opStack
	saved     []*graphicsState
	state     *graphicsState
	path      *Path
	clip      PathMode
	catch     bool // inside BX ... EX
	sink      SinkRef
	resources Resources

	// cmds is the strong sink handle for the current iteration.  It is
	// released at the end of each step so that the sink can be
	// reclaimed in between.
	cmds CommandSink

	// Collaborator factories.
	Fonts       FontFactory
	Images      ImageFactory
	ColorSpaces ColorSpaceFactory
	Patterns    PatternFactory
	Shaders     ShaderFactory
}

// New creates an interpreter for the given content stream bytes and
// resource dictionary.  A nil resources map is treated as empty.
func New(sink SinkRef, stream []byte, resources Resources) *Interpreter {
	if resources == nil {
		resources = make(Resources)
	}
	return &Interpreter{
		scan:      newScannerBytes(stream),
		sink:      sink,
		resources: resources,
	}
}

// ForPage creates an interpreter that records into page, holding it only
// weakly: if the caller drops its reference to page, iteration stops.
func ForPage(page *Page, stream []byte, resources Resources) *Interpreter {
	return New(WeakSink(page), stream, resources)
}

// Setup prepares the interpreter for iteration.
func (in *Interpreter) Setup() {
	in.scan.pos = 0
	in.scan.resend = false
	in.stack.clear()
	in.saved = nil
	in.state = newGraphicsState()
	in.path = newPath()
	in.clip = 0
	in.catch = false
}

// Iterate processes one object from the stream: a literal is pushed onto
// the operand stack, an operator is executed.  It returns Running while
// more input remains, Completed at the end of the stream, and Stopped
// when the command sink has been released.  A failing step returns
// Stopped together with the error.
func (in *Interpreter) Iterate() (Status, error) {
	// make sure the sink is still available, and keep the strong
	// reference only for the duration of this step
	in.cmds = in.sink.Get()
	if in.cmds == nil {
		debug(levelWarn, "sink gone, stopping")
		return Stopped, nil
	}
	defer func() { in.cmds = nil }()

	obj, err := in.parseObject()
	if err != nil {
		return Stopped, err
	}
	if obj == nil {
		return Completed, nil
	}

	if op, ok := obj.(Operator); ok {
		err := in.execute(op)
		if err != nil {
			return Stopped, err
		}
		if n := in.stack.size(); n != 0 {
			warnf("stack not empty after %s (%d left)", op, n)
			in.stack.clear()
		}
	} else {
		in.stack.push(obj)
	}
	return Running, nil
}

// Cleanup flushes the text formatter, signals completion to the sink if
// it is still alive, and drops all internal state.
func (in *Interpreter) Cleanup() {
	if in.state != nil {
		in.state.text.flush()
	}
	if s := in.sink.Get(); s != nil {
		s.Finish()
	}
	in.stack.clear()
	in.saved = nil
	in.state = nil
	in.path = nil
	in.cmds = nil
}

// Go drives the interpreter to completion.  If blocking is false, the
// interpreter runs in a new goroutine and Go returns nil immediately;
// errors are then reported through the debug sink only.
func (in *Interpreter) Go(blocking bool) error {
	if !blocking {
		go func() {
			if err := Run(in); err != nil {
				debug(levelError, "content stream failed: "+err.Error())
			}
		}()
		return nil
	}
	return Run(in)
}

// execute runs a single operator.  Inside a BX ... EX bracket, unknown
// operators and collaborator failures are downgraded to warnings.
func (in *Interpreter) execute(op Operator) error {
	h, ok := operators[op]
	if !ok {
		if in.catch {
			warnf("unknown operator %q", op)
			return nil
		}
		return unknownOpError(op)
	}
	err := h(in)
	if err != nil && in.catch && suppressible(err) {
		warnf("operator %s failed: %v", op, err)
		return nil
	}
	return err
}

// parseObject returns the next object from the stream: a literal value,
// an Operator, or nil when the stream (or an enclosing construct) ends.
// An unknown or brace token also yields nil, after a warning.
func (in *Interpreter) parseObject() (Object, error) {
	tok, err := in.scan.nextToken()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case TokNumber:
		return Number(tok.Value), nil
	case TokString, TokHexString:
		return String(tok.Text), nil
	case TokName:
		return Name(tok.Text), nil
	case TokOperator:
		return Operator(tok.Text), nil
	case TokDictBegin:
		return in.parseDict()
	case TokArrayBegin:
		return in.parseArray()
	case TokEOF, TokArrayEnd, TokDictEnd:
		return nil, nil
	default:
		warnf("ignoring %s token", tok.Kind)
		return nil, nil
	}
}

// parseDict reads alternating name/value pairs up to the closing '>>'.
func (in *Interpreter) parseDict() (Object, error) {
	dict := make(Dict)
	var key Name
	haveKey := false
	for {
		obj, err := in.parseObject()
		if err != nil {
			return nil, err
		}
		if obj == nil {
			break
		}
		if !haveKey {
			k, ok := dictKey(obj)
			if !ok {
				return nil, typeError("dictionary key is %T, not a name", obj)
			}
			key = k
			haveKey = true
		} else {
			val, err := dictValue(obj)
			if err != nil {
				return nil, err
			}
			dict[key] = val
			haveKey = false
		}
	}
	if in.scan.tok.Kind != TokDictEnd {
		return nil, lexError("inline dictionary should have ended with '>>'")
	}
	return dict, nil
}

// parseArray collects values up to the closing ']'.
func (in *Interpreter) parseArray() (Object, error) {
	var ary Array
	for {
		obj, err := in.parseObject()
		if err != nil {
			return nil, err
		}
		if obj == nil {
			break
		}
		ary = append(ary, obj)
	}
	if in.scan.tok.Kind != TokArrayEnd {
		return nil, lexError("expected ']'")
	}
	return ary, nil
}

func dictKey(obj Object) (Name, bool) {
	switch obj := obj.(type) {
	case Name:
		return obj, true
	case String:
		return Name(obj), true
	}
	return "", false
}

// dictValue wraps a parsed value as a PDF object.  The lexer has no
// boolean tokens, so the true/false/null keywords arrive as operators
// and are converted here.
func dictValue(obj Object) (PDFObject, error) {
	if op, ok := obj.(Operator); ok {
		switch op {
		case "true":
			return NewObject(true), nil
		case "false":
			return NewObject(false), nil
		case "null":
			return NewObject(nil), nil
		default:
			return nil, typeError("operator %s cannot be a dictionary value", op)
		}
	}
	return NewObject(obj), nil
}

// findResource returns the object registered under name in the given
// resource category.
func (in *Interpreter) findResource(name, category Name) (PDFObject, error) {
	return in.resources.find(name, category)
}

// DumpStream returns a printable form of the content stream, for
// diagnostics.
func (in *Interpreter) DumpStream() string {
	return escape(string(in.scan.buf))
}
