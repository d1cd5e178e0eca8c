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
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func scanAll(t *testing.T, in string) []Token {
	t.Helper()
	s := newScannerBytes([]byte(in))
	var tokens []Token
	for {
		tok, err := s.nextToken()
		if err != nil {
			t.Fatalf("nextToken(%q): %v", in, err)
		}
		if tok.Kind == TokEOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func TestScanTokens(t *testing.T) {
	in := `
	% a comment
	123 -9 0.5 -1. .25
	/F1 (hello) <48656c6c6f>
	[ ] << >> { }
	q Q f* T* BT ' "
	`
	exp := []Token{
		{Kind: TokNumber, Value: 123},
		{Kind: TokNumber, Value: -9},
		{Kind: TokNumber, Value: 0.5},
		{Kind: TokNumber, Value: -1},
		{Kind: TokNumber, Value: 0.25},
		{Kind: TokName, Text: []byte("F1")},
		{Kind: TokString, Text: []byte("hello")},
		{Kind: TokHexString, Text: []byte("Hello")},
		{Kind: TokArrayBegin},
		{Kind: TokArrayEnd},
		{Kind: TokDictBegin},
		{Kind: TokDictEnd},
		{Kind: TokProcBegin},
		{Kind: TokProcEnd},
		{Kind: TokOperator, Text: []byte("q")},
		{Kind: TokOperator, Text: []byte("Q")},
		{Kind: TokOperator, Text: []byte("f*")},
		{Kind: TokOperator, Text: []byte("T*")},
		{Kind: TokOperator, Text: []byte("BT")},
		{Kind: TokOperator, Text: []byte("'")},
		{Kind: TokOperator, Text: []byte("\"")},
	}
	if d := cmp.Diff(exp, scanAll(t, in)); d != "" {
		t.Error(d)
	}
}

// TestScanNumberRoundTrip checks that lexing inverts decimal formatting.
func TestScanNumberRoundTrip(t *testing.T) {
	cases := []float64{0, 1, -1, 0.5, -0.5, 123456789, 0.000001, 3.141592653589793, -273.15}
	for _, x := range cases {
		in := strconv.FormatFloat(x, 'f', -1, 64)
		tokens := scanAll(t, in)
		if len(tokens) != 1 || tokens[0].Kind != TokNumber {
			t.Fatalf("lex(%q): got %v", in, tokens)
		}
		if tokens[0].Value != x {
			t.Errorf("lex(%q) = %g, want %g", in, tokens[0].Value, x)
		}
	}
}

func TestScanString(t *testing.T) {
	type testCase struct {
		in  string
		out string
	}
	cases := []testCase{
		{`(simple)`, "simple"},
		{`(a(b)c)`, "a(b)c"},          // balanced parens are preserved
		{`(a\(b)`, "a(b"},             // escaped paren
		{`(\n\r\t\b\f)`, "\n\r\t\b\f"},
		{`(\101\61)`, "A1"},           // octal escapes
		{`(\0053)`, "\x053"},          // three digits, then a literal
		{`(\q)`, "q"},                 // unknown escape yields the byte
		{"(a\\\nb)", "ab"},            // escaped newline is a continuation
		{"(a\\\r\nb)", "ab"},          // CR+LF continuation
		{`()`, ""},
	}
	for _, c := range cases {
		tokens := scanAll(t, c.in)
		if len(tokens) != 1 || tokens[0].Kind != TokString {
			t.Fatalf("lex(%q): got %v", c.in, tokens)
		}
		if d := cmp.Diff(c.out, string(tokens[0].Text)); d != "" {
			t.Errorf("lex(%q): %s", c.in, d)
		}
	}
}

// TestScanStringVerbatim checks that byte sequences free of parens and
// backslashes pass through a string literal unchanged.
func TestScanStringVerbatim(t *testing.T) {
	payloads := []string{"hello world", "a\x00b\xffc", "line1\nline2", "%not a comment"}
	for _, s := range payloads {
		tokens := scanAll(t, "("+s+")")
		if len(tokens) != 1 || tokens[0].Kind != TokString {
			t.Fatalf("lex((%q)): got %v", s, tokens)
		}
		if string(tokens[0].Text) != s {
			t.Errorf("lex((%q)) = %q", s, tokens[0].Text)
		}
	}
}

func TestScanHexString(t *testing.T) {
	type testCase struct {
		in  string
		out []byte
	}
	cases := []testCase{
		{"<48656C6C6F>", []byte("Hello")},
		{"<48 65 6c\n6c 6f>", []byte("Hello")}, // whitespace is ignored
		{"<4>", []byte{0x40}},                  // odd nibble is zero-padded
		{"<901fa3>", []byte{0x90, 0x1f, 0xa3}},
		{"<90zz1f>", []byte{0x90, 0x1f}},       // junk bytes are skipped
		{"<>", nil},
	}
	for _, c := range cases {
		tokens := scanAll(t, c.in)
		if len(tokens) != 1 || tokens[0].Kind != TokHexString {
			t.Fatalf("lex(%q): got %v", c.in, tokens)
		}
		if d := cmp.Diff(c.out, tokens[0].Text); d != "" {
			t.Errorf("lex(%q): %s", c.in, d)
		}
	}
}

func TestScanComment(t *testing.T) {
	// a comment runs to the line feed; a LF+CR pair is one terminator
	tokens := scanAll(t, "1 % ignore (this)\n\r2")
	exp := []Token{
		{Kind: TokNumber, Value: 1},
		{Kind: TokNumber, Value: 2},
	}
	if d := cmp.Diff(exp, tokens); d != "" {
		t.Error(d)
	}
}

func TestScanSecondDotTerminates(t *testing.T) {
	tokens := scanAll(t, "1.2.3")
	exp := []Token{
		{Kind: TokNumber, Value: 1.2},
		{Kind: TokNumber, Value: 0.3},
	}
	if d := cmp.Diff(exp, tokens); d != "" {
		t.Error(d)
	}
}

func TestScanUnknown(t *testing.T) {
	s := newScannerBytes([]byte("#"))
	tok, err := s.nextToken()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Kind != TokUnknown {
		t.Errorf("got %s, want unknown", tok.Kind)
	}
}

func TestScanLexErrors(t *testing.T) {
	for _, in := range []string{"(never closed", "<48656", "- ", ". "} {
		s := newScannerBytes([]byte(in))
		_, err := s.nextToken()
		pe, ok := err.(*ParseError)
		if !ok || pe.Kind != KindLex {
			t.Errorf("lex(%q): got %v, want a lex error", in, err)
		}
	}
}

func TestThrowback(t *testing.T) {
	s := newScannerBytes([]byte("1 2"))
	tok, err := s.nextToken()
	if err != nil {
		t.Fatal(err)
	}
	s.throwback()
	again, err := s.nextToken()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(tok, again); d != "" {
		t.Error(d)
	}
	next, err := s.nextToken()
	if err != nil {
		t.Fatal(err)
	}
	if next.Value != 2 {
		t.Errorf("after throwback, got %v", next)
	}
}
