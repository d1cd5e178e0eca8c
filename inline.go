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

// inlineImageKeys expands the abbreviated inline image dictionary keys
// to their XObject equivalents.
var inlineImageKeys = map[Name]Name{
	"BPC": "BitsPerComponent",
	"CS":  "ColorSpace",
	"D":   "Decode",
	"DP":  "DecodeParms",
	"F":   "Filter",
	"H":   "Height",
	"IM":  "ImageMask",
	"W":   "Width",
	"I":   "Interpolate",
}

// opInlineImage implements BI: read the parameter dictionary up to ID,
// then the raw image data up to EI, and emit the image.
func opInlineImage(in *Interpreter) error {
	dict := make(map[Name]PDFObject)
	for {
		tok, err := in.scan.nextToken()
		if err != nil {
			return err
		}
		if tok.Kind == TokOperator && string(tok.Text) == "ID" {
			break
		}
		if tok.Kind == TokEOF {
			return lexError("unterminated inline image dictionary")
		}
		if tok.Kind != TokName {
			return typeError("inline image key is %s, not a name", tok.Kind)
		}
		key := Name(tok.Text)
		if full, ok := inlineImageKeys[key]; ok {
			key = full
		}
		val, err := in.parseObject()
		if err != nil {
			return err
		}
		if val == nil {
			return lexError("missing value for inline image key %s", key)
		}
		obj, err := dictValue(val)
		if err != nil {
			return err
		}
		dict[key] = obj
	}

	// after ID: one optional CR, then one optional LF or space
	s := in.scan
	if s.pos < len(s.buf) && s.buf[s.pos] == '\r' {
		s.pos++
	}
	if s.pos < len(s.buf) && (s.buf[s.pos] == '\n' || s.buf[s.pos] == ' ') {
		s.pos++
	}

	// an image mask without a Decode array defaults to [0 1]
	if im := dict["ImageMask"]; im != nil && im.Bool() && dict["Decode"] == nil {
		dict["Decode"] = NewObject([]float64{0, 1})
	}

	// the data ends at a whitespace byte directly followed by "EI"
	dstart := s.pos
	for {
		if s.pos+2 >= len(s.buf) {
			return lexError("unterminated inline image data")
		}
		if isWhiteSpace(s.buf[s.pos]) && s.buf[s.pos+1] == 'E' && s.buf[s.pos+2] == 'I' {
			break
		}
		s.pos++
	}
	data := make([]byte, s.pos-dstart)
	copy(data, s.buf[dstart:s.pos])
	s.pos += 3 // the whitespace and "EI"

	return in.doImage(NewStream(dict, data))
}
