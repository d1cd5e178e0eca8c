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

// opFunc executes one operator.  Operands have already been pushed onto
// the operand stack; the handler pops them in reverse order.
type opFunc func(in *Interpreter) error

// operators maps operator keywords to their handlers.  Operators are
// grouped by concern across the op-*.go files.
var operators = map[Operator]opFunc{
	// graphics state
	"q":  opSave,
	"Q":  opRestore,
	"cm": opConcat,
	"w":  opStrokeWidth,
	"J":  opEndCap,
	"j":  opLineJoin,
	"M":  opMiterLimit,
	"d":  opDash,
	"ri": opRenderingIntent,
	"i":  opFlatness,
	"gs": opExtGState,

	// path construction
	"m":  opMoveTo,
	"l":  opLineTo,
	"c":  opCurveTo,
	"v":  opCurveV,
	"y":  opCurveY,
	"h":  opClosePath,
	"re": opRectangle,

	// path painting and clipping
	"S":  opStroke,
	"s":  opCloseStroke,
	"f":  opFill,
	"F":  opFill,
	"f*": opFillEvenOdd,
	"B":  opFillStroke,
	"B*": opFillStrokeEvenOdd,
	"b":  opCloseFillStroke,
	"b*": opCloseFillStrokeEvenOdd,
	"n":  opEndPath,
	"W":  opClip,
	"W*": opClipEvenOdd,
	"sh": opShade,

	// color
	"CS":  opStrokeColorSpace,
	"cs":  opFillColorSpace,
	"SC":  opStrokeColor,
	"SCN": opStrokeColorN,
	"sc":  opFillColor,
	"scn": opFillColorN,
	"G":   opStrokeGray,
	"g":   opFillGray,
	"RG":  opStrokeRGB,
	"rg":  opFillRGB,
	"K":   opStrokeCMYK,
	"k":   opFillCMYK,

	// external objects
	"Do": opXObject,
	"BI": opInlineImage,

	// text
	"BT": opBeginText,
	"ET": opEndText,
	"Tc": opCharSpacing,
	"Tw": opWordSpacing,
	"Tz": opHorizScale,
	"TL": opLeading,
	"Tf": opFont,
	"Tr": opRenderMode,
	"Ts": opRise,
	"Td": opTextMove,
	"TD": opTextMoveLeading,
	"Tm": opTextMatrix,
	"T*": opTextNextLine,
	"Tj": opShowText,
	"'":  opNextLineShowText,
	"\"": opSpacingNextLineShowText,
	"TJ": opShowKernedText,

	// marked content and glyph metrics
	"MP":  opMarkPoint,
	"DP":  opMarkPointDict,
	"BMC": opBeginMarked,
	"BDC": opBeginMarkedDict,
	"EMC": opEndMarked,
	"d0":  opGlyphWidth,
	"d1":  opGlyphWidthBBox,

	// error suppression bracket
	"BX": opBeginCompat,
	"EX": opEndCompat,

	// some encoders run adjacent operators into a single token
	"QBT": opRestoreBeginText,
	"Qq":  opRestoreSave,
	"qBT": opSaveBeginText,

	// junk seen in the wild
	"q0": opIgnoreJunk,
	"q1": opIgnoreJunk,
}

func opRestoreBeginText(in *Interpreter) error {
	if err := opRestore(in); err != nil {
		return err
	}
	return opBeginText(in)
}

func opRestoreSave(in *Interpreter) error {
	if err := opRestore(in); err != nil {
		return err
	}
	return opSave(in)
}

func opSaveBeginText(in *Interpreter) error {
	if err := opSave(in); err != nil {
		return err
	}
	return opBeginText(in)
}

func opIgnoreJunk(in *Interpreter) error {
	warnf("ignoring operator %q", in.scan.tok.Text)
	return nil
}
