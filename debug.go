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

// The interpreter emits diagnostics through a host-provided sink.  A
// message is forwarded when its level exceeds the threshold, so the
// default threshold silences everything up to and including levelError.

const (
	levelTrace = 0
	levelWarn  = 10
	levelError = 1000
)

var (
	debugSink  func(msg string)
	debugLevel = levelError
)

// SetDebugLog installs a sink for diagnostic output.  Passing nil
// disables diagnostics.
func SetDebugLog(f func(msg string)) {
	debugSink = f
}

// SetDebugLevel sets the threshold above which messages are forwarded to
// the debug sink.
func SetDebugLevel(level int) {
	debugLevel = level
}

func debug(level int, msg string) {
	if debugSink != nil && level > debugLevel {
		debugSink(escape(msg))
	}
}

func warnf(format string, a ...interface{}) {
	debug(levelWarn, fmt.Sprintf(format, a...))
}

// escape replaces non-printable bytes with '?' so that diagnostics are
// safe to write to a terminal.  Newlines are kept.
func escape(msg string) string {
	out := []byte(msg)
	for i, c := range out {
		if c != '\n' && (c < 32 || c >= 127) {
			out[i] = '?'
		}
	}
	return string(out)
}
