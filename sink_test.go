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
	"runtime"
	"testing"

	"seehuhn.de/go/geom/rect"
)

func TestWeakSinkUpgrade(t *testing.T) {
	page := NewPage(rect.Rect{})
	ref := WeakSink(page)
	if ref.Get() == nil {
		t.Fatal("weak sink lost while the page is alive")
	}
	runtime.KeepAlive(page)
}

func TestWeakSinkRelease(t *testing.T) {
	ref := func() SinkRef {
		return WeakSink(NewPage(rect.Rect{}))
	}()
	runtime.GC()
	if ref.Get() != nil {
		t.Error("weak sink still reachable after the page was dropped")
	}
}

func TestStrongSinkKeepsAlive(t *testing.T) {
	ref := StrongSink(NewPage(rect.Rect{}))
	runtime.GC()
	if ref.Get() == nil {
		t.Error("strong sink lost its page")
	}
}

// TestInterpreterWithWeakPage runs a stream against a weakly held page.
func TestInterpreterWithWeakPage(t *testing.T) {
	page := NewPage(rect.Rect{URx: 100, URy: 100})
	in := ForPage(page, []byte("0.5 g 0 0 10 10 re f"), nil)
	if err := in.Go(true); err != nil {
		t.Fatal(err)
	}
	if len(page.CommandList()) != 2 {
		t.Errorf("got %d commands", len(page.CommandList()))
	}
	if !page.Finished() {
		t.Error("page not finished")
	}
	runtime.KeepAlive(page)
}
