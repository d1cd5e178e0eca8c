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

// Status is the result of one iteration step.
type Status int

const (
	// Running means another step is needed.
	Running Status = iota

	// Completed means the stream is exhausted.
	Completed

	// Stopped means the command sink is gone, or a step failed.
	Stopped
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Stopped:
		return "stopped"
	default:
		return "invalid"
	}
}

// A Watchable is a unit of work driven by repeated externally issued
// steps.  The host may run steps on a worker goroutine or interleave
// several watchables; no step blocks.
type Watchable interface {
	// Setup prepares for iteration.
	Setup()

	// Iterate performs one step.
	Iterate() (Status, error)

	// Cleanup releases resources after the final step.  It runs even
	// when an iteration failed.
	Cleanup()
}

// Run drives a watchable until it stops making progress and returns the
// first iteration error, if any.
func Run(w Watchable) error {
	w.Setup()
	defer w.Cleanup()
	for {
		status, err := w.Iterate()
		if err != nil {
			return err
		}
		if status != Running {
			return nil
		}
	}
}
