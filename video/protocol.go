// This file is part of RVSim.
//
// RVSim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// RVSim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with RVSim.  If not, see <https://www.gnu.org/licenses/>.

package video

// FrameSink implementations display, or otherwise work with, the frames
// assembled by the Compositor. The SDL window in the sdldisplay package is
// one implementation; the hashing sink in the digest package is an example
// of a sink that works with frames without displaying them.
type FrameSink interface {
	// Present is called once per vertical-sync falling edge with the
	// completed frame. The sink must not hold on to the frame's pixel slice
	// beyond the call; it is overwritten by subsequent compositing.
	Present(frame *Frame) error

	// PollQuit pumps the sink's event source and reports whether an external
	// quit has been requested. It is called once per tick and must not
	// block. A true result is a cooperative request, not an error.
	PollQuit() bool

	// EndPresentation releases the sink's resources. The sink should be
	// considered unusable after EndPresentation() has been called.
	EndPresentation() error
}

// DummySink is the FrameSink used when the display is disabled. It does
// nothing and never requests a quit.
type DummySink struct{}

// NewDummySink is the preferred method of initialisation for the DummySink
// type.
func NewDummySink() *DummySink {
	return &DummySink{}
}

// Present implements the FrameSink interface.
func (snk *DummySink) Present(_ *Frame) error {
	return nil
}

// PollQuit implements the FrameSink interface.
func (snk *DummySink) PollQuit() bool {
	return false
}

// EndPresentation implements the FrameSink interface.
func (snk *DummySink) EndPresentation() error {
	return nil
}
