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

// Package video assembles the core's per-cycle pixel stream into frames and
// hands each completed frame to a FrameSink on the vertical-sync falling
// edge.
package video

// Colour channels in the pixel stream are two bits wide. Expansion to eight
// bits is evenly spaced: 0b00 -> 0, 0b01 -> 85, 0b10 -> 170, 0b11 -> 255.
func expandChannel(v uint8) byte {
	return v * 85
}

// Compositor consumes the per-cycle pixel tuple from the core and maintains
// the in-progress frame. It owns the one bit of vertical-sync edge-detection
// state carried between cycles.
type Compositor struct {
	frame *Frame
	sink  FrameSink

	// previous vsync level, for falling edge detection. initialised high so
	// that a core that starts with vsync low presents immediately, matching
	// the hardware's behaviour out of reset
	prevVSync bool

	frameNum int
}

// NewCompositor is the preferred method of initialisation for the Compositor
// type.
func NewCompositor(sink FrameSink) *Compositor {
	return &Compositor{
		frame:     NewFrame(),
		sink:      sink,
		prevVSync: true,
	}
}

// UpdatePixel composites one cycle's pixel sample into the current frame.
// The sample is stored only while active video is asserted and the
// hardware-reported coordinates lie within the frame resolution. The colour
// argument packs three 2-bit channels as RRGGBB in its low six bits.
func (cmp *Compositor) UpdatePixel(colour uint8, active bool, x uint16, y uint16) {
	if !active {
		return
	}

	red := expandChannel((colour >> 4) & 0b11)
	green := expandChannel((colour >> 2) & 0b11)
	blue := expandChannel(colour & 0b11)
	cmp.frame.SetPixel(int(x), int(y), red, green, blue)
}

// CheckVSync runs the vertical-sync edge detector. On a falling edge the
// current frame is handed to the sink's Present function. A rising edge or a
// steady level does nothing.
func (cmp *Compositor) CheckVSync(vsync bool) error {
	defer func() {
		cmp.prevVSync = vsync
	}()

	if !vsync && cmp.prevVSync {
		cmp.frameNum++
		return cmp.sink.Present(cmp.frame)
	}

	return nil
}

// Present hands the in-progress frame to the sink immediately, regardless of
// sync state. Used once at teardown so the final partial frame is not lost.
func (cmp *Compositor) Present() error {
	return cmp.sink.Present(cmp.frame)
}

// QuitRequested polls the sink's event source. A true result is a
// cooperative, non-fatal request to stop the simulation early.
func (cmp *Compositor) QuitRequested() bool {
	return cmp.sink.PollQuit()
}

// Frame returns the in-progress frame.
func (cmp *Compositor) Frame() *Frame {
	return cmp.frame
}

// FrameCount returns the number of frames presented on vsync edges so far.
func (cmp *Compositor) FrameCount() int {
	return cmp.frameNum
}

// EndRendering releases the sink. The compositor is unusable afterwards.
func (cmp *Compositor) EndRendering() error {
	return cmp.sink.EndPresentation()
}
