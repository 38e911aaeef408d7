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

// The fixed frame resolution of the pixel stream.
const (
	HorizRes = 640
	VertRes  = 480
)

// pixelDepth is the number of bytes per pixel in the frame (RGBA).
const pixelDepth = 4

// Frame is one presentable image. The pixel buffer is continuously
// overwritten while the simulation runs; it is never cleared between sync
// edges, so pixels outside the active region of a later, shorter frame
// retain their previous values.
type Frame struct {
	// Pixels in RGBA order, row-major, HorizRes*VertRes*4 bytes. Exposed so
	// that sinks can hand the buffer directly to their presentation layer.
	Pixels []byte
}

// NewFrame is the preferred method of initialisation for the Frame type.
func NewFrame() *Frame {
	return &Frame{
		Pixels: make([]byte, HorizRes*VertRes*pixelDepth),
	}
}

// Pitch returns the length of one pixel row in bytes.
func (frm *Frame) Pitch() int {
	return HorizRes * pixelDepth
}

// SetPixel stores a fully-expanded colour sample at (x, y) with full
// opacity. Coordinates outside the resolution are ignored.
func (frm *Frame) SetPixel(x int, y int, red byte, green byte, blue byte) {
	if x < 0 || x >= HorizRes || y < 0 || y >= VertRes {
		return
	}
	i := (y*HorizRes + x) * pixelDepth
	frm.Pixels[i] = red
	frm.Pixels[i+1] = green
	frm.Pixels[i+2] = blue
	frm.Pixels[i+3] = 255
}

// Pixel returns the stored sample at (x, y). Used by tests and by sinks that
// work with individual pixels.
func (frm *Frame) Pixel(x int, y int) (red byte, green byte, blue byte, alpha byte) {
	i := (y*HorizRes + x) * pixelDepth
	return frm.Pixels[i], frm.Pixels[i+1], frm.Pixels[i+2], frm.Pixels[i+3]
}
