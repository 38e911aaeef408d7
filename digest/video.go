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

package digest

import (
	"crypto/sha1"
	"fmt"

	"rvsim/video"
)

// Video is an implementation of the video.FrameSink interface that generates
// a SHA-1 value of every presented frame. It does not display the frame
// anywhere.
//
// Note that the use of SHA-1 is fine for this application because this is
// not a cryptographic task.
type Video struct {
	digest   [sha1.Size]byte
	work     []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{
		work: make([]byte, sha1.Size+video.HorizRes*video.VertRes*4),
	}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.frameNum = 0
}

// FrameCount returns the number of frames hashed so far.
func (dig *Video) FrameCount() int {
	return dig.frameNum
}

// Present implements the video.FrameSink interface. Hashes are chained by
// prepending the previous frame's hash to the new frame's pixel data.
func (dig *Video) Present(frame *video.Frame) error {
	copy(dig.work, dig.digest[:])
	copy(dig.work[sha1.Size:], frame.Pixels)
	dig.digest = sha1.Sum(dig.work)
	dig.frameNum++
	return nil
}

// PollQuit implements the video.FrameSink interface.
func (dig *Video) PollQuit() bool {
	return false
}

// EndPresentation implements the video.FrameSink interface.
func (dig *Video) EndPresentation() error {
	return nil
}
