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

// Package digest is used to create mathematical hashes of the frames
// presented during a simulation. The hashes are chained frame to frame, so a
// single value fingerprints an entire run. Useful for regression testing of
// the video path without a display.
package digest

// Digest implementations compute a running hash of simulation output.
type Digest interface {
	// Hash returns the current hash value as a printable string.
	Hash() string

	// ResetDigest resets the hash to its initial value.
	ResetDigest()
}
