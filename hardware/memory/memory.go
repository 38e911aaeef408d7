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

// Package memory is the flat, word-addressed backing store behind device
// selector zero. Addresses arriving from the bus are byte addresses and are
// word-divided before indexing.
//
// Out-of-range accesses on the data bus are tolerated silently: reads return
// zero and writes are dropped. Stack probing from the core is expected to
// wander past the configured capacity occasionally and must not disturb the
// run. Instruction fetches are different: a fetch address is always expected
// to be valid, so an out-of-range fetch is reported through the central
// logger (and zero substituted) rather than absorbed.
package memory

import (
	"encoding/binary"

	"rvsim/curated"
	"rvsim/logger"
)

// Memory is a fixed-capacity sequence of 32-bit words. Capacity is set at
// construction and never changes.
type Memory struct {
	words []uint32
}

// NewMemory is the preferred method of initialisation for the Memory type.
// Capacity is given in words.
func NewMemory(capacity int) *Memory {
	return &Memory{
		words: make([]uint32, capacity),
	}
}

// Size returns the capacity of the memory in words.
func (mem *Memory) Size() int {
	return len(mem.words)
}

// ReadData returns the word at the byte address. Out-of-range addresses read
// as zero with no diagnostic.
func (mem *Memory) ReadData(address uint32) uint32 {
	idx := int(address / 4)
	if idx >= len(mem.words) {
		return 0
	}
	return mem.words[idx]
}

// ReadInstruction returns the word at the byte address for the fetch bus.
// Out-of-range addresses read as zero and are reported through the central
// logger. Execution continues.
func (mem *Memory) ReadInstruction(address uint32) uint32 {
	idx := int(address / 4)
	if idx >= len(mem.words) {
		logger.Logf("memory", "invalid instruction fetch address %#08x", uint64(idx)*4)
		return 0
	}
	return mem.words[idx]
}

// Write replaces the byte lanes of the word at the byte address for which the
// corresponding strobe bit is set. A fully-false strobe is a no-op.
// Out-of-range writes are dropped silently.
func (mem *Memory) Write(address uint32, value uint32, strobe [4]bool) {
	var mask uint32
	if strobe[0] {
		mask |= 0x000000ff
	}
	if strobe[1] {
		mask |= 0x0000ff00
	}
	if strobe[2] {
		mask |= 0x00ff0000
	}
	if strobe[3] {
		mask |= 0xff000000
	}

	idx := int(address / 4)
	if idx >= len(mem.words) {
		return
	}

	mem.words[idx] = (mem.words[idx] & ^mask) | (value & mask)
}

// LoadImage copies a flat binary of raw little-endian words into memory,
// starting at the given byte address. An image that does not fit the
// configured capacity is a configuration error.
func (mem *Memory) LoadImage(data []byte, address uint32) error {
	if int(address)+len(data) > len(mem.words)*4 {
		return curated.Errorf("memory: image too large (image is %d bytes. memory is %d bytes)",
			len(data), len(mem.words)*4-int(address))
	}

	for i := 0; i+4 <= len(data); i += 4 {
		mem.words[int(address)/4+i/4] = binary.LittleEndian.Uint32(data[i:])
	}

	return nil
}
