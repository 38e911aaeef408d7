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

package bus_test

import (
	"testing"

	"rvsim/hardware/bus"
	"rvsim/hardware/memory"
	"rvsim/test"
)

var allLanes = [4]bool{true, true, true, true}

// register file recording the last dispatched transaction.
type recordingHandler struct {
	lastReadOffset  uint32
	lastWriteOffset uint32
	lastWriteValue  uint32
	readValue       uint32
}

func (h *recordingHandler) Read(offset uint32) uint32 {
	h.lastReadOffset = offset
	return h.readValue
}

func (h *recordingHandler) Write(offset uint32, value uint32) {
	h.lastWriteOffset = offset
	h.lastWriteValue = value
}

func TestEffectiveAddress(t *testing.T) {
	b := bus.NewBus(memory.NewMemory(16))

	// selector 2 shifted to the top three bits, or'd with the low address
	test.Equate(t, b.EffectiveAddress(2, 0x00000004), 0x40000004)
	test.Equate(t, b.EffectiveAddress(4, 0x00000008), 0x80000008)

	// the low-address field is masked before combining
	test.Equate(t, b.EffectiveAddress(2, 0xf0000004), 0x50000004)
}

func TestSelectorZeroIsMemory(t *testing.T) {
	mem := memory.NewMemory(16)
	b := bus.NewBus(mem)

	b.Write(0, 0x08, 0xcafe0000, allLanes)
	test.Equate(t, b.Read(0, 0x08), 0xcafe0000)
	test.Equate(t, mem.ReadData(0x08), 0xcafe0000)
}

func TestRegionDispatch(t *testing.T) {
	b := bus.NewBus(memory.NewMemory(16))

	uart := &recordingHandler{readValue: 0x11}
	timer := &recordingHandler{readValue: 0x22}

	test.ExpectedSuccess(t, b.Attach(bus.UARTBase, bus.RegionMask, uart))
	test.ExpectedSuccess(t, b.Attach(bus.TimerBase, bus.RegionMask, timer))

	// selector 2 -> 0x40000000 -> uart region, offset is peripheral-local
	b.Write(2, 0x10, 0x61, allLanes)
	test.Equate(t, uart.lastWriteOffset, 0x10)
	test.Equate(t, uart.lastWriteValue, 0x61)
	test.Equate(t, b.Read(2, 0x04), 0x11)
	test.Equate(t, uart.lastReadOffset, 0x04)

	// selector 4 -> 0x80000000 -> timer region
	b.Write(4, 0x04, 0xff, allLanes)
	test.Equate(t, timer.lastWriteOffset, 0x04)
	test.Equate(t, b.Read(4, 0x08), 0x22)

	// the timer transaction did not leak into the uart region
	test.Equate(t, uart.lastWriteOffset, 0x10)
}

func TestUnclaimedRegion(t *testing.T) {
	b := bus.NewBus(memory.NewMemory(16))

	// nothing attached: non-zero selectors read zero and absorb writes
	test.Equate(t, b.Read(3, 0x04), 0)
	b.Write(3, 0x04, 0xffffffff, allLanes)
	test.Equate(t, b.Read(3, 0x04), 0)
}

func TestNilHandlerRegion(t *testing.T) {
	b := bus.NewBus(memory.NewMemory(16))

	// the video region is write-only from the hardware's perspective. a nil
	// handler is a legal attachment that discards writes and reads zero
	test.ExpectedSuccess(t, b.Attach(bus.VideoBase, bus.RegionMask, nil))

	b.Write(1, 0x10000000, 0xffffffff, allLanes)
	test.Equate(t, b.Read(1, 0x10000000), 0)
}

func TestOverlappingRegions(t *testing.T) {
	b := bus.NewBus(memory.NewMemory(16))

	test.ExpectedSuccess(t, b.Attach(bus.UARTBase, bus.RegionMask, &recordingHandler{}))
	test.ExpectedFailure(t, b.Attach(bus.UARTBase, bus.RegionMask, &recordingHandler{}))
}

func TestExactlyOneTarget(t *testing.T) {
	b := bus.NewBus(memory.NewMemory(16))

	uart := &recordingHandler{readValue: 0xaa}
	timer := &recordingHandler{readValue: 0xbb}
	test.ExpectedSuccess(t, b.Attach(bus.UARTBase, bus.RegionMask, uart))
	test.ExpectedSuccess(t, b.Attach(bus.TimerBase, bus.RegionMask, timer))
	test.ExpectedSuccess(t, b.Attach(bus.VideoBase, bus.RegionMask, nil))

	// every selector in the defined table routes to exactly one place
	for sel := uint32(0); sel < 1<<bus.DeviceSelectBits; sel++ {
		v := b.Read(sel, 0x04)
		switch sel {
		case 0:
			test.Equate(t, v, 0) // word memory, uninitialised
		case 2:
			test.Equate(t, v, 0xaa)
		case 4:
			test.Equate(t, v, 0xbb)
		default:
			test.Equate(t, v, 0)
		}
	}
}
