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

// Package bus decodes the selector/address pair presented by the core every
// cycle and routes the transaction to the word memory or to a registered
// peripheral.
//
// The top DeviceSelectBits bits of the 32-bit address space carry the device
// selector. Selector zero always means word memory. Non-zero selectors are
// matched against the registered device regions; a transaction matching no
// region reads zero and discards writes, the same tolerance policy the word
// memory applies to out-of-range data accesses.
package bus

import (
	"rvsim/curated"
	"rvsim/hardware/memory"
)

// The fixed split of the 32-bit address space. The top three bits are the
// device selector; the remainder is the in-device address.
const (
	DeviceSelectBits = 3
	DeviceShift      = 32 - DeviceSelectBits
	DeviceMask       = (1 << DeviceShift) - 1
)

// RegionMask selects the high nibble that distinguishes the device regions.
const RegionMask = 0xf0000000

// Base addresses of the defined device regions.
const (
	VideoBase = 0x30000000
	UARTBase  = 0x40000000
	TimerBase = 0x80000000
)

// HaltSentinel is the word that, when observed at the configured halt
// address, ends the simulation.
const HaltSentinel = 0xbabecafe

// Handler is a peripheral register file attached to a device region. The
// offset argument is relative to the region's base address.
type Handler interface {
	Read(offset uint32) uint32
	Write(offset uint32, value uint32)
}

// region is a statically defined partition of the address space. a nil
// handler is legal: such a region discards writes and reads as zero (the
// video region is like this, being write-only from the hardware's side).
type region struct {
	base    uint32
	mask    uint32
	handler Handler
}

// Bus connects the core's memory bundle to the word memory and the
// registered peripherals.
type Bus struct {
	mem     *memory.Memory
	regions []region
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus(mem *memory.Memory) *Bus {
	return &Bus{
		mem:     mem,
		regions: make([]region, 0, 4),
	}
}

// Attach registers a handler for the device region given by (base, mask).
// New peripherals attach here without changes to the decoder itself. Regions
// must not overlap.
func (b *Bus) Attach(base uint32, mask uint32, handler Handler) error {
	for _, r := range b.regions {
		if base&r.mask == r.base || r.base&mask == base {
			return curated.Errorf("bus: device region %#08x overlaps existing region %#08x", base, r.base)
		}
	}
	b.regions = append(b.regions, region{base: base, mask: mask, handler: handler})
	return nil
}

// EffectiveAddress reassembles the full 32-bit address from the selector and
// low-address fields of the core's memory bundle.
func (b *Bus) EffectiveAddress(selector uint32, address uint32) uint32 {
	return (selector << DeviceShift) | (address & DeviceMask)
}

// find the region claiming the effective address. at most one region can
// match because regions never overlap.
func (b *Bus) find(effective uint32) (region, bool) {
	for _, r := range b.regions {
		if effective&r.mask == r.base {
			return r, true
		}
	}
	return region{}, false
}

// Write dispatches a write transaction. Selector zero goes to word memory
// with the byte-lane strobes applied; peripheral writes receive the whole
// word. Writes to an unclaimed region, or to a region with no handler, are
// discarded.
func (b *Bus) Write(selector uint32, address uint32, value uint32, strobe [4]bool) {
	if selector == 0 {
		b.mem.Write(address&DeviceMask, value, strobe)
		return
	}

	effective := b.EffectiveAddress(selector, address)
	if r, ok := b.find(effective); ok && r.handler != nil {
		r.handler.Write(effective-r.base, value)
	}
}

// Read dispatches a read transaction and returns the word read. Unclaimed
// regions, and regions with no handler, read as zero.
func (b *Bus) Read(selector uint32, address uint32) uint32 {
	if selector == 0 {
		return b.mem.ReadData(address & DeviceMask)
	}

	effective := b.EffectiveAddress(selector, address)
	if r, ok := b.find(effective); ok && r.handler != nil {
		return r.handler.Read(effective - r.base)
	}
	return 0
}
