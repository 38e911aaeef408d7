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

package core

// Pins is the wire contract between the simulation driver and the core under
// test. The driver writes the input pins, calls Eval() and reads the output
// pins. Nothing else about the core is visible to the simulator.
type Pins struct {
	// input pins
	Clock            bool
	Reset            bool
	InstructionValid bool
	Instruction      uint32
	MemReadData      uint32
	InterruptFlag    bool
	PixClock         bool

	// output pins. the memory bundle carries one transaction per cycle: the
	// selector/address pair routed by the bus decoder, plus write-enable,
	// per-lane strobes and write data
	InstructionAddress uint32
	DeviceSelect       uint32
	MemAddress         uint32
	MemWriteEnable     bool
	MemWriteStrobe     [4]bool
	MemWriteData       uint32

	// pixel stream output pins. coordinates are hardware-reported; the frame
	// compositor never counts them itself
	PixColor  uint8
	PixActive bool
	PixX      uint16
	PixY      uint16
	VSync     bool
}

// Core is the opaque hardware core under test. Implementations combine the
// input pins with their internal state and produce new output pins on every
// call to Eval().
//
// Eval() is a pure, blocking function of (inputs, internal state). It is
// called exactly once per tick and never suspends mid-tick.
type Core interface {
	// Pins returns the pin state shared between the core and the driver. The
	// same instance must be returned on every call.
	Pins() *Pins

	// Eval evaluates the core for the current pin inputs.
	Eval()

	// Halted returns true once the core has self-reported completion. The
	// driver stops evaluating the core after this point.
	Halted() bool

	// End releases anything the core implementation is holding. no further
	// calls to Eval() after End().
	End()
}
