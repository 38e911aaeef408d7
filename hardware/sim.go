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

package hardware

import (
	"io"

	"rvsim/curated"
	"rvsim/hardware/bus"
	"rvsim/hardware/core"
	"rvsim/hardware/memory"
	"rvsim/hardware/peripherals"
	"rvsim/trace"
	"rvsim/video"
)

// Default configuration values.
const (
	DefaultMemoryWords = 1024 * 1024
	DefaultTickBudget  = 10000
)

// PerformanceBrake is a rough calculation of the number of ticks between
// checks of the performance timer. Used by the performance package.
const PerformanceBrake = 100

// reset is asserted for this many ticks at the start of the run.
const resetTicks = 2

// the clock is toggled every halfPeriod ticks.
const halfPeriod = 1

// Sim is the main container for the simulated machine. One Sim is one
// independent simulation session; nothing here is process-wide.
type Sim struct {
	Core  core.Core
	Mem   *memory.Memory
	Bus   *bus.Bus
	UART  *peripherals.UART
	Timer *peripherals.Timer

	// the compositor is not part of the machine but is attached to it
	Compositor *video.Compositor

	// nil unless EnableTrace() has been called
	Trace *trace.Recorder

	// number of ticks the RUNNING phase may use
	TickBudget uint64

	// when non-zero, the address checked for the halt sentinel after each
	// tick's dispatch
	HaltAddress uint32

	// progress is reported here at each 1% boundary of the tick budget. a
	// nil writer disables the indicator
	Output io.Writer

	tick  uint64
	ended bool
}

// NewSim creates a new simulation session and everything associated with the
// machine. The transmit side of the UART emits to uartOutput; frames are
// handed to sink on every vertical-sync falling edge.
func NewSim(cor core.Core, memoryWords int, uartOutput io.Writer, sink video.FrameSink) (*Sim, error) {
	sim := &Sim{
		Core:       cor,
		TickBudget: DefaultTickBudget,
	}

	sim.Mem = memory.NewMemory(memoryWords)
	sim.Bus = bus.NewBus(sim.Mem)
	sim.UART = peripherals.NewUART(uartOutput)
	sim.Timer = peripherals.NewTimer()
	sim.Compositor = video.NewCompositor(sink)

	// the fixed device region table. the video region is write-only from the
	// hardware's perspective so no handler is attached
	if err := sim.Bus.Attach(bus.UARTBase, bus.RegionMask, sim.UART); err != nil {
		return nil, curated.Errorf("sim: %v", err)
	}
	if err := sim.Bus.Attach(bus.TimerBase, bus.RegionMask, sim.Timer); err != nil {
		return nil, curated.Errorf("sim: %v", err)
	}
	if err := sim.Bus.Attach(bus.VideoBase, bus.RegionMask, nil); err != nil {
		return nil, curated.Errorf("sim: %v", err)
	}

	return sim, nil
}

// EnableTrace opens the waveform sink. Failure to open it is fatal to the
// session.
func (sim *Sim) EnableTrace(filename string) error {
	rec, err := trace.NewRecorder(filename, sim.Core.Pins())
	if err != nil {
		return err
	}
	sim.Trace = rec
	return nil
}

// Tick returns the number of ticks evaluated so far.
func (sim *Sim) Tick() uint64 {
	return sim.tick
}

// End releases everything with external lifetime: the final in-progress
// frame is presented, the display sink and the trace sink are closed, and
// the core is told to finish. Safe to call on every exit path; the second
// and subsequent calls do nothing.
func (sim *Sim) End() error {
	if sim.ended {
		return nil
	}
	sim.ended = true

	// present the final partial frame before the sink goes away
	err := sim.Compositor.Present()

	if e := sim.Compositor.EndRendering(); e != nil && err == nil {
		err = e
	}
	if e := sim.Trace.End(); e != nil && err == nil {
		err = e
	}
	sim.Core.End()

	return err
}
