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
	"fmt"

	"rvsim/hardware/bus"
	"rvsim/logger"
)

// Run drives the simulation until one of the termination conditions is met:
// the tick budget is exhausted; the core self-reports completion; the halt
// sentinel appears at the configured halt address; or the display sink
// requests a quit. All conditions are checked once per tick, never
// mid-dispatch, and termination is absorbing: the core is not evaluated
// again afterwards.
//
// The optional continueCheck function is consulted at the end of every tick.
// Returning false ends the run in the same cooperative way as the built-in
// conditions.
//
// On each running tick the driver toggles the clock when the half-period
// counter has elapsed, feeds the previous cycle's decoded read results back
// as this cycle's bus inputs, evaluates the core, dispatches the newly
// produced transaction (write then read), fetches the next instruction word,
// records a trace sample and feeds the compositor from the new pixel
// signals.
func (sim *Sim) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	p := sim.Core.Pins()

	// initial state: reset asserted, clock low. the instruction bus never
	// drops its valid signal in this system
	p.Reset = true
	p.Clock = false
	p.InstructionValid = true
	p.PixClock = false
	sim.Core.Eval()
	sim.Trace.Dump(sim.tick)

	// the decoded results of the current cycle, latched as next cycle's bus
	// inputs
	var dataRead uint32
	var instRead uint32

	var counter uint64

	// progress indicator interval. budgets too small for a 1% resolution
	// disable the indicator
	progressStep := sim.TickBudget / 100

	for sim.tick < sim.TickBudget && !sim.Core.Halted() {
		sim.tick++

		counter++
		if counter > halfPeriod {
			p.Clock = !p.Clock
			counter = 0
		}
		if sim.tick > resetTicks {
			p.Reset = false
		}

		// feed back the previous cycle's read results
		p.MemReadData = dataRead
		p.Instruction = instRead

		// the pixel clock is driven with the system clock
		p.PixClock = p.Clock

		sim.Core.Eval()
		p.InterruptFlag = false

		// dispatch the newly produced transaction. writes land before the
		// read so a same-address read returns the new value
		if p.MemWriteEnable {
			sim.Bus.Write(p.DeviceSelect, p.MemAddress, p.MemWriteData, p.MemWriteStrobe)
		}
		dataRead = sim.Bus.Read(p.DeviceSelect, p.MemAddress)
		instRead = sim.Mem.ReadInstruction(p.InstructionAddress)

		sim.Trace.Dump(sim.tick)

		// the compositor works from the hardware-reported pixel signals,
		// independently of the memory bus
		sim.Compositor.UpdatePixel(p.PixColor, p.PixActive, p.PixX, p.PixY)
		if err := sim.Compositor.CheckVSync(p.VSync); err != nil {
			return err
		}

		if sim.Compositor.QuitRequested() {
			logger.Log("sim", "quit requested - stopping simulation")
			break
		}

		if sim.HaltAddress != 0 && sim.Mem.ReadData(sim.HaltAddress) == bus.HaltSentinel {
			logger.Logf("sim", "halt sentinel observed at %#08x", sim.HaltAddress)
			break
		}

		if sim.Output != nil && progressStep > 0 && sim.tick%progressStep == 0 {
			fmt.Fprintf(sim.Output, "simulation progress: %d%%\n", sim.tick*100/sim.TickBudget)
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			break
		}
	}

	return nil
}
