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

package performance

import (
	"fmt"
	"io"
	"time"

	"rvsim/curated"
	"rvsim/hardware"
)

// sentinel error returned by the Run() loop when the measurement period has
// elapsed.
const timedOut = "performance timed out"

// Check measures the performance of the supplied simulation.
//
// The simulation will run for the specified duration of wall-clock time and
// will create a cpu profile, memory profile, execution trace (or a
// combination of those) as defined by the profile argument. The tick budget
// is ignored; time bounds the run.
func Check(output io.Writer, profile Profile, sim *hardware.Sim, duration string) error {
	var err error

	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// time bounds this run, not the budget
	sim.TickBudget = ^uint64(0)

	// tick count at the start of the measurement period
	startTick := sim.Tick()

	runner := func() error {
		// setup trigger that expires when duration has elapsed. signals true
		// when the duration has expired. signals false to indicate that
		// performance measurement should start
		timerChan := make(chan bool)

		// force a one second leadtime to let the process settle down and then
		// restart the timer for the specified duration
		go func() {
			time.AfterFunc(1*time.Second, func() {
				timerChan <- false
				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		// only check for the end of the measurement period every
		// PerformanceBrake ticks. checking timerChan is relatively expensive
		performanceBrake := 0

		return sim.Run(func() (bool, error) {
			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0

				select {
				case v := <-timerChan:
					// true means the measurement period has finished
					if v {
						return false, curated.Errorf(timedOut)
					}

					// false means the leadtime has concluded. the
					// measurement has begun and we should record the
					// starting tick
					startTick = sim.Tick()
				default:
				}
			}

			return true, nil
		})
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !curated.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	numTicks := sim.Tick() - startTick
	rate := float64(numTicks) / dur.Seconds()
	fmt.Fprintf(output, "%.2f ticks/sec (%d ticks in %.2f seconds)\n", rate, numTicks, dur.Seconds())

	return nil
}
