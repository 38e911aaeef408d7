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

package peripherals

// Timer register offsets.
const (
	TimerLimit  = 0x04 // read/write
	TimerEnable = 0x08 // read/write, non-zero coerced to true
)

// Timer models the timer register file. It is a pure state store: it mirrors
// whatever was last written, does not count down and does not raise an
// interrupt. Nothing in the simulator observes it beyond the bus.
type Timer struct {
	limit   uint32
	enabled bool
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer() *Timer {
	return &Timer{}
}

// Write implements the bus.Handler interface.
func (tmr *Timer) Write(offset uint32, value uint32) {
	switch offset {
	case TimerLimit:
		tmr.limit = value
	case TimerEnable:
		tmr.enabled = value != 0
	}
}

// Read implements the bus.Handler interface.
func (tmr *Timer) Read(offset uint32) uint32 {
	switch offset {
	case TimerLimit:
		return tmr.limit
	case TimerEnable:
		if tmr.enabled {
			return 1
		}
		return 0
	}
	return 0
}
