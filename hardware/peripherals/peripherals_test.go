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

package peripherals_test

import (
	"strings"
	"testing"

	"rvsim/hardware/peripherals"
	"rvsim/test"
)

func TestUARTTransmit(t *testing.T) {
	out := &strings.Builder{}
	uart := peripherals.NewUART(out)

	// transmit while disabled: accepted, byte dropped
	uart.Write(peripherals.UARTTransmit, 'x')
	test.Equate(t, out.String(), "")
	test.Equate(t, len(uart.TxLog()), 0)

	// enable and transmit: emitted immediately, low 8 bits only
	uart.Write(peripherals.UARTEnable, 1)
	uart.Write(peripherals.UARTTransmit, 0xffffff00|'h')
	uart.Write(peripherals.UARTTransmit, 'i')
	test.Equate(t, out.String(), "hi")
	test.Equate(t, string(uart.TxLog()), "hi")

	// disable again: the byte is dropped once more
	uart.Write(peripherals.UARTEnable, 0)
	uart.Write(peripherals.UARTTransmit, '!')
	test.Equate(t, out.String(), "hi")
}

func TestUARTRegisters(t *testing.T) {
	uart := peripherals.NewUART(nil)

	// the receive register always reads the fixed placeholder
	test.Equate(t, uart.Read(peripherals.UARTReceive), peripherals.ReceivePlaceholder)

	// baud and enable are write-only
	uart.Write(peripherals.UARTBaud, 9600)
	test.Equate(t, uart.Read(peripherals.UARTBaud), 0)
	uart.Write(peripherals.UARTEnable, 1)
	test.Equate(t, uart.Read(peripherals.UARTEnable), 0)

	// unrecognised offsets read zero and absorb writes
	uart.Write(0x20, 0xffffffff)
	test.Equate(t, uart.Read(0x20), 0)
}

func TestTimerMirror(t *testing.T) {
	tmr := peripherals.NewTimer()

	test.Equate(t, tmr.Read(peripherals.TimerLimit), 0)
	test.Equate(t, tmr.Read(peripherals.TimerEnable), 0)

	tmr.Write(peripherals.TimerLimit, 5000)
	test.Equate(t, tmr.Read(peripherals.TimerLimit), 5000)

	// the enable flag is boolean-coerced on write and reads back as 0/1
	tmr.Write(peripherals.TimerEnable, 0xff)
	test.Equate(t, tmr.Read(peripherals.TimerEnable), 1)
	tmr.Write(peripherals.TimerEnable, 0)
	test.Equate(t, tmr.Read(peripherals.TimerEnable), 0)

	// unrecognised offsets read zero and absorb writes
	tmr.Write(0x0c, 123)
	test.Equate(t, tmr.Read(0x0c), 0)
}
