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

// Package peripherals contains the register files attached to the bus
// decoder's device regions. Register offsets are part of the wire contract
// and must not move. Offsets not listed read as zero and absorb writes.
package peripherals

import (
	"io"
)

// UART register offsets.
const (
	UARTBaud     = 0x04 // write-only, stored
	UARTEnable   = 0x08 // write-only, non-zero coerced to true
	UARTReceive  = 0x0c // read-only, fixed placeholder
	UARTTransmit = 0x10 // write-only, emits the low byte when enabled
)

// ReceivePlaceholder is the value the receive register always reads back as.
// There is no simulated inbound traffic.
const ReceivePlaceholder = 0x00

const defaultBaud = 115200

// UART models the serial port register file. Bytes written to the transmit
// register while the port is enabled are emitted immediately on the output
// writer and retained in the transmit log.
type UART struct {
	baud    uint32
	enabled bool
	txLog   []byte
	output  io.Writer
}

// NewUART is the preferred method of initialisation for the UART type. The
// output writer receives transmitted bytes as they are written; a nil writer
// discards them (the transmit log is kept either way).
func NewUART(output io.Writer) *UART {
	if output == nil {
		output = io.Discard
	}
	return &UART{
		baud:   defaultBaud,
		output: output,
	}
}

// Write implements the bus.Handler interface.
func (u *UART) Write(offset uint32, value uint32) {
	switch offset {
	case UARTBaud:
		u.baud = value
	case UARTEnable:
		u.enabled = value != 0
	case UARTTransmit:
		// the write is accepted whether or not the port is enabled but the
		// byte is only emitted when it is
		if u.enabled {
			b := byte(value)
			u.txLog = append(u.txLog, b)
			u.output.Write([]byte{b})
		}
	}
}

// Read implements the bus.Handler interface.
func (u *UART) Read(offset uint32) uint32 {
	if offset == UARTReceive {
		return ReceivePlaceholder
	}
	return 0
}

// TxLog returns the bytes transmitted so far, in emission order.
func (u *UART) TxLog() []byte {
	return u.txLog
}
