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

// Package trace records the simulation's pin state to a waveform artifact in
// VCD (value change dump) format, one record per evaluated tick. Only
// changed values are written after the initial snapshot.
//
// A nil *Recorder is valid and does nothing, which is how a disabled trace
// is represented.
package trace

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"rvsim/curated"
	"rvsim/hardware/bus"
	"rvsim/hardware/core"
	"rvsim/logger"
)

// signal is one traced pin: a name for the VCD header, a short identifier
// code and a sampling function.
type signal struct {
	name  string
	id    string
	width int
	get   func() uint64
}

// Recorder writes the waveform artifact.
type Recorder struct {
	file    *os.File
	buffer  *bufio.Writer
	signals []signal

	// previous sample per signal. nil until the first Dump(), which writes
	// the full $dumpvars snapshot
	prev []uint64

	closed bool
}

func fromBool(v *bool) func() uint64 {
	return func() uint64 {
		if *v {
			return 1
		}
		return 0
	}
}

func fromU32(v *uint32) func() uint64 {
	return func() uint64 { return uint64(*v) }
}

func fromU16(v *uint16) func() uint64 {
	return func() uint64 { return uint64(*v) }
}

func fromU8(v *uint8) func() uint64 {
	return func() uint64 { return uint64(*v) }
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. The waveform sink is opened immediately; failure to open it is fatal
// to the session. The header names every pin of the core's pin contract.
func NewRecorder(filename string, pins *core.Pins) (*Recorder, error) {
	rec := &Recorder{}

	rec.signals = []signal{
		{name: "clock", width: 1, get: fromBool(&pins.Clock)},
		{name: "reset", width: 1, get: fromBool(&pins.Reset)},
		{name: "instruction_valid", width: 1, get: fromBool(&pins.InstructionValid)},
		{name: "instruction", width: 32, get: fromU32(&pins.Instruction)},
		{name: "instruction_address", width: 32, get: fromU32(&pins.InstructionAddress)},
		{name: "mem_read_data", width: 32, get: fromU32(&pins.MemReadData)},
		{name: "interrupt_flag", width: 1, get: fromBool(&pins.InterruptFlag)},
		{name: "device_select", width: bus.DeviceSelectBits, get: fromU32(&pins.DeviceSelect)},
		{name: "mem_address", width: 32, get: fromU32(&pins.MemAddress)},
		{name: "mem_write_enable", width: 1, get: fromBool(&pins.MemWriteEnable)},
		{name: "mem_write_strobe_0", width: 1, get: fromBool(&pins.MemWriteStrobe[0])},
		{name: "mem_write_strobe_1", width: 1, get: fromBool(&pins.MemWriteStrobe[1])},
		{name: "mem_write_strobe_2", width: 1, get: fromBool(&pins.MemWriteStrobe[2])},
		{name: "mem_write_strobe_3", width: 1, get: fromBool(&pins.MemWriteStrobe[3])},
		{name: "mem_write_data", width: 32, get: fromU32(&pins.MemWriteData)},
		{name: "pix_clock", width: 1, get: fromBool(&pins.PixClock)},
		{name: "pix_colour", width: 8, get: fromU8(&pins.PixColor)},
		{name: "pix_active", width: 1, get: fromBool(&pins.PixActive)},
		{name: "pix_x", width: 16, get: fromU16(&pins.PixX)},
		{name: "pix_y", width: 16, get: fromU16(&pins.PixY)},
		{name: "vsync", width: 1, get: fromBool(&pins.VSync)},
	}

	// identifier codes are consecutive printable characters from '!'
	for i := range rec.signals {
		rec.signals[i].id = string(rune('!' + i))
	}

	var err error
	rec.file, err = os.Create(filename)
	if err != nil {
		return nil, curated.Errorf("vcd: %v", err)
	}
	rec.buffer = bufio.NewWriter(rec.file)

	rec.writeHeader()

	logger.Logf("vcd", "tracing to %s", filename)

	return rec, nil
}

func (rec *Recorder) writeHeader() {
	fmt.Fprintln(rec.buffer, "$version RVSim $end")
	fmt.Fprintln(rec.buffer, "$timescale 1ns $end")
	fmt.Fprintln(rec.buffer, "$scope module top $end")
	for _, sig := range rec.signals {
		fmt.Fprintf(rec.buffer, "$var wire %d %s %s $end\n", sig.width, sig.id, sig.name)
	}
	fmt.Fprintln(rec.buffer, "$upscope $end")
	fmt.Fprintln(rec.buffer, "$enddefinitions $end")
}

func (rec *Recorder) writeValue(sig signal, value uint64) {
	if sig.width == 1 {
		fmt.Fprintf(rec.buffer, "%d%s\n", value, sig.id)
	} else {
		fmt.Fprintf(rec.buffer, "b%s %s\n", strconv.FormatUint(value, 2), sig.id)
	}
}

// Dump appends the current pin snapshot for the given tick. The first call
// writes a full snapshot; later calls write only the values that have
// changed. A no-op on a nil Recorder or after End().
func (rec *Recorder) Dump(tick uint64) {
	if rec == nil || rec.closed {
		return
	}

	fmt.Fprintf(rec.buffer, "#%d\n", tick)

	if rec.prev == nil {
		fmt.Fprintln(rec.buffer, "$dumpvars")
		rec.prev = make([]uint64, len(rec.signals))
		for i, sig := range rec.signals {
			rec.prev[i] = sig.get()
			rec.writeValue(sig, rec.prev[i])
		}
		fmt.Fprintln(rec.buffer, "$end")
		return
	}

	for i, sig := range rec.signals {
		v := sig.get()
		if v != rec.prev[i] {
			rec.prev[i] = v
			rec.writeValue(sig, v)
		}
	}
}

// End flushes and closes the waveform sink. Closing happens exactly once no
// matter how often End() is called or how the session ended. A no-op on a
// nil Recorder.
func (rec *Recorder) End() error {
	if rec == nil || rec.closed {
		return nil
	}
	rec.closed = true

	if err := rec.buffer.Flush(); err != nil {
		rec.file.Close()
		return curated.Errorf("vcd: %v", err)
	}
	if err := rec.file.Close(); err != nil {
		return curated.Errorf("vcd: %v", err)
	}
	return nil
}
