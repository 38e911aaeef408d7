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

package trace_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rvsim/hardware/core"
	"rvsim/test"
	"rvsim/trace"
)

func TestDisabledRecorder(t *testing.T) {
	// a nil recorder is how a disabled trace is represented. Dump and End
	// must be no-ops
	var rec *trace.Recorder
	rec.Dump(0)
	test.ExpectedSuccess(t, rec.End())
}

func TestVCDOutput(t *testing.T) {
	pins := &core.Pins{}
	fn := filepath.Join(t.TempDir(), "trace.vcd")

	rec, err := trace.NewRecorder(fn, pins)
	test.ExpectedSuccess(t, err)

	rec.Dump(0)

	pins.Clock = true
	pins.MemAddress = 0x1000
	rec.Dump(1)

	// nothing changed, so tick 2 carries no value records
	rec.Dump(2)

	test.ExpectedSuccess(t, rec.End())

	// End() closes exactly once
	test.ExpectedSuccess(t, rec.End())
	rec.Dump(3)

	b, err := os.ReadFile(fn)
	test.ExpectedSuccess(t, err)
	s := string(b)

	// header declares the pin contract
	test.Equate(t, strings.Contains(s, "$timescale 1ns $end"), true)
	test.Equate(t, strings.Contains(s, "$enddefinitions $end"), true)
	test.Equate(t, strings.Contains(s, "clock"), true)
	test.Equate(t, strings.Contains(s, "mem_write_strobe_3"), true)
	test.Equate(t, strings.Contains(s, "vsync"), true)

	// initial snapshot at tick 0
	test.Equate(t, strings.Contains(s, "#0\n$dumpvars"), true)

	// tick 1 records the clock edge; the clock signal is the first declared
	// so its identifier code is '!'
	test.Equate(t, strings.Contains(s, "#1\n1!"), true)

	// tick 2 is an empty record followed by end of file
	test.Equate(t, strings.HasSuffix(s, "#2\n"), true)
}
