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

// Package signature serialises a window of word memory to the compliance
// signature artifact. The artifact is diffed externally against a reference
// file, so the format is contractual: one line per word in ascending address
// order, each line exactly eight lowercase hexadecimal digits with no
// prefix, every line newline-terminated.
package signature

import (
	"bufio"
	"fmt"
	"os"

	"rvsim/curated"
	"rvsim/hardware/memory"
	"rvsim/logger"
)

// Window is the memory range to serialise. Begin is inclusive, End
// exclusive; both are byte addresses.
type Window struct {
	Begin    uint32
	End      uint32
	Filename string
}

// Write serialises the window, one word per line. Consumed once at session
// teardown.
func (win Window) Write(mem *memory.Memory) (rerr error) {
	f, err := os.Create(win.Filename)
	if err != nil {
		return curated.Errorf("signature: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("signature: %v", err)
		}
	}()

	w := bufio.NewWriter(f)
	for addr := win.Begin; addr < win.End; addr += 4 {
		fmt.Fprintf(w, "%08x\n", mem.ReadData(addr))
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf("signature: %v", err)
	}

	logger.Logf("signature", "writing %#08x to %#08x to %s", win.Begin, win.End, win.Filename)

	return nil
}
