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

package signature_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rvsim/hardware/memory"
	"rvsim/signature"
	"rvsim/test"
)

func TestSignatureFormat(t *testing.T) {
	mem := memory.NewMemory(8)
	mem.Write(0x00, 0xdeadbeef, [4]bool{true, true, true, true})
	mem.Write(0x04, 0x00000001, [4]bool{true, true, true, true})
	mem.Write(0x08, 0xbabecafe, [4]bool{true, true, true, true})

	fn := filepath.Join(t.TempDir(), "signature.txt")
	win := signature.Window{Begin: 0x00, End: 0x0c, Filename: fn}
	test.ExpectedSuccess(t, win.Write(mem))

	b, err := os.ReadFile(fn)
	test.ExpectedSuccess(t, err)

	// eight lowercase hex digits per line, no prefix, ascending order,
	// newline terminated. end address is exclusive
	test.Equate(t, string(b), "deadbeef\n00000001\nbabecafe\n")

	// line count is (end-begin)/4
	lines := strings.Count(string(b), "\n")
	test.Equate(t, lines, 3)
}

func TestSignatureUnwritablePath(t *testing.T) {
	mem := memory.NewMemory(8)
	win := signature.Window{Begin: 0, End: 4, Filename: "/no/such/directory/signature.txt"}
	test.ExpectedFailure(t, win.Write(mem))
}
