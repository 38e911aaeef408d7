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

package modalflag_test

import (
	"os"
	"testing"

	"rvsim/modalflag"
	"rvsim/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Mode(), "")
	test.Equate(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")

	test.Equate(t, *testFlag, false)

	p, err := md.Parse()
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Mode(), "")

	test.Equate(t, *testFlag, true)
	test.Equate(t, len(md.RemainingArgs()), 2)
}

func TestSubModes(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"performance", "image.bin"})
	md.AddSubModes("RUN", "PERFORMANCE")

	p, err := md.Parse()
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Mode(), "PERFORMANCE")

	// the mode selector is consumed, leaving just the filename
	md.NewMode()
	p, err = md.Parse()
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(md.RemainingArgs()), 1)
	test.Equate(t, md.GetArg(0), "image.bin")
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"image.bin"})
	md.AddSubModes("RUN", "PERFORMANCE")

	p, err := md.Parse()
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Mode(), "RUN")

	// nothing has been consumed so the filename is still present
	md.NewMode()
	p, err = md.Parse()
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.GetArg(0), "image.bin")
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.Equate(t, p == modalflag.ParseHelp, true)
	test.Equate(t, tw.Compare("No help available\n"), true)
}

func TestHelpFlags(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.Equate(t, p == modalflag.ParseHelp, true)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n"

	test.Equate(t, tw.Compare(expectedHelp), true)
}

func TestHelpModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.Equate(t, p == modalflag.ParseHelp, true)

	expectedHelp := "Usage:\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"

	test.Equate(t, tw.Compare(expectedHelp), true)
}
