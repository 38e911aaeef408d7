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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Initialise with NewArgs() and then Parse() with no arguments:
//
//	md := Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "PERFORMANCE")
//	_, _ = md.Parse()
//
// Parse() checks whether the first argument after the flags is one of the
// registered sub-modes. Whichever mode is selected (the first registered
// sub-mode is the default) can be retrieved with the Mode() function.
// A second call to NewMode() and Parse() then processes the flags belonging
// to that mode:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		verbose := md.AddBool("verbose", false, "print additional log messages")
//		p, err := md.Parse()
//		...
//	}
//
// Non-flag, non-mode arguments are available through the RemainingArgs() and
// GetArg() functions after parsing. All sub-mode comparisons are case
// insensitive.
package modalflag
