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

// Package curated is the error mechanism used throughout the simulator. A
// curated error remembers the pattern it was created with, meaning errors can
// be identified by pattern with the Is() and Has() functions rather than by
// sentinel values.
//
// By convention the pattern begins with the name of the package (or some
// other context) that created the error. For example:
//
//	curated.Errorf("vcd: %v", err)
//
// When curated errors wrap other curated errors the duplicate message parts
// that can result are normalised away by the Error() function.
package curated
