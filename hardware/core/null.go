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

package core

// Null is a Core implementation with no behaviour. All output pins stay at
// their zero value and the core never reports completion. It is used when
// the harness runs without a synthesised core attached.
type Null struct {
	pins Pins
}

// Pins implements the Core interface.
func (cor *Null) Pins() *Pins {
	return &cor.pins
}

// Eval implements the Core interface.
func (cor *Null) Eval() {
}

// Halted implements the Core interface.
func (cor *Null) Halted() bool {
	return false
}

// End implements the Core interface.
func (cor *Null) End() {
}
