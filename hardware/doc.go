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

// Package hardware assembles the simulated machine around the core under
// test: the word memory, the bus decoder and its peripherals, the frame
// compositor and the optional trace recorder, all owned by the Sim type and
// driven by its tick loop.
//
// Everything runs on the one goroutine that calls Run(). Peripheral and
// memory state is mutated in place; there is no locking because there is no
// second thread of control.
package hardware
