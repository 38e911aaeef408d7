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

// Package core defines the boundary to the hardware core under test. The
// simulator depends only on the Core interface and the Pins struct; how the
// core is built or synthesised is of no concern here.
//
// Real cores are supplied by generated bindings that implement the Core
// interface. The Null type in this package stands in when no core is
// attached, which is useful for exercising the surrounding plumbing.
package core
