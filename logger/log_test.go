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

package logger_test

import (
	"strings"
	"testing"

	"rvsim/logger"
	"rvsim/test"
)

func TestTail(t *testing.T) {
	logger.Clear()
	logger.Log("test", "this is a test")

	s := &strings.Builder{}
	logger.Tail(s, 1)
	test.Equate(t, s.String(), "test: this is a test\n")

	logger.Log("test2", "this is another test")

	s.Reset()
	logger.Tail(s, 1)
	test.Equate(t, s.String(), "test2: this is another test\n")

	s.Reset()
	logger.Tail(s, 2)
	test.Equate(t, s.String(), "test: this is a test\ntest2: this is another test\n")
}

func TestRepeats(t *testing.T) {
	logger.Clear()
	logger.Log("test", "this entry repeats")
	logger.Log("test", "this entry repeats")
	logger.Log("test", "this entry repeats")

	// the three identical entries compress into one with a repeat count
	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, s.String(), "test: this entry repeats (repeat x3)\n")
}
