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

package video_test

import (
	"testing"

	"rvsim/test"
	"rvsim/video"
)

// sink counting Present calls.
type countingSink struct {
	video.DummySink
	presented int
}

func (snk *countingSink) Present(_ *video.Frame) error {
	snk.presented++
	return nil
}

func TestColourExpansion(t *testing.T) {
	cmp := video.NewCompositor(video.NewDummySink())

	// each 2-bit channel expands independently through {0, 85, 170, 255}
	cmp.UpdatePixel(0b110110, true, 0, 0)
	r, g, b, a := cmp.Frame().Pixel(0, 0)
	test.Equate(t, r, 255)
	test.Equate(t, g, 85)
	test.Equate(t, b, 170)
	test.Equate(t, a, 255)

	cmp.UpdatePixel(0b000000, true, 1, 0)
	r, g, b, _ = cmp.Frame().Pixel(1, 0)
	test.Equate(t, r, 0)
	test.Equate(t, g, 0)
	test.Equate(t, b, 0)

	cmp.UpdatePixel(0b011011, true, 2, 0)
	r, g, b, _ = cmp.Frame().Pixel(2, 0)
	test.Equate(t, r, 85)
	test.Equate(t, g, 170)
	test.Equate(t, b, 255)
}

func TestActiveVideoGate(t *testing.T) {
	cmp := video.NewCompositor(video.NewDummySink())

	// samples outside active video are not stored
	cmp.UpdatePixel(0b111111, false, 0, 0)
	r, g, b, a := cmp.Frame().Pixel(0, 0)
	test.Equate(t, r, 0)
	test.Equate(t, g, 0)
	test.Equate(t, b, 0)
	test.Equate(t, a, 0)

	// samples outside the resolution are ignored without panic
	cmp.UpdatePixel(0b111111, true, video.HorizRes, 0)
	cmp.UpdatePixel(0b111111, true, 0, video.VertRes)
}

func TestVSyncFallingEdge(t *testing.T) {
	snk := &countingSink{}
	cmp := video.NewCompositor(snk)

	// edge detector state starts high, so an immediate low is a falling edge
	test.ExpectedSuccess(t, cmp.CheckVSync(false))
	test.Equate(t, snk.presented, 1)

	// steady low: nothing
	test.ExpectedSuccess(t, cmp.CheckVSync(false))
	test.Equate(t, snk.presented, 1)

	// rising edge: nothing
	test.ExpectedSuccess(t, cmp.CheckVSync(true))
	test.Equate(t, snk.presented, 1)

	// steady high: nothing
	test.ExpectedSuccess(t, cmp.CheckVSync(true))
	test.Equate(t, snk.presented, 1)

	// falling edge: exactly one more frame
	test.ExpectedSuccess(t, cmp.CheckVSync(false))
	test.Equate(t, snk.presented, 2)
	test.Equate(t, cmp.FrameCount(), 2)
}

func TestFrameRetention(t *testing.T) {
	snk := &countingSink{}
	cmp := video.NewCompositor(snk)

	cmp.UpdatePixel(0b111111, true, 5, 5)
	test.ExpectedSuccess(t, cmp.CheckVSync(false))
	test.ExpectedSuccess(t, cmp.CheckVSync(true))

	// the frame is never cleared between sync edges. a second, shorter frame
	// leaves the old pixel in place
	cmp.UpdatePixel(0b000011, true, 0, 0)
	test.ExpectedSuccess(t, cmp.CheckVSync(false))

	r, g, b, _ := cmp.Frame().Pixel(5, 5)
	test.Equate(t, r, 255)
	test.Equate(t, g, 255)
	test.Equate(t, b, 255)
}
