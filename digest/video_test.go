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

package digest_test

import (
	"testing"

	"rvsim/digest"
	"rvsim/test"
	"rvsim/video"
)

func TestVideoDigest(t *testing.T) {
	dig := digest.NewVideo()
	zero := dig.Hash()

	// the same pixel sequence always produces the same hash
	cmp := video.NewCompositor(dig)
	cmp.UpdatePixel(0b110011, true, 10, 20)
	test.ExpectedSuccess(t, cmp.CheckVSync(false))
	test.Equate(t, dig.FrameCount(), 1)

	once := dig.Hash()
	test.Equate(t, once == zero, false)

	dig.ResetDigest()
	test.Equate(t, dig.Hash(), zero)

	cmp2 := video.NewCompositor(dig)
	cmp2.UpdatePixel(0b110011, true, 10, 20)
	test.ExpectedSuccess(t, cmp2.CheckVSync(false))
	test.Equate(t, dig.Hash(), once)

	// hashes chain: a second identical frame produces a different value
	test.ExpectedSuccess(t, cmp2.CheckVSync(true))
	test.ExpectedSuccess(t, cmp2.CheckVSync(false))
	test.Equate(t, dig.Hash() == once, false)
}
