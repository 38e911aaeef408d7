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

// Package imageloader reads the flat binary image that seeds the simulated
// word memory. The image is raw little-endian words with no header; the
// load address says where in memory the first word lands.
package imageloader

import (
	"os"

	"rvsim/curated"
	"rvsim/hardware/memory"
	"rvsim/logger"
)

// DefaultAddress is the byte offset images load at unless told otherwise.
const DefaultAddress = 0x1000

// Loader is used to specify the binary image to load into the simulation's
// word memory.
type Loader struct {
	// filename of image to load.
	Filename string

	// byte address the image is loaded at.
	Address uint32

	// copy of the loaded data. subsequent calls to Load() do nothing once
	// this is populated
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string, address uint32) Loader {
	return Loader{
		Filename: filename,
		Address:  address,
	}
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load reads the image data. An unreadable image is a fatal configuration
// error.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	f, err := os.Open(ld.Filename)
	if err != nil {
		return curated.Errorf("imageloader: %v", err)
	}
	defer f.Close()

	fi, err := os.Stat(ld.Filename)
	if err != nil {
		return curated.Errorf("imageloader: %v", err)
	}

	ld.Data = make([]byte, fi.Size())
	_, err = f.Read(ld.Data)
	if err != nil {
		return curated.Errorf("imageloader: %v", err)
	}

	return nil
}

// CopyInto loads the image (if necessary) and writes it into memory at the
// load address. Images that do not fit the configured memory are rejected.
func (ld *Loader) CopyInto(mem *memory.Memory) error {
	if err := ld.Load(); err != nil {
		return err
	}

	if err := mem.LoadImage(ld.Data, ld.Address); err != nil {
		return curated.Errorf("imageloader: %v", err)
	}

	logger.Logf("imageloader", "%s: %d bytes at %#08x", ld.Filename, len(ld.Data), ld.Address)

	return nil
}
