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

// Package sdldisplay is the SDL2 implementation of the video.FrameSink
// interface. It opens a window at the frame resolution and streams each
// presented frame through a texture. Closing the window, or pressing ESC,
// raises the cooperative quit request.
package sdldisplay

import (
	"rvsim/curated"
	"rvsim/logger"
	"rvsim/video"

	"github.com/veandco/go-sdl2/sdl"
)

// Display is an SDL2 window implementing the video.FrameSink interface.
type Display struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// whether the user has asked to close the window. sticky once set
	quit bool
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay() (*Display, error) {
	var err error

	dsp := &Display{}

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("sdldisplay: %v", err)
	}

	dsp.window, err = sdl.CreateWindow("RVSim",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		video.HorizRes, video.VertRes, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdldisplay: %v", err)
	}

	dsp.renderer, err = sdl.CreateRenderer(dsp.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		dsp.window.Destroy()
		sdl.Quit()
		return nil, curated.Errorf("sdldisplay: %v", err)
	}

	dsp.renderer.SetDrawColor(0, 0, 0, 255)
	dsp.renderer.Clear()

	// ABGR8888 is RGBA byte order, matching the frame's pixel buffer
	dsp.texture, err = dsp.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING, video.HorizRes, video.VertRes)
	if err != nil {
		dsp.renderer.Destroy()
		dsp.window.Destroy()
		sdl.Quit()
		return nil, curated.Errorf("sdldisplay: %v", err)
	}

	logger.Logf("sdldisplay", "window opened: %dx%d", video.HorizRes, video.VertRes)
	logger.Log("sdldisplay", "press ESC or close window to stop simulation early")

	return dsp, nil
}

// Present implements the video.FrameSink interface.
func (dsp *Display) Present(frame *video.Frame) error {
	err := dsp.texture.Update(nil, frame.Pixels, frame.Pitch())
	if err != nil {
		return curated.Errorf("sdldisplay: %v", err)
	}

	err = dsp.renderer.Copy(dsp.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdldisplay: %v", err)
	}

	dsp.renderer.Present()

	return nil
}

// PollQuit implements the video.FrameSink interface.
func (dsp *Display) PollQuit() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			dsp.quit = true
		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
				dsp.quit = true
			}
		}
	}

	return dsp.quit
}

// EndPresentation implements the video.FrameSink interface.
func (dsp *Display) EndPresentation() error {
	dsp.texture.Destroy()
	dsp.renderer.Destroy()
	dsp.window.Destroy()
	sdl.Quit()
	return nil
}
