// This file is part of ZX-Spectrum-Emu.
//
// ZX-Spectrum-Emu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ZX-Spectrum-Emu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ZX-Spectrum-Emu.  If not, see <https://www.gnu.org/licenses/>.

package sdlplay

import (
	"context"

	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware"
	"github.com/OhhJordy/ZX-Spectrum-Emu/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// service the SDL event queue. returns false if the window has been closed.
func (scr *SdlPlay) service() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return false

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}

			switch ev.Type {
			case sdl.KEYDOWN:
				if ev.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
					return false
				}
				if _, err := scr.handleKey(ev.Keysym.Scancode, true); err != nil {
					logger.Log(logger.Allow, "sdlplay", err.Error())
				}
			case sdl.KEYUP:
				if _, err := scr.handleKey(ev.Keysym.Scancode, false); err != nil {
					logger.Log(logger.Allow, "sdlplay", err.Error())
				}
			}
		}
	}

	return true
}

// Run the emulation until the window is closed or the context is cancelled.
// The onFrame function is called after each frame and can be nil. An error
// from the emulation or the onFrame function ends the emulation.
func (scr *SdlPlay) Run(ctx context.Context, onFrame func(hardware.FrameResult) error) error {
	scr.showWindow(true)
	defer scr.showWindow(false)

	for scr.service() {
		if err := ctx.Err(); err != nil {
			return nil
		}

		r, err := scr.zx.RunFrame()
		if err != nil {
			return err
		}

		if scr.snd != nil {
			if err := scr.snd.frame(r); err != nil {
				logger.Log(logger.Allow, "sdlplay", err.Error())
			}
		}

		if onFrame != nil {
			if err := onFrame(r); err != nil {
				return err
			}
		}

		if scr.fpsCap {
			scr.lmtr.Wait()
		}

		if err := scr.render(); err != nil {
			return err
		}
	}

	return nil
}
