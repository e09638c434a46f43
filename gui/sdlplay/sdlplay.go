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
	"github.com/OhhJordy/ZX-Spectrum-Emu/curated"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/clocks"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/ula"
	"github.com/OhhJordy/ZX-Spectrum-Emu/logger"
	"github.com/OhhJordy/ZX-Spectrum-Emu/performance/limiter"

	"github.com/veandco/go-sdl2/sdl"
)

// the width of the border on each side of the screen, in unscaled pixels
const borderSize = 32

// DefaultScale is the default amount of scaling applied to each pixel.
const DefaultScale = 2.0

// SdlPlay is a simple SDL window showing the output of the Spectrum.
type SdlPlay struct {
	zx *hardware.Spectrum

	// limit screen updates to a fixed fps
	lmtr   *limiter.FpsLimiter
	fpsCap bool

	// all audio is handled by the sound type
	snd *sound

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// destination of the screen texture inside the window. the remainder of
	// the window is the border
	screen sdl.Rect

	scale float32
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay.
func NewSdlPlay(zx *hardware.Spectrum, scale float32, fpsCap bool) (*SdlPlay, error) {
	if scale <= 0 {
		return nil, curated.Errorf("sdlplay: scale must be positive (%v)", scale)
	}

	scr := &SdlPlay{
		zx:     zx,
		fpsCap: fpsCap,
		scale:  scale,
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	w := int32(float32(ula.ScreenWidth+borderSize*2) * scale)
	h := int32(float32(ula.ScreenHeight+borderSize*2) * scale)

	// SDL window. the window is shown when the emulation starts
	scr.window, err = sdl.CreateWindow("ZX Spectrum",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		w, h,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// texture is the same size as the decoded screen. scaling is applied
	// when it is copied to the renderer
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(ula.ScreenWidth),
		int32(ula.ScreenHeight))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.screen = sdl.Rect{
		X: int32(float32(borderSize) * scale),
		Y: int32(float32(borderSize) * scale),
		W: int32(float32(ula.ScreenWidth) * scale),
		H: int32(float32(ula.ScreenHeight) * scale),
	}

	scr.snd, err = newSound()
	if err != nil {
		// the emulation can continue without sound
		logger.Logf(logger.Allow, "sdlplay", "no audio: %v", err)
		scr.snd = nil
	}

	scr.lmtr, err = limiter.NewFPSLimiter(clocks.FrameRate)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	return scr, nil
}

// Destroy releases all SDL resources. The SdlPlay instance can not be used
// afterwards.
func (scr *SdlPlay) Destroy() {
	scr.lmtr.Stop()
	if scr.snd != nil {
		scr.snd.close()
	}
	if err := scr.texture.Destroy(); err != nil {
		logger.Log(logger.Allow, "sdlplay", err.Error())
	}
	if err := scr.renderer.Destroy(); err != nil {
		logger.Log(logger.Allow, "sdlplay", err.Error())
	}
	if err := scr.window.Destroy(); err != nil {
		logger.Log(logger.Allow, "sdlplay", err.Error())
	}
	sdl.Quit()
}

// render the current state of the screen and the border to the window.
func (scr *SdlPlay) render() error {
	pixels, pitch, err := scr.texture.Lock(nil)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	src := scr.zx.DecodeVideo()
	if pitch == ula.ScreenWidth*ula.PixelDepth {
		copy(pixels, src)
	} else {
		for y := 0; y < ula.ScreenHeight; y++ {
			copy(pixels[y*pitch:], src[y*ula.ScreenWidth*ula.PixelDepth:(y+1)*ula.ScreenWidth*ula.PixelDepth])
		}
	}
	scr.texture.Unlock()

	border := scr.zx.ULA.Border().RGBA(false)
	err = scr.renderer.SetDrawColor(border.R, border.G, border.B, border.A)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	err = scr.renderer.Clear()
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	err = scr.renderer.Copy(scr.texture, nil, &scr.screen)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer.Present()

	return nil
}

// IsVisible returns true if the window is showing.
func (scr *SdlPlay) IsVisible() bool {
	flgs := scr.window.GetFlags()
	return flgs&sdl.WINDOW_SHOWN == sdl.WINDOW_SHOWN
}

func (scr *SdlPlay) showWindow(show bool) {
	if show {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
}
