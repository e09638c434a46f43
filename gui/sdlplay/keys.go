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
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/peripherals/keyboard"

	"github.com/veandco/go-sdl2/sdl"
)

// the keys of the host keyboard in the layout of the keyboard matrix. some
// host keys are conveniences that press more than one key on the Spectrum
var keyMap = map[sdl.Scancode][]keyboard.Key{
	sdl.SCANCODE_LSHIFT: {keyboard.CapsShift},
	sdl.SCANCODE_Z:      {keyboard.Z},
	sdl.SCANCODE_X:      {keyboard.X},
	sdl.SCANCODE_C:      {keyboard.C},
	sdl.SCANCODE_V:      {keyboard.V},

	sdl.SCANCODE_A: {keyboard.A},
	sdl.SCANCODE_S: {keyboard.S},
	sdl.SCANCODE_D: {keyboard.D},
	sdl.SCANCODE_F: {keyboard.F},
	sdl.SCANCODE_G: {keyboard.G},

	sdl.SCANCODE_Q: {keyboard.Q},
	sdl.SCANCODE_W: {keyboard.W},
	sdl.SCANCODE_E: {keyboard.E},
	sdl.SCANCODE_R: {keyboard.R},
	sdl.SCANCODE_T: {keyboard.T},

	sdl.SCANCODE_1: {keyboard.One},
	sdl.SCANCODE_2: {keyboard.Two},
	sdl.SCANCODE_3: {keyboard.Three},
	sdl.SCANCODE_4: {keyboard.Four},
	sdl.SCANCODE_5: {keyboard.Five},

	sdl.SCANCODE_0: {keyboard.Zero},
	sdl.SCANCODE_9: {keyboard.Nine},
	sdl.SCANCODE_8: {keyboard.Eight},
	sdl.SCANCODE_7: {keyboard.Seven},
	sdl.SCANCODE_6: {keyboard.Six},

	sdl.SCANCODE_P: {keyboard.P},
	sdl.SCANCODE_O: {keyboard.O},
	sdl.SCANCODE_I: {keyboard.I},
	sdl.SCANCODE_U: {keyboard.U},
	sdl.SCANCODE_Y: {keyboard.Y},

	sdl.SCANCODE_RETURN: {keyboard.Enter},
	sdl.SCANCODE_L:      {keyboard.L},
	sdl.SCANCODE_K:      {keyboard.K},
	sdl.SCANCODE_J:      {keyboard.J},
	sdl.SCANCODE_H:      {keyboard.H},

	sdl.SCANCODE_SPACE:  {keyboard.Space},
	sdl.SCANCODE_RSHIFT: {keyboard.SymbolShift},
	sdl.SCANCODE_M:      {keyboard.M},
	sdl.SCANCODE_N:      {keyboard.N},
	sdl.SCANCODE_B:      {keyboard.B},

	// conveniences
	sdl.SCANCODE_LCTRL:     {keyboard.SymbolShift},
	sdl.SCANCODE_RCTRL:     {keyboard.SymbolShift},
	sdl.SCANCODE_BACKSPACE: {keyboard.CapsShift, keyboard.Zero},
	sdl.SCANCODE_LEFT:      {keyboard.CapsShift, keyboard.Five},
	sdl.SCANCODE_DOWN:      {keyboard.CapsShift, keyboard.Six},
	sdl.SCANCODE_UP:        {keyboard.CapsShift, keyboard.Seven},
	sdl.SCANCODE_RIGHT:     {keyboard.CapsShift, keyboard.Eight},
}

// translate a host key event into key matrix events. returns false if the
// host key has no equivalent.
func (scr *SdlPlay) handleKey(code sdl.Scancode, down bool) (bool, error) {
	keys, ok := keyMap[code]
	if !ok {
		return false, nil
	}

	for _, k := range keys {
		if err := scr.zx.Keyboard.HandleEvent(k, down); err != nil {
			return true, err
		}
	}

	return true, nil
}
