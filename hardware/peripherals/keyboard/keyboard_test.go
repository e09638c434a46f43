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

package keyboard_test

import (
	"testing"

	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/peripherals/keyboard"
	"github.com/OhhJordy/ZX-Spectrum-Emu/test"
)

func TestMatrix(t *testing.T) {
	kb := keyboard.NewKeyboard()

	// nothing pressed
	test.ExpectEquality(t, kb.Read(0x00), uint8(0xff))

	// A is the first key in the second half-row
	test.ExpectSuccess(t, kb.HandleEvent(keyboard.A, true))
	test.ExpectEquality(t, kb.IsPressed(keyboard.A), true)
	test.ExpectEquality(t, kb.Read(0xfd), uint8(0xfe))
	test.ExpectEquality(t, kb.Read(0xfe), uint8(0xff))

	// B is the last key in the eighth half-row
	test.ExpectSuccess(t, kb.HandleEvent(keyboard.B, true))
	test.ExpectEquality(t, kb.Read(0x7f), uint8(0xef))

	// selecting more than one half-row combines the results
	test.ExpectEquality(t, kb.Read(0x7d), uint8(0xee))
	test.ExpectEquality(t, kb.Read(0x00), uint8(0xee))

	test.ExpectSuccess(t, kb.HandleEvent(keyboard.A, false))
	test.ExpectEquality(t, kb.Read(0xfd), uint8(0xff))

	kb.Reset()
	test.ExpectEquality(t, kb.Read(0x00), uint8(0xff))

	test.ExpectFailure(t, kb.HandleEvent(keyboard.Key(100), true))
}

func TestNames(t *testing.T) {
	k, err := keyboard.KeyByName("symbol shift")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, keyboard.SymbolShift)

	row, bit := k.Row()
	test.ExpectEquality(t, row, 7)
	test.ExpectEquality(t, bit, 1)

	test.ExpectEquality(t, keyboard.Enter.String(), "ENTER")

	_, err = keyboard.KeyByName("F1")
	test.ExpectFailure(t, err)
}
