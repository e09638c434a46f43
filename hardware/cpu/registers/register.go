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

package registers

import "fmt"

// Register is an eight bit register.
type Register struct {
	label string
	value uint8
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint8, label string) Register {
	return Register{
		label: label,
		value: val,
	}
}

// Label returns the canonical name for the register.
func (r Register) Label() string {
	return r.label
}

func (r Register) String() string {
	return fmt.Sprintf("%02x", r.value)
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Load a value into the register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// IsZero returns true if register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// IsNegative returns true if bit 7 of the register is set.
func (r Register) IsNegative() bool {
	return r.value&0x80 == 0x80
}

// Word is a sixteen bit register. The program counter, the stack pointer and
// the registers of the alternate set are Words.
type Word struct {
	label string
	value uint16
}

// NewWord is the preferred method of initialisation for Word.
func NewWord(val uint16, label string) Word {
	return Word{
		label: label,
		value: val,
	}
}

// Label returns the canonical name for the register.
func (w Word) Label() string {
	return w.label
}

func (w Word) String() string {
	return fmt.Sprintf("%04x", w.value)
}

// Value returns the current value of the register.
func (w Word) Value() uint16 {
	return w.value
}

// Load a value into the register.
func (w *Word) Load(val uint16) {
	w.value = val
}

// Add a signed value to the register. The result wraps at 16 bits.
func (w *Word) Add(v int) {
	w.value = uint16(int(w.value) + v)
}
