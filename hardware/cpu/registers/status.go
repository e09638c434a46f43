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

import "strings"

// Flag identifies a bit in the flags register. The value of each Flag is the
// bit mask for that flag.
type Flag uint8

// List of flags in the flags register. FlagX and FlagY are the undocumented
// bits 3 and 5.
const (
	FlagC  Flag = 0x01
	FlagN  Flag = 0x02
	FlagPV Flag = 0x04
	FlagX  Flag = 0x08
	FlagH  Flag = 0x10
	FlagY  Flag = 0x20
	FlagZ  Flag = 0x40
	FlagS  Flag = 0x80
)

// StatusRegister is the F register of the Z80.
type StatusRegister struct {
	Sign           bool
	Zero           bool
	Y              bool
	HalfCarry      bool
	X              bool
	ParityOverflow bool
	Subtract       bool
	Carry          bool
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "F"
}

// String returns the status register as a string of flag letters. Set flags
// are upper case and clear flags are lower case. The undocumented bits show as
// a digit when set and as a dash when clear.
//
// For example, "sZ-h-Pnc" shows the Zero and ParityOverflow flags set.
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(v bool, set byte, clear byte) {
		if v {
			s.WriteByte(set)
		} else {
			s.WriteByte(clear)
		}
	}

	flag(sr.Sign, 'S', 's')
	flag(sr.Zero, 'Z', 'z')
	flag(sr.Y, '5', '-')
	flag(sr.HalfCarry, 'H', 'h')
	flag(sr.X, '3', '-')
	flag(sr.ParityOverflow, 'P', 'p')
	flag(sr.Subtract, 'N', 'n')
	flag(sr.Carry, 'C', 'c')

	return s.String()
}

// Reset clears all flags.
func (sr *StatusRegister) Reset() {
	sr.Load(0)
}

// Value converts the StatusRegister to an eight bit value.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	set := func(b bool, f Flag) {
		if b {
			v |= uint8(f)
		}
	}

	set(sr.Sign, FlagS)
	set(sr.Zero, FlagZ)
	set(sr.Y, FlagY)
	set(sr.HalfCarry, FlagH)
	set(sr.X, FlagX)
	set(sr.ParityOverflow, FlagPV)
	set(sr.Subtract, FlagN)
	set(sr.Carry, FlagC)

	return v
}

// Load an eight bit value into the StatusRegister.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&uint8(FlagS) != 0
	sr.Zero = v&uint8(FlagZ) != 0
	sr.Y = v&uint8(FlagY) != 0
	sr.HalfCarry = v&uint8(FlagH) != 0
	sr.X = v&uint8(FlagX) != 0
	sr.ParityOverflow = v&uint8(FlagPV) != 0
	sr.Subtract = v&uint8(FlagN) != 0
	sr.Carry = v&uint8(FlagC) != 0
}

// SetUndocumented sets the X and Y flags from bits 3 and 5 of the value.
func (sr *StatusRegister) SetUndocumented(v uint8) {
	sr.X = v&uint8(FlagX) != 0
	sr.Y = v&uint8(FlagY) != 0
}
