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

package instructions

import (
	"fmt"

	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/cpu/registers"
)

// Prefix identifies an opcode sub-table.
type Prefix int

// List of prefixes.
const (
	Unprefixed Prefix = iota
	CB
	DD
	ED
	FD
	DDCB
	FDCB
	numPrefixes
)

func (p Prefix) String() string {
	switch p {
	case Unprefixed:
		return ""
	case CB:
		return "cb"
	case DD:
		return "dd"
	case ED:
		return "ed"
	case FD:
		return "fd"
	case DDCB:
		return "ddcb"
	case FDCB:
		return "fdcb"
	}
	return "??"
}

// Condition is the condition code of a conditional instruction.
type Condition int

// List of conditions. Each condition tests exactly one flag.
const (
	Always Condition = iota
	NotZero
	Zero
	NoCarry
	Carry
	ParityOdd
	ParityEven
	Positive
	Minus
)

func (c Condition) String() string {
	switch c {
	case Always:
		return ""
	case NotZero:
		return "NZ"
	case Zero:
		return "Z"
	case NoCarry:
		return "NC"
	case Carry:
		return "C"
	case ParityOdd:
		return "PO"
	case ParityEven:
		return "PE"
	case Positive:
		return "P"
	case Minus:
		return "M"
	}
	return "??"
}

// Test returns true if the condition is met by the flags.
func (c Condition) Test(f registers.StatusRegister) bool {
	switch c {
	case NotZero:
		return !f.Zero
	case Zero:
		return f.Zero
	case NoCarry:
		return !f.Carry
	case Carry:
		return f.Carry
	case ParityOdd:
		return !f.ParityOverflow
	case ParityEven:
		return f.ParityOverflow
	case Positive:
		return !f.Sign
	case Minus:
		return f.Sign
	}
	return true
}

// Definition defines each instruction in the instruction set; one per
// instruction.
type Definition struct {
	Prefix   Prefix
	OpCode   uint8
	Mnemonic string

	// number of bytes in the instruction including prefix bytes
	Bytes int

	// cycles is the nominal cost of the instruction. for conditional
	// instructions and repeating block instructions the cost is different
	// when the condition is met (or the instruction repeats) and that cost is
	// in CyclesTaken. CyclesTaken is zero if the cost doesn't change
	Cycles      int
	CyclesTaken int

	Operator Operator
	Dst      Operand
	Src      Operand
	Cond     Condition

	// the bit number for BIT, RES and SET. the mode for IM. the vector for
	// RST
	Param uint16
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%s%02x %s +%dbytes (%d cycles)", defn.Prefix, defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles)
}

// IsConditional returns true if the cost of the instruction depends on a
// condition.
func (defn Definition) IsConditional() bool {
	return defn.CyclesTaken != 0
}
