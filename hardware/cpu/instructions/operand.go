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

import "github.com/OhhJordy/ZX-Spectrum-Emu/hardware/cpu/registers"

// OperandKind describes how the data for an operand is located.
type OperandKind int

// List of operand kinds.
const (
	NoOperand OperandKind = iota

	Register8  // eight bit register
	Register16 // sixteen bit register or register pair

	Immediate8  // n
	Immediate16 // nn

	Indirect      // memory addressed by a register pair: (BC) (DE) (HL) (SP)
	Indexed       // memory addressed by an index register plus displacement: (IX+d)
	Absolute      // memory addressed by an immediate word: (nn)
	PortImmediate // port addressed by A and an immediate byte: (n)
	PortRegister  // port addressed by BC: (C)
	Relative      // signed displacement from the program counter: e
)

// Operand is one of the two operands of an instruction.
type Operand struct {
	Kind  OperandKind
	Reg8  registers.Reg8
	Reg16 registers.Reg16
}

// List of operands used in the instruction definitions.
var (
	A   = Operand{Kind: Register8, Reg8: registers.RegA}
	B   = Operand{Kind: Register8, Reg8: registers.RegB}
	C   = Operand{Kind: Register8, Reg8: registers.RegC}
	D   = Operand{Kind: Register8, Reg8: registers.RegD}
	E   = Operand{Kind: Register8, Reg8: registers.RegE}
	H   = Operand{Kind: Register8, Reg8: registers.RegH}
	L   = Operand{Kind: Register8, Reg8: registers.RegL}
	I   = Operand{Kind: Register8, Reg8: registers.RegI}
	R   = Operand{Kind: Register8, Reg8: registers.RegR}
	IXH = Operand{Kind: Register8, Reg8: registers.RegIXH}
	IXL = Operand{Kind: Register8, Reg8: registers.RegIXL}
	IYH = Operand{Kind: Register8, Reg8: registers.RegIYH}
	IYL = Operand{Kind: Register8, Reg8: registers.RegIYL}

	AF = Operand{Kind: Register16, Reg16: registers.RegAF}
	BC = Operand{Kind: Register16, Reg16: registers.RegBC}
	DE = Operand{Kind: Register16, Reg16: registers.RegDE}
	HL = Operand{Kind: Register16, Reg16: registers.RegHL}
	SP = Operand{Kind: Register16, Reg16: registers.RegSP}
	IX = Operand{Kind: Register16, Reg16: registers.RegIX}
	IY = Operand{Kind: Register16, Reg16: registers.RegIY}

	N  = Operand{Kind: Immediate8}
	NN = Operand{Kind: Immediate16}

	IndBC = Operand{Kind: Indirect, Reg16: registers.RegBC}
	IndDE = Operand{Kind: Indirect, Reg16: registers.RegDE}
	IndHL = Operand{Kind: Indirect, Reg16: registers.RegHL}
	IndSP = Operand{Kind: Indirect, Reg16: registers.RegSP}
	IndIX = Operand{Kind: Indexed, Reg16: registers.RegIX}
	IndIY = Operand{Kind: Indexed, Reg16: registers.RegIY}
	IndNN = Operand{Kind: Absolute}

	PortN = Operand{Kind: PortImmediate}
	PortC = Operand{Kind: PortRegister}

	Rel = Operand{Kind: Relative}
)

func (op Operand) String() string {
	switch op.Kind {
	case NoOperand:
		return ""
	case Register8:
		return op.Reg8.String()
	case Register16:
		return op.Reg16.String()
	case Immediate8:
		return "n"
	case Immediate16:
		return "nn"
	case Indirect:
		return "(" + op.Reg16.String() + ")"
	case Indexed:
		return "(" + op.Reg16.String() + "+d)"
	case Absolute:
		return "(nn)"
	case PortImmediate:
		return "(n)"
	case PortRegister:
		return "(C)"
	case Relative:
		return "e"
	}
	return "?"
}

// IsMemory returns true if the operand refers to a memory location.
func (op Operand) IsMemory() bool {
	return op.Kind == Indirect || op.Kind == Indexed || op.Kind == Absolute
}
