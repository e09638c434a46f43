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

// Reg8 identifies an eight bit register.
type Reg8 int

// List of eight bit register identities.
const (
	RegA Reg8 = iota
	RegF
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
	RegIXH
	RegIXL
	RegIYH
	RegIYL
	RegI
	RegR
)

// Reg16 identifies a sixteen bit register or register pair.
type Reg16 int

// List of sixteen bit register identities.
const (
	RegAF Reg16 = iota
	RegBC
	RegDE
	RegHL
	RegIX
	RegIY
	RegSP
	RegPC
)

func (r Reg8) String() string {
	switch r {
	case RegA:
		return "A"
	case RegF:
		return "F"
	case RegB:
		return "B"
	case RegC:
		return "C"
	case RegD:
		return "D"
	case RegE:
		return "E"
	case RegH:
		return "H"
	case RegL:
		return "L"
	case RegIXH:
		return "IXH"
	case RegIXL:
		return "IXL"
	case RegIYH:
		return "IYH"
	case RegIYL:
		return "IYL"
	case RegI:
		return "I"
	case RegR:
		return "R"
	}
	return fmt.Sprintf("unknown register (%d)", int(r))
}

func (r Reg16) String() string {
	switch r {
	case RegAF:
		return "AF"
	case RegBC:
		return "BC"
	case RegDE:
		return "DE"
	case RegHL:
		return "HL"
	case RegIX:
		return "IX"
	case RegIY:
		return "IY"
	case RegSP:
		return "SP"
	case RegPC:
		return "PC"
	}
	return fmt.Sprintf("unknown register pair (%d)", int(r))
}

// File is the complete register file of the Z80.
type File struct {
	A Register
	F StatusRegister
	B Register
	C Register
	D Register
	E Register
	H Register
	L Register

	IXH Register
	IXL Register
	IYH Register
	IYL Register

	I Register
	R Register

	SP Word
	PC Word

	// the alternate register set. the alternate registers can't be used
	// directly by any instruction, only exchanged with the main set
	AltAF Word
	AltBC Word
	AltDE Word
	AltHL Word
}

// NewFile is the preferred method of initialisation for the File type. The
// registers are in the reset state.
func NewFile() *File {
	rf := &File{
		A:     NewRegister(0, "A"),
		B:     NewRegister(0, "B"),
		C:     NewRegister(0, "C"),
		D:     NewRegister(0, "D"),
		E:     NewRegister(0, "E"),
		H:     NewRegister(0, "H"),
		L:     NewRegister(0, "L"),
		IXH:   NewRegister(0, "IXH"),
		IXL:   NewRegister(0, "IXL"),
		IYH:   NewRegister(0, "IYH"),
		IYL:   NewRegister(0, "IYL"),
		I:     NewRegister(0, "I"),
		R:     NewRegister(0, "R"),
		SP:    NewWord(0, "SP"),
		PC:    NewWord(0, "PC"),
		AltAF: NewWord(0, "AF'"),
		AltBC: NewWord(0, "BC'"),
		AltDE: NewWord(0, "DE'"),
		AltHL: NewWord(0, "HL'"),
	}
	rf.Reset()
	return rf
}

// ResetSP is the value of the stack pointer after a reset.
const ResetSP = 0xffff

// Reset all registers to their power-on values. Every register is zero except
// the stack pointer, which is set to the top of memory.
func (rf *File) Reset() {
	for _, r := range []*Register{&rf.A, &rf.B, &rf.C, &rf.D, &rf.E, &rf.H, &rf.L,
		&rf.IXH, &rf.IXL, &rf.IYH, &rf.IYL, &rf.I, &rf.R} {
		r.Load(0)
	}
	rf.F.Reset()
	rf.PC.Load(0)
	rf.SP.Load(ResetSP)
	rf.AltAF.Load(0)
	rf.AltBC.Load(0)
	rf.AltDE.Load(0)
	rf.AltHL.Load(0)
}

func (rf *File) String() string {
	return fmt.Sprintf("PC=%s SP=%s AF=%04x BC=%04x DE=%04x HL=%04x IX=%04x IY=%04x I=%s R=%s F=%s",
		rf.PC, rf.SP, rf.AF(), rf.BC(), rf.DE(), rf.HL(), rf.IX(), rf.IY(), rf.I, rf.R, rf.F)
}

func pair(hi, lo Register) uint16 {
	return uint16(hi.value)<<8 | uint16(lo.value)
}

// AF returns the value of the AF register pair.
func (rf *File) AF() uint16 {
	return uint16(rf.A.value)<<8 | uint16(rf.F.Value())
}

// BC returns the value of the BC register pair.
func (rf *File) BC() uint16 {
	return pair(rf.B, rf.C)
}

// DE returns the value of the DE register pair.
func (rf *File) DE() uint16 {
	return pair(rf.D, rf.E)
}

// HL returns the value of the HL register pair.
func (rf *File) HL() uint16 {
	return pair(rf.H, rf.L)
}

// IX returns the value of the IX index register.
func (rf *File) IX() uint16 {
	return pair(rf.IXH, rf.IXL)
}

// IY returns the value of the IY index register.
func (rf *File) IY() uint16 {
	return pair(rf.IYH, rf.IYL)
}

// reg8 returns the storage for an eight bit register. Returns nil for the F
// register, which has no Register storage.
func (rf *File) reg8(r Reg8) *Register {
	switch r {
	case RegA:
		return &rf.A
	case RegB:
		return &rf.B
	case RegC:
		return &rf.C
	case RegD:
		return &rf.D
	case RegE:
		return &rf.E
	case RegH:
		return &rf.H
	case RegL:
		return &rf.L
	case RegIXH:
		return &rf.IXH
	case RegIXL:
		return &rf.IXL
	case RegIYH:
		return &rf.IYH
	case RegIYL:
		return &rf.IYL
	case RegI:
		return &rf.I
	case RegR:
		return &rf.R
	}
	return nil
}

// Get8 returns the value of the identified eight bit register.
func (rf *File) Get8(r Reg8) uint8 {
	if r == RegF {
		return rf.F.Value()
	}
	if reg := rf.reg8(r); reg != nil {
		return reg.value
	}
	return 0
}

// Set8 loads a value into the identified eight bit register.
func (rf *File) Set8(r Reg8, v uint8) {
	if r == RegF {
		rf.F.Load(v)
		return
	}
	if reg := rf.reg8(r); reg != nil {
		reg.value = v
	}
}

// halves returns the identities of the high and low registers of a pair.
// Returns false for registers that are not pairs.
func halves(r Reg16) (Reg8, Reg8, bool) {
	switch r {
	case RegAF:
		return RegA, RegF, true
	case RegBC:
		return RegB, RegC, true
	case RegDE:
		return RegD, RegE, true
	case RegHL:
		return RegH, RegL, true
	case RegIX:
		return RegIXH, RegIXL, true
	case RegIY:
		return RegIYH, RegIYL, true
	}
	return 0, 0, false
}

// Get16 returns the value of the identified sixteen bit register.
func (rf *File) Get16(r Reg16) uint16 {
	switch r {
	case RegSP:
		return rf.SP.value
	case RegPC:
		return rf.PC.value
	}
	hi, lo, ok := halves(r)
	if !ok {
		return 0
	}
	return uint16(rf.Get8(hi))<<8 | uint16(rf.Get8(lo))
}

// Set16 loads a value into the identified sixteen bit register. For register
// pairs the high byte is loaded into the first register of the pair.
func (rf *File) Set16(r Reg16, v uint16) {
	switch r {
	case RegSP:
		rf.SP.value = v
		return
	case RegPC:
		rf.PC.value = v
		return
	}
	hi, lo, ok := halves(r)
	if !ok {
		return
	}
	rf.Set8(hi, uint8(v>>8))
	rf.Set8(lo, uint8(v))
}

// Flag returns the state of the identified flag.
func (rf *File) Flag(f Flag) bool {
	return rf.F.Value()&uint8(f) == uint8(f)
}

// SetFlag sets or clears the identified flag.
func (rf *File) SetFlag(f Flag, v bool) {
	n := rf.F.Value()
	if v {
		n |= uint8(f)
	} else {
		n &^= uint8(f)
	}
	rf.F.Load(n)
}

// ExchangeAF swaps AF with the alternate AF'.
func (rf *File) ExchangeAF() {
	af := rf.AF()
	rf.Set16(RegAF, rf.AltAF.value)
	rf.AltAF.value = af
}

// Exchange swaps BC, DE and HL with the alternate registers.
func (rf *File) Exchange() {
	bc, de, hl := rf.BC(), rf.DE(), rf.HL()
	rf.Set16(RegBC, rf.AltBC.value)
	rf.Set16(RegDE, rf.AltDE.value)
	rf.Set16(RegHL, rf.AltHL.value)
	rf.AltBC.value = bc
	rf.AltDE.value = de
	rf.AltHL.value = hl
}

// IncrementR increments the lower seven bits of the memory refresh register.
// Bit 7 is left unchanged.
func (rf *File) IncrementR() {
	rf.R.value = (rf.R.value & 0x80) | ((rf.R.value + 1) & 0x7f)
}
