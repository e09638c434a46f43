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

package cpu

import (
	"math/bits"

	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/cpu/instructions"
)

// flag arithmetic for the arithmetic and logic instructions. every function
// sets all documented flags affected by the instruction. the undocumented X
// and Y flags are copied from the result unless noted otherwise

func parity(v uint8) bool {
	return bits.OnesCount8(v)%2 == 0
}

// szp sets the sign, zero and parity flags from the value
func (mc *CPU) szp(v uint8) {
	f := &mc.Regs.F
	f.Sign = v&0x80 == 0x80
	f.Zero = v == 0
	f.ParityOverflow = parity(v)
	f.SetUndocumented(v)
}

// add8 is used for ADD and ADC.
func (mc *CPU) add8(a uint8, b uint8, carry bool) uint8 {
	var c uint16
	if carry {
		c = 1
	}
	r16 := uint16(a) + uint16(b) + c
	r := uint8(r16)

	f := &mc.Regs.F
	f.Sign = r&0x80 == 0x80
	f.Zero = r == 0
	f.HalfCarry = (a^b^r)&0x10 == 0x10
	f.ParityOverflow = (^(a ^ b))&(a^r)&0x80 == 0x80
	f.Subtract = false
	f.Carry = r16 > 0xff
	f.SetUndocumented(r)

	return r
}

// sub8 is used for SUB, SBC, CP and NEG.
func (mc *CPU) sub8(a uint8, b uint8, carry bool) uint8 {
	var c int
	if carry {
		c = 1
	}
	ri := int(a) - int(b) - c
	r := uint8(ri)

	f := &mc.Regs.F
	f.Sign = r&0x80 == 0x80
	f.Zero = r == 0
	f.HalfCarry = (a^b^r)&0x10 == 0x10
	f.ParityOverflow = (a^b)&(a^r)&0x80 == 0x80
	f.Subtract = true
	f.Carry = ri < 0
	f.SetUndocumented(r)

	return r
}

// cp8 sets the flags in the same way as SUB but the result is discarded. the
// X and Y flags are copied from the operand, not the result.
func (mc *CPU) cp8(a uint8, b uint8) {
	mc.sub8(a, b, false)
	mc.Regs.F.SetUndocumented(b)
}

func (mc *CPU) and8(a uint8, b uint8) uint8 {
	r := a & b
	mc.szp(r)
	mc.Regs.F.HalfCarry = true
	mc.Regs.F.Subtract = false
	mc.Regs.F.Carry = false
	return r
}

func (mc *CPU) or8(a uint8, b uint8) uint8 {
	r := a | b
	mc.szp(r)
	mc.Regs.F.HalfCarry = false
	mc.Regs.F.Subtract = false
	mc.Regs.F.Carry = false
	return r
}

func (mc *CPU) xor8(a uint8, b uint8) uint8 {
	r := a ^ b
	mc.szp(r)
	mc.Regs.F.HalfCarry = false
	mc.Regs.F.Subtract = false
	mc.Regs.F.Carry = false
	return r
}

// inc8 does not change the carry flag.
func (mc *CPU) inc8(v uint8) uint8 {
	r := v + 1
	f := &mc.Regs.F
	f.Sign = r&0x80 == 0x80
	f.Zero = r == 0
	f.HalfCarry = v&0x0f == 0x0f
	f.ParityOverflow = v == 0x7f
	f.Subtract = false
	f.SetUndocumented(r)
	return r
}

// dec8 does not change the carry flag.
func (mc *CPU) dec8(v uint8) uint8 {
	r := v - 1
	f := &mc.Regs.F
	f.Sign = r&0x80 == 0x80
	f.Zero = r == 0
	f.HalfCarry = v&0x0f == 0x00
	f.ParityOverflow = v == 0x80
	f.Subtract = true
	f.SetUndocumented(r)
	return r
}

// add16 is used for ADD HL. the sign, zero and parity flags are not changed.
// the half-carry flag is the carry from bit 11.
func (mc *CPU) add16(a uint16, b uint16) uint16 {
	r32 := uint32(a) + uint32(b)
	r := uint16(r32)

	f := &mc.Regs.F
	f.HalfCarry = (a^b^r)&0x1000 == 0x1000
	f.Subtract = false
	f.Carry = r32 > 0xffff
	f.SetUndocumented(uint8(r >> 8))

	return r
}

func (mc *CPU) adc16(a uint16, b uint16) uint16 {
	var c uint32
	if mc.Regs.F.Carry {
		c = 1
	}
	r32 := uint32(a) + uint32(b) + c
	r := uint16(r32)

	f := &mc.Regs.F
	f.Sign = r&0x8000 == 0x8000
	f.Zero = r == 0
	f.HalfCarry = (a^b^r)&0x1000 == 0x1000
	f.ParityOverflow = (^(a ^ b))&(a^r)&0x8000 == 0x8000
	f.Subtract = false
	f.Carry = r32 > 0xffff
	f.SetUndocumented(uint8(r >> 8))

	return r
}

func (mc *CPU) sbc16(a uint16, b uint16) uint16 {
	var c int
	if mc.Regs.F.Carry {
		c = 1
	}
	ri := int(a) - int(b) - c
	r := uint16(ri)

	f := &mc.Regs.F
	f.Sign = r&0x8000 == 0x8000
	f.Zero = r == 0
	f.HalfCarry = (a^b^r)&0x1000 == 0x1000
	f.ParityOverflow = (a^b)&(a^r)&0x8000 == 0x8000
	f.Subtract = true
	f.Carry = ri < 0
	f.SetUndocumented(uint8(r >> 8))

	return r
}

// rotate performs the CB prefixed rotate and shift instructions.
func (mc *CPU) rotate(op instructions.Operator, v uint8) uint8 {
	var r uint8
	var carry bool

	var cin uint8
	if mc.Regs.F.Carry {
		cin = 1
	}

	switch op {
	case instructions.Rlc:
		carry = v&0x80 == 0x80
		r = v<<1 | v>>7
	case instructions.Rrc:
		carry = v&0x01 == 0x01
		r = v>>1 | v<<7
	case instructions.Rl:
		carry = v&0x80 == 0x80
		r = v<<1 | cin
	case instructions.Rr:
		carry = v&0x01 == 0x01
		r = v>>1 | cin<<7
	case instructions.Sla:
		carry = v&0x80 == 0x80
		r = v << 1
	case instructions.Sra:
		carry = v&0x01 == 0x01
		r = v>>1 | v&0x80
	case instructions.Sll:
		carry = v&0x80 == 0x80
		r = v<<1 | 0x01
	case instructions.Srl:
		carry = v&0x01 == 0x01
		r = v >> 1
	}

	mc.szp(r)
	mc.Regs.F.HalfCarry = false
	mc.Regs.F.Subtract = false
	mc.Regs.F.Carry = carry

	return r
}

// rotateA performs RLCA, RRCA, RLA and RRA. these are faster versions of the
// CB instructions for the accumulator that leave the sign, zero and parity
// flags unchanged.
func (mc *CPU) rotateA(op instructions.Operator) {
	f := mc.Regs.F

	var r uint8
	switch op {
	case instructions.Rlca:
		r = mc.rotate(instructions.Rlc, mc.Regs.A.Value())
	case instructions.Rrca:
		r = mc.rotate(instructions.Rrc, mc.Regs.A.Value())
	case instructions.Rla:
		r = mc.rotate(instructions.Rl, mc.Regs.A.Value())
	case instructions.Rra:
		r = mc.rotate(instructions.Rr, mc.Regs.A.Value())
	}

	mc.Regs.F.Sign = f.Sign
	mc.Regs.F.Zero = f.Zero
	mc.Regs.F.ParityOverflow = f.ParityOverflow
	mc.Regs.A.Load(r)
}

// bit tests a bit of the value. the zero and parity flags are both set if the
// bit is clear.
func (mc *CPU) bit(b uint16, v uint8) {
	set := v&(1<<b) != 0
	f := &mc.Regs.F
	f.Sign = b == 7 && set
	f.Zero = !set
	f.ParityOverflow = !set
	f.HalfCarry = true
	f.Subtract = false
	f.SetUndocumented(v)
}

func (mc *CPU) daa() {
	a := mc.Regs.A.Value()
	f := &mc.Regs.F

	var correction uint8
	carry := f.Carry

	if f.HalfCarry || a&0x0f > 0x09 {
		correction |= 0x06
	}
	if f.Carry || a > 0x99 {
		correction |= 0x60
		carry = true
	}

	var r uint8
	if f.Subtract {
		f.HalfCarry = f.HalfCarry && a&0x0f < 0x06
		r = a - correction
	} else {
		f.HalfCarry = a&0x0f > 0x09
		r = a + correction
	}

	mc.szp(r)
	f.Carry = carry
	mc.Regs.A.Load(r)
}

func (mc *CPU) cpl() {
	r := ^mc.Regs.A.Value()
	mc.Regs.A.Load(r)
	mc.Regs.F.HalfCarry = true
	mc.Regs.F.Subtract = true
	mc.Regs.F.SetUndocumented(r)
}

func (mc *CPU) scf() {
	mc.Regs.F.Carry = true
	mc.Regs.F.HalfCarry = false
	mc.Regs.F.Subtract = false
	mc.Regs.F.SetUndocumented(mc.Regs.A.Value())
}

// ccf sets the half-carry flag to the previous value of the carry flag.
func (mc *CPU) ccf() {
	mc.Regs.F.HalfCarry = mc.Regs.F.Carry
	mc.Regs.F.Carry = !mc.Regs.F.Carry
	mc.Regs.F.Subtract = false
	mc.Regs.F.SetUndocumented(mc.Regs.A.Value())
}

// rrd and rld rotate nibbles between the accumulator and memory.
func (mc *CPU) rrd() {
	hl := mc.Regs.HL()
	m := mc.mem.Read(hl)
	a := mc.Regs.A.Value()
	mc.mem.Write(hl, a<<4|m>>4)
	a = a&0xf0 | m&0x0f
	mc.Regs.A.Load(a)
	mc.szp(a)
	mc.Regs.F.HalfCarry = false
	mc.Regs.F.Subtract = false
}

func (mc *CPU) rld() {
	hl := mc.Regs.HL()
	m := mc.mem.Read(hl)
	a := mc.Regs.A.Value()
	mc.mem.Write(hl, m<<4|a&0x0f)
	a = a&0xf0 | m>>4
	mc.Regs.A.Load(a)
	mc.szp(a)
	mc.Regs.F.HalfCarry = false
	mc.Regs.F.Subtract = false
}
