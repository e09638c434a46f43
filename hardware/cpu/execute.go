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
	"github.com/OhhJordy/ZX-Spectrum-Emu/curated"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/cpu/instructions"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/cpu/registers"
)

// execute the instruction. the prefix and opcode bytes have been read. any
// other bytes are read as the operands are resolved
func (mc *CPU) execute(defn *instructions.Definition) error {
	dst := mc.resolve(defn.Dst)
	src := mc.resolve(defn.Src)

	f := &mc.Regs.F

	switch defn.Operator {
	case instructions.Nop:

	case instructions.Ld:
		v := mc.read8(src)
		mc.write8(dst, v)

		// LD A,I and LD A,R are the only loads that affect the flags
		if defn.Dst == instructions.A && (defn.Src == instructions.I || defn.Src == instructions.R) {
			f.Sign = v&0x80 == 0x80
			f.Zero = v == 0
			f.HalfCarry = false
			f.Subtract = false
			f.ParityOverflow = mc.IFF2
			f.SetUndocumented(v)
		}

	case instructions.Ld16:
		mc.write16(dst, mc.read16(src))

	case instructions.Push:
		mc.push16(mc.read16(src))

	case instructions.Pop:
		mc.write16(dst, mc.pop16())

	case instructions.Ex:
		a := mc.read16(dst)
		mc.write16(dst, mc.read16(src))
		mc.write16(src, a)

	case instructions.ExSP:
		v := mc.read16(dst)
		mc.write16(dst, mc.read16(src))
		mc.write16(src, v)

	case instructions.ExAF:
		mc.Regs.ExchangeAF()

	case instructions.Exx:
		mc.Regs.Exchange()

	case instructions.Add:
		mc.write8(dst, mc.add8(mc.read8(dst), mc.read8(src), false))

	case instructions.Adc:
		mc.write8(dst, mc.add8(mc.read8(dst), mc.read8(src), f.Carry))

	case instructions.Sub:
		mc.write8(dst, mc.sub8(mc.read8(dst), mc.read8(src), false))

	case instructions.Sbc:
		mc.write8(dst, mc.sub8(mc.read8(dst), mc.read8(src), f.Carry))

	case instructions.And:
		mc.write8(dst, mc.and8(mc.read8(dst), mc.read8(src)))

	case instructions.Xor:
		mc.write8(dst, mc.xor8(mc.read8(dst), mc.read8(src)))

	case instructions.Or:
		mc.write8(dst, mc.or8(mc.read8(dst), mc.read8(src)))

	case instructions.Cp:
		mc.cp8(mc.read8(dst), mc.read8(src))

	case instructions.Inc:
		mc.write8(dst, mc.inc8(mc.read8(dst)))

	case instructions.Dec:
		mc.write8(dst, mc.dec8(mc.read8(dst)))

	case instructions.Add16:
		mc.write16(dst, mc.add16(mc.read16(dst), mc.read16(src)))

	case instructions.Adc16:
		mc.write16(dst, mc.adc16(mc.read16(dst), mc.read16(src)))

	case instructions.Sbc16:
		mc.write16(dst, mc.sbc16(mc.read16(dst), mc.read16(src)))

	case instructions.Inc16:
		mc.write16(dst, mc.read16(dst)+1)

	case instructions.Dec16:
		mc.write16(dst, mc.read16(dst)-1)

	case instructions.Rlca, instructions.Rrca, instructions.Rla, instructions.Rra:
		mc.rotateA(defn.Operator)

	case instructions.Daa:
		mc.daa()

	case instructions.Cpl:
		mc.cpl()

	case instructions.Scf:
		mc.scf()

	case instructions.Ccf:
		mc.ccf()

	case instructions.Neg:
		mc.Regs.A.Load(mc.sub8(0, mc.Regs.A.Value(), false))

	case instructions.Rlc, instructions.Rrc, instructions.Rl, instructions.Rr,
		instructions.Sla, instructions.Sra, instructions.Sll, instructions.Srl:
		v := mc.rotate(defn.Operator, mc.read8(src))
		mc.write8(src, v)
		mc.write8(dst, v)

	case instructions.Bit:
		mc.bit(defn.Param, mc.read8(src))

	case instructions.Res:
		v := mc.read8(src) &^ (1 << defn.Param)
		mc.write8(src, v)
		mc.write8(dst, v)

	case instructions.Set:
		v := mc.read8(src) | (1 << defn.Param)
		mc.write8(src, v)
		mc.write8(dst, v)

	case instructions.Rrd:
		mc.rrd()

	case instructions.Rld:
		mc.rld()

	case instructions.Jp:
		target := mc.read16(src)
		if defn.Cond.Test(*f) {
			mc.LastResult.Taken = true
			mc.Regs.PC.Load(target)
		}

	case instructions.Jr:
		// the displacement is relative to the address following the
		// displacement byte, which has already been read
		if defn.Cond.Test(*f) {
			mc.LastResult.Taken = true
			mc.Regs.PC.Add(int(int16(src.value)))
		}

	case instructions.Djnz:
		mc.Regs.B.Load(mc.Regs.B.Value() - 1)
		if !mc.Regs.B.IsZero() {
			mc.LastResult.Taken = true
			mc.Regs.PC.Add(int(int16(src.value)))
		}

	case instructions.Call:
		target := mc.read16(src)
		if defn.Cond.Test(*f) {
			mc.LastResult.Taken = true
			mc.push16(mc.Regs.PC.Value())
			mc.Regs.PC.Load(target)
		}

	case instructions.Ret:
		if defn.Cond.Test(*f) {
			mc.LastResult.Taken = true
			mc.Regs.PC.Load(mc.pop16())
		}

	case instructions.Reti, instructions.Retn:
		mc.IFF1 = mc.IFF2
		mc.Regs.PC.Load(mc.pop16())

	case instructions.Rst:
		mc.push16(mc.Regs.PC.Value())
		mc.Regs.PC.Load(defn.Param)

	case instructions.Halt:
		mc.Halted = true

	case instructions.Di:
		mc.IFF1 = false
		mc.IFF2 = false

	case instructions.Ei:
		mc.IFF1 = true
		mc.IFF2 = true
		mc.interrupts.eiBlock = true

	case instructions.Im:
		mc.IM = uint8(defn.Param)

	case instructions.In:
		v := mc.read8(src)
		mc.write8(dst, v)

		// IN A,(n) does not affect the flags
		if src.op.Kind == instructions.PortRegister {
			mc.szp(v)
			f.HalfCarry = false
			f.Subtract = false
		}

	case instructions.Out:
		// OUT (C),0 has no source operand
		var v uint8
		if defn.Src.Kind != instructions.NoOperand {
			v = mc.read8(src)
		}
		mc.write8(dst, v)

	case instructions.Ldi:
		mc.blockLoad(1)
	case instructions.Ldd:
		mc.blockLoad(-1)
	case instructions.Ldir:
		mc.repeat(mc.blockLoad(1))
	case instructions.Lddr:
		mc.repeat(mc.blockLoad(-1))

	case instructions.Cpi:
		mc.blockCompare(1)
	case instructions.Cpd:
		mc.blockCompare(-1)
	case instructions.Cpir:
		mc.repeat(mc.blockCompare(1))
	case instructions.Cpdr:
		mc.repeat(mc.blockCompare(-1))

	case instructions.Ini:
		mc.blockIn(1)
	case instructions.Ind:
		mc.blockIn(-1)
	case instructions.Inir:
		mc.repeat(mc.blockIn(1))
	case instructions.Indr:
		mc.repeat(mc.blockIn(-1))

	case instructions.Outi:
		mc.blockOut(1)
	case instructions.Outd:
		mc.blockOut(-1)
	case instructions.Otir:
		mc.repeat(mc.blockOut(1))
	case instructions.Otdr:
		mc.repeat(mc.blockOut(-1))

	default:
		return curated.Errorf("cpu: unknown operator (%s)", defn.Operator)
	}

	return nil
}

// repeat a block instruction by moving the PC back to the start of the
// instruction. this means that an interrupt can be accepted between
// repetitions
func (mc *CPU) repeat(again bool) {
	if again {
		mc.LastResult.Taken = true
		mc.Regs.PC.Add(-2)
	}
}

// blockLoad performs LDI and LDD. returns true if BC is not zero.
func (mc *CPU) blockLoad(dir int) bool {
	hl := mc.Regs.HL()
	de := mc.Regs.DE()
	v := mc.mem.Read(hl)
	mc.mem.Write(de, v)

	bc := mc.Regs.BC() - 1
	mc.Regs.Set16(registers.RegHL, uint16(int(hl)+dir))
	mc.Regs.Set16(registers.RegDE, uint16(int(de)+dir))
	mc.Regs.Set16(registers.RegBC, bc)

	n := v + mc.Regs.A.Value()
	f := &mc.Regs.F
	f.HalfCarry = false
	f.Subtract = false
	f.ParityOverflow = bc != 0
	f.X = n&0x08 == 0x08
	f.Y = n&0x02 == 0x02

	return bc != 0
}

// blockCompare performs CPI and CPD. returns true if BC is not zero and the
// comparison did not match.
func (mc *CPU) blockCompare(dir int) bool {
	hl := mc.Regs.HL()
	v := mc.mem.Read(hl)
	a := mc.Regs.A.Value()
	r := a - v

	bc := mc.Regs.BC() - 1
	mc.Regs.Set16(registers.RegHL, uint16(int(hl)+dir))
	mc.Regs.Set16(registers.RegBC, bc)

	f := &mc.Regs.F
	f.Sign = r&0x80 == 0x80
	f.Zero = r == 0
	f.HalfCarry = (a^v^r)&0x10 == 0x10
	f.ParityOverflow = bc != 0
	f.Subtract = true

	n := r
	if f.HalfCarry {
		n--
	}
	f.X = n&0x08 == 0x08
	f.Y = n&0x02 == 0x02

	return bc != 0 && !f.Zero
}

// blockIn performs INI and IND. returns true if B is not zero.
func (mc *CPU) blockIn(dir int) bool {
	hl := mc.Regs.HL()
	v := mc.ports.In(mc.Regs.BC())
	mc.mem.Write(hl, v)
	mc.Regs.Set16(registers.RegHL, uint16(int(hl)+dir))
	return mc.blockCounter()
}

// blockOut performs OUTI and OUTD. B is decremented before the port is
// written to. returns true if B is not zero.
func (mc *CPU) blockOut(dir int) bool {
	hl := mc.Regs.HL()
	v := mc.mem.Read(hl)
	ok := mc.blockCounter()
	mc.ports.Out(mc.Regs.BC(), v)
	mc.Regs.Set16(registers.RegHL, uint16(int(hl)+dir))
	return ok
}

// blockCounter decrements B for the block input and output instructions and
// sets the flags.
func (mc *CPU) blockCounter() bool {
	b := mc.Regs.B.Value() - 1
	mc.Regs.B.Load(b)

	f := &mc.Regs.F
	f.Sign = b&0x80 == 0x80
	f.Zero = b == 0
	f.Subtract = true
	f.SetUndocumented(b)

	return b != 0
}
