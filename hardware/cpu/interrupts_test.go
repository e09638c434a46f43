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

package cpu_test

import (
	"testing"

	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/cpu"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/cpu/execution"
	"github.com/OhhJordy/ZX-Spectrum-Emu/test"
)

func TestEnableLatency(t *testing.T) {
	mc, mem, _ := newCPU(t)

	// return address for the RET instruction
	mc.Regs.SP.Load(0x8000)
	mem.putInstructions(0x8000, 0x00, 0x10)

	// IM 1; EI; RET
	mem.putInstructions(0, 0xed, 0x56, 0xfb, 0xc9)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.IFF1, true)

	mc.INT(32, 0xff)
	test.ExpectEquality(t, mc.InterruptPending(), false)

	// the RET completes before the interrupt is accepted
	r := step(t, mc)
	test.ExpectEquality(t, r.Interrupt, execution.NoInterrupt)
	test.ExpectEquality(t, r.Defn.Mnemonic, "RET")
	test.ExpectEquality(t, mc.Regs.PC.Value(), uint16(0x1000))
	test.ExpectEquality(t, mc.InterruptPending(), true)

	r = step(t, mc)
	test.ExpectEquality(t, r.Interrupt, execution.Maskable)
	test.ExpectEquality(t, r.Cycles, 13)
	test.ExpectEquality(t, mc.Regs.PC.Value(), uint16(0x0038))
	test.ExpectEquality(t, mc.IFF1, false)
	test.ExpectEquality(t, mc.IFF2, false)
	mem.assert(t, 0x8001, 0x10)
	mem.assert(t, 0x8000, 0x00)
}

func TestInterruptMode2(t *testing.T) {
	mc, mem, _ := newCPU(t)

	// vector table entry
	mem.putInstructions(0x80ff, 0x34, 0x12)

	// LD A,80h; LD I,A; IM 2; EI; NOP
	mem.putInstructions(0, 0x3e, 0x80, 0xed, 0x47, 0xed, 0x5e, 0xfb, 0x00)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc).Cycles, 9)
	test.ExpectEquality(t, mc.Regs.I.Value(), uint8(0x80))
	step(t, mc)
	test.ExpectEquality(t, mc.IM, uint8(2))
	step(t, mc)

	mc.INT(32, 0xff)
	r := step(t, mc)
	test.ExpectEquality(t, r.Interrupt, execution.NoInterrupt)

	r = step(t, mc)
	test.ExpectEquality(t, r.Interrupt, execution.Maskable)
	test.ExpectEquality(t, r.Cycles, 19)
	test.ExpectEquality(t, mc.Regs.PC.Value(), uint16(0x1234))
	test.ExpectEquality(t, mc.Regs.SP.Value(), uint16(0xfffd))
	mem.assert(t, 0xfffd, 0x08)
	mem.assert(t, 0xfffe, 0x00)
}

func TestInterruptMode0(t *testing.T) {
	mc, mem, _ := newCPU(t)

	// EI; NOP; NOP
	mem.putInstructions(0, 0xfb, 0x00, 0x00)
	step(t, mc)
	step(t, mc)

	// no device instruction. the interrupt is dropped
	mc.INT(32, 0xff)
	r := step(t, mc)
	test.ExpectEquality(t, r.Interrupt, execution.NoInterrupt)
	test.ExpectEquality(t, mc.Regs.PC.Value(), uint16(0x0003))
	test.ExpectEquality(t, mc.DroppedInterrupts(), 1)
	test.ExpectEquality(t, mc.DroppedInterrupts(), 0)

	test.ExpectFailure(t, mc.SetDeviceInstruction(0x00))
	test.ExpectSuccess(t, mc.SetDeviceInstruction(0xd7))

	// RST 10h supplied by the device
	mc.INT(32, 0xff)
	r = step(t, mc)
	test.ExpectEquality(t, r.Interrupt, execution.Maskable)
	test.ExpectEquality(t, r.Cycles, 13)
	test.ExpectEquality(t, mc.Regs.PC.Value(), uint16(0x0010))
	test.ExpectEquality(t, mc.DroppedInterrupts(), 0)

	test.ExpectSuccess(t, mc.SetDeviceInstruction(cpu.NoDeviceInstruction))
}

func TestInterruptDuration(t *testing.T) {
	mc, mem, _ := newCPU(t)

	// NOP; NOP; NOP; EI; NOP
	mem.putInstructions(0, 0x00, 0x00, 0x00, 0xfb, 0x00)

	// the line is released before interrupts are enabled
	mc.INT(8, 0xff)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, r.Interrupt, execution.NoInterrupt)
	test.ExpectEquality(t, mc.InterruptPending(), false)
}

func TestNMI(t *testing.T) {
	mc, mem, _ := newCPU(t)

	// EI; NOP
	mem.putInstructions(0, 0xfb, 0x00)

	// RETN
	mem.putInstructions(0x0066, 0xed, 0x45)

	step(t, mc)
	step(t, mc)

	mc.NMI()
	r := step(t, mc)
	test.ExpectEquality(t, r.Interrupt, execution.NMI)
	test.ExpectEquality(t, r.Cycles, 11)
	test.ExpectEquality(t, mc.Regs.PC.Value(), uint16(0x0066))
	test.ExpectEquality(t, mc.IFF1, false)
	test.ExpectEquality(t, mc.IFF2, true)

	r = step(t, mc)
	test.ExpectEquality(t, r.Defn.Mnemonic, "RETN")
	test.ExpectEquality(t, mc.Regs.PC.Value(), uint16(0x0002))
	test.ExpectEquality(t, mc.IFF1, true)

	// NMI is accepted even if interrupts are disabled
	mc.IFF1 = false
	mc.IFF2 = false
	mc.NMI()
	r = step(t, mc)
	test.ExpectEquality(t, r.Interrupt, execution.NMI)
	test.ExpectEquality(t, mc.Regs.PC.Value(), uint16(0x0066))
}

func TestHalt(t *testing.T) {
	mc, mem, _ := newCPU(t)

	// IM 1; EI; HALT
	mem.putInstructions(0, 0xed, 0x56, 0xfb, 0x76)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Halted, true)
	test.ExpectEquality(t, mc.Regs.PC.Value(), uint16(0x0004))

	// the PC does not advance while halted
	for i := 0; i < 3; i++ {
		r := step(t, mc)
		test.ExpectEquality(t, r.Halted, true)
		test.ExpectEquality(t, r.Cycles, 4)
		test.ExpectEquality(t, mc.Regs.PC.Value(), uint16(0x0004))
	}

	mc.INT(32, 0xff)
	r := step(t, mc)
	test.ExpectEquality(t, r.Interrupt, execution.Maskable)
	test.ExpectEquality(t, mc.Halted, false)
	test.ExpectEquality(t, mc.Regs.PC.Value(), uint16(0x0038))
	mem.assert(t, 0xfffd, 0x04)
}
