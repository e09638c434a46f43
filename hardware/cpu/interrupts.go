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
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/cpu/execution"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/memory/cpubus"
	"github.com/OhhJordy/ZX-Spectrum-Emu/logger"
)

// InterruptModeZeroUnsupported is logged when a maskable interrupt is
// accepted in mode 0 and no device instruction has been supplied.
const InterruptModeZeroUnsupported = "cpu: mode 0 interrupt has no device instruction"

// NoDeviceInstruction indicates that no device places an instruction on the
// data bus for a mode 0 interrupt.
const NoDeviceInstruction = -1

// number of cycles required to accept each kind of interrupt.
const (
	nmiCycles = 11
	im0Cycles = 13
	im1Cycles = 13
	im2Cycles = 19
)

type interrupts struct {
	// set by EI. maskable interrupts are not accepted until the instruction
	// after EI has completed
	eiBlock bool

	// an NMI is edge triggered and remains pending until it is accepted
	nmi bool

	// the maskable interrupt line is level triggered and remains asserted
	// for a limited number of cycles
	intLine      bool
	intVector    uint8
	intRemaining int

	// the instruction supplied by the interrupting device in mode 0. only
	// RST instructions are supported
	deviceInstruction int

	// maskable interrupts that could not be delivered because of the
	// configuration of the machine
	dropped int
}

func (irq *interrupts) reset() {
	irq.eiBlock = false
	irq.nmi = false
	irq.intLine = false
	irq.intVector = 0
	irq.intRemaining = 0
}

// tick reduces the time remaining on the maskable interrupt line. the line is
// released once the duration has been exhausted.
func (irq *interrupts) tick(cycles int) {
	if !irq.intLine {
		return
	}
	irq.intRemaining -= cycles
	if irq.intRemaining <= 0 {
		irq.intLine = false
		irq.intRemaining = 0
	}
}

// NMI signals a non-maskable interrupt. It will be accepted before the next
// instruction is executed.
func (mc *CPU) NMI() {
	mc.interrupts.nmi = true
}

// INT asserts the maskable interrupt line for the specified number of cycles.
// The vector is the value on the data bus, used in interrupt mode 2.
func (mc *CPU) INT(duration int, vector uint8) {
	mc.interrupts.intLine = true
	mc.interrupts.intRemaining = duration
	mc.interrupts.intVector = vector
}

// InterruptPending returns true if an interrupt would be accepted by the next
// call to ExecuteInstruction().
func (mc *CPU) InterruptPending() bool {
	if mc.interrupts.nmi {
		return true
	}
	return mc.interrupts.intLine && mc.IFF1 && !mc.interrupts.eiBlock
}

// SetDeviceInstruction sets the instruction used when accepting an interrupt
// in mode 0. Only RST instructions or NoDeviceInstruction are accepted.
func (mc *CPU) SetDeviceInstruction(opcode int) error {
	if opcode != NoDeviceInstruction && (opcode < 0 || opcode > 0xff || opcode&0xc7 != 0xc7) {
		return curated.Errorf("cpu: unsupported mode 0 device instruction (%#02x)", opcode)
	}
	mc.interrupts.deviceInstruction = opcode
	return nil
}

// DroppedInterrupts returns the number of maskable interrupts that could not
// be delivered since the previous call.
func (mc *CPU) DroppedInterrupts() int {
	n := mc.interrupts.dropped
	mc.interrupts.dropped = 0
	return n
}

// AcceptInterrupt accepts a pending interrupt if possible. The LastResult
// field is updated and true returned if an interrupt was accepted.
//
// ExecuteInstruction() calls this function before executing an instruction
// so it is not normally necessary to call it directly.
func (mc *CPU) AcceptInterrupt() bool {
	if mc.Killed {
		return false
	}

	if mc.interrupts.nmi {
		mc.interrupts.nmi = false
		mc.beginInterrupt(execution.NMI)
		mc.IFF1 = false
		mc.push16(mc.Regs.PC.Value())
		mc.Regs.PC.Load(cpubus.NMI)
		mc.endInterrupt(nmiCycles)
		return true
	}

	if !mc.interrupts.intLine || !mc.IFF1 || mc.interrupts.eiBlock {
		return false
	}

	var target uint16
	var cycles int

	switch mc.IM {
	case 0:
		if mc.interrupts.deviceInstruction == NoDeviceInstruction {
			mc.interrupts.intLine = false
			mc.interrupts.dropped++
			logger.Log(mc.perm, "interrupt", curated.Errorf(InterruptModeZeroUnsupported).Error())
			return false
		}
		target = uint16(mc.interrupts.deviceInstruction & 0x38)
		cycles = im0Cycles
	case 1:
		target = cpubus.IM1
		cycles = im1Cycles
	default:
		target = mc.readWord(uint16(mc.Regs.I.Value())<<8 | uint16(mc.interrupts.intVector))
		cycles = im2Cycles
	}

	mc.interrupts.intLine = false
	mc.beginInterrupt(execution.Maskable)
	mc.IFF1 = false
	mc.IFF2 = false
	mc.push16(mc.Regs.PC.Value())
	mc.Regs.PC.Load(target)
	mc.endInterrupt(cycles)

	return true
}

func (mc *CPU) beginInterrupt(kind execution.Interrupt) {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.Regs.PC.Value()
	mc.LastResult.Interrupt = kind
	mc.Halted = false
	mc.Regs.IncrementR()
}

func (mc *CPU) endInterrupt(cycles int) {
	mc.LastResult.Cycles = cycles
	mc.LastResult.Final = true
	mc.interrupts.eiBlock = false
	mc.interrupts.tick(cycles)
}
