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
	"fmt"

	"github.com/OhhJordy/ZX-Spectrum-Emu/curated"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/cpu/execution"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/cpu/instructions"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/cpu/registers"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/memory/cpubus"
	"github.com/OhhJordy/ZX-Spectrum-Emu/logger"
)

// UnimplementedOpcode is returned by ExecuteInstruction() when an opcode has no
// instruction definition.
const UnimplementedOpcode = "cpu: unimplemented opcode (%s) at (%#04x)"

// CPU implements the Z80. Register logic is implemented by the File type in
// the registers sub-package.
type CPU struct {
	Regs *registers.File

	// the interrupt enable latches. IFF1 gates maskable interrupts. IFF2 is a
	// copy of IFF1 that survives the acceptance of an NMI
	IFF1 bool
	IFF2 bool

	// interrupt mode 0, 1 or 2
	IM uint8

	// the CPU has executed a HALT instruction and is waiting for an
	// interrupt
	Halted bool

	// the cpu has encountered an unimplemented opcode. requires a Reset()
	Killed bool

	// last result of ExecuteInstruction() or AcceptInterrupt()
	LastResult execution.Result

	perm  logger.Permission
	mem   cpubus.Memory
	ports cpubus.Ports
	table *instructions.Table

	// the error that killed the CPU
	killedBy error

	// the halt definition is used for the result of a halted CPU
	halt *instructions.Definition

	// interrupt lines and interrupt acceptance. see interrupts.go
	interrupts interrupts

	// the displacement byte of DDCB and FDCB instructions is read before the
	// opcode
	displacement     int8
	haveDisplacement bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU will be in the reset state.
func NewCPU(perm logger.Permission, mem cpubus.Memory, ports cpubus.Ports) (*CPU, error) {
	tab, err := instructions.GetDefinitions()
	if err != nil {
		return nil, curated.Errorf("cpu: %v", err)
	}

	mc := &CPU{
		Regs:  registers.NewFile(),
		perm:  perm,
		mem:   mem,
		ports: ports,
		table: tab,
		halt:  tab.Lookup(instructions.Unprefixed, 0x76),
	}
	mc.interrupts.deviceInstruction = NoDeviceInstruction
	mc.Reset()

	return mc, nil
}

// Plumb new memory and ports into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory, ports cpubus.Ports) {
	mc.mem = mem
	mc.ports = ports
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s IFF1=%v IFF2=%v IM=%d", mc.Regs, mc.IFF1, mc.IFF2, mc.IM)
}

// KilledBy returns the error that stopped the CPU. Returns nil if the CPU has
// not been killed.
func (mc *CPU) KilledBy() error {
	return mc.killedBy
}

// Reset reinitialises all registers and the interrupt state. Memory is not
// affected.
func (mc *CPU) Reset() {
	mc.Regs.Reset()
	mc.IFF1 = false
	mc.IFF2 = false
	mc.IM = 0
	mc.Halted = false
	mc.Killed = false
	mc.killedBy = nil
	mc.LastResult.Reset()
	mc.interrupts.reset()
}

// ExecuteInstruction steps the CPU forward one instruction. If an interrupt is
// pending and can be accepted then the interrupt is accepted instead.
//
// Returns an UnimplementedOpcode error if the opcode has no definition.
func (mc *CPU) ExecuteInstruction() error {
	if mc.Killed {
		return mc.killedBy
	}

	if mc.AcceptInterrupt() {
		return nil
	}

	// EI only blocks interrupts for the next instruction
	mc.interrupts.eiBlock = false

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.Regs.PC.Value()

	if mc.Halted {
		mc.Regs.IncrementR()
		mc.LastResult.Defn = mc.halt
		mc.LastResult.Halted = true
		mc.LastResult.Cycles = mc.halt.Cycles
		mc.LastResult.Final = true
		mc.interrupts.tick(mc.LastResult.Cycles)
		return nil
	}

	defn, err := mc.decode()
	if err != nil {
		mc.Halted = true
		mc.Killed = true
		mc.killedBy = err
		logger.Log(mc.perm, "cpu", err.Error())
		return err
	}
	mc.LastResult.Defn = defn

	err = mc.execute(defn)
	if err != nil {
		return err
	}

	mc.LastResult.Cycles = defn.Cycles
	if mc.LastResult.Taken && defn.IsConditional() {
		mc.LastResult.Cycles = defn.CyclesTaken
	}
	mc.LastResult.Cycles += mc.LastResult.IgnoredPrefixes * 4
	mc.LastResult.Final = true

	mc.interrupts.tick(mc.LastResult.Cycles)

	return nil
}

func (mc *CPU) fetch() uint8 {
	v := mc.mem.Read(mc.Regs.PC.Value())
	mc.Regs.PC.Add(1)
	if mc.LastResult.ByteCount < execution.MaxBytes {
		mc.LastResult.Bytes[mc.LastResult.ByteCount] = v
	}
	mc.LastResult.ByteCount++
	return v
}

// fetchOpcode is the same as fetch() except that the memory refresh register
// is incremented.
func (mc *CPU) fetchOpcode() uint8 {
	mc.Regs.IncrementR()
	return mc.fetch()
}

func (mc *CPU) fetch16() uint16 {
	lo := mc.fetch()
	hi := mc.fetch()
	return uint16(hi)<<8 | uint16(lo)
}

// decode reads the prefix and opcode bytes of the next instruction and
// returns the definition.
func (mc *CPU) decode() (*instructions.Definition, error) {
	mc.haveDisplacement = false

	prefix := instructions.Unprefixed
	opcode := mc.fetchOpcode()

	// only the last of a sequence of index prefixes has any effect
	for opcode == 0xdd || opcode == 0xfd {
		if prefix != instructions.Unprefixed {
			mc.LastResult.IgnoredPrefixes++
		}
		if opcode == 0xdd {
			prefix = instructions.DD
		} else {
			prefix = instructions.FD
		}
		opcode = mc.fetchOpcode()
	}

	switch opcode {
	case 0xed:
		if prefix != instructions.Unprefixed {
			mc.LastResult.IgnoredPrefixes++
		}
		prefix = instructions.ED
		opcode = mc.fetchOpcode()

	case 0xcb:
		switch prefix {
		case instructions.DD:
			prefix = instructions.DDCB
		case instructions.FD:
			prefix = instructions.FDCB
		default:
			prefix = instructions.CB
			opcode = mc.fetchOpcode()
		}

		// the opcode byte of an indexed bit instruction is not an opcode
		// fetch and does not refresh memory
		if prefix == instructions.DDCB || prefix == instructions.FDCB {
			mc.displacement = int8(mc.fetch())
			mc.haveDisplacement = true
			opcode = mc.fetch()
		}
	}

	defn := mc.table.Lookup(prefix, opcode)

	// an index prefix before an instruction that doesn't use HL has no effect
	if defn == nil && (prefix == instructions.DD || prefix == instructions.FD) {
		mc.LastResult.IgnoredPrefixes++
		defn = mc.table.Lookup(instructions.Unprefixed, opcode)
	}

	if defn == nil {
		op := fmt.Sprintf("%02x", opcode)
		if prefix != instructions.Unprefixed {
			op = fmt.Sprintf("%s %s", prefix, op)
		}
		return nil, curated.Errorf(UnimplementedOpcode, op, mc.LastResult.Address)
	}

	return defn, nil
}

// location is a resolved operand. any bytes required by the operand have been
// fetched and the effective address has been calculated.
type location struct {
	op      instructions.Operand
	address uint16
	value   uint16
}

func (mc *CPU) resolve(op instructions.Operand) location {
	loc := location{op: op}

	switch op.Kind {
	case instructions.Immediate8:
		loc.value = uint16(mc.fetch())
	case instructions.Immediate16:
		loc.value = mc.fetch16()
	case instructions.Relative:
		loc.value = uint16(int8(mc.fetch()))
	case instructions.Indirect:
		loc.address = mc.Regs.Get16(op.Reg16)
	case instructions.Indexed:
		d := mc.displacement
		if !mc.haveDisplacement {
			d = int8(mc.fetch())
		}
		loc.address = uint16(int(mc.Regs.Get16(op.Reg16)) + int(d))
	case instructions.Absolute:
		loc.address = mc.fetch16()
	case instructions.PortImmediate:
		loc.address = uint16(mc.Regs.A.Value())<<8 | uint16(mc.fetch())
	case instructions.PortRegister:
		loc.address = mc.Regs.BC()
	}

	return loc
}

func (mc *CPU) read8(loc location) uint8 {
	switch loc.op.Kind {
	case instructions.Register8:
		return mc.Regs.Get8(loc.op.Reg8)
	case instructions.Immediate8:
		return uint8(loc.value)
	case instructions.Indirect, instructions.Indexed, instructions.Absolute:
		return mc.mem.Read(loc.address)
	case instructions.PortImmediate, instructions.PortRegister:
		return mc.ports.In(loc.address)
	}
	return 0
}

func (mc *CPU) write8(loc location, v uint8) {
	switch loc.op.Kind {
	case instructions.Register8:
		mc.Regs.Set8(loc.op.Reg8, v)
	case instructions.Indirect, instructions.Indexed, instructions.Absolute:
		mc.mem.Write(loc.address, v)
	case instructions.PortImmediate, instructions.PortRegister:
		mc.ports.Out(loc.address, v)
	}
}

func (mc *CPU) read16(loc location) uint16 {
	switch loc.op.Kind {
	case instructions.Register16:
		return mc.Regs.Get16(loc.op.Reg16)
	case instructions.Immediate16:
		return loc.value
	case instructions.Indirect, instructions.Absolute:
		return mc.readWord(loc.address)
	}
	return 0
}

func (mc *CPU) write16(loc location, v uint16) {
	switch loc.op.Kind {
	case instructions.Register16:
		mc.Regs.Set16(loc.op.Reg16, v)
	case instructions.Indirect, instructions.Absolute:
		mc.writeWord(loc.address, v)
	}
}

// readWord reads a little-endian word from memory. the address wraps at the
// top of memory
func (mc *CPU) readWord(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) writeWord(address uint16, v uint16) {
	mc.mem.Write(address, uint8(v))
	mc.mem.Write(address+1, uint8(v>>8))
}

// push16 writes the high byte first, decrementing SP before each write.
func (mc *CPU) push16(v uint16) {
	mc.Regs.SP.Add(-1)
	mc.mem.Write(mc.Regs.SP.Value(), uint8(v>>8))
	mc.Regs.SP.Add(-1)
	mc.mem.Write(mc.Regs.SP.Value(), uint8(v))
}

// pop16 reads the low byte first, incrementing SP after each read.
func (mc *CPU) pop16() uint16 {
	lo := mc.mem.Read(mc.Regs.SP.Value())
	mc.Regs.SP.Add(1)
	hi := mc.mem.Read(mc.Regs.SP.Value())
	mc.Regs.SP.Add(1)
	return uint16(hi)<<8 | uint16(lo)
}
