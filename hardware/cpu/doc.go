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

// Package cpu emulates the Z80 CPU. The package contains sub-packages for the
// registers, the instruction definitions and the execution results.
//
// Instructions are executed one at a time with the ExecuteInstruction()
// function. The result of the most recent instruction can be inspected in the
// LastResult field. The emulation is not cycle accurate within an
// instruction. The number of T-states used by each instruction is counted so
// that the caller can budget the number of instructions in a video frame.
//
// The CPU does not handle memory or port addressing itself. Memory accesses
// are made through the cpubus.Memory interface and port accesses through the
// cpubus.Ports interface.
//
// Interrupts are raised with NMI() and INT(). They are considered at the start of
// each call to ExecuteInstruction() and can be accepted immediately with
// AcceptInterrupt(). Accepting an interrupt takes the place of executing an
// instruction.
//
// An opcode that has no instruction definition kills the CPU. The error is
// returned by ExecuteInstruction() and is returned again on every subsequent
// call until the CPU is Reset().
package cpu
