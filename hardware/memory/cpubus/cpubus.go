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

// Package cpubus defines the interfaces through which the CPU accesses memory
// and the I/O port space.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Addresses are always valid because the backing store covers the entire
// sixteen bit address space. Reads and writes therefore never fail.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Ports defines the operations for the I/O port space when accessed from the
// CPU. The full sixteen bit port address is provided. For most instructions
// the high byte is the contents of the A or B register.
type Ports interface {
	In(port uint16) uint8
	Out(port uint16, data uint8)
}

// The fixed addresses used by the CPU when an interrupt is accepted.
const (
	NMI = uint16(0x0066)
	IM1 = uint16(0x0038)
)
