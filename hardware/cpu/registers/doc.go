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

// Package registers implements the register file of the Z80 CPU.
//
// Eight bit registers are represented by the Register type and sixteen bit
// registers (PC, SP and the alternate register set) by the Word type. The flags
// register is represented by the StatusRegister type, with a boolean field for
// each bit.
//
// The register pairs BC, DE and HL (and AF, IX and IY) do not have storage of
// their own. They are views over the two eight bit registers that make up the
// pair, high byte first. Loading a pair loads both of the constituent
// registers and loading either constituent register changes the value of the
// pair.
//
// For code that needs to select a register at runtime, the File type provides
// Get8()/Set8() and Get16()/Set16() which take a register identity.
package registers
