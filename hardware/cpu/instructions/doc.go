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

// Package instructions defines the instruction set of the Z80.
//
// Each instruction is described by a Definition. The definitions are arranged
// in a Table with one 256 entry sub-table for each prefix. Prefixed opcodes
// denote wholly different instructions to their unprefixed counterparts. The
// DDCB and FDCB sub-tables are for the four byte index register variants of
// the CB instructions, which have the displacement byte before the opcode.
//
// The unprefixed and ED definitions are listed explicitly. The CB, DDCB and
// FDCB definitions follow a regular pattern and are generated when the table
// is first built. The DD and FD definitions are derived from the unprefixed
// definitions by substituting the index registers for HL, H and L. An opcode
// that is not changed by an index prefix has no entry in the DD or FD
// sub-tables. The CPU executes the unprefixed instruction in that case.
//
// The Table is built once and checked for duplicates and missing entries.
package instructions
