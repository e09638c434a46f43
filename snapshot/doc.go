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

// Package snapshot reads and writes 48K ZX Spectrum snapshots in the SNA
// format.
//
// An SNA file is a 27 byte header containing the register values followed by
// the 48K of RAM. The program counter is not stored in the header. Instead it
// is pushed onto the stack before the snapshot is taken, which means that
// restoring a snapshot must pop the program counter from the stack.
package snapshot
