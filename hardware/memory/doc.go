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

// Package memory implements the flat sixteen bit address space of the
// machine. The lower 16K is ROM and cannot be written to by the CPU. Writes to
// ROM are silently discarded. The remainder of the address space is RAM.
//
// The screen bitmap and attribute areas are part of RAM. The Area() function
// returns a slice of the backing store for an area so that CPU writes are
// immediately visible to the video decoder.
//
// Images are loaded into an area with LoadImage(). An image larger than the
// area is rejected before any memory is changed.
package memory
