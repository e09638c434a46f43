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

// Package ula implements the ZX Spectrum's ULA. The ULA has two jobs that are
// of interest to the emulation.
//
// The first is the I/O port at even addresses. Writing to the port sets the
// border colour and the level of the beeper and MIC outputs. Reading from the
// port returns the state of the keyboard matrix. Beeper level changes are
// recorded with the frame cycle at which they occurred so that the sound can
// be reconstructed by a front end.
//
// The second is the VideoDecoder, which converts the screen and attribute
// areas of memory into an RGBA pixel buffer. The VideoDecoder has no effect on
// memory or on the CPU and can be used at any time between frames.
package ula
