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

// Package keyboard implements the keyboard matrix of the ZX Spectrum.
//
// The forty keys are arranged in eight half-rows of five keys. A half-row is
// selected by a zero bit in the high byte of the port address when reading
// from the ULA. Keys in the selected half-rows are reported in bits 0 to 4 of
// the result. A pressed key reads as zero.
//
// More than one half-row can be selected at once, in which case the results
// for each half-row are combined.
package keyboard
