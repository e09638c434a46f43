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

// Package hardware is the base package for the ZX Spectrum emulation. It and
// its sub-packages contain everything required for a headless emulation.
//
// The Spectrum type is the root of the emulation and contains references to
// all the sub-systems. The RunFrame() function advances the emulation by one
// video frame. At the end of each frame the frame interrupt is raised and the
// flash phase is advanced.
//
// After each frame the front end can decode the screen with DecodeVideo() and
// collect the beeper edges from the FrameResult.
package hardware
