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

// Package clocks defines the constant values that define the timing of the
// 48K ZX Spectrum.
//
// The CPU is clocked at 3.5MHz. A video frame is 312 lines of 224 CPU cycles,
// giving a frame rate of a little over 50Hz.
package clocks

// CPU is the speed of the Z80 in MHz.
const CPU = 3.5

// Frame geometry in CPU cycles.
const (
	LineCycles  = 224
	FrameLines  = 312
	FrameCycles = LineCycles * FrameLines
)

// FrameRate is the nominal number of frames per second.
const FrameRate = 50

// FlashPeriod is the number of frames between changes of the flash phase.
const FlashPeriod = 16

// InterruptDuration is the number of cycles that the ULA holds the maskable
// interrupt line at the start of each frame.
const InterruptDuration = 32

// CyclesPerSecond is the number of CPU cycles in one second.
const CyclesPerSecond = int(CPU * 1000000)
