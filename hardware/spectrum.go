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

package hardware

import (
	"github.com/OhhJordy/ZX-Spectrum-Emu/curated"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/cpu"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/memory"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/memory/memorymap"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/peripherals/keyboard"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/ports"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/preferences"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/ula"
	"github.com/OhhJordy/ZX-Spectrum-Emu/logger"
	"github.com/OhhJordy/ZX-Spectrum-Emu/prefs"
	"github.com/OhhJordy/ZX-Spectrum-Emu/snapshot"
)

// Spectrum is the root of the emulated hardware.
type Spectrum struct {
	Prefs *preferences.Preferences

	CPU      *cpu.CPU
	Mem      *memory.Memory
	Ports    *ports.Ports
	Keyboard *keyboard.Keyboard
	ULA      *ula.ULA
	Video    *ula.VideoDecoder

	// number of frames since the last reset
	frameNum int

	// cycles of the next frame already used by the previous frame. an
	// instruction or interrupt acceptance can end after the frame boundary
	overshoot int

	flashInverted bool

	// whether the instance can write to the central logger
	logging bool
}

// NewSpectrum creates a new Spectrum and everything associated with the
// hardware. If prefs is nil the preferences are loaded from disk.
func NewSpectrum(prf *preferences.Preferences) (*Spectrum, error) {
	var err error

	if prf == nil {
		prf, err = preferences.NewPreferences()
		if err != nil {
			return nil, curated.Errorf("spectrum: %v", err)
		}
	}

	s := &Spectrum{
		Prefs:    prf,
		Mem:      memory.NewMemory(),
		Ports:    ports.NewPorts(),
		Keyboard: keyboard.NewKeyboard(),
		logging:  true,
	}

	s.ULA = ula.NewULA(s.Keyboard)
	s.Ports.Attach(s.ULA)
	s.Video = ula.NewVideoDecoder(s.Mem)

	s.CPU, err = cpu.NewCPU(s, s.Mem, s.Ports)
	if err != nil {
		return nil, curated.Errorf("spectrum: %v", err)
	}

	err = s.CPU.SetDeviceInstruction(s.Prefs.IM0Instruction.Get().(int))
	if err != nil {
		return nil, curated.Errorf("spectrum: %v", err)
	}

	// changes to the device instruction preference take effect immediately
	s.Prefs.IM0Instruction.SetHookPost(func(v prefs.Value) error {
		return s.CPU.SetDeviceInstruction(v.(int))
	})

	s.Reset()

	return s, nil
}

// AllowLogging implements the logger.Permission interface.
func (s *Spectrum) AllowLogging() bool {
	return s.logging
}

// SetLogging allows or prevents the instance from writing to the central
// logger. Useful for throwaway instances.
func (s *Spectrum) SetLogging(allow bool) {
	s.logging = allow
}

// Reset the CPU, ULA and the frame counters. Memory is not changed.
func (s *Spectrum) Reset() {
	s.CPU.Reset()
	s.resetPeripherals()
	logger.Log(s, "spectrum", "reset")
}

func (s *Spectrum) resetPeripherals() {
	s.ULA.Reset()
	s.Keyboard.Reset()
	s.frameNum = 0
	s.overshoot = 0
	s.flashInverted = false
}

// LoadROM copies the image into ROM and resets the machine. The image must be
// exactly the size of the ROM area.
func (s *Spectrum) LoadROM(image []uint8) error {
	if len(image) != memorymap.Size(memorymap.ROM) {
		return curated.Errorf(memory.ImageSizeMismatch, len(image), memorymap.ROM, memorymap.Size(memorymap.ROM))
	}

	if err := s.Mem.LoadImage(image, memorymap.ROM); err != nil {
		return err
	}

	s.Reset()
	logger.Logf(s, "spectrum", "ROM loaded (%d bytes)", len(image))

	return nil
}

// LoadSnapshot restores the machine from SNA data. The ROM should be loaded
// first. The machine is not changed if the snapshot is invalid.
func (s *Spectrum) LoadSnapshot(data []uint8) error {
	snap, err := snapshot.Parse(data)
	if err != nil {
		return err
	}

	// the CPU is reset by Restore()
	if err := snap.Restore(s.CPU, s.Mem); err != nil {
		return err
	}
	s.resetPeripherals()
	s.ULA.Out(0x00fe, snap.Border)
	logger.Logf(s, "snapshot", "restored: %s", snap)

	return nil
}

// SaveSnapshot captures the state of the machine as an SNA snapshot.
func (s *Spectrum) SaveSnapshot() (*snapshot.Snapshot, error) {
	return snapshot.Capture(s.CPU, s.Mem, uint8(s.ULA.Border()))
}

// FrameNum returns the number of frames since the last reset.
func (s *Spectrum) FrameNum() int {
	return s.frameNum
}

// FlashInverted returns true if the flash phase is in its inverted half.
func (s *Spectrum) FlashInverted() bool {
	return s.flashInverted
}

// DecodeVideo decodes the screen with the current flash phase and returns the
// RGBA pixels. The returned slice is reused by the next call.
func (s *Spectrum) DecodeVideo() []uint8 {
	s.Video.Decode(s.flashInverted)
	return s.Video.Pixels()
}
