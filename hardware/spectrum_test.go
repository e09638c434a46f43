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

package hardware_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/OhhJordy/ZX-Spectrum-Emu/curated"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/clocks"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/cpu"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/memory"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/ula"
	"github.com/OhhJordy/ZX-Spectrum-Emu/test"
)

// preferences are read from the working directory so each test runs in a
// directory of its own
func newSpectrum(t *testing.T) *hardware.Spectrum {
	t.Helper()

	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})

	s, err := hardware.NewSpectrum(nil)
	test.DemandSuccess(t, err)
	s.SetLogging(false)

	return s
}

// rom returns a ROM image with the program at address zero and the optional
// handler at the handler address.
func rom(program []uint8, handler uint16, handlerProgram ...uint8) []uint8 {
	img := make([]uint8, 16384)
	copy(img, program)
	copy(img[handler:], handlerProgram)
	return img
}

func TestLoadROM(t *testing.T) {
	s := newSpectrum(t)

	err := s.LoadROM(make([]uint8, 1000))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.ImageSizeMismatch))

	img := make([]uint8, 16384)
	img[0] = 0xf3
	test.DemandSuccess(t, s.LoadROM(img))

	// writes to ROM are discarded
	s.Mem.Write(0x0000, 0x42)
	test.ExpectEquality(t, s.Mem.Read(0x0000), uint8(0xf3))

	s.Mem.Write(0x8000, 0x42)
	test.ExpectEquality(t, s.Mem.Read(0x8000), uint8(0x42))
}

func TestHaltedFrame(t *testing.T) {
	s := newSpectrum(t)

	// DI; LD SP,0000h; IM 1; EI; HALT; JR 0007h
	program := []uint8{0xf3, 0x31, 0x00, 0x00, 0xed, 0x56, 0xfb, 0x76, 0x18, 0xfd}

	// EI; RET
	test.DemandSuccess(t, s.LoadROM(rom(program, 0x0038, 0xfb, 0xc9)))

	r, err := s.RunFrame()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Instructions, 5)
	test.ExpectEquality(t, r.Interrupted, true)
	test.ExpectEquality(t, r.DroppedInterrupts, 0)

	// the halted CPU idles to the end of the frame. acceptance of the IM 1
	// interrupt takes 13 cycles
	test.ExpectEquality(t, r.Cycles, clocks.FrameCycles+13)
	test.ExpectEquality(t, s.CPU.Regs.PC.Value(), uint16(0x0038))
	test.ExpectEquality(t, s.CPU.Regs.SP.Value(), uint16(0xfffe))
	test.ExpectEquality(t, s.Mem.Read(0xffff), uint8(0x00))
	test.ExpectEquality(t, s.Mem.Read(0xfffe), uint8(0x08))

	// EI; RET; JR; HALT
	r, err = s.RunFrame()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Instructions, 4)
	test.ExpectEquality(t, r.Interrupted, true)
	test.ExpectEquality(t, r.Cycles, clocks.FrameCycles)
	test.ExpectEquality(t, s.CPU.Regs.PC.Value(), uint16(0x0038))
	test.ExpectEquality(t, s.CPU.Regs.SP.Value(), uint16(0xfffe))
	test.ExpectEquality(t, s.FrameNum(), 2)
}

func TestBusyFrame(t *testing.T) {
	s := newSpectrum(t)

	// a ROM of NOPs with interrupts disabled. the program counter wraps
	// around memory
	test.DemandSuccess(t, s.LoadROM(rom([]uint8{0xf3}, 0)))

	r, err := s.RunFrame()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Interrupted, false)
	test.ExpectEquality(t, r.Cycles, clocks.FrameCycles)
	test.ExpectEquality(t, r.Instructions, clocks.FrameCycles/4)
}

func TestFlash(t *testing.T) {
	s := newSpectrum(t)
	test.DemandSuccess(t, s.LoadROM(rom([]uint8{0xf3, 0x76}, 0)))

	// flashing attribute with a single set pixel in the top-left corner
	s.Mem.Write(0x4000, 0x80)
	s.Mem.Write(0x5800, 0x80|uint8(ula.Red)<<3|uint8(ula.White))

	white := ula.White.RGBA(false)
	red := ula.Red.RGBA(false)

	pixels := s.DecodeVideo()
	test.ExpectEquality(t, pixels[0], white.R)
	test.ExpectEquality(t, pixels[1], white.G)
	test.ExpectEquality(t, pixels[ula.PixelDepth+1], red.G)

	err := s.RunForFrameCount(context.Background(), clocks.FlashPeriod-1, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.FlashInverted(), false)

	_, err = s.RunFrame()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.FlashInverted(), true)

	// ink and paper are swapped
	pixels = s.DecodeVideo()
	test.ExpectEquality(t, pixels[1], red.G)
	test.ExpectEquality(t, pixels[ula.PixelDepth+1], white.G)

	err = s.RunForFrameCount(context.Background(), clocks.FlashPeriod, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.FlashInverted(), false)
}

func TestBeeper(t *testing.T) {
	s := newSpectrum(t)

	// DI; LD A,12h; OUT (FEh),A; LD A,02h; OUT (FEh),A; HALT
	program := []uint8{0xf3, 0x3e, 0x12, 0xd3, 0xfe, 0x3e, 0x02, 0xd3, 0xfe, 0x76}
	test.DemandSuccess(t, s.LoadROM(rom(program, 0)))

	r, err := s.RunFrame()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.BeeperLevel, false)
	test.DemandEquality(t, len(r.Beeper), 2)
	test.ExpectEquality(t, r.Beeper[0], ula.BeeperEdge{Cycle: 11, High: true})
	test.ExpectEquality(t, r.Beeper[1], ula.BeeperEdge{Cycle: 29, High: false})
	test.ExpectEquality(t, s.ULA.Border(), ula.Red)

	// no change of level in the next frame
	r, err = s.RunFrame()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.BeeperLevel, false)
	test.ExpectEquality(t, len(r.Beeper), 0)
}

func TestUnimplementedOpcode(t *testing.T) {
	s := newSpectrum(t)
	test.DemandSuccess(t, s.LoadROM(rom([]uint8{0x00, 0xed, 0x77}, 0)))

	r, err := s.RunFrame()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnimplementedOpcode))
	test.ExpectEquality(t, r.Instructions, 1)

	// the machine does not run again until it is reset. the same error is
	// returned and no instructions are executed
	for i := 0; i < 2; i++ {
		r, err = s.RunFrame()
		test.ExpectFailure(t, err)
		test.ExpectSuccess(t, curated.Is(err, cpu.UnimplementedOpcode))
		test.ExpectEquality(t, r.Instructions, 0)
		test.ExpectEquality(t, r.Cycles, 0)
	}

	s.Reset()
	r, err = s.RunFrame()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, r.Instructions, 1)

	// reset with a program that runs. DI; HALT
	test.DemandSuccess(t, s.LoadROM(rom([]uint8{0xf3, 0x76}, 0)))
	s.Reset()
	r, err = s.RunFrame()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.Instructions, 2)
	test.ExpectEquality(t, s.CPU.Killed, false)
	test.ExpectSuccess(t, s.CPU.KilledBy() == nil)
}

func TestNMIFrameInterrupt(t *testing.T) {
	s := newSpectrum(t)
	test.DemandSuccess(t, s.Prefs.Interrupt.Set("nmi"))

	// DI; LD SP,0000h; HALT
	program := []uint8{0xf3, 0x31, 0x00, 0x00, 0x76}

	// RETN
	test.DemandSuccess(t, s.LoadROM(rom(program, 0x0066, 0xed, 0x45)))

	r, err := s.RunFrame()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Interrupted, true)
	test.ExpectEquality(t, r.Cycles, clocks.FrameCycles+11)
	test.ExpectEquality(t, s.CPU.Regs.PC.Value(), uint16(0x0066))
	test.ExpectEquality(t, s.CPU.IFF1, false)
}

func TestInterruptModeZero(t *testing.T) {
	s := newSpectrum(t)

	// LD SP,0000h; IM 0; EI; HALT
	program := []uint8{0x31, 0x00, 0x00, 0xed, 0x46, 0xfb, 0x76}
	test.DemandSuccess(t, s.LoadROM(rom(program, 0)))

	// no device places an instruction on the bus
	r, err := s.RunFrame()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Interrupted, false)
	test.ExpectEquality(t, r.DroppedInterrupts, 1)
	test.ExpectEquality(t, s.CPU.Halted, true)

	// RST 38h
	test.DemandSuccess(t, s.Prefs.IM0Instruction.Set(0xff))

	r, err = s.RunFrame()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Instructions, 0)
	test.ExpectEquality(t, r.Interrupted, true)
	test.ExpectEquality(t, r.DroppedInterrupts, 0)
	test.ExpectEquality(t, s.CPU.Regs.PC.Value(), uint16(0x0038))
}

func TestRunForFrameCount(t *testing.T) {
	s := newSpectrum(t)
	test.DemandSuccess(t, s.LoadROM(rom([]uint8{0xf3, 0x76}, 0)))

	var frames int
	err := s.RunForFrameCount(context.Background(), 5, func(r hardware.FrameResult) error {
		frames++
		return nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, frames, 5)
	test.ExpectEquality(t, s.FrameNum(), 5)

	// errors from the frame function stop the emulation
	stop := errors.New("stop")
	err = s.RunForFrameCount(context.Background(), 5, func(r hardware.FrameResult) error {
		return stop
	})
	test.ExpectEquality(t, errors.Is(err, stop), true)
	test.ExpectEquality(t, s.FrameNum(), 6)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = s.RunForFrameCount(ctx, 5, nil)
	test.ExpectEquality(t, errors.Is(err, context.Canceled), true)
	test.ExpectEquality(t, s.FrameNum(), 6)
}

func TestSnapshot(t *testing.T) {
	s := newSpectrum(t)

	// DI; LD SP,8000h; LD A,05h; OUT (FEh),A; HALT
	program := []uint8{0xf3, 0x31, 0x00, 0x80, 0x3e, 0x05, 0xd3, 0xfe, 0x76}
	test.DemandSuccess(t, s.LoadROM(rom(program, 0)))
	_, err := s.RunFrame()
	test.DemandSuccess(t, err)

	snap, err := s.SaveSnapshot()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, snap.Border, uint8(ula.Cyan))

	pc := s.CPU.Regs.PC.Value()

	// change the machine before restoring the snapshot
	s.Reset()
	s.Mem.Write(0x9000, 0x77)
	test.ExpectEquality(t, s.ULA.Border(), ula.Black)

	var b bytesWriter
	test.DemandSuccess(t, snap.Write(&b))
	test.DemandSuccess(t, s.LoadSnapshot(b))
	test.ExpectEquality(t, s.CPU.Regs.PC.Value(), pc)
	test.ExpectEquality(t, s.CPU.Regs.SP.Value(), uint16(0x8000))
	test.ExpectEquality(t, s.Mem.Read(0x9000), uint8(0x00))
	test.ExpectEquality(t, s.ULA.Border(), ula.Cyan)

	// invalid snapshots leave the machine unchanged
	test.ExpectFailure(t, s.LoadSnapshot(b[:100]))
	test.ExpectEquality(t, s.CPU.Regs.PC.Value(), pc)
}

type bytesWriter []uint8

func (b *bytesWriter) Write(p []uint8) (int, error) {
	*b = append(*b, p...)
	return len(p), nil
}
