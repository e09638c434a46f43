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
	"context"

	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/clocks"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/cpu/execution"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/ula"
	"github.com/OhhJordy/ZX-Spectrum-Emu/logger"
)

// FrameResult summarises the activity of a single frame.
type FrameResult struct {
	// the number of cycles used by the CPU in the frame, including the
	// acceptance of the frame interrupt
	Cycles int

	// the number of instructions executed. accepted interrupts are not counted
	Instructions int

	// an interrupt was accepted during the frame
	Interrupted bool

	// the number of frame interrupts that could not be delivered because of
	// the configuration of the machine
	DroppedInterrupts int

	// the level of the beeper at the start of the frame and the changes of
	// level during the frame
	BeeperLevel bool
	Beeper      []ula.BeeperEdge
}

// RunFrame runs the emulation for one frame. The CPU executes instructions
// until the cycle budget for the frame is used or until the CPU is halted with
// no interrupt pending. The frame interrupt is then raised.
//
// An error from the CPU is returned immediately. The CPU will have been
// stopped and the machine must be reset before it can run again.
func (s *Spectrum) RunFrame() (FrameResult, error) {
	var r FrameResult

	// a killed CPU is also halted so this must be checked first
	if s.CPU.Killed {
		return r, s.CPU.KilledBy()
	}

	frameCycles := s.Prefs.FrameCycles.Get().(int)
	start := s.overshoot
	cycles := start

	for cycles < frameCycles {
		if s.CPU.Halted && !s.CPU.InterruptPending() {
			// nothing will happen until the next frame interrupt
			break
		}

		s.ULA.SetCycle(cycles)

		if err := s.CPU.ExecuteInstruction(); err != nil {
			return r, err
		}

		cycles += s.CPU.LastResult.Cycles
		if s.CPU.LastResult.Interrupt == execution.NoInterrupt {
			r.Instructions++
		} else {
			r.Interrupted = true
		}
	}

	// a halted CPU idles until the end of the frame
	if cycles < frameCycles {
		cycles = frameCycles
	}

	r.Cycles = cycles - start
	r.BeeperLevel, r.Beeper = s.ULA.EndFrame()

	s.overshoot = cycles - frameCycles
	s.frameInterrupt(&r)

	r.DroppedInterrupts = s.CPU.DroppedInterrupts()
	if r.DroppedInterrupts > 0 {
		logger.Logf(s, "interrupt", "%d frame interrupt(s) dropped in frame %d", r.DroppedInterrupts, s.frameNum)
	}

	s.frameNum++
	if s.frameNum%s.Prefs.FlashPeriod.Get().(int) == 0 {
		s.flashInverted = !s.flashInverted
	}

	return r, nil
}

// raise the frame interrupt. if the interrupt is accepted immediately, the
// cycles used are counted toward the next frame.
func (s *Spectrum) frameInterrupt(r *FrameResult) {
	if s.Prefs.NMI() {
		s.CPU.NMI()
	} else {
		s.CPU.INT(clocks.InterruptDuration, uint8(s.Prefs.InterruptVector.Get().(int)))
	}

	if s.CPU.AcceptInterrupt() {
		r.Interrupted = true
		r.Cycles += s.CPU.LastResult.Cycles
		s.overshoot += s.CPU.LastResult.Cycles
	}
}

// RunForFrameCount runs the emulation for the specified number of frames. The
// onFrame function is called after each frame and can be nil. The context is
// checked between frames.
func (s *Spectrum) RunForFrameCount(ctx context.Context, numFrames int, onFrame func(FrameResult) error) error {
	for i := 0; i < numFrames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		r, err := s.RunFrame()
		if err != nil {
			return err
		}

		if onFrame != nil {
			if err := onFrame(r); err != nil {
				return err
			}
		}
	}

	return nil
}
