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

package ula

import (
	"github.com/OhhJordy/ZX-Spectrum-Emu/curated"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/clocks"
)

// Resampler converts the beeper edges of successive frames into a stream of
// levels at a fixed sample rate.
type Resampler struct {
	sampleRate int

	// the level of the beeper at the end of the most recent frame
	level bool

	// cycles left over from the previous frame that were not long enough to
	// make a sample. measured in units of 1/sampleRate cycles
	remainder int
}

// NewResampler is the preferred method of initialisation for the Resampler
// type.
func NewResampler(sampleRate int) (*Resampler, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf("ula: sample rate must be positive (%d)", sampleRate)
	}
	return &Resampler{sampleRate: sampleRate}, nil
}

// SampleRate returns the sample rate of the resampler.
func (r *Resampler) SampleRate() int {
	return r.sampleRate
}

// Level returns the beeper level at the end of the most recent frame.
func (r *Resampler) Level() bool {
	return r.level
}

// Reset the resampler to its initial state.
func (r *Resampler) Reset() {
	r.level = false
	r.remainder = 0
}

// Resample the activity of a frame. The level is the level of the beeper at
// the start of the frame and cycles is the length of the frame. The emit
// function is called once for every sample.
func (r *Resampler) Resample(level bool, edges []BeeperEdge, cycles int, emit func(high bool)) error {
	if cycles < 0 {
		return curated.Errorf("ula: negative frame length (%d)", cycles)
	}

	r.level = level

	total := r.remainder + cycles*r.sampleRate
	n := total / clocks.CyclesPerSecond
	r.remainder = total % clocks.CyclesPerSecond

	e := 0
	for i := 0; i < n; i++ {
		cycle := i * cycles / n
		for e < len(edges) && edges[e].Cycle <= cycle {
			r.level = edges[e].High
			e++
		}
		emit(r.level)
	}

	// edges falling after the last sample still change the level
	for ; e < len(edges); e++ {
		r.level = edges[e].High
	}

	return nil
}
